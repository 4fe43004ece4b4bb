package handler

import (
	appauth "github.com/asnhr/hrms/internal/application/auth"
	"github.com/asnhr/hrms/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	BaseHandler
	authService *appauth.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *appauth.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest holds sign-in credentials
type LoginRequest struct {
	Username string `json:"username" binding:"required,max=100" example:"nikita"`
	Password string `json:"password" binding:"required,max=128" example:"secret123"`
}

// RefreshTokenRequest carries the refresh token to exchange
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// LogoutRequest optionally carries the refresh token to revoke with the session
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// ChangePasswordRequest changes the caller's own password
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6,max=128"`
}

// MessageResponse is a plain acknowledgement
type MessageResponse struct {
	Message string `json:"message" example:"Logged out successfully"`
}

// Login godoc
// @ID           login
// @Summary      User login
// @Description  Authenticate with username and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login credentials"
// @Success      200 {object} APIResponse[appauth.LoginResult]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !h.bindJSON(c, &req) {
		return
	}

	result, err := h.authService.Login(c.Request.Context(), appauth.LoginInput{
		Username: req.Username,
		Password: req.Password,
		IP:       c.ClientIP(),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// RefreshToken godoc
// @ID           refreshToken
// @Summary      Refresh access token
// @Description  Exchange a refresh token for a new token pair
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body RefreshTokenRequest true "Refresh token"
// @Success      200 {object} APIResponse[appauth.TokenResult]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Router       /auth/refresh [post]
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req RefreshTokenRequest
	if !h.bindJSON(c, &req) {
		return
	}

	result, err := h.authService.RefreshToken(c.Request.Context(), appauth.RefreshTokenInput{
		RefreshToken: req.RefreshToken,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// Logout godoc
// @ID           logout
// @Summary      User logout
// @Description  Revoke the current access token and, when given, the refresh token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LogoutRequest false "Refresh token to revoke"
// @Success      200 {object} APIResponse[MessageResponse]
// @Failure      401 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	claims := middleware.GetJWTClaims(c)
	if claims == nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	var req LogoutRequest
	if c.Request.ContentLength > 0 && !h.bindJSON(c, &req) {
		return
	}

	err := h.authService.Logout(c.Request.Context(), appauth.LogoutInput{
		AccessTokenJTI: claims.ID,
		AccessTokenTTL: claims.RemainingTTL(),
		RefreshToken:   req.RefreshToken,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, MessageResponse{Message: "Logged out successfully"})
}

// GetCurrentUser godoc
// @ID           getCurrentUser
// @Summary      Get current user
// @Description  Return the signed-in employee
// @Tags         auth
// @Produce      json
// @Success      200 {object} APIResponse[appauth.UserInfo]
// @Failure      401 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /auth/me [get]
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}
	user, err := h.authService.GetCurrentUser(c.Request.Context(), p.ID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, user)
}

// ChangePassword godoc
// @ID           changePassword
// @Summary      Change password
// @Description  Change the caller's password; every existing session is revoked
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body ChangePasswordRequest true "Passwords"
// @Success      200 {object} APIResponse[MessageResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /auth/password [put]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}
	var req ChangePasswordRequest
	if !h.bindJSON(c, &req) {
		return
	}

	err := h.authService.ChangePassword(c.Request.Context(), appauth.ChangePasswordInput{
		UserID:          p.ID,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, MessageResponse{Message: "Password changed, please sign in again"})
}
