package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	appauth "github.com/asnhr/hrms/internal/application/auth"
	"github.com/asnhr/hrms/internal/domain/employee"
	"github.com/asnhr/hrms/internal/infrastructure/auth"
	"github.com/asnhr/hrms/internal/infrastructure/config"
	"github.com/asnhr/hrms/internal/interfaces/http/middleware"
	"github.com/asnhr/hrms/tests/testutil"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type authFixture struct {
	engine *gin.Engine
	emps   *testutil.EmployeeRepository
	user   *employee.Employee
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-key-at-least-32-chars",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "hrms-test",
		MaxRefreshCount:        5,
	})
	blacklist := auth.NewInMemoryTokenBlacklist()
	emps := testutil.NewEmployeeRepository()

	user, err := employee.NewEmployee(employee.NewEmployeeInput{
		EmployeeCode: "EMP001",
		Username:     "nikita",
		Password:     "secret123",
		FirstName:    "Nikita",
		LastName:     "Joshi",
		Role:         employee.RoleHR,
		Salary:       decimal.NewFromInt(30000),
	})
	require.NoError(t, err)
	require.NoError(t, emps.Create(context.Background(), user))

	h := NewAuthHandler(appauth.NewAuthService(emps, jwtService, blacklist, zap.NewNop()))

	r := newEngine()
	api := r.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddlewareWithConfig(middleware.JWTMiddlewareConfig{
		JWTService:     jwtService,
		TokenBlacklist: blacklist,
		SkipPaths:      []string{"/api/v1/auth/login", "/api/v1/auth/refresh"},
	}))
	api.POST("/auth/login", h.Login)
	api.POST("/auth/refresh", h.RefreshToken)
	api.POST("/auth/logout", h.Logout)
	api.GET("/auth/me", h.GetCurrentUser)
	api.PUT("/auth/password", h.ChangePassword)

	return &authFixture{engine: r, emps: emps, user: user}
}

func (f *authFixture) login(t *testing.T) appauth.LoginResult {
	t.Helper()
	w := perform(t, f.engine, http.MethodPost, "/api/v1/auth/login", LoginRequest{Username: "Nikita", Password: "secret123"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return decodeData[appauth.LoginResult](t, w)
}

func (f *authFixture) withToken(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	wrapped := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Header.Set(middleware.AuthHeaderKey, middleware.BearerPrefix+token)
		f.engine.ServeHTTP(w, r)
	})
	return perform(t, wrapped, method, path, body)
}

func TestAuthHandler_Login(t *testing.T) {
	f := newAuthFixture(t)

	result := f.login(t)
	assert.NotEmpty(t, result.Token.AccessToken)
	assert.NotEmpty(t, result.Token.RefreshToken)
	assert.Equal(t, "Bearer", result.Token.TokenType)
	assert.Equal(t, "nikita", result.User.Username)
	assert.True(t, result.User.CanManagePeople)

	stored, err := f.emps.FindByID(context.Background(), f.user.ID)
	require.NoError(t, err)
	assert.NotNil(t, stored.LastLoginAt)
}

func TestAuthHandler_LoginFailures(t *testing.T) {
	f := newAuthFixture(t)

	w := perform(t, f.engine, http.MethodPost, "/api/v1/auth/login", LoginRequest{Username: "nikita", Password: "wrong-pass"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", errorCode(t, w))

	w = perform(t, f.engine, http.MethodPost, "/api/v1/auth/login", LoginRequest{Username: "ghost", Password: "secret123"})
	assert.Equal(t, "INVALID_CREDENTIALS", errorCode(t, w))

	w = perform(t, f.engine, http.MethodPost, "/api/v1/auth/login", map[string]string{"username": "nikita"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", errorCode(t, w))

	f.user.SetActive(false)
	require.NoError(t, f.emps.Update(context.Background(), f.user))
	w = perform(t, f.engine, http.MethodPost, "/api/v1/auth/login", LoginRequest{Username: "nikita", Password: "secret123"})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "ACCOUNT_DEACTIVATED", errorCode(t, w))
}

func TestAuthHandler_MeAndLogout(t *testing.T) {
	f := newAuthFixture(t)
	token := f.login(t).Token.AccessToken

	w := perform(t, f.engine, http.MethodGet, "/api/v1/auth/me", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = f.withToken(t, http.MethodGet, "/api/v1/auth/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	me := decodeData[appauth.UserInfo](t, w)
	assert.Equal(t, f.user.ID, me.ID)
	assert.Equal(t, "Nikita Joshi", me.FullName)

	w = f.withToken(t, http.MethodPost, "/api/v1/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = f.withToken(t, http.MethodGet, "/api/v1/auth/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "TOKEN_REVOKED", errorCode(t, w))
}

func TestAuthHandler_RefreshToken(t *testing.T) {
	f := newAuthFixture(t)
	refresh := f.login(t).Token.RefreshToken

	w := perform(t, f.engine, http.MethodPost, "/api/v1/auth/refresh", RefreshTokenRequest{RefreshToken: refresh})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	rotated := decodeData[appauth.TokenResult](t, w)
	assert.NotEmpty(t, rotated.AccessToken)

	w = perform(t, f.engine, http.MethodPost, "/api/v1/auth/refresh", RefreshTokenRequest{RefreshToken: refresh})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "TOKEN_REVOKED", errorCode(t, w))

	w = perform(t, f.engine, http.MethodPost, "/api/v1/auth/refresh", RefreshTokenRequest{RefreshToken: "garbage"})
	assert.Equal(t, "TOKEN_INVALID", errorCode(t, w))
}

func TestAuthHandler_ChangePassword(t *testing.T) {
	f := newAuthFixture(t)
	token := f.login(t).Token.AccessToken

	w := f.withToken(t, http.MethodPut, "/api/v1/auth/password", token, ChangePasswordRequest{CurrentPassword: "nope", NewPassword: "another123"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_PASSWORD", errorCode(t, w))

	w = f.withToken(t, http.MethodPut, "/api/v1/auth/password", token, ChangePasswordRequest{CurrentPassword: "secret123", NewPassword: "another123"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	stored, err := f.emps.FindByID(context.Background(), f.user.ID)
	require.NoError(t, err)
	assert.True(t, stored.VerifyPassword("another123"))
}
