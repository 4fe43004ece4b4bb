package auth

import (
	"time"

	"github.com/asnhr/hrms/internal/domain/employee"
	"github.com/google/uuid"
)

// LoginInput contains login credentials
type LoginInput struct {
	Username string
	Password string
	IP       string
}

// LoginResult contains the result of a successful login
type LoginResult struct {
	Token TokenResult `json:"token"`
	User  UserInfo    `json:"user"`
}

// TokenResult is an issued access/refresh pair
type TokenResult struct {
	AccessToken           string    `json:"access_token"`
	RefreshToken          string    `json:"refresh_token"`
	AccessTokenExpiresAt  time.Time `json:"access_token_expires_at"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at"`
	TokenType             string    `json:"token_type"`
}

// UserInfo is the signed-in employee as seen by the client
type UserInfo struct {
	ID              uuid.UUID  `json:"id"`
	EmployeeCode    string     `json:"employee_code"`
	Username        string     `json:"username"`
	FirstName       string     `json:"first_name"`
	LastName        string     `json:"last_name"`
	FullName        string     `json:"full_name"`
	Email           string     `json:"email"`
	Position        string     `json:"position"`
	Role            string     `json:"role"`
	DepartmentID    *uuid.UUID `json:"department_id,omitempty"`
	CanApproveLeave bool       `json:"can_approve_leave"`
	CanManagePeople bool       `json:"can_manage_people"`
	LastLoginAt     *time.Time `json:"last_login_at,omitempty"`
}

// ToUserInfo converts a domain Employee
func ToUserInfo(e *employee.Employee) UserInfo {
	return UserInfo{
		ID:              e.ID,
		EmployeeCode:    e.EmployeeCode,
		Username:        e.Username,
		FirstName:       e.FirstName,
		LastName:        e.LastName,
		FullName:        e.FullName(),
		Email:           e.Email,
		Position:        e.Position,
		Role:            string(e.Role),
		DepartmentID:    e.DepartmentID,
		CanApproveLeave: e.Role.CanApproveLeave(),
		CanManagePeople: e.Role.CanManagePeople(),
		LastLoginAt:     e.LastLoginAt,
	}
}

// RefreshTokenInput contains the refresh token
type RefreshTokenInput struct {
	RefreshToken string
}

// LogoutInput identifies the tokens to revoke. RefreshToken is optional.
type LogoutInput struct {
	AccessTokenJTI string
	AccessTokenTTL time.Duration
	RefreshToken   string
}

// ChangePasswordInput contains input for changing one's own password
type ChangePasswordInput struct {
	UserID          uuid.UUID
	CurrentPassword string
	NewPassword     string
}
