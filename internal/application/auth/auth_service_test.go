package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/asnhr/hrms/internal/domain/employee"
	"github.com/asnhr/hrms/internal/domain/shared"
	jwtauth "github.com/asnhr/hrms/internal/infrastructure/auth"
	"github.com/asnhr/hrms/internal/infrastructure/config"
	"github.com/asnhr/hrms/tests/testutil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fixture struct {
	svc       *AuthService
	emps      *testutil.EmployeeRepository
	jwt       *jwtauth.JWTService
	blacklist *jwtauth.InMemoryTokenBlacklist
}

func newFixture() *fixture {
	f := &fixture{
		emps: testutil.NewEmployeeRepository(),
		jwt: jwtauth.NewJWTService(config.JWTConfig{
			Secret:                 "test-secret-key-with-at-least-32-characters",
			AccessTokenExpiration:  15 * time.Minute,
			RefreshTokenExpiration: 24 * time.Hour,
			Issuer:                 "hrms-test",
			MaxRefreshCount:        3,
		}),
		blacklist: jwtauth.NewInMemoryTokenBlacklist(),
	}
	f.svc = NewAuthService(f.emps, f.jwt, f.blacklist, zap.NewNop())
	return f
}

func (f *fixture) seed(t *testing.T, username, password string, role employee.Role) *employee.Employee {
	t.Helper()
	e, err := employee.NewEmployee(employee.NewEmployeeInput{
		EmployeeCode: "EMP001",
		Username:     username,
		Password:     password,
		FirstName:    "Ravi",
		LastName:     "Kulkarni",
		Role:         role,
		Salary:       decimal.NewFromInt(30000),
	})
	require.NoError(t, err)
	require.NoError(t, f.emps.Create(context.Background(), e))
	return e
}

func requireCode(t *testing.T, err error, code string) {
	t.Helper()
	var de *shared.DomainError
	require.True(t, errors.As(err, &de), "expected domain error, got %v", err)
	assert.Equal(t, code, de.Code)
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	e := f.seed(t, "ravi", "secret123", employee.RoleManager)

	result, err := f.svc.Login(ctx, LoginInput{Username: " RAVI ", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token.AccessToken)
	assert.NotEmpty(t, result.Token.RefreshToken)
	assert.Equal(t, "Bearer", result.Token.TokenType)
	assert.Equal(t, e.ID, result.User.ID)
	assert.Equal(t, "manager", result.User.Role)
	assert.True(t, result.User.CanApproveLeave)

	claims, err := f.jwt.ValidateAccessToken(result.Token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, e.ID.String(), claims.UserID)

	stored, err := f.emps.FindByID(ctx, e.ID)
	require.NoError(t, err)
	assert.NotNil(t, stored.LastLoginAt)
}

func TestAuthService_LoginFailures(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	e := f.seed(t, "ravi", "secret123", employee.RoleEmployee)

	_, err := f.svc.Login(ctx, LoginInput{Username: "ravi", Password: "wrong-password"})
	requireCode(t, err, "INVALID_CREDENTIALS")

	_, err = f.svc.Login(ctx, LoginInput{Username: "nobody", Password: "secret123"})
	requireCode(t, err, "INVALID_CREDENTIALS")

	e.SetActive(false)
	require.NoError(t, f.emps.Update(ctx, e))
	_, err = f.svc.Login(ctx, LoginInput{Username: "ravi", Password: "secret123"})
	requireCode(t, err, "ACCOUNT_DEACTIVATED")
}

func TestAuthService_LoginRepositoryError(t *testing.T) {
	f := newFixture()
	f.emps.SetError(errors.New("connection reset"))

	_, err := f.svc.Login(context.Background(), LoginInput{Username: "ravi", Password: "secret123"})
	requireCode(t, err, "INTERNAL_ERROR")
}

func TestAuthService_RefreshRotatesToken(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.seed(t, "ravi", "secret123", employee.RoleEmployee)

	login, err := f.svc.Login(ctx, LoginInput{Username: "ravi", Password: "secret123"})
	require.NoError(t, err)

	refreshed, err := f.svc.RefreshToken(ctx, RefreshTokenInput{RefreshToken: login.Token.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.NotEqual(t, login.Token.RefreshToken, refreshed.RefreshToken)

	_, err = f.svc.RefreshToken(ctx, RefreshTokenInput{RefreshToken: login.Token.RefreshToken})
	requireCode(t, err, "TOKEN_REVOKED")
}

func TestAuthService_RefreshRejectsInvalidToken(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.seed(t, "ravi", "secret123", employee.RoleEmployee)

	_, err := f.svc.RefreshToken(ctx, RefreshTokenInput{RefreshToken: "not-a-jwt"})
	requireCode(t, err, "TOKEN_INVALID")

	login, err := f.svc.Login(ctx, LoginInput{Username: "ravi", Password: "secret123"})
	require.NoError(t, err)
	_, err = f.svc.RefreshToken(ctx, RefreshTokenInput{RefreshToken: login.Token.AccessToken})
	requireCode(t, err, "TOKEN_INVALID")
}

func TestAuthService_RefreshRejectsDeactivatedUser(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	e := f.seed(t, "ravi", "secret123", employee.RoleEmployee)

	login, err := f.svc.Login(ctx, LoginInput{Username: "ravi", Password: "secret123"})
	require.NoError(t, err)

	e.SetActive(false)
	require.NoError(t, f.emps.Update(ctx, e))

	_, err = f.svc.RefreshToken(ctx, RefreshTokenInput{RefreshToken: login.Token.RefreshToken})
	requireCode(t, err, "ACCOUNT_DEACTIVATED")
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.seed(t, "ravi", "secret123", employee.RoleEmployee)

	login, err := f.svc.Login(ctx, LoginInput{Username: "ravi", Password: "secret123"})
	require.NoError(t, err)
	claims, err := f.jwt.ValidateAccessToken(login.Token.AccessToken)
	require.NoError(t, err)

	err = f.svc.Logout(ctx, LogoutInput{
		AccessTokenJTI: claims.ID,
		AccessTokenTTL: claims.RemainingTTL(),
		RefreshToken:   login.Token.RefreshToken,
	})
	require.NoError(t, err)

	revoked, err := f.blacklist.IsRevoked(ctx, claims.ID)
	require.NoError(t, err)
	assert.True(t, revoked)

	_, err = f.svc.RefreshToken(ctx, RefreshTokenInput{RefreshToken: login.Token.RefreshToken})
	requireCode(t, err, "TOKEN_REVOKED")
}

func TestAuthService_GetCurrentUser(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	e := f.seed(t, "ravi", "secret123", employee.RoleHR)

	info, err := f.svc.GetCurrentUser(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ravi Kulkarni", info.FullName)
	assert.True(t, info.CanManagePeople)

	_, err = f.svc.GetCurrentUser(ctx, uuid.New())
	requireCode(t, err, "USER_NOT_FOUND")
}

func TestAuthService_ChangePassword(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	e := f.seed(t, "ravi", "secret123", employee.RoleEmployee)

	err := f.svc.ChangePassword(ctx, ChangePasswordInput{UserID: e.ID, CurrentPassword: "bad", NewPassword: "newsecret123"})
	requireCode(t, err, "INVALID_PASSWORD")

	require.NoError(t, f.svc.ChangePassword(ctx, ChangePasswordInput{
		UserID:          e.ID,
		CurrentPassword: "secret123",
		NewPassword:     "newsecret123",
	}))

	revoked, err := f.blacklist.IsUserRevoked(ctx, e.ID.String(), time.Now().Add(-time.Minute))
	require.NoError(t, err)
	assert.True(t, revoked)

	_, err = f.svc.Login(ctx, LoginInput{Username: "ravi", Password: "secret123"})
	requireCode(t, err, "INVALID_CREDENTIALS")
	_, err = f.svc.Login(ctx, LoginInput{Username: "ravi", Password: "newsecret123"})
	require.NoError(t, err)
}
