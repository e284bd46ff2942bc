package auth

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/nomina-backend-go/internal/fixtures"
	"github.com/cmlabs-hris/nomina-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/nomina-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/nomina-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt"

func setupTest(t *testing.T) (auth.AuthService, jwt.Service) {
	t.Helper()
	store := memory.NewStore(fixtures.MustDefault())
	jwtService := jwt.NewJWTService(testSecret, time.Hour)
	return NewAuthService(memory.NewUserRepository(store), jwtService), jwtService
}

// Test Login with valid credentials
func TestAuthService_Login_Success(t *testing.T) {
	t.Parallel()

	// Setup
	svc, jwtService := setupTest(t)

	// Act
	response, err := svc.Login(context.Background(), auth.LoginRequest{Email: "manager@nomina.pro", Password: "password123"})

	// Assert
	require.NoError(t, err)
	assert.NotEmpty(t, response.AccessToken)
	assert.Equal(t, "Bearer", response.TokenType)
	assert.Greater(t, response.AccessTokenExpiresIn, time.Now().Unix())

	token, err := jwtService.JWTAuth().Decode(response.AccessToken)
	require.NoError(t, err)
	userID, _ := token.Get("user_id")
	role, _ := token.Get("role")
	typ, _ := token.Get("type")
	assert.Equal(t, "102", userID)
	assert.Equal(t, string(user.RoleBranchManager), role)
	assert.Equal(t, jwt.TokenTypeAccess, typ)
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "admin@nomina.pro", "wrong-password"},
		{"unknown email", "nobody@nomina.pro", "password123"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, _ := setupTest(t)

			_, err := svc.Login(context.Background(), auth.LoginRequest{Email: tt.email, Password: tt.password})

			assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
		})
	}
}

func TestAuthService_Login_ValidationError(t *testing.T) {
	t.Parallel()

	svc, _ := setupTest(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{Email: "not-an-email"})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 2)
}

func TestAuthService_Logout_RevokesToken(t *testing.T) {
	t.Parallel()

	// Setup
	svc, jwtService := setupTest(t)
	ctx := context.Background()
	response, err := svc.Login(ctx, auth.LoginRequest{Email: "admin@nomina.pro", Password: "password123"})
	require.NoError(t, err)

	// Act
	err = svc.Logout(ctx, response.AccessToken)

	// Assert
	require.NoError(t, err)
	assert.True(t, jwtService.IsTokenRevoked(response.AccessToken))
	assert.ErrorIs(t, svc.Logout(ctx, response.AccessToken), auth.ErrTokenRevoked)

	// Revocation lasts until the token would have expired.
	assert.Equal(t, 0, jwtService.PurgeRevoked(time.Now()))
	assert.Equal(t, 1, jwtService.PurgeRevoked(time.Now().Add(2*time.Hour)))
}

func TestAuthService_Logout_InvalidToken(t *testing.T) {
	t.Parallel()

	svc, _ := setupTest(t)
	other := jwt.NewJWTService("another-secret", time.Hour)
	foreign, _, err := other.GenerateAccessToken("101", user.RoleSuperAdmin)
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Logout(context.Background(), "garbage"), auth.ErrInvalidToken)
	assert.ErrorIs(t, svc.Logout(context.Background(), foreign), auth.ErrInvalidToken)
}

func TestAuthService_Me(t *testing.T) {
	t.Parallel()

	svc, _ := setupTest(t)

	me, err := svc.Me(context.Background(), user.User{ID: "103"})
	require.NoError(t, err)
	assert.Equal(t, "Sofía Martínez", me.Name)
	assert.Equal(t, "Empleado", me.RoleLabel)
	require.NotNil(t, me.EmployeeID)
	assert.Equal(t, "3", *me.EmployeeID)

	_, err = svc.Me(context.Background(), user.User{ID: "999"})
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}
