package auth

import (
	"context"

	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/user"
)

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	// Logout revokes the raw bearer token until it would have expired anyway.
	Logout(ctx context.Context, token string) error
	Me(ctx context.Context, actor user.User) (user.UserResponse, error)
}
