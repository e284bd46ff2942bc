package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/nomina-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/nomina-backend-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

type actorKey struct{}

// WithActor stores the authenticated user on the context.
func WithActor(ctx context.Context, u user.User) context.Context {
	return context.WithValue(ctx, actorKey{}, u)
}

// ActorFromContext returns the user AuthRequired loaded for this request.
func ActorFromContext(ctx context.Context) (user.User, bool) {
	u, ok := ctx.Value(actorKey{}).(user.User)
	return u, ok
}

// AuthRequired accepts verified access tokens that have not been revoked and
// loads the current user from the store, so role and scope changes apply to
// tokens that are already issued.
func AuthRequired(jwtService jwt.Service, users user.UserRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			tokenType, ok := claims["type"].(string)
			if tokenType != jwt.TokenTypeAccess || !ok {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			if jwtService.IsTokenRevoked(jwtauth.TokenFromHeader(r)) {
				response.HandleError(w, auth.ErrTokenRevoked)
				return
			}

			userID, ok := claims["user_id"].(string)
			if !ok || userID == "" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			actor, err := users.GetByID(r.Context(), userID)
			if err != nil {
				if errors.Is(err, user.ErrUserNotFound) {
					response.HandleError(w, auth.ErrInvalidToken)
					return
				}
				slog.Error("failed to load token user", "user_id", userID, "error", err)
				response.HandleError(w, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
		}
		return http.HandlerFunc(hfn)
	}
}
