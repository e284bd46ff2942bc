package jwt

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_GenerateAccessToken_Claims(t *testing.T) {
	t.Parallel()

	svc := NewJWTService("test-secret-key-for-jwt", time.Hour)

	token, expiresAt, err := svc.GenerateAccessToken("101", user.RoleSuperAdmin)
	require.NoError(t, err)
	assert.Greater(t, expiresAt, time.Now().Unix())

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)

	claims, err := decoded.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "101", claims["user_id"])
	assert.Equal(t, "super_admin", claims["role"])
	assert.Equal(t, TokenTypeAccess, claims["type"])
}

func TestJWTService_RevokeAndPurge(t *testing.T) {
	t.Parallel()

	svc := NewJWTService("test-secret-key-for-jwt", time.Hour)
	now := time.Now()

	svc.RevokeToken("expired", now.Add(-time.Minute).Unix())
	svc.RevokeToken("live", now.Add(time.Hour).Unix())
	assert.True(t, svc.IsTokenRevoked("expired"))
	assert.True(t, svc.IsTokenRevoked("live"))
	assert.False(t, svc.IsTokenRevoked("other"))

	removed := svc.PurgeRevoked(now)

	assert.Equal(t, 1, removed)
	assert.False(t, svc.IsTokenRevoked("expired"))
	assert.True(t, svc.IsTokenRevoked("live"))
}
