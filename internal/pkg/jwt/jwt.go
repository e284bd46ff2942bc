package jwt

import (
	"sync"
	"time"

	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

const TokenTypeAccess = "access"

type Service interface {
	// GenerateAccessToken only identifies the user. Role and scope are loaded
	// from the user store on every request.
	GenerateAccessToken(userID string, role user.Role) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
	AccessTokenTTL() time.Duration
	RevokeToken(token string, expiresAt int64)
	IsTokenRevoked(token string) bool
	// PurgeRevoked drops revoked tokens that have expired by now and reports
	// how many were removed.
	PurgeRevoked(now time.Time) int
}

type JWTService struct {
	accessTokenTTL time.Duration
	tokenAuth      *jwtauth.JWTAuth
	// token -> unix expiry
	revokedTokens map[string]int64
	mu            sync.RWMutex
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) AccessTokenTTL() time.Duration {
	return j.accessTokenTTL
}

func NewJWTService(secretKey string, accessTokenTTL time.Duration) Service {
	return &JWTService{
		accessTokenTTL: accessTokenTTL,
		tokenAuth:      jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		revokedTokens:  make(map[string]int64),
	}
}

func (j *JWTService) GenerateAccessToken(userID string, role user.Role) (token string, expiresAt int64, err error) {
	expiresAt = time.Now().Add(j.accessTokenTTL).Unix()

	claims := map[string]interface{}{
		"user_id": userID,
		"role":    string(role),
		"type":    TokenTypeAccess,
		"exp":     expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

func (j *JWTService) RevokeToken(token string, expiresAt int64) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.revokedTokens[token] = expiresAt
}

func (j *JWTService) IsTokenRevoked(token string) bool {
	j.mu.RLock()
	defer j.mu.RUnlock()
	_, revoked := j.revokedTokens[token]
	return revoked
}

func (j *JWTService) PurgeRevoked(now time.Time) int {
	j.mu.Lock()
	defer j.mu.Unlock()

	removed := 0
	for token, exp := range j.revokedTokens {
		if exp <= now.Unix() {
			delete(j.revokedTokens, token)
			removed++
		}
	}
	return removed
}
