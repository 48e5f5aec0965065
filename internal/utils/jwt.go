package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/FanSt3/naturale-api/internal/models"
)

// TokenLifetime is how long an issued session token stays valid. Tokens are
// stateless: there is no server-side session table and no revocation before
// expiry other than rotating the signing secret.
const TokenLifetime = 7 * 24 * time.Hour

// TokenClaims are the claims encoded in a session token. The JSON keys match
// what the admin panel has always read from the cookie payload.
type TokenClaims struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	jwt.RegisteredClaims
}

// TokenManager signs and verifies session tokens with a shared secret.
// The secret comes from config at startup; there is no package-level state.
type TokenManager struct {
	secret []byte
}

// NewTokenManager creates a TokenManager for the given signing secret.
func NewTokenManager(secret string) *TokenManager {
	return &TokenManager{secret: []byte(secret)}
}

// Generate issues a signed token for the user with a 7-day expiry.
func (m *TokenManager) Generate(user *models.User) (string, error) {
	now := time.Now()
	claims := TokenClaims{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenLifetime)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Verify parses and validates a token. Any failure (bad signature, malformed,
// expired) comes back as ErrInvalidToken; callers must treat all of them
// uniformly as unauthenticated and never surface the reason to the client.
func (m *TokenManager) Verify(tokenString string) (*TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &TokenClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*TokenClaims)
	if !ok || claims.UserID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
