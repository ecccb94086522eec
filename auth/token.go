package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/shipekarrohit/backend-project/config"
)

// Claims is the JWT payload carried by issued tokens. It embeds
// jwt.RegisteredClaims for the standard exp/iat fields and adds the identity
// attributes the middleware and handlers need. Claims are frozen at issuance
// time: a role change after login is not reflected until the token expires.
type Claims struct {
	UserID int64  `json:"userId"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed, expiring bearer credentials.
// It is stateless: verification is a pure function of the token string and
// the shared secret, there is no revocation list.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a TokenService from the auth configuration.
func NewTokenService(cfg config.AuthConfig) *TokenService {
	return &TokenService{
		secret: []byte(cfg.JWTSecret),
		ttl:    cfg.TokenDuration,
	}
}

// Issue produces a signed HS256 token carrying the given identity claims,
// with issued-at and expiry set from the configured TTL.
func (s *TokenService) Issue(userID int64, email string, role Role) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Subject:   fmt.Sprintf("%d", userID),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// Verify checks signature integrity and expiry. It is deliberately a
// two-outcome operation: callers get either valid claims or false, never an
// error. Malformed input, a signature mismatch, an unexpected signing
// algorithm and an exceeded expiry all collapse into the same invalid
// outcome, which callers translate to a 401.
func (s *TokenService) Verify(tokenString string) (*Claims, bool) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, false
	}
	if claims.UserID == 0 {
		return nil, false
	}
	return claims, true
}
