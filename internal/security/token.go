package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned when a profile token fails validation
var ErrInvalidToken = errors.New("invalid profile token")

// TokenIssuer signs and validates profile-scoped access tokens
type TokenIssuer struct {
	secret   []byte
	duration time.Duration
}

// NewTokenIssuer creates a token issuer. The secret must be non-empty.
func NewTokenIssuer(secret string, duration time.Duration) (*TokenIssuer, error) {
	if secret == "" {
		return nil, errors.New("token secret is required")
	}
	return &TokenIssuer{secret: []byte(secret), duration: duration}, nil
}

// Issue creates a signed token scoped to one profile
func (t *TokenIssuer) Issue(profileID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   profileID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(t.duration)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Validate parses a token and returns the profile ID it is scoped to
func (t *TokenIssuer) Validate(tokenString string) (string, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{"HS256"}))

	claims := &jwt.RegisteredClaims{}
	token, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return t.secret, nil
	})
	if err != nil || !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}
