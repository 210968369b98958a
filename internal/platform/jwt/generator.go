// Package jwtmw provides JWT token generation and the authentication middleware.
package jwtmw

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Generator issues the short-lived access tokens handed out by login and
// refresh. Longer-lived state lives in the session store, not in the token.
type Generator interface {
	// GenerateToken creates a signed access token for the given user.
	GenerateToken(userID uint, email string) (string, error)
}

type hmacGenerator struct {
	secret     []byte
	expiration time.Duration
}

// NewGenerator creates an HS256 token generator. The secret must match the
// one AuthRequired validates with.
func NewGenerator(secret string, expiration time.Duration) Generator {
	return &hmacGenerator{
		secret:     []byte(secret),
		expiration: expiration,
	}
}

// GenerateToken signs a token carrying the user id as sub plus the email.
// AuthRequired reads sub back to scope every transaction query to its owner.
func (g *hmacGenerator) GenerateToken(userID uint, email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   userID,
		"exp":   now.Add(g.expiration).Unix(),
		"iat":   now.Unix(),
		"email": email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(g.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}
