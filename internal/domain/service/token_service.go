package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by the bearer tokens.
type Claims struct {
	UserID uuid.UUID
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying bearer tokens.
// The signing secret is injected once at construction and never exposed
// through any observable output.
type TokenService interface {
	// Generate creates a signed token encoding the user id and an issuance
	// timestamp.
	Generate(userID uuid.UUID) (string, error)

	// Validate checks a token string. Claims are only trusted after the
	// signature has been verified. Failures map onto the domain taxonomy:
	// ErrTokenMalformed, ErrTokenSignatureInvalid or ErrTokenExpired.
	Validate(tokenString string) (*Claims, error)
}
