// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"conduit/config"
	domainerrors "conduit/internal/domain/errors"
	"conduit/internal/domain/service"
	"conduit/internal/errors"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte        // Process-wide signing secret, injected once and never mutated.
	ttl    time.Duration // Time-to-live for issued tokens; zero disables expiry.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	var ttl time.Duration
	if cfg.Auth != nil {
		ttl = cfg.Auth.TokenTTL
	}

	return &jwtService{
		secret: []byte(cfg.SecretKey.Access),
		ttl:    ttl,
	}, nil
}

// Generate creates a signed token carrying the user id and an issuance timestamp.
func (s *jwtService) Generate(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:  userID.String(),
		IssuedAt: jwt.NewNumericDate(now),
	}
	if s.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(s.ttl))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Validate checks a token string and maps every failure onto the closed
// token-error taxonomy. golang-jwt only hands claims back after the keyfunc
// and signature check have passed, so claims are never trusted before the
// signature is verified.
func (s *jwtService) Validate(tokenString string) (*service.Claims, error) {
	registered := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, registered, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil {
		return nil, classifyTokenError(err)
	}
	if !token.Valid {
		return nil, domainerrors.ErrTokenSignatureInvalid.WrapMessage("token rejected")
	}

	userID, err := uuid.Parse(registered.Subject)
	if err != nil {
		return nil, domainerrors.ErrTokenMalformed.WrapMessage("token subject is not a user id")
	}

	return &service.Claims{
		UserID:           userID,
		RegisteredClaims: *registered,
	}, nil
}

// classifyTokenError maps golang-jwt sentinel errors onto the domain taxonomy.
func classifyTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return domainerrors.ErrTokenMalformed.WrapMessage("failed to parse token structure")
	case errors.Is(err, jwt.ErrTokenExpired):
		return domainerrors.ErrTokenExpired.WrapMessage("token expiry exceeded")
	default:
		// Signature mismatches and unverifiable tokens land here.
		return domainerrors.ErrTokenSignatureInvalid.WrapMessage("failed to verify token signature")
	}
}
