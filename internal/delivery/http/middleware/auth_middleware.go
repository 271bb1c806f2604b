// Package middleware contains the echo middleware of the HTTP delivery.
package middleware

import (
	"strings"

	deliverycontext "conduit/internal/delivery/context"
	"conduit/internal/delivery/http/response"
	"conduit/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware guards protected endpoints with bearer token verification.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and, on success, makes a
// request-scoped JwtContext available to downstream handlers. Every token
// failure (malformed, bad signature or expired) is rejected with the same
// response so callers learn nothing from the rejection reason. The check
// never touches the repository, keeping the unauthenticated path cheap.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			// Uniform rejection regardless of the verification failure.
			return response.Unauthorized(c, "UNAUTHENTICATED", "Invalid or expired token")
		}

		jwtCtx := &deliverycontext.JwtContext{
			UserID: claims.UserID,
			Token:  tokenString,
		}

		// Scoped to this request only; a fresh context is built per request.
		ctx := deliverycontext.WithJwtContext(c.Request().Context(), jwtCtx)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
