package context

import (
	"context"

	"github.com/google/uuid"
)

// KeyJwtContext is the key for storing the verified token context.
const KeyJwtContext ContextKey = "jwt_context"

// JwtContext is the result of successfully verifying an incoming bearer
// token: the authenticated user's id plus the raw token string. It is
// produced once per request by the auth middleware and must not outlive the
// request it was derived for.
type JwtContext struct {
	UserID uuid.UUID
	Token  string
}

// WithJwtContext returns a new context carrying the verified token context.
func WithJwtContext(ctx context.Context, jwtCtx *JwtContext) context.Context {
	return context.WithValue(ctx, KeyJwtContext, jwtCtx)
}

// GetJwtContext extracts the verified token context, or nil if the request
// was not authenticated.
func GetJwtContext(ctx context.Context) *JwtContext {
	if jwtCtx, ok := ctx.Value(KeyJwtContext).(*JwtContext); ok {
		return jwtCtx
	}

	return nil
}
