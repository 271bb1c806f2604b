package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"conduit/config"
	deliverycontext "conduit/internal/delivery/context"
	"conduit/internal/domain/service"
	"conduit/internal/infra/auth"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T) service.TokenService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-secret-key"
	cfg.Auth = &config.AuthConfig{TokenTTL: time.Hour}

	svc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	return svc
}

// invokeAuthenticated runs the Authenticate middleware against a request
// carrying the given Authorization header. The inner handler records the
// JwtContext it observed.
func invokeAuthenticated(t *testing.T, tokenSvc service.TokenService, authHeader string) (*httptest.ResponseRecorder, *deliverycontext.JwtContext) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/user", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var observed *deliverycontext.JwtContext
	handler := NewAuthMiddleware(tokenSvc).Authenticate(func(c echo.Context) error {
		observed = deliverycontext.GetJwtContext(c.Request().Context())
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))

	return rec, observed
}

func TestAuthMiddleware_ValidTokenPasses(t *testing.T) {
	tokenSvc := newTestTokenService(t)

	userID := uuid.New()
	token, err := tokenSvc.Generate(userID)
	require.NoError(t, err)

	rec, jwtCtx := invokeAuthenticated(t, tokenSvc, "Bearer "+token)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, jwtCtx)
	assert.Equal(t, userID, jwtCtx.UserID)
	assert.Equal(t, token, jwtCtx.Token)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	rec, jwtCtx := invokeAuthenticated(t, newTestTokenService(t), "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, jwtCtx)
}

func TestAuthMiddleware_NonBearerScheme(t *testing.T) {
	rec, jwtCtx := invokeAuthenticated(t, newTestTokenService(t), "Basic dXNlcjpwYXNz")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, jwtCtx)
}

// Garbage, tampered and expired tokens must all produce the same rejection
// body so the response reveals nothing about the failure mode.
func TestAuthMiddleware_InvalidTokensRejectedUniformly(t *testing.T) {
	tokenSvc := newTestTokenService(t)

	token, err := tokenSvc.Generate(uuid.New())
	require.NoError(t, err)
	tampered := token + "x"

	garbageRec, _ := invokeAuthenticated(t, tokenSvc, "Bearer not-a-jwt")
	tamperedRec, _ := invokeAuthenticated(t, tokenSvc, "Bearer "+tampered)

	assert.Equal(t, http.StatusUnauthorized, garbageRec.Code)
	assert.Equal(t, http.StatusUnauthorized, tamperedRec.Code)
	assert.Equal(t, garbageRec.Body.String(), tamperedRec.Body.String())
}
