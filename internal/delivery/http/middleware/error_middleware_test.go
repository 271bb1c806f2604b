package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "conduit/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func invokeErrorHandler(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/users", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	m.HandleHTTPError(err, c)

	return rec
}

func TestErrorMiddleware_RendersAppError(t *testing.T) {
	rec := invokeErrorHandler(t, errors.Wrap(domainerrors.ErrEmailTaken, "failed to create user"))

	assert.Equal(t, http.StatusConflict, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"code":"EMAIL_TAKEN"`)
	assert.Contains(t, body, "email is already registered")
}

func TestErrorMiddleware_RendersEchoHTTPError(t *testing.T) {
	rec := invokeErrorHandler(t, echo.NewHTTPError(http.StatusBadRequest, "malformed input"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "malformed input")
}

// Unexpected errors must never leak their internal detail to the caller.
func TestErrorMiddleware_UnexpectedErrorStaysGeneric(t *testing.T) {
	rec := invokeErrorHandler(t, errors.New(`pq: connection to "10.0.0.3:5432" refused`))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"code":"INTERNAL_ERROR"`)
	assert.NotContains(t, body, "10.0.0.3")
	assert.NotContains(t, body, "pq:")
}

// A database error implements AppError; its rendered details name only the
// failed operation, never the raw storage text.
func TestErrorMiddleware_DatabaseErrorHidesStorageText(t *testing.T) {
	dbErr := domainerrors.NewDatabaseExecuteError(errors.New("duplicate key value violates"), "failed to create user")
	rec := invokeErrorHandler(t, dbErr)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "failed to create user")
	assert.NotContains(t, body, "duplicate key value")
}
