// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "conduit/internal/delivery/context"
	"conduit/internal/delivery/http/response"
	"conduit/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

// registerRequest is the wire shape of a registration call. Emptiness of the
// required fields is the service's validation concern; the email format
// check happens here at the boundary.
type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// userResponse is the external representation of a user. It never carries
// the password hash.
type userResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Bio      string `json:"bio"`
	Image    string `json:"image"`
	Token    string `json:"token,omitempty"`
}

// Register handles the user registration request and issues the first token
// for the fresh account.
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	token, err := h.uc.IssueToken(c.Request().Context(), output.User.ID, req.Password)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, userResponse{
		Username: output.User.Username,
		Email:    output.User.Email,
		Bio:      output.User.Bio,
		Image:    output.User.Image,
		Token:    token,
	}, "User registered successfully")
}

// Login handles the user login request and issues a token after the
// credential check succeeded.
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	token, err := h.uc.IssueToken(c.Request().Context(), output.User.ID, req.Password)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, userResponse{
		Username: output.User.Username,
		Email:    output.User.Email,
		Bio:      output.User.Bio,
		Image:    output.User.Image,
		Token:    token,
	}, "Login successful")
}

// GetCurrentUser returns the authenticated caller's profile. The auth
// middleware guarantees a JwtContext is present on the request context.
func (h *UserHandler) GetCurrentUser(c echo.Context) error {
	jwtCtx := deliverycontext.GetJwtContext(c.Request().Context())
	if jwtCtx == nil {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Missing authentication context")
	}

	user, err := h.uc.GetUser(c.Request().Context(), jwtCtx.UserID)
	if err != nil {
		return errors.WithStack(err)
	}
	if user == nil {
		// Absence is this layer's error to interpret: the token was valid
		// but the account no longer exists.
		return response.NotFound(c, "USER_NOT_FOUND", "User not found")
	}

	return response.Success(c, http.StatusOK, userResponse{
		Username: user.Username,
		Email:    user.Email,
		Bio:      user.Bio,
		Image:    user.Image,
		Token:    jwtCtx.Token,
	}, "")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
