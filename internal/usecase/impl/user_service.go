// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "conduit/internal/delivery/context"
	"conduit/internal/domain/entity"
	domainerrors "conduit/internal/domain/errors"
	"conduit/internal/domain/repository"
	"conduit/internal/domain/service"
	"conduit/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete user registration process: aggregate
// input validation, password hashing and a single atomic insert. The
// repository's conflict signal is authoritative for uniqueness; on any
// failure no partial record exists.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("username", input.Username), slog.String("email", input.Email))

	if err := validateRegisterInput(input); err != nil {
		srv.log(ctx).Warn("Registration validation failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password during registration")
	}

	newUser := &entity.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashedPassword,
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		srv.log(ctx).Warn("Failed to create user", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", newUser.ID))

	return &usecase.RegisterOutput{User: newUser}, nil
}

// validateRegisterInput aggregates every empty required field into one
// validation error rather than stopping at the first violation.
func validateRegisterInput(input *usecase.RegisterInput) error {
	var violations []string
	if strings.TrimSpace(input.Username) == "" {
		violations = append(violations, "username must not be empty")
	}
	if strings.TrimSpace(input.Email) == "" {
		violations = append(violations, "email must not be empty")
	}
	if input.Password == "" {
		violations = append(violations, "password must not be empty")
	}

	if len(violations) > 0 {
		return errors.Wrap(domainerrors.ErrValidationFailed, strings.Join(violations, "; "))
	}

	return nil
}

// Login orchestrates the user login process. An unknown email and a wrong
// password both fail with the identical invalid-credentials error so the
// caller cannot probe for account existence.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting user login", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		srv.log(ctx).Error("Failed to load user for login", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	// Check the password after the lookup (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{User: user}, nil
}

// IssueToken signs a bearer token for the given user id. Only the password's
// structural validity is checked here. The credential itself must already
// have been verified by the Register/Login call that precedes this one.
func (srv *userService) IssueToken(ctx context.Context, userID uuid.UUID, password string) (string, error) {
	if password == "" {
		return "", errors.Wrap(domainerrors.ErrValidationFailed, "password must not be empty")
	}

	token, err := srv.tokenService.Generate(userID)
	if err != nil {
		srv.log(ctx).Error("Failed to generate token", slog.Any("userID", userID), slog.Any("error", err))

		return "", errors.Wrap(err, "failed to generate token")
	}

	return token, nil
}

// GetUser looks up a user by id. A missing user is not an error at this
// layer: the routing layer decides whether absence is 404 for its context.
func (srv *userService) GetUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	srv.log(ctx).Debug("Getting user", slog.Any("userID", userID))

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, nil
		}

		srv.log(ctx).Error("Failed to get user", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return user, nil
}
