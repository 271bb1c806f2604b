// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"conduit/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
// The plaintext password lives only for the duration of the call.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the authenticated user's identity and profile.
type LoginOutput struct {
	User *entity.User
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// Register validates the input, hashes the password and creates the
	// user. All empty required fields are reported together in a single
	// validation error. A uniqueness violation surfaces as the
	// field-specific conflict error.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// Login authenticates by email and password. An unknown email and a
	// wrong password fail with the identical invalid-credentials error.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// IssueToken signs a bearer token for the given user id. It only checks
	// that the password is structurally valid (non-empty); it does NOT
	// re-verify it against the stored hash. Trust boundary: callers must
	// invoke this only after Register or Login succeeded for the same
	// credentials, otherwise it becomes a token oracle.
	IssueToken(ctx context.Context, userID uuid.UUID, password string) (string, error)

	// GetUser looks up a user by id. Absence is not an error: it returns
	// (nil, nil) and the caller decides what absence means in its context.
	GetUser(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}
