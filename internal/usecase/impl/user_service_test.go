package impl

import (
	"context"
	"strings"
	"testing"

	"conduit/internal/domain/entity"
	domainerrors "conduit/internal/domain/errors"
	"conduit/internal/domain/repository"
	"conduit/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "jake",
		Email:    "jake@jake.jake",
		Password: "jakejake",
	}

	fx.hasher.On("Hash", input.Password).Return("hashed_password", nil)
	fx.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			user := args.Get(1).(*entity.User)
			user.ID = uuid.New()
		}).
		Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, input.Username, output.User.Username)
	assert.Equal(t, input.Email, output.User.Email)
	assert.Equal(t, "hashed_password", output.User.PasswordHash)
	assert.NotEqual(t, uuid.Nil, output.User.ID)
}

func TestUserService_Register_AggregatesValidationErrors(t *testing.T) {
	fx := createTestUserService(t)

	output, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		Username: "",
		Email:    "  ",
		Password: "",
	})

	assert.Nil(t, output)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	// Every empty field must be reported, not just the first one.
	assert.Contains(t, err.Error(), "username must not be empty")
	assert.Contains(t, err.Error(), "email must not be empty")
	assert.Contains(t, err.Error(), "password must not be empty")
}

func TestUserService_Register_EmailTaken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "jake",
		Email:    "jake@jake.jake",
		Password: "jakejake",
	}

	fx.hasher.On("Hash", input.Password).Return("hashed_password", nil)
	fx.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Return(errors.Wrap(domainerrors.ErrEmailTaken, "duplicate email"))

	output, err := fx.service.Register(ctx, input)

	assert.Nil(t, output)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailTaken))
}

func TestUserService_Register_UsernameTaken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "jake",
		Email:    "other@jake.jake",
		Password: "jakejake",
	}

	fx.hasher.On("Hash", input.Password).Return("hashed_password", nil)
	fx.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Return(errors.Wrap(domainerrors.ErrUsernameTaken, "duplicate username"))

	output, err := fx.service.Register(ctx, input)

	assert.Nil(t, output)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUsernameTaken))
}

func TestUserService_Register_HashFailure(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "jake",
		Email:    "jake@jake.jake",
		Password: strings.Repeat("x", 100),
	}

	fx.hasher.On("Hash", input.Password).Return("", errors.New("password length exceeds 72 bytes"))

	output, err := fx.service.Register(ctx, input)

	assert.Nil(t, output)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	stored := &entity.User{
		ID:           uuid.New(),
		Username:     "jake",
		Email:        "jake@jake.jake",
		PasswordHash: "hashed_password",
	}

	fx.userRepo.On("FindByEmail", ctx, stored.Email).Return(stored, nil)
	fx.hasher.On("Check", "jakejake", stored.PasswordHash).Return(true)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    stored.Email,
		Password: "jakejake",
	})

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, stored.ID, output.User.ID)
	assert.Equal(t, stored.Username, output.User.Username)
}

// Both failure modes must be indistinguishable to the caller so login cannot
// be used to probe which emails have accounts.
func TestUserService_Login_UnknownEmailAndWrongPasswordConflate(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.On("FindByEmail", ctx, "nobody@jake.jake").
		Return(nil, repository.ErrUserNotFound)

	_, unknownEmailErr := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "nobody@jake.jake",
		Password: "whatever",
	})

	stored := &entity.User{
		ID:           uuid.New(),
		Email:        "jake@jake.jake",
		PasswordHash: "hashed_password",
	}
	fx.userRepo.On("FindByEmail", ctx, stored.Email).Return(stored, nil)
	fx.hasher.On("Check", "wrongpass", stored.PasswordHash).Return(false)

	_, wrongPasswordErr := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    stored.Email,
		Password: "wrongpass",
	})

	require.Error(t, unknownEmailErr)
	require.Error(t, wrongPasswordErr)
	assert.True(t, errors.Is(unknownEmailErr, domainerrors.ErrInvalidCredentials))
	assert.True(t, errors.Is(wrongPasswordErr, domainerrors.ErrInvalidCredentials))
	assert.Equal(t, unknownEmailErr.Error(), wrongPasswordErr.Error())
}

func TestUserService_Login_RepositoryFailure(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	dbErr := domainerrors.NewDatabaseExecuteError(errors.New("connection refused"), "find user by email")
	fx.userRepo.On("FindByEmail", ctx, "jake@jake.jake").Return(nil, dbErr)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "jake@jake.jake",
		Password: "jakejake",
	})

	assert.Nil(t, output)
	require.Error(t, err)
	assert.False(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_IssueToken_Success(t *testing.T) {
	fx := createTestUserService(t)

	userID := uuid.New()
	fx.tokenService.On("Generate", userID).Return("signed.jwt.token", nil)

	token, err := fx.service.IssueToken(context.Background(), userID, "jakejake")

	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", token)
}

func TestUserService_IssueToken_EmptyPassword(t *testing.T) {
	fx := createTestUserService(t)

	token, err := fx.service.IssueToken(context.Background(), uuid.New(), "")

	assert.Empty(t, token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestUserService_GetUser_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	stored := &entity.User{
		ID:       uuid.New(),
		Username: "jake",
		Email:    "jake@jake.jake",
		Bio:      "I work at statefarm",
	}

	fx.userRepo.On("FindByID", ctx, stored.ID).Return(stored, nil)

	user, err := fx.service.GetUser(ctx, stored.ID)

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, stored.Bio, user.Bio)
}

// Absence is not an error at this layer.
func TestUserService_GetUser_NotFoundReturnsNil(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	fx.userRepo.On("FindByID", ctx, userID).Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.GetUser(ctx, userID)

	require.NoError(t, err)
	assert.Nil(t, user)
}
