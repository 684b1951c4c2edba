package impl

import (
	"context"
	"testing"

	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/repository"
	"passport/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAccountService_Register_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "bob",
		Name:     "Bob",
		Email:    "bob@example.com",
		Password: "pw1",
	}

	fx.accountRepo.On("FindByUsername", ctx, "bob").
		Return(nil, repository.ErrAccountNotFound)
	fx.hasher.On("Hash", "pw1").Return("hashed_password", nil)
	fx.accountRepo.On("Create", ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(args mock.Arguments) {
			account := args.Get(1).(*entity.Account)
			account.ID = uuid.New()
		}).
		Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "bob", output.Account.Username)
	assert.Equal(t, "hashed_password", output.Account.PasswordHash)
	assert.NotEqual(t, uuid.Nil, output.Account.ID)
}

func TestAccountService_Register_UsernameTaken(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	existing := &entity.Account{ID: uuid.New(), Username: "bob"}

	fx.accountRepo.On("FindByUsername", ctx, "bob").Return(existing, nil)

	output, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Username: "bob",
		Password: "pw1",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountAlreadyExists))
	// The existing record must not be modified.
	fx.accountRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAccountService_Register_LosesCreateRace(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()

	// The fast-path check passes, but a concurrent registration wins the
	// insert; the store's unique constraint resolves the race.
	fx.accountRepo.On("FindByUsername", ctx, "bob").
		Return(nil, repository.ErrAccountNotFound)
	fx.hasher.On("Hash", "pw1").Return("hashed_password", nil)
	fx.accountRepo.On("Create", ctx, mock.AnythingOfType("*entity.Account")).
		Return(repository.ErrDuplicateUsername)

	output, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Username: "bob",
		Password: "pw1",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountAlreadyExists))
}

func TestAccountService_Register_HashFailure(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()

	fx.accountRepo.On("FindByUsername", ctx, "bob").
		Return(nil, repository.ErrAccountNotFound)
	fx.hasher.On("Hash", "pw1").Return("", errors.New("bcrypt failure"))

	output, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Username: "bob",
		Password: "pw1",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
}

func TestAccountService_Login_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	account := &entity.Account{
		ID:           uuid.New(),
		Username:     "bob",
		PasswordHash: "hashed_password",
	}

	fx.accountRepo.On("FindByUsername", ctx, "bob").Return(account, nil)
	fx.hasher.On("Check", "pw1", "hashed_password").Return(true)
	fx.tokenService.On("Issue", account.ID).Return("signed.session.token", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "bob", Password: "pw1"})

	require.NoError(t, err)
	assert.Equal(t, "signed.session.token", output.Token)
	assert.Equal(t, account, output.Account)
}

func TestAccountService_Login_UnknownUsername(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	fx.accountRepo.On("FindByUsername", ctx, "ghost").
		Return(nil, repository.ErrAccountNotFound)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "ghost", Password: "pw1"})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	account := &entity.Account{
		ID:           uuid.New(),
		Username:     "bob",
		PasswordHash: "hashed_password",
	}

	fx.accountRepo.On("FindByUsername", ctx, "bob").Return(account, nil)
	fx.hasher.On("Check", "wrong", "hashed_password").Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "bob", Password: "wrong"})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	fx.tokenService.AssertNotCalled(t, "Issue", mock.Anything)
}

func TestAccountService_GetAccount_NotFound(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	id := uuid.New()
	fx.accountRepo.On("FindByID", ctx, id).
		Return(nil, repository.ErrAccountNotFound)

	account, err := fx.service.GetAccount(ctx, id)

	assert.Nil(t, account)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
}

func TestAccountService_ListAccounts(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	accounts := []*entity.Account{
		{ID: uuid.New(), Username: "alice"},
		{ID: uuid.New(), Username: "bob"},
	}
	fx.accountRepo.On("FindAll", ctx).Return(accounts, nil)

	got, err := fx.service.ListAccounts(ctx)

	require.NoError(t, err)
	assert.Equal(t, accounts, got)
}

func TestAccountService_UpdateAccount_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	id := uuid.New()
	updated := &entity.Account{ID: id, Username: "bob", Name: "Robert", Email: "rob@example.com"}

	fx.accountRepo.On("Update", ctx, id, "Robert", "rob@example.com").
		Return(updated, nil)

	account, err := fx.service.UpdateAccount(ctx, &usecase.UpdateAccountInput{
		ID:    id,
		Name:  "Robert",
		Email: "rob@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, updated, account)
}

func TestAccountService_UpdateAccount_NothingToUpdate(t *testing.T) {
	fx := createTestAccountService(t)

	account, err := fx.service.UpdateAccount(context.Background(), &usecase.UpdateAccountInput{
		ID: uuid.New(),
	})

	assert.Nil(t, account)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	fx.accountRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAccountService_UpdateAccount_NotFound(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	id := uuid.New()
	fx.accountRepo.On("Update", ctx, id, "Robert", "").
		Return(nil, repository.ErrAccountNotFound)

	account, err := fx.service.UpdateAccount(ctx, &usecase.UpdateAccountInput{ID: id, Name: "Robert"})

	assert.Nil(t, account)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
}

func TestAccountService_DeleteAccount_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	id := uuid.New()
	removed := &entity.Account{ID: id, Username: "bob"}

	fx.accountRepo.On("Delete", ctx, id).Return(removed, nil)

	account, err := fx.service.DeleteAccount(ctx, id)

	require.NoError(t, err)
	assert.Equal(t, removed, account)
}

func TestAccountService_DeleteAccount_NotFound(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	id := uuid.New()
	fx.accountRepo.On("Delete", ctx, id).
		Return(nil, repository.ErrAccountNotFound)

	account, err := fx.service.DeleteAccount(ctx, id)

	assert.Nil(t, account)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
}
