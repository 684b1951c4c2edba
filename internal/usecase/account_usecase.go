// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"github.com/google/uuid"

	"passport/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Username string
	Name     string
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string
	Password string
}

// UpdateAccountInput defines the mutable fields of an account.
// Username and password are immutable through this path.
type UpdateAccountInput struct {
	ID    uuid.UUID
	Name  string
	Email string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created account's basic information.
type RegisterOutput struct {
	Account *entity.Account
}

// LoginOutput returns the session token issued after a successful login.
type LoginOutput struct {
	Token   string
	Account *entity.Account
}

// AccountUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., HTTP handlers) will depend on.
type AccountUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	GetAccount(ctx context.Context, id uuid.UUID) (*entity.Account, error)
	ListAccounts(ctx context.Context) ([]*entity.Account, error)
	UpdateAccount(ctx context.Context, input *UpdateAccountInput) (*entity.Account, error)
	DeleteAccount(ctx context.Context, id uuid.UUID) (*entity.Account, error)
}
