// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"passport/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAccountNotFound is a domain-specific error returned when an account is not found.
var ErrAccountNotFound = errors.New("account not found")

// ErrDuplicateUsername is returned when a create collides with an existing username.
// The store's unique constraint is the source of truth for this condition; the
// service-level existence check is only a fast path.
var ErrDuplicateUsername = errors.New("username already taken")

// AccountRepository defines the standard operations for account persistence.
// The application layer will depend on this interface, not the concrete implementation.
type AccountRepository interface {
	// Create persists a new account entity to the storage.
	// Returns ErrDuplicateUsername when the username is already present.
	Create(ctx context.Context, account *entity.Account) error

	// FindByUsername retrieves a single account by its unique username.
	FindByUsername(ctx context.Context, username string) (*entity.Account, error)

	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindAll retrieves every live account. No filtering or pagination.
	FindAll(ctx context.Context) ([]*entity.Account, error)

	// Update modifies the mutable fields (name, email) of an existing account
	// in a single atomic statement and returns the updated record. An empty
	// field is left unchanged.
	Update(ctx context.Context, id uuid.UUID, name, email string) (*entity.Account, error)

	// Delete permanently removes an account and returns the removed record.
	Delete(ctx context.Context, id uuid.UUID) (*entity.Account, error)
}
