// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is the core entity in the system, representing a registered user's
// persisted identity record.
type Account struct {
	ID           uuid.UUID // The unique identifier, assigned by the store on creation. Immutable.
	Username     string    // The login identifier. Unique across all live accounts, immutable after creation.
	Name         string    // The user's display name. Mutable, no uniqueness constraint.
	Email        string    // The user's contact email. Mutable, no uniqueness constraint.
	PasswordHash string    // The bcrypt hash of the password. Never the plaintext, never exposed over the API.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}
