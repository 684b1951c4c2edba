package service

import (
	"github.com/google/uuid"
)

// TokenService defines the interface for issuing and verifying session tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue creates a new signed, time-bounded session token for an account.
	Issue(accountID uuid.UUID) (string, error)

	// Verify checks signature integrity and expiry of a token string and
	// returns the bound account ID. All failure causes (malformed, tampered,
	// expired, wrong key) collapse into a single invalid-token error so that
	// callers cannot distinguish them.
	Verify(tokenString string) (uuid.UUID, error)
}
