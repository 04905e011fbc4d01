package accountRepo

import (
	"errors"

	"lawlink/models"
)

// ErrDuplicateEmail is returned by Create when the email is already taken.
// The unique index on email is what actually arbitrates concurrent signups.
var ErrDuplicateEmail = errors.New("an account with this email already exists")

// AccountRepository defines data access for the shared identity records.
type AccountRepository interface {
	// Create inserts a new account record.
	Create(acct *models.Account) error
	// GetByEmail retrieves an account by email, or (nil, nil) when absent.
	GetByEmail(email string) (*models.Account, error)
	// GetByID retrieves an account by its unique ID, or (nil, nil) when absent.
	GetByID(id string) (*models.Account, error)
	// Delete removes an account record. Used only to compensate a failed
	// profile write during registration.
	Delete(id string) error
}
