package profileRepo

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrNotFound is returned when no profile exists for the given owner id.
var ErrNotFound = errors.New("profile not found")

// ProfileRepository defines the operation contract shared by every role
// variant. One generic Mongo implementation serves all six collections.
type ProfileRepository[T any] interface {
	// Create validates the fields, stamps ownership and timestamps, and
	// inserts the profile document.
	Create(ownerAccountID string, fields T) (*T, error)
	// FindByOwner retrieves the profile owned by the given account id.
	FindByOwner(ownerAccountID string) (*T, error)
	// UpdateByOwner merges only the supplied fields into the stored
	// profile, re-validates the merged document, and persists it.
	UpdateByOwner(ownerAccountID string, patch bson.M) (*T, error)
}
