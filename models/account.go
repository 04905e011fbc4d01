package models

import "time"

// Account is the shared identity record used for login. Role-specific
// detail lives in the profile collections, keyed by the account id.
type Account struct {
	ID           string    `bson:"id" json:"id"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	Role         Role      `bson:"role" json:"role"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// AccountSummary is the public view of an account returned on login.
type AccountSummary struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Summary returns the account's public fields.
func (a *Account) Summary() AccountSummary {
	return AccountSummary{ID: a.ID, Email: a.Email, Role: a.Role}
}
