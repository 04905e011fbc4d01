package registration

import (
	"fmt"

	accountRepo "lawlink/database/repository/account"
	profileRepo "lawlink/database/repository/profile"
	"lawlink/models"
	"lawlink/services/auth"
	"lawlink/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// Orchestrator coordinates the account + profile writes for one role
// variant and the owner-keyed profile reads and updates thereafter.
type Orchestrator[T any, PT models.ProfilePtr[T]] struct {
	Accounts accountRepo.AccountRepository
	Profiles profileRepo.ProfileRepository[T]
	Creds    *auth.CredentialService
	Role     models.Role
}

// Register validates everything up front, then creates the account and the
// profile referencing it. A failed profile write triggers a compensating
// account delete so no orphaned account survives the registration.
func (o *Orchestrator[T, PT]) Register(email, password string, fields T) (*T, error) {
	if email == "" {
		return nil, &models.ValidationError{Field: "email", Reason: "required"}
	}
	if password == "" {
		return nil, &models.ValidationError{Field: "password", Reason: "required"}
	}
	if err := PT(&fields).Validate(); err != nil {
		return nil, err
	}

	hashed, err := o.Creds.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("registration failed, please try again")
	}

	acct := models.Account{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: hashed,
		Role:         o.Role,
	}
	if err := o.Accounts.Create(&acct); err != nil {
		return nil, err
	}

	profile, err := o.Profiles.Create(acct.ID, fields)
	if err != nil {
		// Compensate so the account does not outlive its failed profile.
		if delErr := o.Accounts.Delete(acct.ID); delErr != nil {
			utils.GetLogger().Error("Register: failed to compensate account after profile write failure",
				zap.String("accountId", acct.ID), zap.Error(delErr))
		}
		return nil, err
	}
	return profile, nil
}

// GetProfile fetches the profile owned by the given account id.
func (o *Orchestrator[T, PT]) GetProfile(ownerAccountID string) (*T, error) {
	return o.Profiles.FindByOwner(ownerAccountID)
}

// UpdateProfile merges the supplied fields into the stored profile.
func (o *Orchestrator[T, PT]) UpdateProfile(ownerAccountID string, patch bson.M) (*T, error) {
	return o.Profiles.UpdateByOwner(ownerAccountID, patch)
}
