package auth

import (
	"context"
	"fmt"

	accountRepo "lawlink/database/repository/account"
	"lawlink/models"
	"lawlink/utils"

	"go.uber.org/zap"
)

// AuthResponse carries the issued token plus the account's public fields.
type AuthResponse struct {
	ID    string      `json:"id"`
	Email string      `json:"email"`
	Role  models.Role `json:"role"`
	Token string      `json:"token"`
}

// AuthService defines the login flows.
type AuthService interface {
	// Authenticate verifies email/password credentials and issues a token.
	Authenticate(email, password string) (*AuthResponse, error)
	// FederatedLogin validates a third-party identity token and resolves
	// the matching local account. It never auto-registers.
	FederatedLogin(ctx context.Context, token string) (*AuthResponse, error)
}

// DefaultAuthService is the production implementation.
type DefaultAuthService struct {
	Accounts   accountRepo.AccountRepository
	Creds      *CredentialService
	Federation TokenVerifier
}

// Authenticate looks the account up by email and verifies the password.
// Unknown email and wrong password both fail with ErrInvalidCredentials.
func (s *DefaultAuthService) Authenticate(email, password string) (*AuthResponse, error) {
	acct, err := s.Accounts.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to fetch account", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if acct == nil {
		return nil, ErrInvalidCredentials
	}
	if !s.Creds.VerifyPassword(password, acct.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.Creds.IssueToken(acct.ID, acct.Email)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to issue token", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	return &AuthResponse{ID: acct.ID, Email: acct.Email, Role: acct.Role, Token: token}, nil
}

// FederatedLogin verifies the external token and loads the account the
// asserted email belongs to. The caller's token is echoed back on success.
func (s *DefaultAuthService) FederatedLogin(ctx context.Context, token string) (*AuthResponse, error) {
	email, err := s.Federation.VerifyExternalToken(ctx, token)
	if err != nil {
		return nil, err
	}

	acct, err := s.Accounts.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("FederatedLogin: failed to fetch account", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if acct == nil {
		return nil, ErrAccountNotFound
	}
	return &AuthResponse{ID: acct.ID, Email: acct.Email, Role: acct.Role, Token: token}, nil
}
