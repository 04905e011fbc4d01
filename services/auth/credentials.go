package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
	"golang.org/x/crypto/bcrypt"
)

// CredentialService hashes and verifies passwords and issues signed
// identity tokens. It does no I/O.
type CredentialService struct {
	secret   []byte
	tokenTTL time.Duration
}

// NewCredentialService builds a CredentialService with the process-wide
// signing key.
func NewCredentialService(secret string, tokenTTL time.Duration) (*CredentialService, error) {
	if secret == "" {
		return nil, fmt.Errorf("credential service requires a signing secret")
	}
	if tokenTTL <= 0 {
		tokenTTL = 72 * time.Hour
	}
	return &CredentialService{secret: []byte(secret), tokenTTL: tokenTTL}, nil
}

// HashPassword returns the bcrypt hash of the plaintext.
func (s *CredentialService) HashPassword(plaintext string) (string, error) {
	if plaintext == "" {
		return "", fmt.Errorf("password must not be empty")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// VerifyPassword reports whether the plaintext matches the stored hash.
// A mismatch is not an error.
func (s *CredentialService) VerifyPassword(plaintext, hashedValue string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedValue), []byte(plaintext)) == nil
}

// IssueToken creates a signed JWT carrying the account id as subject and
// the email. The token expires after the configured TTL.
func (s *CredentialService) IssueToken(accountID, email string) (string, error) {
	claims := jwt.MapClaims{
		"sub":   accountID,
		"email": email,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
