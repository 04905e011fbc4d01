package auth

import (
	"context"
	"fmt"

	"google.golang.org/api/idtoken"
)

// TokenVerifier validates a third-party identity token and extracts the
// email it asserts.
type TokenVerifier interface {
	VerifyExternalToken(ctx context.Context, token string) (string, error)
}

// GoogleVerifier validates Google ID tokens against the configured OAuth
// client identifier.
type GoogleVerifier struct {
	clientID string
}

// NewGoogleVerifier builds a verifier for the given OAuth client ID.
func NewGoogleVerifier(clientID string) (*GoogleVerifier, error) {
	if clientID == "" {
		return nil, fmt.Errorf("google verifier requires a client ID")
	}
	return &GoogleVerifier{clientID: clientID}, nil
}

// VerifyExternalToken checks the token's signature, audience, and expiry,
// and returns the email claim. Any check failure wraps ErrFederationInvalid.
func (v *GoogleVerifier) VerifyExternalToken(ctx context.Context, token string) (string, error) {
	payload, err := idtoken.Validate(ctx, token, v.clientID)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFederationInvalid, err)
	}
	email, ok := payload.Claims["email"].(string)
	if !ok || email == "" {
		return "", fmt.Errorf("%w: token carries no email claim", ErrFederationInvalid)
	}
	return email, nil
}
