package auth

import "errors"

// ErrInvalidCredentials covers both unknown email and wrong password, so a
// caller cannot probe which emails are registered.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrFederationInvalid is returned when a third-party identity token fails
// signature, audience, or expiry checks.
var ErrFederationInvalid = errors.New("federated token rejected")

// ErrAccountNotFound is returned when a verified federated identity has no
// local account. Federated login never auto-registers.
var ErrAccountNotFound = errors.New("account not found")
