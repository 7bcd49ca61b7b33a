package session

import "errors"

// Session service errors surfaced to the API layer.
var (
	// ErrInvalidCredentials is returned for both unknown-email and
	// wrong-password logins so the response cannot be used to probe which
	// emails are registered.
	ErrInvalidCredentials = errors.New("invalid login credentials")

	// ErrNotGuestAccount indicates a guest logout was attempted with a
	// token belonging to a regular registered account.
	ErrNotGuestAccount = errors.New("account is not a guest account")
)
