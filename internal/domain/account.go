package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GuestUsernamePrefix is the prefix of generated guest account usernames.
const GuestUsernamePrefix = "guest_"

// Account validation errors.
var (
	ErrEmptyAccountID       = fmt.Errorf("%w: account ID cannot be empty", ErrValidation)
	ErrEmptyAccountUsername = fmt.Errorf("%w: account username cannot be empty", ErrValidation)
	ErrEmptyAccountEmail    = fmt.Errorf("%w: account email cannot be empty", ErrValidation)
	ErrEmptyPassword        = fmt.Errorf("%w: password cannot be empty", ErrValidation)
	ErrEmptyHashedPassword  = fmt.Errorf("%w: hashed password cannot be empty", ErrValidation)
)

// Account is an authentication identity. Registered accounts carry an
// email and a bcrypt hash; guest accounts have neither and are deleted
// when their session ends.
type Account struct {
	ID             uuid.UUID `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	Password       string    `json:"-"` // Plaintext, held only between registration and hashing
	HashedPassword string    `json:"-"` // Never exposed in JSON
	IsGuest        bool      `json:"is_guest"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewAccount creates a registered Account with the given credentials.
// The caller is responsible for hashing the password before storage.
// Returns an error if validation fails.
func NewAccount(username, email, password string) (*Account, error) {
	now := time.Now().UTC()
	account := &Account{
		ID:        uuid.New(),
		Username:  username,
		Email:     email,
		Password:  password,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := account.Validate(); err != nil {
		return nil, err
	}

	return account, nil
}

// NewGuestAccount creates an ephemeral guest Account with the given
// generated username. Guest accounts have no email and no usable password.
func NewGuestAccount(username string) (*Account, error) {
	if !strings.HasPrefix(username, GuestUsernamePrefix) {
		return nil, NewValidationError("username", "must use the guest prefix", ErrValidation)
	}

	now := time.Now().UTC()
	return &Account{
		ID:        uuid.New(),
		Username:  username,
		IsGuest:   true,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Validate checks if the Account has valid data. Guest accounts skip the
// email and password requirements.
func (a *Account) Validate() error {
	if a.ID == uuid.Nil {
		return ErrEmptyAccountID
	}
	if a.Username == "" {
		return ErrEmptyAccountUsername
	}
	if a.IsGuest {
		return nil
	}
	if a.Email == "" {
		return ErrEmptyAccountEmail
	}
	if a.Password == "" && a.HashedPassword == "" {
		return ErrEmptyPassword
	}
	return nil
}
