package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// User validation errors. All wrap ErrValidation so the API layer maps
// them to a request error.
var (
	ErrEmptyUserID      = fmt.Errorf("%w: user ID cannot be empty", ErrValidation)
	ErrEmptyUsername    = fmt.Errorf("%w: username cannot be empty", ErrValidation)
	ErrEmptyUserEmail   = fmt.Errorf("%w: email cannot be empty", ErrValidation)
	ErrInvalidUserColor = fmt.Errorf("%w: color must be a 7-character hex value", ErrValidation)
	ErrUsernameTooLong  = fmt.Errorf("%w: username must be at most 30 characters", ErrValidation)
	ErrUserEmailTooLong = fmt.Errorf("%w: email must be at most 30 characters", ErrValidation)
)

// User represents a board contact that can be assigned to tasks. It is
// distinct from an Account, which is an authentication identity.
type User struct {
	ID            uuid.UUID `json:"id"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	ContactNumber string    `json:"contactNumber"`
	Color         string    `json:"color"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NewUser creates a new User with a fresh ID and UTC timestamps.
// Returns an error if validation fails.
func NewUser(username, email, contactNumber, color string) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		ID:            uuid.New(),
		Username:      username,
		Email:         email,
		ContactNumber: contactNumber,
		Color:         color,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}
	if u.Username == "" {
		return ErrEmptyUsername
	}
	if len(u.Username) > 30 {
		return ErrUsernameTooLong
	}
	if u.Email == "" {
		return ErrEmptyUserEmail
	}
	if len(u.Email) > 30 {
		return ErrUserEmailTooLong
	}
	if u.Color != "" && !validHexColor(u.Color) {
		return ErrInvalidUserColor
	}
	return nil
}

// validHexColor reports whether s looks like "#RRGGBB".
func validHexColor(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for _, c := range s[1:] {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
