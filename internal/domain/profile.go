package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrEmptyProfileAccount is returned when a profile has no owning account.
var ErrEmptyProfileAccount = fmt.Errorf("%w: profile must reference an account", ErrValidation)

// Profile holds the optional descriptive fields of an auth account.
// One profile per account.
type Profile struct {
	ID        uuid.UUID `json:"id"`
	AccountID uuid.UUID `json:"user"`
	Bio       string    `json:"bio"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewProfile creates a new Profile for the given account.
// Returns an error if validation fails.
func NewProfile(accountID uuid.UUID, bio, location string) (*Profile, error) {
	now := time.Now().UTC()
	profile := &Profile{
		ID:        uuid.New(),
		AccountID: accountID,
		Bio:       bio,
		Location:  location,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := profile.Validate(); err != nil {
		return nil, err
	}

	return profile, nil
}

// Validate checks if the Profile has valid data.
func (p *Profile) Validate() error {
	if p.AccountID == uuid.Nil {
		return ErrEmptyProfileAccount
	}
	return nil
}
