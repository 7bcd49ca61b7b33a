package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/joinboard/joinboard-api/internal/domain"
)

// ProfileStore defines the interface for user-profile persistence.
type ProfileStore interface {
	// List returns all profiles ordered by creation time.
	List(ctx context.Context) ([]domain.Profile, error)

	// Create saves a new profile after domain validation.
	// Returns ErrInvalidEntity if the referenced account does not exist.
	Create(ctx context.Context, profile *domain.Profile) error

	// GetByID retrieves a profile by ID.
	// Returns ErrProfileNotFound if the profile does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)

	// Update modifies an existing profile.
	// Returns ErrProfileNotFound if the profile does not exist.
	Update(ctx context.Context, profile *domain.Profile) error

	// Delete removes a profile.
	// Returns ErrProfileNotFound if the profile does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
