package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/joinboard/joinboard-api/internal/domain"
)

// UserStore defines the interface for board-user (contact) persistence.
type UserStore interface {
	// List returns all board users ordered by username.
	List(ctx context.Context) ([]domain.User, error)

	// Create saves a new user to the store after domain validation.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// Update modifies an existing user's details.
	// Returns ErrUserNotFound if the user does not exist.
	Update(ctx context.Context, user *domain.User) error

	// Delete removes a user from the store by their ID. Assignment rows
	// referencing the user are removed by the schema's cascade.
	// Returns ErrUserNotFound if the user does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a new UserStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) UserStore
}
