package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/joinboard/joinboard-api/internal/domain"
)

// CategoryStore defines the interface for category persistence.
type CategoryStore interface {
	// List returns all categories ordered by name.
	List(ctx context.Context) ([]domain.Category, error)

	// Create saves a new category after domain validation.
	Create(ctx context.Context, category *domain.Category) error

	// GetByID retrieves a category by ID.
	// Returns ErrCategoryNotFound if it does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error)

	// Delete removes a category. Tasks referencing it are removed by the
	// schema's cascade.
	// Returns ErrCategoryNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// PrioStore defines the interface for priority persistence.
type PrioStore interface {
	// List returns all prios ordered by creation time.
	List(ctx context.Context) ([]domain.Prio, error)

	// Create saves a new prio after domain validation.
	Create(ctx context.Context, prio *domain.Prio) error

	// GetByID retrieves a prio by ID.
	// Returns ErrPrioNotFound if it does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Prio, error)

	// Delete removes a prio. Tasks referencing it are removed by the
	// schema's cascade.
	// Returns ErrPrioNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
