package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/joinboard/joinboard-api/internal/domain"
)

// TaskStore defines the interface for task persistence. Read operations
// return tasks with their category, prio, assigned users, and subtasks
// populated.
type TaskStore interface {
	// List returns all tasks, fully populated, ordered by creation time.
	List(ctx context.Context) ([]domain.Task, error)

	// Create saves a new task row after domain validation. Collections
	// (assignments, subtasks) are written separately by the caller,
	// usually inside the same transaction.
	// Returns ErrInvalidEntity if the category or prio does not exist.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves a fully populated task.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)

	// Exists reports whether a task row with the given ID exists.
	Exists(ctx context.Context, id uuid.UUID) (bool, error)

	// Update modifies the task row (not its collections).
	// Returns ErrTaskNotFound if the task does not exist.
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes a task; its subtasks and assignment rows go with it.
	// Returns ErrTaskNotFound if the task does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// ReplaceAssignedUsers replaces the task's assignment set wholesale
	// with the given user IDs.
	// Returns ErrInvalidEntity if any user ID does not exist.
	ReplaceAssignedUsers(ctx context.Context, taskID uuid.UUID, userIDs []uuid.UUID) error

	// WithTx returns a new TaskStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) TaskStore
}
