package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/joinboard/joinboard-api/internal/domain"
)

// SubtaskStore defines the interface for subtask persistence. The task
// link on a subtask row is the single source of truth for ownership, so
// every scoped read filters by task ID.
type SubtaskStore interface {
	// ListByTask returns the subtasks linked to the given task, ordered
	// by creation time.
	ListByTask(ctx context.Context, taskID uuid.UUID) ([]domain.Subtask, error)

	// Create saves a new subtask after domain validation.
	Create(ctx context.Context, subtask *domain.Subtask) error

	// GetByTaskAndID retrieves a subtask only if it is currently linked
	// to the given task. Returns ErrSubtaskNotFound otherwise.
	GetByTaskAndID(ctx context.Context, taskID, subtaskID uuid.UUID) (*domain.Subtask, error)

	// Update modifies an existing subtask, including its task link.
	// Returns ErrSubtaskNotFound if the subtask does not exist.
	Update(ctx context.Context, subtask *domain.Subtask) error

	// Delete permanently removes a subtask.
	// Returns ErrSubtaskNotFound if the subtask does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByTask removes every subtask linked to the given task and
	// returns the number of rows deleted. Used by the destructive
	// replace-on-update path.
	DeleteByTask(ctx context.Context, taskID uuid.UUID) (int64, error)

	// WithTx returns a new SubtaskStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) SubtaskStore
}
