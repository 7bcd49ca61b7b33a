package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/joinboard/joinboard-api/internal/domain"
	"github.com/joinboard/joinboard-api/internal/platform/logger"
	"github.com/joinboard/joinboard-api/internal/store"
)

// PostgresSubtaskStore implements the store.SubtaskStore interface
// using a PostgreSQL database as the storage backend.
type PostgresSubtaskStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresSubtaskStore creates a new PostgreSQL implementation of the
// SubtaskStore interface.
func NewPostgresSubtaskStore(db store.DBTX, logger *slog.Logger) *PostgresSubtaskStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresSubtaskStore{
		db:     db,
		logger: logger.With(slog.String("component", "subtask_store")),
	}
}

// Ensure PostgresSubtaskStore implements store.SubtaskStore interface
var _ store.SubtaskStore = (*PostgresSubtaskStore)(nil)

// ListByTask implements store.SubtaskStore.ListByTask
func (s *PostgresSubtaskStore) ListByTask(ctx context.Context, taskID uuid.UUID) ([]domain.Subtask, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, task_id, text, completed, created_at, updated_at
		FROM subtasks
		WHERE task_id = $1
		ORDER BY created_at
	`
	rows, err := s.db.QueryContext(ctx, query, taskID)
	if err != nil {
		log.Error("failed to list subtasks",
			slog.String("error", err.Error()),
			slog.String("task_id", taskID.String()))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	subtasks := []domain.Subtask{}
	for rows.Next() {
		var subtask domain.Subtask
		if err := rows.Scan(
			&subtask.ID,
			&subtask.TaskID,
			&subtask.Text,
			&subtask.Completed,
			&subtask.CreatedAt,
			&subtask.UpdatedAt,
		); err != nil {
			log.Error("failed to scan subtask row", slog.String("error", err.Error()))
			return nil, err
		}
		subtasks = append(subtasks, subtask)
	}

	return subtasks, rows.Err()
}

// Create implements store.SubtaskStore.Create
func (s *PostgresSubtaskStore) Create(ctx context.Context, subtask *domain.Subtask) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := subtask.Validate(); err != nil {
		log.Warn("subtask validation failed during create",
			slog.String("error", err.Error()),
			slog.String("subtask_id", subtask.ID.String()))
		return err
	}

	query := `
		INSERT INTO subtasks (id, task_id, text, completed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.ExecContext(ctx, query,
		subtask.ID,
		nullableUUID(subtask.TaskID),
		subtask.Text,
		subtask.Completed,
		subtask.CreatedAt,
		subtask.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return store.ErrTaskNotFound
		}
		log.Error("failed to create subtask",
			slog.String("error", err.Error()),
			slog.String("subtask_id", subtask.ID.String()))
		return err
	}

	return nil
}

// GetByTaskAndID implements store.SubtaskStore.GetByTaskAndID
func (s *PostgresSubtaskStore) GetByTaskAndID(ctx context.Context, taskID, subtaskID uuid.UUID) (*domain.Subtask, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, task_id, text, completed, created_at, updated_at
		FROM subtasks
		WHERE id = $1 AND task_id = $2
	`

	var subtask domain.Subtask
	err := s.db.QueryRowContext(ctx, query, subtaskID, taskID).Scan(
		&subtask.ID,
		&subtask.TaskID,
		&subtask.Text,
		&subtask.Completed,
		&subtask.CreatedAt,
		&subtask.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("subtask not found in task scope",
				slog.String("subtask_id", subtaskID.String()),
				slog.String("task_id", taskID.String()))
			return nil, store.ErrSubtaskNotFound
		}
		log.Error("failed to get subtask",
			slog.String("error", err.Error()),
			slog.String("subtask_id", subtaskID.String()))
		return nil, err
	}

	return &subtask, nil
}

// Update implements store.SubtaskStore.Update
func (s *PostgresSubtaskStore) Update(ctx context.Context, subtask *domain.Subtask) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := subtask.Validate(); err != nil {
		log.Warn("subtask validation failed during update",
			slog.String("error", err.Error()),
			slog.String("subtask_id", subtask.ID.String()))
		return err
	}

	query := `
		UPDATE subtasks
		SET task_id = $2, text = $3, completed = $4, updated_at = $5
		WHERE id = $1
	`
	result, err := s.db.ExecContext(ctx, query,
		subtask.ID,
		nullableUUID(subtask.TaskID),
		subtask.Text,
		subtask.Completed,
		subtask.UpdatedAt,
	)
	if err != nil {
		log.Error("failed to update subtask",
			slog.String("error", err.Error()),
			slog.String("subtask_id", subtask.ID.String()))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return store.ErrSubtaskNotFound
	}

	return nil
}

// Delete implements store.SubtaskStore.Delete
func (s *PostgresSubtaskStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM subtasks WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete subtask",
			slog.String("error", err.Error()),
			slog.String("subtask_id", id.String()))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return store.ErrSubtaskNotFound
	}

	return nil
}

// DeleteByTask implements store.SubtaskStore.DeleteByTask
func (s *PostgresSubtaskStore) DeleteByTask(ctx context.Context, taskID uuid.UUID) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM subtasks WHERE task_id = $1`, taskID)
	if err != nil {
		log.Error("failed to delete subtasks for task",
			slog.String("error", err.Error()),
			slog.String("task_id", taskID.String()))
		return 0, err
	}

	return result.RowsAffected()
}

// WithTx implements store.SubtaskStore.WithTx
func (s *PostgresSubtaskStore) WithTx(tx *sql.Tx) store.SubtaskStore {
	return &PostgresSubtaskStore{
		db:     tx,
		logger: s.logger,
	}
}

// nullableUUID maps uuid.Nil onto SQL NULL for optional FK columns.
func nullableUUID(id uuid.UUID) any {
	if id == uuid.Nil {
		return nil
	}
	return id
}
