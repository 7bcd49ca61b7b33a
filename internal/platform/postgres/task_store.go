package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/joinboard/joinboard-api/internal/domain"
	"github.com/joinboard/joinboard-api/internal/platform/logger"
	"github.com/joinboard/joinboard-api/internal/store"
)

// PostgresTaskStore implements the store.TaskStore interface
// using a PostgreSQL database as the storage backend.
type PostgresTaskStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTaskStore creates a new PostgreSQL implementation of the
// TaskStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
func NewPostgresTaskStore(db store.DBTX, logger *slog.Logger) *PostgresTaskStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTaskStore{
		db:     db,
		logger: logger.With(slog.String("component", "task_store")),
	}
}

// Ensure PostgresTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*PostgresTaskStore)(nil)

// taskSelectQuery joins tasks with their required category and prio.
const taskSelectQuery = `
	SELECT t.id, t.title, t.description, t.due_date, t.status,
	       t.category_id, t.prio_id, t.created_at, t.updated_at,
	       c.name, c.color, c.created_at,
	       p.level, p.icon_path, p.created_at
	FROM tasks t
	JOIN categories c ON c.id = t.category_id
	JOIN prios p ON p.id = t.prio_id
`

// scanTask reads one joined task row.
func scanTask(scanner interface{ Scan(dest ...any) error }) (*domain.Task, error) {
	var task domain.Task
	var category domain.Category
	var prio domain.Prio

	err := scanner.Scan(
		&task.ID,
		&task.Title,
		&task.Description,
		&task.DueDate,
		&task.Status,
		&task.CategoryID,
		&task.PrioID,
		&task.CreatedAt,
		&task.UpdatedAt,
		&category.Name,
		&category.Color,
		&category.CreatedAt,
		&prio.Level,
		&prio.IconPath,
		&prio.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	category.ID = task.CategoryID
	prio.ID = task.PrioID
	task.Category = &category
	task.Prio = &prio
	return &task, nil
}

// List implements store.TaskStore.List
func (s *PostgresTaskStore) List(ctx context.Context) ([]domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, taskSelectQuery+` ORDER BY t.created_at`)
	if err != nil {
		log.Error("failed to list tasks", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	tasks := []domain.Task{}
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			log.Error("failed to scan task row", slog.String("error", err.Error()))
			return nil, err
		}
		tasks = append(tasks, *task)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range tasks {
		if err := s.loadCollections(ctx, &tasks[i]); err != nil {
			return nil, err
		}
	}

	return tasks, nil
}

// Create implements store.TaskStore.Create
func (s *PostgresTaskStore) Create(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := task.Validate(); err != nil {
		log.Warn("task validation failed during create",
			slog.String("error", err.Error()),
			slog.String("task_id", task.ID.String()))
		return err
	}

	query := `
		INSERT INTO tasks (id, title, description, due_date, status, category_id, prio_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := s.db.ExecContext(ctx, query,
		task.ID,
		task.Title,
		task.Description,
		task.DueDate,
		task.Status,
		task.CategoryID,
		task.PrioID,
		task.CreatedAt,
		task.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			log.Warn("foreign key violation during task creation",
				slog.String("error", err.Error()),
				slog.String("task_id", task.ID.String()))
			return fmt.Errorf("%w: category or prio does not exist", store.ErrInvalidEntity)
		}
		log.Error("failed to create task",
			slog.String("error", err.Error()),
			slog.String("task_id", task.ID.String()))
		return err
	}

	log.Info("task created successfully",
		slog.String("task_id", task.ID.String()),
		slog.String("status", task.Status))
	return nil
}

// GetByID implements store.TaskStore.GetByID
func (s *PostgresTaskStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	row := s.db.QueryRowContext(ctx, taskSelectQuery+` WHERE t.id = $1`, id)
	task, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("task not found", slog.String("task_id", id.String()))
			return nil, store.ErrTaskNotFound
		}
		log.Error("failed to get task by ID",
			slog.String("error", err.Error()),
			slog.String("task_id", id.String()))
		return nil, err
	}

	if err := s.loadCollections(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

// Exists implements store.TaskStore.Exists
func (s *PostgresTaskStore) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM tasks WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// Update implements store.TaskStore.Update
func (s *PostgresTaskStore) Update(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := task.Validate(); err != nil {
		log.Warn("task validation failed during update",
			slog.String("error", err.Error()),
			slog.String("task_id", task.ID.String()))
		return err
	}

	query := `
		UPDATE tasks
		SET title = $2, description = $3, due_date = $4, status = $5,
		    category_id = $6, prio_id = $7, updated_at = $8
		WHERE id = $1
	`
	result, err := s.db.ExecContext(ctx, query,
		task.ID,
		task.Title,
		task.Description,
		task.DueDate,
		task.Status,
		task.CategoryID,
		task.PrioID,
		task.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: category or prio does not exist", store.ErrInvalidEntity)
		}
		log.Error("failed to update task",
			slog.String("error", err.Error()),
			slog.String("task_id", task.ID.String()))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return store.ErrTaskNotFound
	}

	return nil
}

// Delete implements store.TaskStore.Delete
func (s *PostgresTaskStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete task",
			slog.String("error", err.Error()),
			slog.String("task_id", id.String()))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return store.ErrTaskNotFound
	}

	log.Info("task deleted", slog.String("task_id", id.String()))
	return nil
}

// ReplaceAssignedUsers implements store.TaskStore.ReplaceAssignedUsers
func (s *PostgresTaskStore) ReplaceAssignedUsers(ctx context.Context, taskID uuid.UUID, userIDs []uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM task_assigned_users WHERE task_id = $1`, taskID); err != nil {
		log.Error("failed to clear task assignments",
			slog.String("error", err.Error()),
			slog.String("task_id", taskID.String()))
		return err
	}

	for _, userID := range userIDs {
		_, err := s.db.ExecContext(ctx,
			`INSERT INTO task_assigned_users (task_id, user_id) VALUES ($1, $2)
			 ON CONFLICT DO NOTHING`,
			taskID, userID)
		if err != nil {
			if isForeignKeyViolation(err) {
				return fmt.Errorf("%w: user with ID %s not found", store.ErrInvalidEntity, userID)
			}
			log.Error("failed to assign user to task",
				slog.String("error", err.Error()),
				slog.String("task_id", taskID.String()),
				slog.String("user_id", userID.String()))
			return err
		}
	}

	return nil
}

// WithTx implements store.TaskStore.WithTx
func (s *PostgresTaskStore) WithTx(tx *sql.Tx) store.TaskStore {
	return &PostgresTaskStore{
		db:     tx,
		logger: s.logger,
	}
}

// loadCollections populates the task's assigned users and subtasks.
func (s *PostgresTaskStore) loadCollections(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	userQuery := `
		SELECT u.id, u.username, u.email, u.contact_number, u.color, u.created_at, u.updated_at
		FROM users u
		JOIN task_assigned_users tau ON tau.user_id = u.id
		WHERE tau.task_id = $1
		ORDER BY u.username
	`
	rows, err := s.db.QueryContext(ctx, userQuery, task.ID)
	if err != nil {
		log.Error("failed to load assigned users",
			slog.String("error", err.Error()),
			slog.String("task_id", task.ID.String()))
		return err
	}
	defer func() { _ = rows.Close() }()

	task.AssignedUsers = []domain.User{}
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(
			&user.ID,
			&user.Username,
			&user.Email,
			&user.ContactNumber,
			&user.Color,
			&user.CreatedAt,
			&user.UpdatedAt,
		); err != nil {
			return err
		}
		task.AssignedUsers = append(task.AssignedUsers, user)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	subtaskQuery := `
		SELECT id, task_id, text, completed, created_at, updated_at
		FROM subtasks
		WHERE task_id = $1
		ORDER BY created_at
	`
	subtaskRows, err := s.db.QueryContext(ctx, subtaskQuery, task.ID)
	if err != nil {
		log.Error("failed to load subtasks",
			slog.String("error", err.Error()),
			slog.String("task_id", task.ID.String()))
		return err
	}
	defer func() { _ = subtaskRows.Close() }()

	task.Subtasks = []domain.Subtask{}
	for subtaskRows.Next() {
		var subtask domain.Subtask
		if err := subtaskRows.Scan(
			&subtask.ID,
			&subtask.TaskID,
			&subtask.Text,
			&subtask.Completed,
			&subtask.CreatedAt,
			&subtask.UpdatedAt,
		); err != nil {
			return err
		}
		task.Subtasks = append(task.Subtasks, subtask)
	}

	return subtaskRows.Err()
}
