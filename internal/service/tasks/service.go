// Package tasks implements the task board's consistency rules: task
// CRUD with transactional collection writes, task-scoped subtask CRUD
// with a forced ownership link, and wholesale assignment replacement.
package tasks

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/joinboard/joinboard-api/internal/domain"
	"github.com/joinboard/joinboard-api/internal/platform/logger"
	"github.com/joinboard/joinboard-api/internal/store"
)

// Service coordinates task, subtask, and assignment writes. Multi-row
// mutations run inside a single database transaction so a failure
// mid-sequence cannot strand a task without its subtasks.
type Service struct {
	db           *sql.DB
	taskStore    store.TaskStore
	subtaskStore store.SubtaskStore
	logger       *slog.Logger
}

// NewService creates a task Service with the given dependencies.
func NewService(
	db *sql.DB,
	taskStore store.TaskStore,
	subtaskStore store.SubtaskStore,
	log *slog.Logger,
) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		db:           db,
		taskStore:    taskStore,
		subtaskStore: subtaskStore,
		logger:       log.With(slog.String("component", "task_service")),
	}
}

// SubtaskInput is one embedded subtask entry in a task write. Embedded
// entries have no stable identity: a task update that includes them
// recreates every subtask with a fresh ID.
type SubtaskInput struct {
	Text      string
	Completed bool
}

// CreateTaskInput carries the validated fields for a new task.
type CreateTaskInput struct {
	Title           string
	Description     string
	DueDate         domain.Date
	Status          string
	CategoryID      uuid.UUID
	PrioID          uuid.UUID
	AssignedUserIDs []uuid.UUID
	Subtasks        []SubtaskInput
}

// UpdateTaskInput carries a partial task update. Nil pointers mean "field
// absent, leave unchanged": a nil AssignedUserIDs keeps the current
// assignment set, while a pointer to an empty slice clears it.
type UpdateTaskInput struct {
	Title           *string
	Description     *string
	DueDate         *domain.Date
	Status          *string
	CategoryID      *uuid.UUID
	PrioID          *uuid.UUID
	AssignedUserIDs *[]uuid.UUID
	Subtasks        *[]SubtaskInput
}

// SubtaskPatch carries a partial subtask update. The task link cannot be
// changed through a patch: the scoped endpoints force it back to the
// task in the URL.
type SubtaskPatch struct {
	Text      *string
	Completed *bool
}

// List returns all tasks, fully populated.
func (s *Service) List(ctx context.Context) ([]domain.Task, error) {
	return s.taskStore.List(ctx)
}

// Get returns one task, fully populated.
// Returns store.ErrTaskNotFound if it does not exist.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	return s.taskStore.GetByID(ctx, id)
}

// Create creates a task together with its assignments and embedded
// subtasks in one transaction, and returns the populated result.
func (s *Service) Create(ctx context.Context, input CreateTaskInput) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := domain.NewTask(
		input.Title,
		input.Description,
		input.DueDate,
		input.Status,
		input.CategoryID,
		input.PrioID,
	)
	if err != nil {
		return nil, err
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		taskStore := s.taskStore.WithTx(tx)
		subtaskStore := s.subtaskStore.WithTx(tx)

		if err := taskStore.Create(ctx, task); err != nil {
			return err
		}
		if len(input.AssignedUserIDs) > 0 {
			if err := taskStore.ReplaceAssignedUsers(ctx, task.ID, input.AssignedUserIDs); err != nil {
				return err
			}
		}
		return createSubtasks(ctx, subtaskStore, task.ID, input.Subtasks)
	})
	if err != nil {
		return nil, err
	}

	log.Info("task created",
		slog.String("task_id", task.ID.String()),
		slog.Int("subtasks", len(input.Subtasks)),
		slog.Int("assigned_users", len(input.AssignedUserIDs)))

	return s.taskStore.GetByID(ctx, task.ID)
}

// Update applies a partial update to the task row and, when the
// corresponding fields are present, replaces the assignment set
// wholesale and recreates the subtask list from scratch. Everything runs
// in one transaction.
// Returns store.ErrTaskNotFound if the task does not exist.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateTaskInput) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		taskStore := s.taskStore.WithTx(tx)
		subtaskStore := s.subtaskStore.WithTx(tx)

		task, err := taskStore.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if input.Title != nil {
			task.Title = *input.Title
		}
		if input.Description != nil {
			task.Description = *input.Description
		}
		if input.DueDate != nil {
			task.DueDate = *input.DueDate
		}
		if input.Status != nil {
			task.Status = *input.Status
		}
		if input.CategoryID != nil {
			task.CategoryID = *input.CategoryID
		}
		if input.PrioID != nil {
			task.PrioID = *input.PrioID
		}
		task.UpdatedAt = time.Now().UTC()

		if err := taskStore.Update(ctx, task); err != nil {
			return err
		}

		if input.AssignedUserIDs != nil {
			if err := taskStore.ReplaceAssignedUsers(ctx, task.ID, *input.AssignedUserIDs); err != nil {
				return err
			}
		}

		if input.Subtasks != nil {
			deleted, err := subtaskStore.DeleteByTask(ctx, task.ID)
			if err != nil {
				return err
			}
			log.Debug("replacing task subtasks",
				slog.String("task_id", task.ID.String()),
				slog.Int64("deleted", deleted),
				slog.Int("created", len(*input.Subtasks)))
			if err := createSubtasks(ctx, subtaskStore, task.ID, *input.Subtasks); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.taskStore.GetByID(ctx, id)
}

// Delete removes a task and, via the schema's cascade, its subtasks and
// assignment rows.
// Returns store.ErrTaskNotFound if the task does not exist.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.taskStore.Delete(ctx, id)
}

// ListSubtasks returns the subtasks linked to the given task.
// Returns store.ErrTaskNotFound if the task does not exist.
func (s *Service) ListSubtasks(ctx context.Context, taskID uuid.UUID) ([]domain.Subtask, error) {
	if err := s.requireTask(ctx, taskID); err != nil {
		return nil, err
	}
	return s.subtaskStore.ListByTask(ctx, taskID)
}

// CreateSubtask creates a subtask owned by the given task, so it shows
// up in subsequent task-scoped lists.
// Returns store.ErrTaskNotFound if the task does not exist.
func (s *Service) CreateSubtask(ctx context.Context, taskID uuid.UUID, input SubtaskInput) (*domain.Subtask, error) {
	if err := s.requireTask(ctx, taskID); err != nil {
		return nil, err
	}

	subtask, err := domain.NewSubtask(taskID, input.Text, input.Completed)
	if err != nil {
		return nil, err
	}
	if err := s.subtaskStore.Create(ctx, subtask); err != nil {
		return nil, err
	}
	return subtask, nil
}

// GetSubtask returns one subtask in the given task's scope.
// Returns store.ErrSubtaskNotFound if the subtask is not currently
// linked to taskID.
func (s *Service) GetSubtask(ctx context.Context, taskID, subtaskID uuid.UUID) (*domain.Subtask, error) {
	return s.subtaskStore.GetByTaskAndID(ctx, taskID, subtaskID)
}

// UpdateSubtask applies a partial update to a subtask in the given
// task's scope. The ownership link is forced back to taskID even if the
// patch tried to move the subtask elsewhere.
// Returns store.ErrSubtaskNotFound if the subtask is not currently
// linked to taskID.
func (s *Service) UpdateSubtask(ctx context.Context, taskID, subtaskID uuid.UUID, patch SubtaskPatch) (*domain.Subtask, error) {
	subtask, err := s.subtaskStore.GetByTaskAndID(ctx, taskID, subtaskID)
	if err != nil {
		return nil, err
	}

	if patch.Text != nil {
		subtask.Text = *patch.Text
	}
	if patch.Completed != nil {
		subtask.Completed = *patch.Completed
	}
	// The link is forced, not merely defaulted.
	subtask.TaskID = taskID
	subtask.UpdatedAt = time.Now().UTC()

	if err := s.subtaskStore.Update(ctx, subtask); err != nil {
		return nil, err
	}
	return subtask, nil
}

// DeleteSubtask permanently removes a subtask in the given task's scope.
// Returns store.ErrSubtaskNotFound if the subtask is not currently
// linked to taskID.
func (s *Service) DeleteSubtask(ctx context.Context, taskID, subtaskID uuid.UUID) error {
	subtask, err := s.subtaskStore.GetByTaskAndID(ctx, taskID, subtaskID)
	if err != nil {
		return err
	}
	return s.subtaskStore.Delete(ctx, subtask.ID)
}

func (s *Service) requireTask(ctx context.Context, taskID uuid.UUID) error {
	exists, err := s.taskStore.Exists(ctx, taskID)
	if err != nil {
		return err
	}
	if !exists {
		return store.ErrTaskNotFound
	}
	return nil
}

func createSubtasks(ctx context.Context, subtaskStore store.SubtaskStore, taskID uuid.UUID, inputs []SubtaskInput) error {
	for _, input := range inputs {
		subtask, err := domain.NewSubtask(taskID, input.Text, input.Completed)
		if err != nil {
			return err
		}
		if err := subtaskStore.Create(ctx, subtask); err != nil {
			return err
		}
	}
	return nil
}
