package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Subtask validation errors.
var (
	ErrEmptySubtaskID   = fmt.Errorf("%w: subtask ID cannot be empty", ErrValidation)
	ErrEmptySubtaskText = fmt.Errorf("%w: subtask text cannot be empty", ErrValidation)
)

// Subtask is a checklist entry owned by at most one task. TaskID is the
// single source of truth for ownership; a nil TaskID is a legal orphan
// that no task-scoped endpoint can reach.
type Subtask struct {
	ID        uuid.UUID `json:"id"`
	TaskID    uuid.UUID `json:"task"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewSubtask creates a new Subtask linked to the given task.
// Returns an error if validation fails.
func NewSubtask(taskID uuid.UUID, text string, completed bool) (*Subtask, error) {
	now := time.Now().UTC()
	subtask := &Subtask{
		ID:        uuid.New(),
		TaskID:    taskID,
		Text:      text,
		Completed: completed,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := subtask.Validate(); err != nil {
		return nil, err
	}

	return subtask, nil
}

// Validate checks if the Subtask has valid data.
func (s *Subtask) Validate() error {
	if s.ID == uuid.Nil {
		return ErrEmptySubtaskID
	}
	if s.Text == "" {
		return ErrEmptySubtaskText
	}
	return nil
}
