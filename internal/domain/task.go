package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Task status literals. Status is stored as free text: unknown values are
// accepted and simply fall outside the four dashboard buckets.
const (
	TaskStatusToDo          = "to_do"
	TaskStatusInProgress    = "in_progress"
	TaskStatusAwaitFeedback = "await_feedback"
	TaskStatusDone          = "done"
)

// Task validation errors.
var (
	ErrEmptyTaskID       = fmt.Errorf("%w: task ID cannot be empty", ErrValidation)
	ErrEmptyTaskTitle    = fmt.Errorf("%w: task title cannot be empty", ErrValidation)
	ErrEmptyTaskDueDate  = fmt.Errorf("%w: task due date cannot be empty", ErrValidation)
	ErrEmptyTaskCategory = fmt.Errorf("%w: task must reference a category", ErrValidation)
	ErrEmptyTaskPrio     = fmt.Errorf("%w: task must reference a prio", ErrValidation)
)

// Task is a board card. Category and Prio are required references; the
// assigned users and subtasks collections are loaded alongside the task.
type Task struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueDate     Date      `json:"due_date"`
	Status      string    `json:"status"`
	CategoryID  uuid.UUID `json:"-"`
	PrioID      uuid.UUID `json:"-"`

	Category      *Category `json:"category,omitempty"`
	Prio          *Prio     `json:"prio,omitempty"`
	AssignedUsers []User    `json:"assigned_users"`
	Subtasks      []Subtask `json:"subtasks"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewTask creates a new Task with a fresh ID and UTC timestamps.
// Status defaults to "to_do" when empty. Returns an error if validation fails.
func NewTask(title, description string, dueDate Date, status string, categoryID, prioID uuid.UUID) (*Task, error) {
	if status == "" {
		status = TaskStatusToDo
	}

	now := time.Now().UTC()
	task := &Task{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		DueDate:     dueDate,
		Status:      status,
		CategoryID:  categoryID,
		PrioID:      prioID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
func (t *Task) Validate() error {
	if t.ID == uuid.Nil {
		return ErrEmptyTaskID
	}
	if t.Title == "" {
		return ErrEmptyTaskTitle
	}
	if t.DueDate.IsZero() {
		return ErrEmptyTaskDueDate
	}
	if t.CategoryID == uuid.Nil {
		return ErrEmptyTaskCategory
	}
	if t.PrioID == uuid.Nil {
		return ErrEmptyTaskPrio
	}
	return nil
}
