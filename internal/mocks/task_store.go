package mocks

import (
	"context"
	"database/sql"
	"sort"

	"github.com/google/uuid"
	"github.com/joinboard/joinboard-api/internal/domain"
	"github.com/joinboard/joinboard-api/internal/store"
)

// MockTaskStore implements store.TaskStore for testing. Assignments are
// tracked in a separate map the way the join table does it.
type MockTaskStore struct {
	ListFn                 func(ctx context.Context) ([]domain.Task, error)
	CreateFn               func(ctx context.Context, task *domain.Task) error
	GetByIDFn              func(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	UpdateFn               func(ctx context.Context, task *domain.Task) error
	DeleteFn               func(ctx context.Context, id uuid.UUID) error
	ReplaceAssignedUsersFn func(ctx context.Context, taskID uuid.UUID, userIDs []uuid.UUID) error

	Tasks       map[uuid.UUID]*domain.Task
	Assignments map[uuid.UUID][]uuid.UUID
}

var _ store.TaskStore = (*MockTaskStore)(nil)

// NewMockTaskStore creates a mock store with empty maps.
func NewMockTaskStore() *MockTaskStore {
	return &MockTaskStore{
		Tasks:       make(map[uuid.UUID]*domain.Task),
		Assignments: make(map[uuid.UUID][]uuid.UUID),
	}
}

// List implements the store.TaskStore interface.
func (m *MockTaskStore) List(ctx context.Context) ([]domain.Task, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	tasks := make([]domain.Task, 0, len(m.Tasks))
	for _, task := range m.Tasks {
		tasks = append(tasks, *task)
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].CreatedAt.Before(tasks[j].CreatedAt) })
	return tasks, nil
}

// Create implements the store.TaskStore interface.
func (m *MockTaskStore) Create(ctx context.Context, task *domain.Task) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, task)
	}
	if err := task.Validate(); err != nil {
		return err
	}
	copied := *task
	m.Tasks[task.ID] = &copied
	return nil
}

// GetByID implements the store.TaskStore interface.
func (m *MockTaskStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	task, ok := m.Tasks[id]
	if !ok {
		return nil, store.ErrTaskNotFound
	}
	copied := *task
	copied.AssignedUsers = []domain.User{}
	for _, userID := range m.Assignments[id] {
		copied.AssignedUsers = append(copied.AssignedUsers, domain.User{ID: userID})
	}
	return &copied, nil
}

// Exists implements the store.TaskStore interface.
func (m *MockTaskStore) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	_, ok := m.Tasks[id]
	return ok, nil
}

// Update implements the store.TaskStore interface.
func (m *MockTaskStore) Update(ctx context.Context, task *domain.Task) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, task)
	}
	if _, ok := m.Tasks[task.ID]; !ok {
		return store.ErrTaskNotFound
	}
	copied := *task
	m.Tasks[task.ID] = &copied
	return nil
}

// Delete implements the store.TaskStore interface.
func (m *MockTaskStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	if _, ok := m.Tasks[id]; !ok {
		return store.ErrTaskNotFound
	}
	delete(m.Tasks, id)
	delete(m.Assignments, id)
	return nil
}

// ReplaceAssignedUsers implements the store.TaskStore interface.
func (m *MockTaskStore) ReplaceAssignedUsers(ctx context.Context, taskID uuid.UUID, userIDs []uuid.UUID) error {
	if m.ReplaceAssignedUsersFn != nil {
		return m.ReplaceAssignedUsersFn(ctx, taskID, userIDs)
	}
	m.Assignments[taskID] = append([]uuid.UUID{}, userIDs...)
	return nil
}

// WithTx implements the store.TaskStore interface.
func (m *MockTaskStore) WithTx(tx *sql.Tx) store.TaskStore {
	return m
}
