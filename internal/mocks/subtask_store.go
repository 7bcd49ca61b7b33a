package mocks

import (
	"context"
	"database/sql"
	"sort"

	"github.com/google/uuid"
	"github.com/joinboard/joinboard-api/internal/domain"
	"github.com/joinboard/joinboard-api/internal/store"
)

// MockSubtaskStore implements store.SubtaskStore for testing.
type MockSubtaskStore struct {
	ListByTaskFn     func(ctx context.Context, taskID uuid.UUID) ([]domain.Subtask, error)
	CreateFn         func(ctx context.Context, subtask *domain.Subtask) error
	GetByTaskAndIDFn func(ctx context.Context, taskID, subtaskID uuid.UUID) (*domain.Subtask, error)
	UpdateFn         func(ctx context.Context, subtask *domain.Subtask) error
	DeleteFn         func(ctx context.Context, id uuid.UUID) error

	Subtasks map[uuid.UUID]*domain.Subtask
}

var _ store.SubtaskStore = (*MockSubtaskStore)(nil)

// NewMockSubtaskStore creates a mock store with an empty subtask map.
func NewMockSubtaskStore() *MockSubtaskStore {
	return &MockSubtaskStore{Subtasks: make(map[uuid.UUID]*domain.Subtask)}
}

// ListByTask implements the store.SubtaskStore interface.
func (m *MockSubtaskStore) ListByTask(ctx context.Context, taskID uuid.UUID) ([]domain.Subtask, error) {
	if m.ListByTaskFn != nil {
		return m.ListByTaskFn(ctx, taskID)
	}

	subtasks := []domain.Subtask{}
	for _, subtask := range m.Subtasks {
		if subtask.TaskID == taskID {
			subtasks = append(subtasks, *subtask)
		}
	}
	sort.Slice(subtasks, func(i, j int) bool {
		return subtasks[i].CreatedAt.Before(subtasks[j].CreatedAt)
	})
	return subtasks, nil
}

// Create implements the store.SubtaskStore interface.
func (m *MockSubtaskStore) Create(ctx context.Context, subtask *domain.Subtask) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, subtask)
	}
	if err := subtask.Validate(); err != nil {
		return err
	}
	copied := *subtask
	m.Subtasks[subtask.ID] = &copied
	return nil
}

// GetByTaskAndID implements the store.SubtaskStore interface.
func (m *MockSubtaskStore) GetByTaskAndID(ctx context.Context, taskID, subtaskID uuid.UUID) (*domain.Subtask, error) {
	if m.GetByTaskAndIDFn != nil {
		return m.GetByTaskAndIDFn(ctx, taskID, subtaskID)
	}
	subtask, ok := m.Subtasks[subtaskID]
	if !ok || subtask.TaskID != taskID {
		return nil, store.ErrSubtaskNotFound
	}
	copied := *subtask
	return &copied, nil
}

// Update implements the store.SubtaskStore interface.
func (m *MockSubtaskStore) Update(ctx context.Context, subtask *domain.Subtask) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, subtask)
	}
	if _, ok := m.Subtasks[subtask.ID]; !ok {
		return store.ErrSubtaskNotFound
	}
	copied := *subtask
	m.Subtasks[subtask.ID] = &copied
	return nil
}

// Delete implements the store.SubtaskStore interface.
func (m *MockSubtaskStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	if _, ok := m.Subtasks[id]; !ok {
		return store.ErrSubtaskNotFound
	}
	delete(m.Subtasks, id)
	return nil
}

// DeleteByTask implements the store.SubtaskStore interface.
func (m *MockSubtaskStore) DeleteByTask(ctx context.Context, taskID uuid.UUID) (int64, error) {
	var deleted int64
	for id, subtask := range m.Subtasks {
		if subtask.TaskID == taskID {
			delete(m.Subtasks, id)
			deleted++
		}
	}
	return deleted, nil
}

// WithTx implements the store.SubtaskStore interface.
func (m *MockSubtaskStore) WithTx(tx *sql.Tx) store.SubtaskStore {
	return m
}
