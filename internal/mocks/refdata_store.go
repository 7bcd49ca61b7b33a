package mocks

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/joinboard/joinboard-api/internal/domain"
	"github.com/joinboard/joinboard-api/internal/store"
)

// MockCategoryStore implements store.CategoryStore for testing.
type MockCategoryStore struct {
	ListFn   func(ctx context.Context) ([]domain.Category, error)
	CreateFn func(ctx context.Context, category *domain.Category) error

	Categories map[uuid.UUID]*domain.Category
}

var _ store.CategoryStore = (*MockCategoryStore)(nil)

// NewMockCategoryStore creates a mock store with an empty category map.
func NewMockCategoryStore() *MockCategoryStore {
	return &MockCategoryStore{Categories: make(map[uuid.UUID]*domain.Category)}
}

// List implements the store.CategoryStore interface.
func (m *MockCategoryStore) List(ctx context.Context) ([]domain.Category, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	categories := make([]domain.Category, 0, len(m.Categories))
	for _, category := range m.Categories {
		categories = append(categories, *category)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].Name < categories[j].Name })
	return categories, nil
}

// Create implements the store.CategoryStore interface.
func (m *MockCategoryStore) Create(ctx context.Context, category *domain.Category) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, category)
	}
	if err := category.Validate(); err != nil {
		return err
	}
	copied := *category
	m.Categories[category.ID] = &copied
	return nil
}

// GetByID implements the store.CategoryStore interface.
func (m *MockCategoryStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	category, ok := m.Categories[id]
	if !ok {
		return nil, store.ErrCategoryNotFound
	}
	copied := *category
	return &copied, nil
}

// Delete implements the store.CategoryStore interface.
func (m *MockCategoryStore) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := m.Categories[id]; !ok {
		return store.ErrCategoryNotFound
	}
	delete(m.Categories, id)
	return nil
}

// MockPrioStore implements store.PrioStore for testing.
type MockPrioStore struct {
	ListFn   func(ctx context.Context) ([]domain.Prio, error)
	CreateFn func(ctx context.Context, prio *domain.Prio) error

	Prios map[uuid.UUID]*domain.Prio
}

var _ store.PrioStore = (*MockPrioStore)(nil)

// NewMockPrioStore creates a mock store with an empty prio map.
func NewMockPrioStore() *MockPrioStore {
	return &MockPrioStore{Prios: make(map[uuid.UUID]*domain.Prio)}
}

// List implements the store.PrioStore interface.
func (m *MockPrioStore) List(ctx context.Context) ([]domain.Prio, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	prios := make([]domain.Prio, 0, len(m.Prios))
	for _, prio := range m.Prios {
		prios = append(prios, *prio)
	}
	sort.Slice(prios, func(i, j int) bool { return prios[i].CreatedAt.Before(prios[j].CreatedAt) })
	return prios, nil
}

// Create implements the store.PrioStore interface.
func (m *MockPrioStore) Create(ctx context.Context, prio *domain.Prio) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, prio)
	}
	if err := prio.Validate(); err != nil {
		return err
	}
	copied := *prio
	m.Prios[prio.ID] = &copied
	return nil
}

// GetByID implements the store.PrioStore interface.
func (m *MockPrioStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Prio, error) {
	prio, ok := m.Prios[id]
	if !ok {
		return nil, store.ErrPrioNotFound
	}
	copied := *prio
	return &copied, nil
}

// Delete implements the store.PrioStore interface.
func (m *MockPrioStore) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := m.Prios[id]; !ok {
		return store.ErrPrioNotFound
	}
	delete(m.Prios, id)
	return nil
}
