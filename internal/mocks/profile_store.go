package mocks

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/joinboard/joinboard-api/internal/domain"
	"github.com/joinboard/joinboard-api/internal/store"
)

// MockProfileStore implements store.ProfileStore for testing.
type MockProfileStore struct {
	ListFn   func(ctx context.Context) ([]domain.Profile, error)
	CreateFn func(ctx context.Context, profile *domain.Profile) error

	Profiles map[uuid.UUID]*domain.Profile
}

var _ store.ProfileStore = (*MockProfileStore)(nil)

// NewMockProfileStore creates a mock store with an empty profile map.
func NewMockProfileStore() *MockProfileStore {
	return &MockProfileStore{Profiles: make(map[uuid.UUID]*domain.Profile)}
}

// List implements the store.ProfileStore interface.
func (m *MockProfileStore) List(ctx context.Context) ([]domain.Profile, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	profiles := make([]domain.Profile, 0, len(m.Profiles))
	for _, profile := range m.Profiles {
		profiles = append(profiles, *profile)
	}
	sort.Slice(profiles, func(i, j int) bool {
		return profiles[i].CreatedAt.Before(profiles[j].CreatedAt)
	})
	return profiles, nil
}

// Create implements the store.ProfileStore interface.
func (m *MockProfileStore) Create(ctx context.Context, profile *domain.Profile) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, profile)
	}
	if err := profile.Validate(); err != nil {
		return err
	}
	copied := *profile
	m.Profiles[profile.ID] = &copied
	return nil
}

// GetByID implements the store.ProfileStore interface.
func (m *MockProfileStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	profile, ok := m.Profiles[id]
	if !ok {
		return nil, store.ErrProfileNotFound
	}
	copied := *profile
	return &copied, nil
}

// Update implements the store.ProfileStore interface.
func (m *MockProfileStore) Update(ctx context.Context, profile *domain.Profile) error {
	if _, ok := m.Profiles[profile.ID]; !ok {
		return store.ErrProfileNotFound
	}
	copied := *profile
	m.Profiles[profile.ID] = &copied
	return nil
}

// Delete implements the store.ProfileStore interface.
func (m *MockProfileStore) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := m.Profiles[id]; !ok {
		return store.ErrProfileNotFound
	}
	delete(m.Profiles, id)
	return nil
}
