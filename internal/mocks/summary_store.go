package mocks

import (
	"context"

	"github.com/joinboard/joinboard-api/internal/domain"
	"github.com/joinboard/joinboard-api/internal/store"
)

// MockSummaryStore implements store.SummaryStore for testing.
type MockSummaryStore struct {
	GetSummaryFn func(ctx context.Context) (*domain.Summary, error)

	Summary *domain.Summary
	Err     error
}

var _ store.SummaryStore = (*MockSummaryStore)(nil)

// GetSummary implements the store.SummaryStore interface.
func (m *MockSummaryStore) GetSummary(ctx context.Context) (*domain.Summary, error) {
	if m.GetSummaryFn != nil {
		return m.GetSummaryFn(ctx)
	}
	return m.Summary, m.Err
}
