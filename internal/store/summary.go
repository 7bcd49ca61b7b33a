package store

import (
	"context"

	"github.com/joinboard/joinboard-api/internal/domain"
)

// SummaryStore computes the dashboard summary. The snapshot is derived
// entirely inside the database so it reflects committed state at call
// time; nothing is cached.
type SummaryStore interface {
	GetSummary(ctx context.Context) (*domain.Summary, error)
}
