package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/joinboard/joinboard-api/internal/domain"
	"github.com/joinboard/joinboard-api/internal/platform/logger"
	"github.com/joinboard/joinboard-api/internal/store"
)

// PostgresSummaryStore implements the store.SummaryStore interface.
// The whole snapshot is one aggregate query so it is consistent within
// a single statement.
type PostgresSummaryStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresSummaryStore creates a new PostgreSQL implementation of the
// SummaryStore interface.
func NewPostgresSummaryStore(db store.DBTX, logger *slog.Logger) *PostgresSummaryStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresSummaryStore{
		db:     db,
		logger: logger.With(slog.String("component", "summary_store")),
	}
}

// Ensure PostgresSummaryStore implements store.SummaryStore interface
var _ store.SummaryStore = (*PostgresSummaryStore)(nil)

// GetSummary implements store.SummaryStore.GetSummary
func (s *PostgresSummaryStore) GetSummary(ctx context.Context) (*domain.Summary, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT
			COUNT(*) FILTER (WHERE t.status = 'to_do'),
			COUNT(*) FILTER (WHERE t.status = 'done'),
			COUNT(*) FILTER (WHERE t.status = 'in_progress'),
			COUNT(*) FILTER (WHERE t.status = 'await_feedback'),
			COUNT(*),
			COUNT(*) FILTER (WHERE p.level = 'urgent'),
			MIN(t.due_date) FILTER (WHERE p.level = 'urgent')
		FROM tasks t
		JOIN prios p ON p.id = t.prio_id
	`

	var summary domain.Summary
	var mostUrgent sql.NullTime

	err := s.db.QueryRowContext(ctx, query).Scan(
		&summary.TodoCount,
		&summary.DoneCount,
		&summary.InProgressCount,
		&summary.AwaitingFeedbackCount,
		&summary.TotalTasks,
		&summary.UrgentCount,
		&mostUrgent,
	)
	if err != nil {
		log.Error("failed to compute summary", slog.String("error", err.Error()))
		return nil, err
	}

	if mostUrgent.Valid {
		date := domain.Date{}
		if err := date.Scan(mostUrgent.Time); err != nil {
			return nil, err
		}
		summary.MostUrgentDueDate = &date
	}

	return &summary, nil
}
