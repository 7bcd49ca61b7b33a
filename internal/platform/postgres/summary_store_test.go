package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joinboard/joinboard-api/internal/platform/postgres"
)

func TestGetSummary(t *testing.T) {
	t.Parallel()

	columns := []string{"todo", "done", "in_progress", "await_feedback", "total", "urgent", "most_urgent"}

	t.Run("full board", func(t *testing.T) {
		t.Parallel()

		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mostUrgent := time.Date(2026, time.July, 4, 0, 0, 0, 0, time.UTC)
		mock.ExpectQuery("SELECT").WillReturnRows(
			sqlmock.NewRows(columns).AddRow(3, 1, 2, 1, 8, 2, mostUrgent))

		summaryStore := postgres.NewPostgresSummaryStore(db, nil)
		summary, err := summaryStore.GetSummary(context.Background())
		require.NoError(t, err)

		assert.Equal(t, 3, summary.TodoCount)
		assert.Equal(t, 1, summary.DoneCount)
		assert.Equal(t, 2, summary.InProgressCount)
		assert.Equal(t, 1, summary.AwaitingFeedbackCount)
		assert.Equal(t, 8, summary.TotalTasks)
		assert.Equal(t, 2, summary.UrgentCount)
		require.NotNil(t, summary.MostUrgentDueDate)
		assert.Equal(t, "2026-07-04", summary.MostUrgentDueDate.String())

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no urgent tasks", func(t *testing.T) {
		t.Parallel()

		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectQuery("SELECT").WillReturnRows(
			sqlmock.NewRows(columns).AddRow(2, 0, 0, 0, 2, 0, nil))

		summaryStore := postgres.NewPostgresSummaryStore(db, nil)
		summary, err := summaryStore.GetSummary(context.Background())
		require.NoError(t, err)

		assert.Equal(t, 2, summary.TodoCount)
		assert.Equal(t, 0, summary.UrgentCount)
		assert.Nil(t, summary.MostUrgentDueDate)
	})
}
