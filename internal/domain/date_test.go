package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joinboard/joinboard-api/internal/domain"
)

func TestParseDate(t *testing.T) {
	t.Parallel()

	t.Run("valid date", func(t *testing.T) {
		t.Parallel()

		date, err := domain.ParseDate("2026-03-14")
		require.NoError(t, err)
		assert.Equal(t, "2026-03-14", date.String())
	})

	t.Run("rejects timestamps", func(t *testing.T) {
		t.Parallel()

		_, err := domain.ParseDate("2026-03-14T10:00:00Z")
		assert.ErrorIs(t, err, domain.ErrInvalidDate)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		t.Parallel()

		_, err := domain.ParseDate("not-a-date")
		assert.ErrorIs(t, err, domain.ErrInvalidDate)
	})
}

func TestDateJSON(t *testing.T) {
	t.Parallel()

	t.Run("marshals as plain date", func(t *testing.T) {
		t.Parallel()

		date := domain.NewDate(2026, time.March, 14)
		data, err := json.Marshal(date)
		require.NoError(t, err)
		assert.Equal(t, `"2026-03-14"`, string(data))
	})

	t.Run("unmarshals from plain date", func(t *testing.T) {
		t.Parallel()

		var date domain.Date
		require.NoError(t, json.Unmarshal([]byte(`"2026-03-14"`), &date))
		assert.Equal(t, domain.NewDate(2026, time.March, 14), date)
	})

	t.Run("null leaves the date untouched", func(t *testing.T) {
		t.Parallel()

		var date domain.Date
		require.NoError(t, json.Unmarshal([]byte(`null`), &date))
		assert.True(t, date.IsZero())
	})

	t.Run("invalid value", func(t *testing.T) {
		t.Parallel()

		var date domain.Date
		err := json.Unmarshal([]byte(`"14.03.2026"`), &date)
		assert.ErrorIs(t, err, domain.ErrInvalidDate)
	})
}

func TestDateScan(t *testing.T) {
	t.Parallel()

	t.Run("from time.Time", func(t *testing.T) {
		t.Parallel()

		var date domain.Date
		src := time.Date(2026, time.March, 14, 17, 45, 3, 0, time.Local)
		require.NoError(t, date.Scan(src))

		// The time component is discarded.
		assert.Equal(t, "2026-03-14", date.String())
	})

	t.Run("from string", func(t *testing.T) {
		t.Parallel()

		var date domain.Date
		require.NoError(t, date.Scan("2026-03-14"))
		assert.Equal(t, "2026-03-14", date.String())
	})

	t.Run("unsupported type", func(t *testing.T) {
		t.Parallel()

		var date domain.Date
		assert.ErrorIs(t, date.Scan(42), domain.ErrInvalidDate)
	})
}
