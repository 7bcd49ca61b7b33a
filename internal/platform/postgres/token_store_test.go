package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joinboard/joinboard-api/internal/platform/postgres"
	"github.com/joinboard/joinboard-api/internal/store"
)

func newTokenStore(t *testing.T) (store.RevokedTokenStore, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return postgres.NewPostgresRevokedTokenStore(db, nil), mock
}

func TestTokenRevoke(t *testing.T) {
	t.Parallel()

	t.Run("inserts the blacklist row", func(t *testing.T) {
		t.Parallel()
		tokenStore, mock := newTokenStore(t)

		mock.ExpectExec("INSERT INTO revoked_tokens").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := tokenStore.Revoke(context.Background(), "jti-1", uuid.New(), time.Now().Add(time.Hour))
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("revoking twice is a no-op", func(t *testing.T) {
		t.Parallel()
		tokenStore, mock := newTokenStore(t)

		// ON CONFLICT DO NOTHING reports zero rows, which is still success.
		mock.ExpectExec("INSERT INTO revoked_tokens").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := tokenStore.Revoke(context.Background(), "jti-1", uuid.New(), time.Now().Add(time.Hour))
		assert.NoError(t, err)
	})
}

func TestTokenIsRevoked(t *testing.T) {
	t.Parallel()

	t.Run("revoked", func(t *testing.T) {
		t.Parallel()
		tokenStore, mock := newTokenStore(t)

		mock.ExpectQuery("SELECT EXISTS").
			WithArgs("jti-1").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		revoked, err := tokenStore.IsRevoked(context.Background(), "jti-1")
		require.NoError(t, err)
		assert.True(t, revoked)
	})

	t.Run("unknown jti", func(t *testing.T) {
		t.Parallel()
		tokenStore, mock := newTokenStore(t)

		mock.ExpectQuery("SELECT EXISTS").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

		revoked, err := tokenStore.IsRevoked(context.Background(), "jti-unknown")
		require.NoError(t, err)
		assert.False(t, revoked)
	})
}
