package postgres_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joinboard/joinboard-api/internal/domain"
	"github.com/joinboard/joinboard-api/internal/platform/postgres"
	"github.com/joinboard/joinboard-api/internal/store"
)

func newAccountStore(t *testing.T) (store.AccountStore, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return postgres.NewPostgresAccountStore(db, nil), mock
}

func TestAccountCreate(t *testing.T) {
	t.Parallel()

	t.Run("duplicate email maps the constraint name", func(t *testing.T) {
		t.Parallel()
		accountStore, mock := newAccountStore(t)

		account, err := domain.NewAccount("maria", "maria@example.com", "pw")
		require.NoError(t, err)

		mock.ExpectExec("INSERT INTO accounts").
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "accounts_email_key"})

		err = accountStore.Create(context.Background(), account)
		assert.ErrorIs(t, err, store.ErrEmailExists)
	})

	t.Run("duplicate username maps the constraint name", func(t *testing.T) {
		t.Parallel()
		accountStore, mock := newAccountStore(t)

		account, err := domain.NewAccount("maria", "maria@example.com", "pw")
		require.NoError(t, err)

		mock.ExpectExec("INSERT INTO accounts").
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "accounts_username_key"})

		err = accountStore.Create(context.Background(), account)
		assert.ErrorIs(t, err, store.ErrUsernameExists)
	})

	t.Run("guest account stores NULL email and password", func(t *testing.T) {
		t.Parallel()
		accountStore, mock := newAccountStore(t)

		guest, err := domain.NewGuestAccount(domain.GuestUsernamePrefix + "cafe0123")
		require.NoError(t, err)

		mock.ExpectExec("INSERT INTO accounts").
			WithArgs(guest.ID, guest.Username, nil, nil, true, guest.CreatedAt, guest.UpdatedAt).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, accountStore.Create(context.Background(), guest))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAccountGetByEmail(t *testing.T) {
	t.Parallel()

	columns := []string{"id", "username", "email", "hashed_password", "is_guest", "created_at", "updated_at"}

	t.Run("found", func(t *testing.T) {
		t.Parallel()
		accountStore, mock := newAccountStore(t)

		id := uuid.New()
		now := time.Now().UTC()
		mock.ExpectQuery("FROM accounts").
			WithArgs("maria@example.com").
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow(id, "maria", "maria@example.com", "$2a$10$hash", false, now, now))

		account, err := accountStore.GetByEmail(context.Background(), "maria@example.com")
		require.NoError(t, err)
		assert.Equal(t, id, account.ID)
		assert.Equal(t, "$2a$10$hash", account.HashedPassword)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		accountStore, mock := newAccountStore(t)

		mock.ExpectQuery("FROM accounts").WillReturnError(sql.ErrNoRows)

		_, err := accountStore.GetByEmail(context.Background(), "nobody@example.com")
		assert.ErrorIs(t, err, store.ErrAccountNotFound)
	})

	t.Run("NULL email and hash scan as empty strings", func(t *testing.T) {
		t.Parallel()
		accountStore, mock := newAccountStore(t)

		id := uuid.New()
		now := time.Now().UTC()
		mock.ExpectQuery("FROM accounts").
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow(id, "guest_cafe0123", nil, nil, true, now, now))

		account, err := accountStore.GetByID(context.Background(), id)
		require.NoError(t, err)
		assert.Empty(t, account.Email)
		assert.Empty(t, account.HashedPassword)
		assert.True(t, account.IsGuest)
	})
}

func TestAccountDelete(t *testing.T) {
	t.Parallel()

	t.Run("zero rows affected reads as not found", func(t *testing.T) {
		t.Parallel()
		accountStore, mock := newAccountStore(t)

		mock.ExpectExec("DELETE FROM accounts").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := accountStore.Delete(context.Background(), uuid.New())
		assert.ErrorIs(t, err, store.ErrAccountNotFound)
	})
}
