package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/joinboard/joinboard-api/internal/domain"
	"github.com/joinboard/joinboard-api/internal/platform/logger"
	"github.com/joinboard/joinboard-api/internal/store"
)

// Unique constraint names from the accounts migration.
const (
	accountsEmailConstraint    = "accounts_email_key"
	accountsUsernameConstraint = "accounts_username_key"
)

// PostgresAccountStore implements the store.AccountStore interface
// using a PostgreSQL database as the storage backend.
type PostgresAccountStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresAccountStore creates a new PostgreSQL implementation of the
// AccountStore interface.
func NewPostgresAccountStore(db store.DBTX, logger *slog.Logger) *PostgresAccountStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresAccountStore{
		db:     db,
		logger: logger.With(slog.String("component", "account_store")),
	}
}

// Ensure PostgresAccountStore implements store.AccountStore interface
var _ store.AccountStore = (*PostgresAccountStore)(nil)

// Create implements store.AccountStore.Create
func (s *PostgresAccountStore) Create(ctx context.Context, account *domain.Account) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := account.Validate(); err != nil {
		log.Warn("account validation failed during create",
			slog.String("error", err.Error()),
			slog.String("account_id", account.ID.String()))
		return err
	}

	query := `
		INSERT INTO accounts (id, username, email, hashed_password, is_guest, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := s.db.ExecContext(ctx, query,
		account.ID,
		account.Username,
		nullableString(account.Email),
		nullableString(account.HashedPassword),
		account.IsGuest,
		account.CreatedAt,
		account.UpdatedAt,
	)
	if err != nil {
		switch {
		case isUniqueViolation(err, accountsEmailConstraint):
			log.Debug("duplicate email during account creation",
				slog.String("account_id", account.ID.String()))
			return store.ErrEmailExists
		case isUniqueViolation(err, accountsUsernameConstraint):
			log.Debug("duplicate username during account creation",
				slog.String("username", account.Username))
			return store.ErrUsernameExists
		}
		log.Error("failed to create account",
			slog.String("error", err.Error()),
			slog.String("account_id", account.ID.String()))
		return err
	}

	log.Info("account created successfully",
		slog.String("account_id", account.ID.String()),
		slog.Bool("is_guest", account.IsGuest))
	return nil
}

// GetByID implements store.AccountStore.GetByID
func (s *PostgresAccountStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	return s.getOne(ctx, `WHERE id = $1`, id)
}

// GetByEmail implements store.AccountStore.GetByEmail
func (s *PostgresAccountStore) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	return s.getOne(ctx, `WHERE email = $1`, email)
}

func (s *PostgresAccountStore) getOne(ctx context.Context, where string, arg any) (*domain.Account, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, username, email, hashed_password, is_guest, created_at, updated_at
		FROM accounts
	` + where

	var account domain.Account
	var email, hashedPassword sql.NullString

	err := s.db.QueryRowContext(ctx, query, arg).Scan(
		&account.ID,
		&account.Username,
		&email,
		&hashedPassword,
		&account.IsGuest,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrAccountNotFound
		}
		log.Error("failed to get account", slog.String("error", err.Error()))
		return nil, err
	}

	account.Email = email.String
	account.HashedPassword = hashedPassword.String
	return &account, nil
}

// EmailExists implements store.AccountStore.EmailExists
func (s *PostgresAccountStore) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM accounts WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// Delete implements store.AccountStore.Delete
func (s *PostgresAccountStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete account",
			slog.String("error", err.Error()),
			slog.String("account_id", id.String()))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return store.ErrAccountNotFound
	}

	log.Info("account deleted", slog.String("account_id", id.String()))
	return nil
}

// WithTx implements store.AccountStore.WithTx
func (s *PostgresAccountStore) WithTx(tx *sql.Tx) store.AccountStore {
	return &PostgresAccountStore{
		db:     tx,
		logger: s.logger,
	}
}

// nullableString maps "" onto SQL NULL for optional unique columns, so
// multiple guest accounts don't collide on an empty email.
func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
