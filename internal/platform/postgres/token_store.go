package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/joinboard/joinboard-api/internal/platform/logger"
	"github.com/joinboard/joinboard-api/internal/store"
)

// PostgresRevokedTokenStore implements the store.RevokedTokenStore
// interface: a persisted blacklist of refresh token IDs.
type PostgresRevokedTokenStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresRevokedTokenStore creates a new PostgreSQL implementation
// of the RevokedTokenStore interface.
func NewPostgresRevokedTokenStore(db store.DBTX, logger *slog.Logger) *PostgresRevokedTokenStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresRevokedTokenStore{
		db:     db,
		logger: logger.With(slog.String("component", "revoked_token_store")),
	}
}

// Ensure PostgresRevokedTokenStore implements store.RevokedTokenStore interface
var _ store.RevokedTokenStore = (*PostgresRevokedTokenStore)(nil)

// Revoke implements store.RevokedTokenStore.Revoke
func (s *PostgresRevokedTokenStore) Revoke(ctx context.Context, jti string, accountID uuid.UUID, expiresAt time.Time) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO revoked_tokens (jti, account_id, expires_at, revoked_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (jti) DO NOTHING
	`
	_, err := s.db.ExecContext(ctx, query, jti, accountID, expiresAt, time.Now().UTC())
	if err != nil {
		log.Error("failed to revoke token",
			slog.String("error", err.Error()),
			slog.String("jti", jti))
		return err
	}

	log.Info("refresh token revoked",
		slog.String("jti", jti),
		slog.String("account_id", accountID.String()))
	return nil
}

// IsRevoked implements store.RevokedTokenStore.IsRevoked. Expired rows
// are ignored: an expired token already fails signature validation, so
// the blacklist only needs to answer for live tokens.
func (s *PostgresRevokedTokenStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var revoked bool
	err := s.db.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM revoked_tokens
			WHERE jti = $1 AND expires_at > NOW()
		)
	`, jti).Scan(&revoked)
	if err != nil {
		log.Error("failed to check token revocation",
			slog.String("error", err.Error()),
			slog.String("jti", jti))
		return false, err
	}

	return revoked, nil
}

// WithTx implements store.RevokedTokenStore.WithTx
func (s *PostgresRevokedTokenStore) WithTx(tx *sql.Tx) store.RevokedTokenStore {
	return &PostgresRevokedTokenStore{
		db:     tx,
		logger: s.logger,
	}
}
