package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// RevokedTokenStore is the explicit blacklist of refresh tokens,
// consulted on every refresh and guest logout. Rows carry the token's
// own expiry so that IsRevoked checks stay meaningful without a
// background purge.
type RevokedTokenStore interface {
	// Revoke records the token ID (jti) as revoked until expiresAt.
	// Revoking an already-revoked token is a no-op.
	Revoke(ctx context.Context, jti string, accountID uuid.UUID, expiresAt time.Time) error

	// IsRevoked reports whether the token ID is on the blacklist.
	IsRevoked(ctx context.Context, jti string) (bool, error)

	// WithTx returns a new RevokedTokenStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) RevokedTokenStore
}
