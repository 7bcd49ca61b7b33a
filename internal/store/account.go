package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/joinboard/joinboard-api/internal/domain"
)

// AccountStore defines the interface for auth-account persistence.
type AccountStore interface {
	// Create saves a new account. The HashedPassword field must already
	// be populated for non-guest accounts.
	// Returns ErrEmailExists or ErrUsernameExists on unique violations.
	Create(ctx context.Context, account *domain.Account) error

	// GetByID retrieves an account by its unique ID.
	// Returns ErrAccountNotFound if the account does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)

	// GetByEmail retrieves an account by its email address.
	// Returns ErrAccountNotFound if no account has that email.
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)

	// EmailExists reports whether any account uses the given email.
	EmailExists(ctx context.Context, email string) (bool, error)

	// Delete permanently removes an account and, via the schema's
	// cascade, its profile.
	// Returns ErrAccountNotFound if the account does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a new AccountStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) AccountStore
}
