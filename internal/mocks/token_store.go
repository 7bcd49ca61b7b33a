package mocks

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/joinboard/joinboard-api/internal/store"
)

// MockRevokedTokenStore implements store.RevokedTokenStore for testing.
type MockRevokedTokenStore struct {
	RevokeFn    func(ctx context.Context, jti string, accountID uuid.UUID, expiresAt time.Time) error
	IsRevokedFn func(ctx context.Context, jti string) (bool, error)

	Revoked map[string]time.Time
}

var _ store.RevokedTokenStore = (*MockRevokedTokenStore)(nil)

// NewMockRevokedTokenStore creates a mock store with an empty blacklist.
func NewMockRevokedTokenStore() *MockRevokedTokenStore {
	return &MockRevokedTokenStore{Revoked: make(map[string]time.Time)}
}

// Revoke implements the store.RevokedTokenStore interface.
func (m *MockRevokedTokenStore) Revoke(ctx context.Context, jti string, accountID uuid.UUID, expiresAt time.Time) error {
	if m.RevokeFn != nil {
		return m.RevokeFn(ctx, jti, accountID, expiresAt)
	}
	if _, ok := m.Revoked[jti]; !ok {
		m.Revoked[jti] = expiresAt
	}
	return nil
}

// IsRevoked implements the store.RevokedTokenStore interface.
func (m *MockRevokedTokenStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	if m.IsRevokedFn != nil {
		return m.IsRevokedFn(ctx, jti)
	}
	expiresAt, ok := m.Revoked[jti]
	return ok && expiresAt.After(time.Now()), nil
}

// WithTx implements the store.RevokedTokenStore interface.
func (m *MockRevokedTokenStore) WithTx(tx *sql.Tx) store.RevokedTokenStore {
	return m
}
