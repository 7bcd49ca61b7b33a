package mocks

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/joinboard/joinboard-api/internal/domain"
	"github.com/joinboard/joinboard-api/internal/store"
)

// MockAccountStore implements store.AccountStore for testing.
type MockAccountStore struct {
	CreateFn     func(ctx context.Context, account *domain.Account) error
	GetByIDFn    func(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	GetByEmailFn func(ctx context.Context, email string) (*domain.Account, error)
	DeleteFn     func(ctx context.Context, id uuid.UUID) error

	Accounts map[uuid.UUID]*domain.Account
}

var _ store.AccountStore = (*MockAccountStore)(nil)

// NewMockAccountStore creates a mock store with an empty account map.
func NewMockAccountStore() *MockAccountStore {
	return &MockAccountStore{Accounts: make(map[uuid.UUID]*domain.Account)}
}

// Create implements the store.AccountStore interface. Duplicate emails
// and usernames fail the way the unique constraints would.
func (m *MockAccountStore) Create(ctx context.Context, account *domain.Account) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, account)
	}
	if err := account.Validate(); err != nil {
		return err
	}
	for _, existing := range m.Accounts {
		if account.Email != "" && existing.Email == account.Email {
			return store.ErrEmailExists
		}
		if existing.Username == account.Username {
			return store.ErrUsernameExists
		}
	}
	copied := *account
	m.Accounts[account.ID] = &copied
	return nil
}

// GetByID implements the store.AccountStore interface.
func (m *MockAccountStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	account, ok := m.Accounts[id]
	if !ok {
		return nil, store.ErrAccountNotFound
	}
	copied := *account
	return &copied, nil
}

// GetByEmail implements the store.AccountStore interface.
func (m *MockAccountStore) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	for _, account := range m.Accounts {
		if account.Email == email && email != "" {
			copied := *account
			return &copied, nil
		}
	}
	return nil, store.ErrAccountNotFound
}

// EmailExists implements the store.AccountStore interface.
func (m *MockAccountStore) EmailExists(ctx context.Context, email string) (bool, error) {
	_, err := m.GetByEmail(ctx, email)
	if err != nil {
		return false, nil
	}
	return true, nil
}

// Delete implements the store.AccountStore interface.
func (m *MockAccountStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	if _, ok := m.Accounts[id]; !ok {
		return store.ErrAccountNotFound
	}
	delete(m.Accounts, id)
	return nil
}

// WithTx implements the store.AccountStore interface.
func (m *MockAccountStore) WithTx(tx *sql.Tx) store.AccountStore {
	return m
}
