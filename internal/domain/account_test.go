package domain_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joinboard/joinboard-api/internal/domain"
)

func TestNewAccount(t *testing.T) {
	t.Parallel()

	t.Run("valid account", func(t *testing.T) {
		t.Parallel()

		account, err := domain.NewAccount("maria", "maria@example.com", "correct-horse")
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, account.ID)
		assert.Equal(t, "maria", account.Username)
		assert.Equal(t, "maria@example.com", account.Email)
		assert.False(t, account.IsGuest)
		assert.False(t, account.CreatedAt.IsZero())
	})

	t.Run("empty username", func(t *testing.T) {
		t.Parallel()

		_, err := domain.NewAccount("", "maria@example.com", "correct-horse")
		assert.ErrorIs(t, err, domain.ErrEmptyAccountUsername)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("empty email", func(t *testing.T) {
		t.Parallel()

		_, err := domain.NewAccount("maria", "", "correct-horse")
		assert.ErrorIs(t, err, domain.ErrEmptyAccountEmail)
	})

	t.Run("empty password", func(t *testing.T) {
		t.Parallel()

		_, err := domain.NewAccount("maria", "maria@example.com", "")
		assert.ErrorIs(t, err, domain.ErrEmptyPassword)
	})
}

func TestNewGuestAccount(t *testing.T) {
	t.Parallel()

	t.Run("valid guest", func(t *testing.T) {
		t.Parallel()

		account, err := domain.NewGuestAccount(domain.GuestUsernamePrefix + "a1b2c3d4")
		require.NoError(t, err)

		assert.True(t, account.IsGuest)
		assert.Empty(t, account.Email)
		assert.Empty(t, account.HashedPassword)

		// Guests skip the email and password requirements.
		assert.NoError(t, account.Validate())
	})

	t.Run("missing prefix", func(t *testing.T) {
		t.Parallel()

		_, err := domain.NewGuestAccount("a1b2c3d4")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestAccountValidate(t *testing.T) {
	t.Parallel()

	t.Run("hashed password satisfies the credential check", func(t *testing.T) {
		t.Parallel()

		account := &domain.Account{
			ID:             uuid.New(),
			Username:       "maria",
			Email:          "maria@example.com",
			HashedPassword: "$2a$10$abcdefghijklmnopqrstuv",
		}
		assert.NoError(t, account.Validate())
	})

	t.Run("nil ID", func(t *testing.T) {
		t.Parallel()

		account := &domain.Account{Username: "maria"}
		assert.ErrorIs(t, account.Validate(), domain.ErrEmptyAccountID)
	})
}
