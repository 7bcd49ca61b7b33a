package session_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joinboard/joinboard-api/internal/domain"
	"github.com/joinboard/joinboard-api/internal/mocks"
	"github.com/joinboard/joinboard-api/internal/service/auth"
	"github.com/joinboard/joinboard-api/internal/service/session"
	"github.com/joinboard/joinboard-api/internal/store"
)

// fakeHasher produces deterministic "hashes" so tests can verify what
// ends up in the store without real bcrypt work.
type fakeHasher struct {
	err error
}

func (h fakeHasher) Hash(password string) (string, error) {
	if h.err != nil {
		return "", h.err
	}
	return "hashed:" + password, nil
}

type fakeVerifier struct{}

func (fakeVerifier) Compare(hashedPassword, password string) error {
	if hashedPassword == "hashed:"+password {
		return nil
	}
	return errors.New("hash mismatch")
}

type testEnv struct {
	service      *session.Service
	accountStore *mocks.MockAccountStore
	tokenStore   *mocks.MockRevokedTokenStore
	jwtService   *mocks.MockJWTService
	mock         sqlmock.Sqlmock
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	env := &testEnv{
		accountStore: mocks.NewMockAccountStore(),
		tokenStore:   mocks.NewMockRevokedTokenStore(),
		jwtService: &mocks.MockJWTService{
			Token:        "access-token",
			RefreshToken: "refresh-token",
		},
		mock: mock,
	}
	env.service = session.NewService(db, env.accountStore, env.tokenStore, env.jwtService, fakeHasher{}, fakeVerifier{}, nil)
	return env
}

func registerAccount(t *testing.T, env *testEnv) *domain.Account {
	t.Helper()

	account, _, err := env.service.Register(context.Background(), "maria", "maria@example.com", "correct-horse")
	require.NoError(t, err)
	return account
}

func TestRegister(t *testing.T) {
	t.Parallel()

	t.Run("stores the hash and signs the client in", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)

		account, token, err := env.service.Register(context.Background(), "maria", "maria@example.com", "correct-horse")
		require.NoError(t, err)

		assert.Equal(t, "access-token", token)
		assert.Empty(t, account.Password)
		assert.Equal(t, "hashed:correct-horse", account.HashedPassword)

		stored, err := env.accountStore.GetByEmail(context.Background(), "maria@example.com")
		require.NoError(t, err)
		assert.Equal(t, "hashed:correct-horse", stored.HashedPassword)
	})

	t.Run("duplicate email", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)
		registerAccount(t, env)

		_, _, err := env.service.Register(context.Background(), "other", "maria@example.com", "pw123456")
		assert.ErrorIs(t, err, store.ErrEmailExists)
	})

	t.Run("duplicate username", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)
		registerAccount(t, env)

		_, _, err := env.service.Register(context.Background(), "maria", "other@example.com", "pw123456")
		assert.ErrorIs(t, err, store.ErrUsernameExists)
	})

	t.Run("invalid input", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)

		_, _, err := env.service.Register(context.Background(), "", "maria@example.com", "pw123456")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestLogin(t *testing.T) {
	t.Parallel()

	t.Run("valid credentials mint a token pair", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)
		registerAccount(t, env)

		account, pair, err := env.service.Login(context.Background(), "maria@example.com", "correct-horse")
		require.NoError(t, err)

		assert.Equal(t, "maria", account.Username)
		assert.Equal(t, "access-token", pair.AccessToken)
		assert.Equal(t, "refresh-token", pair.RefreshToken)
	})

	t.Run("unknown email and wrong password are indistinguishable", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)
		registerAccount(t, env)

		_, _, unknownErr := env.service.Login(context.Background(), "nobody@example.com", "correct-horse")
		_, _, wrongErr := env.service.Login(context.Background(), "maria@example.com", "wrong")

		assert.ErrorIs(t, unknownErr, session.ErrInvalidCredentials)
		assert.ErrorIs(t, wrongErr, session.ErrInvalidCredentials)
		assert.Equal(t, unknownErr, wrongErr)
	})

	t.Run("guest accounts cannot log in by email", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)

		guest, err := domain.NewGuestAccount(domain.GuestUsernamePrefix + "deadbeef")
		require.NoError(t, err)
		guest.Email = "guest@example.com"
		env.accountStore.Accounts[guest.ID] = guest

		_, _, err = env.service.Login(context.Background(), "guest@example.com", "anything")
		assert.ErrorIs(t, err, session.ErrInvalidCredentials)
	})
}

func TestRefresh(t *testing.T) {
	t.Parallel()

	accountID := uuid.New()
	claims := &auth.Claims{
		AccountID: accountID,
		TokenType: "refresh",
		ExpiresAt: time.Now().Add(time.Hour),
		ID:        "jti-1",
	}

	t.Run("valid token mints a new access token", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)
		env.jwtService.Claims = claims

		access, err := env.service.Refresh(context.Background(), "refresh-token")
		require.NoError(t, err)
		assert.Equal(t, "access-token", access)
	})

	t.Run("revoked token", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)
		env.jwtService.Claims = claims
		require.NoError(t, env.tokenStore.Revoke(context.Background(), "jti-1", accountID, claims.ExpiresAt))

		_, err := env.service.Refresh(context.Background(), "refresh-token")
		assert.ErrorIs(t, err, auth.ErrRevokedToken)
	})

	t.Run("invalid token", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)
		env.jwtService.ValidateErr = auth.ErrInvalidRefreshToken

		_, err := env.service.Refresh(context.Background(), "garbage")
		assert.ErrorIs(t, err, auth.ErrInvalidRefreshToken)
	})
}

func TestGuestLogin(t *testing.T) {
	t.Parallel()

	t.Run("creates a credentialless account with the guest prefix", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)

		account, pair, err := env.service.GuestLogin(context.Background())
		require.NoError(t, err)

		assert.True(t, account.IsGuest)
		assert.True(t, strings.HasPrefix(account.Username, domain.GuestUsernamePrefix))
		assert.Empty(t, account.Email)
		assert.Empty(t, account.HashedPassword)
		assert.Equal(t, "refresh-token", pair.RefreshToken)

		stored, err := env.accountStore.GetByID(context.Background(), account.ID)
		require.NoError(t, err)
		assert.True(t, stored.IsGuest)
	})

	t.Run("retries on a username collision", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)

		calls := 0
		env.accountStore.CreateFn = func(ctx context.Context, account *domain.Account) error {
			calls++
			if calls == 1 {
				return store.ErrUsernameExists
			}
			env.accountStore.Accounts[account.ID] = account
			return nil
		}

		_, _, err := env.service.GuestLogin(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 2, calls)
	})
}

func TestGuestLogout(t *testing.T) {
	t.Parallel()

	refreshClaims := func(accountID uuid.UUID) *auth.Claims {
		return &auth.Claims{
			AccountID: accountID,
			TokenType: "refresh",
			ExpiresAt: time.Now().Add(time.Hour),
			ID:        "jti-guest",
		}
	}

	t.Run("deletes the account and blacklists the token atomically", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)

		guest, _, err := env.service.GuestLogin(context.Background())
		require.NoError(t, err)
		env.jwtService.Claims = refreshClaims(guest.ID)

		env.mock.ExpectBegin()
		env.mock.ExpectCommit()

		require.NoError(t, env.service.GuestLogout(context.Background(), "refresh-token"))

		_, err = env.accountStore.GetByID(context.Background(), guest.ID)
		assert.ErrorIs(t, err, store.ErrAccountNotFound)

		revoked, err := env.tokenStore.IsRevoked(context.Background(), "jti-guest")
		require.NoError(t, err)
		assert.True(t, revoked)
		assert.NoError(t, env.mock.ExpectationsWereMet())
	})

	t.Run("rejects registered accounts without deleting anything", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)
		account := registerAccount(t, env)
		env.jwtService.Claims = refreshClaims(account.ID)

		err := env.service.GuestLogout(context.Background(), "refresh-token")
		assert.ErrorIs(t, err, session.ErrNotGuestAccount)

		_, err = env.accountStore.GetByID(context.Background(), account.ID)
		assert.NoError(t, err)
	})

	t.Run("already-destroyed session", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)
		env.jwtService.Claims = refreshClaims(uuid.New())

		err := env.service.GuestLogout(context.Background(), "refresh-token")
		assert.ErrorIs(t, err, store.ErrAccountNotFound)
	})

	t.Run("replayed token", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)

		guest, _, err := env.service.GuestLogin(context.Background())
		require.NoError(t, err)
		claims := refreshClaims(guest.ID)
		env.jwtService.Claims = claims
		require.NoError(t, env.tokenStore.Revoke(context.Background(), claims.ID, guest.ID, claims.ExpiresAt))

		err = env.service.GuestLogout(context.Background(), "refresh-token")
		assert.ErrorIs(t, err, auth.ErrRevokedToken)
	})
}

func TestLogout(t *testing.T) {
	t.Parallel()

	t.Run("revokes a parseable token", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)
		env.jwtService.Claims = &auth.Claims{
			AccountID: uuid.New(),
			ExpiresAt: time.Now().Add(time.Hour),
			ID:        "jti-logout",
		}

		env.service.Logout(context.Background(), "refresh-token")

		revoked, err := env.tokenStore.IsRevoked(context.Background(), "jti-logout")
		require.NoError(t, err)
		assert.True(t, revoked)
	})

	t.Run("silently skips an invalid token", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)
		env.jwtService.ValidateErr = auth.ErrInvalidRefreshToken

		env.service.Logout(context.Background(), "garbage")
		assert.Empty(t, env.tokenStore.Revoked)
	})
}
