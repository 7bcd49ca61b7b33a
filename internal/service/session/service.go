// Package session implements the account lifecycle: registration, email
// login, refresh-token rotation, and anonymous guest sessions that are
// destroyed on logout.
package session

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/joinboard/joinboard-api/internal/domain"
	"github.com/joinboard/joinboard-api/internal/platform/logger"
	"github.com/joinboard/joinboard-api/internal/service/auth"
	"github.com/joinboard/joinboard-api/internal/store"
)

// guestUsernameAttempts bounds the retry loop on the astronomically
// unlikely event of a random username collision.
const guestUsernameAttempts = 5

// TokenPair bundles the two tokens minted for a session.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// Service implements account registration and session management on top
// of the account store, the JWT service, and the revocation blacklist.
type Service struct {
	db           *sql.DB
	accountStore store.AccountStore
	tokenStore   store.RevokedTokenStore
	jwtService   auth.JWTService
	hasher       auth.PasswordHasher
	verifier     auth.PasswordVerifier
	logger       *slog.Logger
}

// NewService creates a session Service with the given dependencies.
func NewService(
	db *sql.DB,
	accountStore store.AccountStore,
	tokenStore store.RevokedTokenStore,
	jwtService auth.JWTService,
	hasher auth.PasswordHasher,
	verifier auth.PasswordVerifier,
	log *slog.Logger,
) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		db:           db,
		accountStore: accountStore,
		tokenStore:   tokenStore,
		jwtService:   jwtService,
		hasher:       hasher,
		verifier:     verifier,
		logger:       log.With(slog.String("component", "session_service")),
	}
}

// Register creates a new account and returns it along with an access
// token so the client is signed in immediately.
// Returns store.ErrEmailExists if the email is already registered and
// store.ErrUsernameExists on a username collision.
func (s *Service) Register(ctx context.Context, username, email, password string) (*domain.Account, string, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	account, err := domain.NewAccount(username, email, password)
	if err != nil {
		return nil, "", err
	}

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		log.Error("failed to hash password", slog.String("error", err.Error()))
		return nil, "", fmt.Errorf("hashing password: %w", err)
	}
	account.HashedPassword = hashed
	account.Password = ""

	// The unique constraint is the real guard; Create maps violations to
	// store.ErrEmailExists / store.ErrUsernameExists.
	if err := s.accountStore.Create(ctx, account); err != nil {
		return nil, "", err
	}

	token, err := s.jwtService.GenerateToken(ctx, account.ID)
	if err != nil {
		log.Error("failed to generate token after registration",
			slog.String("error", err.Error()),
			slog.String("account_id", account.ID.String()))
		return nil, "", err
	}

	log.Info("account registered", slog.String("account_id", account.ID.String()))
	return account, token, nil
}

// Login verifies the credentials and mints an access/refresh token pair.
// Unknown emails and wrong passwords both come back as
// ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, email, password string) (*domain.Account, *TokenPair, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	account, err := s.accountStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if account.HashedPassword == "" {
		return nil, nil, ErrInvalidCredentials
	}
	if err := s.verifier.Compare(account.HashedPassword, password); err != nil {
		log.Debug("password mismatch during login",
			slog.String("account_id", account.ID.String()))
		return nil, nil, ErrInvalidCredentials
	}

	pair, err := s.mintTokenPair(ctx, account.ID)
	if err != nil {
		return nil, nil, err
	}

	log.Info("login succeeded", slog.String("account_id", account.ID.String()))
	return account, pair, nil
}

// Refresh validates the refresh token, checks it against the blacklist,
// and mints a fresh access token.
// Returns auth.ErrRevokedToken for a blacklisted token and the auth
// package's validation errors for an invalid or expired one.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.jwtService.ValidateRefreshToken(ctx, refreshToken)
	if err != nil {
		return "", err
	}

	revoked, err := s.tokenStore.IsRevoked(ctx, claims.ID)
	if err != nil {
		return "", err
	}
	if revoked {
		return "", auth.ErrRevokedToken
	}

	return s.jwtService.GenerateToken(ctx, claims.AccountID)
}

// GuestLogin creates a throwaway account with a random username and no
// credentials, then mints a token pair for it.
func (s *Service) GuestLogin(ctx context.Context) (*domain.Account, *TokenPair, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var account *domain.Account
	for attempt := 0; attempt < guestUsernameAttempts; attempt++ {
		username, err := randomGuestUsername()
		if err != nil {
			return nil, nil, err
		}

		candidate, err := domain.NewGuestAccount(username)
		if err != nil {
			return nil, nil, err
		}

		err = s.accountStore.Create(ctx, candidate)
		if err == nil {
			account = candidate
			break
		}
		if errors.Is(err, store.ErrUsernameExists) {
			log.Warn("guest username collision, retrying",
				slog.String("username", username))
			continue
		}
		return nil, nil, err
	}
	if account == nil {
		return nil, nil, fmt.Errorf("could not allocate a guest username after %d attempts", guestUsernameAttempts)
	}

	pair, err := s.mintTokenPair(ctx, account.ID)
	if err != nil {
		return nil, nil, err
	}

	log.Info("guest session created",
		slog.String("account_id", account.ID.String()),
		slog.String("username", account.Username))
	return account, pair, nil
}

// GuestLogout destroys a guest session: the account row is deleted and
// the refresh token blacklisted, atomically. A valid token whose guest
// account is already gone yields store.ErrAccountNotFound; a token
// belonging to a registered account yields ErrNotGuestAccount and
// nothing is deleted.
func (s *Service) GuestLogout(ctx context.Context, refreshToken string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	claims, err := s.jwtService.ValidateRefreshToken(ctx, refreshToken)
	if err != nil {
		return err
	}

	revoked, err := s.tokenStore.IsRevoked(ctx, claims.ID)
	if err != nil {
		return err
	}
	if revoked {
		return auth.ErrRevokedToken
	}

	account, err := s.accountStore.GetByID(ctx, claims.AccountID)
	if err != nil {
		return err
	}
	if !account.IsGuest {
		return ErrNotGuestAccount
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if err := s.accountStore.WithTx(tx).Delete(ctx, account.ID); err != nil {
			return err
		}
		return s.tokenStore.WithTx(tx).Revoke(ctx, claims.ID, account.ID, claims.ExpiresAt)
	})
	if err != nil {
		return err
	}

	log.Info("guest session destroyed", slog.String("account_id", account.ID.String()))
	return nil
}

// Logout revokes the refresh token server-side so it cannot be replayed.
// Revocation is best effort: an unparseable or already-expired token is
// simply logged, since clearing the cookie is the part the client
// observes.
func (s *Service) Logout(ctx context.Context, refreshToken string) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if refreshToken == "" {
		return
	}

	claims, err := s.jwtService.ValidateRefreshToken(ctx, refreshToken)
	if err != nil {
		log.Debug("skipping revocation of invalid refresh token during logout",
			slog.String("error", err.Error()))
		return
	}

	if err := s.tokenStore.Revoke(ctx, claims.ID, claims.AccountID, claims.ExpiresAt); err != nil {
		log.Warn("failed to revoke refresh token during logout",
			slog.String("error", err.Error()),
			slog.String("account_id", claims.AccountID.String()))
	}
}

func (s *Service) mintTokenPair(ctx context.Context, accountID uuid.UUID) (*TokenPair, error) {
	access, err := s.jwtService.GenerateToken(ctx, accountID)
	if err != nil {
		return nil, err
	}
	refresh, err := s.jwtService.GenerateRefreshToken(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// randomGuestUsername returns "guest_" plus 8 hex characters.
func randomGuestUsername() (string, error) {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating guest username: %w", err)
	}
	return domain.GuestUsernamePrefix + hex.EncodeToString(buf), nil
}
