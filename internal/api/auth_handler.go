package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/joinboard/joinboard-api/internal/api/shared"
	"github.com/joinboard/joinboard-api/internal/config"
	"github.com/joinboard/joinboard-api/internal/service/auth"
	"github.com/joinboard/joinboard-api/internal/service/session"
	"github.com/joinboard/joinboard-api/internal/store"
)

// refreshCookieName is the HttpOnly cookie carrying the refresh token.
const refreshCookieName = "refreshToken"

// Refresh cookie lifetimes. "Remember me" stretches the session to 30
// days; otherwise it lasts a day.
const (
	rememberCookieMaxAge = 30 * 24 * time.Hour
	defaultCookieMaxAge  = 24 * time.Hour
)

// AuthHandler handles the registration, login, and session endpoints.
type AuthHandler struct {
	sessionService *session.Service
	authConfig     config.AuthConfig
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(sessionService *session.Service, authConfig config.AuthConfig) *AuthHandler {
	return &AuthHandler{
		sessionService: sessionService,
		authConfig:     authConfig,
	}
}

// Register handles POST /registration/.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !decodeValidated(w, r, &req) {
		return
	}

	account, token, err := h.sessionService.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		// Duplicate registration data surfaces like any other field error.
		switch {
		case errors.Is(err, store.ErrEmailExists):
			shared.RespondWithJSON(w, r, http.StatusBadRequest, ValidationErrorResponse{
				Error:   "Validation error",
				Fields:  map[string]string{"email": "Email already exists"},
				TraceID: shared.GetTraceID(r.Context()),
			})
		case errors.Is(err, store.ErrUsernameExists):
			shared.RespondWithJSON(w, r, http.StatusBadRequest, ValidationErrorResponse{
				Error:   "Validation error",
				Fields:  map[string]string{"username": "Username already exists"},
				TraceID: shared.GetTraceID(r.Context()),
			})
		default:
			HandleAPIError(w, r, err, "Failed to create account")
		}
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, RegisterResponse{
		AccountID: account.ID,
		Token:     token,
		Username:  account.Username,
		Email:     account.Email,
	})
}

// Login handles POST /login/. On success the access token goes in the
// body and the refresh token into an HttpOnly cookie.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decodeValidated(w, r, &req) {
		return
	}

	account, pair, err := h.sessionService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to authenticate")
		return
	}

	maxAge := defaultCookieMaxAge
	if req.Remember {
		maxAge = rememberCookieMaxAge
	}
	h.setRefreshCookie(w, pair.RefreshToken, maxAge)

	shared.RespondWithJSON(w, r, http.StatusCreated, LoginResponse{
		AccountID:   account.ID,
		AccessToken: pair.AccessToken,
		Username:    account.Username,
		Email:       account.Email,
	})
}

// Refresh handles POST /login/refresh/. The refresh token is read from
// the cookie, never from the body.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(refreshCookieName)
	if err != nil || cookie.Value == "" {
		HandleAPIError(w, r, auth.ErrMissingToken, "")
		return
	}

	access, err := h.sessionService.Refresh(r.Context(), cookie.Value)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to refresh token")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, RefreshResponse{Access: access})
}

// Logout handles POST /logout/. The cookie is cleared unconditionally;
// a parseable refresh token is additionally revoked server-side so it
// cannot be replayed.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(refreshCookieName); err == nil {
		h.sessionService.Logout(r.Context(), cookie.Value)
	}
	h.clearRefreshCookie(w)

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{
		"message": "Successfully logged out",
	})
}

// GuestLogin handles POST /login/guest/. Both tokens are returned in the
// body: the client needs the refresh token to tear the session down.
func (h *AuthHandler) GuestLogin(w http.ResponseWriter, r *http.Request) {
	account, pair, err := h.sessionService.GuestLogin(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create guest session")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, GuestLoginResponse{
		RefreshToken: pair.RefreshToken,
		AccessToken:  pair.AccessToken,
		GuestID:      account.ID,
	})
}

// GuestLogout handles POST /logout/guest/: the guest account is deleted
// and its refresh token blacklisted in one transaction.
func (h *AuthHandler) GuestLogout(w http.ResponseWriter, r *http.Request) {
	var req GuestLogoutRequest
	if !decodeValidated(w, r, &req) {
		return
	}

	if err := h.sessionService.GuestLogout(r.Context(), req.RefreshToken); err != nil {
		HandleAPIError(w, r, err, "Failed to close guest session")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{
		"message": "Guest session closed",
	})
}

func (h *AuthHandler) setRefreshCookie(w http.ResponseWriter, token string, maxAge time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     refreshCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   h.authConfig.SecureCookies,
		SameSite: http.SameSiteStrictMode,
	})
}

func (h *AuthHandler) clearRefreshCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     refreshCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.authConfig.SecureCookies,
		SameSite: http.SameSiteStrictMode,
	})
}
