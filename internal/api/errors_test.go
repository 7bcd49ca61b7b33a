package api_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/joinboard/joinboard-api/internal/api"
	"github.com/joinboard/joinboard-api/internal/domain"
	"github.com/joinboard/joinboard-api/internal/service/auth"
	"github.com/joinboard/joinboard-api/internal/service/session"
	"github.com/joinboard/joinboard-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		want int
	}{
		{"task not found", store.ErrTaskNotFound, http.StatusNotFound},
		{"subtask not found", store.ErrSubtaskNotFound, http.StatusNotFound},
		{"account not found", store.ErrAccountNotFound, http.StatusNotFound},
		{"invalid credentials", session.ErrInvalidCredentials, http.StatusBadRequest},
		{"not a guest account", session.ErrNotGuestAccount, http.StatusBadRequest},
		{"duplicate email", store.ErrEmailExists, http.StatusBadRequest},
		{"duplicate username", store.ErrUsernameExists, http.StatusBadRequest},
		{"domain validation", domain.ErrEmptyTaskTitle, http.StatusBadRequest},
		{"invalid path id", domain.ErrInvalidID, http.StatusBadRequest},
		{"expired token", auth.ErrExpiredToken, http.StatusUnauthorized},
		{"revoked refresh token", auth.ErrRevokedToken, http.StatusUnauthorized},
		{"missing token", auth.ErrMissingToken, http.StatusUnauthorized},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, api.MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	t.Run("internal errors never leak their text", func(t *testing.T) {
		t.Parallel()

		msg := api.GetSafeErrorMessage(errors.New("pq: connection refused"))
		assert.Equal(t, "An unexpected error occurred", msg)
	})

	t.Run("known errors get a stable message", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Task not found", api.GetSafeErrorMessage(store.ErrTaskNotFound))
		assert.Equal(t, "Invalid login credentials", api.GetSafeErrorMessage(session.ErrInvalidCredentials))
		assert.Equal(t, "Email already exists", api.GetSafeErrorMessage(store.ErrEmailExists))
	})

	t.Run("field validation errors name the field", func(t *testing.T) {
		t.Parallel()

		err := domain.NewValidationError("id", "has invalid format", domain.ErrInvalidID)
		assert.Equal(t, "Invalid id", api.GetSafeErrorMessage(err))
	})
}
