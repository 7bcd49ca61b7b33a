package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joinboard/joinboard-api/internal/api"
	"github.com/joinboard/joinboard-api/internal/domain"
	"github.com/joinboard/joinboard-api/internal/mocks"
)

func newUserRouter(t *testing.T) (chi.Router, *mocks.MockUserStore) {
	t.Helper()

	userStore := mocks.NewMockUserStore()
	handler := api.NewUserHandler(userStore)

	r := chi.NewRouter()
	r.Route("/user", func(r chi.Router) {
		r.Get("/", handler.List)
		r.Post("/", handler.Create)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", handler.Get)
			r.Put("/", handler.Update)
			r.Patch("/", handler.Update)
			r.Delete("/", handler.Delete)
		})
	})
	return r, userStore
}

func doJSON(t *testing.T, router chi.Router, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func seedUser(t *testing.T, userStore *mocks.MockUserStore) *domain.User {
	t.Helper()

	user, err := domain.NewUser("Anja Schulz", "anja@example.com", "+49 151 0000000", "#FF7A00")
	require.NoError(t, err)
	require.NoError(t, userStore.Create(context.Background(), user))
	return user
}

func TestUserEndpoints(t *testing.T) {
	t.Parallel()

	t.Run("list", func(t *testing.T) {
		t.Parallel()
		router, userStore := newUserRouter(t)
		seedUser(t, userStore)

		w := doJSON(t, router, http.MethodGet, "/user/", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var users []domain.User
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
		assert.Len(t, users, 1)
	})

	t.Run("create", func(t *testing.T) {
		t.Parallel()
		router, userStore := newUserRouter(t)

		w := doJSON(t, router, http.MethodPost, "/user/", map[string]string{
			"username":      "Anja Schulz",
			"email":         "anja@example.com",
			"contactNumber": "+49 151 0000000",
			"color":         "#FF7A00",
		})
		require.Equal(t, http.StatusCreated, w.Code)

		var created domain.User
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
		assert.NotEqual(t, uuid.Nil, created.ID)
		assert.Equal(t, "+49 151 0000000", created.ContactNumber)
		assert.Len(t, userStore.Users, 1)
	})

	t.Run("create with invalid email", func(t *testing.T) {
		t.Parallel()
		router, _ := newUserRouter(t)

		w := doJSON(t, router, http.MethodPost, "/user/", map[string]string{
			"username": "Anja Schulz",
			"email":    "not-an-email",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("patch keeps absent fields", func(t *testing.T) {
		t.Parallel()
		router, userStore := newUserRouter(t)
		user := seedUser(t, userStore)

		w := doJSON(t, router, http.MethodPatch, "/user/"+user.ID.String()+"/", map[string]string{
			"contactNumber": "+49 151 9999999",
		})
		require.Equal(t, http.StatusOK, w.Code)

		var updated domain.User
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
		assert.Equal(t, "+49 151 9999999", updated.ContactNumber)
		assert.Equal(t, "Anja Schulz", updated.Username)
		assert.Equal(t, "anja@example.com", updated.Email)
	})

	t.Run("get unknown user", func(t *testing.T) {
		t.Parallel()
		router, _ := newUserRouter(t)

		w := doJSON(t, router, http.MethodGet, "/user/"+uuid.NewString()+"/", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("delete", func(t *testing.T) {
		t.Parallel()
		router, userStore := newUserRouter(t)
		user := seedUser(t, userStore)

		w := doJSON(t, router, http.MethodDelete, "/user/"+user.ID.String()+"/", nil)
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, userStore.Users)
	})
}
