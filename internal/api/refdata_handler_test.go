package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joinboard/joinboard-api/internal/api"
	"github.com/joinboard/joinboard-api/internal/domain"
	"github.com/joinboard/joinboard-api/internal/mocks"
)

func newRefDataRouter(t *testing.T) (chi.Router, *mocks.MockCategoryStore, *mocks.MockPrioStore) {
	t.Helper()

	categoryStore := mocks.NewMockCategoryStore()
	prioStore := mocks.NewMockPrioStore()
	handler := api.NewRefDataHandler(categoryStore, prioStore)

	r := chi.NewRouter()
	r.Route("/category", func(r chi.Router) {
		r.Get("/", handler.ListCategories)
		r.Post("/", handler.CreateCategory)
		r.Get("/{id}/", handler.GetCategory)
		r.Delete("/{id}/", handler.DeleteCategory)
	})
	r.Route("/prio", func(r chi.Router) {
		r.Get("/", handler.ListPrios)
		r.Post("/", handler.CreatePrio)
		r.Get("/{id}/", handler.GetPrio)
		r.Delete("/{id}/", handler.DeletePrio)
	})
	return r, categoryStore, prioStore
}

func TestCategoryEndpoints(t *testing.T) {
	t.Parallel()

	t.Run("create and list", func(t *testing.T) {
		t.Parallel()
		router, categoryStore, _ := newRefDataRouter(t)

		w := doJSON(t, router, http.MethodPost, "/category/", map[string]string{
			"name":  "User Story",
			"color": "#0038FF",
		})
		require.Equal(t, http.StatusCreated, w.Code)
		assert.Len(t, categoryStore.Categories, 1)

		w = doJSON(t, router, http.MethodGet, "/category/", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var categories []domain.Category
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &categories))
		require.Len(t, categories, 1)
		assert.Equal(t, "User Story", categories[0].Name)
	})

	t.Run("create with bad color", func(t *testing.T) {
		t.Parallel()
		router, _, _ := newRefDataRouter(t)

		w := doJSON(t, router, http.MethodPost, "/category/", map[string]string{
			"name":  "User Story",
			"color": "blue",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("name over the limit", func(t *testing.T) {
		t.Parallel()
		router, _, _ := newRefDataRouter(t)

		w := doJSON(t, router, http.MethodPost, "/category/", map[string]string{
			"name":  "a very long category name",
			"color": "#0038FF",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("get and delete", func(t *testing.T) {
		t.Parallel()
		router, categoryStore, _ := newRefDataRouter(t)

		category, err := domain.NewCategory("Technical Task", "#1FD7C1")
		require.NoError(t, err)
		require.NoError(t, categoryStore.Create(context.Background(), category))

		w := doJSON(t, router, http.MethodGet, "/category/"+category.ID.String()+"/", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		w = doJSON(t, router, http.MethodDelete, "/category/"+category.ID.String()+"/", nil)
		assert.Equal(t, http.StatusNoContent, w.Code)

		w = doJSON(t, router, http.MethodGet, "/category/"+category.ID.String()+"/", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestPrioEndpoints(t *testing.T) {
	t.Parallel()

	t.Run("create and list", func(t *testing.T) {
		t.Parallel()
		router, _, prioStore := newRefDataRouter(t)

		w := doJSON(t, router, http.MethodPost, "/prio/", map[string]string{
			"level":     "urgent",
			"icon_path": "assets/urgent.svg",
		})
		require.Equal(t, http.StatusCreated, w.Code)
		assert.Len(t, prioStore.Prios, 1)

		w = doJSON(t, router, http.MethodGet, "/prio/", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var prios []domain.Prio
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &prios))
		require.Len(t, prios, 1)
		assert.Equal(t, "urgent", prios[0].Level)
		assert.Equal(t, "assets/urgent.svg", prios[0].IconPath)
	})

	t.Run("missing level", func(t *testing.T) {
		t.Parallel()
		router, _, _ := newRefDataRouter(t)

		w := doJSON(t, router, http.MethodPost, "/prio/", map[string]string{
			"icon_path": "assets/low.svg",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("delete unknown prio", func(t *testing.T) {
		t.Parallel()
		router, _, _ := newRefDataRouter(t)

		w := doJSON(t, router, http.MethodDelete, "/prio/"+uuid.NewString()+"/", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
