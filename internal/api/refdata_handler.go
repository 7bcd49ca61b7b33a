package api

import (
	"net/http"

	"github.com/joinboard/joinboard-api/internal/api/shared"
	"github.com/joinboard/joinboard-api/internal/domain"
	"github.com/joinboard/joinboard-api/internal/store"
)

// RefDataHandler handles the category and prio endpoints. Both are flat
// reference collections with the same list/create shape.
type RefDataHandler struct {
	categoryStore store.CategoryStore
	prioStore     store.PrioStore
}

// NewRefDataHandler creates a new RefDataHandler with the given dependencies.
func NewRefDataHandler(categoryStore store.CategoryStore, prioStore store.PrioStore) *RefDataHandler {
	return &RefDataHandler{
		categoryStore: categoryStore,
		prioStore:     prioStore,
	}
}

// ListCategories handles GET /category/.
func (h *RefDataHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryStore.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list categories")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, categories)
}

// CreateCategory handles POST /category/.
func (h *RefDataHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req CreateCategoryRequest
	if !decodeValidated(w, r, &req) {
		return
	}

	category, err := domain.NewCategory(req.Name, req.Color)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.categoryStore.Create(r.Context(), category); err != nil {
		HandleAPIError(w, r, err, "Failed to create category")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, category)
}

// GetCategory handles GET /category/{id}/.
func (h *RefDataHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	category, err := h.categoryStore.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get category")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, category)
}

// DeleteCategory handles DELETE /category/{id}/. Tasks referencing the
// category are removed by the schema's cascade.
func (h *RefDataHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.categoryStore.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete category")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListPrios handles GET /prio/.
func (h *RefDataHandler) ListPrios(w http.ResponseWriter, r *http.Request) {
	prios, err := h.prioStore.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list prios")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, prios)
}

// CreatePrio handles POST /prio/.
func (h *RefDataHandler) CreatePrio(w http.ResponseWriter, r *http.Request) {
	var req CreatePrioRequest
	if !decodeValidated(w, r, &req) {
		return
	}

	prio, err := domain.NewPrio(req.Level, req.IconPath)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.prioStore.Create(r.Context(), prio); err != nil {
		HandleAPIError(w, r, err, "Failed to create prio")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, prio)
}

// GetPrio handles GET /prio/{id}/.
func (h *RefDataHandler) GetPrio(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	prio, err := h.prioStore.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get prio")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, prio)
}

// DeletePrio handles DELETE /prio/{id}/. Tasks referencing the prio are
// removed by the schema's cascade.
func (h *RefDataHandler) DeletePrio(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.prioStore.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete prio")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
