package api

import (
	"net/http"
	"time"

	"github.com/joinboard/joinboard-api/internal/api/shared"
	"github.com/joinboard/joinboard-api/internal/domain"
	"github.com/joinboard/joinboard-api/internal/store"
)

// ProfileHandler handles the profile endpoints under /profiles/. These
// routes sit behind the access-token middleware.
type ProfileHandler struct {
	profileStore store.ProfileStore
}

// NewProfileHandler creates a new ProfileHandler with the given dependencies.
func NewProfileHandler(profileStore store.ProfileStore) *ProfileHandler {
	return &ProfileHandler{profileStore: profileStore}
}

// List handles GET /profiles/.
func (h *ProfileHandler) List(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.profileStore.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list profiles")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, profiles)
}

// Create handles POST /profiles/.
func (h *ProfileHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateProfileRequest
	if !decodeValidated(w, r, &req) {
		return
	}

	profile, err := domain.NewProfile(req.AccountID, req.Bio, req.Location)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.profileStore.Create(r.Context(), profile); err != nil {
		HandleAPIError(w, r, err, "Failed to create profile")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, profile)
}

// Get handles GET /profiles/{id}/.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	profile, err := h.profileStore.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get profile")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, profile)
}

// Update handles PUT and PATCH /profiles/{id}/.
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if !decodeValidated(w, r, &req) {
		return
	}

	profile, err := h.profileStore.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get profile")
		return
	}

	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.Location != nil {
		profile.Location = *req.Location
	}
	profile.UpdatedAt = time.Now().UTC()

	if err := h.profileStore.Update(r.Context(), profile); err != nil {
		HandleAPIError(w, r, err, "Failed to update profile")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, profile)
}

// Delete handles DELETE /profiles/{id}/.
func (h *ProfileHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.profileStore.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete profile")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
