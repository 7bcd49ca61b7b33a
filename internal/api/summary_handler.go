package api

import (
	"net/http"

	"github.com/joinboard/joinboard-api/internal/api/shared"
	"github.com/joinboard/joinboard-api/internal/store"
)

// SummaryHandler serves the dashboard summary. The snapshot is computed
// fresh on every request; nothing is cached.
type SummaryHandler struct {
	summaryStore store.SummaryStore
}

// NewSummaryHandler creates a new SummaryHandler with the given dependencies.
func NewSummaryHandler(summaryStore store.SummaryStore) *SummaryHandler {
	return &SummaryHandler{summaryStore: summaryStore}
}

// Get handles GET /summary/.
func (h *SummaryHandler) Get(w http.ResponseWriter, r *http.Request) {
	summary, err := h.summaryStore.GetSummary(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to compute summary")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, summary)
}
