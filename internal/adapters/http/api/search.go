// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"

	"github.com/okian/internmatch/internal/domain/model"
)

// SearchHandler handles unranked filter-search requests.
type SearchHandler struct {
	deps Dependencies
}

// NewSearchHandler creates a new search handler.
func NewSearchHandler(deps Dependencies) *SearchHandler {
	return &SearchHandler{deps: deps}
}

// searchRequest mirrors the POST /internships/search body. All filters are
// optional; an empty body returns the first 20 listings in catalog order.
type searchRequest struct {
	Location   string   `json:"location"`
	Department string   `json:"department"`
	Skills     []string `json:"skills"`
}

// HandleSearch handles POST /internships/search requests.
func (h *SearchHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req searchRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	listings, err := h.deps.FilterSearch(r.Context(), model.SearchQuery{
		Location:   req.Location,
		Department: req.Department,
		Skills:     req.Skills,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listings)
}
