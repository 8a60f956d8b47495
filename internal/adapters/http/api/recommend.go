// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/okian/internmatch/internal/domain/model"
)

// maxRecommendationLimit caps GET /recommendations?limit.
const maxRecommendationLimit = 50

// RecommendHandler handles both recommendation paths: the rule-based top-N
// and the embedding-based semantic ranking.
type RecommendHandler struct {
	deps Dependencies
}

// NewRecommendHandler creates a new recommendation handler.
func NewRecommendHandler(deps Dependencies) *RecommendHandler {
	return &RecommendHandler{deps: deps}
}

// HandleTop handles GET /recommendations?candidate_id=X&limit=N requests.
func (h *RecommendHandler) HandleTop(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	candidateID := strings.TrimSpace(r.URL.Query().Get("candidate_id"))
	if candidateID == "" {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxRecommendationLimit {
			writeError(w, http.StatusBadRequest, "bad_limit", ErrBadRequest)
			return
		}
		limit = n
	}
	results, err := h.deps.TopRecommendations(r.Context(), candidateID, limit)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, results)
}

// semanticRequest mirrors the POST /recommendations/semantic body.
type semanticRequest struct {
	Qualification string   `json:"qualification"`
	Department    string   `json:"department"`
	Location      string   `json:"location"`
	Skills        []string `json:"skills"`
}

// HandleSemantic handles POST /recommendations/semantic requests. Missing
// required fields are rejected; an unavailable embedding backend maps to 503
// while the other paths stay available.
func (h *RecommendHandler) HandleSemantic(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req semanticRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	ranked, err := h.deps.RankByEmbedding(r.Context(), model.RankQuery{
		Qualification: req.Qualification,
		Department:    req.Department,
		Location:      req.Location,
		Skills:        req.Skills,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ranked)
}
