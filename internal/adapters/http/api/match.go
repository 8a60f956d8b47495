// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"fmt"
	"net/http"
	"strings"
)

// MatchHandler handles single-pair match scoring requests.
type MatchHandler struct {
	deps Dependencies
}

// NewMatchHandler creates a new match handler.
func NewMatchHandler(deps Dependencies) *MatchHandler {
	return &MatchHandler{deps: deps}
}

// scoreRequest mirrors the POST /match/score body.
type scoreRequest struct {
	CandidateID  string `json:"candidate_id"`
	InternshipID string `json:"internship_id"`
}

func (r scoreRequest) validate() error {
	switch {
	case strings.TrimSpace(r.CandidateID) == "":
		return fmt.Errorf("%w: missing candidate_id", ErrBadRequest)
	case strings.TrimSpace(r.InternshipID) == "":
		return fmt.Errorf("%w: missing internship_id", ErrBadRequest)
	}
	return nil
}

// HandleScore handles POST /match/score requests. Unresolvable ids yield a
// zero-score result with an explanatory reason, not an error status.
func (h *MatchHandler) HandleScore(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req scoreRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	result := h.deps.ScoreOne(r.Context(), req.CandidateID, req.InternshipID)
	writeJSON(w, http.StatusOK, result)
}
