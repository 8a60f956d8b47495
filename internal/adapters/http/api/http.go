// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/okian/internmatch/internal/adapters/embedding"
	"github.com/okian/internmatch/internal/adapters/repository"
	"github.com/okian/internmatch/internal/domain/model"
	"github.com/okian/internmatch/internal/domain/ranking"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	ScoreOne(ctx context.Context, candidateID, internshipID string) model.MatchResult
	TopRecommendations(ctx context.Context, candidateID string, limit int) ([]model.MatchResult, error)
	RankByEmbedding(ctx context.Context, query model.RankQuery) ([]model.RankedRecommendation, error)
	FilterSearch(ctx context.Context, query model.SearchQuery) ([]model.InternshipListing, error)
}

// Server wires HTTP routes for the matching API.
type Server struct {
	matchHandler     *MatchHandler
	recommendHandler *RecommendHandler
	searchHandler    *SearchHandler
	healthHandler    *HealthHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies) *Server {
	return &Server{
		matchHandler:     NewMatchHandler(deps),
		recommendHandler: NewRecommendHandler(deps),
		searchHandler:    NewSearchHandler(deps),
		healthHandler:    NewHealthHandler(),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/match/score", MetricsMiddleware(s.matchHandler.HandleScore, "match_score"))
	mux.HandleFunc("/recommendations", MetricsMiddleware(s.recommendHandler.HandleTop, "recommendations"))
	mux.HandleFunc("/recommendations/semantic", MetricsMiddleware(s.recommendHandler.HandleSemantic, "semantic"))
	mux.HandleFunc("/internships/search", MetricsMiddleware(s.searchHandler.HandleSearch, "search"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeDomainError translates upstream errors to the right status code.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ranking.ErrInvalidQuery):
		writeError(w, http.StatusBadRequest, "invalid_query", err)
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", err)
	case errors.Is(err, embedding.ErrBackendUnavailable):
		writeError(w, http.StatusServiceUnavailable, "backend_unavailable", err)
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err)
	}
}

func decodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}
