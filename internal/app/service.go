// Package app provides the core matching service that implements the
// dependencies required by the HTTP API: rule-based scoring, embedding-based
// ranking and the unranked filter path over the internship catalog.
package app

import (
	"context"
	"errors"
	"runtime"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/okian/internmatch/internal/adapters/embedding"
	"github.com/okian/internmatch/internal/adapters/repository"
	"github.com/okian/internmatch/internal/domain/model"
	"github.com/okian/internmatch/internal/domain/ranking"
	"github.com/okian/internmatch/internal/domain/scoring"
	"github.com/okian/internmatch/internal/domain/search"
	"github.com/okian/internmatch/pkg/logger"
	"github.com/okian/internmatch/pkg/metrics"
)

// Default service configuration constants.
const (
	// defaultRecommendationLimit caps TopRecommendations when the caller
	// passes a non-positive limit.
	defaultRecommendationLimit = 5
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithProfileStore sets the candidate profile source.
func WithProfileStore(store repository.ProfileStore) Option {
	return func(s *Service) {
		if store != nil {
			s.profiles = store
		}
	}
}

// WithCatalogStore sets the internship catalog source.
func WithCatalogStore(store repository.CatalogStore) Option {
	return func(s *Service) {
		if store != nil {
			s.catalog = store
		}
	}
}

// WithEmbedder sets the embedding backend used by the semantic ranking path.
func WithEmbedder(e embedding.Embedder) Option {
	return func(s *Service) {
		if e != nil {
			s.embedder = e
		}
	}
}

// WithNeighborCount sets how many nearest neighbors the ranker fetches.
func WithNeighborCount(k int) Option {
	return func(s *Service) {
		if k > 0 {
			s.neighborCount = k
		}
	}
}

// WithScoringOptions forwards options to the rule-based scorer.
func WithScoringOptions(opts ...scoring.Option) Option {
	return func(s *Service) {
		s.scoringOpts = append(s.scoringOpts, opts...)
	}
}

// WithScoreWorkers bounds the parallelism of batch scoring.
func WithScoreWorkers(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.scoreWorkers = n
		}
	}
}

// Service implements the matching engine operations exposed to callers.
// Stateless per request: scores and rankings are recomputed from the current
// stores on every call, never persisted here.
type Service struct {
	logger   logger.Logger
	profiles repository.ProfileStore
	catalog  repository.CatalogStore
	embedder embedding.Embedder

	scorer *scoring.Scorer
	ranker *ranking.Ranker

	neighborCount int
	scoreWorkers  int
	scoringOpts   []scoring.Option
}

// New creates the service with configuration options. A profile store and a
// catalog store are required. The embedder is optional; without it only the
// rule-based and filter paths are usable.
func New(opts ...Option) *Service {
	s := &Service{
		scoreWorkers: runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}
	s.scorer = scoring.New(s.scoringOpts...)
	if s.embedder != nil {
		var rankOpts []ranking.Option
		if s.neighborCount > 0 {
			rankOpts = append(rankOpts, ranking.WithNeighborCount(s.neighborCount))
		}
		s.ranker = ranking.New(s.embedder, rankOpts...)
	}
	return s
}

// ScoreOne scores a single candidate/internship pair. Lookup failures
// degrade to a zero-score result with an explanatory reason instead of an
// error: this call runs inside batch loops and one bad lookup must not abort
// the batch.
func (s *Service) ScoreOne(ctx context.Context, candidateID, internshipID string) model.MatchResult {
	start := time.Now()
	defer func() {
		metrics.RecordScoringLatency(float64(time.Since(start).Milliseconds()))
	}()

	candidate, err := s.profiles.GetCandidateProfile(ctx, candidateID)
	if err != nil {
		s.degrade(ctx, "candidate lookup failed", candidateID, internshipID, err)
		return scoring.Unscorable(internshipID)
	}
	listing, err := s.catalog.GetInternship(ctx, internshipID)
	if err != nil {
		s.degrade(ctx, "internship lookup failed", candidateID, internshipID, err)
		return scoring.Unscorable(internshipID)
	}

	metrics.RecordMatchScore()
	return s.scorer.Score(candidate, listing)
}

// TopRecommendations scores every active internship for the candidate and
// returns the best `limit` results, sorted by score descending with catalog
// order preserved on ties. Returns ErrNotFound if the candidate is unknown.
func (s *Service) TopRecommendations(ctx context.Context, candidateID string, limit int) ([]model.MatchResult, error) {
	if limit <= 0 {
		limit = defaultRecommendationLimit
	}

	candidate, err := s.profiles.GetCandidateProfile(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	listings, err := s.catalog.ListActiveInternships(ctx)
	if err != nil {
		return nil, err
	}
	metrics.UpdateCorpusSize(len(listings))

	// Scores are independent and side-effect-free, so the per-internship
	// loop runs on a bounded worker group. Results are collected by index
	// to keep catalog order for the stable sort below.
	results := make([]model.MatchResult, len(listings))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.scoreWorkers)
	for i, listing := range listings {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = s.scorer.Score(candidate, listing)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > limit {
		results = results[:limit]
	}

	metrics.RecordRecommendationBatch()
	return results, nil
}

// RankByEmbedding runs the semantic recommendation path over the active
// corpus. Invalid queries and embedding backend failures surface to the
// caller; the rule-based and filter paths are unaffected by either.
func (s *Service) RankByEmbedding(ctx context.Context, query model.RankQuery) ([]model.RankedRecommendation, error) {
	if s.ranker == nil {
		return nil, embedding.ErrBackendUnavailable
	}

	start := time.Now()
	defer func() {
		metrics.RecordRankingLatency(float64(time.Since(start).Milliseconds()))
	}()

	corpus, err := s.catalog.ListActiveInternships(ctx)
	if err != nil {
		return nil, err
	}
	metrics.UpdateCorpusSize(len(corpus))

	ranked, err := s.ranker.Rank(ctx, query, corpus)
	if err != nil {
		if errors.Is(err, embedding.ErrBackendUnavailable) {
			metrics.RecordEmbeddingError()
			s.logger.Error(ctx, "embedding backend unavailable", logger.Error(err))
		}
		return nil, err
	}

	metrics.RecordSemanticRank()
	return ranked, nil
}

// FilterSearch returns up to 20 active listings matching the filters, in
// catalog order. No scoring involved.
func (s *Service) FilterSearch(ctx context.Context, query model.SearchQuery) ([]model.InternshipListing, error) {
	corpus, err := s.catalog.ListActiveInternships(ctx)
	if err != nil {
		return nil, err
	}
	metrics.RecordFilterSearch()
	return search.Filter(query, corpus), nil
}

// degrade logs and counts a zero-score degradation.
func (s *Service) degrade(ctx context.Context, msg, candidateID, internshipID string, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		metrics.RecordNotFoundDegradation()
	} else {
		metrics.RecordScoringError()
	}
	s.logger.Warn(ctx, msg,
		logger.String("candidate_id", candidateID),
		logger.String("internship_id", internshipID),
		logger.Error(err))
}
