// Package ranking blends embedding similarity with discrete skill, location
// and department bonuses into a final ranked order.
package ranking

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/okian/internmatch/internal/adapters/embedding"
	"github.com/okian/internmatch/internal/domain/index"
	"github.com/okian/internmatch/internal/domain/model"
	"github.com/okian/internmatch/internal/domain/textnorm"
)

// Ranking policy constants.
const (
	// defaultNeighborCount is the number of nearest corpus entries fetched
	// before bonuses are applied.
	defaultNeighborCount = 10

	// resultCutoff is the fixed size of the returned ranking. It is a fixed
	// policy, independent of the requested neighbor count.
	resultCutoff = 5

	// Discrete bonuses added to the raw similarity in [0,1]. The final score
	// is deliberately not renormalized and can exceed 1.0.
	skillBonusWeight = 0.3
	locationBonus    = 0.2
	departmentBonus  = 0.1
)

// Option applies a configuration option to the Ranker.
type Option func(*Ranker)

// WithNeighborCount sets how many nearest neighbors are fetched before the
// fixed cutoff is applied.
func WithNeighborCount(k int) Option {
	return func(r *Ranker) {
		if k > 0 {
			r.neighborCount = k
		}
	}
}

// Ranker runs the semantic recommendation path. Stateless between calls; the
// nearest-neighbor index is rebuilt per request from the current corpus.
type Ranker struct {
	embedder      embedding.Embedder
	neighborCount int
}

// New creates a Ranker backed by the given embedder.
func New(embedder embedding.Embedder, opts ...Option) *Ranker {
	r := &Ranker{
		embedder:      embedder,
		neighborCount: defaultNeighborCount,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Rank embeds the candidate composite text together with the corpus, finds
// the nearest listings by cosine distance and re-orders them by similarity
// plus skill/location/department bonuses. At most five results are returned
// regardless of the neighbor count. Embedding failures propagate; there is
// no safe numeric fallback for a missing vector.
func (r *Ranker) Rank(ctx context.Context, query model.RankQuery, corpus []model.InternshipListing) ([]model.RankedRecommendation, error) {
	if err := validate(query); err != nil {
		return nil, err
	}
	if len(corpus) == 0 {
		return nil, nil
	}

	candidateSkills := trimLowerAll(query.Skills)

	// Corpus documents and the candidate document are embedded in one call
	// so TF-IDF backends fit a shared vocabulary.
	docs := make([]string, len(corpus)+1)
	for i, listing := range corpus {
		docs[i] = textnorm.ListingText(listing.Qualification, listing.RequiredSkills, listing.Department)
	}
	docs[len(corpus)] = textnorm.CandidateText(query.Qualification, candidateSkills, query.Department)

	vectors, err := r.embedder.Embed(ctx, docs)
	if err != nil {
		return nil, fmt.Errorf("embed corpus: %w", err)
	}

	corpusVectors := vectors[:len(corpus)]
	queryVector := vectors[len(corpus)]

	neighbors := index.Nearest(queryVector, corpusVectors, r.neighborCount)

	ranked := make([]model.RankedRecommendation, 0, len(neighbors))
	for _, nb := range neighbors {
		listing := corpus[nb.Index]
		similarity := 1 - nb.Distance
		matches := exactSkillMatches(candidateSkills, listing.RequiredSkills)

		final := similarity
		final += float64(matches) / float64(max(len(candidateSkills), 1)) * skillBonusWeight
		if equalFold(query.Location, listing.Location) {
			final += locationBonus
		}
		if equalFold(query.Department, listing.Department) {
			final += departmentBonus
		}

		ranked = append(ranked, model.RankedRecommendation{
			InternshipID: listing.ID,
			Similarity:   similarity,
			SkillMatches: matches,
			FinalScore:   final,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].FinalScore != ranked[j].FinalScore {
			return ranked[i].FinalScore > ranked[j].FinalScore
		}
		return ranked[i].SkillMatches > ranked[j].SkillMatches
	})

	if len(ranked) > resultCutoff {
		ranked = ranked[:resultCutoff]
	}
	for i := range ranked {
		ranked[i].RankPosition = i + 1
	}
	return ranked, nil
}

// validate rejects queries missing the fields scoring depends on. Location
// is optional; it only forfeits the location bonus.
func validate(query model.RankQuery) error {
	switch {
	case strings.TrimSpace(query.Qualification) == "":
		return fmt.Errorf("%w: missing qualification", ErrInvalidQuery)
	case strings.TrimSpace(query.Department) == "":
		return fmt.Errorf("%w: missing department", ErrInvalidQuery)
	case len(trimLowerAll(query.Skills)) == 0:
		return fmt.Errorf("%w: missing skills", ErrInvalidQuery)
	}
	return nil
}

// exactSkillMatches counts candidate skills present in the listing's
// required skills by exact case-insensitive token equality. This is
// intentionally stricter than the fuzzy rule used by the rule-based scorer;
// the two paths are distinct strategies, not variants of one rule.
func exactSkillMatches(candidateSkills, requiredSkills []string) int {
	required := make(map[string]bool, len(requiredSkills))
	for _, s := range trimLowerAll(requiredSkills) {
		required[s] = true
	}
	count := 0
	for _, s := range candidateSkills {
		if required[s] {
			count++
		}
	}
	return count
}

// trimLowerAll lowercases and trims terms, dropping empties.
func trimLowerAll(terms []string) []string {
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

// equalFold compares trimmed strings case-insensitively; two empty strings
// do not count as a match.
func equalFold(a, b string) bool {
	a = strings.TrimSpace(a)
	b = strings.TrimSpace(b)
	if a == "" || b == "" {
		return false
	}
	return strings.EqualFold(a, b)
}
