// Package scoring implements the deterministic, explainable multi-factor
// match score between a candidate and an internship listing.
package scoring

import (
	"fmt"
	"math"
	"strings"

	"github.com/okian/internmatch/internal/domain/model"
)

// Weights holds the contribution of each scoring component. The defaults sum
// to 100; the high-demand bonus is added on top before clamping.
type Weights struct {
	Skills       float64 // weight of the required-skill overlap ratio
	Interests    float64 // weight of the interest overlap ratio
	Location     float64 // awarded on an exact or substring location match
	RemoteCredit float64 // awarded instead of Location for remote listings
	Education    float64 // awarded when university and major are both set
	University   float64 // awarded when only the university is set
	Completeness float64 // awarded for a complete profile
}

// DefaultWeights returns the standard component weights.
func DefaultWeights() Weights {
	return Weights{
		Skills:       40,
		Interests:    25,
		Location:     15,
		RemoteCredit: 10,
		Education:    10,
		University:   5,
		Completeness: 10,
	}
}

// Scoring constants independent of the component weights.
const (
	maxScore = 100

	// Credits applied when a listing declares no requirements at all.
	noSkillsRequiredCredit    = 20
	noInterestsRequiredCredit = 12.5

	// High-demand skill bonus: per-skill points and overall cap.
	highDemandPerSkill = 2
	highDemandCap      = 10

	// Verdict thresholds.
	excellentThreshold = 90
	greatThreshold     = 80
	goodThreshold      = 70
	moderateThreshold  = 50
)

// defaultHighDemandSkills is the fixed list of skill names that earn a bonus
// when present on a candidate.
var defaultHighDemandSkills = []string{
	"javascript", "python", "react", "machine learning", "data analysis",
	"node.js", "sql", "java", "c++", "ui/ux", "marketing", "project management",
}

// unscorableReason is the single reason attached when an entity cannot be
// resolved; scoring degrades instead of failing the batch.
const unscorableReason = "Unable to calculate match score"

// Option applies a configuration option to the Scorer.
type Option func(*Scorer)

// WithWeights overrides the component weights.
func WithWeights(w Weights) Option {
	return func(s *Scorer) {
		s.weights = w
	}
}

// WithHighDemandSkills overrides the high-demand skill list.
func WithHighDemandSkills(skills []string) Option {
	return func(s *Scorer) {
		if len(skills) > 0 {
			s.highDemand = lowerAll(skills)
		}
	}
}

// Scorer computes rule-based match scores. It is stateless after
// construction and safe for concurrent use.
type Scorer struct {
	weights    Weights
	highDemand []string
}

// New creates a Scorer with configuration options.
func New(opts ...Option) *Scorer {
	s := &Scorer{
		weights:    DefaultWeights(),
		highDemand: defaultHighDemandSkills,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Score combines skill overlap, interest overlap, location fit, education
// signal and profile completeness into a single score in [0,100], plus
// human-readable reasons. Deterministic: identical inputs yield identical
// results. It never fails; missing fields degrade the score instead.
func (s *Scorer) Score(candidate model.CandidateProfile, listing model.InternshipListing) model.MatchResult {
	var total float64
	var reasons []string

	candidateSkills := lowerAll(candidate.SkillNames())
	requiredSkills := lowerAll(listing.RequiredSkills)

	// 1. Skill overlap.
	if len(requiredSkills) > 0 {
		matched := distinctMatches(candidateSkills, requiredSkills)
		ratio := float64(matched) / float64(len(requiredSkills))
		total += ratio * s.weights.Skills
		if matched > 0 {
			reasons = append(reasons, fmt.Sprintf("You have %d out of %d required skills", matched, len(requiredSkills)))
		} else {
			reasons = append(reasons, "Skills gap: Consider developing required skills")
		}
	} else {
		total += noSkillsRequiredCredit
		reasons = append(reasons, "No specific skills required")
	}

	// 2. Interest overlap.
	candidateInterests := lowerAll(candidate.Interests)
	listingInterests := lowerAll(listing.Interests)
	if len(listingInterests) > 0 {
		matched := distinctMatches(candidateInterests, listingInterests)
		ratio := float64(matched) / float64(len(listingInterests))
		total += ratio * s.weights.Interests
		if matched > 0 {
			reasons = append(reasons, fmt.Sprintf("Your interests align with %d of the internship's focus areas", matched))
		}
	} else {
		total += noInterestsRequiredCredit
		reasons = append(reasons, "No specific interest requirements")
	}

	// 3. Location fit.
	switch {
	case candidate.Location != "" && listing.Location != "":
		candidateLoc := strings.ToLower(candidate.Location)
		listingLoc := strings.ToLower(listing.Location)
		switch {
		case candidateLoc == listingLoc ||
			strings.Contains(listingLoc, candidateLoc) ||
			strings.Contains(candidateLoc, listingLoc):
			total += s.weights.Location
			reasons = append(reasons, "Location matches your preference")
		case listing.Remote:
			total += s.weights.RemoteCredit
			reasons = append(reasons, "Remote opportunity available")
		default:
			reasons = append(reasons, "Location may require relocation")
		}
	case listing.Remote:
		total += s.weights.RemoteCredit
		reasons = append(reasons, "Remote opportunity available")
	default:
		reasons = append(reasons, "Location preference not specified")
	}

	// 4. Education signal.
	switch {
	case candidate.University != "" && candidate.Major != "":
		total += s.weights.Education
		reasons = append(reasons, "Educational background is suitable")
	case candidate.University != "":
		total += s.weights.University
		reasons = append(reasons, "University background noted")
	}

	// 5. Profile completeness.
	if candidate.ProfileComplete {
		total += s.weights.Completeness
		reasons = append(reasons, "Complete profile gives you an advantage")
	} else {
		reasons = append(reasons, "Complete your profile for better matches")
	}

	// High-demand skill bonus, applied after the weighted sum.
	if count := s.highDemandCount(candidateSkills); count > 0 {
		total += math.Min(float64(count)*highDemandPerSkill, highDemandCap)
		reasons = append(reasons, fmt.Sprintf("You have %d high-demand skills", count))
	}

	score := math.Min(math.Round(total), maxScore)
	score = math.Max(score, 0)

	reasons = append(reasons, verdict(score))

	return model.MatchResult{
		InternshipID: listing.ID,
		Score:        score,
		Reasons:      reasons,
	}
}

// Unscorable returns the degraded zero-score result used when the candidate
// or the listing cannot be resolved.
func Unscorable(internshipID string) model.MatchResult {
	return model.MatchResult{
		InternshipID: internshipID,
		Score:        0,
		Reasons:      []string{unscorableReason},
	}
}

// distinctMatches counts candidate terms that fuzzily match at least one
// required term. Each candidate term is counted once.
func distinctMatches(candidateTerms, requiredTerms []string) int {
	matched := make(map[string]bool)
	for _, term := range candidateTerms {
		if matchesAny(term, requiredTerms) {
			matched[term] = true
		}
	}
	return len(matched)
}

// highDemandCount counts candidate skills containing a high-demand skill.
func (s *Scorer) highDemandCount(candidateSkills []string) int {
	count := 0
	for _, skill := range candidateSkills {
		for _, hds := range s.highDemand {
			if strings.Contains(skill, hds) {
				count++
				break
			}
		}
	}
	return count
}

// verdict returns the qualitative assessment for a final score.
func verdict(score float64) string {
	switch {
	case score >= excellentThreshold:
		return "Excellent match!"
	case score >= greatThreshold:
		return "Great match!"
	case score >= goodThreshold:
		return "Good match with room for improvement"
	case score >= moderateThreshold:
		return "Moderate match - consider skill development"
	default:
		return "Low match - focus on required skills and interests"
	}
}
