// Package model contains domain models passed between layers.
package model

import "time"

// SkillRating is a candidate skill with a proficiency level.
type SkillRating struct {
	Name  string `json:"name" yaml:"name"`
	Level int    `json:"level,omitempty" yaml:"level,omitempty"`
}

// CandidateProfile holds the candidate attributes the matching engine reads.
// Owned by the profile subsystem; read-only here.
type CandidateProfile struct {
	ID              string        `json:"id" yaml:"id"`
	Skills          []SkillRating `json:"skills" yaml:"skills"`
	Interests       []string      `json:"interests" yaml:"interests"`
	Location        string        `json:"location" yaml:"location"`
	University      string        `json:"university" yaml:"university"`
	Major           string        `json:"major" yaml:"major"`
	Qualification   string        `json:"qualification" yaml:"qualification"`
	Department      string        `json:"department" yaml:"department"`
	ProfileComplete bool          `json:"profile_complete" yaml:"profile_complete"`
}

// SkillNames returns the candidate's skill names in declaration order.
func (c CandidateProfile) SkillNames() []string {
	names := make([]string, len(c.Skills))
	for i, s := range c.Skills {
		names[i] = s.Name
	}
	return names
}

// InternshipListing holds the internship attributes the matching engine reads.
// Owned by the catalog subsystem; read-only here.
type InternshipListing struct {
	ID             string    `json:"id" yaml:"id"`
	Name           string    `json:"name" yaml:"name"`
	Company        string    `json:"company,omitempty" yaml:"company,omitempty"`
	RequiredSkills []string  `json:"required_skills" yaml:"required_skills"`
	Interests      []string  `json:"interests" yaml:"interests"`
	Location       string    `json:"location" yaml:"location"`
	Department     string    `json:"department" yaml:"department"`
	Qualification  string    `json:"qualification" yaml:"qualification"`
	Remote         bool      `json:"remote" yaml:"remote"`
	PostedDate     time.Time `json:"posted_date,omitempty" yaml:"posted_date,omitempty"`
	ApplicantCount int       `json:"applicant_count,omitempty" yaml:"applicant_count,omitempty"`
	Active         bool      `json:"active" yaml:"active"`
}

// MatchResult is the output of the rule-based scorer. Score is clamped to
// [0,100] and Reasons is never empty.
type MatchResult struct {
	InternshipID string   `json:"internship_id"`
	Score        float64  `json:"score"`
	Reasons      []string `json:"reasons"`
}

// RankedRecommendation is the output of the embedding-based ranker.
// RankPosition is 1-based and strictly increasing with decreasing FinalScore.
type RankedRecommendation struct {
	InternshipID string  `json:"internship_id"`
	Similarity   float64 `json:"similarity"`
	SkillMatches int     `json:"skill_matches"`
	FinalScore   float64 `json:"final_score"`
	RankPosition int     `json:"rank_position"`
}

// RankQuery carries the free-text candidate fields used for semantic ranking.
type RankQuery struct {
	Qualification string   `json:"qualification"`
	Department    string   `json:"department"`
	Location      string   `json:"location"`
	Skills        []string `json:"skills"`
}

// SearchQuery carries the optional filters for the unranked search path.
type SearchQuery struct {
	Location   string   `json:"location"`
	Department string   `json:"department"`
	Skills     []string `json:"skills"`
}
