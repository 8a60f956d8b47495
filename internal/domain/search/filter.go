// Package search implements the unranked filter path over the internship
// corpus: substring predicates only, no scoring, no embeddings.
package search

import (
	"strings"

	"github.com/okian/internmatch/internal/domain/model"
)

// maxResults caps the number of returned listings.
const maxResults = 20

// Filter returns up to 20 listings, in corpus order, matching all provided
// predicates: location substring AND department substring AND, when skills
// are requested, any requested skill appearing as a substring of the
// listing's required-skills field. Empty filters match everything.
func Filter(query model.SearchQuery, corpus []model.InternshipListing) []model.InternshipListing {
	location := strings.ToLower(strings.TrimSpace(query.Location))
	department := strings.ToLower(strings.TrimSpace(query.Department))
	skills := make([]string, 0, len(query.Skills))
	for _, s := range query.Skills {
		if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
			skills = append(skills, s)
		}
	}

	var out []model.InternshipListing
	for _, listing := range corpus {
		if len(out) == maxResults {
			break
		}
		if location != "" && !strings.Contains(strings.ToLower(listing.Location), location) {
			continue
		}
		if department != "" && !strings.Contains(strings.ToLower(listing.Department), department) {
			continue
		}
		if len(skills) > 0 && !anySkillPresent(skills, listing.RequiredSkills) {
			continue
		}
		out = append(out, listing)
	}
	return out
}

// anySkillPresent reports whether any requested skill appears as a substring
// of the listing's joined required-skills field.
func anySkillPresent(skills []string, requiredSkills []string) bool {
	field := strings.ToLower(strings.Join(requiredSkills, ", "))
	for _, s := range skills {
		if strings.Contains(field, s) {
			return true
		}
	}
	return false
}
