// Package textnorm canonicalizes free text for keyword overlap and
// vectorization. Both sides of any similarity comparison must pass through
// the same pipeline.
package textnorm

import (
	"strings"
	"unicode"
)

// Normalize lowercases, strips non-alphabetic characters, drops stopwords,
// lemmatizes the remaining tokens and rejoins them with single spaces.
// Pure and deterministic; empty input yields an empty string.
func Normalize(text string) string {
	tokens := Tokens(text)
	return strings.Join(tokens, " ")
}

// Tokens returns the canonical token sequence for text.
func Tokens(text string) []string {
	if text == "" {
		return nil
	}
	cleaned := stripNonAlpha(strings.ToLower(text))
	fields := strings.Fields(cleaned)
	out := make([]string, 0, len(fields))
	for _, w := range fields {
		if stopwords[w] {
			continue
		}
		out = append(out, Lemmatize(w))
	}
	return out
}

// CandidateText builds the candidate composite document: qualification,
// skills, department, comma-joined then normalized.
func CandidateText(qualification string, skills []string, department string) string {
	parts := make([]string, 0, len(skills)+2)
	parts = append(parts, qualification)
	parts = append(parts, skills...)
	parts = append(parts, department)
	return Normalize(strings.Join(parts, ", "))
}

// ListingText builds the internship composite document: qualification,
// required skills, department, comma-joined then normalized.
func ListingText(qualification string, requiredSkills []string, department string) string {
	parts := make([]string, 0, len(requiredSkills)+2)
	parts = append(parts, qualification)
	parts = append(parts, requiredSkills...)
	parts = append(parts, department)
	return Normalize(strings.Join(parts, ", "))
}

// stripNonAlpha deletes every character outside [a-z], keeping whitespace as
// the token separator. Deleting rather than space-replacing keeps compound
// skill names like "node.js" or "ai/ml" a single token. Input is already
// lowercased.
func stripNonAlpha(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(r)
		}
	}
	return b.String()
}
