package scoring

import "strings"

// TermsMatch reports whether two lowercased terms are considered the same
// skill or interest: one contains the other as a substring, or any
// whitespace-delimited word of one appears in the other. This is the loose
// rule used by the rule-based scorer; the embedding ranker intentionally
// uses strict token equality instead.
func TermsMatch(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	if strings.Contains(b, a) || strings.Contains(a, b) {
		return true
	}
	for _, word := range strings.Fields(a) {
		if strings.Contains(b, word) {
			return true
		}
	}
	for _, word := range strings.Fields(b) {
		if strings.Contains(a, word) {
			return true
		}
	}
	return false
}

// matchesAny reports whether term fuzzily matches any of candidates.
func matchesAny(term string, candidates []string) bool {
	for _, c := range candidates {
		if TermsMatch(term, c) {
			return true
		}
	}
	return false
}

// lowerAll returns a lowercased copy of terms.
func lowerAll(terms []string) []string {
	out := make([]string, len(terms))
	for i, t := range terms {
		out[i] = strings.ToLower(t)
	}
	return out
}
