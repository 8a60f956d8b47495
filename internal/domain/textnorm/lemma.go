package textnorm

import "strings"

// irregularNouns maps common irregular plurals to their singular form.
var irregularNouns = map[string]string{
	"men":      "man",
	"women":    "woman",
	"children": "child",
	"people":   "person",
	"feet":     "foot",
	"teeth":    "tooth",
	"mice":     "mouse",
	"geese":    "goose",
	"data":     "datum",
	"analyses": "analysis",
	"theses":   "thesis",
	"criteria": "criterion",
}

// Lemmatize reduces a token to its base noun form using suffix rules.
// The token must already be lowercase.
func Lemmatize(word string) string {
	if len(word) <= 3 {
		return word
	}
	if base, ok := irregularNouns[word]; ok {
		return base
	}

	switch {
	case strings.HasSuffix(word, "sses"):
		return word[:len(word)-2]
	case strings.HasSuffix(word, "ies") && len(word) > 4:
		return word[:len(word)-3] + "y"
	case strings.HasSuffix(word, "xes"), strings.HasSuffix(word, "zes"),
		strings.HasSuffix(word, "ches"), strings.HasSuffix(word, "shes"):
		return word[:len(word)-2]
	case strings.HasSuffix(word, "ss"), strings.HasSuffix(word, "us"),
		strings.HasSuffix(word, "is"):
		return word
	case strings.HasSuffix(word, "s"):
		return word[:len(word)-1]
	}
	return word
}
