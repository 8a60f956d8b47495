package embedding

import "errors"

// Sentinel kinds for embedding errors.
var (
	// ErrBackendUnavailable reports that the embedding backend cannot serve
	// vectors. Callers must fall back to the rule-based scoring path; the
	// adapter never substitutes zero vectors.
	ErrBackendUnavailable = errors.New("embedding backend unavailable")
)
