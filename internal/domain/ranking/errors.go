package ranking

import "errors"

// Sentinel kinds for ranking errors.
var (
	// ErrInvalidQuery reports that required candidate fields are missing.
	// Downstream scoring would be meaningless, so the request is rejected
	// rather than defaulted.
	ErrInvalidQuery = errors.New("invalid ranking query")
)
