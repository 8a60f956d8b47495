package embedding

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/okian/internmatch/pkg/metrics"
)

// Default remote backend configuration constants.
const (
	defaultRemoteTimeout = 10 * time.Second
)

// RemoteOption applies a configuration option to the Remote embedder.
type RemoteOption func(*Remote)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) RemoteOption {
	return func(r *Remote) {
		if client != nil {
			r.client = client
		}
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) RemoteOption {
	return func(r *Remote) {
		if timeout > 0 {
			r.client.Timeout = timeout
		}
	}
}

// Remote calls an external sentence-embedding model over HTTP.
// Request:  POST endpoint {"documents": [...]}
// Response: {"vectors": [[...], ...]} with one vector per document.
type Remote struct {
	endpoint string
	client   *http.Client
}

// NewRemote creates a remote embedder for the given endpoint.
func NewRemote(endpoint string, opts ...RemoteOption) *Remote {
	r := &Remote{
		endpoint: endpoint,
		client:   &http.Client{Timeout: defaultRemoteTimeout},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type embedRequest struct {
	Documents []string `json:"documents"`
}

type embedResponse struct {
	Vectors [][]float64 `json:"vectors"`
}

// Embed posts the documents to the backend. Any transport failure, non-200
// status or malformed payload surfaces as ErrBackendUnavailable so callers
// can fall back to the rule-based path.
func (r *Remote) Embed(ctx context.Context, documents []string) ([][]float64, error) {
	start := time.Now()
	defer func() {
		metrics.RecordEmbeddingLatency(float64(time.Since(start).Milliseconds()))
	}()

	body, err := json.Marshal(embedRequest{Documents: documents})
	if err != nil {
		return nil, fmt.Errorf("encode embed request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build embed request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: backend returned status %d", ErrBackendUnavailable, resp.StatusCode)
	}

	var decoded embedResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrBackendUnavailable, err)
	}
	if err := validateVectors(decoded.Vectors, len(documents)); err != nil {
		return nil, err
	}
	return decoded.Vectors, nil
}

// validateVectors rejects responses that do not hold one equal-length vector
// per document. Returning zero or ragged vectors would silently corrupt
// downstream distances.
func validateVectors(vectors [][]float64, want int) error {
	if len(vectors) != want {
		return fmt.Errorf("%w: got %d vectors for %d documents", ErrBackendUnavailable, len(vectors), want)
	}
	if want == 0 {
		return nil
	}
	dim := len(vectors[0])
	if dim == 0 {
		return fmt.Errorf("%w: backend returned empty vectors", ErrBackendUnavailable)
	}
	for i, v := range vectors {
		if len(v) != dim {
			return fmt.Errorf("%w: vector %d has length %d, want %d", ErrBackendUnavailable, i, len(v), dim)
		}
	}
	return nil
}
