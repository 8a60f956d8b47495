// Package embedding adapts pluggable text-vectorization backends behind a
// stable interface: N documents in, N fixed-length vectors out, same order.
package embedding

import (
	"context"
	"fmt"
	"sync"
)

// Embedder turns text documents into fixed-length numeric vectors.
// Implementations must be deterministic for a fixed model or vocabulary and
// must return vectors of equal length within one call.
type Embedder interface {
	Embed(ctx context.Context, documents []string) ([][]float64, error)
}

// Kind selects an embedding backend implementation.
type Kind string

const (
	// KindTFIDF fits a TF-IDF vectorizer over the documents of each call.
	KindTFIDF Kind = "tfidf"
	// KindRemote delegates to an external embedding model over HTTP.
	KindRemote Kind = "remote"
)

// New builds an embedder of the given kind. endpoint is only used by the
// remote backend.
func New(kind Kind, endpoint string, opts ...RemoteOption) (Embedder, error) {
	switch kind {
	case KindTFIDF, "":
		return NewTFIDF(), nil
	case KindRemote:
		return NewRemote(endpoint, opts...), nil
	default:
		return nil, fmt.Errorf("unknown embedder kind: %q", kind)
	}
}

var (
	sharedMu   sync.Mutex
	sharedOnce map[Kind]Embedder
)

// Shared returns a process-wide embedder for the given kind, building it at
// most once. Concurrent first requests will not construct the backend twice.
func Shared(kind Kind, endpoint string, opts ...RemoteOption) (Embedder, error) {
	sharedMu.Lock()
	defer sharedMu.Unlock()
	if sharedOnce == nil {
		sharedOnce = make(map[Kind]Embedder)
	}
	if e, ok := sharedOnce[kind]; ok {
		return e, nil
	}
	e, err := New(kind, endpoint, opts...)
	if err != nil {
		return nil, err
	}
	sharedOnce[kind] = e
	return e, nil
}
