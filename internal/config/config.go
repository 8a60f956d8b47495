// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults, Load(ctx) to layer sources.
// - External errors must be wrapped via this package's error helpers.
package config

import "runtime"

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DatasetPath points at a YAML corpus file used to seed the stores.
	// Empty means the built-in sample corpus.
	DatasetPath string `koanf:"dataset_path"`

	// DBPath points at a sqlite database backing the stores. Empty means
	// the in-memory store.
	DBPath string `koanf:"db_path"`

	// Embedder selects the vectorization backend: "tfidf" or "remote".
	Embedder string `koanf:"embedder"`

	// EmbedEndpoint is the HTTP endpoint of the remote embedding model.
	// Required when Embedder is "remote".
	EmbedEndpoint string `koanf:"embed_endpoint"`

	// EmbedTimeoutMS bounds a single remote embedding call.
	EmbedTimeoutMS int `koanf:"embed_timeout_ms"`

	// NeighborCount is how many nearest neighbors the semantic ranker
	// fetches before applying its fixed result cutoff.
	NeighborCount int `koanf:"neighbor_count"`

	// ScoreWorkers bounds the parallelism of batch scoring.
	ScoreWorkers int `koanf:"score_workers"`

	// HighDemandSkills overrides the skill names that earn a scoring bonus.
	HighDemandSkills []string `koanf:"high_demand_skills"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:       "info",
		Addr:           ":9080",
		Embedder:       "tfidf",
		EmbedTimeoutMS: 10_000,
		NeighborCount:  10,
		ScoreWorkers:   runtime.NumCPU(),
	}
}
