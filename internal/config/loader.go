package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if INTERNMATCH_CONFIG is set
//  3. env (prefix INTERNMATCH_)
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("INTERNMATCH_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
		}
	}

	// Environment variables: INTERNMATCH_ADDR, INTERNMATCH_DB_PATH, ...
	// Map env keys like INTERNMATCH_DB_PATH -> db_path (flat keys).
	envProvider := env.Provider("INTERNMATCH_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "internmatch_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Addr == "" {
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	switch cfg.Embedder {
	case "", "tfidf":
	case "remote":
		if cfg.EmbedEndpoint == "" {
			return fmt.Errorf("%w: remote embedder requires embed_endpoint", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown embedder %q", ErrInvalidConfig, cfg.Embedder)
	}
	return nil
}
