package config_test

import (
	"context"
	"os"
	"runtime"
	"testing"

	"github.com/okian/internmatch/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with defaults only", func() {
			clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
				convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
				convey.So(cfg.Embedder, convey.ShouldEqual, "tfidf")
				convey.So(cfg.EmbedTimeoutMS, convey.ShouldEqual, 10_000)
				convey.So(cfg.NeighborCount, convey.ShouldEqual, 10)
				convey.So(cfg.ScoreWorkers, convey.ShouldEqual, runtime.NumCPU())
				convey.So(cfg.DatasetPath, convey.ShouldEqual, "")
				convey.So(cfg.DBPath, convey.ShouldEqual, "")
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("INTERNMATCH_ADDR", ":8080")
			_ = os.Setenv("INTERNMATCH_LOG_LEVEL", "debug")
			_ = os.Setenv("INTERNMATCH_NEIGHBOR_COUNT", "25")
			_ = os.Setenv("INTERNMATCH_SCORE_WORKERS", "4")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
				convey.So(cfg.NeighborCount, convey.ShouldEqual, 25)
				convey.So(cfg.ScoreWorkers, convey.ShouldEqual, 4)
			})
		})

		convey.Convey("When loading config with YAML file", func() {
			yamlContent := `
addr: ":9090"
log_level: warn
embedder: remote
embed_endpoint: http://embedder:8000/embed
embed_timeout_ms: 2500
neighbor_count: 15
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("INTERNMATCH_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load from YAML file", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")
				convey.So(cfg.LogLevel, convey.ShouldEqual, "warn")
				convey.So(cfg.Embedder, convey.ShouldEqual, "remote")
				convey.So(cfg.EmbedEndpoint, convey.ShouldEqual, "http://embedder:8000/embed")
				convey.So(cfg.EmbedTimeoutMS, convey.ShouldEqual, 2500)
				convey.So(cfg.NeighborCount, convey.ShouldEqual, 15)
			})
		})

		convey.Convey("When loading config with both file and environment variables", func() {
			yamlContent := `
addr: ":9090"
neighbor_count: 15
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("INTERNMATCH_CONFIG", tmpFile)
			_ = os.Setenv("INTERNMATCH_ADDR", ":8080")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then environment variables should override file values", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.NeighborCount, convey.ShouldEqual, 15)
				convey.So(cfg.Embedder, convey.ShouldEqual, "tfidf")
			})
		})

		convey.Convey("When loading config with non-existent file", func() {
			_ = os.Setenv("INTERNMATCH_CONFIG", "/non/existent/file.yaml")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with empty addr", func() {
			_ = os.Setenv("INTERNMATCH_ADDR", "")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(err.Error(), convey.ShouldContainSubstring, "addr must not be empty")
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When selecting an unknown embedder", func() {
			_ = os.Setenv("INTERNMATCH_EMBEDDER", "word2vec")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(err.Error(), convey.ShouldContainSubstring, "unknown embedder")
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When selecting the remote embedder without an endpoint", func() {
			_ = os.Setenv("INTERNMATCH_EMBEDDER", "remote")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(err.Error(), convey.ShouldContainSubstring, "embed_endpoint")
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When selecting the remote embedder with an endpoint", func() {
			_ = os.Setenv("INTERNMATCH_EMBEDDER", "remote")
			_ = os.Setenv("INTERNMATCH_EMBED_ENDPOINT", "http://localhost:8000/embed")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Embedder, convey.ShouldEqual, "remote")
				convey.So(cfg.EmbedEndpoint, convey.ShouldEqual, "http://localhost:8000/embed")
			})
		})
	})
}

// Helper functions.

func clearConfigEnvVars() {
	envVars := []string{
		"INTERNMATCH_CONFIG",
		"INTERNMATCH_ADDR",
		"INTERNMATCH_LOG_LEVEL",
		"INTERNMATCH_EMBEDDER",
		"INTERNMATCH_EMBED_ENDPOINT",
		"INTERNMATCH_EMBED_TIMEOUT_MS",
		"INTERNMATCH_NEIGHBOR_COUNT",
		"INTERNMATCH_SCORE_WORKERS",
	}
	for _, envVar := range envVars {
		_ = os.Unsetenv(envVar)
	}
}

func createTempConfigFile(content string) string {
	tmpFile, err := os.CreateTemp("", "internmatch-config-*.yaml")
	if err != nil {
		panic(err)
	}

	if _, err := tmpFile.WriteString(content); err != nil {
		panic(err)
	}

	if err := tmpFile.Close(); err != nil {
		panic(err)
	}

	return tmpFile.Name()
}
