package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/okian/internmatch/internal/adapters/embedding"
	"github.com/okian/internmatch/internal/adapters/http/api"
	"github.com/okian/internmatch/internal/adapters/repository"
	app "github.com/okian/internmatch/internal/app"
	"github.com/okian/internmatch/internal/config"
	"github.com/okian/internmatch/internal/domain/scoring"
	"github.com/okian/internmatch/pkg/logger"
	"github.com/okian/internmatch/pkg/metrics"
)

// HTTP server timeout constants.
const (
	readTimeout           = 10 * time.Second
	writeTimeout          = 30 * time.Second
	idleTimeout           = 60 * time.Second
	readHeaderTimeout     = 5 * time.Second
	shutdownTimeout       = 30 * time.Second
	systemMetricsInterval = 10 * time.Second
)

func main() {
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env).
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	// Apply configured log level (fallback to info on invalid input).
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	store, cleanup, err := openStore(ctx, cfg, log)
	if err != nil {
		log.Error(ctx, "failed to open store", logger.Error(err))
		return
	}
	defer cleanup()

	embedder, err := embedding.Shared(
		embedding.Kind(cfg.Embedder),
		cfg.EmbedEndpoint,
		embedding.WithTimeout(time.Duration(cfg.EmbedTimeoutMS)*time.Millisecond),
	)
	if err != nil {
		log.Error(ctx, "failed to build embedder", logger.Error(err))
		return
	}

	svc := app.New(
		app.WithLogger(log),
		app.WithProfileStore(store),
		app.WithCatalogStore(store),
		app.WithEmbedder(embedder),
		app.WithNeighborCount(cfg.NeighborCount),
		app.WithScoreWorkers(cfg.ScoreWorkers),
		app.WithScoringOptions(scoring.WithHighDemandSkills(cfg.HighDemandSkills)),
	)

	go startSystemMetricsUpdater(ctx)

	mux := http.NewServeMux()
	apiServer := api.NewServer(svc)
	apiServer.Register(ctx, mux)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		log.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			os.Stderr.WriteString("HTTP server failed: " + err.Error() + "\n")
			return
		}
	}()

	<-ctx.Done()
	log.Info(ctx, "shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "server shutdown failed", logger.Error(err))
	}

	log.Info(ctx, "server stopped")
}

// openStore builds the profile/catalog store from configuration: sqlite when
// db_path is set, otherwise an in-memory store. A configured dataset file is
// seeded into either; the in-memory store falls back to the sample corpus.
func openStore(ctx context.Context, cfg *config.Config, log logger.Logger) (repository.Store, func(), error) {
	var dataset *repository.Dataset
	if cfg.DatasetPath != "" {
		ds, err := repository.LoadDataset(cfg.DatasetPath)
		if err != nil {
			return nil, nil, err
		}
		dataset = ds
		log.Info(ctx, "loaded dataset",
			logger.String("path", cfg.DatasetPath),
			logger.Int("profiles", len(ds.Profiles)),
			logger.Int("internships", len(ds.Internships)))
	}

	if cfg.DBPath != "" {
		store, err := repository.OpenSQLite(cfg.DBPath)
		if err != nil {
			return nil, nil, err
		}
		if dataset != nil {
			if err := store.Seed(ctx, dataset); err != nil {
				_ = store.Close()
				return nil, nil, err
			}
		}
		return store, func() { _ = store.Close() }, nil
	}

	store := repository.NewMemStore()
	if dataset == nil {
		dataset = repository.SampleDataset()
	}
	store.Seed(dataset)
	metrics.UpdateProfileCount(store.ProfileCount())
	metrics.UpdateCorpusSize(store.ListingCount())
	return store, func() {}, nil
}

// startSystemMetricsUpdater periodically refreshes system-level gauges.
func startSystemMetricsUpdater(ctx context.Context) {
	ticker := time.NewTicker(systemMetricsInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			var m runtime.MemStats
			runtime.ReadMemStats(&m)
			metrics.UpdateSystemMemoryUsage(m.Alloc)
			metrics.UpdateSystemGoroutineCount(runtime.NumGoroutine())
		}
	}
}
