package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/okian/internmatch/internal/adapters/http/api"
	app "github.com/okian/internmatch/internal/app"
	"github.com/okian/internmatch/internal/config"
	"github.com/okian/internmatch/pkg/logger"
	"github.com/smartystreets/goconvey/convey"
)

func TestMainFunction(t *testing.T) {
	convey.Convey("Given the main application", t, func() {
		convey.Convey("When testing configuration loading", func() {
			_ = os.Setenv("INTERNMATCH_ADDR", ":8080")
			_ = os.Setenv("INTERNMATCH_NEIGHBOR_COUNT", "7")
			_ = os.Setenv("INTERNMATCH_SCORE_WORKERS", "4")
			defer func() {
				_ = os.Unsetenv("INTERNMATCH_ADDR")
				_ = os.Unsetenv("INTERNMATCH_NEIGHBOR_COUNT")
				_ = os.Unsetenv("INTERNMATCH_SCORE_WORKERS")
			}()

			convey.Convey("Then configuration should be loadable", func() {
				ctx := context.Background()
				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.NeighborCount, convey.ShouldEqual, 7)
				convey.So(cfg.ScoreWorkers, convey.ShouldEqual, 4)
			})
		})

		convey.Convey("When testing store construction", func() {
			convey.So(logger.Init(), convey.ShouldBeNil)
			log := logger.Get()

			convey.Convey("Then the in-memory store should seed the sample corpus", func() {
				store, cleanup, err := openStore(context.Background(), config.New(), log)
				convey.So(err, convey.ShouldBeNil)
				defer cleanup()

				listings, err := store.ListActiveInternships(context.Background())
				convey.So(err, convey.ShouldBeNil)
				convey.So(listings, convey.ShouldHaveLength, 5)
			})

			convey.Convey("And a configured db_path should open a sqlite store", func() {
				cfg := config.New()
				cfg.DBPath = filepath.Join(t.TempDir(), "matching.db")

				store, cleanup, err := openStore(context.Background(), cfg, log)
				convey.So(err, convey.ShouldBeNil)
				defer cleanup()
				convey.So(store, convey.ShouldNotBeNil)
			})

			convey.Convey("And a missing dataset file should fail loudly", func() {
				cfg := config.New()
				cfg.DatasetPath = "/non/existent/dataset.yaml"

				_, _, err := openStore(context.Background(), cfg, log)
				convey.So(err, convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When testing service creation", func() {
			convey.Convey("Then service should be creatable with default options", func() {
				svc := app.New()
				convey.So(svc, convey.ShouldNotBeNil)
			})

			convey.Convey("And service should be creatable with custom options", func() {
				svc := app.New(
					app.WithNeighborCount(20),
					app.WithScoreWorkers(8),
				)
				convey.So(svc, convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When testing HTTP server creation", func() {
			svc := app.New()
			convey.So(svc, convey.ShouldNotBeNil)

			convey.Convey("Then HTTP server should be creatable", func() {
				server := api.NewServer(svc)
				convey.So(server, convey.ShouldNotBeNil)
			})
		})
	})
}

func TestMainApplicationComponents(t *testing.T) {
	convey.Convey("Given main application components", t, func() {
		convey.Convey("When testing the system metrics updater", func() {
			convey.Convey("Then it should stop when the context is cancelled", func() {
				ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
				defer cancel()

				convey.So(func() {
					startSystemMetricsUpdater(ctx)
				}, convey.ShouldNotPanic)
			})
		})
	})
}

// Compile-time check: the service satisfies the handler dependency bundle.
var _ api.Dependencies = (*app.Service)(nil)
