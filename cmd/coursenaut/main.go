package main

import (
	"context"
	"flag"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/redhat-data-and-ai/coursenaut/internal/controller"
	"github.com/redhat-data-and-ai/coursenaut/internal/httpapi/server"
	"github.com/redhat-data-and-ai/coursenaut/internal/seed"
	"github.com/redhat-data-and-ai/coursenaut/pkg/config"
	"github.com/redhat-data-and-ai/coursenaut/pkg/docstore"
	"github.com/redhat-data-and-ai/coursenaut/pkg/logger"
	"github.com/redhat-data-and-ai/coursenaut/pkg/store"
	"github.com/redhat-data-and-ai/coursenaut/pkg/telemetry"
)

func main() {
	configDir := flag.String("config", "appconfig", "directory containing config.yaml")
	seedFile := flag.String("seed", "", "optional YAML fixture to load on startup")
	repair := flag.Bool("repair", false, "rebuild user back-references from the courses document on startup")
	flag.Parse()

	if err := run(*configDir, *seedFile, *repair); err != nil {
		logrus.WithError(err).Fatal("coursenaut exited with error")
	}
}

func run(configDir, seedFile string, repair bool) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return err
	}
	logger.Init(cfg.Logging)

	if err := telemetry.Init(ctx, telemetry.ConfigFrom(cfg.App, cfg.Telemetry)); err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			logrus.WithError(err).Warn("failed to shut down telemetry")
		}
	}()
	meter := telemetry.GetMeter(cfg.App.Name)
	if err := telemetry.InitStoreMetrics(meter, telemetry.WithBackend(cfg.Store.Backend)); err != nil {
		return err
	}
	if err := telemetry.InitJobMetrics(meter); err != nil {
		return err
	}

	backend, err := docstore.New(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := backend.Close(); err != nil {
			logrus.WithError(err).Warn("failed to close document backend")
		}
	}()

	dataStore, err := store.Open(ctx, backend,
		store.WithDocuments(cfg.Store.UsersDocument, cfg.Store.CoursesDocument))
	if err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"backend": cfg.Store.Backend,
		"users":   len(dataStore.User.GetAll(ctx)),
		"courses": len(dataStore.Course.GetAllCourses(ctx)),
	}).Info("loaded store")

	if repair {
		report, err := dataStore.RepairBackReferences(ctx)
		if err != nil {
			return err
		}
		logrus.WithFields(logrus.Fields{
			"instructors_updated": report.InstructorsUpdated,
			"students_updated":    report.StudentsUpdated,
		}).Info("repaired back-references")
	}

	if seedFile != "" {
		fixture, err := seed.LoadFile(seedFile)
		if err != nil {
			return err
		}
		if _, err := seed.Apply(ctx, dataStore, fixture); err != nil {
			return err
		}
	}

	if cfg.Jobs.Enabled {
		jobs := controller.NewPeriodicTasksController(cfg.Jobs, dataStore)
		go func() {
			if err := jobs.Start(ctx); err != nil && ctx.Err() == nil {
				logrus.WithError(err).Error("periodic tasks controller failed")
			}
		}()
		defer func() {
			stop()
			jobs.Wait()
		}()
	}

	return server.NewAPIServer(cfg, dataStore).Start(ctx)
}
