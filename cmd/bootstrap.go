package cmd

import (
	"errors"
	"fmt"

	"artifact-store/core/config"
	"artifact-store/core/database"
	"artifact-store/core/logger"
	"artifact-store/core/storage"
	"artifact-store/feature/artifacts"
	"artifact-store/feature/ledger"

	"go.uber.org/zap"
)

// app bundles everything a command needs after startup.
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	service *artifacts.Service
	ledger  *ledger.Repository
}

// bootstrap loads configuration, builds the logger and wires the artifact
// service. The ledger is attached only when the database is enabled and
// reachable; any other database problem is logged and ignored.
func bootstrap() (*app, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	var (
		repo     *ledger.Repository
		recorder artifacts.Recorder
	)
	if db, err := database.Connect(cfg.Database); err != nil {
		if !errors.Is(err, database.ErrDisabled) {
			logg.Warn("Optional database connection failed", zap.Error(err))
		}
	} else {
		repo = ledger.NewRepository(db)
		if err := repo.Migrate(); err != nil {
			logg.Warn("Transfer ledger unavailable", zap.Error(err))
			repo = nil
		} else {
			recorder = repo
			logg.Info("Transfer ledger enabled")
		}
	}

	svc := artifacts.NewService(storage.Process(cfg.Storage), logg, recorder, cfg.Artifacts)

	return &app{cfg: cfg, logger: logg, service: svc, ledger: repo}, nil
}

// bucket returns the bucket named by --bucket, or the configured default.
func (a *app) bucket() (*artifacts.Bucket, error) {
	name := bucketFlag
	if name == "" {
		name = a.cfg.Storage.Bucket
	}
	return a.service.Bucket(name)
}
