package cmd

import (
	"fmt"

	"catalog-sync/core/cache"
	"catalog-sync/core/config"
	"catalog-sync/core/fetch"
	"catalog-sync/core/logger"
	"catalog-sync/core/storage"
	"catalog-sync/core/store"
	"catalog-sync/feature/catalog/syncer"
	"catalog-sync/feature/catalog/transform"

	"go.uber.org/zap"
)

// app bundles the wired components every subcommand needs.
type app struct {
	cfg    *config.Config
	logger *zap.Logger
	store  *store.Store
	syncer *syncer.Syncer
}

// buildApp loads configuration and wires the full component graph:
// fetcher -> cached client -> transformer -> syncer -> store.
func buildApp() (*app, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	var mirror *storage.Mirror
	if cfg.Mirror.Enabled() {
		client, err := storage.NewClient(cfg.Mirror)
		if err != nil {
			return nil, fmt.Errorf("failed to create mirror client: %w", err)
		}
		mirror = storage.NewMirror(client, cfg.Mirror.Bucket)
		l.Info("backup mirror enabled", zap.String("bucket", cfg.Mirror.Bucket))
	}

	st := store.New(cfg.Store, mirror, l)
	fetcher := fetch.NewFetcher(cfg.Upstream, l)
	client := fetch.NewClient(fetcher, cache.New(cfg.Cache))
	transformer := transform.New(client, l)

	return &app{
		cfg:    cfg,
		logger: l,
		store:  st,
		syncer: syncer.New(client, transformer, st, l),
	}, nil
}
