package cmd

import (
	"context"
	"fmt"

	"fioparser/core/config"
	"fioparser/core/dictionary"
	"fioparser/core/directory"
	"fioparser/core/fio"
	"fioparser/core/logger"
	"fioparser/core/reconcile"
	"fioparser/core/storage"

	"go.uber.org/zap"
)

// runtime bundles the components shared by the commands.
type runtime struct {
	cfg      *config.Config
	logger   *zap.Logger
	store    *dictionary.Store
	resolver *fio.Resolver
}

// bootstrap loads configuration, builds the logger and the dictionary-backed
// resolver. The dictionary is preloaded when configured to.
func bootstrap(ctx context.Context) (*runtime, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	var client storage.Client
	if cfg.Dictionary.Source == dictionary.SourceS3 {
		client, err = storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		ok, err := client.BucketExists(ctx, cfg.Storage.Bucket)
		if err != nil {
			return nil, fmt.Errorf("failed to reach storage: %w", err)
		}
		if !ok {
			return nil, fmt.Errorf("bucket %q does not exist", cfg.Storage.Bucket)
		}
	}

	source, err := dictionary.NewSource(cfg.Dictionary, client, cfg.Storage.Bucket)
	if err != nil {
		return nil, err
	}

	store := dictionary.NewStore(source, cfg.Dictionary.Layout(), l.With(zap.String("component", "dictionary")))
	if cfg.Dictionary.Preload {
		if err := store.Preload(ctx); err != nil {
			l.Warn("Some dictionary shards failed to load", zap.Error(err))
		}
		stats := store.Stats()
		l.Info("Dictionary preloaded",
			zap.Int("shards", stats.Shards),
			zap.Int("loaded", stats.Loaded),
			zap.Int("missing", stats.Missing),
			zap.Int64("surnames", stats.Surnames),
			zap.Int64("given_names", stats.GivenNames),
			zap.Int64("patronymics", stats.Patronymics),
		)
	}

	resolver, err := fio.NewResolver(store, cfg.Dictionary.CacheSize, l.With(zap.String("component", "resolver")))
	if err != nil {
		return nil, fmt.Errorf("failed to create resolver: %w", err)
	}

	return &runtime{cfg: cfg, logger: l, store: store, resolver: resolver}, nil
}

// directoryClient builds the amoCRM client from the configuration.
func (r *runtime) directoryClient() (*directory.Client, error) {
	return directory.NewClient(r.cfg.Directory, directory.StaticToken(r.cfg.Directory.AccessToken), r.logger)
}

// engine builds the reconciliation engine writing through updater.
func (r *runtime) engine(updater reconcile.Updater, opts ...reconcile.Option) *reconcile.Engine {
	opts = append([]reconcile.Option{reconcile.WithFallback(r.cfg.Dictionary.FallbackSurname)}, opts...)
	return reconcile.NewEngine(r.resolver, updater, r.cfg.Sync, r.logger.With(zap.String("component", "reconcile")), opts...)
}
