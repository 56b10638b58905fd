package storage

import (
	"context"
	"log/slog"

	"bookshop/config"
	"bookshop/internal/domain/lifecycle"
	"bookshop/internal/domain/service"
	"bookshop/internal/errors"

	"go.uber.org/fx"
)

// StorageParams holds dependencies for ThumbnailStorage, injected by Fx
type StorageParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// StorageResult exposes the selected backend. Local is nil unless the local
// provider is active, so the HTTP server only serves files it owns.
type StorageResult struct {
	fx.Out

	Storage service.ThumbnailStorage
	Local   *LocalStore
}

// NewThumbnailStorage creates a ThumbnailStorage based on configuration
func NewThumbnailStorage(params StorageParams) (StorageResult, error) {
	cfg := params.Config.Storage
	logger := params.Logger

	switch cfg.Provider {
	case config.StorageProviderLocal, "":
		store, err := NewLocalStore(cfg.Local.Dir, cfg.Local.URLPrefix, logger)
		if err != nil {
			return StorageResult{}, err
		}
		logger.Info("Using local thumbnail storage", slog.String("dir", cfg.Local.Dir))

		return StorageResult{Storage: store, Local: store}, nil

	case config.StorageProviderMinio:
		store, err := NewMinioStore(cfg.Minio)
		if err != nil {
			return StorageResult{}, err
		}
		logger.Info("Using MinIO thumbnail storage",
			slog.String("endpoint", cfg.Minio.Endpoint),
			slog.String("bucket", cfg.Minio.Bucket),
		)

		params.Lc.Append(fx.Hook{
			OnStart: func(startCtx context.Context) error {
				ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
				defer cancel()

				return store.EnsureBucket(ctx)
			},
		})

		return StorageResult{Storage: store}, nil

	default:
		return StorageResult{}, errors.Errorf("unknown storage provider: %s", cfg.Provider)
	}
}

// Module provides the thumbnail storage FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewThumbnailStorage),
)
