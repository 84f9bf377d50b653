package cmd

import (
	"context"
	"fmt"

	"recon-manager/core/config"
	"recon-manager/core/database"
	"recon-manager/core/storage"
	"recon-manager/feature/reconciliation"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// archiveDeps holds the connections behind the run archive.
type archiveDeps struct {
	db      *gorm.DB
	client  storage.Client
	archive *reconciliation.Archive
}

// openArchive connects the run ledger and the report bucket. It returns an
// empty archiveDeps when the archive is disabled.
func openArchive(ctx context.Context, cfg *config.Config, logg *zap.Logger) (*archiveDeps, error) {
	deps := &archiveDeps{}
	if !cfg.Archive.Enabled {
		return deps, nil
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	deps.db = db

	repo := reconciliation.NewRepository(db)
	if cfg.Archive.AutoMigrate {
		if err := repo.Migrate(ctx); err != nil {
			return nil, fmt.Errorf("failed to migrate run ledger: %w", err)
		}
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	deps.client = client

	deps.archive = reconciliation.NewArchive(client, cfg.Storage.Bucket, cfg.Archive.Prefix, repo, logg)
	logg.Info("Run archive enabled",
		zap.String("driver", cfg.Database.Driver),
		zap.String("bucket", cfg.Storage.Bucket),
		zap.String("prefix", cfg.Archive.Prefix),
	)
	return deps, nil
}
