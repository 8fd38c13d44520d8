package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/lootforge/internal/catalog"
	"github.com/osse101/lootforge/internal/config"
	"github.com/osse101/lootforge/internal/database"
	"github.com/osse101/lootforge/internal/database/postgres"
	"github.com/osse101/lootforge/internal/repository"
)

// LoadCatalog reads the catalog file, or returns the built-in catalog when
// no path is configured
func LoadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	if cfg.CatalogPath == "" {
		cat := catalog.Default()
		slog.Info(LogMsgCatalogLoaded, "source", "built-in", "version", cat.Version)
		return cat, nil
	}

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}
	slog.Info(LogMsgCatalogLoaded, "source", cfg.CatalogPath, "version", cat.Version, "recipes", len(cat.Recipes))
	return cat, nil
}

// InitializeSaveStore picks where player saves live. With DATABASE_URL the
// schema is migrated and a Postgres repository is returned along with its
// pool (caller must close); otherwise saves stay in memory and the pool is nil.
func InitializeSaveStore(ctx context.Context, cfg *config.Config) (repository.SaveStore, *pgxpool.Pool, error) {
	if !cfg.UsesDatabase() {
		slog.Warn(LogMsgUsingMemoryStore)
		return repository.NewMemoryStore(), nil, nil
	}

	if err := database.Migrate(ctx, cfg.DatabaseURL); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
	}

	pool, err := database.NewPool(cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDB, err)
	}

	slog.Info(LogMsgUsingPostgresStore, "max_conns", cfg.DBMaxConns)
	return postgres.NewSaveRepository(pool), pool, nil
}
