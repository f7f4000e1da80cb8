// Package bootstrap wires the configuration database and the column builder
// from loaded configuration. Shared by the server and the CLI.
package bootstrap

import (
	"context"
	"fmt"

	"scadaadmin/internal/config"
	"scadaadmin/internal/configbase"
	"scadaadmin/internal/infrastructure/storage/postgres"
	"scadaadmin/internal/infrastructure/storage/postgres/configbase_repo"
	"scadaadmin/internal/metadata"
	"scadaadmin/pkg/logger"
)

// ConfigBase is an opened configuration database.
// Pool and Loader are nil when no database URL is configured.
type ConfigBase struct {
	Base   *configbase.Base
	Pool   *postgres.Pool
	Loader *configbase_repo.Loader
}

// Close releases the database pool, if any.
func (c *ConfigBase) Close() {
	if c.Pool != nil {
		c.Pool.Close()
	}
}

// OpenConfigBase connects to PostgreSQL when a URL is configured and loads the
// configuration tables. Without a URL the base stays empty.
func OpenConfigBase(ctx context.Context, cfg config.Config) (*ConfigBase, error) {
	cb := &ConfigBase{Base: configbase.New()}

	if cfg.Database.URL == "" {
		logger.Warn(ctx, "database.url is not set, serving an empty configuration")
		return cb, nil
	}

	poolCfg := postgres.DefaultPoolConfig(cfg.Database.URL)
	if cfg.Database.MaxConns > 0 {
		poolCfg.MaxConns = cfg.Database.MaxConns
	}

	pool, err := postgres.NewPool(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	loader := configbase_repo.NewLoader(postgres.NewTxManager(pool), cb.Base)
	if err := loader.Load(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("load config base: %w", err)
	}

	postgres.LogPoolStats(ctx, pool.Pool)

	cb.Pool = pool
	cb.Loader = loader
	return cb, nil
}

// NewColumnBuilder creates the column builder over base with the configured
// headers and collation language.
func NewColumnBuilder(cfg config.Config, base metadata.ConfigBase, log *logger.Logger) (*metadata.Builder, error) {
	lang, err := cfg.Language()
	if err != nil {
		return nil, err
	}

	return metadata.NewBuilder(base,
		metadata.WithHeaders(cfg.HeaderTables()),
		metadata.WithLanguage(lang),
		metadata.WithLogger(log),
	)
}
