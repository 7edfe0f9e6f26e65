package app

import (
	"context"
	"fmt"

	"github.com/riskibarqy/caddyshack/internal/config"
	"github.com/riskibarqy/caddyshack/internal/domain/golfbag"
	"github.com/riskibarqy/caddyshack/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/caddyshack/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/caddyshack/internal/infrastructure/repository/sqlite"
	"github.com/riskibarqy/caddyshack/internal/platform/logging"
	"github.com/riskibarqy/caddyshack/internal/platform/pgdsn"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

type store struct {
	repo  golfbag.Repository
	close func() error
}

func openStore(ctx context.Context, cfg config.Config, logger *logging.Logger) (store, error) {
	switch cfg.StoreDriver {
	case config.StorePostgres:
		return openPostgresStore(ctx, cfg, logger)
	case config.StoreSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return store{}, fmt.Errorf("open sqlite store: %w", err)
		}
		logger.Info("golf bag store ready", "driver", config.StoreSQLite, "path", cfg.SQLitePath)
		return store{repo: sqlite.NewGolfBagRepository(db), close: db.Close}, nil
	default:
		var seed []golfbag.Bag
		if cfg.MemorySeedEnabled {
			seed = memory.SeedGolfBags()
		}
		logger.Info("golf bag store ready", "driver", config.StoreMemory, "seeded_bags", len(seed))
		return store{
			repo:  memory.NewGolfBagRepository(seed),
			close: func() error { return nil },
		}, nil
	}
}

func openPostgresStore(ctx context.Context, cfg config.Config, logger *logging.Logger) (store, error) {
	db, err := otelsqlx.Open(
		"postgres",
		pgdsn.Normalize(cfg.DBURL, cfg.DBDisablePreparedBinary),
		otelsql.WithAttributes(semconv.DBSystemPostgreSQL),
		otelsql.WithDBName(pgdsn.DatabaseName(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return store{}, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxOpenConns)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return store{}, fmt.Errorf("ping postgres: %w", err)
	}

	if cfg.DBAutoMigrate {
		if err := postgres.Migrate(ctx, db.DB); err != nil {
			_ = db.Close()
			return store{}, fmt.Errorf("migrate postgres: %w", err)
		}
		logger.Info("postgres migrations applied")
	}

	logger.Info("golf bag store ready", "driver", config.StorePostgres, "database", pgdsn.DatabaseName(cfg.DBURL), "url", pgdsn.Redact(cfg.DBURL))
	return store{repo: postgres.NewGolfBagRepository(db), close: db.Close}, nil
}
