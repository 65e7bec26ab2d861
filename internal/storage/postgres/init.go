package postgres

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tesis-cabal-cugno-moreyra/backend/internal/config"
	"github.com/tesis-cabal-cugno-moreyra/backend/pkg/e"
)

type Postgres struct {
	Pool       *pgxpool.Pool
	Incident   IncidentRepository
	Assignment AssignmentRepository
	Telemetry  TelemetryRepository
	Catalog    CatalogRepository
}

func NewPostgres(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Postgres, error) {
	dsn := cfg.Postgres.DSN()

	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("Failed to parse pgx config", slog.String("error", err.Error()))
		return nil, e.Wrap("storage.pg.NewPostgres.ParseConfig", err)
	}
	poolCfg.MaxConns = cfg.Postgres.MaxConns
	poolCfg.MinConns = cfg.Postgres.MinConns
	poolCfg.MaxConnLifetime = cfg.Postgres.MaxConnLifetime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		logger.Error("Failed to create pgx pool", slog.String("error", err.Error()))
		return nil, e.Wrap("storage.pg.NewPostgres.NewWithConfig", err)
	}

	if err := pool.Ping(ctx); err != nil {
		logger.Error("Failed to ping Postgres database", slog.String("error", err.Error()))
		pool.Close()
		return nil, e.Wrap("storage.pg.NewPostgres.Ping", err)
	}
	logger.Info("Connected to Postgres successfully")

	if err := RunMigrations(dsn); err != nil {
		pool.Close()
		return nil, e.Wrap("storage.pg.NewPostgres.RunMigrations", err)
	}

	return &Postgres{
		Pool:       pool,
		Incident:   NewIncidentRepo(pool, logger),
		Assignment: NewAssignmentRepo(pool, logger),
		Telemetry:  NewTelemetryRepo(pool, logger),
		Catalog:    NewCatalogRepo(pool, logger),
	}, nil
}
