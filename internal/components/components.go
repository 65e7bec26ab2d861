package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/tesis-cabal-cugno-moreyra/backend/internal/api"
	"github.com/tesis-cabal-cugno-moreyra/backend/internal/config"
	"github.com/tesis-cabal-cugno-moreyra/backend/internal/redis"
	"github.com/tesis-cabal-cugno-moreyra/backend/internal/service"
	"github.com/tesis-cabal-cugno-moreyra/backend/internal/storage/postgres"
	"github.com/tesis-cabal-cugno-moreyra/backend/internal/workers"
	"github.com/tesis-cabal-cugno-moreyra/backend/pkg/logger"
)

type Components struct {
	logger     *slog.Logger
	HttpServer *api.Server
	Postgres   *postgres.Postgres
	Redis      *redis.Redis
	PushSender *workers.PushSender
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	logger.Info("Initializing Postgres")
	storage, err := postgres.NewPostgres(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to init postgres", slog.Any("error", err))
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	logger.Info("Initializing Redis")
	redisClient, err := redis.NewRedis(ctx, cfg, logger)
	if err != nil {
		storage.Pool.Close()
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}

	pushQueue := redis.NewPushQueue(redisClient, "push:queue")
	broadcaster := redis.NewBroadcaster(redisClient)
	snapshots := redis.NewSnapshotCache(redisClient)

	notifier := service.NewNotificationTrigger(pushQueue, broadcaster, logger)

	incidentSvc := service.NewIncidentService(storage.Incident, storage.Catalog, notifier, logger)
	assignmentSvc := service.NewAssignmentService(storage.Incident, storage.Assignment, storage.Catalog, logger)
	telemetrySvc := service.NewTelemetryService(storage.Incident, storage.Assignment, storage.Telemetry, storage.Catalog, broadcaster, logger)
	catalogSvc := service.NewCatalogService(storage.Catalog, snapshots, logger)

	svc := service.NewService(incidentSvc, assignmentSvc, telemetrySvc, catalogSvc)

	httpServer := api.NewServer(cfg, logger, svc)
	logger.Info("Initialized server")

	pushSender := workers.NewPushSender(logger, cfg.Push, pushQueue)

	return &Components{
		logger:     logger,
		HttpServer: httpServer,
		Postgres:   storage,
		Redis:      redisClient,
		PushSender: pushSender,
	}, nil
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return logger.SetupPrettySlog()
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("Shutting down components")

	c.Postgres.Pool.Close()
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("All components stopped",
		slog.Duration("latency", time.Since(start)))
}
