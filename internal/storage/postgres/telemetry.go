package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tesis-cabal-cugno-moreyra/backend/internal/domain"
	"github.com/tesis-cabal-cugno-moreyra/backend/pkg/e"
)

type TelemetryRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewTelemetryRepo(pool *pgxpool.Pool, logger *slog.Logger) *TelemetryRepo {
	return &TelemetryRepo{pool: pool, logger: logger}
}

func (p *TelemetryRepo) CreateMapPoint(ctx context.Context, point *domain.MapPoint) error {
	const op = "postgres.Telemetry.CreateMapPoint"

	const query = `
		INSERT INTO map_points
			(id, incident_id, incident_resource_id, location, comment, observed_at, created_at)
		VALUES ($1, $2, $3, ST_SetSRID(ST_MakePoint($4, $5), 4326), $6, $7, $8)
	`

	if point.ID == uuid.Nil {
		point.ID = uuid.New()
	}
	if point.CreatedAt.IsZero() {
		point.CreatedAt = time.Now().UTC()
	}

	_, err := p.pool.Exec(ctx, query,
		point.ID,
		point.IncidentID,
		point.AssignmentID,
		point.Location.Lng(),
		point.Location.Lat(),
		point.Comment,
		point.ObservedAt,
		point.CreatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *TelemetryRepo) CreateTrackPoints(ctx context.Context, points []*domain.TrackPoint) error {
	const op = "postgres.Telemetry.CreateTrackPoints"

	if len(points) == 0 {
		return nil
	}

	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return e.WrapError(ctx, op, err)
	}
	defer tx.Rollback(ctx)

	const query = `
		INSERT INTO track_points
			(id, incident_id, incident_resource_id, location, observed_at, created_at)
		VALUES ($1, $2, $3, ST_SetSRID(ST_MakePoint($4, $5), 4326), $6, $7)
	`

	now := time.Now().UTC()
	batch := &pgx.Batch{}
	for _, point := range points {
		if point.ID == uuid.Nil {
			point.ID = uuid.New()
		}
		if point.CreatedAt.IsZero() {
			point.CreatedAt = now
		}
		batch.Queue(query,
			point.ID,
			point.IncidentID,
			point.AssignmentID,
			point.Location.Lng(),
			point.Location.Lat(),
			point.ObservedAt,
			point.CreatedAt,
		)
	}

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		p.logger.Error("db batch failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func pointFilterClause(filter domain.PointFilter, args []any) (string, []any) {
	where := ""
	if filter.ResourceID != nil {
		args = append(args, *filter.ResourceID)
		where += fmt.Sprintf(" AND a.resource_id = $%d", len(args))
	}
	if filter.TimedeltaSeconds > 0 {
		args = append(args, filter.TimedeltaSeconds)
		where += fmt.Sprintf(" AND p.created_at >= now() - make_interval(secs => $%d)", len(args))
	}
	return where, args
}

func (p *TelemetryRepo) ListMapPoints(ctx context.Context, incidentID uuid.UUID, filter domain.PointFilter) ([]*domain.MapPoint, error) {
	const op = "postgres.Telemetry.ListMapPoints"

	query := `
		SELECT p.id, p.incident_id, p.incident_resource_id, a.resource_id,
			ST_X(p.location::geometry), ST_Y(p.location::geometry),
			p.comment, p.observed_at, p.created_at
		FROM map_points p
		JOIN incident_resources a ON a.id = p.incident_resource_id
		WHERE p.incident_id = $1`
	args := []any{incidentID}

	clause, args := pointFilterClause(filter, args)
	query += clause + " ORDER BY p.created_at"

	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var points []*domain.MapPoint
	for rows.Next() {
		var (
			point    domain.MapPoint
			lng, lat float64
		)
		err := rows.Scan(
			&point.ID,
			&point.IncidentID,
			&point.AssignmentID,
			&point.ResourceID,
			&lng,
			&lat,
			&point.Comment,
			&point.ObservedAt,
			&point.CreatedAt,
		)
		if err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		point.Location = domain.NewPoint(lng, lat)
		points = append(points, &point)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return points, nil
}

func (p *TelemetryRepo) ListTrackPoints(ctx context.Context, incidentID uuid.UUID, filter domain.PointFilter) ([]*domain.TrackPoint, error) {
	const op = "postgres.Telemetry.ListTrackPoints"

	query := `
		SELECT p.id, p.incident_id, p.incident_resource_id, a.resource_id,
			ST_X(p.location::geometry), ST_Y(p.location::geometry),
			p.observed_at, p.created_at
		FROM track_points p
		JOIN incident_resources a ON a.id = p.incident_resource_id
		WHERE p.incident_id = $1`
	args := []any{incidentID}

	clause, args := pointFilterClause(filter, args)
	query += clause + " ORDER BY p.created_at"

	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var points []*domain.TrackPoint
	for rows.Next() {
		var (
			point    domain.TrackPoint
			lng, lat float64
		)
		err := rows.Scan(
			&point.ID,
			&point.IncidentID,
			&point.AssignmentID,
			&point.ResourceID,
			&lng,
			&lat,
			&point.ObservedAt,
			&point.CreatedAt,
		)
		if err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		point.Location = domain.NewPoint(lng, lat)
		points = append(points, &point)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return points, nil
}
