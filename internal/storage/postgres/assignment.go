package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tesis-cabal-cugno-moreyra/backend/internal/domain"
	"github.com/tesis-cabal-cugno-moreyra/backend/pkg/e"
)

type AssignmentRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewAssignmentRepo(pool *pgxpool.Pool, logger *slog.Logger) *AssignmentRepo {
	return &AssignmentRepo{pool: pool, logger: logger}
}

const assignmentColumns = `
	a.id, a.incident_id, a.resource_id, a.container_resource_id,
	a.exited_from_incident_at, a.created_at, a.updated_at
`

func scanAssignment(row pgx.Row) (*domain.Assignment, error) {
	var a domain.Assignment
	err := row.Scan(
		&a.ID,
		&a.IncidentID,
		&a.ResourceID,
		&a.ContainerResourceID,
		&a.ExitedAt,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

type queryer interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// checkContainment re-validates the container invariants right before
// the write, inside the same transaction as the insert/update.
func checkContainment(ctx context.Context, q queryer, resourceID uuid.UUID, container *uuid.UUID) error {
	const flagQuery = `
		SELECT rt.is_able_to_contain_resources
		FROM resources r
		JOIN resource_types rt ON rt.id = r.type_id
		WHERE r.id = $1
	`

	if container == nil {
		return nil
	}

	var resourceIsContainer bool
	if err := q.QueryRow(ctx, flagQuery, resourceID).Scan(&resourceIsContainer); err != nil {
		return err
	}
	if resourceIsContainer {
		return e.Fieldf("container_resource_id", e.ErrContainerConflict,
			"Resource able to contain resources cannot have a container")
	}

	var containerIsContainer bool
	if err := q.QueryRow(ctx, flagQuery, *container).Scan(&containerIsContainer); err != nil {
		return err
	}
	if !containerIsContainer {
		return e.Fieldf("container_resource_id", e.ErrContainerCapability,
			"Container resource must be able to contain resources")
	}

	return nil
}

func (p *AssignmentRepo) Get(ctx context.Context, incidentID, resourceID uuid.UUID) (*domain.Assignment, error) {
	const op = "postgres.Assignment.Get"

	query := `SELECT ` + assignmentColumns + `
		FROM incident_resources a
		WHERE a.incident_id = $1 AND a.resource_id = $2`

	a, err := scanAssignment(p.pool.QueryRow(ctx, query, incidentID, resourceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return a, nil
}

func (p *AssignmentRepo) Create(ctx context.Context, assignment *domain.Assignment) error {
	const op = "postgres.Assignment.Create"

	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return e.WrapError(ctx, op, err)
	}
	defer tx.Rollback(ctx)

	if err := checkContainment(ctx, tx, assignment.ResourceID, assignment.ContainerResourceID); err != nil {
		var fe *e.FieldError
		if errors.As(err, &fe) {
			return err
		}
		return e.WrapError(ctx, op, err)
	}

	const query = `
		INSERT INTO incident_resources
			(id, incident_id, resource_id, container_resource_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
	`

	if assignment.ID == uuid.Nil {
		assignment.ID = uuid.New()
	}
	if assignment.CreatedAt.IsZero() {
		assignment.CreatedAt = time.Now().UTC()
	}
	assignment.UpdatedAt = assignment.CreatedAt

	_, err = tx.Exec(ctx, query,
		assignment.ID,
		assignment.IncidentID,
		assignment.ResourceID,
		assignment.ContainerResourceID,
		assignment.CreatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *AssignmentRepo) Reopen(ctx context.Context, id uuid.UUID, container *uuid.UUID) (*domain.Assignment, error) {
	const op = "postgres.Assignment.Reopen"
	return p.updateContainer(ctx, op, id, container, true)
}

func (p *AssignmentRepo) SetContainer(ctx context.Context, id uuid.UUID, container *uuid.UUID) (*domain.Assignment, error) {
	const op = "postgres.Assignment.SetContainer"
	return p.updateContainer(ctx, op, id, container, false)
}

func (p *AssignmentRepo) updateContainer(ctx context.Context, op string, id uuid.UUID, container *uuid.UUID, reopen bool) (*domain.Assignment, error) {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	defer tx.Rollback(ctx)

	var resourceID uuid.UUID
	err = tx.QueryRow(ctx,
		`SELECT resource_id FROM incident_resources WHERE id = $1 FOR UPDATE`, id).Scan(&resourceID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		return nil, e.WrapError(ctx, op, err)
	}

	if err := checkContainment(ctx, tx, resourceID, container); err != nil {
		var fe *e.FieldError
		if errors.As(err, &fe) {
			return nil, err
		}
		return nil, e.WrapError(ctx, op, err)
	}

	query := `
		UPDATE incident_resources
		SET container_resource_id = $2, updated_at = now()
		WHERE id = $1
	`
	if reopen {
		query = `
			UPDATE incident_resources
			SET container_resource_id = $2, exited_from_incident_at = NULL, updated_at = now()
			WHERE id = $1
		`
	}
	if _, err := tx.Exec(ctx, query, id, container); err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	a, err := scanAssignment(tx.QueryRow(ctx,
		`SELECT `+assignmentColumns+` FROM incident_resources a WHERE a.id = $1`, id))
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}

	return a, nil
}

func (p *AssignmentRepo) Close(ctx context.Context, incidentID, resourceID uuid.UUID, at time.Time) (*domain.Assignment, error) {
	const op = "postgres.Assignment.Close"

	const query = `
		UPDATE incident_resources
		SET exited_from_incident_at = $3, updated_at = $3
		WHERE incident_id = $1 AND resource_id = $2 AND exited_from_incident_at IS NULL
		RETURNING id, incident_id, resource_id, container_resource_id,
			exited_from_incident_at, created_at, updated_at
	`

	a, err := scanAssignment(p.pool.QueryRow(ctx, query, incidentID, resourceID, at))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return a, nil
}

func (p *AssignmentRepo) List(ctx context.Context, incidentID uuid.UUID, filter domain.AssignmentFilter) ([]*domain.AssignmentListItem, int64, error) {
	const op = "postgres.Assignment.List"

	page := filter.Page
	limit := filter.Limit
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = domain.AssignmentsDefaultPageSize
	}
	if limit > domain.AssignmentsMaxPageSize {
		limit = domain.AssignmentsMaxPageSize
	}
	offset := (page - 1) * limit

	joins := `
		FROM incident_resources a
		JOIN resources r ON r.id = a.resource_id
		JOIN resource_types rt ON rt.id = r.type_id
	`

	where := ` WHERE a.incident_id = $1`
	args := []any{incidentID}
	if filter.Name != "" {
		args = append(args, "%"+filter.Name+"%")
		where += fmt.Sprintf(" AND r.name ILIKE $%d", len(args))
	}
	if filter.TypeName != "" {
		args = append(args, filter.TypeName)
		where += fmt.Sprintf(" AND rt.name = $%d", len(args))
	}
	if filter.ResourceActive != nil {
		args = append(args, *filter.ResourceActive)
		where += fmt.Sprintf(" AND r.is_active = $%d", len(args))
	}
	if filter.AbleToContain != nil {
		args = append(args, *filter.AbleToContain)
		where += fmt.Sprintf(" AND rt.is_able_to_contain_resources = $%d", len(args))
	}
	if filter.WithoutContainer {
		where += " AND a.container_resource_id IS NULL"
	}
	if filter.CurrentlyJoined != nil {
		if *filter.CurrentlyJoined {
			where += " AND a.exited_from_incident_at IS NULL"
		} else {
			where += " AND a.exited_from_incident_at IS NOT NULL"
		}
	}

	var total int64
	if err := p.pool.QueryRow(ctx, `SELECT COUNT(*)`+joins+where, args...).Scan(&total); err != nil {
		p.logger.Error("db count failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	args = append(args, limit, offset)
	listQuery := `SELECT ` + assignmentColumns + `,
		r.id, r.name, r.is_active, r.created_at,
		rt.id, rt.name, rt.is_able_to_contain_resources` +
		joins + where +
		fmt.Sprintf(" ORDER BY a.created_at LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := p.pool.Query(ctx, listQuery, args...)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var items []*domain.AssignmentListItem
	for rows.Next() {
		var item domain.AssignmentListItem
		err := rows.Scan(
			&item.ID,
			&item.IncidentID,
			&item.ResourceID,
			&item.ContainerResourceID,
			&item.ExitedAt,
			&item.CreatedAt,
			&item.UpdatedAt,
			&item.Resource.ID,
			&item.Resource.Name,
			&item.Resource.Active,
			&item.Resource.CreatedAt,
			&item.Resource.Type.ID,
			&item.Resource.Type.Name,
			&item.Resource.Type.AbleToContainResources,
		)
		if err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, 0, e.WrapError(ctx, op, err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	return items, total, nil
}
