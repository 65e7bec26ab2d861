package postgres

import (
	"context"
	"encoding/json"
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

type IncidentRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewIncidentRepo(pool *pgxpool.Pool, logger *slog.Logger) *IncidentRepo {
	return &IncidentRepo{pool: pool, logger: logger}
}

const incidentColumns = `
	i.id,
	i.domain_id,
	d.domain_name,
	i.incident_type_id,
	t.name,
	i.external_assistance,
	i.details,
	i.status,
	i.data_status,
	i.location_reference,
	i.reference,
	ST_X(i.location::geometry),
	ST_Y(i.location::geometry),
	i.created_at,
	i.updated_at,
	i.finalized_at,
	i.cancelled_at
`

const incidentJoins = `
	FROM incidents i
	JOIN domain_configs d ON d.id = i.domain_id
	JOIN incident_types t ON t.id = i.incident_type_id
`

func scanIncident(row pgx.Row) (*domain.Incident, error) {
	var (
		inc      domain.Incident
		lng, lat float64
	)
	err := row.Scan(
		&inc.ID,
		&inc.DomainID,
		&inc.DomainName,
		&inc.IncidentTypeID,
		&inc.IncidentTypeName,
		&inc.ExternalAssistance,
		&inc.Details,
		&inc.Status,
		&inc.DataStatus,
		&inc.LocationReference,
		&inc.Reference,
		&lng,
		&lat,
		&inc.CreatedAt,
		&inc.UpdatedAt,
		&inc.FinalizedAt,
		&inc.CancelledAt,
	)
	if err != nil {
		return nil, err
	}
	inc.Location = domain.NewPoint(lng, lat)
	return &inc, nil
}

func (p *IncidentRepo) Create(ctx context.Context, incident *domain.Incident) error {
	const op = "postgres.Incident.Create"

	const query = `
		INSERT INTO incidents (id, domain_id, incident_type_id, external_assistance,
			details, status, data_status, location_reference, reference, location,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9,
			ST_SetSRID(ST_MakePoint($10, $11), 4326), $12, $12)
	`

	if incident.ID == uuid.Nil {
		incident.ID = uuid.New()
	}
	if incident.CreatedAt.IsZero() {
		incident.CreatedAt = time.Now().UTC()
	}
	if len(incident.Details) == 0 {
		incident.Details = json.RawMessage(`{}`)
	}
	incident.UpdatedAt = incident.CreatedAt

	_, err := p.pool.Exec(ctx, query,
		incident.ID,
		incident.DomainID,
		incident.IncidentTypeID,
		incident.ExternalAssistance,
		incident.Details,
		incident.Status,
		incident.DataStatus,
		incident.LocationReference,
		incident.Reference,
		incident.Location.Lng(),
		incident.Location.Lat(),
		incident.CreatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *IncidentRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Incident, error) {
	const op = "postgres.Incident.Get"

	query := `SELECT ` + incidentColumns + incidentJoins + ` WHERE i.id = $1`

	inc, err := scanIncident(p.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return inc, nil
}

func (p *IncidentRepo) List(ctx context.Context, req domain.ListIncidentsRequest) ([]*domain.Incident, int64, error) {
	const op = "postgres.Incident.List"

	page := req.Page
	limit := req.Limit
	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	where := ` WHERE 1=1`
	args := []any{}
	if req.IncidentTypeName != "" {
		args = append(args, req.IncidentTypeName)
		where += fmt.Sprintf(" AND t.name = $%d", len(args))
	}
	if req.ExternalAssistance != "" {
		args = append(args, req.ExternalAssistance)
		where += fmt.Sprintf(" AND i.external_assistance = $%d", len(args))
	}
	if req.Status != "" {
		args = append(args, req.Status)
		where += fmt.Sprintf(" AND i.status = $%d", len(args))
	}
	if req.DataStatus != "" {
		args = append(args, req.DataStatus)
		where += fmt.Sprintf(" AND i.data_status = $%d", len(args))
	}

	var total int64
	countQuery := `SELECT COUNT(*)` + incidentJoins + where
	if err := p.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		p.logger.Error("db count failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	args = append(args, limit, offset)
	listQuery := `SELECT ` + incidentColumns + incidentJoins + where +
		fmt.Sprintf(" ORDER BY i.created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := p.pool.Query(ctx, listQuery, args...)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var incidents []*domain.Incident
	for rows.Next() {
		inc, err := scanIncident(rows)
		if err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, 0, e.WrapError(ctx, op, err)
		}
		incidents = append(incidents, inc)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	return incidents, total, nil
}

func (p *IncidentRepo) Transition(ctx context.Context, id uuid.UUID, target domain.IncidentStatus, at time.Time) (*domain.Incident, []uuid.UUID, error) {
	const op = "postgres.Incident.Transition"

	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return nil, nil, e.WrapError(ctx, op, err)
	}
	defer tx.Rollback(ctx)

	var status domain.IncidentStatus
	err = tx.QueryRow(ctx, `SELECT status FROM incidents WHERE id = $1 FOR UPDATE`, id).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, e.Fieldf("incident_id", e.ErrNotFound,
				"Incident with id %s does not exist", id)
		}
		return nil, nil, e.WrapError(ctx, op, err)
	}

	if status != domain.IncidentStarted {
		return nil, nil, e.Fieldf("incident_id", e.ErrInvalidTransition,
			"Incident with id %s is already %s", id, status)
	}

	timestampColumn := "finalized_at"
	if target == domain.IncidentCanceled {
		timestampColumn = "cancelled_at"
	}
	query := fmt.Sprintf(
		`UPDATE incidents SET status = $2, %s = $3, updated_at = $3 WHERE id = $1 AND status = 'Started'`,
		timestampColumn,
	)
	cmd, err := tx.Exec(ctx, query, id, target, at)
	if err != nil {
		return nil, nil, e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		// lost the race despite the row lock
		return nil, nil, e.Fieldf("incident_id", e.ErrInvalidTransition,
			"Incident with id %s is already closed", id)
	}

	rows, err := tx.Query(ctx,
		`SELECT resource_id FROM incident_resources
		 WHERE incident_id = $1 AND exited_from_incident_at IS NULL`, id)
	if err != nil {
		return nil, nil, e.WrapError(ctx, op, err)
	}
	var resourceIDs []uuid.UUID
	for rows.Next() {
		var rid uuid.UUID
		if err := rows.Scan(&rid); err != nil {
			rows.Close()
			return nil, nil, e.WrapError(ctx, op, err)
		}
		resourceIDs = append(resourceIDs, rid)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, nil, e.WrapError(ctx, op, err)
	}

	_, err = tx.Exec(ctx,
		`UPDATE incident_resources SET exited_from_incident_at = $2, updated_at = $2
		 WHERE incident_id = $1 AND exited_from_incident_at IS NULL`, id, at)
	if err != nil {
		return nil, nil, e.WrapError(ctx, op, err)
	}

	inc, err := scanIncident(tx.QueryRow(ctx,
		`SELECT `+incidentColumns+incidentJoins+` WHERE i.id = $1`, id))
	if err != nil {
		return nil, nil, e.WrapError(ctx, op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, nil, e.WrapError(ctx, op, err)
	}

	return inc, resourceIDs, nil
}

func (p *IncidentRepo) SetExternalAssistance(ctx context.Context, id uuid.UUID, value domain.ExternalAssistance) error {
	const op = "postgres.Incident.SetExternalAssistance"

	const query = `
		UPDATE incidents SET external_assistance = $2, updated_at = now()
		WHERE id = $1
	`

	cmd, err := p.pool.Exec(ctx, query, id, value)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}

func (p *IncidentRepo) SetDetails(ctx context.Context, id uuid.UUID, details json.RawMessage) error {
	const op = "postgres.Incident.SetDetails"

	const query = `
		UPDATE incidents SET details = $2, data_status = 'Complete', updated_at = now()
		WHERE id = $1
	`

	cmd, err := p.pool.Exec(ctx, query, id, details)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}
