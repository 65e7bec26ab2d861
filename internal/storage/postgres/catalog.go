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

type CatalogRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewCatalogRepo(pool *pgxpool.Pool, logger *slog.Logger) *CatalogRepo {
	return &CatalogRepo{pool: pool, logger: logger}
}

func (p *CatalogRepo) CreateDomain(ctx context.Context, cfg *domain.DomainConfig) error {
	const op = "postgres.Catalog.CreateDomain"

	const query = `
		INSERT INTO domain_configs
			(id, domain_name, admin_code, supervisor_code, resource_code, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
	`

	if cfg.ID == uuid.Nil {
		cfg.ID = uuid.New()
	}
	if cfg.CreatedAt.IsZero() {
		cfg.CreatedAt = time.Now().UTC()
	}
	cfg.UpdatedAt = cfg.CreatedAt

	_, err := p.pool.Exec(ctx, query,
		cfg.ID,
		cfg.Name,
		cfg.AdminCode,
		cfg.SupervisorCode,
		cfg.ResourceCode,
		cfg.CreatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *CatalogRepo) CountDomains(ctx context.Context) (int64, error) {
	const op = "postgres.Catalog.CountDomains"

	var total int64
	if err := p.pool.QueryRow(ctx, `SELECT COUNT(*) FROM domain_configs`).Scan(&total); err != nil {
		p.logger.Error("db count failed", slog.String("op", op), slog.Any("error", err))
		return 0, e.WrapError(ctx, op, err)
	}
	return total, nil
}

func (p *CatalogRepo) GetDomain(ctx context.Context, name string) (*domain.DomainConfig, error) {
	const op = "postgres.Catalog.GetDomain"

	const query = `
		SELECT id, domain_name, admin_code, supervisor_code, resource_code, created_at, updated_at
		FROM domain_configs
		WHERE domain_name = $1
	`

	var cfg domain.DomainConfig
	err := p.pool.QueryRow(ctx, query, name).Scan(
		&cfg.ID,
		&cfg.Name,
		&cfg.AdminCode,
		&cfg.SupervisorCode,
		&cfg.ResourceCode,
		&cfg.CreatedAt,
		&cfg.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return &cfg, nil
}

func (p *CatalogRepo) GetIncidentType(ctx context.Context, name string) (*domain.IncidentType, error) {
	const op = "postgres.Catalog.GetIncidentType"

	const query = `
		SELECT id, domain_id, name, details_schema
		FROM incident_types
		WHERE name = $1
	`

	var t domain.IncidentType
	err := p.pool.QueryRow(ctx, query, name).Scan(&t.ID, &t.DomainID, &t.Name, &t.DetailsSchema)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return &t, nil
}

func (p *CatalogRepo) GetResource(ctx context.Context, id uuid.UUID) (*domain.Resource, error) {
	const op = "postgres.Catalog.GetResource"

	const query = `
		SELECT r.id, r.name, r.is_active, r.created_at,
			rt.id, rt.name, rt.is_able_to_contain_resources
		FROM resources r
		JOIN resource_types rt ON rt.id = r.type_id
		WHERE r.id = $1
	`

	var res domain.Resource
	err := p.pool.QueryRow(ctx, query, id).Scan(
		&res.ID,
		&res.Name,
		&res.Active,
		&res.CreatedAt,
		&res.Type.ID,
		&res.Type.Name,
		&res.Type.AbleToContainResources,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return &res, nil
}

func (p *CatalogRepo) ListIncidentTypes(ctx context.Context, domainID uuid.UUID) ([]domain.IncidentType, error) {
	const op = "postgres.Catalog.ListIncidentTypes"

	const query = `
		SELECT id, domain_id, name, details_schema
		FROM incident_types
		WHERE domain_id = $1
		ORDER BY name
	`

	rows, err := p.pool.Query(ctx, query, domainID)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var types []domain.IncidentType
	for rows.Next() {
		var t domain.IncidentType
		if err := rows.Scan(&t.ID, &t.DomainID, &t.Name, &t.DetailsSchema); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		types = append(types, t)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return types, nil
}

func (p *CatalogRepo) ListResourceTypes(ctx context.Context, domainID uuid.UUID) ([]domain.ResourceType, error) {
	const op = "postgres.Catalog.ListResourceTypes"

	const query = `
		SELECT id, name, is_able_to_contain_resources
		FROM resource_types
		WHERE domain_id = $1
		ORDER BY name
	`

	rows, err := p.pool.Query(ctx, query, domainID)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var types []domain.ResourceType
	for rows.Next() {
		var t domain.ResourceType
		if err := rows.Scan(&t.ID, &t.Name, &t.AbleToContainResources); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		types = append(types, t)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return types, nil
}
