package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/tesis-cabal-cugno-moreyra/backend/internal/domain"
	"github.com/tesis-cabal-cugno-moreyra/backend/pkg/e"
)

type catalogService struct {
	catalog   CatalogRepository
	snapshots SnapshotCache
	logger    *slog.Logger
}

func NewCatalogService(catalog CatalogRepository, snapshots SnapshotCache, logger *slog.Logger) CatalogService {
	return &catalogService{
		catalog:   catalog,
		snapshots: snapshots,
		logger:    logger,
	}
}

func (s *catalogService) CreateDomain(ctx context.Context, req domain.CreateDomainRequest) (*domain.DomainConfig, error) {
	total, err := s.catalog.CountDomains(ctx)
	if err != nil {
		return nil, err
	}
	// single active domain per deployment
	if total > 0 {
		return nil, e.Fieldf("domain_name", e.ErrValidation,
			"A domain already exists, only one domain is allowed")
	}

	cfg := &domain.DomainConfig{
		Name:           req.Name,
		AdminCode:      req.AdminCode,
		SupervisorCode: req.SupervisorCode,
		ResourceCode:   req.ResourceCode,
	}
	if err := s.catalog.CreateDomain(ctx, cfg); err != nil {
		if errors.Is(err, e.ErrUniqueViolation) {
			return nil, e.Fieldf("domain_name", e.ErrValidation,
				"Domain %s already exists", req.Name)
		}
		return nil, err
	}

	if _, err := s.RebuildSnapshot(ctx, cfg.Name); err != nil {
		s.logger.Error("snapshot rebuild after domain create failed",
			slog.String("domain", cfg.Name),
			slog.Any("error", err),
		)
	}

	return cfg, nil
}

// RebuildSnapshot re-serializes the whole domain config tree into the
// cache. Idempotent; called synchronously after catalog writes instead
// of from an implicit save hook.
func (s *catalogService) RebuildSnapshot(ctx context.Context, domainName string) (*domain.DomainSnapshot, error) {
	cfg, err := s.catalog.GetDomain(ctx, domainName)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, e.Fieldf("domain_name", e.ErrNotFound,
				"Domain %s does not exist", domainName)
		}
		return nil, err
	}

	incidentTypes, err := s.catalog.ListIncidentTypes(ctx, cfg.ID)
	if err != nil {
		return nil, err
	}
	resourceTypes, err := s.catalog.ListResourceTypes(ctx, cfg.ID)
	if err != nil {
		return nil, err
	}

	snapshot := &domain.DomainSnapshot{
		Domain:        *cfg,
		IncidentTypes: incidentTypes,
		ResourceTypes: resourceTypes,
		RebuiltAt:     time.Now().UTC(),
	}

	if err := s.snapshots.Set(ctx, snapshot, 0); err != nil {
		return nil, err
	}

	return snapshot, nil
}
