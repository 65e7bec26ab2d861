package postgres

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/tesis-cabal-cugno-moreyra/backend/internal/domain"
)

type IncidentRepository interface {
	Create(ctx context.Context, incident *domain.Incident) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Incident, error)
	List(ctx context.Context, req domain.ListIncidentsRequest) ([]*domain.Incident, int64, error)
	// Transition moves the incident into a terminal state with a
	// compare-and-set on Started, closes all active assignments in
	// the same transaction and returns the resource ids that were
	// active at transition time.
	Transition(ctx context.Context, id uuid.UUID, target domain.IncidentStatus, at time.Time) (*domain.Incident, []uuid.UUID, error)
	SetExternalAssistance(ctx context.Context, id uuid.UUID, value domain.ExternalAssistance) error
	SetDetails(ctx context.Context, id uuid.UUID, details json.RawMessage) error
}

type AssignmentRepository interface {
	Get(ctx context.Context, incidentID, resourceID uuid.UUID) (*domain.Assignment, error)
	Create(ctx context.Context, assignment *domain.Assignment) error
	Reopen(ctx context.Context, id uuid.UUID, container *uuid.UUID) (*domain.Assignment, error)
	SetContainer(ctx context.Context, id uuid.UUID, container *uuid.UUID) (*domain.Assignment, error)
	Close(ctx context.Context, incidentID, resourceID uuid.UUID, at time.Time) (*domain.Assignment, error)
	List(ctx context.Context, incidentID uuid.UUID, filter domain.AssignmentFilter) ([]*domain.AssignmentListItem, int64, error)
}

type TelemetryRepository interface {
	CreateMapPoint(ctx context.Context, point *domain.MapPoint) error
	CreateTrackPoints(ctx context.Context, points []*domain.TrackPoint) error
	ListMapPoints(ctx context.Context, incidentID uuid.UUID, filter domain.PointFilter) ([]*domain.MapPoint, error)
	ListTrackPoints(ctx context.Context, incidentID uuid.UUID, filter domain.PointFilter) ([]*domain.TrackPoint, error)
}

type CatalogRepository interface {
	CreateDomain(ctx context.Context, cfg *domain.DomainConfig) error
	CountDomains(ctx context.Context) (int64, error)
	GetDomain(ctx context.Context, name string) (*domain.DomainConfig, error)
	GetIncidentType(ctx context.Context, name string) (*domain.IncidentType, error)
	GetResource(ctx context.Context, id uuid.UUID) (*domain.Resource, error)
	ListIncidentTypes(ctx context.Context, domainID uuid.UUID) ([]domain.IncidentType, error)
	ListResourceTypes(ctx context.Context, domainID uuid.UUID) ([]domain.ResourceType, error)
}
