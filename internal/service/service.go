package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/tesis-cabal-cugno-moreyra/backend/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go

type IncidentRepository interface {
	Create(ctx context.Context, incident *domain.Incident) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Incident, error)
	List(ctx context.Context, req domain.ListIncidentsRequest) ([]*domain.Incident, int64, error)
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

type Broadcaster interface {
	Publish(ctx context.Context, event domain.IncidentEvent) error
}

type PushQueue interface {
	Enqueue(ctx context.Context, notification domain.PushNotification) error
}

type SnapshotCache interface {
	Set(ctx context.Context, snapshot *domain.DomainSnapshot, ttl time.Duration) error
}

type IncidentService interface {
	Create(ctx context.Context, req domain.CreateIncidentRequest) (*domain.Incident, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Incident, error)
	List(ctx context.Context, req domain.ListIncidentsRequest) ([]*domain.Incident, int64, error)
	Finalize(ctx context.Context, id uuid.UUID) (*domain.Incident, error)
	Cancel(ctx context.Context, id uuid.UUID) (*domain.Incident, error)
	SetExternalAssistance(ctx context.Context, id uuid.UUID, value domain.ExternalAssistance) (*domain.Incident, error)
	ValidateDetails(ctx context.Context, id uuid.UUID, details json.RawMessage) (*domain.Incident, error)
}

type AssignmentService interface {
	Join(ctx context.Context, incidentID, resourceID uuid.UUID, container *uuid.UUID) (*domain.Assignment, error)
	UpdateContainer(ctx context.Context, incidentID, resourceID uuid.UUID, container *uuid.UUID) (*domain.Assignment, error)
	Leave(ctx context.Context, incidentID, resourceID uuid.UUID) (*domain.Assignment, error)
	List(ctx context.Context, incidentID uuid.UUID, filter domain.AssignmentFilter) ([]*domain.AssignmentListItem, int64, error)
}

type TelemetryService interface {
	RecordMapPoint(ctx context.Context, incidentID, resourceID uuid.UUID, req domain.CreateMapPointRequest) (*domain.MapPoint, error)
	RecordTrackPoint(ctx context.Context, incidentID, resourceID uuid.UUID, req domain.CreateTrackPointRequest) (*domain.TrackPoint, error)
	RecordTrackPoints(ctx context.Context, incidentID, resourceID uuid.UUID, reqs []domain.CreateTrackPointRequest) ([]*domain.TrackPoint, error)
	ListMapPoints(ctx context.Context, incidentID uuid.UUID, filter domain.PointFilter) ([]*domain.MapPoint, error)
	ListTrackPoints(ctx context.Context, incidentID uuid.UUID, filter domain.PointFilter) ([]*domain.TrackPoint, error)
}

type CatalogService interface {
	CreateDomain(ctx context.Context, req domain.CreateDomainRequest) (*domain.DomainConfig, error)
	RebuildSnapshot(ctx context.Context, domainName string) (*domain.DomainSnapshot, error)
}

// NotificationTrigger fires after a lifecycle transition has been
// committed. Best-effort: implementations never return errors to the
// triggering operation.
type NotificationTrigger interface {
	NotifyFinalized(ctx context.Context, incidentID uuid.UUID, resourceIDs []uuid.UUID)
	NotifyCancelled(ctx context.Context, incidentID uuid.UUID, resourceIDs []uuid.UUID)
}

type Service struct {
	Incidents   IncidentService
	Assignments AssignmentService
	Telemetry   TelemetryService
	Catalog     CatalogService
}

func NewService(
	incidents IncidentService,
	assignments AssignmentService,
	telemetry TelemetryService,
	catalog CatalogService,
) *Service {
	return &Service{
		Incidents:   incidents,
		Assignments: assignments,
		Telemetry:   telemetry,
		Catalog:     catalog,
	}
}
