package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/tesis-cabal-cugno-moreyra/backend/internal/domain"
	"github.com/tesis-cabal-cugno-moreyra/backend/pkg/e"
)

type telemetryService struct {
	incidents   IncidentRepository
	assignments AssignmentRepository
	telemetry   TelemetryRepository
	catalog     CatalogRepository
	broadcaster Broadcaster
	logger      *slog.Logger
}

func NewTelemetryService(
	incidents IncidentRepository,
	assignments AssignmentRepository,
	telemetry TelemetryRepository,
	catalog CatalogRepository,
	broadcaster Broadcaster,
	logger *slog.Logger,
) TelemetryService {
	return &telemetryService{
		incidents:   incidents,
		assignments: assignments,
		telemetry:   telemetry,
		catalog:     catalog,
		broadcaster: broadcaster,
		logger:      logger,
	}
}

// validateSubmission runs the shared checks for any telemetry write:
// incident Started, resource present with an active user, assignment
// linking the two.
func (s *telemetryService) validateSubmission(ctx context.Context, incidentID, resourceID uuid.UUID) (*domain.Assignment, error) {
	inc, err := s.incidents.Get(ctx, incidentID)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, e.Fieldf("incident_id", e.ErrNotFound,
				"Incident with id %s does not exist", incidentID)
		}
		return nil, err
	}
	if inc.Status != domain.IncidentStarted {
		return nil, e.Fieldf("incident_id", e.ErrInvalidState,
			"Incident with id %s is not at Created state", incidentID)
	}

	res, err := s.catalog.GetResource(ctx, resourceID)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, e.Fieldf("resource_id", e.ErrNotFound,
				"Resource with id %s does not exist", resourceID)
		}
		return nil, err
	}
	if !res.Active {
		return nil, e.Fieldf("resource_id", e.ErrInactiveResource,
			"User related to Resource with id %s is not active", resourceID)
	}

	assignment, err := s.assignments.Get(ctx, incidentID, resourceID)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, e.Fieldf("resource_id", e.ErrNotAssigned,
				"Resource with id %s is not related to Incident with id %s", resourceID, incidentID)
		}
		return nil, err
	}

	return assignment, nil
}

func (s *telemetryService) broadcast(ctx context.Context, eventType domain.EventType, incidentID uuid.UUID, data any) {
	err := s.broadcaster.Publish(ctx, domain.IncidentEvent{
		Type:       eventType,
		IncidentID: incidentID,
		Data:       data,
	})
	if err != nil {
		s.logger.Error("broadcast publish failed",
			slog.String("event", string(eventType)),
			slog.String("incident_id", incidentID.String()),
			slog.Any("error", err),
		)
	}
}

func (s *telemetryService) RecordMapPoint(ctx context.Context, incidentID, resourceID uuid.UUID, req domain.CreateMapPointRequest) (*domain.MapPoint, error) {
	if !req.Location.Valid() {
		return nil, e.Fieldf("location", e.ErrValidation,
			"Location must be a valid GeoJSON Point")
	}

	assignment, err := s.validateSubmission(ctx, incidentID, resourceID)
	if err != nil {
		return nil, err
	}

	point := &domain.MapPoint{
		IncidentID:   incidentID,
		AssignmentID: assignment.ID,
		ResourceID:   resourceID,
		Location:     req.Location,
		Comment:      req.Comment,
		ObservedAt:   req.ObservedAt,
	}
	if err := s.telemetry.CreateMapPoint(ctx, point); err != nil {
		return nil, err
	}

	s.broadcast(ctx, domain.EventMapPoint, incidentID, point)
	return point, nil
}

func (s *telemetryService) RecordTrackPoint(ctx context.Context, incidentID, resourceID uuid.UUID, req domain.CreateTrackPointRequest) (*domain.TrackPoint, error) {
	points, err := s.RecordTrackPoints(ctx, incidentID, resourceID, []domain.CreateTrackPointRequest{req})
	if err != nil {
		return nil, err
	}
	return points[0], nil
}

func (s *telemetryService) RecordTrackPoints(ctx context.Context, incidentID, resourceID uuid.UUID, reqs []domain.CreateTrackPointRequest) ([]*domain.TrackPoint, error) {
	if len(reqs) == 0 {
		return nil, e.Fieldf("track_points", e.ErrValidation, "At least one track point is required")
	}
	for _, req := range reqs {
		if !req.Location.Valid() {
			return nil, e.Fieldf("location", e.ErrValidation,
				"Location must be a valid GeoJSON Point")
		}
	}

	assignment, err := s.validateSubmission(ctx, incidentID, resourceID)
	if err != nil {
		return nil, err
	}

	points := make([]*domain.TrackPoint, 0, len(reqs))
	for _, req := range reqs {
		points = append(points, &domain.TrackPoint{
			IncidentID:   incidentID,
			AssignmentID: assignment.ID,
			ResourceID:   resourceID,
			Location:     req.Location,
			ObservedAt:   req.ObservedAt,
		})
	}

	if err := s.telemetry.CreateTrackPoints(ctx, points); err != nil {
		return nil, err
	}

	for _, point := range points {
		s.broadcast(ctx, domain.EventTrackPoint, incidentID, point)
	}
	return points, nil
}

func (s *telemetryService) ListMapPoints(ctx context.Context, incidentID uuid.UUID, filter domain.PointFilter) ([]*domain.MapPoint, error) {
	if err := s.requireIncident(ctx, incidentID); err != nil {
		return nil, err
	}
	return s.telemetry.ListMapPoints(ctx, incidentID, filter)
}

func (s *telemetryService) ListTrackPoints(ctx context.Context, incidentID uuid.UUID, filter domain.PointFilter) ([]*domain.TrackPoint, error) {
	if err := s.requireIncident(ctx, incidentID); err != nil {
		return nil, err
	}
	return s.telemetry.ListTrackPoints(ctx, incidentID, filter)
}

func (s *telemetryService) requireIncident(ctx context.Context, incidentID uuid.UUID) error {
	if _, err := s.incidents.Get(ctx, incidentID); err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return e.Fieldf("incident_id", e.ErrNotFound,
				"Incident with id %s does not exist", incidentID)
		}
		return err
	}
	return nil
}
