package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/tesis-cabal-cugno-moreyra/backend/internal/domain"
	"github.com/tesis-cabal-cugno-moreyra/backend/pkg/e"
)

type assignmentService struct {
	incidents   IncidentRepository
	assignments AssignmentRepository
	catalog     CatalogRepository
	logger      *slog.Logger
}

func NewAssignmentService(
	incidents IncidentRepository,
	assignments AssignmentRepository,
	catalog CatalogRepository,
	logger *slog.Logger,
) AssignmentService {
	return &assignmentService{
		incidents:   incidents,
		assignments: assignments,
		catalog:     catalog,
		logger:      logger,
	}
}

// requireStartedIncident loads the incident and rejects anything past
// the Started state.
func (s *assignmentService) requireStartedIncident(ctx context.Context, incidentID uuid.UUID) (*domain.Incident, error) {
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
	return inc, nil
}

func (s *assignmentService) requireActiveResource(ctx context.Context, resourceID uuid.UUID, field string) (*domain.Resource, error) {
	res, err := s.catalog.GetResource(ctx, resourceID)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, e.Fieldf(field, e.ErrNotFound,
				"Resource with id %s does not exist", resourceID)
		}
		return nil, err
	}
	if !res.Active {
		return nil, e.Fieldf(field, e.ErrInactiveResource,
			"User related to Resource with id %s is not active", resourceID)
	}
	return res, nil
}

func (s *assignmentService) checkContainer(ctx context.Context, resource *domain.Resource, container *uuid.UUID) error {
	if container == nil {
		return nil
	}
	if resource.Type.AbleToContainResources {
		return e.Fieldf("container_resource_id", e.ErrContainerConflict,
			"Resource able to contain resources cannot have a container")
	}
	containerRes, err := s.catalog.GetResource(ctx, *container)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return e.Fieldf("container_resource_id", e.ErrNotFound,
				"Resource with id %s does not exist", *container)
		}
		return err
	}
	if !containerRes.Type.AbleToContainResources {
		return e.Fieldf("container_resource_id", e.ErrContainerCapability,
			"Container resource must be able to contain resources")
	}
	return nil
}

// ensureContainerAssigned guarantees the container resource has an
// active assignment on the incident, creating or reopening as needed.
func (s *assignmentService) ensureContainerAssigned(ctx context.Context, incidentID, containerID uuid.UUID) error {
	existing, err := s.assignments.Get(ctx, incidentID, containerID)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return s.assignments.Create(ctx, &domain.Assignment{
				IncidentID: incidentID,
				ResourceID: containerID,
			})
		}
		return err
	}
	if !existing.Active() {
		// containers never carry a container of their own
		_, err := s.assignments.Reopen(ctx, existing.ID, nil)
		return err
	}
	return nil
}

func (s *assignmentService) Join(ctx context.Context, incidentID, resourceID uuid.UUID, container *uuid.UUID) (*domain.Assignment, error) {
	if _, err := s.requireStartedIncident(ctx, incidentID); err != nil {
		return nil, err
	}
	resource, err := s.requireActiveResource(ctx, resourceID, "resource_id")
	if err != nil {
		return nil, err
	}
	if err := s.checkContainer(ctx, resource, container); err != nil {
		return nil, err
	}
	if container != nil {
		if err := s.ensureContainerAssigned(ctx, incidentID, *container); err != nil {
			return nil, err
		}
	}

	existing, err := s.assignments.Get(ctx, incidentID, resourceID)
	switch {
	case err == nil && existing.Active():
		return nil, e.Fieldf("resource_id", e.ErrAlreadyJoined,
			"Resource with id %s already joined to Incident with id %s", resourceID, incidentID)
	case err == nil:
		reopened, err := s.assignments.Reopen(ctx, existing.ID, container)
		if err != nil {
			return nil, err
		}
		s.logger.Info("assignment reopened",
			slog.String("incident_id", incidentID.String()),
			slog.String("resource_id", resourceID.String()),
		)
		return reopened, nil
	case errors.Is(err, e.ErrNotFound):
		// fall through to create
	default:
		return nil, err
	}

	assignment := &domain.Assignment{
		IncidentID:          incidentID,
		ResourceID:          resourceID,
		ContainerResourceID: container,
	}
	if err := s.assignments.Create(ctx, assignment); err != nil {
		if errors.Is(err, e.ErrUniqueViolation) {
			// concurrent join won the race
			return nil, e.Fieldf("resource_id", e.ErrAlreadyJoined,
				"Resource with id %s already joined to Incident with id %s", resourceID, incidentID)
		}
		return nil, err
	}

	s.logger.Info("assignment created",
		slog.String("incident_id", incidentID.String()),
		slog.String("resource_id", resourceID.String()),
	)
	return assignment, nil
}

func (s *assignmentService) UpdateContainer(ctx context.Context, incidentID, resourceID uuid.UUID, container *uuid.UUID) (*domain.Assignment, error) {
	if _, err := s.requireStartedIncident(ctx, incidentID); err != nil {
		return nil, err
	}
	resource, err := s.requireActiveResource(ctx, resourceID, "resource_id")
	if err != nil {
		return nil, err
	}
	if err := s.checkContainer(ctx, resource, container); err != nil {
		return nil, err
	}

	existing, err := s.assignments.Get(ctx, incidentID, resourceID)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, e.Fieldf("resource_id", e.ErrNotAssigned,
				"Resource with id %s is not related to Incident with id %s", resourceID, incidentID)
		}
		return nil, err
	}
	if !existing.Active() {
		return nil, e.Fieldf("resource_id", e.ErrNotAssigned,
			"Resource with id %s is not related to Incident with id %s", resourceID, incidentID)
	}

	if container != nil {
		if err := s.ensureContainerAssigned(ctx, incidentID, *container); err != nil {
			return nil, err
		}
	}

	return s.assignments.SetContainer(ctx, existing.ID, container)
}

func (s *assignmentService) Leave(ctx context.Context, incidentID, resourceID uuid.UUID) (*domain.Assignment, error) {
	if _, err := s.requireStartedIncident(ctx, incidentID); err != nil {
		return nil, err
	}
	if _, err := s.requireActiveResource(ctx, resourceID, "resource_id"); err != nil {
		return nil, err
	}

	closed, err := s.assignments.Close(ctx, incidentID, resourceID, time.Now().UTC())
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, e.Fieldf("resource_id", e.ErrNotAssigned,
				"Resource with id %s is not related to Incident with id %s", resourceID, incidentID)
		}
		return nil, err
	}

	s.logger.Info("assignment closed",
		slog.String("incident_id", incidentID.String()),
		slog.String("resource_id", resourceID.String()),
	)
	return closed, nil
}

func (s *assignmentService) List(ctx context.Context, incidentID uuid.UUID, filter domain.AssignmentFilter) ([]*domain.AssignmentListItem, int64, error) {
	if _, err := s.incidents.Get(ctx, incidentID); err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, 0, e.Fieldf("incident_id", e.ErrNotFound,
				"Incident with id %s does not exist", incidentID)
		}
		return nil, 0, err
	}
	return s.assignments.List(ctx, incidentID, filter)
}
