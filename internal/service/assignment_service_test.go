package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/tesis-cabal-cugno-moreyra/backend/internal/domain"
	"github.com/tesis-cabal-cugno-moreyra/backend/internal/service"
	mock_service "github.com/tesis-cabal-cugno-moreyra/backend/internal/service/mocks"
	"github.com/tesis-cabal-cugno-moreyra/backend/pkg/e"
)

type assignmentMocks struct {
	incidents   *mock_service.MockIncidentRepository
	assignments *mock_service.MockAssignmentRepository
	catalog     *mock_service.MockCatalogRepository
}

func newAssignmentService(t *testing.T) (service.AssignmentService, assignmentMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := assignmentMocks{
		incidents:   mock_service.NewMockIncidentRepository(ctrl),
		assignments: mock_service.NewMockAssignmentRepository(ctrl),
		catalog:     mock_service.NewMockCatalogRepository(ctrl),
	}
	svc := service.NewAssignmentService(m.incidents, m.assignments, m.catalog, newTestLogger())
	return svc, m
}

func activeResource(id uuid.UUID, ableToContain bool) *domain.Resource {
	return &domain.Resource{
		ID:     id,
		Name:   "unit-7",
		Active: true,
		Type:   domain.ResourceType{Name: "brigade", AbleToContainResources: ableToContain},
	}
}

func TestJoin_CreatesAssignment(t *testing.T) {
	t.Parallel()

	svc, m := newAssignmentService(t)

	incidentID, resourceID := uuid.New(), uuid.New()

	m.incidents.EXPECT().Get(gomock.Any(), incidentID).Return(startedIncident(incidentID), nil)
	m.catalog.EXPECT().GetResource(gomock.Any(), resourceID).Return(activeResource(resourceID, false), nil)
	m.assignments.EXPECT().Get(gomock.Any(), incidentID, resourceID).Return(nil, e.ErrNotFound)
	m.assignments.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	assignment, err := svc.Join(context.Background(), incidentID, resourceID, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if assignment.IncidentID != incidentID || assignment.ResourceID != resourceID {
		t.Fatalf("assignment has wrong ids: %+v", assignment)
	}
	if !assignment.Active() {
		t.Fatal("new assignment must be active")
	}
}

func TestJoin_AlreadyJoined(t *testing.T) {
	t.Parallel()

	svc, m := newAssignmentService(t)

	incidentID, resourceID := uuid.New(), uuid.New()

	m.incidents.EXPECT().Get(gomock.Any(), incidentID).Return(startedIncident(incidentID), nil)
	m.catalog.EXPECT().GetResource(gomock.Any(), resourceID).Return(activeResource(resourceID, false), nil)
	m.assignments.EXPECT().Get(gomock.Any(), incidentID, resourceID).
		Return(&domain.Assignment{ID: uuid.New(), IncidentID: incidentID, ResourceID: resourceID}, nil)

	_, err := svc.Join(context.Background(), incidentID, resourceID, nil)
	if !errors.Is(err, e.ErrAlreadyJoined) {
		t.Fatalf("expected ErrAlreadyJoined, got %v", err)
	}
	if e.FieldOf(err) != "resource_id" {
		t.Fatalf("expected field resource_id, got %s", e.FieldOf(err))
	}
}

func TestJoin_ReopensClosedAssignment(t *testing.T) {
	t.Parallel()

	svc, m := newAssignmentService(t)

	incidentID, resourceID := uuid.New(), uuid.New()
	exited := time.Now().UTC()
	closed := &domain.Assignment{ID: uuid.New(), IncidentID: incidentID, ResourceID: resourceID, ExitedAt: &exited}

	m.incidents.EXPECT().Get(gomock.Any(), incidentID).Return(startedIncident(incidentID), nil)
	m.catalog.EXPECT().GetResource(gomock.Any(), resourceID).Return(activeResource(resourceID, false), nil)
	m.assignments.EXPECT().Get(gomock.Any(), incidentID, resourceID).Return(closed, nil)
	m.assignments.EXPECT().Reopen(gomock.Any(), closed.ID, gomock.Nil()).
		Return(&domain.Assignment{ID: closed.ID, IncidentID: incidentID, ResourceID: resourceID}, nil)

	assignment, err := svc.Join(context.Background(), incidentID, resourceID, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !assignment.Active() {
		t.Fatal("reopened assignment must be active")
	}
}

func TestJoin_RaceFallsBackToAlreadyJoined(t *testing.T) {
	t.Parallel()

	svc, m := newAssignmentService(t)

	incidentID, resourceID := uuid.New(), uuid.New()

	m.incidents.EXPECT().Get(gomock.Any(), incidentID).Return(startedIncident(incidentID), nil)
	m.catalog.EXPECT().GetResource(gomock.Any(), resourceID).Return(activeResource(resourceID, false), nil)
	m.assignments.EXPECT().Get(gomock.Any(), incidentID, resourceID).Return(nil, e.ErrNotFound)
	m.assignments.EXPECT().Create(gomock.Any(), gomock.Any()).Return(e.ErrUniqueViolation)

	_, err := svc.Join(context.Background(), incidentID, resourceID, nil)
	if !errors.Is(err, e.ErrAlreadyJoined) {
		t.Fatalf("expected ErrAlreadyJoined, got %v", err)
	}
}

func TestJoin_IncidentNotStarted(t *testing.T) {
	t.Parallel()

	svc, m := newAssignmentService(t)

	incidentID := uuid.New()
	finalized := startedIncident(incidentID)
	finalized.Status = domain.IncidentFinalized

	m.incidents.EXPECT().Get(gomock.Any(), incidentID).Return(finalized, nil)

	_, err := svc.Join(context.Background(), incidentID, uuid.New(), nil)
	if !errors.Is(err, e.ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState, got %v", err)
	}
}

func TestJoin_InactiveResource(t *testing.T) {
	t.Parallel()

	svc, m := newAssignmentService(t)

	incidentID, resourceID := uuid.New(), uuid.New()
	inactive := activeResource(resourceID, false)
	inactive.Active = false

	m.incidents.EXPECT().Get(gomock.Any(), incidentID).Return(startedIncident(incidentID), nil)
	m.catalog.EXPECT().GetResource(gomock.Any(), resourceID).Return(inactive, nil)

	_, err := svc.Join(context.Background(), incidentID, resourceID, nil)
	if !errors.Is(err, e.ErrInactiveResource) {
		t.Fatalf("expected ErrInactiveResource, got %v", err)
	}
}

func TestJoin_ContainerOnContainerRejected(t *testing.T) {
	t.Parallel()

	svc, m := newAssignmentService(t)

	incidentID, resourceID, containerID := uuid.New(), uuid.New(), uuid.New()

	m.incidents.EXPECT().Get(gomock.Any(), incidentID).Return(startedIncident(incidentID), nil)
	m.catalog.EXPECT().GetResource(gomock.Any(), resourceID).Return(activeResource(resourceID, true), nil)

	_, err := svc.Join(context.Background(), incidentID, resourceID, &containerID)
	if !errors.Is(err, e.ErrContainerConflict) {
		t.Fatalf("expected ErrContainerConflict, got %v", err)
	}
}

func TestJoin_ContainerMustBeAbleToContain(t *testing.T) {
	t.Parallel()

	svc, m := newAssignmentService(t)

	incidentID, resourceID, containerID := uuid.New(), uuid.New(), uuid.New()

	m.incidents.EXPECT().Get(gomock.Any(), incidentID).Return(startedIncident(incidentID), nil)
	m.catalog.EXPECT().GetResource(gomock.Any(), resourceID).Return(activeResource(resourceID, false), nil)
	m.catalog.EXPECT().GetResource(gomock.Any(), containerID).Return(activeResource(containerID, false), nil)

	_, err := svc.Join(context.Background(), incidentID, resourceID, &containerID)
	if !errors.Is(err, e.ErrContainerCapability) {
		t.Fatalf("expected ErrContainerCapability, got %v", err)
	}
}

func TestJoin_WithContainer_AutoJoinsContainer(t *testing.T) {
	t.Parallel()

	svc, m := newAssignmentService(t)

	incidentID, resourceID, containerID := uuid.New(), uuid.New(), uuid.New()

	m.incidents.EXPECT().Get(gomock.Any(), incidentID).Return(startedIncident(incidentID), nil)
	m.catalog.EXPECT().GetResource(gomock.Any(), resourceID).Return(activeResource(resourceID, false), nil)
	m.catalog.EXPECT().GetResource(gomock.Any(), containerID).Return(activeResource(containerID, true), nil)

	m.assignments.EXPECT().Get(gomock.Any(), incidentID, containerID).Return(nil, e.ErrNotFound)
	m.assignments.EXPECT().Create(gomock.Any(), &domain.Assignment{IncidentID: incidentID, ResourceID: containerID}).Return(nil)

	m.assignments.EXPECT().Get(gomock.Any(), incidentID, resourceID).Return(nil, e.ErrNotFound)
	m.assignments.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	assignment, err := svc.Join(context.Background(), incidentID, resourceID, &containerID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if assignment.ContainerResourceID == nil || *assignment.ContainerResourceID != containerID {
		t.Fatalf("expected container %s, got %v", containerID, assignment.ContainerResourceID)
	}
}

func TestUpdateContainer_ClearsContainer(t *testing.T) {
	t.Parallel()

	svc, m := newAssignmentService(t)

	incidentID, resourceID := uuid.New(), uuid.New()
	containerID := uuid.New()
	existing := &domain.Assignment{
		ID:                  uuid.New(),
		IncidentID:          incidentID,
		ResourceID:          resourceID,
		ContainerResourceID: &containerID,
	}

	m.incidents.EXPECT().Get(gomock.Any(), incidentID).Return(startedIncident(incidentID), nil)
	m.catalog.EXPECT().GetResource(gomock.Any(), resourceID).Return(activeResource(resourceID, false), nil)
	m.assignments.EXPECT().Get(gomock.Any(), incidentID, resourceID).Return(existing, nil)
	m.assignments.EXPECT().SetContainer(gomock.Any(), existing.ID, gomock.Nil()).
		Return(&domain.Assignment{ID: existing.ID, IncidentID: incidentID, ResourceID: resourceID}, nil)

	updated, err := svc.UpdateContainer(context.Background(), incidentID, resourceID, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.ContainerResourceID != nil {
		t.Fatal("expected container cleared")
	}
}

func TestUpdateContainer_NotAssigned(t *testing.T) {
	t.Parallel()

	svc, m := newAssignmentService(t)

	incidentID, resourceID := uuid.New(), uuid.New()

	m.incidents.EXPECT().Get(gomock.Any(), incidentID).Return(startedIncident(incidentID), nil)
	m.catalog.EXPECT().GetResource(gomock.Any(), resourceID).Return(activeResource(resourceID, false), nil)
	m.assignments.EXPECT().Get(gomock.Any(), incidentID, resourceID).Return(nil, e.ErrNotFound)

	_, err := svc.UpdateContainer(context.Background(), incidentID, resourceID, nil)
	if !errors.Is(err, e.ErrNotAssigned) {
		t.Fatalf("expected ErrNotAssigned, got %v", err)
	}
}

func TestLeave_ClosesAssignment(t *testing.T) {
	t.Parallel()

	svc, m := newAssignmentService(t)

	incidentID, resourceID := uuid.New(), uuid.New()
	exited := time.Now().UTC()

	m.incidents.EXPECT().Get(gomock.Any(), incidentID).Return(startedIncident(incidentID), nil)
	m.catalog.EXPECT().GetResource(gomock.Any(), resourceID).Return(activeResource(resourceID, false), nil)
	m.assignments.EXPECT().Close(gomock.Any(), incidentID, resourceID, gomock.Any()).
		Return(&domain.Assignment{ID: uuid.New(), IncidentID: incidentID, ResourceID: resourceID, ExitedAt: &exited}, nil)

	closed, err := svc.Leave(context.Background(), incidentID, resourceID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if closed.Active() {
		t.Fatal("closed assignment must not be active")
	}
}

func TestLeave_NotAssigned(t *testing.T) {
	t.Parallel()

	svc, m := newAssignmentService(t)

	incidentID, resourceID := uuid.New(), uuid.New()

	m.incidents.EXPECT().Get(gomock.Any(), incidentID).Return(startedIncident(incidentID), nil)
	m.catalog.EXPECT().GetResource(gomock.Any(), resourceID).Return(activeResource(resourceID, false), nil)
	m.assignments.EXPECT().Close(gomock.Any(), incidentID, resourceID, gomock.Any()).Return(nil, e.ErrNotFound)

	_, err := svc.Leave(context.Background(), incidentID, resourceID)
	if !errors.Is(err, e.ErrNotAssigned) {
		t.Fatalf("expected ErrNotAssigned, got %v", err)
	}
}

func TestAssignmentList_UnknownIncident(t *testing.T) {
	t.Parallel()

	svc, m := newAssignmentService(t)

	incidentID := uuid.New()
	m.incidents.EXPECT().Get(gomock.Any(), incidentID).Return(nil, e.ErrNotFound)

	_, _, err := svc.List(context.Background(), incidentID, domain.AssignmentFilter{})
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
