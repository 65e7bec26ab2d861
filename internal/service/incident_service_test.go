package service_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/tesis-cabal-cugno-moreyra/backend/internal/domain"
	"github.com/tesis-cabal-cugno-moreyra/backend/internal/service"
	mock_service "github.com/tesis-cabal-cugno-moreyra/backend/internal/service/mocks"
	"github.com/tesis-cabal-cugno-moreyra/backend/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func startedIncident(id uuid.UUID) *domain.Incident {
	return &domain.Incident{
		ID:                 id,
		DomainName:         "firefighters",
		IncidentTypeName:   "forest_fire",
		ExternalAssistance: domain.WithoutExternalSupport,
		Status:             domain.IncidentStarted,
		DataStatus:         domain.DataIncomplete,
		Location:           domain.NewPoint(-58.38, -34.6),
	}
}

func TestIncidentCreate_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	incidents := mock_service.NewMockIncidentRepository(ctrl)
	catalog := mock_service.NewMockCatalogRepository(ctrl)
	notifier := mock_service.NewMockNotificationTrigger(ctrl)

	svc := service.NewIncidentService(incidents, catalog, notifier, newTestLogger())

	domainID := uuid.New()
	cfg := &domain.DomainConfig{ID: domainID, Name: "firefighters"}
	incType := &domain.IncidentType{ID: uuid.New(), DomainID: domainID, Name: "forest_fire"}

	catalog.EXPECT().GetDomain(gomock.Any(), "firefighters").Return(cfg, nil)
	catalog.EXPECT().GetIncidentType(gomock.Any(), "forest_fire").Return(incType, nil)
	incidents.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	inc, err := svc.Create(context.Background(), domain.CreateIncidentRequest{
		DomainName:       "firefighters",
		IncidentTypeName: "forest_fire",
		Location:         domain.NewPoint(-58.38, -34.6),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inc.Status != domain.IncidentStarted {
		t.Fatalf("expected status %s got %s", domain.IncidentStarted, inc.Status)
	}
	if inc.DataStatus != domain.DataIncomplete {
		t.Fatalf("expected data status %s got %s", domain.DataIncomplete, inc.DataStatus)
	}
	if inc.ExternalAssistance != domain.WithoutExternalSupport {
		t.Fatalf("expected default assistance, got %q", inc.ExternalAssistance)
	}
}

func TestIncidentCreate_UnknownDomain(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	incidents := mock_service.NewMockIncidentRepository(ctrl)
	catalog := mock_service.NewMockCatalogRepository(ctrl)
	notifier := mock_service.NewMockNotificationTrigger(ctrl)

	svc := service.NewIncidentService(incidents, catalog, notifier, newTestLogger())

	catalog.EXPECT().GetDomain(gomock.Any(), "nope").Return(nil, e.ErrNotFound)

	_, err := svc.Create(context.Background(), domain.CreateIncidentRequest{
		DomainName:       "nope",
		IncidentTypeName: "forest_fire",
		Location:         domain.NewPoint(0, 0),
	})
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if e.FieldOf(err) != "domain_name" {
		t.Fatalf("expected field domain_name, got %s", e.FieldOf(err))
	}
}

func TestIncidentCreate_TypeFromOtherDomain(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	incidents := mock_service.NewMockIncidentRepository(ctrl)
	catalog := mock_service.NewMockCatalogRepository(ctrl)
	notifier := mock_service.NewMockNotificationTrigger(ctrl)

	svc := service.NewIncidentService(incidents, catalog, notifier, newTestLogger())

	catalog.EXPECT().GetDomain(gomock.Any(), "firefighters").
		Return(&domain.DomainConfig{ID: uuid.New(), Name: "firefighters"}, nil)
	catalog.EXPECT().GetIncidentType(gomock.Any(), "flood").
		Return(&domain.IncidentType{ID: uuid.New(), DomainID: uuid.New(), Name: "flood"}, nil)

	_, err := svc.Create(context.Background(), domain.CreateIncidentRequest{
		DomainName:       "firefighters",
		IncidentTypeName: "flood",
		Location:         domain.NewPoint(0, 0),
	})
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if e.FieldOf(err) != "incident_type_name" {
		t.Fatalf("expected field incident_type_name, got %s", e.FieldOf(err))
	}
}

func TestIncidentCreate_InvalidLocation(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := service.NewIncidentService(
		mock_service.NewMockIncidentRepository(ctrl),
		mock_service.NewMockCatalogRepository(ctrl),
		mock_service.NewMockNotificationTrigger(ctrl),
		newTestLogger(),
	)

	_, err := svc.Create(context.Background(), domain.CreateIncidentRequest{
		DomainName:       "firefighters",
		IncidentTypeName: "forest_fire",
		Location:         domain.NewPoint(-200, 95),
	})
	if !errors.Is(err, e.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestIncidentFinalize_NotifiesClosedAssignments(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	incidents := mock_service.NewMockIncidentRepository(ctrl)
	catalog := mock_service.NewMockCatalogRepository(ctrl)
	notifier := mock_service.NewMockNotificationTrigger(ctrl)

	svc := service.NewIncidentService(incidents, catalog, notifier, newTestLogger())

	id := uuid.New()
	resourceIDs := []uuid.UUID{uuid.New(), uuid.New()}
	finalized := startedIncident(id)
	finalized.Status = domain.IncidentFinalized

	incidents.EXPECT().
		Transition(gomock.Any(), id, domain.IncidentFinalized, gomock.Any()).
		Return(finalized, resourceIDs, nil)
	notifier.EXPECT().NotifyFinalized(gomock.Any(), id, resourceIDs)

	inc, err := svc.Finalize(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inc.Status != domain.IncidentFinalized {
		t.Fatalf("expected status %s got %s", domain.IncidentFinalized, inc.Status)
	}
}

func TestIncidentCancel_AlreadyTerminal(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	incidents := mock_service.NewMockIncidentRepository(ctrl)
	catalog := mock_service.NewMockCatalogRepository(ctrl)
	notifier := mock_service.NewMockNotificationTrigger(ctrl)

	svc := service.NewIncidentService(incidents, catalog, notifier, newTestLogger())

	id := uuid.New()
	incidents.EXPECT().
		Transition(gomock.Any(), id, domain.IncidentCanceled, gomock.Any()).
		Return(nil, nil, e.Fieldf("incident_id", e.ErrInvalidState,
			"Incident with id %s is not at Created state", id))

	_, err := svc.Cancel(context.Background(), id)
	if !errors.Is(err, e.ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState, got %v", err)
	}
}

func TestSetExternalAssistance_SameValueRejected(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	incidents := mock_service.NewMockIncidentRepository(ctrl)
	catalog := mock_service.NewMockCatalogRepository(ctrl)
	notifier := mock_service.NewMockNotificationTrigger(ctrl)

	svc := service.NewIncidentService(incidents, catalog, notifier, newTestLogger())

	id := uuid.New()
	incidents.EXPECT().Get(gomock.Any(), id).Return(startedIncident(id), nil)

	_, err := svc.SetExternalAssistance(context.Background(), id, domain.WithoutExternalSupport)
	if !errors.Is(err, e.ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState, got %v", err)
	}
	if e.FieldOf(err) != "external_assistance" {
		t.Fatalf("expected field external_assistance, got %s", e.FieldOf(err))
	}
}

func TestSetExternalAssistance_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	incidents := mock_service.NewMockIncidentRepository(ctrl)
	catalog := mock_service.NewMockCatalogRepository(ctrl)
	notifier := mock_service.NewMockNotificationTrigger(ctrl)

	svc := service.NewIncidentService(incidents, catalog, notifier, newTestLogger())

	id := uuid.New()
	incidents.EXPECT().Get(gomock.Any(), id).Return(startedIncident(id), nil)
	incidents.EXPECT().SetExternalAssistance(gomock.Any(), id, domain.WithExternalSupport).Return(nil)

	inc, err := svc.SetExternalAssistance(context.Background(), id, domain.WithExternalSupport)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inc.ExternalAssistance != domain.WithExternalSupport {
		t.Fatalf("expected assistance updated, got %q", inc.ExternalAssistance)
	}
}

func TestValidateDetails_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	incidents := mock_service.NewMockIncidentRepository(ctrl)
	catalog := mock_service.NewMockCatalogRepository(ctrl)
	notifier := mock_service.NewMockNotificationTrigger(ctrl)

	svc := service.NewIncidentService(incidents, catalog, notifier, newTestLogger())

	id := uuid.New()
	schema := json.RawMessage(`{"type":"object","required":["severity"],"properties":{"severity":{"type":"integer"}}}`)
	details := json.RawMessage(`{"severity":3}`)

	incidents.EXPECT().Get(gomock.Any(), id).Return(startedIncident(id), nil)
	catalog.EXPECT().GetIncidentType(gomock.Any(), "forest_fire").
		Return(&domain.IncidentType{Name: "forest_fire", DetailsSchema: schema}, nil)
	incidents.EXPECT().SetDetails(gomock.Any(), id, details).Return(nil)

	inc, err := svc.ValidateDetails(context.Background(), id, details)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inc.DataStatus != domain.DataComplete {
		t.Fatalf("expected data status %s got %s", domain.DataComplete, inc.DataStatus)
	}
}

func TestValidateDetails_SchemaViolation(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	incidents := mock_service.NewMockIncidentRepository(ctrl)
	catalog := mock_service.NewMockCatalogRepository(ctrl)
	notifier := mock_service.NewMockNotificationTrigger(ctrl)

	svc := service.NewIncidentService(incidents, catalog, notifier, newTestLogger())

	id := uuid.New()
	schema := json.RawMessage(`{"type":"object","required":["severity"]}`)

	incidents.EXPECT().Get(gomock.Any(), id).Return(startedIncident(id), nil)
	catalog.EXPECT().GetIncidentType(gomock.Any(), "forest_fire").
		Return(&domain.IncidentType{Name: "forest_fire", DetailsSchema: schema}, nil)

	_, err := svc.ValidateDetails(context.Background(), id, json.RawMessage(`{}`))
	if !errors.Is(err, e.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if e.FieldOf(err) != "details" {
		t.Fatalf("expected field details, got %s", e.FieldOf(err))
	}
}
