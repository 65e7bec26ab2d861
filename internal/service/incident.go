package service

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/tesis-cabal-cugno-moreyra/backend/internal/domain"
	"github.com/tesis-cabal-cugno-moreyra/backend/pkg/e"
)

type incidentService struct {
	incidents IncidentRepository
	catalog   CatalogRepository
	notifier  NotificationTrigger
	logger    *slog.Logger
}

func NewIncidentService(
	incidents IncidentRepository,
	catalog CatalogRepository,
	notifier NotificationTrigger,
	logger *slog.Logger,
) IncidentService {
	return &incidentService{
		incidents: incidents,
		catalog:   catalog,
		notifier:  notifier,
		logger:    logger,
	}
}

// transitionSpec maps a terminal target status to its follow-up
// notification. One table instead of a handler subclass per action.
type transitionSpec struct {
	notify func(t NotificationTrigger, ctx context.Context, incidentID uuid.UUID, resourceIDs []uuid.UUID)
}

var transitions = map[domain.IncidentStatus]transitionSpec{
	domain.IncidentFinalized: {notify: NotificationTrigger.NotifyFinalized},
	domain.IncidentCanceled:  {notify: NotificationTrigger.NotifyCancelled},
}

func (s *incidentService) Create(ctx context.Context, req domain.CreateIncidentRequest) (*domain.Incident, error) {
	if !req.Location.Valid() {
		return nil, e.Fieldf("location_point", e.ErrValidation,
			"Location point must be a valid GeoJSON Point")
	}

	cfg, err := s.catalog.GetDomain(ctx, req.DomainName)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, e.Fieldf("domain_name", e.ErrNotFound,
				"Domain %s does not exist", req.DomainName)
		}
		return nil, err
	}

	incidentType, err := s.catalog.GetIncidentType(ctx, req.IncidentTypeName)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, e.Fieldf("incident_type_name", e.ErrNotFound,
				"Incident type %s does not exist", req.IncidentTypeName)
		}
		return nil, err
	}
	if incidentType.DomainID != cfg.ID {
		return nil, e.Fieldf("incident_type_name", e.ErrNotFound,
			"Incident type %s does not exist in domain %s", req.IncidentTypeName, req.DomainName)
	}

	assistance := req.ExternalAssistance
	if assistance == "" {
		assistance = domain.WithoutExternalSupport
	}

	inc := &domain.Incident{
		ID:                 uuid.New(),
		DomainID:           cfg.ID,
		DomainName:         cfg.Name,
		IncidentTypeID:     incidentType.ID,
		IncidentTypeName:   incidentType.Name,
		ExternalAssistance: assistance,
		Details:            req.Details,
		Status:             domain.IncidentStarted,
		DataStatus:         domain.DataIncomplete,
		LocationReference:  req.LocationReference,
		Reference:          req.Reference,
		Location:           req.Location,
	}

	if err := s.incidents.Create(ctx, inc); err != nil {
		return nil, err
	}

	s.logger.Info("incident created",
		slog.String("id", inc.ID.String()),
		slog.String("type", inc.IncidentTypeName),
		slog.String("domain", inc.DomainName),
	)
	return inc, nil
}

func (s *incidentService) Get(ctx context.Context, id uuid.UUID) (*domain.Incident, error) {
	inc, err := s.incidents.Get(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, e.Fieldf("incident_id", e.ErrNotFound,
				"Incident with id %s does not exist", id)
		}
		return nil, err
	}
	return inc, nil
}

func (s *incidentService) List(ctx context.Context, req domain.ListIncidentsRequest) ([]*domain.Incident, int64, error) {
	return s.incidents.List(ctx, req)
}

func (s *incidentService) Finalize(ctx context.Context, id uuid.UUID) (*domain.Incident, error) {
	return s.transitionTo(ctx, id, domain.IncidentFinalized)
}

func (s *incidentService) Cancel(ctx context.Context, id uuid.UUID) (*domain.Incident, error) {
	return s.transitionTo(ctx, id, domain.IncidentCanceled)
}

func (s *incidentService) transitionTo(ctx context.Context, id uuid.UUID, target domain.IncidentStatus) (*domain.Incident, error) {
	spec, ok := transitions[target]
	if !ok {
		return nil, e.Fieldf("status", e.ErrInvalidTransition,
			"Incident status cannot be set to %s", target)
	}

	inc, resourceIDs, err := s.incidents.Transition(ctx, id, target, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	s.logger.Info("incident transitioned",
		slog.String("id", id.String()),
		slog.String("status", string(target)),
		slog.Int("closed_assignments", len(resourceIDs)),
	)

	// transition already committed; notification delivery is
	// best-effort and must not fail the request
	spec.notify(s.notifier, ctx, id, resourceIDs)

	return inc, nil
}

func (s *incidentService) SetExternalAssistance(ctx context.Context, id uuid.UUID, value domain.ExternalAssistance) (*domain.Incident, error) {
	inc, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if inc.ExternalAssistance == value {
		return nil, e.Fieldf("external_assistance", e.ErrInvalidState,
			"Incident external assistance as %s already set", value)
	}

	if err := s.incidents.SetExternalAssistance(ctx, id, value); err != nil {
		return nil, err
	}

	inc.ExternalAssistance = value
	return inc, nil
}

func (s *incidentService) ValidateDetails(ctx context.Context, id uuid.UUID, details json.RawMessage) (*domain.Incident, error) {
	inc, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	incidentType, err := s.catalog.GetIncidentType(ctx, inc.IncidentTypeName)
	if err != nil {
		return nil, err
	}

	schema, err := jsonschema.CompileString("details_schema.json", string(incidentType.DetailsSchema))
	if err != nil {
		s.logger.Error("invalid details schema",
			slog.String("incident_type", incidentType.Name),
			slog.Any("error", err),
		)
		return nil, e.Wrap("service.Incident.ValidateDetails", e.ErrInternal)
	}

	var doc any
	if err := json.Unmarshal(details, &doc); err != nil {
		return nil, e.Fieldf("details", e.ErrValidation,
			"Details must be a valid JSON document")
	}

	if err := schema.Validate(doc); err != nil {
		return nil, e.Fieldf("details", e.ErrValidation,
			"Details validation failed. Error: %v", err)
	}

	if err := s.incidents.SetDetails(ctx, id, details); err != nil {
		return nil, err
	}

	inc.Details = details
	inc.DataStatus = domain.DataComplete
	return inc, nil
}
