package incident

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/tesis-cabal-cugno-moreyra/backend/internal/domain"
	"github.com/tesis-cabal-cugno-moreyra/backend/pkg/validator"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type IncidentOps interface {
	Create(ctx context.Context, req domain.CreateIncidentRequest) (*domain.Incident, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Incident, error)
	List(ctx context.Context, req domain.ListIncidentsRequest) ([]*domain.Incident, int64, error)
	Finalize(ctx context.Context, id uuid.UUID) (*domain.Incident, error)
	Cancel(ctx context.Context, id uuid.UUID) (*domain.Incident, error)
	SetExternalAssistance(ctx context.Context, id uuid.UUID, value domain.ExternalAssistance) (*domain.Incident, error)
	ValidateDetails(ctx context.Context, id uuid.UUID, details json.RawMessage) (*domain.Incident, error)
}

type AssignmentOps interface {
	Join(ctx context.Context, incidentID, resourceID uuid.UUID, container *uuid.UUID) (*domain.Assignment, error)
	UpdateContainer(ctx context.Context, incidentID, resourceID uuid.UUID, container *uuid.UUID) (*domain.Assignment, error)
	Leave(ctx context.Context, incidentID, resourceID uuid.UUID) (*domain.Assignment, error)
	List(ctx context.Context, incidentID uuid.UUID, filter domain.AssignmentFilter) ([]*domain.AssignmentListItem, int64, error)
}

type CatalogOps interface {
	CreateDomain(ctx context.Context, req domain.CreateDomainRequest) (*domain.DomainConfig, error)
}

type Handler struct {
	logger      *slog.Logger
	Incidents   IncidentOps
	Assignments AssignmentOps
	Catalog     CatalogOps
}

func NewHandler(logger *slog.Logger, incidents IncidentOps, assignments AssignmentOps, catalog CatalogOps) *Handler {
	return &Handler{
		logger:      logger,
		Incidents:   incidents,
		Assignments: assignments,
		Catalog:     catalog,
	}
}

func (h *Handler) DomainCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.CreateDomainRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"non_field_error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"domain_name": err.Error()})
		return
	}

	cfg, err := h.Catalog.CreateDomain(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("domain created", slog.String("name", cfg.Name))
	h.writeJSON(w, http.StatusCreated, cfg)
}

func (h *Handler) IncidentCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.CreateIncidentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"non_field_error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"non_field_error": err.Error()})
		return
	}

	inc, err := h.Incidents.Create(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("incident created", slog.String("id", inc.ID.String()))
	h.writeJSON(w, http.StatusCreated, inc)
}

func (h *Handler) IncidentList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := domain.ListIncidentsRequest{
		IncidentTypeName:   q.Get("incident_type_name"),
		ExternalAssistance: q.Get("external_assistance"),
		Status:             q.Get("status"),
		DataStatus:         q.Get("data_status"),
		Page:               parseInt(q.Get("page"), 1),
		Limit:              parseInt(q.Get("limit"), 20),
	}

	incidents, total, err := h.Incidents.List(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"incidents": incidents,
		"total":     total,
		"page":      req.Page,
		"limit":     req.Limit,
	})
}

func (h *Handler) IncidentGet(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id", "incident_id")
	if !ok {
		return
	}

	inc, err := h.Incidents.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, inc)
}

func (h *Handler) IncidentFinalize(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.Incidents.Finalize)
}

func (h *Handler) IncidentCancel(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.Incidents.Cancel)
}

func (h *Handler) transition(w http.ResponseWriter, r *http.Request, op func(context.Context, uuid.UUID) (*domain.Incident, error)) {
	id, ok := h.pathID(w, r, "id", "incident_id")
	if !ok {
		return
	}

	inc, err := op(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.log(r).Info("incident status changed",
		slog.String("id", id.String()),
		slog.String("status", string(inc.Status)),
	)
	h.writeJSON(w, http.StatusOK, inc)
}

func (h *Handler) IncidentExternalAssistance(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id", "incident_id")
	if !ok {
		return
	}

	var req domain.SetExternalAssistanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"non_field_error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"external_assistance": err.Error()})
		return
	}

	inc, err := h.Incidents.SetExternalAssistance(r.Context(), id, req.ExternalAssistance)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, inc)
}

func (h *Handler) IncidentDetails(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id", "incident_id")
	if !ok {
		return
	}

	var req domain.ValidateDetailsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"non_field_error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"details": err.Error()})
		return
	}

	inc, err := h.Incidents.ValidateDetails(r.Context(), id, req.Details)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, inc)
}

func (h *Handler) AssignmentList(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id", "incident_id")
	if !ok {
		return
	}

	q := r.URL.Query()
	filter := domain.AssignmentFilter{
		Name:             q.Get("name"),
		TypeName:         q.Get("type"),
		ResourceActive:   parseBoolPtr(q.Get("is_active")),
		AbleToContain:    parseBoolPtr(q.Get("is_able_to_contain_resources")),
		WithoutContainer: q.Get("without_container") == "true",
		CurrentlyJoined:  parseBoolPtr(q.Get("currently_joined")),
		Page:             parseInt(q.Get("page"), 1),
		Limit:            parseInt(q.Get("limit"), domain.AssignmentsDefaultPageSize),
	}

	items, total, err := h.Assignments.List(r.Context(), id, filter)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"resources": items,
		"total":     total,
		"page":      filter.Page,
		"limit":     filter.Limit,
	})
}

func (h *Handler) AssignmentJoin(w http.ResponseWriter, r *http.Request) {
	h.assignmentChange(w, r, h.Assignments.Join, http.StatusCreated)
}

func (h *Handler) AssignmentUpdate(w http.ResponseWriter, r *http.Request) {
	h.assignmentChange(w, r, h.Assignments.UpdateContainer, http.StatusOK)
}

func (h *Handler) assignmentChange(
	w http.ResponseWriter,
	r *http.Request,
	op func(context.Context, uuid.UUID, uuid.UUID, *uuid.UUID) (*domain.Assignment, error),
	successCode int,
) {
	incidentID, ok := h.pathID(w, r, "id", "incident_id")
	if !ok {
		return
	}
	resourceID, ok := h.pathID(w, r, "resourceId", "resource_id")
	if !ok {
		return
	}

	var req domain.JoinIncidentRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.writeJSON(w, http.StatusBadRequest, map[string]string{"non_field_error": "invalid JSON"})
			return
		}
	}

	assignment, err := op(r.Context(), incidentID, resourceID, req.ContainerResourceID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, successCode, assignment)
}

func (h *Handler) AssignmentLeave(w http.ResponseWriter, r *http.Request) {
	incidentID, ok := h.pathID(w, r, "id", "incident_id")
	if !ok {
		return
	}
	resourceID, ok := h.pathID(w, r, "resourceId", "resource_id")
	if !ok {
		return
	}

	assignment, err := h.Assignments.Leave(r.Context(), incidentID, resourceID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, assignment)
}

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request, param, field string) (uuid.UUID, bool) {
	raw := chi.URLParam(r, param)
	id, err := uuid.Parse(raw)
	if err != nil {
		h.log(r).Warn("invalid id", slog.String("param", param), slog.String("value", raw))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{field: "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}
