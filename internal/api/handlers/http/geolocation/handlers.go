package geolocation

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
type TelemetryOps interface {
	RecordMapPoint(ctx context.Context, incidentID, resourceID uuid.UUID, req domain.CreateMapPointRequest) (*domain.MapPoint, error)
	RecordTrackPoint(ctx context.Context, incidentID, resourceID uuid.UUID, req domain.CreateTrackPointRequest) (*domain.TrackPoint, error)
	RecordTrackPoints(ctx context.Context, incidentID, resourceID uuid.UUID, reqs []domain.CreateTrackPointRequest) ([]*domain.TrackPoint, error)
	ListMapPoints(ctx context.Context, incidentID uuid.UUID, filter domain.PointFilter) ([]*domain.MapPoint, error)
	ListTrackPoints(ctx context.Context, incidentID uuid.UUID, filter domain.PointFilter) ([]*domain.TrackPoint, error)
}

type Handler struct {
	logger    *slog.Logger
	Telemetry TelemetryOps
}

func NewHandler(logger *slog.Logger, telemetry TelemetryOps) *Handler {
	return &Handler{logger: logger, Telemetry: telemetry}
}

func (h *Handler) MapPointCreate(w http.ResponseWriter, r *http.Request) {
	incidentID, resourceID, ok := h.pathIDs(w, r)
	if !ok {
		return
	}

	var req domain.CreateMapPointRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"non_field_error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"non_field_error": err.Error()})
		return
	}

	point, err := h.Telemetry.RecordMapPoint(r.Context(), incidentID, resourceID, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, point)
}

func (h *Handler) TrackPointCreate(w http.ResponseWriter, r *http.Request) {
	incidentID, resourceID, ok := h.pathIDs(w, r)
	if !ok {
		return
	}

	var req domain.CreateTrackPointRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"non_field_error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"non_field_error": err.Error()})
		return
	}

	point, err := h.Telemetry.RecordTrackPoint(r.Context(), incidentID, resourceID, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, point)
}

// TrackPointsCreate accepts a batch of samples flushed from a device
// buffer and stores them atomically.
func (h *Handler) TrackPointsCreate(w http.ResponseWriter, r *http.Request) {
	incidentID, resourceID, ok := h.pathIDs(w, r)
	if !ok {
		return
	}

	var reqs []domain.CreateTrackPointRequest
	if err := json.NewDecoder(r.Body).Decode(&reqs); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"non_field_error": "invalid JSON"})
		return
	}
	if len(reqs) == 0 {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"non_field_error": "empty batch"})
		return
	}
	for _, req := range reqs {
		if err := validator.ValidateStruct(&req); err != nil {
			h.writeJSON(w, http.StatusBadRequest, map[string]string{"non_field_error": err.Error()})
			return
		}
	}

	points, err := h.Telemetry.RecordTrackPoints(r.Context(), incidentID, resourceID, reqs)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, points)
}

func (h *Handler) MapPointList(w http.ResponseWriter, r *http.Request) {
	incidentID, ok := h.pathID(w, r, "id", "incident_id")
	if !ok {
		return
	}
	filter, ok := h.pointFilter(w, r)
	if !ok {
		return
	}

	points, err := h.Telemetry.ListMapPoints(r.Context(), incidentID, filter)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{"map_points": points})
}

func (h *Handler) TrackPointList(w http.ResponseWriter, r *http.Request) {
	incidentID, ok := h.pathID(w, r, "id", "incident_id")
	if !ok {
		return
	}
	filter, ok := h.pointFilter(w, r)
	if !ok {
		return
	}

	points, err := h.Telemetry.ListTrackPoints(r.Context(), incidentID, filter)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{"track_points": points})
}

func (h *Handler) pointFilter(w http.ResponseWriter, r *http.Request) (domain.PointFilter, bool) {
	q := r.URL.Query()
	filter := domain.PointFilter{
		TimedeltaSeconds: parseInt(q.Get("timedelta_in_seconds"), 0),
	}
	if raw := q.Get("resource_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			h.writeJSON(w, http.StatusBadRequest, map[string]string{"resource_id": "invalid id"})
			return filter, false
		}
		filter.ResourceID = &id
	}
	return filter, true
}

func (h *Handler) pathIDs(w http.ResponseWriter, r *http.Request) (incidentID, resourceID uuid.UUID, ok bool) {
	incidentID, ok = h.pathID(w, r, "id", "incident_id")
	if !ok {
		return
	}
	resourceID, ok = h.pathID(w, r, "resourceId", "resource_id")
	return
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
