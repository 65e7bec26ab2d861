package geolocation_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/tesis-cabal-cugno-moreyra/backend/internal/api/handlers/http/geolocation"
	"github.com/tesis-cabal-cugno-moreyra/backend/internal/domain"
	mock_service "github.com/tesis-cabal-cugno-moreyra/backend/internal/service/mocks"
	"github.com/tesis-cabal-cugno-moreyra/backend/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func addChiURLParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for key, val := range params {
		rctx.URLParams.Add(key, val)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func newGeoHandler(t *testing.T) (*geolocation.Handler, *mock_service.MockTelemetryService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	telemetry := mock_service.NewMockTelemetryService(ctrl)
	return geolocation.NewHandler(newTestLogger(), telemetry), telemetry
}

func TestMapPointCreate_OK(t *testing.T) {
	t.Parallel()

	h, telemetry := newGeoHandler(t)

	incidentID, resourceID := uuid.New(), uuid.New()
	reqBody := `{
		"location": {"type": "Point", "coordinates": [-58.38, -34.6]},
		"comment": "road blocked",
		"time_created": "2026-08-29T12:00:00Z"
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/incidents/x/resources/y/map-point", bytes.NewBufferString(reqBody))
	req = addChiURLParams(req, map[string]string{"id": incidentID.String(), "resourceId": resourceID.String()})
	rr := httptest.NewRecorder()

	telemetry.EXPECT().
		RecordMapPoint(gomock.Any(), incidentID, resourceID, gomock.Any()).
		Return(&domain.MapPoint{ID: uuid.New(), IncidentID: incidentID, ResourceID: resourceID, Comment: "road blocked"}, nil)

	h.MapPointCreate(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected %d got %d, body=%s", http.StatusCreated, rr.Code, rr.Body.String())
	}
}

func TestMapPointCreate_MissingComment(t *testing.T) {
	t.Parallel()

	h, _ := newGeoHandler(t)

	incidentID, resourceID := uuid.New(), uuid.New()
	reqBody := `{
		"location": {"type": "Point", "coordinates": [-58.38, -34.6]},
		"time_created": "2026-08-29T12:00:00Z"
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/incidents/x/resources/y/map-point", bytes.NewBufferString(reqBody))
	req = addChiURLParams(req, map[string]string{"id": incidentID.String(), "resourceId": resourceID.String()})
	rr := httptest.NewRecorder()

	h.MapPointCreate(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d, body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestMapPointCreate_NotAssigned(t *testing.T) {
	t.Parallel()

	h, telemetry := newGeoHandler(t)

	incidentID, resourceID := uuid.New(), uuid.New()
	reqBody := `{
		"location": {"type": "Point", "coordinates": [0, 0]},
		"comment": "x",
		"time_created": "2026-08-29T12:00:00Z"
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/incidents/x/resources/y/map-point", bytes.NewBufferString(reqBody))
	req = addChiURLParams(req, map[string]string{"id": incidentID.String(), "resourceId": resourceID.String()})
	rr := httptest.NewRecorder()

	telemetry.EXPECT().
		RecordMapPoint(gomock.Any(), incidentID, resourceID, gomock.Any()).
		Return(nil, e.Fieldf("resource_id", e.ErrNotAssigned,
			"Resource with id %s is not related to Incident with id %s", resourceID, incidentID))

	h.MapPointCreate(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestTrackPointsCreate_Batch(t *testing.T) {
	t.Parallel()

	h, telemetry := newGeoHandler(t)

	incidentID, resourceID := uuid.New(), uuid.New()
	reqBody := `[
		{"location": {"type": "Point", "coordinates": [-58.38, -34.60]}, "time_created": "2026-08-29T12:00:00Z"},
		{"location": {"type": "Point", "coordinates": [-58.39, -34.61]}, "time_created": "2026-08-29T12:00:05Z"}
	]`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/incidents/x/resources/y/track-points", bytes.NewBufferString(reqBody))
	req = addChiURLParams(req, map[string]string{"id": incidentID.String(), "resourceId": resourceID.String()})
	rr := httptest.NewRecorder()

	telemetry.EXPECT().
		RecordTrackPoints(gomock.Any(), incidentID, resourceID, gomock.Len(2)).
		Return([]*domain.TrackPoint{
			{ID: uuid.New(), IncidentID: incidentID, ResourceID: resourceID, ObservedAt: time.Now().UTC()},
			{ID: uuid.New(), IncidentID: incidentID, ResourceID: resourceID, ObservedAt: time.Now().UTC()},
		}, nil)

	h.TrackPointsCreate(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected %d got %d, body=%s", http.StatusCreated, rr.Code, rr.Body.String())
	}
}

func TestTrackPointsCreate_EmptyBatch(t *testing.T) {
	t.Parallel()

	h, _ := newGeoHandler(t)

	incidentID, resourceID := uuid.New(), uuid.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/incidents/x/resources/y/track-points", bytes.NewBufferString(`[]`))
	req = addChiURLParams(req, map[string]string{"id": incidentID.String(), "resourceId": resourceID.String()})
	rr := httptest.NewRecorder()

	h.TrackPointsCreate(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestMapPointList_ParsesFilter(t *testing.T) {
	t.Parallel()

	h, telemetry := newGeoHandler(t)

	incidentID, resourceID := uuid.New(), uuid.New()
	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/incidents/x/map-points?resource_id="+resourceID.String()+"&timedelta_in_seconds=300", nil)
	req = addChiURLParams(req, map[string]string{"id": incidentID.String()})
	rr := httptest.NewRecorder()

	telemetry.EXPECT().
		ListMapPoints(gomock.Any(), incidentID, domain.PointFilter{ResourceID: &resourceID, TimedeltaSeconds: 300}).
		Return([]*domain.MapPoint{}, nil)

	h.MapPointList(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d, body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}

	var body map[string]json.RawMessage
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if _, ok := body["map_points"]; !ok {
		t.Fatalf("expected map_points key, body=%s", rr.Body.String())
	}
}

func TestTrackPointList_InvalidResourceFilter(t *testing.T) {
	t.Parallel()

	h, _ := newGeoHandler(t)

	incidentID := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/incidents/x/track-points?resource_id=banana", nil)
	req = addChiURLParams(req, map[string]string{"id": incidentID.String()})
	rr := httptest.NewRecorder()

	h.TrackPointList(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestTrackPointList_UnknownIncident(t *testing.T) {
	t.Parallel()

	h, telemetry := newGeoHandler(t)

	incidentID := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/incidents/x/track-points", nil)
	req = addChiURLParams(req, map[string]string{"id": incidentID.String()})
	rr := httptest.NewRecorder()

	telemetry.EXPECT().
		ListTrackPoints(gomock.Any(), incidentID, domain.PointFilter{}).
		Return(nil, e.Fieldf("incident_id", e.ErrNotFound, "Incident with id %s does not exist", incidentID))

	h.TrackPointList(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected %d got %d", http.StatusNotFound, rr.Code)
	}
}
