package geolocation

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/tesis-cabal-cugno-moreyra/backend/pkg/e"
)

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("encode response failed", slog.String("error", err.Error()))
	}
}

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	field := e.FieldOf(err)
	body := map[string]string{field: err.Error()}

	switch {
	case errors.Is(err, e.ErrNotFound):
		h.writeJSON(w, http.StatusNotFound, body)
	case errors.Is(err, e.ErrValidation),
		errors.Is(err, e.ErrInvalidInput),
		errors.Is(err, e.ErrInvalidState),
		errors.Is(err, e.ErrInactiveResource),
		errors.Is(err, e.ErrNotAssigned):
		h.writeJSON(w, http.StatusBadRequest, body)
	default:
		h.log(r).Error("request failed", slog.Any("error", err))
		h.writeJSON(w, http.StatusInternalServerError,
			map[string]string{"non_field_error": "internal server error"})
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	return h.logger.With(
		slog.String("request_id", chimw.GetReqID(r.Context())),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
	)
}

func parseInt(raw string, def int) int {
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return def
	}
	return n
}
