package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/tesis-cabal-cugno-moreyra/backend/internal/api/handlers/http/geolocation"
	"github.com/tesis-cabal-cugno-moreyra/backend/internal/api/handlers/http/incident"
	"github.com/tesis-cabal-cugno-moreyra/backend/internal/api/handlers/http/system"
	"github.com/tesis-cabal-cugno-moreyra/backend/internal/config"
	"github.com/tesis-cabal-cugno-moreyra/backend/internal/middleware"
	"github.com/tesis-cabal-cugno-moreyra/backend/internal/service"
)

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

func NewServer(cfg *config.Config, logger *slog.Logger, svc *service.Service) *Server {
	incidentHandler := incident.NewHandler(logger, svc.Incidents, svc.Assignments, svc.Catalog)
	geoHandler := geolocation.NewHandler(logger, svc.Telemetry)

	r := InitRouter(cfg, incidentHandler, geoHandler, logger)

	return &Server{
		logger: logger,
		router: r,
		cfg:    *cfg,
	}
}

func InitRouter(cfg *config.Config, incidentHandler *incident.Handler, geoHandler *geolocation.Handler, logger *slog.Logger) *chi.Mux {
	r := chi.NewMux()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)

	r.Route("/api/v1", func(api chi.Router) {
		api.Route("/domains", func(dr chi.Router) {
			dr.Use(middleware.APIKeyMiddleware(cfg.APIKey))
			dr.Use(middleware.Limit(2, 5, 10*time.Minute, logger))

			dr.Post("/", incidentHandler.DomainCreate)
		})

		api.Route("/incidents", func(ir chi.Router) {
			ir.Use(middleware.Limit(20, 40, 5*time.Minute, logger))

			ir.Post("/", incidentHandler.IncidentCreate)
			ir.Get("/", incidentHandler.IncidentList)

			ir.Route("/{id}", func(rr chi.Router) {
				rr.Get("/", incidentHandler.IncidentGet)
				rr.Post("/finalize", incidentHandler.IncidentFinalize)
				rr.Post("/cancel", incidentHandler.IncidentCancel)
				rr.Patch("/external-assistance", incidentHandler.IncidentExternalAssistance)
				rr.Post("/details", incidentHandler.IncidentDetails)

				rr.Get("/resources", incidentHandler.AssignmentList)
				rr.Route("/resources/{resourceId}", func(ar chi.Router) {
					ar.Post("/", incidentHandler.AssignmentJoin)
					ar.Put("/", incidentHandler.AssignmentUpdate)
					ar.Delete("/", incidentHandler.AssignmentLeave)

					ar.Post("/map-point", geoHandler.MapPointCreate)
					ar.Post("/track-point", geoHandler.TrackPointCreate)
					ar.Post("/track-points", geoHandler.TrackPointsCreate)
				})

				rr.Get("/map-points", geoHandler.MapPointList)
				rr.Get("/track-points", geoHandler.TrackPointList)
			})
		})

		api.Get("/health", system.Health)
	})

	return r
}

func (s *Server) Run(ctx context.Context) error {
	port := s.cfg.Http.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Http.ReadTimeout,
		WriteTimeout: s.cfg.Http.WriteTimeout,
		IdleTimeout:  30 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("starting HTTP server",
			slog.String("addr", srv.Addr),
			slog.Duration("read_timeout", s.cfg.Http.ReadTimeout),
			slog.Duration("write_timeout", s.cfg.Http.WriteTimeout),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("ListenAndServe error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil

	case err := <-errChan:
		return err
	}
}
