// Package web serves the query interface every consumer drives: the
// filtered record list, the aggregate stats, the feature-to-result
// join, and the merged GeoJSON map feed.
package web

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/tn-election-atlas/internal/config"
	"github.com/tn-election-atlas/internal/store"
	"github.com/tn-election-atlas/internal/web/handlers"
	"github.com/tn-election-atlas/internal/web/middleware"
)

// Server is the atlas HTTP server.
type Server struct {
	cfg        config.ServerConfig
	store      *store.Store
	logger     *slog.Logger
	httpServer *http.Server
	router     *mux.Router
}

// NewServer creates the server over a snapshot store. The store may be
// empty at construction; data endpoints return 503 until the first
// snapshot is published.
func NewServer(cfg config.ServerConfig, st *store.Store, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		cfg:    cfg,
		store:  st,
		logger: logger,
	}
	s.setupRoutes()

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      cors.AllowAll().Handler(s.router),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	s.router = mux.NewRouter()

	query := &handlers.QueryHandler{Store: s.store, Logger: s.logger}
	maps := &handlers.MapsHandler{Store: s.store, Logger: s.logger}
	meta := &handlers.MetaHandler{Store: s.store}

	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/records", query.ListRecords).Methods("GET")
	api.HandleFunc("/stats", query.GetStats).Methods("GET")
	api.HandleFunc("/reconcile", maps.Reconcile).Methods("GET")
	api.HandleFunc("/geojson", maps.GetGeoJSON).Methods("GET")
	api.HandleFunc("/facets", meta.GetFacets).Methods("GET")
	api.HandleFunc("/health", meta.Health).Methods("GET")

	s.router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	s.router.Use(middleware.Recovery(s.logger))
	s.router.Use(middleware.RequestLogging(s.logger))
	s.router.Use(middleware.Metrics())
}

// Start runs the server until SIGINT/SIGTERM, then shuts down
// gracefully.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		s.logger.Info("server listening", slog.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Error("server error", slog.String("error", err.Error()))
		}
	}()

	<-stop
	s.logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	s.logger.Info("server stopped")
	return nil
}

// Handler exposes the configured router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}
