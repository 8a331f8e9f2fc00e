// SPDX-License-Identifier: MIT

// Package httpapi serves the planner and the network mutation API as JSON
// over HTTP.
//
//	GET    /api/stops                   list stops
//	POST   /api/stops                   create a stop
//	DELETE /api/stops/{id}              remove a stop and its routes
//	GET    /api/stops/{id}/routes       outgoing routes of a stop
//	GET    /api/stops/{id}/reachable    stops reachable from a stop
//	GET    /api/routes                  list routes with their current state
//	POST   /api/routes                  create a route
//	PATCH  /api/routes/{id}             modify a route
//	DELETE /api/routes/{id}             remove a route
//	GET    /api/best-route?from=&to=&criterion=
//	GET    /api/spanning-tree?criterion=&method=
//	GET    /metrics                     Prometheus exposition (optional)
//
// Validation failures map to 400, unknown IDs to 404 and structural
// failures to 500. A query without a result answers 200 with
// "found": false.
package httpapi

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/katalvlaran/transit/planner"
	"github.com/katalvlaran/transit/store"
)

// Server holds the handlers' collaborators.
type Server struct {
	planner   *planner.Planner
	persister store.Persister
	metrics   http.Handler
	log       *slog.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithPersister saves the network after every successful mutation.
func WithPersister(p store.Persister) Option {
	return func(s *Server) {
		s.persister = p
	}
}

// WithMetrics mounts h at /metrics.
func WithMetrics(h http.Handler) Option {
	return func(s *Server) {
		s.metrics = h
	}
}

// WithLogger sets the request logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("httpapi: WithLogger(nil)")
	}
	return func(s *Server) {
		s.log = l.With(slog.String("component", "httpapi"))
	}
}

// New builds a Server around p.
func New(p *planner.Planner, opts ...Option) *Server {
	s := &Server{
		planner: p,
		log:     slog.Default().With(slog.String("component", "httpapi")),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Handler returns the routed handler.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	s.RegisterRoutes(r)

	return r
}

// RegisterRoutes mounts every endpoint on router.
func (s *Server) RegisterRoutes(router *mux.Router) {
	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/stops", s.listStops).Methods(http.MethodGet)
	api.HandleFunc("/stops", s.createStop).Methods(http.MethodPost)
	api.HandleFunc("/stops/{id}", s.patchStop).Methods(http.MethodPatch)
	api.HandleFunc("/stops/{id}", s.deleteStop).Methods(http.MethodDelete)
	api.HandleFunc("/stops/{id}/routes", s.stopRoutes).Methods(http.MethodGet)
	api.HandleFunc("/stops/{id}/reachable", s.reachable).Methods(http.MethodGet)
	api.HandleFunc("/routes", s.listRoutes).Methods(http.MethodGet)
	api.HandleFunc("/routes", s.createRoute).Methods(http.MethodPost)
	api.HandleFunc("/routes/{id}", s.patchRoute).Methods(http.MethodPatch)
	api.HandleFunc("/routes/{id}", s.deleteRoute).Methods(http.MethodDelete)
	api.HandleFunc("/best-route", s.bestRoute).Methods(http.MethodGet)
	api.HandleFunc("/spanning-tree", s.spanningTree).Methods(http.MethodGet)
	if s.metrics != nil {
		router.Handle("/metrics", s.metrics).Methods(http.MethodGet)
	}
}

// persist saves the graph when a persister is configured. Failures are
// logged and never fail the request.
func (s *Server) persist(ctx context.Context) {
	if s.persister == nil {
		return
	}
	if err := s.persister.Save(ctx, s.planner.Graph()); err != nil {
		s.log.Error("persist network", slog.Any("error", err))
	}
}
