// SPDX-License-Identifier: MIT

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/klauspost/compress/gzhttp"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/worldline/internal/config"
	"github.com/katalvlaran/worldline/internal/observability"
	"github.com/katalvlaran/worldline/units"
)

// Server wraps the http.Server serving the API.
type Server struct {
	server *http.Server
	logger zerolog.Logger
}

// NewServerOptions configures NewServer.
type NewServerOptions struct {
	Config config.ServerConfig
	Units  []units.Option
	Logger zerolog.Logger
}

// NewServer builds the router, middleware chain and http.Server.
func NewServer(opts NewServerOptions) *Server {
	var handler http.Handler = NewRouter(opts.Logger, opts.Units)
	if opts.Config.Compress {
		handler = gzhttp.GzipHandler(handler)
	}

	server := &http.Server{
		Addr:         opts.Config.Addr,
		Handler:      handler,
		ReadTimeout:  opts.Config.ReadTimeout,
		WriteTimeout: opts.Config.WriteTimeout,
	}
	return &Server{server: server, logger: opts.Logger}
}

// NewRouter returns the routed handler without compression; used directly by
// tests.
func NewRouter(logger zerolog.Logger, opts []units.Option) *mux.Router {
	h := &handlers{opts: opts}

	r := mux.NewRouter()
	r.Use(observability.RequestID(logger), observability.RequestLogger(logger, routeTemplate))
	// Use only wraps matched routes; unmatched requests get the same chain
	// under one fixed route label.
	unmatched := func(next http.HandlerFunc) http.Handler {
		logged := observability.RequestLogger(logger, func(*http.Request) string { return unmatchedRoute })(next)
		return observability.RequestID(logger)(logged)
	}

	v1 := r.PathPrefix("/v1").Subrouter()
	v1.HandleFunc("/rendezvous", h.handleRendezvous).Methods(http.MethodPost)
	v1.HandleFunc("/trajectory", h.handleTrajectory).Methods(http.MethodPost)
	v1.HandleFunc("/trajectory/step", h.handleTrajectoryStep).Methods(http.MethodPost)
	v1.HandleFunc("/plan", h.handlePlan).Methods(http.MethodPost)
	v1.HandleFunc("/validate", h.handleValidate).Methods(http.MethodPost)
	v1.HandleFunc("/lightcone", h.handleLightcone).Methods(http.MethodGet)

	r.HandleFunc("/healthz", healthz).Methods(http.MethodGet)
	r.Handle("/metrics", observability.MetricsHandler()).Methods(http.MethodGet)

	r.NotFoundHandler = unmatched(func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, req, http.StatusNotFound, errorBody{Error: errorDetail{Kind: "NotFound", Message: "no such route"}})
	})
	r.MethodNotAllowedHandler = unmatched(func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, req, http.StatusMethodNotAllowed, errorBody{Error: errorDetail{Kind: "MethodNotAllowed", Message: "method not allowed"}})
	})
	return r
}

// unmatchedRoute is the path label of requests no route matched, keeping
// arbitrary 404 paths out of the metric label set.
const unmatchedRoute = "<unmatched>"

// routeTemplate labels metrics and logs with the matched path template.
func routeTemplate(r *http.Request) string {
	route := mux.CurrentRoute(r)
	if route == nil {
		return ""
	}
	tpl, err := route.GetPathTemplate()
	if err != nil {
		return ""
	}
	return tpl
}

// Handler returns the full handler chain, compression included.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Start serves until Stop is called. A clean shutdown returns nil.
func (s *Server) Start() error {
	s.logger.Info().Str("addr", s.server.Addr).Msg("API server listening")
	if err := s.server.ListenAndServe(); err != nil {
		if errors.Is(err, http.ErrServerClosed) {
			s.logger.Info().Msg("API server closed")
			return nil
		}
		return err
	}
	return nil
}

// Stop gracefully shuts the server down.
func (s *Server) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
