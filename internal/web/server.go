// Package web serves a router over HTTP: the rendered outlet as plain text
// plus a small JSON API to inspect and drive navigation.
package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"toroute/internal/logging"
	"toroute/internal/model"
	"toroute/internal/report"
	"toroute/internal/telemetry"
	"toroute/pkg/router"
)

// Server holds the handler dependencies.
type Server struct {
	Router   *router.Router
	Logger   *slog.Logger
	Gatherer prometheus.Gatherer // nil disables /metrics
}

// StateResponse is the JSON form of the navigation state.
type StateResponse struct {
	Path  string   `json:"path"`
	Route string   `json:"route"`
	Args  any      `json:"args"`
	Chain []string `json:"chain"`
}

// NavigateRequest is the body of POST /api/navigate.
type NavigateRequest struct {
	To     string         `json:"to"`
	Params map[string]any `json:"params"`
}

// ErrorResponse is returned with every non-2xx status.
type ErrorResponse struct {
	Error  string `json:"error"`
	Reason string `json:"reason,omitempty"`
}

// NewHandler creates the HTTP handler for s.
func NewHandler(s Server) http.Handler {
	if s.Logger == nil {
		s.Logger = logging.NewNop()
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.withRouter)

	r.Get("/", s.handleRender)
	r.Route("/api", func(r chi.Router) {
		r.Get("/state", s.handleState)
		r.Get("/routes", s.handleRoutes)
		r.Get("/match", s.handleMatch)
		r.Post("/navigate", s.handleNavigate)
		r.Get("/version", s.handleVersion)
	})
	if s.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.Gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

// withRouter puts the router in scope for the handlers.
func (s Server) withRouter(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.Router != nil {
			r = r.WithContext(router.WithRouter(r.Context(), s.Router))
		}
		next.ServeHTTP(w, r)
	})
}

// scoped returns the router in scope or answers 500.
func (s Server) scoped(w http.ResponseWriter, r *http.Request) (*router.Router, bool) {
	rt, err := router.FromContext(r.Context())
	if err != nil {
		s.Logger.Error("No router for request", "path", r.URL.Path, "error", err)
		s.writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return nil, false
	}
	return rt, true
}

func (s Server) handleRender(w http.ResponseWriter, r *http.Request) {
	rt, ok := s.scoped(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, rt.RenderOutlet())
}

func (s Server) handleState(w http.ResponseWriter, r *http.Request) {
	rt, ok := s.scoped(w, r)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, stateResponse(rt))
}

func (s Server) handleRoutes(w http.ResponseWriter, r *http.Request) {
	rt, ok := s.scoped(w, r)
	if !ok {
		return
	}
	res := report.NewAnalyzer().Analyze(rt.Registry(), rt.CurrentRoute())
	s.writeJSON(w, http.StatusOK, res)
}

func (s Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	rt, ok := s.scoped(w, r)
	if !ok {
		return
	}
	path := r.URL.Query().Get("path")
	if path == "" {
		s.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "path is required"})
		return
	}
	s.writeJSON(w, http.StatusOK, model.MatchResult{
		Path:  path,
		Chain: router.Keys(router.Match(rt.Registry(), path)),
	})
}

func (s Server) handleNavigate(w http.ResponseWriter, r *http.Request) {
	rt, ok := s.scoped(w, r)
	if !ok {
		return
	}

	var body NavigateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.Logger.Warn("Navigate: invalid request body", "error", err)
		s.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	// A missing params object means no parameters, not an empty map.
	var params any
	if body.Params != nil {
		params = body.Params
	}

	if err := rt.Navigate(body.To, params); err != nil {
		reason := telemetry.Reason(err)
		status := http.StatusInternalServerError
		switch reason {
		case telemetry.ReasonNotFound:
			status = http.StatusNotFound
		case telemetry.ReasonInvalid:
			status = http.StatusUnprocessableEntity
		}
		s.writeJSON(w, status, ErrorResponse{Error: err.Error(), Reason: reason})
		return
	}
	s.writeJSON(w, http.StatusOK, stateResponse(rt))
}

func (s Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"version": model.Version})
}

func stateResponse(rt *router.Router) StateResponse {
	st := rt.State()
	return StateResponse{
		Path:  st.Path,
		Route: st.Args.Route,
		Args:  st.Args.Value,
		Chain: router.Keys(router.Match(rt.Registry(), st.Path)),
	}
}

func (s Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("Response encode failed", "error", err)
	}
}

// ListenAndServe serves h on addr until ctx is cancelled, then shuts down
// gracefully.
func ListenAndServe(ctx context.Context, addr string, h http.Handler, logger *slog.Logger) error {
	if logger == nil {
		logger = logging.NewNop()
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Web server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	logger.Info("Web server shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
