package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	mctsgen "github.com/akuroiwa/mcts-gen"
	"github.com/akuroiwa/mcts-gen/pkg/domain"
	"github.com/akuroiwa/mcts-gen/pkg/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Service is the subset of service.Service used by the HTTP API.
type Service interface {
	Reinitialize(ctx context.Context, req service.ReinitializeRequest) service.ReinitializeResponse
	RunRound(ctx context.Context, req service.RoundRequest) service.RoundResponse
	PossibleActions(sessionID string) service.ActionsResponse
	BestMove(sessionID string) service.BestMoveResponse
	Stats(sessionID string) service.StatsResponse
	Domains() service.DomainsResponse
	Sessions() service.SessionsResponse
	Delete(ctx context.Context, sessionID string) service.DeleteResponse
}

// Server serves the JSON API.
type Server struct {
	Service Service
	Streams *StreamManager

	metrics http.Handler
}

// Option configures the handler.
type Option func(*Server)

// WithStreams serves round events from sm on /sessions/{id}/events.
// The same StreamManager's Hooks must be registered with the sessions.
func WithStreams(sm *StreamManager) Option {
	return func(s *Server) {
		s.Streams = sm
	}
}

// WithMetricsHandler mounts h on /metrics.
func WithMetricsHandler(h http.Handler) Option {
	return func(s *Server) {
		s.metrics = h
	}
}

// NewHandler creates the HTTP handler for svc.
func NewHandler(svc Service, opts ...Option) http.Handler {
	server := &Server{Service: svc}
	for _, opt := range opts {
		opt(server)
	}
	if server.Streams == nil {
		server.Streams = NewStreamManager()
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/health", server.GetHealth)
	r.Get("/info", server.GetInfo)
	r.Get("/domains", server.GetDomains)
	if server.metrics != nil {
		r.Handle("/metrics", server.metrics)
	}

	r.Route("/sessions", func(r chi.Router) {
		r.Get("/", server.ListSessions)
		r.Route("/{sessionID}", func(r chi.Router) {
			r.Post("/reinitialize", server.Reinitialize)
			r.Post("/rounds", server.RunRound)
			r.Get("/actions", server.PossibleActions)
			r.Get("/best-move", server.BestMove)
			r.Get("/stats", server.Stats)
			r.Get("/events", server.SubscribeEvents)
			r.Delete("/", server.DeleteSession)
		})
	})

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// statusFor maps a structured error to an HTTP status.
func statusFor(e *domain.ErrorBody) int {
	if e == nil {
		return http.StatusOK
	}
	switch e.Code {
	case domain.CodeInvalidAction, domain.CodeInvalidConfiguration:
		return http.StatusBadRequest
	case domain.CodeUnknownDomain, domain.CodeSessionNotFound:
		return http.StatusNotFound
	case domain.CodeNotInitialized, domain.CodeNoMovesAvailable:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Response encode failed", "error", err)
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if r.ContentLength == 0 {
		return true
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		slog.Warn("Invalid request body", "path", r.URL.Path, "error", err)
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error": domain.ErrorBody{Code: domain.CodeInvalidConfiguration, Message: "invalid request body: " + err.Error()},
		})
		return false
	}
	return true
}

// Reinitialize handles POST /sessions/{id}/reinitialize.
func (s *Server) Reinitialize(w http.ResponseWriter, r *http.Request) {
	var body service.ReinitializeRequest
	if !decodeBody(w, r, &body) {
		return
	}
	body.SessionID = chi.URLParam(r, "sessionID")

	resp := s.Service.Reinitialize(r.Context(), body)
	writeJSON(w, statusFor(resp.Error), resp)
}

// RunRound handles POST /sessions/{id}/rounds.
func (s *Server) RunRound(w http.ResponseWriter, r *http.Request) {
	var body service.RoundRequest
	if !decodeBody(w, r, &body) {
		return
	}
	body.SessionID = chi.URLParam(r, "sessionID")

	resp := s.Service.RunRound(r.Context(), body)
	writeJSON(w, statusFor(resp.Error), resp)
}

// PossibleActions handles GET /sessions/{id}/actions.
func (s *Server) PossibleActions(w http.ResponseWriter, r *http.Request) {
	resp := s.Service.PossibleActions(chi.URLParam(r, "sessionID"))
	writeJSON(w, statusFor(resp.Error), resp)
}

// BestMove handles GET /sessions/{id}/best-move.
func (s *Server) BestMove(w http.ResponseWriter, r *http.Request) {
	resp := s.Service.BestMove(chi.URLParam(r, "sessionID"))
	writeJSON(w, statusFor(resp.Error), resp)
}

// Stats handles GET /sessions/{id}/stats.
func (s *Server) Stats(w http.ResponseWriter, r *http.Request) {
	resp := s.Service.Stats(chi.URLParam(r, "sessionID"))
	writeJSON(w, statusFor(resp.Error), resp)
}

// DeleteSession handles DELETE /sessions/{id}.
func (s *Server) DeleteSession(w http.ResponseWriter, r *http.Request) {
	resp := s.Service.Delete(r.Context(), chi.URLParam(r, "sessionID"))
	writeJSON(w, statusFor(resp.Error), resp)
}

// ListSessions handles GET /sessions.
func (s *Server) ListSessions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Service.Sessions())
}

// GetDomains handles GET /domains.
func (s *Server) GetDomains(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Service.Domains())
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles GET /info.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"app":     "mcts-gen-http",
		"version": strings.TrimSpace(mctsgen.Version),
	})
}
