package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/akuroiwa/mcts-gen/pkg/domain"
	"github.com/go-chi/chi/v5"
)

// StreamManager fans round events out to SSE subscribers.
type StreamManager struct {
	mu          sync.RWMutex
	subscribers map[string]map[chan<- string]struct{} // SessionID -> Set of Channels
}

func NewStreamManager() *StreamManager {
	return &StreamManager{
		subscribers: make(map[string]map[chan<- string]struct{}),
	}
}

func (sm *StreamManager) Subscribe(sessionID string) (chan string, func()) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	ch := make(chan string, 10)
	if _, ok := sm.subscribers[sessionID]; !ok {
		sm.subscribers[sessionID] = make(map[chan<- string]struct{})
	}
	sm.subscribers[sessionID][ch] = struct{}{}

	return ch, func() {
		sm.mu.Lock()
		defer sm.mu.Unlock()
		if subs, ok := sm.subscribers[sessionID]; ok {
			delete(subs, ch)
			close(ch)
			if len(subs) == 0 {
				delete(sm.subscribers, sessionID)
			}
		}
	}
}

func (sm *StreamManager) Broadcast(sessionID string, msg string) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	for ch := range sm.subscribers[sessionID] {
		select {
		case ch <- msg:
		default:
			// Slow client.
			slog.Warn("SSE: Client buffer full, dropping message", "session_id", sessionID)
		}
	}
}

// roundMessage is the SSE payload of one round.
type roundMessage struct {
	Event string            `json:"event"`
	Stats domain.RoundStats `json:"stats"`
	Tree  int               `json:"tree_size"`
}

// Hooks returns session hooks that broadcast every reinitialize, round and
// delete.
func (sm *StreamManager) Hooks() domain.Hooks {
	send := func(sessionID string, v any) {
		if b, err := json.Marshal(v); err == nil {
			sm.Broadcast(sessionID, string(b))
		}
	}
	return domain.Hooks{
		OnReinitialize: func(e domain.ReinitializeEvent) {
			send(e.SessionID, map[string]any{"event": "reinitialize", "domain": e.Domain, "actions": e.Actions})
		},
		OnRound: func(e domain.RoundEvent) {
			send(e.SessionID, roundMessage{Event: "round", Stats: e.Stats, Tree: e.TreeSize})
		},
		OnDelete: func(sessionID string) {
			send(sessionID, map[string]any{"event": "delete"})
		},
	}
}

// SubscribeEvents handles GET /sessions/{id}/events (SSE).
func (s *Server) SubscribeEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		slog.Error("SubscribeEvents: Streaming not supported")
		return
	}

	sessionID := chi.URLParam(r, "sessionID")
	ch, cancel := s.Streams.Subscribe(sessionID)
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	slog.Info("SSE: Subscribing to session rounds", "session_id", sessionID)
	fmt.Fprintf(w, "event: ping\ndata: connected\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			slog.Info("SSE Client Disconnected", "session_id", sessionID)
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			fmt.Fprintf(w, "data: %s\n\n", msg)
			flusher.Flush()
		}
	}
}
