package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	mctsgen "github.com/akuroiwa/mcts-gen"
	"github.com/akuroiwa/mcts-gen/pkg/domain"
	"github.com/akuroiwa/mcts-gen/pkg/service"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Service defines the operations the MCP server exposes as tools.
type Service interface {
	Reinitialize(ctx context.Context, req service.ReinitializeRequest) service.ReinitializeResponse
	RunRound(ctx context.Context, req service.RoundRequest) service.RoundResponse
	PossibleActions(sessionID string) service.ActionsResponse
	BestMove(sessionID string) service.BestMoveResponse
	Stats(sessionID string) service.StatsResponse
	Domains() service.DomainsResponse
}

// Server wraps the search service and exposes it as an MCP Server.
type Server struct {
	svc       Service
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(svc Service) *Server {
	s := &Server{
		svc:       svc,
		mcpServer: server.NewMCPServer("mcts-gen", strings.TrimSpace(mctsgen.Version)),
	}
	s.registerTools()
	s.registerPrompts()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)

	go func() {
		slog.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		slog.Info("Shutdown signal received, shutting down MCP server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		slog.Debug("CORS Middleware", "method", r.Method, "path", r.URL.Path)
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	sessionArg := mcp.WithString("session_id", mcp.Description("Session to operate on (optional, defaults to \"default\")"))

	// TOOL: reinitialize_mcts
	s.mcpServer.AddTool(mcp.NewTool("reinitialize_mcts",
		mcp.WithDescription("Discard the current search tree and start a new search from the initial state of a domain."),
		mcp.WithString("domain", mcp.Required(), mcp.Description("Registered domain name (see list_domains)")),
		mcp.WithString("args", mcp.Description("JSON object of domain arguments (optional)")),
		sessionArg,
		mcp.WithOutputSchema[service.ReinitializeResponse](),
	), mcp.NewStructuredToolHandler(s.handleReinitialize))

	// TOOL: run_mcts_round
	s.mcpServer.AddTool(mcp.NewTool("run_mcts_round",
		mcp.WithDescription("Run exactly one MCTS round: select, expand, simulate and backpropagate."),
		mcp.WithNumber("exploration_constant", mcp.Description("UCT exploration constant, must be positive (optional)")),
		mcp.WithString("actions_to_expand", mcp.Description("JSON array of action strings allowed for expansion (optional)")),
		sessionArg,
		mcp.WithOutputSchema[service.RoundResponse](),
	), mcp.NewStructuredToolHandler(s.handleRunRound))

	// TOOL: get_possible_actions
	s.mcpServer.AddTool(mcp.NewTool("get_possible_actions",
		mcp.WithDescription("List the legal actions of the root state."),
		sessionArg,
		mcp.WithOutputSchema[service.ActionsResponse](),
	), mcp.NewStructuredToolHandler(s.handlePossibleActions))

	// TOOL: get_best_move
	s.mcpServer.AddTool(mcp.NewTool("get_best_move",
		mcp.WithDescription("Return the most visited action at the root."),
		sessionArg,
		mcp.WithOutputSchema[service.BestMoveResponse](),
	), mcp.NewStructuredToolHandler(s.handleBestMove))

	// TOOL: get_stats
	s.mcpServer.AddTool(mcp.NewTool("get_stats",
		mcp.WithDescription("Snapshot of the search tree: visits, size, depth and principal variation."),
		sessionArg,
		mcp.WithOutputSchema[service.StatsResponse](),
	), mcp.NewStructuredToolHandler(s.handleStats))

	// TOOL: list_domains
	s.mcpServer.AddTool(mcp.NewTool("list_domains",
		mcp.WithDescription("List the registered search domains."),
		mcp.WithOutputSchema[service.DomainsResponse](),
	), mcp.NewStructuredToolHandler(s.handleListDomains))
}

func sessionID(args map[string]interface{}) string {
	id, _ := args["session_id"].(string)
	return id
}

func invalidArgs(format string, a ...any) *domain.ErrorBody {
	return &domain.ErrorBody{Code: domain.CodeInvalidConfiguration, Message: fmt.Sprintf(format, a...)}
}

// objectArg accepts a JSON object either encoded as a string or passed natively.
func objectArg(v any) (map[string]any, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case map[string]any:
		return t, nil
	case string:
		if strings.TrimSpace(t) == "" {
			return nil, nil
		}
		var out map[string]any
		if err := json.Unmarshal([]byte(t), &out); err != nil {
			return nil, err
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected object, got %T", v)
	}
}

// stringListArg accepts a JSON array either encoded as a string or passed
// natively. Non-string elements are converted to their text form.
func stringListArg(v any) ([]string, error) {
	var items []any
	switch t := v.(type) {
	case nil:
		return nil, nil
	case []string:
		return t, nil
	case []any:
		items = t
	case string:
		if strings.TrimSpace(t) == "" {
			return nil, nil
		}
		if err := json.Unmarshal([]byte(t), &items); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("expected array, got %T", v)
	}
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = fmt.Sprint(item)
	}
	return out, nil
}

func (s *Server) handleReinitialize(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (service.ReinitializeResponse, error) {
	name, _ := args["domain"].(string)
	domainArgs, err := objectArg(args["args"])
	if err != nil {
		slog.Warn("MCP reinitialize_mcts: invalid args", "error", err)
		return service.ReinitializeResponse{SessionID: sessionID(args), Error: invalidArgs("invalid args: %v", err)}, nil
	}
	return s.svc.Reinitialize(ctx, service.ReinitializeRequest{
		SessionID: sessionID(args),
		Domain:    name,
		Args:      domainArgs,
	}), nil
}

func (s *Server) handleRunRound(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (service.RoundResponse, error) {
	req := service.RoundRequest{SessionID: sessionID(args)}
	if c, ok := args["exploration_constant"].(float64); ok {
		req.Exploration = &c
	}
	allow, err := stringListArg(args["actions_to_expand"])
	if err != nil {
		slog.Warn("MCP run_mcts_round: invalid actions_to_expand", "error", err)
		return service.RoundResponse{SessionID: req.SessionID, Error: invalidArgs("invalid actions_to_expand: %v", err)}, nil
	}
	req.ActionsToExpand = allow
	return s.svc.RunRound(ctx, req), nil
}

func (s *Server) handlePossibleActions(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (service.ActionsResponse, error) {
	return s.svc.PossibleActions(sessionID(args)), nil
}

func (s *Server) handleBestMove(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (service.BestMoveResponse, error) {
	return s.svc.BestMove(sessionID(args)), nil
}

func (s *Server) handleStats(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (service.StatsResponse, error) {
	return s.svc.Stats(sessionID(args)), nil
}

func (s *Server) handleListDomains(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (service.DomainsResponse, error) {
	return s.svc.Domains(), nil
}

func (s *Server) registerResources() {
	// EXPOSE: mcts://domains
	s.mcpServer.AddResource(mcp.NewResource("mcts://domains", "Registered Search Domains",
		mcp.WithMIMEType("application/json"),
	), s.readDomains)
}

func (s *Server) readDomains(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	jsonBytes, err := json.Marshal(s.svc.Domains())
	if err != nil {
		return nil, fmt.Errorf("failed to encode domains: %w", err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "mcts://domains",
			MIMEType: "application/json",
			Text:     string(jsonBytes),
		},
	}, nil
}
