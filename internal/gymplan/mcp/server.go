package mcp

import (
	"context"
	"net/http"

	"github.com/2beens/gymplan/internal/auth"

	"github.com/mark3labs/mcp-go/server"
)

const (
	serverName         = "gymplan"
	serverInstructions = "Gym routine planner. Read the user's active weekly routine, the progress of a workout session by date, the session history and the exercise catalog. All data is scoped to the authenticated user."
)

// NewServer builds the MCP server with the read-only plan tools.
// Mounted at /mcp by the main backend and served over stdio by cmd/gymplan_mcp.
func NewServer(service planService, version string) *server.MCPServer {
	h := NewHandler(service)

	s := server.NewMCPServer(serverName, version,
		server.WithToolCapabilities(false),
		server.WithInstructions(serverInstructions),
	)

	s.AddTools(
		server.ServerTool{Tool: toolGetActiveRoutine, Handler: h.GetActiveRoutine},
		server.ServerTool{Tool: toolGetSessionProgress, Handler: h.GetSessionProgress},
		server.ServerTool{Tool: toolListSessions, Handler: h.ListSessions},
		server.ServerTool{Tool: toolGetCatalog, Handler: h.GetCatalog},
	)

	return s
}

// NewHTTPHandler serves the MCP server over streamable HTTP. The auth middleware has already
// put the user id on the request context, it is carried over to the tool call context.
func NewHTTPHandler(s *server.MCPServer) http.Handler {
	return server.NewStreamableHTTPServer(s,
		server.WithHTTPContextFunc(userFromRequest),
	)
}

// ServeStdio serves the MCP server over stdin/stdout for a fixed user.
func ServeStdio(s *server.MCPServer, userID int) error {
	return server.ServeStdio(s,
		server.WithStdioContextFunc(func(ctx context.Context) context.Context {
			return auth.WithUserID(ctx, userID)
		}),
	)
}

func userFromRequest(ctx context.Context, r *http.Request) context.Context {
	if userID, ok := auth.UserIDFromContext(r.Context()); ok {
		return auth.WithUserID(ctx, userID)
	}
	return ctx
}
