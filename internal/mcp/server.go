// Package mcp exposes the dashboard operations as MCP tools so agent
// clients can drive the same surface the HTTP API serves.
package mcp

import (
	"context"
	"log/slog"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ganot/pulseboard/internal/domain/project"
	"github.com/ganot/pulseboard/internal/domain/user"
	"github.com/ganot/pulseboard/internal/query"
)

// Dashboard defines the service operations exposed as tools.
type Dashboard interface {
	Refresh(ctx context.Context) error
	Projects(ctx context.Context, criteria query.Criteria, page int) (query.Page, error)
	Project(ctx context.Context, id string) (*project.Project, error)
	Create(ctx context.Context, req project.CreateRequest) (*project.Project, error)
	Stats(ctx context.Context) (query.Metrics, error)
	Users(ctx context.Context) ([]user.User, error)
	Theme(ctx context.Context) (string, error)
	SetTheme(ctx context.Context, mode string) error
}

// Config contains server configuration.
type Config struct {
	Service Dashboard
	Logger  *slog.Logger
}

// NewServer creates and configures an MCP server with all tools.
func NewServer(cfg Config) *sdkmcp.Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "pulseboard",
		Version: "0.1.0",
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       logger,
	})

	server.AddReceivingMiddleware(loggingMiddleware(logger))

	registerTools(server, cfg.Service)

	return server
}

const serverInstructions = `Pulseboard serves a project dashboard over an
in-memory collection ingested from an upstream provider. Use list_projects
to search, filter, and page through projects; dashboard_stats for the
aggregate metrics; create_project to add a project to the front of the
collection; refresh_data to re-ingest from upstream.`

// loggingMiddleware logs every inbound tool call.
func loggingMiddleware(logger *slog.Logger) sdkmcp.Middleware {
	return func(next sdkmcp.MethodHandler) sdkmcp.MethodHandler {
		return func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
			result, err := next(ctx, method, req)
			if err != nil {
				logger.Warn("mcp call failed", "method", method, "error", err)
			} else {
				logger.Debug("mcp call", "method", method)
			}
			return result, err
		}
	}
}
