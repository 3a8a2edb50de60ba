package mcp

import (
	"context"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ganot/pulseboard/internal/domain/project"
	"github.com/ganot/pulseboard/internal/domain/user"
	"github.com/ganot/pulseboard/internal/query"
)

type ListProjectsParams struct {
	Query    string `json:"query,omitempty" jsonschema:"search text matched against project titles and ids"`
	Priority string `json:"priority,omitempty" jsonschema:"priority filter: high, medium, low, or all"`
	Status   string `json:"status,omitempty" jsonschema:"status filter: active, pending, completed, archived, or all"`
	Page     int    `json:"page,omitempty" jsonschema:"1-based page number, 5 projects per page"`
}

type ListProjectsResult struct {
	Items     []project.Project `json:"items"`
	Page      int               `json:"page"`
	PageCount int               `json:"page_count"`
	Total     int               `json:"total"`
}

type GetProjectParams struct {
	ID string `json:"id" jsonschema:"project identifier, e.g. PRJ-001"`
}

type CreateProjectParams struct {
	Title       string `json:"title" jsonschema:"project title (required)"`
	Description string `json:"description,omitempty" jsonschema:"free-text description"`
	Priority    string `json:"priority" jsonschema:"high, medium, or low"`
	Team        []int  `json:"team,omitempty" jsonschema:"user ids assigned to the project"`
	Deadline    string `json:"deadline" jsonschema:"RFC 3339 deadline timestamp (required)"`
	CreatedBy   int    `json:"created_by,omitempty" jsonschema:"creator user id; defaults to the first known user"`
}

type ListUsersResult struct {
	Users []user.User `json:"users"`
}

type StatsParams struct{}

type RefreshParams struct{}

type RefreshResult struct {
	Projects int `json:"projects"`
	Users    int `json:"users"`
}

type ThemeParams struct{}

type SetThemeParams struct {
	Mode string `json:"mode" jsonschema:"theme mode: light or dark"`
}

type ThemeResult struct {
	Mode string `json:"mode"`
}

func registerTools(server *sdkmcp.Server, svc Dashboard) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_projects",
		Description: "Search, filter, and page through the project collection",
	}, listProjectsHandler(svc))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_project",
		Description: "Get a single project by identifier",
	}, getProjectHandler(svc))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "create_project",
		Description: "Create a project and place it at the front of the collection",
	}, createProjectHandler(svc))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_users",
		Description: "List the ingested users",
	}, listUsersHandler(svc))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "dashboard_stats",
		Description: "Aggregate metrics over the full project collection",
	}, statsHandler(svc))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "refresh_data",
		Description: "Re-ingest users and projects from the upstream provider",
	}, refreshHandler(svc))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_theme",
		Description: "Get the persisted dashboard theme mode",
	}, getThemeHandler(svc))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "set_theme",
		Description: "Persist the dashboard theme mode",
	}, setThemeHandler(svc))
}

func listProjectsHandler(svc Dashboard) sdkmcp.ToolHandlerFor[ListProjectsParams, ListProjectsResult] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, params ListProjectsParams) (*sdkmcp.CallToolResult, ListProjectsResult, error) {
		page := params.Page
		if page == 0 {
			page = 1
		}
		result, err := svc.Projects(ctx, query.Criteria{
			Search:   params.Query,
			Priority: params.Priority,
			Status:   params.Status,
		}, page)
		if err != nil {
			return nil, ListProjectsResult{}, err
		}
		return nil, ListProjectsResult{
			Items:     result.Items,
			Page:      result.Number,
			PageCount: result.PageCount,
			Total:     result.Total,
		}, nil
	}
}

func getProjectHandler(svc Dashboard) sdkmcp.ToolHandlerFor[GetProjectParams, project.Project] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, params GetProjectParams) (*sdkmcp.CallToolResult, project.Project, error) {
		proj, err := svc.Project(ctx, params.ID)
		if err != nil {
			return nil, project.Project{}, err
		}
		return nil, *proj, nil
	}
}

func createProjectHandler(svc Dashboard) sdkmcp.ToolHandlerFor[CreateProjectParams, project.Project] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, params CreateProjectParams) (*sdkmcp.CallToolResult, project.Project, error) {
		var deadline time.Time
		if params.Deadline != "" {
			parsed, err := time.Parse(time.RFC3339, params.Deadline)
			if err != nil {
				return nil, project.Project{}, project.ErrDeadlineRequired
			}
			deadline = parsed
		}

		proj, err := svc.Create(ctx, project.CreateRequest{
			Title:       params.Title,
			Description: params.Description,
			Priority:    project.Priority(params.Priority),
			Team:        params.Team,
			Deadline:    deadline,
			CreatedBy:   params.CreatedBy,
		})
		if err != nil {
			return nil, project.Project{}, err
		}
		return nil, *proj, nil
	}
}

func listUsersHandler(svc Dashboard) sdkmcp.ToolHandlerFor[StatsParams, ListUsersResult] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, _ StatsParams) (*sdkmcp.CallToolResult, ListUsersResult, error) {
		users, err := svc.Users(ctx)
		if err != nil {
			return nil, ListUsersResult{}, err
		}
		if users == nil {
			users = []user.User{}
		}
		return nil, ListUsersResult{Users: users}, nil
	}
}

func statsHandler(svc Dashboard) sdkmcp.ToolHandlerFor[StatsParams, query.Metrics] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, _ StatsParams) (*sdkmcp.CallToolResult, query.Metrics, error) {
		stats, err := svc.Stats(ctx)
		if err != nil {
			return nil, query.Metrics{}, err
		}
		return nil, stats, nil
	}
}

func refreshHandler(svc Dashboard) sdkmcp.ToolHandlerFor[RefreshParams, RefreshResult] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, _ RefreshParams) (*sdkmcp.CallToolResult, RefreshResult, error) {
		if err := svc.Refresh(ctx); err != nil {
			return nil, RefreshResult{}, err
		}

		users, err := svc.Users(ctx)
		if err != nil {
			return nil, RefreshResult{}, err
		}
		page, err := svc.Projects(ctx, query.Criteria{}, 1)
		if err != nil {
			return nil, RefreshResult{}, err
		}
		return nil, RefreshResult{Projects: page.Total, Users: len(users)}, nil
	}
}

func getThemeHandler(svc Dashboard) sdkmcp.ToolHandlerFor[ThemeParams, ThemeResult] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, _ ThemeParams) (*sdkmcp.CallToolResult, ThemeResult, error) {
		mode, err := svc.Theme(ctx)
		if err != nil {
			return nil, ThemeResult{}, err
		}
		return nil, ThemeResult{Mode: mode}, nil
	}
}

func setThemeHandler(svc Dashboard) sdkmcp.ToolHandlerFor[SetThemeParams, ThemeResult] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, params SetThemeParams) (*sdkmcp.CallToolResult, ThemeResult, error) {
		if err := svc.SetTheme(ctx, params.Mode); err != nil {
			return nil, ThemeResult{}, err
		}
		return nil, ThemeResult{Mode: params.Mode}, nil
	}
}
