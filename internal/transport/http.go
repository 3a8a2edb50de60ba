package transport

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ganot/pulseboard/internal/dashboard"
	"github.com/ganot/pulseboard/internal/domain/project"
	"github.com/ganot/pulseboard/internal/domain/user"
	"github.com/ganot/pulseboard/internal/query"
	"github.com/ganot/pulseboard/internal/upstream"
)

// Dashboard defines the service operations the HTTP API exposes.
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

// Server wires HTTP handlers.
type Server struct {
	svc    Dashboard
	logger *slog.Logger
}

// NewRouter creates the API router with middleware.
func NewRouter(svc Dashboard, logger *slog.Logger) *chi.Mux {
	if logger == nil {
		logger = slog.Default()
	}

	r := chi.NewRouter()
	r.Use(RequestIDMiddleware)
	r.Use(LoggingMiddleware(logger))

	srv := &Server{svc: svc, logger: logger}

	r.Get("/health", srv.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/projects", srv.handleListProjects)
		r.Post("/projects", srv.handleCreateProject)
		r.Get("/projects/{id}", srv.handleGetProject)
		r.Get("/users", srv.handleListUsers)
		r.Get("/stats", srv.handleStats)
		r.Post("/refresh", srv.handleRefresh)
		r.Get("/theme", srv.handleGetTheme)
		r.Put("/theme", srv.handleSetTheme)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// projectsResponse is one page of the filtered collection.
type projectsResponse struct {
	Items     []project.Project `json:"items"`
	Page      int               `json:"page"`
	PageCount int               `json:"page_count"`
	Total     int               `json:"total"`
}

func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	criteria := query.Criteria{
		Search:   q.Get("q"),
		Priority: q.Get("priority"),
		Status:   q.Get("status"),
	}

	page := 1
	if pageStr := q.Get("page"); pageStr != "" {
		parsed, err := strconv.Atoi(pageStr)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid page number")
			return
		}
		page = parsed
	}

	result, err := s.svc.Projects(r.Context(), criteria, page)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, projectsResponse{
		Items:     result.Items,
		Page:      result.Number,
		PageCount: result.PageCount,
		Total:     result.Total,
	})
}

func (s *Server) handleGetProject(w http.ResponseWriter, r *http.Request) {
	proj, err := s.svc.Project(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, proj)
}

// createProjectRequest is the JSON body for POST /api/projects.
type createProjectRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Priority    string `json:"priority"`
	Team        []int  `json:"team,omitempty"`
	Deadline    string `json:"deadline"`
	CreatedBy   int    `json:"created_by,omitempty"`
}

func (s *Server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	var body createProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var deadline time.Time
	if body.Deadline != "" {
		parsed, err := time.Parse(time.RFC3339, body.Deadline)
		if err != nil {
			writeError(w, http.StatusBadRequest, "deadline must be an RFC 3339 timestamp")
			return
		}
		deadline = parsed
	}

	proj, err := s.svc.Create(r.Context(), project.CreateRequest{
		Title:       body.Title,
		Description: body.Description,
		Priority:    project.Priority(body.Priority),
		Team:        body.Team,
		Deadline:    deadline,
		CreatedBy:   body.CreatedBy,
	})
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, proj)
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.svc.Users(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	if users == nil {
		users = []user.User{}
	}
	writeJSON(w, http.StatusOK, users)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.svc.Stats(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.Refresh(r.Context()); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type themeResponse struct {
	Mode string `json:"mode"`
}

func (s *Server) handleGetTheme(w http.ResponseWriter, r *http.Request) {
	mode, err := s.svc.Theme(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, themeResponse{Mode: mode})
}

func (s *Server) handleSetTheme(w http.ResponseWriter, r *http.Request) {
	var body themeResponse
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.svc.SetTheme(r.Context(), body.Mode); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, themeResponse{Mode: body.Mode})
}

// writeServiceError maps domain errors to HTTP status codes.
func (s *Server) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var fetchErr *upstream.FetchError

	switch {
	case errors.Is(err, project.ErrProjectNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, project.ErrTitleRequired),
		errors.Is(err, project.ErrDeadlineRequired),
		errors.Is(err, project.ErrInvalidPriority),
		errors.Is(err, project.ErrInvalidStatus),
		errors.Is(err, dashboard.ErrInvalidTheme):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &fetchErr):
		writeError(w, http.StatusBadGateway, "upstream fetch failed")
	default:
		s.logger.Error("request failed", "path", r.URL.Path, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
