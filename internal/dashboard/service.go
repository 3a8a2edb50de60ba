// Package dashboard wires ingestion, storage, and the query pipeline into
// the operations the transport layers expose.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ganot/pulseboard/internal/domain/project"
	"github.com/ganot/pulseboard/internal/domain/user"
	"github.com/ganot/pulseboard/internal/query"
	"github.com/ganot/pulseboard/internal/repository"
)

// Theme modes persisted in the settings store. Any other stored value is
// treated as absent.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"

	themeKey = "theme"
)

// ErrInvalidTheme indicates a theme mode other than light or dark.
var ErrInvalidTheme = errors.New("invalid theme mode")

// Ingestor produces the domain collections from the upstream source.
type Ingestor interface {
	Ingest(ctx context.Context) ([]user.User, []project.Project, error)
}

// Settings is the injected key-value capability backing UI preferences.
type Settings interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// ProjectCreator is the mutation surface of the project service.
type ProjectCreator interface {
	Create(ctx context.Context, req project.CreateRequest) (*project.Project, error)
	Get(ctx context.Context, id string) (*project.Project, error)
}

// Service exposes the dashboard operations.
type Service struct {
	ingestor Ingestor
	projects project.Repository
	users    user.Repository
	creator  ProjectCreator
	settings Settings
	logger   *slog.Logger
}

// NewService creates a dashboard service.
func NewService(ingestor Ingestor, projects project.Repository, users user.Repository, creator ProjectCreator, settings Settings, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		ingestor: ingestor,
		projects: projects,
		users:    users,
		creator:  creator,
		settings: settings,
		logger:   logger,
	}
}

// Refresh ingests the upstream collections and replaces the stored ones.
// On ingestion failure nothing is applied; the previous collections remain
// visible.
func (s *Service) Refresh(ctx context.Context) error {
	users, projects, err := s.ingestor.Ingest(ctx)
	if err != nil {
		return fmt.Errorf("refreshing dashboard: %w", err)
	}

	if err := s.users.ReplaceAll(ctx, users); err != nil {
		return fmt.Errorf("storing users: %w", err)
	}
	if err := s.projects.ReplaceAll(ctx, projects); err != nil {
		return fmt.Errorf("storing projects: %w", err)
	}

	s.logger.Info("dashboard refreshed", "users", len(users), "projects", len(projects))
	return nil
}

// Projects applies the criteria to the stored collection and returns the
// requested page.
func (s *Service) Projects(ctx context.Context, criteria query.Criteria, page int) (query.Page, error) {
	all, err := s.projects.List(ctx)
	if err != nil {
		return query.Page{}, fmt.Errorf("listing projects: %w", err)
	}
	return query.Paginate(query.Filter(all, criteria), page), nil
}

// Project fetches a single project by ID.
func (s *Service) Project(ctx context.Context, id string) (*project.Project, error) {
	return s.creator.Get(ctx, id)
}

// Create validates and prepends a new project.
func (s *Service) Create(ctx context.Context, req project.CreateRequest) (*project.Project, error) {
	return s.creator.Create(ctx, req)
}

// Stats computes the aggregate metrics over the unfiltered collection.
func (s *Service) Stats(ctx context.Context) (query.Metrics, error) {
	all, err := s.projects.List(ctx)
	if err != nil {
		return query.Metrics{}, fmt.Errorf("listing projects: %w", err)
	}
	return query.Stats(all), nil
}

// Users returns the ingested user collection.
func (s *Service) Users(ctx context.Context) ([]user.User, error) {
	return s.users.List(ctx)
}

// Theme returns the persisted theme mode, defaulting to light when unset or
// unrecognized.
func (s *Service) Theme(ctx context.Context) (string, error) {
	mode, err := s.settings.Get(ctx, themeKey)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ThemeLight, nil
		}
		return "", fmt.Errorf("reading theme: %w", err)
	}
	if mode != ThemeLight && mode != ThemeDark {
		return ThemeLight, nil
	}
	return mode, nil
}

// SetTheme persists the theme mode.
func (s *Service) SetTheme(ctx context.Context, mode string) error {
	if mode != ThemeLight && mode != ThemeDark {
		return ErrInvalidTheme
	}
	if err := s.settings.Set(ctx, themeKey, mode); err != nil {
		return fmt.Errorf("storing theme: %w", err)
	}
	return nil
}
