package project

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ganot/pulseboard/internal/repository"
)

// FallbackCreatorID is used when a project is created before any users have
// been ingested.
const FallbackCreatorID = 1

// Service handles project operations.
type Service struct {
	repo   Repository
	users  UserDirectory
	logger *slog.Logger
	now    func() time.Time
}

// NewService creates a new project service.
func NewService(repo Repository, users UserDirectory, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, users: users, logger: logger, now: time.Now}
}

// CreateRequest defines project creation inputs.
type CreateRequest struct {
	Title       string
	Description string
	Priority    Priority
	Team        []int
	Deadline    time.Time
	CreatedBy   int
}

// Create validates the request, assigns the next sequential identifier, and
// prepends the project to the collection. The collection is untouched when
// validation fails.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Project, error) {
	if err := ValidateCreateInput(req); err != nil {
		return nil, err
	}

	count, err := s.repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting projects: %w", err)
	}

	createdBy := req.CreatedBy
	if createdBy == 0 {
		createdBy = s.defaultCreator(ctx)
	}

	team := req.Team
	if team == nil {
		team = []int{}
	}

	proj := &Project{
		ID:             FormatID(count + 1),
		Title:          req.Title,
		Description:    req.Description,
		CreatedBy:      createdBy,
		Team:           team,
		Priority:       req.Priority,
		Status:         StatusActive,
		Progress:       0,
		TotalTasks:     DefaultTotalTasks,
		TasksCompleted: 0,
		Deadline:       req.Deadline,
		CreatedAt:      s.now(),
	}

	if err := s.repo.Prepend(ctx, proj); err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}

	s.logger.Info("project created", "id", proj.ID, "title", proj.Title)
	return proj, nil
}

// Get fetches a project by ID.
func (s *Service) Get(ctx context.Context, id string) (*Project, error) {
	proj, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("getting project: %w", err)
	}
	return proj, nil
}

// List returns the full ordered collection.
func (s *Service) List(ctx context.Context) ([]Project, error) {
	return s.repo.List(ctx)
}

func (s *Service) defaultCreator(ctx context.Context) int {
	id, err := s.users.FirstID(ctx)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.logger.Warn("resolving default creator", "error", err)
		}
		return FallbackCreatorID
	}
	return id
}

// FormatID renders a 1-based sequence number as a PRJ-NNN identifier,
// zero-padded to three digits.
func FormatID(seq int) string {
	return fmt.Sprintf("PRJ-%03d", seq)
}
