package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/ganot/pulseboard/internal/domain/project"
	"github.com/ganot/pulseboard/internal/repository"
)

// ProjectRepository implements project.Repository for SQLite
type ProjectRepository struct {
	db *DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// ReplaceAll swaps the whole collection for the given projects, assigning
// positions in slice order. Used after ingestion.
func (r *ProjectRepository) ReplaceAll(ctx context.Context, projects []project.Project) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM projects`); err != nil {
		return fmt.Errorf("failed to clear projects: %w", err)
	}

	for i, proj := range projects {
		if err := insertProject(ctx, tx, &proj, i+1); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Prepend inserts a project at the front of the collection.
func (r *ProjectRepository) Prepend(ctx context.Context, proj *project.Project) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var minPos sql.NullInt64
	if err := tx.QueryRowContext(ctx, `SELECT MIN(position) FROM projects`).Scan(&minPos); err != nil {
		return fmt.Errorf("failed to find front position: %w", err)
	}

	position := 1
	if minPos.Valid {
		position = int(minPos.Int64) - 1
	}

	if err := insertProject(ctx, tx, proj, position); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func insertProject(ctx context.Context, tx *sql.Tx, proj *project.Project, position int) error {
	team, err := json.Marshal(proj.Team)
	if err != nil {
		return fmt.Errorf("failed to encode team: %w", err)
	}

	query := `
		INSERT INTO projects (
			id, position, title, description, created_by, team,
			priority, status, progress, total_tasks, tasks_completed,
			deadline, created_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = tx.ExecContext(ctx, query,
		proj.ID,
		position,
		proj.Title,
		proj.Description,
		proj.CreatedBy,
		string(team),
		proj.Priority,
		proj.Status,
		proj.Progress,
		proj.TotalTasks,
		proj.TasksCompleted,
		proj.Deadline,
		proj.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert project: %w", err)
	}
	return nil
}

const projectColumns = `
	id, title, description, created_by, team, priority, status,
	progress, total_tasks, tasks_completed, deadline, created_at
`

// List returns the full collection in order, front first.
func (r *ProjectRepository) List(ctx context.Context) ([]project.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects ORDER BY position ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []project.Project
	for rows.Next() {
		proj, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, *proj)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating project rows: %w", err)
	}

	return projects, nil
}

// Get retrieves a project by ID
func (r *ProjectRepository) Get(ctx context.Context, id string) (*project.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = ?`

	row := r.db.QueryRowContext(ctx, query, id)
	proj, err := scanProject(row)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	return proj, nil
}

// Count returns the collection size.
func (r *ProjectRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM projects`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count projects: %w", err)
	}
	return count, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProject(s scanner) (*project.Project, error) {
	var (
		proj project.Project
		team string
	)
	err := s.Scan(
		&proj.ID,
		&proj.Title,
		&proj.Description,
		&proj.CreatedBy,
		&team,
		&proj.Priority,
		&proj.Status,
		&proj.Progress,
		&proj.TotalTasks,
		&proj.TasksCompleted,
		&proj.Deadline,
		&proj.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan project: %w", err)
	}

	if err := json.Unmarshal([]byte(team), &proj.Team); err != nil {
		return nil, fmt.Errorf("failed to decode team: %w", err)
	}
	if proj.Team == nil {
		proj.Team = []int{}
	}

	return &proj, nil
}
