package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ganot/pulseboard/internal/domain/user"
	"github.com/ganot/pulseboard/internal/repository"
)

// UserRepository implements user.Repository for SQLite
type UserRepository struct {
	db *DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{db: db}
}

// ReplaceAll swaps the whole user collection, assigning positions in slice
// order. Used after ingestion.
func (r *UserRepository) ReplaceAll(ctx context.Context, users []user.User) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM users`); err != nil {
		return fmt.Errorf("failed to clear users: %w", err)
	}

	query := `
		INSERT INTO users (id, position, name, username, email, avatar_url)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	for i, u := range users {
		_, err := tx.ExecContext(ctx, query, u.ID, i+1, u.Name, u.Username, u.Email, u.AvatarURL)
		if err != nil {
			return fmt.Errorf("failed to insert user: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// List returns all users in ingestion order.
func (r *UserRepository) List(ctx context.Context) ([]user.User, error) {
	query := `
		SELECT id, name, username, email, avatar_url
		FROM users
		ORDER BY position ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		var u user.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Username, &u.Email, &u.AvatarURL); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}

	return users, nil
}

// First returns the first ingested user.
func (r *UserRepository) First(ctx context.Context) (*user.User, error) {
	query := `
		SELECT id, name, username, email, avatar_url
		FROM users
		ORDER BY position ASC
		LIMIT 1
	`

	var u user.User
	err := r.db.QueryRowContext(ctx, query).Scan(&u.ID, &u.Name, &u.Username, &u.Email, &u.AvatarURL)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get first user: %w", err)
	}

	return &u, nil
}

// FirstID returns the ID of the first ingested user, satisfying
// project.UserDirectory.
func (r *UserRepository) FirstID(ctx context.Context) (int, error) {
	u, err := r.First(ctx)
	if err != nil {
		return 0, err
	}
	return u.ID, nil
}
