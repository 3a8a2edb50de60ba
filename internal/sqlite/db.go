package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection
type DB struct {
	*sql.DB
}

// New creates a new SQLite database connection. The dashboard holds no
// durable state by design, so the usual data source is ":memory:".
func New(dataSourceName string) (*DB, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// The in-memory database must stay on one connection or each
	// conn would see its own empty schema.
	db.SetMaxOpenConns(1)

	return &DB{db}, nil
}

// RunMigrations creates the schema.
func (db *DB) RunMigrations() error {
	migration := `
-- Projects table; position orders the collection, prepends take min-1
CREATE TABLE IF NOT EXISTS projects (
    id TEXT PRIMARY KEY,
    position INTEGER NOT NULL,
    title TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    created_by INTEGER NOT NULL,
    team TEXT NOT NULL DEFAULT '[]',
    priority TEXT NOT NULL CHECK(priority IN ('high', 'medium', 'low')),
    status TEXT NOT NULL CHECK(status IN ('active', 'pending', 'completed', 'archived')),
    progress INTEGER NOT NULL CHECK(progress BETWEEN 0 AND 100),
    total_tasks INTEGER NOT NULL,
    tasks_completed INTEGER NOT NULL,
    deadline TIMESTAMP NOT NULL,
    created_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_projects_position ON projects(position);
CREATE INDEX IF NOT EXISTS idx_projects_status ON projects(status);
CREATE INDEX IF NOT EXISTS idx_projects_priority ON projects(priority);

-- Users table
CREATE TABLE IF NOT EXISTS users (
    id INTEGER PRIMARY KEY,
    position INTEGER NOT NULL,
    name TEXT NOT NULL,
    username TEXT NOT NULL,
    email TEXT NOT NULL,
    avatar_url TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_users_position ON users(position);

-- UI settings (theme preference)
CREATE TABLE IF NOT EXISTS settings (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`

	if _, err := db.Exec(migration); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
