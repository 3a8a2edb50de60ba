package sqlite

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// NewTestDB creates a new in-memory SQLite database for testing
func NewTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := New(":memory:")
	require.NoError(t, err, "failed to create test database")

	err = db.RunMigrations()
	require.NoError(t, err, "failed to run migrations")

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// TestMigrations verifies that migrations run successfully
func TestMigrations(t *testing.T) {
	db := NewTestDB(t)

	tables := []string{"projects", "users", "settings"}

	for _, table := range tables {
		var count int
		err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&count)
		require.NoError(t, err, "failed to query table %s", table)
		require.Equal(t, 1, count, "table %s not found", table)
	}
}

// TestProjectConstraints verifies the enum and range checks on projects
func TestProjectConstraints(t *testing.T) {
	db := NewTestDB(t)

	insert := `
		INSERT INTO projects (
			id, position, title, created_by, team, priority, status,
			progress, total_tasks, tasks_completed, deadline, created_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, datetime('now'), datetime('now'))
	`

	_, err := db.Exec(insert, "PRJ-001", 1, "ok", 1, "[]", "high", "active", 50, 20, 10)
	require.NoError(t, err)

	// Unknown priority
	_, err = db.Exec(insert, "PRJ-002", 2, "bad", 1, "[]", "urgent", "active", 50, 20, 10)
	require.Error(t, err)

	// Unknown status
	_, err = db.Exec(insert, "PRJ-003", 3, "bad", 1, "[]", "high", "deleted", 50, 20, 10)
	require.Error(t, err)

	// Progress out of range
	_, err = db.Exec(insert, "PRJ-004", 4, "bad", 1, "[]", "high", "active", 101, 20, 10)
	require.Error(t, err)
}
