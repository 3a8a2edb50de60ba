package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ganot/pulseboard/internal/repository"
)

func TestSettingsRepository_GetMissing(t *testing.T) {
	db := NewTestDB(t)
	repo := NewSettingsRepository(db)

	_, err := repo.Get(context.Background(), "theme")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSettingsRepository_SetAndGet(t *testing.T) {
	db := NewTestDB(t)
	repo := NewSettingsRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "theme", "dark"))

	value, err := repo.Get(ctx, "theme")
	require.NoError(t, err)
	require.Equal(t, "dark", value)

	// Overwrites on conflict.
	require.NoError(t, repo.Set(ctx, "theme", "light"))
	value, err = repo.Get(ctx, "theme")
	require.NoError(t, err)
	require.Equal(t, "light", value)
}
