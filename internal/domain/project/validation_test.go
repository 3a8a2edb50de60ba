package project_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ganot/pulseboard/internal/domain/project"
)

func TestValidateCreateInput(t *testing.T) {
	deadline := time.Now().AddDate(0, 0, 10)

	tests := []struct {
		name    string
		req     project.CreateRequest
		wantErr error
	}{
		{
			name: "valid",
			req:  project.CreateRequest{Title: "Launch", Priority: project.PriorityHigh, Deadline: deadline},
		},
		{
			name:    "empty title",
			req:     project.CreateRequest{Title: "", Priority: project.PriorityHigh, Deadline: deadline},
			wantErr: project.ErrTitleRequired,
		},
		{
			name:    "whitespace title",
			req:     project.CreateRequest{Title: "   \t", Priority: project.PriorityHigh, Deadline: deadline},
			wantErr: project.ErrTitleRequired,
		},
		{
			name:    "missing deadline",
			req:     project.CreateRequest{Title: "Launch", Priority: project.PriorityHigh},
			wantErr: project.ErrDeadlineRequired,
		},
		{
			name:    "unknown priority",
			req:     project.CreateRequest{Title: "Launch", Priority: "urgent", Deadline: deadline},
			wantErr: project.ErrInvalidPriority,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := project.ValidateCreateInput(tt.req)
			if tt.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestParseStatus_AcceptsArchived(t *testing.T) {
	st, err := project.ParseStatus("archived")
	require.NoError(t, err)
	require.Equal(t, project.StatusArchived, st)

	_, err = project.ParseStatus("deleted")
	require.ErrorIs(t, err, project.ErrInvalidStatus)
}

func TestStatuses_NeverProduceArchived(t *testing.T) {
	require.NotContains(t, project.Statuses(), project.StatusArchived)
}

func TestTruncateTitle(t *testing.T) {
	require.Equal(t, "short", project.TruncateTitle("short"))

	long := strings.Repeat("ab", 50)
	require.Equal(t, long[:60], project.TruncateTitle(long))

	// Rune-aware: multibyte titles are not split mid-character.
	wide := strings.Repeat("é", 80)
	truncated := project.TruncateTitle(wide)
	require.Equal(t, 60, len([]rune(truncated)))
	require.Equal(t, strings.Repeat("é", 60), truncated)

	exact := strings.Repeat("x", 60)
	require.Equal(t, exact, project.TruncateTitle(exact))
}

func TestFormatID(t *testing.T) {
	require.Equal(t, "PRJ-001", project.FormatID(1))
	require.Equal(t, "PRJ-042", project.FormatID(42))
	require.Equal(t, "PRJ-100", project.FormatID(100))
	require.Equal(t, "PRJ-1000", project.FormatID(1000))
}
