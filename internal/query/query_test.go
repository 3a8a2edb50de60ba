package query_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ganot/pulseboard/internal/domain/project"
	"github.com/ganot/pulseboard/internal/query"
)

func makeProjects(n int) []project.Project {
	projects := make([]project.Project, 0, n)
	for i := 1; i <= n; i++ {
		projects = append(projects, project.Project{
			ID:         project.FormatID(i),
			Title:      fmt.Sprintf("Project %d", i),
			Priority:   project.PriorityMedium,
			Status:     project.StatusPending,
			TotalTasks: project.DefaultTotalTasks,
		})
	}
	return projects
}

func TestFilter_EmptyCriteriaMatchesAll(t *testing.T) {
	projects := makeProjects(7)

	require.Equal(t, projects, query.Filter(projects, query.Criteria{}))
	require.Equal(t, projects, query.Filter(projects, query.Criteria{
		Priority: query.Wildcard,
		Status:   query.Wildcard,
	}))
}

func TestFilter_SearchMatchesTitleOrID(t *testing.T) {
	projects := []project.Project{
		{ID: "PRJ-001", Title: "Migrate billing"},
		{ID: "PRJ-002", Title: "Redesign onboarding"},
		{ID: "PRJ-010", Title: "Billing alerts"},
	}

	byTitle := query.Filter(projects, query.Criteria{Search: "BILLING"})
	require.Len(t, byTitle, 2)
	require.Equal(t, "PRJ-001", byTitle[0].ID)
	require.Equal(t, "PRJ-010", byTitle[1].ID)

	byID := query.Filter(projects, query.Criteria{Search: "prj-01"})
	require.Len(t, byID, 1)
	require.Equal(t, "PRJ-010", byID[0].ID)

	// Surrounding whitespace in the search text is ignored.
	require.Len(t, query.Filter(projects, query.Criteria{Search: "  billing "}), 2)
}

func TestFilter_PriorityScenario(t *testing.T) {
	// 7 projects, 3 with priority high.
	projects := makeProjects(7)
	projects[0].Priority = project.PriorityHigh
	projects[3].Priority = project.PriorityHigh
	projects[6].Priority = project.PriorityHigh

	filtered := query.Filter(projects, query.Criteria{Priority: "high"})
	require.Len(t, filtered, 3)

	page := query.Paginate(filtered, 1)
	require.Equal(t, 1, page.PageCount)
	require.Len(t, page.Items, 3)
}

func TestFilter_CombinedCriteria(t *testing.T) {
	projects := makeProjects(6)
	projects[1].Priority = project.PriorityHigh
	projects[1].Status = project.StatusActive
	projects[4].Priority = project.PriorityHigh
	projects[4].Status = project.StatusCompleted

	filtered := query.Filter(projects, query.Criteria{Priority: "high", Status: "active"})
	require.Len(t, filtered, 1)
	require.Equal(t, "PRJ-002", filtered[0].ID)
}

func TestFilter_ArchivedMatchesNothingIngested(t *testing.T) {
	require.Empty(t, query.Filter(makeProjects(10), query.Criteria{Status: "archived"}))
}

func TestFilter_Idempotent(t *testing.T) {
	projects := makeProjects(12)
	projects[2].Priority = project.PriorityHigh
	projects[8].Priority = project.PriorityHigh
	criteria := query.Criteria{Search: "project", Priority: "high"}

	once := query.Filter(projects, criteria)
	twice := query.Filter(once, criteria)
	require.Equal(t, once, twice)
}

func TestFilter_PreservesOrder(t *testing.T) {
	projects := makeProjects(20)
	filtered := query.Filter(projects, query.Criteria{Search: "project"})
	require.Equal(t, projects, filtered)
}

func TestPaginate_TwelveProjects(t *testing.T) {
	projects := makeProjects(12)

	page := query.Paginate(projects, 3)
	require.Equal(t, 3, page.PageCount)
	require.Equal(t, 3, page.Number)
	require.Len(t, page.Items, 2)
	require.Equal(t, 12, page.Total)
}

func TestPaginate_CoversFilteredSetExactlyOnce(t *testing.T) {
	projects := makeProjects(23)

	var reassembled []project.Project
	first := query.Paginate(projects, 1)
	for p := 1; p <= first.PageCount; p++ {
		page := query.Paginate(projects, p)
		reassembled = append(reassembled, page.Items...)
	}
	require.Equal(t, projects, reassembled)
}

func TestPaginate_EmptyCollection(t *testing.T) {
	page := query.Paginate(nil, 1)
	require.Equal(t, 1, page.PageCount)
	require.Equal(t, 1, page.Number)
	require.Empty(t, page.Items)
	require.Equal(t, 0, page.Total)
}

func TestPaginate_ClampsOutOfRangePage(t *testing.T) {
	projects := makeProjects(12)

	// A page beyond the last snaps back instead of going vacant.
	beyond := query.Paginate(projects, 9)
	require.Equal(t, 3, beyond.Number)
	require.Len(t, beyond.Items, 2)

	below := query.Paginate(projects, 0)
	require.Equal(t, 1, below.Number)
	require.Len(t, below.Items, 5)
}

func TestPageCount(t *testing.T) {
	require.Equal(t, 1, query.PageCount(0))
	require.Equal(t, 1, query.PageCount(1))
	require.Equal(t, 1, query.PageCount(5))
	require.Equal(t, 2, query.PageCount(6))
	require.Equal(t, 3, query.PageCount(12))
}

func TestStats(t *testing.T) {
	projects := []project.Project{
		{Status: project.StatusActive, TotalTasks: 20, TasksCompleted: 10, Team: []int{1, 2, 3}},
		{Status: project.StatusPending, TotalTasks: 20, TasksCompleted: 5, Team: []int{2, 3, 4}},
		{Status: project.StatusActive, TotalTasks: 20, TasksCompleted: 0, Team: []int{4, 4, 5}},
	}

	m := query.Stats(projects)
	require.Equal(t, 2, m.ActiveCount)
	require.Equal(t, 60, m.TotalTasks)
	require.Equal(t, 5, m.TeamUniqueCount)
	require.Equal(t, 25, m.CompletionRate) // round(15/60*100)
}

func TestCompletionRate_Empty(t *testing.T) {
	require.Equal(t, 0, query.CompletionRate(nil))
	require.Equal(t, 0, query.CompletionRate([]project.Project{}))

	m := query.Stats(nil)
	require.Equal(t, 0, m.CompletionRate)
}

func TestCompletionRate_Rounding(t *testing.T) {
	projects := []project.Project{
		{TotalTasks: 20, TasksCompleted: 1},
		{TotalTasks: 20, TasksCompleted: 2},
	}
	// 3/40 = 7.5% rounds to 8.
	require.Equal(t, 8, query.CompletionRate(projects))
}
