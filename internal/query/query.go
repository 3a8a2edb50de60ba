// Package query implements the client-facing view pipeline: an
// order-preserving filter over the project collection, fixed-size
// pagination, and dashboard aggregate metrics. Everything here is a pure
// function of its inputs.
package query

import (
	"math"
	"strings"

	"github.com/ganot/pulseboard/internal/domain/project"
)

// PageSize is the fixed number of projects per page.
const PageSize = 5

// Wildcard matches any priority or status.
const Wildcard = "all"

// Criteria captures the current search text and filter selections. An empty
// Search matches everything; Priority and Status are wildcards when empty or
// set to Wildcard.
type Criteria struct {
	Search   string
	Priority string
	Status   string
}

// Filter applies the criteria to the collection, preserving input order.
// Conditions are ANDed and short-circuit: search text against title or ID
// (case-insensitive substring), then priority, then status.
func Filter(projects []project.Project, c Criteria) []project.Project {
	q := strings.ToLower(strings.TrimSpace(c.Search))
	out := make([]project.Project, 0, len(projects))
	for _, p := range projects {
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Title), q) &&
			!strings.Contains(strings.ToLower(p.ID), q) {
			continue
		}
		if !wildcard(c.Priority) && string(p.Priority) != c.Priority {
			continue
		}
		if !wildcard(c.Status) && string(p.Status) != c.Status {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Page is one page of a filtered collection.
type Page struct {
	Items []project.Project
	// Number is the effective page after clamping into [1, PageCount].
	Number    int
	PageCount int
	Total     int
}

// Paginate slices the filtered collection into the requested page. A page
// outside [1, PageCount] is clamped rather than returning an empty slice,
// so narrowing a filter never strands the caller on a vacant page.
func Paginate(filtered []project.Project, page int) Page {
	count := PageCount(len(filtered))
	if page < 1 {
		page = 1
	}
	if page > count {
		page = count
	}

	start := (page - 1) * PageSize
	end := start + PageSize
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}

	return Page{
		Items:     filtered[start:end],
		Number:    page,
		PageCount: count,
		Total:     len(filtered),
	}
}

// PageCount returns the number of pages for n items, never less than one.
func PageCount(n int) int {
	if n <= 0 {
		return 1
	}
	return (n + PageSize - 1) / PageSize
}

// Metrics are the dashboard aggregates, computed over the unfiltered
// collection.
type Metrics struct {
	ActiveCount     int `json:"active_count"`
	TotalTasks      int `json:"total_tasks"`
	TeamUniqueCount int `json:"team_unique_count"`
	CompletionRate  int `json:"completion_rate"`
}

// Stats computes the dashboard aggregates.
func Stats(projects []project.Project) Metrics {
	members := make(map[int]struct{})
	m := Metrics{}
	completed := 0
	for _, p := range projects {
		if p.Status == project.StatusActive {
			m.ActiveCount++
		}
		m.TotalTasks += p.TotalTasks
		completed += p.TasksCompleted
		for _, id := range p.Team {
			members[id] = struct{}{}
		}
	}
	m.TeamUniqueCount = len(members)
	m.CompletionRate = completionRate(completed, m.TotalTasks)
	return m
}

// CompletionRate returns round(Σ completed / Σ total × 100) for the
// collection, or zero when no tasks exist.
func CompletionRate(projects []project.Project) int {
	total, completed := 0, 0
	for _, p := range projects {
		total += p.TotalTasks
		completed += p.TasksCompleted
	}
	return completionRate(completed, total)
}

func completionRate(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

func wildcard(v string) bool {
	return v == "" || v == Wildcard
}
