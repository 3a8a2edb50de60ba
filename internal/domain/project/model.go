package project

import "time"

// Priority represents the urgency bucket of a project.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Status represents the lifecycle state of a project.
type Status string

const (
	StatusActive    Status = "active"
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	// StatusArchived is accepted as a filter value but never assigned to a
	// project; no archival transition exists.
	StatusArchived Status = "archived"
)

// DefaultTotalTasks is the task count every synthesized project carries.
const DefaultTotalTasks = 20

// MaxTitleLen is the title length ceiling, in runes, applied at ingestion.
const MaxTitleLen = 60

// Project represents a dashboard project. Ingested projects carry synthetic
// team, progress, and scheduling fields; manually created ones start at zero
// progress with status active.
type Project struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description,omitempty"`
	CreatedBy      int       `json:"created_by"`
	Team           []int     `json:"team"`
	Priority       Priority  `json:"priority"`
	Status         Status    `json:"status"`
	Progress       int       `json:"progress"`
	TotalTasks     int       `json:"total_tasks"`
	TasksCompleted int       `json:"tasks_completed"`
	Deadline       time.Time `json:"deadline"`
	CreatedAt      time.Time `json:"created_at"`
}

// Priorities lists the assignable priority values.
func Priorities() []Priority {
	return []Priority{PriorityHigh, PriorityMedium, PriorityLow}
}

// Statuses lists the status values ingestion may assign. StatusArchived is
// deliberately absent.
func Statuses() []Status {
	return []Status{StatusActive, StatusPending, StatusCompleted}
}
