package project

import "strings"

// ValidateCreateInput validates fields required to create a project.
func ValidateCreateInput(req CreateRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return ErrTitleRequired
	}
	if req.Deadline.IsZero() {
		return ErrDeadlineRequired
	}
	if _, err := ParsePriority(string(req.Priority)); err != nil {
		return err
	}
	return nil
}

// ParsePriority validates a priority value.
func ParsePriority(s string) (Priority, error) {
	switch p := Priority(s); p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return p, nil
	}
	return "", ErrInvalidPriority
}

// ParseStatus validates a status value. StatusArchived is accepted here
// because the filter surface offers it, even though nothing assigns it.
func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusActive, StatusPending, StatusCompleted, StatusArchived:
		return st, nil
	}
	return "", ErrInvalidStatus
}

// TruncateTitle clips a title to MaxTitleLen runes. Shorter titles pass
// through unchanged.
func TruncateTitle(title string) string {
	runes := []rune(title)
	if len(runes) <= MaxTitleLen {
		return title
	}
	return string(runes[:MaxTitleLen])
}
