package project

import "errors"

var (
	// ErrProjectNotFound indicates the project doesn't exist.
	ErrProjectNotFound = errors.New("project not found")
	// ErrTitleRequired indicates an empty or whitespace-only title.
	ErrTitleRequired = errors.New("project title is required")
	// ErrDeadlineRequired indicates a missing deadline.
	ErrDeadlineRequired = errors.New("project deadline is required")
	// ErrInvalidPriority indicates an unknown priority value.
	ErrInvalidPriority = errors.New("invalid project priority")
	// ErrInvalidStatus indicates an unknown status value.
	ErrInvalidStatus = errors.New("invalid project status")
)
