package domain

import "time"

// Status represents the workflow state of a task.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// Statuses returns all known statuses in display order.
func Statuses() []Status {
	return []Status{StatusTodo, StatusInProgress, StatusCompleted}
}

// IsValid checks if the status is one of the known values.
func (s Status) IsValid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Label returns the status with underscores replaced for display purposes.
func (s Status) Label() string {
	if s == StatusInProgress {
		return "in progress"
	}
	return string(s)
}

// Priority represents the urgency of a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Priorities returns all known priorities in display order.
func Priorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}

// IsValid checks if the priority is one of the known values.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// UserRef is a resolved reference to the user a task is assigned to.
// Any task returned by a successful fetch carries a non-empty reference.
type UserRef struct {
	ID       string
	Username string
}

// Task represents a task in the domain model.
// The server owns the record; this is the client's cached copy per fetch.
type Task struct {
	ID          string
	Title       string
	Description string
	DueDate     time.Time
	Priority    Priority
	Status      Status
	AssignedTo  UserRef
	CreatedAt   time.Time
}

// TaskDraft holds the fields a caller supplies when creating or updating a task.
// DueDate is the raw form value (YYYY-MM-DD); validation checks it before send.
type TaskDraft struct {
	Title       string
	Description string
	DueDate     string
	Priority    Priority
	Status      Status
	AssignedTo  string
}
