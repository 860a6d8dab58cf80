package domain

import (
	"time"

	"taskboard/internal/errors"
	"taskboard/internal/repository/rest"
)

const dueDateFormat = "2006-01-02"

// TaskMapper handles conversion between wire and domain Task models.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// FromWire converts an API Task to a domain Task.
// A task without a resolvable assignee is a contract violation on the
// server's side and fails loudly here rather than producing a blank row.
func (m *TaskMapper) FromWire(wireTask rest.Task) (Task, error) {
	if wireTask.AssignedTo.ID == "" && wireTask.AssignedTo.Username == "" {
		return Task{}, errors.NewValidationError("task is missing its assignee", nil).
			WithContext("task_id", wireTask.ID)
	}

	return Task{
		ID:          wireTask.ID,
		Title:       wireTask.Title,
		Description: wireTask.Description,
		DueDate:     parseAPITime(wireTask.DueDate),
		Priority:    Priority(wireTask.Priority),
		Status:      Status(wireTask.Status),
		AssignedTo: UserRef{
			ID:       wireTask.AssignedTo.ID,
			Username: wireTask.AssignedTo.Username,
		},
		CreatedAt: parseAPITime(wireTask.CreatedAt),
	}, nil
}

// FromWireSlice converts a slice of API Tasks to domain Tasks, preserving
// the server-determined order.
func (m *TaskMapper) FromWireSlice(wireTasks []*rest.Task) ([]*Task, error) {
	domainTasks := make([]*Task, len(wireTasks))
	for i, wireTask := range wireTasks {
		domainTask, err := m.FromWire(*wireTask)
		if err != nil {
			return nil, err
		}
		domainTasks[i] = &domainTask
	}
	return domainTasks, nil
}

// ToPayload converts a domain TaskDraft to an API task payload.
func (m *TaskMapper) ToPayload(draft TaskDraft) rest.TaskPayload {
	return rest.TaskPayload{
		Title:       draft.Title,
		Description: draft.Description,
		DueDate:     draft.DueDate,
		Priority:    string(draft.Priority),
		Status:      string(draft.Status),
		AssignedTo:  draft.AssignedTo,
	}
}

// UserMapper handles conversion between wire and domain user models.
type UserMapper struct{}

// NewUserMapper creates a new UserMapper instance.
func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

// FromWire converts an API User to a domain UserProfile.
func (m *UserMapper) FromWire(wireUser rest.User) UserProfile {
	return UserProfile{
		ID:        wireUser.ID,
		Username:  wireUser.Username,
		Email:     wireUser.Email,
		Role:      Role(wireUser.Role),
		CreatedAt: parseAPITime(wireUser.CreatedAt),
	}
}

// FromWireSlice converts a slice of API Users to domain UserProfiles.
func (m *UserMapper) FromWireSlice(wireUsers []*rest.User) []*UserProfile {
	domainUsers := make([]*UserProfile, len(wireUsers))
	for i, wireUser := range wireUsers {
		domainUser := m.FromWire(*wireUser)
		domainUsers[i] = &domainUser
	}
	return domainUsers
}

// StatsMapper handles conversion of the server-computed aggregate.
type StatsMapper struct{}

// NewStatsMapper creates a new StatsMapper instance.
func NewStatsMapper() *StatsMapper {
	return &StatsMapper{}
}

// FromWire converts an API Stats response to a domain StatsSnapshot.
func (m *StatsMapper) FromWire(wireStats rest.Stats) StatsSnapshot {
	return StatsSnapshot{
		TotalTasks:      wireStats.TotalTasks,
		CompletedTasks:  wireStats.CompletedTasks,
		PendingTasks:    wireStats.PendingTasks,
		TodoTasks:       wireStats.TodoTasks,
		InProgressTasks: wireStats.InProgressTasks,
		CompletionTrend: wireStats.CompletionTrend,
		PendingTrend:    wireStats.PendingTrend,
	}
}

// Mapper provides a unified interface for all mapping operations.
type Mapper struct {
	Task  *TaskMapper
	User  *UserMapper
	Stats *StatsMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		Task:  NewTaskMapper(),
		User:  NewUserMapper(),
		Stats: NewStatsMapper(),
	}
}

// parseAPITime parses a timestamp the API produces. The API emits RFC 3339
// timestamps for createdAt and date-only strings for form-entered due dates;
// an unparseable value maps to the zero time.
func parseAPITime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t
	}
	if t, err := time.Parse(dueDateFormat, value); err == nil {
		return t
	}
	return time.Time{}
}
