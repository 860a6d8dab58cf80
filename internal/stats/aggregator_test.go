package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/domain"
)

func taskFor(username string, status domain.Status) *domain.Task {
	return &domain.Task{
		ID:         username + "-" + string(status),
		Title:      "task",
		Status:     status,
		Priority:   domain.PriorityMedium,
		AssignedTo: domain.UserRef{ID: "id-" + username, Username: username},
	}
}

func TestAggregator_ByAssignee(t *testing.T) {
	tests := []struct {
		name     string
		tasks    []*domain.Task
		expected map[string]int
	}{
		{
			name:     "should return no buckets for an empty collection",
			tasks:    nil,
			expected: map[string]int{},
		},
		{
			name: "should count membership per assignee",
			tasks: []*domain.Task{
				taskFor("alice", domain.StatusTodo),
				taskFor("bob", domain.StatusTodo),
				taskFor("alice", domain.StatusCompleted),
			},
			expected: map[string]int{"alice": 2, "bob": 1},
		},
		{
			name: "should not synthesize zero-count buckets",
			tasks: []*domain.Task{
				taskFor("carol", domain.StatusInProgress),
			},
			expected: map[string]int{"carol": 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			aggregator := NewAggregator()

			// Act
			distribution := aggregator.ByAssignee(tt.tasks)

			// Assert: bucket set and counts only, order carries no meaning
			counts := make(map[string]int, len(distribution))
			total := 0
			for _, bucket := range distribution {
				counts[bucket.Name] = bucket.Value
				total += bucket.Value
			}
			assert.Equal(t, tt.expected, counts)
			assert.Equal(t, len(tt.tasks), total)
		})
	}
}

func TestAggregator_ByStatus(t *testing.T) {
	tests := []struct {
		name  string
		tasks []*domain.Task
	}{
		{
			name:  "should emit all three buckets for an empty collection",
			tasks: nil,
		},
		{
			name: "should emit all three buckets even when some are zero",
			tasks: []*domain.Task{
				taskFor("alice", domain.StatusTodo),
				taskFor("bob", domain.StatusTodo),
			},
		},
		{
			name: "should count each status",
			tasks: []*domain.Task{
				taskFor("alice", domain.StatusTodo),
				taskFor("bob", domain.StatusInProgress),
				taskFor("carol", domain.StatusCompleted),
				taskFor("dave", domain.StatusCompleted),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			aggregator := NewAggregator()

			// Act
			distribution := aggregator.ByStatus(tt.tasks)

			// Assert: exactly the three known keys, counts summing to size
			require.Len(t, distribution, 3)
			assert.Equal(t, "todo", distribution[0].Name)
			assert.Equal(t, "in_progress", distribution[1].Name)
			assert.Equal(t, "completed", distribution[2].Name)

			total := 0
			for _, bucket := range distribution {
				total += bucket.Value
			}
			assert.Equal(t, len(tt.tasks), total)
		})
	}
}

func TestAggregator_Recent(t *testing.T) {
	tasks := []*domain.Task{
		taskFor("a", domain.StatusTodo),
		taskFor("b", domain.StatusTodo),
		taskFor("c", domain.StatusTodo),
		taskFor("d", domain.StatusTodo),
		taskFor("e", domain.StatusTodo),
	}

	tests := []struct {
		name          string
		tasks         []*domain.Task
		limit         int
		expectedCount int
	}{
		{
			name:          "should return the first limit tasks in order",
			tasks:         tasks,
			limit:         3,
			expectedCount: 3,
		},
		{
			name:          "should fall back to the default limit",
			tasks:         tasks,
			limit:         0,
			expectedCount: DefaultRecentLimit,
		},
		{
			name:          "should return everything when the collection is small",
			tasks:         tasks[:2],
			limit:         4,
			expectedCount: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			aggregator := NewAggregator()

			// Act
			recent := aggregator.Recent(tt.tasks, tt.limit)

			// Assert: the slice preserves the server's ordering
			require.Len(t, recent, tt.expectedCount)
			for i, task := range recent {
				assert.Equal(t, tt.tasks[i].ID, task.ID)
			}
		})
	}
}
