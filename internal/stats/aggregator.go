// Package stats derives client-side views over a task collection. These
// are computed locally and are distinct from the server's own stats
// aggregate, which arrives ready-made from the API.
package stats

import (
	"taskboard/internal/domain"
)

// DefaultRecentLimit is how many of the most recently returned tasks the
// dashboard shows.
const DefaultRecentLimit = 4

// Count is one bucket of a distribution
type Count struct {
	Name  string
	Value int
}

// Aggregator computes distributions over task collections. The viewing
// role never changes what is computed, only how the result is labeled.
type Aggregator struct{}

// NewAggregator creates a new aggregator
func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// ByAssignee groups the collection by assignee username and counts group
// membership. The bucket set is whatever usernames are present; no
// zero-count buckets are synthesized and the order carries no meaning
// beyond the counts summing to the collection size.
func (a *Aggregator) ByAssignee(tasks []*domain.Task) []Count {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, task := range tasks {
		name := task.AssignedTo.Username
		if _, seen := counts[name]; !seen {
			order = append(order, name)
		}
		counts[name]++
	}

	distribution := make([]Count, 0, len(order))
	for _, name := range order {
		distribution = append(distribution, Count{Name: name, Value: counts[name]})
	}
	return distribution
}

// ByStatus groups the collection into the three known status buckets.
// All three are always emitted, zeros included, so chart legends stay
// stable.
func (a *Aggregator) ByStatus(tasks []*domain.Task) []Count {
	counts := make(map[domain.Status]int, 3)
	for _, task := range tasks {
		counts[task.Status]++
	}

	distribution := make([]Count, 0, 3)
	for _, status := range domain.Statuses() {
		distribution = append(distribution, Count{Name: string(status), Value: counts[status]})
	}
	return distribution
}

// Recent returns the first limit tasks of the collection, relying on the
// API's most-recently-returned-first ordering. A non-positive limit falls
// back to the default.
func (a *Aggregator) Recent(tasks []*domain.Task, limit int) []*domain.Task {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	if len(tasks) < limit {
		limit = len(tasks)
	}
	return tasks[:limit]
}
