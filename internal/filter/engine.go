// Package filter computes the visible subset of a task collection.
// Visibility is the conjunction of three independently toggleable
// predicates: a case-insensitive text search, an enabled-status set and
// an enabled-priority set.
package filter

import (
	"strings"

	"taskboard/internal/domain"
)

// State holds the active filter predicates. It is UI-session scoped and
// never persisted.
type State struct {
	SearchTerm      string
	StatusEnabled   map[domain.Status]bool
	PriorityEnabled map[domain.Priority]bool
}

// NewState creates a filter state with every status and priority enabled
// and an empty search term, which matches everything.
func NewState() State {
	statusEnabled := make(map[domain.Status]bool, len(domain.Statuses()))
	for _, status := range domain.Statuses() {
		statusEnabled[status] = true
	}

	priorityEnabled := make(map[domain.Priority]bool, len(domain.Priorities()))
	for _, priority := range domain.Priorities() {
		priorityEnabled[priority] = true
	}

	return State{
		StatusEnabled:   statusEnabled,
		PriorityEnabled: priorityEnabled,
	}
}

// ToggleStatus flips whether tasks with the given status are visible
func (s *State) ToggleStatus(status domain.Status) {
	s.StatusEnabled[status] = !s.StatusEnabled[status]
}

// TogglePriority flips whether tasks with the given priority are visible
func (s *State) TogglePriority(priority domain.Priority) {
	s.PriorityEnabled[priority] = !s.PriorityEnabled[priority]
}

// Engine applies filter state to task collections
type Engine struct{}

// NewEngine creates a new filter engine
func NewEngine() *Engine {
	return &Engine{}
}

// Apply recomputes the visible set from the complete, unfiltered
// collection. It never patches a previous result incrementally: toggling
// one checkbox must be able to re-include tasks a different predicate had
// hidden, so the full three-predicate pass always runs over everything.
// The search predicate here matches title and description only.
func (e *Engine) Apply(tasks []*domain.Task, state State) []*domain.Task {
	term := strings.ToLower(state.SearchTerm)

	visible := make([]*domain.Task, 0, len(tasks))
	for _, task := range tasks {
		if !matchesSearch(task, term, false) {
			continue
		}
		if !state.StatusEnabled[task.Status] {
			continue
		}
		if !state.PriorityEnabled[task.Priority] {
			continue
		}
		visible = append(visible, task)
	}
	return visible
}

// Search is the toolbar's live-as-you-type path. Unlike Apply's search
// predicate it also matches against the status text, and it ignores the
// status and priority sets entirely. Both paths exist on purpose.
func (e *Engine) Search(tasks []*domain.Task, term string) []*domain.Task {
	lowered := strings.ToLower(term)

	visible := make([]*domain.Task, 0, len(tasks))
	for _, task := range tasks {
		if matchesSearch(task, lowered, true) {
			visible = append(visible, task)
		}
	}
	return visible
}

// matchesSearch checks the case-insensitive substring predicate. An
// empty term matches every task.
func matchesSearch(task *domain.Task, loweredTerm string, includeStatus bool) bool {
	if loweredTerm == "" {
		return true
	}
	if strings.Contains(strings.ToLower(task.Title), loweredTerm) {
		return true
	}
	if strings.Contains(strings.ToLower(task.Description), loweredTerm) {
		return true
	}
	if includeStatus && strings.Contains(strings.ToLower(string(task.Status)), loweredTerm) {
		return true
	}
	return false
}
