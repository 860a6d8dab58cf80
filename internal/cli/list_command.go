package cli

import (
	"context"
	"fmt"
	"strings"

	"taskboard/internal/domain"
	"taskboard/internal/filter"
	"taskboard/internal/rbac"
)

// ListOptions holds the filter flags for the list command
type ListOptions struct {
	Search     string
	Statuses   []string
	Priorities []string
}

// ListCommand handles the list command
type ListCommand struct {
	app    *App
	engine *filter.Engine
	errors *ErrorHandler
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{
		app:    app,
		engine: filter.NewEngine(),
		errors: NewErrorHandler(),
	}
}

// Execute fetches the task collection fresh and applies the filter
// state built from the flags
func (c *ListCommand) Execute(ctx context.Context, opts ListOptions) error {
	state, err := buildFilterState(opts)
	if err != nil {
		return err
	}

	tasks, err := c.app.api.ListTasks(ctx)
	if err != nil {
		return c.errors.Handle("list tasks", err)
	}

	visible := c.engine.Apply(tasks, state)
	c.printTasks(visible)
	return nil
}

// buildFilterState converts list flags to a filter state. Naming any
// status (or priority) enables only the named ones; naming none leaves
// all enabled.
func buildFilterState(opts ListOptions) (filter.State, error) {
	state := filter.NewState()
	state.SearchTerm = opts.Search

	if len(opts.Statuses) > 0 {
		for status := range state.StatusEnabled {
			state.StatusEnabled[status] = false
		}
		for _, raw := range opts.Statuses {
			status := domain.Status(strings.TrimSpace(raw))
			if !status.IsValid() {
				return filter.State{}, fmt.Errorf("unknown status %q (expected todo, in_progress or completed)", raw)
			}
			state.StatusEnabled[status] = true
		}
	}

	if len(opts.Priorities) > 0 {
		for priority := range state.PriorityEnabled {
			state.PriorityEnabled[priority] = false
		}
		for _, raw := range opts.Priorities {
			priority := domain.Priority(strings.TrimSpace(raw))
			if !priority.IsValid() {
				return filter.State{}, fmt.Errorf("unknown priority %q (expected low, medium or high)", raw)
			}
			state.PriorityEnabled[priority] = true
		}
	}

	return state, nil
}

// printTasks renders a task table. The assignee column only appears for
// roles that can manage tasks, matching what the product's table shows.
func (c *ListCommand) printTasks(tasks []*domain.Task) {
	if len(tasks) == 0 {
		fmt.Println("No tasks found")
		return
	}

	showAssignee := rbac.CanManageTasks(c.app.api.Session().Role())

	if showAssignee {
		fmt.Printf("%-26s %-28s %-12s %-8s %-12s %s\n", "ID", "TITLE", "DUE", "PRIORITY", "STATUS", "ASSIGNED TO")
	} else {
		fmt.Printf("%-26s %-28s %-12s %-8s %s\n", "ID", "TITLE", "DUE", "PRIORITY", "STATUS")
	}

	for _, task := range tasks {
		if showAssignee {
			fmt.Printf("%-26s %-28s %-12s %-8s %-12s %s\n",
				task.ID, truncate(task.Title, 28), c.app.FormatDate(task.DueDate), task.Priority, task.Status.Label(), task.AssignedTo.Username)
		} else {
			fmt.Printf("%-26s %-28s %-12s %-8s %s\n",
				task.ID, truncate(task.Title, 28), c.app.FormatDate(task.DueDate), task.Priority, task.Status.Label())
		}
	}
}

// SearchCommand handles the search command, the live-as-you-type search
// path that also matches status text and ignores the filter menu
type SearchCommand struct {
	app    *App
	engine *filter.Engine
	errors *ErrorHandler
}

// NewSearchCommand creates a new search command handler
func NewSearchCommand(app *App) *SearchCommand {
	return &SearchCommand{
		app:    app,
		engine: filter.NewEngine(),
		errors: NewErrorHandler(),
	}
}

// Execute searches the full collection for the given term
func (c *SearchCommand) Execute(ctx context.Context, args []string) error {
	term := strings.Join(args, " ")

	tasks, err := c.app.api.ListTasks(ctx)
	if err != nil {
		return c.errors.Handle("search tasks", err)
	}

	matches := c.engine.Search(tasks, term)
	NewListCommand(c.app).printTasks(matches)
	return nil
}

// truncate shortens a string for table display
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
