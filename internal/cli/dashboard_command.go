package cli

import (
	"context"
	"fmt"

	"taskboard/internal/rbac"
	"taskboard/internal/stats"
)

// DashboardCommand handles the dashboard command
type DashboardCommand struct {
	app        *App
	aggregator *stats.Aggregator
	errors     *ErrorHandler
}

// NewDashboardCommand creates a new dashboard command handler
func NewDashboardCommand(app *App) *DashboardCommand {
	return &DashboardCommand{
		app:        app,
		aggregator: stats.NewAggregator(),
		errors:     NewErrorHandler(),
	}
}

// Execute renders the dashboard: the server-computed aggregate, the most
// recent tasks and the client-computed distributions. The role changes
// the view label only, never the numbers.
func (c *DashboardCommand) Execute(ctx context.Context, args []string) error {
	snapshot, err := c.app.api.GetStats(ctx)
	if err != nil {
		return c.errors.Handle("fetch stats", err)
	}

	board := stats.NewBoard(c.app.api.ListTasks)
	tasks, err := board.Refresh(ctx)
	if err != nil {
		return c.errors.Handle("fetch tasks", err)
	}

	view := "Admin View"
	if rbac.IsPersonalView(c.app.api.Session().Role()) {
		view = "Personal View"
	}

	fmt.Printf("Dashboard (%s)\n\n", view)
	fmt.Printf("Total tasks:       %d (%+.0f%%)\n", snapshot.TotalTasks, snapshot.CompletionTrend)
	fmt.Printf("Completed tasks:   %d (%+.0f%%)\n", snapshot.CompletedTasks, snapshot.CompletionTrend)
	fmt.Printf("Pending tasks:     %d (%+.0f%%)\n", snapshot.PendingTasks, snapshot.PendingTrend)

	fmt.Printf("\nStatus distribution:\n")
	for _, bucket := range c.aggregator.ByStatus(tasks) {
		fmt.Printf("  %-12s %d\n", bucket.Name, bucket.Value)
	}

	fmt.Printf("\nTasks by assignee:\n")
	for _, bucket := range c.aggregator.ByAssignee(tasks) {
		fmt.Printf("  %-24s %d\n", bucket.Name, bucket.Value)
	}

	recent := c.aggregator.Recent(tasks, c.app.config.Display.RecentTaskLimit)
	fmt.Printf("\nRecent tasks:\n")
	if len(recent) == 0 {
		fmt.Println("  (none)")
	}
	for _, task := range recent {
		fmt.Printf("  %-28s assigned to %s, created %s\n",
			truncate(task.Title, 28), task.AssignedTo.Username, c.app.FormatTime(task.CreatedAt))
	}

	return nil
}
