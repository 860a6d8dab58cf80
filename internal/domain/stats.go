package domain

// StatsSnapshot holds the server-computed dashboard aggregate.
// This is distinct from the client-computed distributions in the stats
// package; the two must not be confused.
type StatsSnapshot struct {
	TotalTasks      int
	CompletedTasks  int
	PendingTasks    int
	TodoTasks       int
	InProgressTasks int
	CompletionTrend float64
	PendingTrend    float64
}
