package stats

import (
	"context"
	"sync"

	"taskboard/internal/domain"
	"taskboard/internal/logging"
)

// Lister fetches the full task collection from the server
type Lister func(ctx context.Context) ([]*domain.Task, error)

// Board holds the task collection the filter engine and aggregator work
// over. Every refresh is tagged with a monotonically increasing request
// id and only the latest response is applied, so a slow response for an
// older request can never overwrite a newer collection.
type Board struct {
	mu      sync.Mutex
	tasks   []*domain.Task
	issued  uint64
	applied uint64
	list    Lister
}

// NewBoard creates a board that refreshes through the given lister
func NewBoard(list Lister) *Board {
	return &Board{list: list}
}

// Refresh fetches the collection and applies it unless a later refresh
// already completed. It returns the board's collection after the call,
// which is the newer set when this response arrived stale.
func (b *Board) Refresh(ctx context.Context) ([]*domain.Task, error) {
	b.mu.Lock()
	b.issued++
	id := b.issued
	b.mu.Unlock()

	tasks, err := b.list(ctx)
	if err != nil {
		return nil, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if id < b.applied {
		logging.Debugf("stats: discarding stale task list response %d (applied %d)\n", id, b.applied)
		return b.tasks, nil
	}
	b.applied = id
	b.tasks = tasks
	return b.tasks, nil
}

// Tasks returns the current collection
func (b *Board) Tasks() []*domain.Task {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.tasks
}

// Remove drops a task from the local collection after a delete
// acknowledgment. The server does no implicit cache invalidation, so
// the holder of the collection has to.
func (b *Board) Remove(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	remaining := make([]*domain.Task, 0, len(b.tasks))
	for _, task := range b.tasks {
		if task.ID != id {
			remaining = append(remaining, task)
		}
	}
	b.tasks = remaining
}
