package workers

import "context"

// Workers aggregates background workers and runs them together.
type Workers struct {
	workers []Worker
}

// New collects the given workers into an aggregate.
func New(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run launches every worker in its own goroutine and returns immediately.
// Workers stop when ctx is cancelled.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		go worker.Run(ctx)
	}
}
