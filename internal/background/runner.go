// Package background runs fire-and-forget work with a hard concurrency
// bound. Chat turns hand off summarization and bookkeeping here so the
// interactive path never blocks on them.
package background

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"
)

// Runner executes submitted tasks on their own goroutines, at most
// MaxConcurrent at a time. Submissions beyond the bound are dropped,
// not queued: every task here is advisory and a fresh one supersedes it.
type Runner struct {
	sem    *semaphore.Weighted
	logger *zap.Logger

	mu     sync.Mutex
	wg     sync.WaitGroup
	closed bool
}

// NewRunner creates a runner allowing up to maxConcurrent tasks.
func NewRunner(maxConcurrent int64, logger *zap.Logger) *Runner {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		sem:    semaphore.NewWeighted(maxConcurrent),
		logger: logger,
	}
}

// Submit schedules fn on its own goroutine. Returns false when the
// runner is saturated or closed; the task is dropped and logged, never
// queued. The context is passed through to fn; fn's error is logged.
func (r *Runner) Submit(ctx context.Context, name string, fn func(context.Context) error) bool {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		r.logger.Warn("background task dropped, runner closed", zap.String("task", name))
		return false
	}
	if !r.sem.TryAcquire(1) {
		r.mu.Unlock()
		r.logger.Warn("background task dropped, runner saturated", zap.String("task", name))
		return false
	}
	r.wg.Add(1)
	r.mu.Unlock()

	go func() {
		defer r.wg.Done()
		defer r.sem.Release(1)
		defer func() {
			if rec := recover(); rec != nil {
				r.logger.Error("background task panicked",
					zap.String("task", name),
					zap.Any("panic", rec))
			}
		}()

		if err := fn(ctx); err != nil {
			r.logger.Warn("background task failed",
				zap.String("task", name),
				zap.Error(err))
		}
	}()

	return true
}

// Close rejects further submissions and waits for in-flight tasks.
func (r *Runner) Close() {
	r.mu.Lock()
	r.closed = true
	r.mu.Unlock()
	r.wg.Wait()
}
