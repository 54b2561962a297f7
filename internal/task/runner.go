// Package task runs bulk operations one at a time on a single worker and
// lets callers follow their progress or ask them to stop.
package task

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/myenglish-scheduler/internal/domain"
	"github.com/heartmarshall/myenglish-scheduler/internal/metrics"
)

// ErrQueueFull is returned by Submit when no more tasks can wait.
var ErrQueueFull = errors.New("task queue is full")

// Func is the body of a task. It reports progress and polls for a stop
// request through the handle.
type Func func(ctx context.Context, h *Handle) (any, error)

// Runner owns the worker goroutine. Tasks run strictly in submission order.
type Runner struct {
	log          *slog.Logger
	queue        chan *Handle
	keepFinished int

	mu       sync.RWMutex
	tasks    map[uuid.UUID]*Handle
	finished []uuid.UUID
}

// NewRunner creates a runner with room for queueSize waiting tasks. It
// remembers the last keepFinished finished tasks.
func NewRunner(log *slog.Logger, queueSize, keepFinished int) *Runner {
	return &Runner{
		log:          log.With("component", "task_runner"),
		queue:        make(chan *Handle, queueSize),
		keepFinished: keepFinished,
		tasks:        make(map[uuid.UUID]*Handle),
	}
}

// Submit queues fn. onDone, if set, runs on the worker after the result is
// stored, also for tasks cancelled before they started.
func (r *Runner) Submit(kind string, fn Func, onDone func(*Handle)) (*Handle, error) {
	h := newHandle(kind, fn, onDone)

	r.mu.Lock()
	defer r.mu.Unlock()
	select {
	case r.queue <- h:
	default:
		return nil, ErrQueueFull
	}
	r.tasks[h.ID] = h
	metrics.TaskQueued(1)

	r.log.Info("task queued", slog.String("task_id", h.ID.String()), slog.String("kind", kind))
	return h, nil
}

// Get returns a known task.
func (r *Runner) Get(id uuid.UUID) (*Handle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.tasks[id]
	if !ok {
		return nil, fmt.Errorf("task %s: %w", id, domain.ErrNotFound)
	}
	return h, nil
}

// Queued returns the number of tasks waiting for the worker.
func (r *Runner) Queued() int {
	return len(r.queue)
}

// Run executes queued tasks until ctx is done. The running task sees the
// same context.
func (r *Runner) Run(ctx context.Context) error {
	r.log.Info("task runner started")
	for {
		select {
		case <-ctx.Done():
			r.log.Info("task runner stopped")
			return nil
		case h := <-r.queue:
			metrics.TaskQueued(-1)
			r.execute(ctx, h)
		}
	}
}

func (r *Runner) execute(ctx context.Context, h *Handle) {
	log := r.log.With(slog.String("task_id", h.ID.String()), slog.String("kind", h.Kind))

	if !h.start(ctx) {
		log.Info("task cancelled before start")
		h.finish(ctx, nil, nil)
		r.retire(h)
		return
	}

	started := time.Now()
	result, err := r.call(ctx, h)
	state := h.finish(ctx, result, err)

	outcome := metrics.OutcomeCompleted
	switch state {
	case StateFailed:
		outcome = metrics.OutcomeFailed
		log.Error("task failed", slog.String("error", err.Error()))
	case StateCancelled:
		outcome = metrics.OutcomeCancelled
		log.Info("task cancelled", slog.Int("done", h.Progress().Done))
	default:
		log.Info("task completed", slog.Duration("took", time.Since(started)))
	}
	metrics.TaskFinished(h.Kind, outcome, time.Since(started))
	r.retire(h)
}

// call runs the task body and turns a panic into a failure.
func (r *Runner) call(ctx context.Context, h *Handle) (result any, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("task panicked: %v", p)
		}
	}()
	return h.fn(ctx, h)
}

// retire runs the completion callback and forgets the oldest finished tasks.
func (r *Runner) retire(h *Handle) {
	if h.onDone != nil {
		h.onDone(h)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.finished = append(r.finished, h.ID)
	for len(r.finished) > r.keepFinished {
		delete(r.tasks, r.finished[0])
		r.finished = r.finished[1:]
	}
}
