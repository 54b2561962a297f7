package task

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/looplab/fsm"
)

// State is the lifecycle state of a task.
type State string

const (
	StatePending   State = "pending"
	StateRunning   State = "running"
	StateCompleted State = "completed"
	StateCancelled State = "cancelled"
	StateFailed    State = "failed"
)

// IsFinal reports whether the task will not change state any more.
func (s State) IsFinal() bool {
	return s == StateCompleted || s == StateCancelled || s == StateFailed
}

const (
	eventStart    = "start"
	eventComplete = "complete"
	eventCancel   = "cancel"
	eventFail     = "fail"
)

func newMachine() *fsm.FSM {
	return fsm.NewFSM(
		string(StatePending),
		fsm.Events{
			{Name: eventStart, Src: []string{string(StatePending)}, Dst: string(StateRunning)},
			{Name: eventComplete, Src: []string{string(StateRunning)}, Dst: string(StateCompleted)},
			{Name: eventCancel, Src: []string{string(StatePending), string(StateRunning)}, Dst: string(StateCancelled)},
			{Name: eventFail, Src: []string{string(StateRunning)}, Dst: string(StateFailed)},
		},
		fsm.Callbacks{},
	)
}

// Progress is the last checkpoint a task reported.
type Progress struct {
	Done  int
	Label string
}

// Handle follows one submitted task.
type Handle struct {
	ID        uuid.UUID
	Kind      string
	CreatedAt time.Time

	fn     Func
	onDone func(*Handle)

	mu         sync.Mutex
	machine    *fsm.FSM
	progress   Progress
	result     any
	err        error
	finishedAt time.Time

	stop atomic.Bool
	done chan struct{}
}

func newHandle(kind string, fn Func, onDone func(*Handle)) *Handle {
	return &Handle{
		ID:        uuid.New(),
		Kind:      kind,
		CreatedAt: time.Now(),
		fn:        fn,
		onDone:    onDone,
		machine:   newMachine(),
		done:      make(chan struct{}),
	}
}

// State returns the current state.
func (h *Handle) State() State {
	h.mu.Lock()
	defer h.mu.Unlock()
	return State(h.machine.Current())
}

// Progress returns the last reported progress.
func (h *Handle) Progress() Progress {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.progress
}

// Cancel asks the task to stop at its next checkpoint. A task that has not
// started yet is cancelled right away.
func (h *Handle) Cancel() {
	h.stop.Store(true)

	h.mu.Lock()
	defer h.mu.Unlock()
	if State(h.machine.Current()) == StatePending {
		_ = h.machine.Event(context.Background(), eventCancel)
	}
}

// Checkpoint records progress and reports whether the task should stop.
// Stop requests are only seen here, so work between two checkpoints
// always finishes.
func (h *Handle) Checkpoint(done int, label string) bool {
	h.mu.Lock()
	h.progress = Progress{Done: done, Label: label}
	h.mu.Unlock()
	return h.stop.Load()
}

// Done is closed once the result is available.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Result returns the stored result. It is only meaningful after Done.
func (h *Handle) Result() (any, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.result, h.err
}

// FinishedAt is zero until the task is finished.
func (h *Handle) FinishedAt() time.Time {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.finishedAt
}

// Wait blocks until the task finishes or ctx is done.
func (h *Handle) Wait(ctx context.Context) (any, error) {
	select {
	case <-h.done:
		return h.Result()
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// start moves a pending task to running. It returns false when the task
// was cancelled before.
func (h *Handle) start(ctx context.Context) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.machine.Event(ctx, eventStart) == nil
}

// finish stores the outcome and moves the task to its final state. A task
// that stopped on request ends cancelled even though its body returned
// normally.
func (h *Handle) finish(ctx context.Context, result any, err error) State {
	h.mu.Lock()
	defer h.mu.Unlock()

	if State(h.machine.Current()) == StateRunning {
		event := eventComplete
		switch {
		case err != nil:
			event = eventFail
		case h.stop.Load():
			event = eventCancel
		}
		_ = h.machine.Event(ctx, event)
	}

	h.result, h.err = result, err
	h.finishedAt = time.Now()
	close(h.done)
	return State(h.machine.Current())
}
