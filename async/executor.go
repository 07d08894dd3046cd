package async

import "log/slog"

// An Executor drives spawned futures to completion, single-threaded. It
// owns a ready queue and the count of futures that have not yet left
// Pending; when the queue runs dry but futures are still pending, it blocks
// in the reactor until readiness re-queues one of them.
type Executor struct {
	reactor *Reactor
	queue   []Future
	pending int

	// Logger, when set, receives debug-level scheduling events.
	Logger *slog.Logger
}

// NewExecutor returns an executor with a fresh reactor.
func NewExecutor() (*Executor, error) {
	r, err := newReactor()
	if err != nil {
		return nil, err
	}
	return &Executor{reactor: r}, nil
}

// Reactor returns the executor's reactor, for futures that register I/O
// sources outside a progress call.
func (e *Executor) Reactor() *Reactor {
	return e.reactor
}

// Close releases the reactor. The executor must not be run afterwards.
func (e *Executor) Close() error {
	return e.reactor.close()
}

// Spawn adds a future to the ready queue. The queue grows as needed, so
// spawning never drops a future.
func (e *Executor) Spawn(f Future) {
	e.queue = append(e.queue, f)
	e.pending++
}

// enqueue re-adds a previously spawned future; wakers land here.
func (e *Executor) enqueue(f Future) {
	e.queue = append(e.queue, f)
}

// Run polls futures until every spawned one has completed or failed. Each
// round drains the queue as it stood at the start of the round, newest
// first; futures woken during a round are observed on the next one. Run
// returns the reactor's error if polling fails, leaving the remaining
// futures unfinished.
func (e *Executor) Run() error {
	for e.pending > 0 {
		for i := len(e.queue); i > 0; i-- {
			f := e.queue[i-1]
			state := f.Progress(e.reactor, Waker{exec: e, fut: f})
			// Swap-remove: the last element fills the processed slot and
			// is not revisited until the next round.
			last := len(e.queue) - 1
			e.queue[i-1] = e.queue[last]
			e.queue[last] = nil
			e.queue = e.queue[:last]
			if state != Pending {
				e.pending--
			}
		}
		if len(e.queue) == 0 && e.pending > 0 {
			if e.Logger != nil {
				e.Logger.Debug("queue drained, polling reactor", "pending", e.pending)
			}
			if err := e.reactor.poll(); err != nil {
				return err
			}
		}
	}
	return nil
}
