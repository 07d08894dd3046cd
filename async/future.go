package async

// State is the result of one progress step of a future.
type State int

const (
	// Pending means the future has more work to do; it will be re-queued
	// by a waker when it can make progress again.
	Pending = State(iota)
	// Completed means the future finished and its Ok payload is set.
	Completed
	// Failed means the future finished and its Err code is set.
	Failed
)

func (s State) String() string {
	switch s {
	case Pending:
		return "PENDING"
	case Completed:
		return "COMPLETED"
	case Failed:
		return "FAILED"
	default:
		panic("invalid state")
	}
}

// A Future is a resumable computation exposing a single operation: progress
// once. Progress must not block; a future that cannot proceed registers its
// interest with the reactor, hands it the waker, and returns Pending. The
// executor never progresses a future again after it leaves Pending.
type Future interface {
	Progress(r *Reactor, w Waker) State

	// Core returns the future's shared payload slots. Implementations get
	// it for free by embedding FutureCore.
	Core() *FutureCore
}

// FutureCore holds the slots every future shares: the input argument, set by
// composition before the first progress, the success payload, and the
// failure code. Concrete futures embed it.
type FutureCore struct {
	Arg any
	Ok  any
	Err error
}

// Core implements the accessor half of the Future interface.
func (c *FutureCore) Core() *FutureCore { return c }

// A Waker is a one-shot capability to re-enqueue a specific future on its
// executor. It is valid while the executor still tracks the future.
type Waker struct {
	exec *Executor
	fut  Future
}

// Wake adds the future back to its executor's ready queue.
func (w Waker) Wake() {
	w.exec.enqueue(w.fut)
}

// readyFuture completes immediately with a fixed payload.
type readyFuture struct {
	FutureCore
	value any
}

// Ready returns a future that completes on its first progress with v.
func Ready(v any) Future {
	return &readyFuture{value: v}
}

func (f *readyFuture) Progress(*Reactor, Waker) State {
	f.Ok = f.value
	return Completed
}

// failFuture fails immediately with a fixed code.
type failFuture struct {
	FutureCore
	err error
}

// Fail returns a future that fails on its first progress with err.
func Fail(err error) Future {
	return &failFuture{err: err}
}

func (f *failFuture) Progress(*Reactor, Waker) State {
	f.Err = f.err
	return Failed
}

// funcFuture applies a function to its argument once.
type funcFuture struct {
	FutureCore
	fn func(arg any) (any, error)
}

// Func returns a future that, on its first progress, applies fn to the
// argument set by composition and completes or fails with its result.
func Func(fn func(arg any) (any, error)) Future {
	return &funcFuture{fn: fn}
}

func (f *funcFuture) Progress(*Reactor, Waker) State {
	v, err := f.fn(f.Arg)
	if err != nil {
		f.Err = err
		return Failed
	}
	f.Ok = v
	return Completed
}

// neverFuture stays pending forever without registering anything.
type neverFuture struct {
	FutureCore
}

// Never returns a future that never completes. Note that it keeps the
// executor's pending count above zero for as long as it is spawned.
func Never() Future {
	return &neverFuture{}
}

func (f *neverFuture) Progress(*Reactor, Waker) State {
	return Pending
}
