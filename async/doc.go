/*
Package async is a single-threaded cooperative runtime built around three
primitives: a future, a resumable computation exposing one progress step;
an executor, which owns the ready queue and drives spawned futures until
all of them settle; and a reactor, which maps I/O readiness on OS
descriptors to wakers that re-queue the futures awaiting them.

A future's Progress must never block. A future that cannot proceed
registers its descriptor with the reactor, hands over the waker it was
progressed with, and returns Pending; the executor blocks in the reactor
only when the ready queue is empty while futures are still pending.

	exec, err := async.NewExecutor()
	if err != nil {
		...
	}
	defer exec.Close()

	f := async.Then(async.Ready(7), async.Func(func(arg any) (any, error) {
		return arg.(int) + 1, nil
	}))
	exec.Spawn(f)
	if err := exec.Run(); err != nil {
		...
	}
	// f.Ok is 8.

Composition is provided by three combinators, each itself a future: Then
chains two futures, feeding the first one's payload to the second; Join
completes when both inner futures have completed; Select completes with the
first inner future to complete, preferring the first on a tie. Inner
failures surface as the package's error codes, so a caller can tell which
side of a composition gave up.
*/
package async
