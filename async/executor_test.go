package async

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// countingFuture completes after a configurable number of progress calls,
// waking itself while it is still pending.
type countingFuture struct {
	FutureCore
	calls int
	needs int
}

func (f *countingFuture) Progress(_ *Reactor, w Waker) State {
	f.calls++
	if f.calls < f.needs {
		w.Wake()
		return Pending
	}
	f.Ok = f.calls
	return Completed
}

func newExecutor(t *testing.T) *Executor {
	t.Helper()
	exec, err := NewExecutor()
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, exec.Close()) })
	return exec
}

func TestRunProgressesEverySpawnedFuture(t *testing.T) {
	exec := newExecutor(t)
	futs := make([]*countingFuture, 5)
	for i := range futs {
		futs[i] = &countingFuture{needs: 1}
		exec.Spawn(futs[i])
	}
	require.NoError(t, exec.Run())
	for _, f := range futs {
		require.Equal(t, 1, f.calls)
	}
}

func TestRunDoesNotTouchUnspawnedFutures(t *testing.T) {
	exec := newExecutor(t)
	spawned := &countingFuture{needs: 1}
	bystander := &countingFuture{needs: 1}
	exec.Spawn(spawned)
	require.NoError(t, exec.Run())
	require.Equal(t, 1, spawned.calls)
	require.Equal(t, 0, bystander.calls)
}

func TestRunRepollsSelfWokenFutures(t *testing.T) {
	exec := newExecutor(t)
	f := &countingFuture{needs: 3}
	exec.Spawn(f)
	require.NoError(t, exec.Run())
	require.Equal(t, 3, f.calls)
	require.Equal(t, 3, f.Ok)
}

// orderFuture records the order in which the executor reached it.
type orderFuture struct {
	FutureCore
	name  string
	order *[]string
}

func (f *orderFuture) Progress(*Reactor, Waker) State {
	*f.order = append(*f.order, f.name)
	return Completed
}

// One round drains the queue newest first.
func TestRunDrainsLIFO(t *testing.T) {
	exec := newExecutor(t)
	var order []string
	for _, name := range []string{"a", "b", "c"} {
		exec.Spawn(&orderFuture{name: name, order: &order})
	}
	require.NoError(t, exec.Run())
	require.Equal(t, []string{"c", "b", "a"}, order)
}

func TestSpawnGrowsQueue(t *testing.T) {
	exec := newExecutor(t)
	futs := make([]*countingFuture, 1000)
	for i := range futs {
		futs[i] = &countingFuture{needs: 2}
		exec.Spawn(futs[i])
	}
	require.NoError(t, exec.Run())
	for _, f := range futs {
		require.Equal(t, 2, f.calls)
	}
}
