package solver

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Stats are cumulative counters over one Solve call, merged from all
// workers. They are not protected; read them only after Solve returns.
type Stats struct {
	NbFrames    int // expand frames processed
	NbTasks     int // tasks consumed from the hand-off slot
	NbDonations int // subtrees donated through the slot
	NbSolutions int // local best improvements
}

func (st *Stats) add(other Stats) {
	st.NbFrames += other.NbFrames
	st.NbTasks += other.NbTasks
	st.NbDonations += other.NbDonations
	st.NbSolutions += other.NbSolutions
}

// A Solver searches for the pair of disjoint sumsets with the greatest common
// sum among the pairs it can close by a collision on an element of {1..d}.
// That shared element is stripped from the result, so for d = 5 the best sum
// is 5 ({1 4} and {2 3}), not the 7 of {2 5} and {3 4}. The search tree is
// explored iteratively on explicit per-worker stacks; workers share
// unexplored subtrees through a single hand-off slot.
type Solver struct {
	d       int
	workers int
	// arenaCap bounds the sumsets alive on one worker's stack. Lowered in
	// tests to exercise the exhaustion path.
	arenaCap int

	// Logger, when set, receives debug-level search events.
	Logger *slog.Logger
	// Stats of the last Solve call.
	Stats Stats
}

// New returns a solver for elements bounded by d running the given number
// of worker goroutines.
func New(d, workers int) (*Solver, error) {
	if d < 1 || d > MaxElement {
		return nil, fmt.Errorf("element bound %d out of range [1, %d]", d, MaxElement)
	}
	if workers < 1 {
		return nil, fmt.Errorf("invalid worker count %d", workers)
	}
	arenaCap := defaultArenaSize
	if min := (d + 1) * (d + 1); min > arenaCap {
		arenaCap = min
	}
	return &Solver{d: d, workers: workers, arenaCap: arenaCap}, nil
}

// handoff is the single rendezvous point shared by all workers: one donated
// task slot, the termination bookkeeping, and the global best. All fields
// except waiting are protected by mu; waiting is additionally read outside
// the lock as a donation hint, never as a correctness predicate.
type handoff struct {
	mu   sync.Mutex
	cond *sync.Cond

	a, b    Sumset // the donated pair, valid while hasTask
	hasTask bool
	waiting atomic.Int32
	active  int // workers that have not exited yet

	best  Solution
	stats Stats
}

// Solve runs the search seeded with the pair (a, b) and returns the best
// solution found. On a worker error (arena exhaustion) it still returns the
// best solution merged from the workers that contributed before the error.
func (s *Solver) Solve(a, b Sumset) (Solution, error) {
	h := &handoff{a: a, b: b, hasTask: true, active: s.workers}
	h.cond = sync.NewCond(&h.mu)

	var g errgroup.Group
	for i := 0; i < s.workers; i++ {
		id := i
		g.Go(func() error { return s.worker(id, h) })
	}
	err := g.Wait()
	s.Stats = h.stats
	return h.best, err
}

// worker runs the outer task loop: wait at the hand-off slot, consume a
// task, search its subtree (donating parts of it when siblings starve),
// repeat until the whole pool is quiescent.
func (s *Solver) worker(id int, h *handoff) error {
	mem := newArena(s.arenaCap)
	stk := newStack()
	var best Solution
	var st Stats

	// exit performs the termination bookkeeping. It runs on every exit
	// path, so an erroring worker cannot strand the others in the wait.
	exit := func() {
		h.best.merge(best)
		h.stats.add(st)
		h.active--
		h.cond.Broadcast()
		h.mu.Unlock()
		if s.Logger != nil {
			s.Logger.Debug("worker exiting", "worker", id, "frames", st.NbFrames)
		}
	}

	for {
		h.mu.Lock()
		h.waiting.Add(1)
		for !h.hasTask && int(h.waiting.Load()) != h.active {
			h.cond.Wait()
		}
		h.waiting.Add(-1)
		if !h.hasTask {
			// Every worker reached the slot with nothing to donate.
			exit()
			return nil
		}
		seedA, seedB := h.a, h.b
		h.hasTask = false
		h.mu.Unlock()
		st.NbTasks++

		err := s.search(h, mem, stk, seedA, seedB, &best, &st)

		// Unwind whatever the search left at or below the share boundary:
		// donated frames and boundary-stranded finalizers still own their
		// handles. This restores the arena before the next task.
		for stk.top() >= 0 {
			f := stk.pop()
			if hd := f.owned(); hd != noHandle {
				mem.release(hd)
			}
		}
		stk.boundary = -1

		if err != nil {
			h.mu.Lock()
			exit()
			return fmt.Errorf("worker %d: %w", id, err)
		}
	}
}

// search explores the subtree rooted at the seed pair. It returns with the
// stack drained down to the share boundary; frames at or below the boundary
// are the caller's to unwind.
func (s *Solver) search(h *handoff, mem *arena, stk *stack, seedA, seedB Sumset, best *Solution, st *Stats) error {
	aH, err := mem.alloc()
	if err != nil {
		return err
	}
	*mem.at(aH) = seedA
	bH, err := mem.alloc()
	if err != nil {
		mem.release(aH)
		return err
	}
	*mem.at(bH) = seedB
	defer func() {
		mem.release(aH)
		mem.release(bH)
	}()

	stk.push(frame{a: aH, b: bH, phase: phaseExpand, reclaim: reclaimNone})

	for stk.top() > stk.boundary {
		f := stk.pop()
		if f.phase == phaseFinalize {
			if hd := f.owned(); hd != noHandle {
				mem.release(hd)
			}
			continue
		}
		st.NbFrames++

		// Donate the shallowest unexplored frame when the remaining
		// subtree is deep enough to amortise the synchronisation and
		// someone is starving. The waiting counter is only a hint here;
		// the slot state is rechecked under the lock.
		if stk.depthAboveBoundary() > s.d/2 && h.waiting.Load() > 0 {
			s.donate(h, mem, stk, st)
		}

		x, y, rec := f.a, f.b, f.reclaim
		if mem.at(x).Sum > mem.at(y).Sum {
			x, y = y, x
			rec = rec.swapped()
		}
		A, B := mem.at(x), mem.at(y)

		if !A.IntersectionTrivial(*B) {
			// A collision: the pair shares one element besides 0. Equal
			// sums make it a candidate; either way the subtree is done.
			if A.Sum == B.Sum && B.Sum > best.full && A.IntersectionSize(*B) == 2 {
				best.record(*A, *B)
				st.NbSolutions++
			}
			switch rec {
			case reclaimA:
				mem.release(x)
			case reclaimB:
				mem.release(y)
			}
			continue
		}

		stk.push(frame{a: x, b: y, phase: phaseFinalize, reclaim: rec})
		for i := A.Last; i <= s.d; i++ {
			if A.Contains(i) {
				continue
			}
			// Extending across the other sumset is allowed only on its
			// last element: that is the collision move closing a pair.
			if B.Contains(i) && i != B.Last {
				continue
			}
			hd, err := mem.alloc()
			if err != nil {
				return err
			}
			*mem.at(hd) = A.Extend(i)
			stk.push(frame{a: hd, b: y, phase: phaseExpand, reclaim: reclaimA})
		}
	}
	return nil
}

// donate publishes the shallowest unexplored expand frame through the
// hand-off slot and advances the share boundary past it. The sumsets are
// copied into the slot, so the recipient never aliases this worker's arena.
func (s *Solver) donate(h *handoff, mem *arena, stk *stack, st *Stats) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.hasTask {
		return
	}
	i := stk.shallowestExpand()
	if i < 0 {
		return
	}
	f := stk.frames[i]
	h.a, h.b = *mem.at(f.a), *mem.at(f.b)
	h.hasTask = true
	stk.boundary = i
	st.NbDonations++
	h.cond.Signal()
	if s.Logger != nil {
		s.Logger.Debug("donated subtree", "depth", i)
	}
}
