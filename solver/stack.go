package solver

// The iterative search keeps its tree on an explicit stack of fixed-size
// frames. A node is visited twice: once in the expand phase, where children
// are pushed, and once in the finalize phase, where the arena slot the node
// owns is released. The expand visit pushes the finalize rewrite below its
// children so that pop order processes the whole subtree first.

type phase uint8

const (
	phaseExpand phase = iota
	phaseFinalize
)

// reclaim names which of a frame's two handles the frame owns and must
// release when finalized.
type reclaim uint8

const (
	reclaimNone reclaim = iota
	reclaimA
	reclaimB
)

// swapped returns the reclaim annotation after an A<->B swap.
func (r reclaim) swapped() reclaim {
	switch r {
	case reclaimA:
		return reclaimB
	case reclaimB:
		return reclaimA
	default:
		return reclaimNone
	}
}

// A frame is one node of the search tree: two arena handles, the visit
// phase, and the ownership annotation.
type frame struct {
	a, b    Handle
	phase   phase
	reclaim reclaim
}

// owned returns the handle the frame must release, or noHandle.
func (f frame) owned() Handle {
	switch f.reclaim {
	case reclaimA:
		return f.a
	case reclaimB:
		return f.b
	default:
		return noHandle
	}
}

// A stack is a growable LIFO of frames together with the share boundary:
// the index at or below which frames belong to donated or already-consumed
// work and must not be processed. The inner search loop runs while
// top() > boundary.
type stack struct {
	frames   []frame
	boundary int
}

func newStack() *stack {
	return &stack{
		frames:   make([]frame, 0, defaultArenaSize),
		boundary: -1,
	}
}

func (s *stack) push(f frame) {
	s.frames = append(s.frames, f)
}

func (s *stack) pop() frame {
	f := s.frames[len(s.frames)-1]
	s.frames = s.frames[:len(s.frames)-1]
	return f
}

// top returns the index of the topmost frame, -1 when empty.
func (s *stack) top() int {
	return len(s.frames) - 1
}

// depthAboveBoundary is the number of frames the worker may still process.
func (s *stack) depthAboveBoundary() int {
	return s.top() - s.boundary
}

// shallowestExpand finds the lowest expand-phase frame strictly above the
// boundary, skipping finalize frames. It returns -1 if only the topmost
// frame qualifies or no expand frame exists: donating the top frame would
// leave the worker without work of its own.
func (s *stack) shallowestExpand() int {
	i := s.boundary + 1
	for i < len(s.frames) && s.frames[i].phase == phaseFinalize {
		i++
	}
	if i >= s.top() {
		return -1
	}
	return i
}
