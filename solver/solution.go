package solver

import (
	"fmt"
	"io"
)

// A Solution is a pair of disjoint sumsets with a common sum. It is built
// from a colliding pair by stripping the shared witness element from both
// sides, so A and B intersect on {0} only. The zero Solution means no pair
// was found.
type Solution struct {
	Sum  int // common sum of A and B
	A, B Sumset

	// full is the sum including the shared witness. Candidates are compared
	// on full sums, so it is the search's notion of "better".
	full int
}

// record keeps the better of s and the colliding candidate pair (a, b),
// which must have equal sums and exactly one common positive element. The
// comparison is strict, so among equal maxima the first pair found wins.
func (s *Solution) record(a, b Sumset) {
	if b.Sum <= s.full {
		return
	}
	w := a.sharedElement(b)
	*s = Solution{
		Sum:  a.Sum - w,
		A:    a.remove(w),
		B:    b.remove(w),
		full: b.Sum,
	}
}

// merge keeps the better of two solutions.
func (s *Solution) merge(other Solution) {
	if other.full > s.full {
		*s = other
	}
}

// Write prints the solution in the output format: the common sum on one
// line, then the elements of each sumset on a line of their own.
func (s Solution) Write(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%d\n%s\n%s\n", s.Sum, s.A, s.B); err != nil {
		return fmt.Errorf("could not write solution: %v", err)
	}
	return nil
}
