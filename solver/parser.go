package solver

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// A SeedPair is one search instance: the pair of sumsets the search of the
// tree is rooted at.
type SeedPair struct {
	A, B Sumset
}

// A Problem describes a whole run: the element bound d, the number of
// workers, and the seed pairs to solve, one search per pair.
type Problem struct {
	D       int
	Workers int
	Pairs   []SeedPair
}

// ParseInput parses a problem. The format is a header line "d t n" (element
// bound, workers, number of seed pairs), followed by n pairs of seed lines.
// A seed line is a count k followed by k strictly increasing elements of
// [1, d].
// Tokens may be separated by any whitespace.
func ParseInput(r io.Reader) (*Problem, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	d, err := nextInt(sc, "element bound")
	if err != nil {
		return nil, err
	}
	if d < 1 || d > MaxElement {
		return nil, fmt.Errorf("element bound %d out of range [1, %d]", d, MaxElement)
	}
	t, err := nextInt(sc, "worker count")
	if err != nil {
		return nil, err
	}
	if t < 1 {
		return nil, fmt.Errorf("invalid worker count %d", t)
	}
	n, err := nextInt(sc, "pair count")
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("invalid pair count %d", n)
	}
	pb := &Problem{D: d, Workers: t, Pairs: make([]SeedPair, 0, n)}
	for i := 0; i < n; i++ {
		a, err := parseSeed(sc, d)
		if err != nil {
			return nil, fmt.Errorf("pair %d: %v", i+1, err)
		}
		b, err := parseSeed(sc, d)
		if err != nil {
			return nil, fmt.Errorf("pair %d: %v", i+1, err)
		}
		pb.Pairs = append(pb.Pairs, SeedPair{A: a, B: b})
	}
	return pb, nil
}

// parseSeed reads one seed line: a count followed by that many elements,
// built up from the empty sumset by successive extension.
func parseSeed(sc *bufio.Scanner, d int) (Sumset, error) {
	s := EmptySumset()
	k, err := nextInt(sc, "element count")
	if err != nil {
		return s, err
	}
	if k < 0 {
		return s, fmt.Errorf("invalid element count %d", k)
	}
	for j := 0; j < k; j++ {
		e, err := nextInt(sc, "element")
		if err != nil {
			return s, err
		}
		if e < 1 || e > d {
			return s, fmt.Errorf("element %d out of range [1, %d]", e, d)
		}
		if e <= s.Last {
			return s, fmt.Errorf("elements must be strictly increasing, got %d after %d", e, s.Last)
		}
		s = s.Extend(e)
	}
	return s, nil
}

func nextInt(sc *bufio.Scanner, what string) (int, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, fmt.Errorf("could not read %s: %v", what, err)
		}
		return 0, fmt.Errorf("unexpected end of input reading %s", what)
	}
	v, err := strconv.Atoi(sc.Text())
	if err != nil {
		return 0, fmt.Errorf("could not parse %s %q: %v", what, sc.Text(), err)
	}
	return v, nil
}
