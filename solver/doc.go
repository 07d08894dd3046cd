/*
Package solver searches for pairs of disjoint sumsets over {1..d} with equal
sums, maximising that common sum among the pairs the search can close as
described below. The closing element is not part of the result, so a larger
equal-sum pair that would need a closing element above d is not found.

A sumset is a set of elements of {1..d} (element 0 is implicitly a member of
every sumset) with its cached sum and largest element. The search grows a
pair of sumsets one element at a time, always extending the side with the
smaller sum, and closes a pair by extending one side with the other side's
last element; the shared element is then stripped from both sides of the
reported solution, so the result sets intersect on {0} only.

Describing a problem

A problem is read from a textual stream: a header "d t n" giving the element
bound, the worker count and the number of seed pairs, followed by n pairs of
seed lines, each a count and that many increasing elements:

    5 2 1
    0
    0

the programmer can create the Problem by doing:

    pb, err := solver.ParseInput(f)

Solving

To solve, one creates a solver and runs each seed pair through it:

    s, err := solver.New(pb.D, pb.Workers)
    sol, err := s.Solve(pair.A, pair.B)

The search runs the configured number of worker goroutines. Each worker
explores subtrees on a private stack with a private sumset arena; workers
starving for work receive unexplored subtrees from their siblings through a
single shared hand-off slot. For the problem above, sol.Sum is 5 and the
result sets can be {1 4} and {2 3}.
*/
package solver
