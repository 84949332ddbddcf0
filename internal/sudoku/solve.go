package sudoku

import (
	"errors"
	"fmt"
)

// Solve returns a completed grid consistent with the givens of g, or
// [ErrUnsolvable] when no completion exists. The argument is taken by value,
// so the caller's grid is never touched; every guess below recurses on its
// own copy, which keeps sibling branches independent.
//
// Propagation runs first; when it stalls the search branches on the
// most-constrained unresolved cell, trying candidates in ascending digit
// order and returning the first solution found.
func Solve(g Grid) (Grid, error) {
	d, err := propagate(&g)
	if err != nil {
		return g, err
	}
	if d.solved {
		return g, nil
	}
	Log.Debug("branching",
		"row", d.row, "col", d.col, "candidates", d.candidates.String())
	for _, digit := range d.candidates.Digits() {
		next := g
		next[d.row*Size+d.col] = digit
		solved, err := Solve(next)
		if err == nil {
			return solved, nil
		}
		if !errors.Is(err, ErrUnsolvable) {
			return g, err
		}
	}
	return g, fmt.Errorf(
		"%w: every candidate for cell (%d, %d) failed", ErrUnsolvable, d.row, d.col,
	)
}
