package sudoku

import "errors"

var (
	// ErrInvalidPuzzle rejects malformed or self-contradictory puzzle input.
	// It is permanent: the same input will never parse.
	ErrInvalidPuzzle = errors.New("invalid puzzle")

	// ErrUnsolvable reports that a grid admits no completion. Inside the
	// solver it is ordinary control flow (the next candidate is tried);
	// escaping the top-level [Solve] call it means the puzzle has no
	// solution at all.
	ErrUnsolvable = errors.New("unsolvable")
)
