package sudoku

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// branchingPuzzle stalls single-candidate propagation early, forcing the
// solver into guesswork.
const branchingPuzzle = `
.1....5.4
.96..7...
...2...1.
......8.7
.85.6...2
..4......
.3.....9.
..9.3...5
...54..6.
`

func assertSolved(t *testing.T, g Grid) {
	t.Helper()
	assert.True(t, g.Solved(), "grid must have no unknown cells")
	assert.NoError(t, g.checkRegions(), "grid must have no duplicates")
}

func assertKeepsGivens(t *testing.T, givens, solved Grid) {
	t.Helper()
	for i, v := range givens {
		if v != 0 {
			assert.Equal(t, v, solved[i], "given at cell %d must survive", i)
		}
	}
}

func TestSolveEasyPuzzle(t *testing.T) {
	t.Parallel()

	g, err := Parse(easyPuzzle)
	require.NoError(t, err)

	solved, err := Solve(g)
	require.NoError(t, err)

	want, err := Parse(easySolution)
	require.NoError(t, err)
	assert.Equal(t, want, solved)
}

func TestSolveBranchingPuzzle(t *testing.T) {
	t.Parallel()

	g, err := Parse(branchingPuzzle)
	require.NoError(t, err)

	solved, err := Solve(g)
	require.NoError(t, err)

	assertSolved(t, solved)
	assertKeepsGivens(t, g, solved)
}

func TestSolveEmptyGrid(t *testing.T) {
	t.Parallel()

	solved, err := Solve(Grid{})
	require.NoError(t, err)
	assertSolved(t, solved)
}

func TestSolveIsDeterministic(t *testing.T) {
	t.Parallel()

	for _, text := range []string{easyPuzzle, branchingPuzzle, strings.Repeat(".", 81)} {
		g, err := Parse(text)
		require.NoError(t, err)

		first, err := Solve(g)
		require.NoError(t, err)
		second, err := Solve(g)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	}
}

func TestSolveDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	g, err := Parse(easyPuzzle)
	require.NoError(t, err)
	before := g

	_, err = Solve(g)
	require.NoError(t, err)
	assert.Equal(t, before, g)
}

func TestSolveUnsolvable(t *testing.T) {
	t.Parallel()

	g, err := Parse(contradiction)
	require.NoError(t, err)

	_, err = Solve(g)
	assert.ErrorIs(t, err, ErrUnsolvable)
}
