package sudoku

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const easySolution = `
534678912
672195348
198342567
859761423
426853791
713924856
961537284
287419635
345286179
`

// contradiction is well-formed (no region repeats a digit) but cell (0, 0)
// sees all nine digits between its row and its column, so it has no
// candidates at all.
var contradiction = ".23456789" + strings.Repeat(".", 9) + "1" + strings.Repeat(".", 62)

func TestPropagateSolvesLastCell(t *testing.T) {
	t.Parallel()

	// 80 givens: the grid with cell (4, 4) blanked out must come back
	// solved after a single forced placement, no branching involved.
	full := strings.Join(strings.Fields(easySolution), "")
	require.Len(t, full, Cells)
	blanked := full[:4*Size+4] + "." + full[4*Size+4+1:]

	g, err := Parse(blanked)
	require.NoError(t, err)

	d, err := propagate(&g)
	require.NoError(t, err)
	assert.True(t, d.solved)

	v, err := g.At(4, 4)
	require.NoError(t, err)
	assert.Equal(t, uint8(5), v)

	want, err := Parse(easySolution)
	require.NoError(t, err)
	assert.Equal(t, want, g)
}

func TestPropagateStallsOnEmptyGrid(t *testing.T) {
	t.Parallel()

	var g Grid
	d, err := propagate(&g)
	require.NoError(t, err)

	assert.False(t, d.solved)
	assert.Equal(t, 0, d.row)
	assert.Equal(t, 0, d.col)
	assert.Equal(t, FullSet, d.candidates, "nothing constrains any cell yet")
	assert.Equal(t, Grid{}, g, "a stalled pass must not place anything")
}

func TestPropagateReportsMostConstrainedCell(t *testing.T) {
	t.Parallel()

	// Row 1 leaves cells (1, 7) and (1, 8) with two candidates each while
	// the rest of the board is far looser; MRV must pick (1, 7), the first
	// of the minimal cells in row-major order.
	g, err := Parse(
		".........",
		"1234567..",
		strings.Repeat(".", 63),
	)
	require.NoError(t, err)

	d, err := propagate(&g)
	require.NoError(t, err)

	assert.False(t, d.solved)
	assert.Equal(t, 1, d.row)
	assert.Equal(t, 7, d.col)
	assert.Equal(t, []uint8{8, 9}, d.candidates.Digits())
}

func TestPropagateUnsolvable(t *testing.T) {
	t.Parallel()

	g, err := Parse(contradiction)
	require.NoError(t, err, "the contradiction must still parse")

	_, err = propagate(&g)
	assert.ErrorIs(t, err, ErrUnsolvable)
}

func TestPropagateKeepsRegionsValid(t *testing.T) {
	t.Parallel()

	g, err := Parse(easyPuzzle)
	require.NoError(t, err)
	givens := g

	_, err = propagate(&g)
	require.NoError(t, err)

	assert.NoError(t, g.checkRegions(), "propagation must never introduce a duplicate")
	for i, v := range givens {
		if v != 0 {
			assert.Equal(t, v, g[i], "given at cell %d must survive", i)
		}
	}
}
