package sudoku

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegionDigits(t *testing.T) {
	t.Parallel()

	g, err := Parse(easyPuzzle)
	require.NoError(t, err)

	assert.Equal(t, []uint8{3, 5, 7}, g.RowDigits(0).Digits())
	assert.Equal(t, []uint8{1, 4, 5, 9}, g.RowDigits(7).Digits())

	assert.Equal(t, []uint8{4, 5, 6, 7, 8}, g.ColDigits(0).Digits())
	assert.Equal(t, []uint8{1, 3, 5, 6, 9}, g.ColDigits(8).Digits())

	assert.Equal(t, []uint8{3, 5, 6, 8, 9}, g.BoxDigits(0).Digits())
	assert.Equal(t, []uint8{2, 5, 7, 8, 9}, g.BoxDigits(8).Digits())
}

func TestPossible(t *testing.T) {
	t.Parallel()

	g, err := Parse(easyPuzzle)
	require.NoError(t, err)

	// Cell (0, 2): row 0 has {3 5 7}, column 2 has {8}, box 0 has
	// {3 5 6 8 9}; the leftovers are {1 2 4}.
	got := g.Possible(0, 2, boxOf[0*Size+2])
	assert.Equal(t, []uint8{1, 2, 4}, got.Digits())

	// An empty grid constrains nothing.
	assert.Equal(t, FullSet, Grid{}.Possible(4, 4, 4))

	// A cell whose row, column and box together account for all nine
	// digits has no candidates left.
	blocked, err := Parse(
		".23456789",
		".........",
		"1........",
		strings.Repeat(".", 54),
	)
	require.NoError(t, err)
	assert.Equal(t, 0, blocked.Possible(0, 0, 0).Len())
}
