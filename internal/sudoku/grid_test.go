package sudoku

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const easyPuzzle = `
53..7....
6..195...
.98....6.
8...6...3
4..8.3..1
7...2...6
.6....28.
...419..5
....8..79
`

func TestParseRoundTrip(t *testing.T) {
	t.Parallel()

	g, err := Parse(easyPuzzle)
	require.NoError(t, err)
	assert.Equal(t, strings.TrimLeft(easyPuzzle, "\n"), g.Render())
}

func TestParseJoinsLines(t *testing.T) {
	t.Parallel()

	whole, err := Parse(easyPuzzle)
	require.NoError(t, err)

	lines := strings.Fields(easyPuzzle)
	require.Len(t, lines, 9)
	byLine, err := Parse(lines...)
	require.NoError(t, err)

	assert.Equal(t, whole, byLine)
}

func TestParseRejections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "too short",
			text: strings.Repeat(".", 80),
			want: "expected 81 cells, got 80",
		},
		{
			name: "too long",
			text: strings.Repeat(".", 82),
			want: "expected 81 cells, got 82",
		},
		{
			name: "zero is not a legal character",
			text: "0" + strings.Repeat(".", 80),
			want: `illegal character '0'`,
		},
		{
			name: "letters are not legal",
			text: strings.Repeat(".", 40) + "x" + strings.Repeat(".", 40),
			want: `illegal character 'x'`,
		},
		{
			name: "duplicate in row",
			text: "11" + strings.Repeat(".", 79),
			want: "duplicate digit in row 0",
		},
		{
			name: "duplicate in column",
			text: "5" + strings.Repeat(".", 8) + "5" + strings.Repeat(".", 71),
			want: "duplicate digit in column 0",
		},
		{
			name: "duplicate in box",
			text: "5" + strings.Repeat(".", 9) + "5" + strings.Repeat(".", 70),
			want: "duplicate digit in box 0",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse(test.text)
			require.ErrorIs(t, err, ErrInvalidPuzzle)
			assert.Contains(t, err.Error(), test.want)
		})
	}
}

func TestParseEmptyPuzzle(t *testing.T) {
	t.Parallel()

	g, err := Parse(strings.Repeat(".", 81))
	require.NoError(t, err)
	assert.Equal(t, Grid{}, g)
}

func TestAtAndSet(t *testing.T) {
	t.Parallel()

	g, err := Parse(easyPuzzle)
	require.NoError(t, err)

	v, err := g.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, uint8(5), v)

	v, err = g.At(0, 2)
	require.NoError(t, err)
	assert.Equal(t, uint8(0), v)

	require.NoError(t, g.Set(0, 2, 4))
	v, err = g.At(0, 2)
	require.NoError(t, err)
	assert.Equal(t, uint8(4), v)

	require.NoError(t, g.Set(0, 2, 0))
	v, err = g.At(0, 2)
	require.NoError(t, err)
	assert.Equal(t, uint8(0), v)

	assert.ErrorIs(t, g.Set(0, 0, 10), ErrInvalidPuzzle)
	assert.ErrorIs(t, g.Set(9, 0, 1), ErrInvalidPuzzle)
	assert.ErrorIs(t, g.Set(0, -1, 1), ErrInvalidPuzzle)

	_, err = g.At(-1, 0)
	assert.ErrorIs(t, err, ErrInvalidPuzzle)
	_, err = g.At(0, 9)
	assert.ErrorIs(t, err, ErrInvalidPuzzle)
}

func TestCloneIsIndependent(t *testing.T) {
	t.Parallel()

	g, err := Parse(easyPuzzle)
	require.NoError(t, err)

	c := g.Clone()
	require.NoError(t, c.Set(0, 2, 4))

	v, err := g.At(0, 2)
	require.NoError(t, err)
	assert.Equal(t, uint8(0), v, "mutating a clone must not touch the original")
}

func TestBoxTables(t *testing.T) {
	t.Parallel()

	// Every cell's box must contain the cell, per the origin+offsets walk.
	for i := range Cells {
		box := boxOf[i]
		found := false
		for _, off := range boxOffsets {
			if boxOrigin[box]+off == i {
				found = true
				break
			}
		}
		assert.True(t, found, "cell %d not reachable from box %d", i, box)
	}

	assert.Equal(t, 0, boxOf[0])
	assert.Equal(t, 4, boxOf[4*Size+4])
	assert.Equal(t, 8, boxOf[Cells-1])
}

func TestUnknownsRowMajorAndRestartable(t *testing.T) {
	t.Parallel()

	g, err := Parse(easyPuzzle)
	require.NoError(t, err)

	collect := func() []Cell {
		var cells []Cell
		for c := range g.Unknowns() {
			cells = append(cells, c)
		}
		return cells
	}

	first := collect()
	require.NotEmpty(t, first)

	prev := -1
	for _, c := range first {
		i := c.Row*Size + c.Col
		assert.Greater(t, i, prev, "cells must come out in row-major order")
		assert.Equal(t, uint8(0), g[i])
		assert.Equal(t, boxOf[i], c.Box)
		prev = i
	}

	assert.Equal(t, first, collect(), "sequence must be restartable")
}
