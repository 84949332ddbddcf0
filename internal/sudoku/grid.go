package sudoku

import (
	"fmt"
	"iter"
	"log/slog"
	"strings"
	"unicode"
)

var Log *slog.Logger = slog.Default()

const (
	// Size is the side length of the board and the number of rows, columns
	// and boxes.
	Size = 9
	// Cells is the total number of cells on the board.
	Cells = Size * Size

	boxSide = 3
)

// Grid is the 81-cell board state. Index row*9+col holds the digit placed at
// (row, col); 0 means the cell is still unknown. Grid is a plain value, so
// assigning one copies the whole board — the solver leans on this when it
// branches, giving every guess its own private copy.
type Grid [Cells]uint8

// boxOf maps a linear cell index to its 3x3 box, numbered 0-8 left to right,
// top to bottom.
var boxOf = func() (t [Cells]int) {
	for i := range t {
		t[i] = (i/Size/boxSide)*boxSide + (i%Size)/boxSide
	}
	return t
}()

// boxOrigin maps a box number to the linear index of its upper-left cell.
var boxOrigin = [Size]int{0, 3, 6, 27, 30, 33, 54, 57, 60}

// boxOffsets are the offsets of a box's nine cells from its origin.
var boxOffsets = [Size]int{0, 1, 2, 9, 10, 11, 18, 19, 20}

// Parse builds a Grid from puzzle text. All arguments are concatenated and
// every whitespace character is dropped; what remains must be exactly 81
// characters, each a digit '1'-'9' (a given) or '.' (unknown). A grid whose
// givens already repeat a digit within a row, column or box is rejected.
// Every failure wraps [ErrInvalidPuzzle].
func Parse(parts ...string) (Grid, error) {
	var g Grid
	text := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, strings.Join(parts, ""))
	if len(text) != Cells {
		return g, fmt.Errorf("%w: expected %d cells, got %d", ErrInvalidPuzzle, Cells, len(text))
	}
	for i := 0; i < Cells; i++ {
		switch c := text[i]; {
		case c == '.':
			g[i] = 0
		case '1' <= c && c <= '9':
			g[i] = c - '0'
		default:
			return g, fmt.Errorf("%w: illegal character %q at cell %d", ErrInvalidPuzzle, c, i)
		}
	}
	if err := g.checkRegions(); err != nil {
		return g, err
	}
	return g, nil
}

// checkRegions rejects a grid that repeats a nonzero digit within any row,
// column or box.
func (g Grid) checkRegions() error {
	for i := range Size {
		for _, region := range []struct {
			kind   string
			digits DigitSet
			filled int
		}{
			{"row", g.RowDigits(i), g.rowFilled(i)},
			{"column", g.ColDigits(i), g.colFilled(i)},
			{"box", g.BoxDigits(i), g.boxFilled(i)},
		} {
			if region.digits.Len() != region.filled {
				return fmt.Errorf("%w: duplicate digit in %s %d", ErrInvalidPuzzle, region.kind, i)
			}
		}
	}
	return nil
}

func (g Grid) rowFilled(row int) (n int) {
	for i := row * Size; i < (row+1)*Size; i++ {
		if g[i] != 0 {
			n++
		}
	}
	return n
}

func (g Grid) colFilled(col int) (n int) {
	for i := col; i < Cells; i += Size {
		if g[i] != 0 {
			n++
		}
	}
	return n
}

func (g Grid) boxFilled(box int) (n int) {
	for _, off := range boxOffsets {
		if g[boxOrigin[box]+off] != 0 {
			n++
		}
	}
	return n
}

func checkCoords(row, col int) error {
	if row < 0 || row >= Size || col < 0 || col >= Size {
		return fmt.Errorf("%w: cell (%d, %d) out of range", ErrInvalidPuzzle, row, col)
	}
	return nil
}

// At returns the digit at (row, col), 0 when unknown.
func (g Grid) At(row, col int) (uint8, error) {
	if err := checkCoords(row, col); err != nil {
		return 0, err
	}
	return g[row*Size+col], nil
}

// Set places value at (row, col). Value 0 clears the cell back to unknown.
// Set does not check whether the digit collides with its row, column or box;
// callers are expected to write only digits drawn from [Grid.Possible].
func (g *Grid) Set(row, col int, value uint8) error {
	if err := checkCoords(row, col); err != nil {
		return err
	}
	if value > Size {
		return fmt.Errorf("%w: value %d outside 0..9", ErrInvalidPuzzle, value)
	}
	g[row*Size+col] = value
	return nil
}

// Clone returns an independent copy of the grid.
func (g Grid) Clone() Grid {
	return g
}

// Solved reports whether every cell holds a digit.
func (g Grid) Solved() bool {
	for _, v := range g {
		if v == 0 {
			return false
		}
	}
	return true
}

// Render produces the canonical text form: nine lines of nine characters,
// '.' for unknown cells. It is the inverse of [Parse].
func (g Grid) Render() string {
	var b strings.Builder
	b.Grow(Cells + Size)
	for i, v := range g {
		if v == 0 {
			b.WriteByte('.')
		} else {
			b.WriteByte('0' + v)
		}
		if i%Size == Size-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (g Grid) String() string {
	return g.Render()
}

// A Cell locates one unknown square together with its box number.
type Cell struct {
	Row, Col, Box int
}

// Unknowns yields a Cell for every zero cell in row-major order. The sequence
// is computed lazily against a private copy of the grid and may be ranged
// over any number of times.
func (g Grid) Unknowns() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for i, v := range g {
			if v != 0 {
				continue
			}
			if !yield(Cell{Row: i / Size, Col: i % Size, Box: boxOf[i]}) {
				return
			}
		}
	}
}
