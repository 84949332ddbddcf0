package sudoku

// RowDigits returns the digits already placed in a row.
func (g Grid) RowDigits(row int) DigitSet {
	var s DigitSet
	for i := row * Size; i < (row+1)*Size; i++ {
		if g[i] != 0 {
			s.Add(g[i])
		}
	}
	return s
}

// ColDigits returns the digits already placed in a column.
func (g Grid) ColDigits(col int) DigitSet {
	var s DigitSet
	for i := col; i < Cells; i += Size {
		if g[i] != 0 {
			s.Add(g[i])
		}
	}
	return s
}

// BoxDigits returns the digits already placed in a box.
func (g Grid) BoxDigits(box int) DigitSet {
	var s DigitSet
	for _, off := range boxOffsets {
		if v := g[boxOrigin[box]+off]; v != 0 {
			s.Add(v)
		}
	}
	return s
}

// Possible returns the digits still legal for the cell at (row, col), which
// lives in the given box: everything not yet taken by the cell's row, column
// or box. An empty result means the grid cannot be completed from this state.
func (g Grid) Possible(row, col, box int) DigitSet {
	return FullSet &^ (g.RowDigits(row) | g.ColDigits(col) | g.BoxDigits(box))
}
