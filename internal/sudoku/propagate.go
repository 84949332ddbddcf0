package sudoku

import "fmt"

// A deduction is the outcome of running propagation to a fixed point: either
// the grid came out solved, or row/col name the unresolved cell with the
// fewest candidates seen (the cell the solver should branch on next).
type deduction struct {
	solved     bool
	row, col   int
	candidates DigitSet
}

// propagate fills every forced cell in g, repeating full row-major passes
// until a pass changes nothing. A cell with no candidates fails the whole
// grid with [ErrUnsolvable] on the spot.
//
// The branch cell it reports is tracked only while the current pass has not
// yet placed a digit; once a pass writes something, another full pass runs
// anyway, and the final pass — which by definition writes nothing — scans
// every remaining unknown. Minimum ties keep the first cell found.
func propagate(g *Grid) (deduction, error) {
	for {
		var (
			changed bool
			unknown bool
			branch  deduction
		)
		bestLen := Size + 1
		for cell := range g.Unknowns() {
			unknown = true
			candidates := g.Possible(cell.Row, cell.Col, cell.Box)
			switch {
			case candidates == 0:
				return deduction{}, fmt.Errorf(
					"%w: no candidates for cell (%d, %d)", ErrUnsolvable, cell.Row, cell.Col,
				)
			case candidates.Len() == 1:
				// Forced: the digit is a member of the cell's candidate
				// set, so it cannot collide with its row, column or box.
				g[cell.Row*Size+cell.Col] = candidates.One()
				changed = true
			case !changed && candidates.Len() < bestLen:
				bestLen = candidates.Len()
				branch = deduction{row: cell.Row, col: cell.Col, candidates: candidates}
			}
		}
		if changed {
			continue
		}
		if !unknown {
			return deduction{solved: true}, nil
		}
		return branch, nil
	}
}
