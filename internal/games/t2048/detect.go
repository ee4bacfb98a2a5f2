package t2048

// HasEmptyCell returns true if there's at least one empty cell.
func HasEmptyCell(g *Grid) bool {
	for _, t := range g.cells {
		if t.Empty() {
			return true
		}
	}
	return false
}

// HasPossibleMerge returns true if any two orthogonally adjacent tiles share a value.
// Empty cells never count as a match.
func HasPossibleMerge(g *Grid) bool {
	n := g.size
	for r := range n {
		for c := range n {
			t := g.cells[r*n+c]
			if t.Empty() {
				continue
			}
			if c < n-1 && g.cells[r*n+c+1].Value == t.Value {
				return true
			}
			if r < n-1 && g.cells[(r+1)*n+c].Value == t.Value {
				return true
			}
		}
	}
	return false
}

// CanMove returns true if any move is possible.
func CanMove(g *Grid) bool {
	return HasEmptyCell(g) || HasPossibleMerge(g)
}

// IsGameOver returns true if the grid is full and no adjacent tiles can merge.
func IsGameOver(g *Grid) bool {
	return !CanMove(g)
}

// IsWon returns true if some tile equals target. A zero target never wins.
func IsWon(g *Grid, target int) bool {
	if target <= 0 {
		return false
	}
	for _, t := range g.cells {
		if t.Value == target {
			return true
		}
	}
	return false
}
