package t2048

import "strings"

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists every valid direction.
var Directions = []Direction{DirUp, DirDown, DirLeft, DirRight}

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

// ParseDirection accepts a direction name or its first letter, case-insensitively.
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return DirUp, true
	case "down", "d":
		return DirDown, true
	case "left", "l":
		return DirLeft, true
	case "right", "r":
		return DirRight, true
	default:
		return 0, false
	}
}

// Merge records two tiles combining during a move.
type Merge struct {
	Survivor TileID
	Absorbed TileID
	At       Pos
	Value    int // value after the merge
}

// TileMove describes where a tile travelled during a move.
// An absorbed tile moves onto its survivor's cell and then disappears.
type TileMove struct {
	ID       TileID
	From     Pos
	To       Pos
	Value    int // value before the merge
	Absorbed bool
}

// SlideResult is the outcome of sliding a grid in one direction.
type SlideResult struct {
	Changed bool
	Score   int
	Merges  []Merge
	Moves   []TileMove
}

// lineMerge is a merge inside a compacted line; index is the survivor's slot.
type lineMerge struct {
	index    int
	absorbed Tile
}

// linePositions returns the cells of line i ordered so that index 0 is the
// edge tiles slide toward.
func linePositions(size int, dir Direction, i int) []Pos {
	out := make([]Pos, size)
	for k := range size {
		switch dir {
		case DirLeft:
			out[k] = Pos{Row: i, Col: k}
		case DirRight:
			out[k] = Pos{Row: i, Col: size - 1 - k}
		case DirUp:
			out[k] = Pos{Row: k, Col: i}
		case DirDown:
			out[k] = Pos{Row: size - 1 - k, Col: i}
		}
	}
	return out
}

// slideLine compacts a line toward index 0 and merges equal neighbours
// left to right. A tile already marked Merged never merges again.
// Returns the surviving tiles, the merges, and the score gained.
func slideLine(line []Tile) (result []Tile, merges []lineMerge, score int) {
	result = make([]Tile, 0, len(line))
	for _, t := range line {
		if !t.Empty() {
			result = append(result, t)
		}
	}

	for i := 0; i < len(result)-1; i++ {
		left, right := result[i], result[i+1]
		if left.Value != right.Value || left.Merged || right.Merged {
			continue
		}
		result[i].Value *= 2
		result[i].Merged = true
		score += result[i].Value
		merges = append(merges, lineMerge{index: i, absorbed: right})
		result = append(result[:i+1], result[i+2:]...)
	}

	return result, merges, score
}

// Slide moves every tile of g in the given direction, in place.
// An invalid direction leaves the grid untouched.
func Slide(g *Grid, dir Direction) SlideResult {
	var res SlideResult
	if !dir.Valid() {
		return res
	}

	g.clearMerged()

	for i := range g.size {
		positions := linePositions(g.size, dir, i)

		before := make([]Tile, len(positions))
		for k, p := range positions {
			before[k] = g.At(p.Row, p.Col)
		}

		after, merges, score := slideLine(before)
		res.Score += score

		for k, p := range positions {
			if k >= len(after) {
				if before[k].Value != 0 {
					res.Changed = true
				}
				g.Clear(p.Row, p.Col)
				continue
			}
			t := after[k]
			if before[k].Value != t.Value {
				res.Changed = true
			}
			from := t.Pos()
			value := t.Value
			if t.Merged {
				value /= 2
			}
			if from != p || t.Merged {
				res.Moves = append(res.Moves, TileMove{ID: t.ID, From: from, To: p, Value: value})
			}
			g.Set(p.Row, p.Col, t)
		}

		for _, m := range merges {
			to := positions[m.index]
			survivor := after[m.index]
			res.Merges = append(res.Merges, Merge{
				Survivor: survivor.ID,
				Absorbed: m.absorbed.ID,
				At:       to,
				Value:    survivor.Value,
			})
			res.Moves = append(res.Moves, TileMove{
				ID:       m.absorbed.ID,
				From:     m.absorbed.Pos(),
				To:       to,
				Value:    m.absorbed.Value,
				Absorbed: true,
			})
		}
	}

	return res
}
