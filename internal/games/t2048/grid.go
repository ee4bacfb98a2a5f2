package t2048

import (
	"errors"
	"fmt"
	"math/bits"
)

// MinBoardSize and MaxBoardSize bound the grid dimension.
const (
	MinBoardSize = 2
	MaxBoardSize = 8
)

// ErrInvalidSize is returned when a grid dimension is outside [MinBoardSize, MaxBoardSize].
var ErrInvalidSize = errors.New("t2048: invalid board size")

// OutOfBoundsError reports a coordinate outside the grid.
// It is raised as a panic: a bad coordinate is a caller bug, not a runtime condition.
type OutOfBoundsError struct {
	Row, Col int
	Size     int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("t2048: cell (%d, %d) out of bounds for %dx%d grid", e.Row, e.Col, e.Size, e.Size)
}

// Pos is a grid coordinate.
type Pos struct {
	Row, Col int
}

// TileID identifies a tile for the lifetime of a grid. Zero means no tile.
type TileID uint64

// Tile is a value-with-identity occupying one cell.
// Merged is transient: it is only meaningful during a single move.
type Tile struct {
	ID     TileID
	Value  int
	Row    int
	Col    int
	Merged bool
}

// Empty reports whether the tile is the zero tile (an empty cell).
func (t Tile) Empty() bool {
	return t.ID == 0
}

// Pos returns the tile's position.
func (t Tile) Pos() Pos {
	return Pos{Row: t.Row, Col: t.Col}
}

// IsPowerOfTwo reports whether v is a positive power of two.
func IsPowerOfTwo(v int) bool {
	return v > 0 && bits.OnesCount(uint(v)) == 1
}

// Grid is an N×N board of cells. An empty cell holds the zero Tile.
type Grid struct {
	size   int
	cells  []Tile
	nextID TileID
}

// NewGrid creates an empty size×size grid.
func NewGrid(size int) (*Grid, error) {
	if size < MinBoardSize || size > MaxBoardSize {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	return &Grid{
		size:  size,
		cells: make([]Tile, size*size),
	}, nil
}

// NewGridFromValues builds a grid from a square matrix of values, 0 meaning empty.
// Every non-zero value must be a power of two.
func NewGridFromValues(values [][]int) (*Grid, error) {
	g, err := NewGrid(len(values))
	if err != nil {
		return nil, err
	}
	for r, row := range values {
		if len(row) != g.size {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidSize, r, len(row), g.size)
		}
		for c, v := range row {
			if v == 0 {
				continue
			}
			if !IsPowerOfTwo(v) {
				return nil, fmt.Errorf("t2048: value %d at (%d, %d) is not a power of two", v, r, c)
			}
			g.Place(Pos{Row: r, Col: c}, v)
		}
	}
	return g, nil
}

// Size returns the grid dimension.
func (g *Grid) Size() int {
	return g.size
}

// InBounds reports whether (row, col) is a valid coordinate.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.size && col >= 0 && col < g.size
}

func (g *Grid) index(row, col int) int {
	if !g.InBounds(row, col) {
		panic(&OutOfBoundsError{Row: row, Col: col, Size: g.size})
	}
	return row*g.size + col
}

// At returns the tile at (row, col), or the zero Tile if the cell is empty.
func (g *Grid) At(row, col int) Tile {
	return g.cells[g.index(row, col)]
}

// Set stores t at (row, col), rewriting its position fields.
// Setting the zero Tile empties the cell.
func (g *Grid) Set(row, col int, t Tile) {
	i := g.index(row, col)
	if t.Empty() {
		g.cells[i] = Tile{}
		return
	}
	t.Row, t.Col = row, col
	g.cells[i] = t
}

// Clear empties the cell at (row, col).
func (g *Grid) Clear(row, col int) {
	g.cells[g.index(row, col)] = Tile{}
}

// Place creates a new tile with a fresh identity at p.
func (g *Grid) Place(p Pos, value int) Tile {
	g.nextID++
	t := Tile{ID: g.nextID, Value: value}
	g.Set(p.Row, p.Col, t)
	return g.At(p.Row, p.Col)
}

// EmptyCells returns the coordinates of all empty cells in row-major order.
func (g *Grid) EmptyCells() []Pos {
	var cells []Pos
	for i, t := range g.cells {
		if t.Empty() {
			cells = append(cells, Pos{Row: i / g.size, Col: i % g.size})
		}
	}
	return cells
}

// Occupied returns the number of non-empty cells.
func (g *Grid) Occupied() int {
	n := 0
	for _, t := range g.cells {
		if !t.Empty() {
			n++
		}
	}
	return n
}

// Tiles returns all tiles in row-major order.
func (g *Grid) Tiles() []Tile {
	tiles := make([]Tile, 0, len(g.cells))
	for _, t := range g.cells {
		if !t.Empty() {
			tiles = append(tiles, t)
		}
	}
	return tiles
}

// Values returns the grid as a matrix of values, 0 meaning empty.
func (g *Grid) Values() [][]int {
	out := make([][]int, g.size)
	for r := range g.size {
		out[r] = make([]int, g.size)
		for c := range g.size {
			out[r][c] = g.cells[r*g.size+c].Value
		}
	}
	return out
}

// MaxTile returns the highest tile value on the grid.
func (g *Grid) MaxTile() int {
	maxVal := 0
	for _, t := range g.cells {
		if t.Value > maxVal {
			maxVal = t.Value
		}
	}
	return maxVal
}

// Clone returns a deep copy; tile identities are preserved.
func (g *Grid) Clone() *Grid {
	c := &Grid{
		size:   g.size,
		cells:  make([]Tile, len(g.cells)),
		nextID: g.nextID,
	}
	copy(c.cells, g.cells)
	return c
}

// reset empties every cell. Tile IDs keep increasing so identities are never reused.
func (g *Grid) reset() {
	for i := range g.cells {
		g.cells[i] = Tile{}
	}
}

// clearMerged resets the transient merge flag on every tile.
func (g *Grid) clearMerged() {
	for i := range g.cells {
		g.cells[i].Merged = false
	}
}
