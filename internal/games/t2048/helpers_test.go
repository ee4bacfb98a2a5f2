package t2048

import "testing"

// scriptedRand replays fixed Intn/Float64 results, then falls back to 0 and 0.5.
type scriptedRand struct {
	ints   []int
	floats []float64
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.5
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func mustGrid(t *testing.T, values [][]int) *Grid {
	t.Helper()
	g, err := NewGridFromValues(values)
	if err != nil {
		t.Fatalf("NewGridFromValues: %v", err)
	}
	return g
}

func lineOf(values ...int) []Tile {
	line := make([]Tile, len(values))
	for i, v := range values {
		if v != 0 {
			line[i] = Tile{ID: TileID(i + 1), Value: v, Col: i}
		}
	}
	return line
}

func lineValues(tiles []Tile, size int) []int {
	out := make([]int, size)
	for i, t := range tiles {
		out[i] = t.Value
	}
	return out
}

func sumValues(g *Grid) int {
	total := 0
	for _, t := range g.Tiles() {
		total += t.Value
	}
	return total
}
