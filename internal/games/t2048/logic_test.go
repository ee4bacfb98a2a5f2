package t2048

import (
	"math/rand"
	"reflect"
	"testing"
)

func TestSlideLineMerge(t *testing.T) {
	tests := []struct {
		name     string
		input    []int
		expected []int
		score    int
	}{
		{"simple merge", []int{2, 2, 0, 0}, []int{4, 0, 0, 0}, 4},
		{"merge with trailing tile", []int{2, 2, 2, 0}, []int{4, 2, 0, 0}, 4},
		{"double merge", []int{2, 2, 2, 2}, []int{4, 4, 0, 0}, 8},
		{"two pairs", []int{2, 2, 4, 4}, []int{4, 8, 0, 0}, 12},
		{"leftmost pair wins", []int{2, 0, 2, 2}, []int{4, 2, 0, 0}, 4},
		{"no merge possible", []int{2, 4, 8, 16}, []int{2, 4, 8, 16}, 0},
		{"slide with gap", []int{0, 0, 2, 2}, []int{4, 0, 0, 0}, 4},
		{"slide with multiple gaps", []int{2, 0, 0, 2}, []int{4, 0, 0, 0}, 4},
		{"no change needed", []int{4, 2, 0, 0}, []int{4, 2, 0, 0}, 0},
		{"empty row", []int{0, 0, 0, 0}, []int{0, 0, 0, 0}, 0},
		{"single tile", []int{0, 4, 0, 0}, []int{4, 0, 0, 0}, 0},
		{"merged tile does not chain", []int{4, 2, 2, 0}, []int{4, 4, 0, 0}, 4},
		{"longer line", []int{2, 2, 2, 2, 4, 4}, []int{4, 4, 8, 0, 0, 0}, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, _, score := slideLine(lineOf(tt.input...))
			got := lineValues(result, len(tt.input))
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("slideLine(%v) = %v, want %v", tt.input, got, tt.expected)
			}
			if score != tt.score {
				t.Errorf("slideLine(%v) score = %d, want %d", tt.input, score, tt.score)
			}
		})
	}
}

func TestSlideLineSkipsAlreadyMerged(t *testing.T) {
	line := lineOf(4, 4, 0, 0)
	line[0].Merged = true

	result, merges, score := slideLine(line)
	if len(merges) != 0 || score != 0 {
		t.Errorf("a tile flagged Merged must not merge again, got %d merges, score %d", len(merges), score)
	}
	if got := lineValues(result, 4); !reflect.DeepEqual(got, []int{4, 4, 0, 0}) {
		t.Errorf("slideLine = %v, want [4 4 0 0]", got)
	}
}

func TestSlideLineKeepsSurvivorIdentity(t *testing.T) {
	line := lineOf(0, 2, 2, 0)
	result, merges, _ := slideLine(line)

	if len(result) != 1 || result[0].ID != 2 {
		t.Fatalf("survivor should be the tile nearest the edge (ID 2), got %+v", result)
	}
	if len(merges) != 1 || merges[0].absorbed.ID != 3 {
		t.Errorf("absorbed tile should be ID 3, got %+v", merges)
	}
}

func TestSlideLeft(t *testing.T) {
	g := mustGrid(t, [][]int{
		{2, 2, 0, 0},
		{4, 0, 4, 0},
		{2, 2, 2, 2},
		{0, 0, 0, 2},
	})

	expected := [][]int{
		{4, 0, 0, 0},
		{8, 0, 0, 0},
		{4, 4, 0, 0},
		{2, 0, 0, 0},
	}

	res := Slide(g, DirLeft)

	if got := g.Values(); !reflect.DeepEqual(got, expected) {
		t.Errorf("SlideLeft: got\n%v\nwant\n%v", got, expected)
	}
	if !res.Changed {
		t.Error("SlideLeft should indicate board changed")
	}
	if res.Score != 4+8+4+4 {
		t.Errorf("SlideLeft score = %d, want 20", res.Score)
	}
	if len(res.Merges) != 4 {
		t.Errorf("SlideLeft merges = %d, want 4", len(res.Merges))
	}
}

func TestSlideRight(t *testing.T) {
	g := mustGrid(t, [][]int{
		{2, 2, 0, 0},
		{4, 0, 4, 0},
		{2, 2, 2, 2},
		{0, 0, 0, 2},
	})

	expected := [][]int{
		{0, 0, 0, 4},
		{0, 0, 0, 8},
		{0, 0, 4, 4},
		{0, 0, 0, 2},
	}

	res := Slide(g, DirRight)

	if got := g.Values(); !reflect.DeepEqual(got, expected) {
		t.Errorf("SlideRight: got\n%v\nwant\n%v", got, expected)
	}
	if !res.Changed {
		t.Error("SlideRight should indicate board changed")
	}
}

func TestSlideUp(t *testing.T) {
	g := mustGrid(t, [][]int{
		{2, 4, 2, 0},
		{2, 0, 2, 0},
		{0, 4, 2, 0},
		{0, 0, 2, 2},
	})

	expected := [][]int{
		{4, 8, 4, 2},
		{0, 0, 4, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	res := Slide(g, DirUp)

	if got := g.Values(); !reflect.DeepEqual(got, expected) {
		t.Errorf("SlideUp: got\n%v\nwant\n%v", got, expected)
	}
	if !res.Changed {
		t.Error("SlideUp should indicate board changed")
	}
}

func TestSlideDown(t *testing.T) {
	g := mustGrid(t, [][]int{
		{2, 4, 2, 2},
		{2, 0, 2, 0},
		{0, 4, 2, 0},
		{0, 0, 2, 0},
	})

	expected := [][]int{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 4, 0},
		{4, 8, 4, 2},
	}

	res := Slide(g, DirDown)

	if got := g.Values(); !reflect.DeepEqual(got, expected) {
		t.Errorf("SlideDown: got\n%v\nwant\n%v", got, expected)
	}
	if !res.Changed {
		t.Error("SlideDown should indicate board changed")
	}
}

func TestSlideUpdatesPositions(t *testing.T) {
	g := mustGrid(t, [][]int{
		{0, 0, 0, 8},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	id := g.At(0, 3).ID

	res := Slide(g, DirDown)

	moved := g.At(3, 3)
	if moved.ID != id || moved.Row != 3 || moved.Col != 3 {
		t.Errorf("tile should keep ID %d and sit at (3, 3), got %+v", id, moved)
	}
	if len(res.Moves) != 1 || res.Moves[0].From != (Pos{0, 3}) || res.Moves[0].To != (Pos{3, 3}) {
		t.Errorf("Moves = %+v, want one move (0,3)->(3,3)", res.Moves)
	}
}

func TestNoChangeNoSpawn(t *testing.T) {
	g := mustGrid(t, [][]int{
		{4, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	res := Slide(g, DirLeft)
	if res.Changed {
		t.Error("SlideLeft should not change already left-aligned tiles")
	}
	if len(res.Moves) != 0 {
		t.Errorf("no tile should move, got %+v", res.Moves)
	}
}

func TestSlideInvalidDirection(t *testing.T) {
	g := mustGrid(t, [][]int{
		{2, 2},
		{0, 0},
	})

	res := Slide(g, Direction(42))
	if res.Changed || res.Score != 0 {
		t.Errorf("invalid direction should be a no-op, got %+v", res)
	}
	if got := g.Values(); !reflect.DeepEqual(got, [][]int{{2, 2}, {0, 0}}) {
		t.Errorf("grid changed on invalid direction: %v", got)
	}
}

func TestOneMergePerTilePerMove(t *testing.T) {
	g := mustGrid(t, [][]int{
		{4, 4, 4, 4},
		{2, 2, 4, 8},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	res := Slide(g, DirLeft)

	seen := make(map[TileID]bool)
	for _, m := range res.Merges {
		for _, id := range []TileID{m.Survivor, m.Absorbed} {
			if seen[id] {
				t.Errorf("tile %d took part in more than one merge", id)
			}
			seen[id] = true
		}
	}

	// [4,4,4,4] -> [8,8,0,0], not [16,0,0,0]; [2,2,4,8] -> [4,4,8,0]
	want := [][]int{
		{8, 8, 0, 0},
		{4, 4, 8, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	if got := g.Values(); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if res.Score != 8+8+4 {
		t.Errorf("score = %d, want 20", res.Score)
	}
}

func TestSlideResetsMergedFlags(t *testing.T) {
	g := mustGrid(t, [][]int{
		{2, 2, 4, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	Slide(g, DirLeft) // [4,4,0,0], first tile flagged Merged
	if !g.At(0, 0).Merged {
		t.Fatal("merged survivor should carry the flag until the next move")
	}

	res := Slide(g, DirLeft)
	if got := g.At(0, 0).Value; got != 8 {
		t.Errorf("a tile merged last move must merge again this move, got %d", got)
	}
	if res.Score != 8 {
		t.Errorf("score = %d, want 8", res.Score)
	}
}

func TestSlidePreservesPowersAndSum(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 200; trial++ {
		size := MinBoardSize + rng.Intn(MaxBoardSize-MinBoardSize+1)
		values := make([][]int, size)
		for r := range values {
			values[r] = make([]int, size)
			for c := range values[r] {
				if rng.Intn(3) > 0 {
					values[r][c] = 1 << (1 + rng.Intn(4))
				}
			}
		}
		g := mustGrid(t, values)
		before := sumValues(g)
		occupied := g.Occupied()

		dir := Directions[rng.Intn(len(Directions))]
		res := Slide(g, dir)

		for _, tile := range g.Tiles() {
			if !IsPowerOfTwo(tile.Value) {
				t.Fatalf("trial %d: non power of two %d", trial, tile.Value)
			}
		}
		if after := sumValues(g); after != before {
			t.Fatalf("trial %d: tile sum changed %d -> %d", trial, before, after)
		}
		if g.Occupied() != occupied-len(res.Merges) {
			t.Fatalf("trial %d: occupied %d, want %d", trial, g.Occupied(), occupied-len(res.Merges))
		}
		gained := 0
		for _, m := range res.Merges {
			gained += m.Value
		}
		if gained != res.Score {
			t.Fatalf("trial %d: score %d != sum of merged values %d", trial, res.Score, gained)
		}
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in   string
		want Direction
		ok   bool
	}{
		{"left", DirLeft, true},
		{"R", DirRight, true},
		{" Up ", DirUp, true},
		{"d", DirDown, true},
		{"sideways", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseDirection(tt.in)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("ParseDirection(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}

	if DirLeft.String() != "left" {
		t.Errorf("DirLeft.String() = %q", DirLeft.String())
	}
}
