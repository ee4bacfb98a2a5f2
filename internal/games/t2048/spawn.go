package t2048

// DefaultSpawn4Prob is the classic chance of spawning a 4 instead of a 2.
const DefaultSpawn4Prob = 0.10

// RandomSource is the randomness a Spawner draws from. *rand.Rand satisfies it.
type RandomSource interface {
	Intn(n int) int
	Float64() float64
}

// Spawner inserts new tiles into random empty cells.
type Spawner struct {
	rng        RandomSource
	spawn4Prob float64
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(rng RandomSource, spawn4Prob float64) *Spawner {
	return &Spawner{rng: rng, spawn4Prob: spawn4Prob}
}

// Spawn places a 2 (or a 4, with probability spawn4Prob) in a uniformly chosen
// empty cell. On a full grid it does nothing and returns false.
func (s *Spawner) Spawn(g *Grid) (Tile, bool) {
	empty := g.EmptyCells()
	if len(empty) == 0 {
		return Tile{}, false
	}

	cell := empty[s.rng.Intn(len(empty))]

	value := 2
	if s.rng.Float64() < s.spawn4Prob {
		value = 4
	}

	return g.Place(cell, value), true
}
