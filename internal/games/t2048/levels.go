// Package t2048 implements the 2048 sliding-tile engine: the grid, the move
// and merge algorithm, tile spawning, win and game-over detection, and
// score tracking, plus the Game adapter the terminal platform drives.
package t2048

// Goal is a named target tile with its spawn difficulty.
type Goal struct {
	ID     int
	Name   string
	Target int     // Target tile value to reach
	Spawn4 float64 // Probability of spawning 4 instead of 2 (0.0-1.0)
}

// Goals lists the selectable targets, easiest first.
var Goals = []Goal{
	{ID: 1, Name: "Warm-up", Target: 128, Spawn4: 0.10},
	{ID: 2, Name: "Getting Started", Target: 256, Spawn4: 0.10},
	{ID: 3, Name: "Building Momentum", Target: 512, Spawn4: 0.10},
	{ID: 4, Name: "The Climb", Target: 1024, Spawn4: 0.10},
	{ID: 5, Name: "Classic 2048", Target: 2048, Spawn4: 0.10},
	{ID: 6, Name: "Beyond Limits", Target: 4096, Spawn4: 0.12},
	{ID: 7, Name: "Master Class", Target: 8192, Spawn4: 0.15},
}

// GoalCount returns the number of goals.
func GoalCount() int {
	return len(Goals)
}

// GetGoal returns the goal at the given index (0-based).
// Returns nil if index is out of range.
func GetGoal(index int) *Goal {
	if index < 0 || index >= len(Goals) {
		return nil
	}
	return &Goals[index]
}

// ClassicGoalIndex is the index of the 2048 goal.
const ClassicGoalIndex = 4

// GoalNames returns the names of all goals.
func GoalNames() []string {
	names := make([]string, len(Goals))
	for i, g := range Goals {
		names[i] = g.Name
	}
	return names
}

// GoalTargets returns the targets of all goals.
func GoalTargets() []int {
	targets := make([]int, len(Goals))
	for i, g := range Goals {
		targets[i] = g.Target
	}
	return targets
}
