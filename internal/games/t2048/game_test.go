package t2048

import (
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/term2048/internal/core"
	"github.com/vovakirdan/term2048/internal/registry"
)

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func newTestGame(t *testing.T, settings core.GameSettings) *Game {
	t.Helper()
	g := New(settings)
	cfg := core.DefaultConfig()
	cfg.Seed = 42
	g.Reset(cfg)
	if g.Session() == nil {
		t.Fatal("Reset should create a session")
	}
	return g
}

func TestGameRegistered(t *testing.T) {
	for _, id := range []string{IDClassic, IDEndless} {
		if !registry.Exists(id) {
			t.Errorf("game %q not registered", id)
		}
	}

	g, err := registry.Create(IDEndless, core.GameSettings{})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != IDEndless {
		t.Errorf("ID = %q, want %q", g.ID(), IDEndless)
	}
}

func TestGameResetUsesSettings(t *testing.T) {
	g := newTestGame(t, core.GameSettings{BoardSize: 5, Target: 512})

	rules := g.Session().Rules()
	if rules.Size != 5 || rules.Target != 512 {
		t.Errorf("rules = %+v, want size 5 target 512", rules)
	}
}

func TestGameResetFallsBackOnBadSettings(t *testing.T) {
	g := newTestGame(t, core.GameSettings{Target: 1000})

	if got := g.Session().Rules().Target; got != DefaultTarget {
		t.Errorf("Target = %d, want fallback %d", got, DefaultTarget)
	}
}

func TestEndlessModeHasNoTarget(t *testing.T) {
	g := NewEndless(core.GameSettings{Target: 256})
	g.Reset(core.DefaultConfig())

	if got := g.Session().Rules().Target; got != 0 {
		t.Errorf("endless Target = %d, want 0", got)
	}
}

func TestResolveID(t *testing.T) {
	tests := []struct {
		id       string
		settings core.GameSettings
		want     string
	}{
		{IDClassic, core.GameSettings{}, IDClassic},
		{IDClassic, core.GameSettings{Target: 512}, IDClassic},
		{IDClassic, core.GameSettings{Target: -1}, IDEndless},
		{IDEndless, core.GameSettings{Target: 512}, IDEndless},
	}
	for _, tt := range tests {
		if got := ResolveID(tt.id, tt.settings); got != tt.want {
			t.Errorf("ResolveID(%q, %+v) = %q, want %q", tt.id, tt.settings, got, tt.want)
		}
	}
}

func TestGameResetExplicitZeros(t *testing.T) {
	g := newTestGame(t, core.GameSettings{Target: -1, InitialTiles: -1, Spawn4Prob: -1})

	rules := g.Session().Rules()
	if rules.Target != 0 || rules.InitialTiles != 0 || rules.Spawn4Prob != 0 {
		t.Errorf("rules = %+v, want zero target, initial tiles and spawn prob", rules)
	}
	if got := g.Session().Grid().Occupied(); got != 0 {
		t.Errorf("occupied = %d, want 0", got)
	}
}

func TestGameResizeKeepsSession(t *testing.T) {
	g := newTestGame(t, core.GameSettings{})
	before := g.Session()
	board := g.Session().Grid().Values()

	cfg := core.DefaultConfig()
	cfg.ScreenW, cfg.ScreenH = 100, 40
	g.Reset(cfg)

	if g.Session() != before {
		t.Error("resize should keep the running session")
	}
	if got := g.Session().Grid().Values(); !reflect.DeepEqual(got, board) {
		t.Errorf("board changed on resize: %v -> %v", board, got)
	}
}

func TestGameStepMoves(t *testing.T) {
	g := newTestGame(t, core.GameSettings{})

	moved := false
	for _, a := range []core.Action{core.ActionLeft, core.ActionRight, core.ActionUp, core.ActionDown} {
		if g.Step(frame(a)).Moved {
			moved = true
		}
	}
	if !moved {
		t.Error("at least one direction should move a fresh board")
	}
	if g.Session().Moves() == 0 {
		t.Error("session should count moves made through Step")
	}
}

func TestGamePause(t *testing.T) {
	g := newTestGame(t, core.GameSettings{})
	res := g.Step(frame(core.ActionPause))
	if !res.State.Paused {
		t.Fatal("pause action should pause")
	}

	for _, a := range []core.Action{core.ActionLeft, core.ActionRight, core.ActionUp, core.ActionDown} {
		if g.Step(frame(a)).Moved {
			t.Errorf("%v moved while paused", a)
		}
	}
	if g.Session().Moves() != 0 {
		t.Errorf("moves = %d while paused", g.Session().Moves())
	}

	if g.Step(frame(core.ActionPause)).State.Paused {
		t.Error("second pause should resume")
	}
}

func TestGameRestart(t *testing.T) {
	g := newTestGame(t, core.GameSettings{})
	for _, a := range []core.Action{core.ActionLeft, core.ActionUp, core.ActionRight, core.ActionDown} {
		g.Step(frame(a))
	}

	g.Step(frame(core.ActionRestart))

	if g.Session().Moves() != 0 || g.State().Score != 0 {
		t.Errorf("restart left moves %d score %d", g.Session().Moves(), g.State().Score)
	}
	if g.Session().Grid().Occupied() != DefaultInitialTiles {
		t.Errorf("occupied = %d after restart", g.Session().Grid().Occupied())
	}
}

func TestGameTooSmall(t *testing.T) {
	g := New(core.GameSettings{})
	g.Reset(core.RuntimeConfig{ScreenW: 30, ScreenH: 8, Seed: 1})

	if !g.State().Paused {
		t.Error("a too-small screen should report paused")
	}
	if g.Step(frame(core.ActionLeft)).Moved {
		t.Error("no moves while the screen is too small")
	}

	screen := core.NewScreen(30, 8)
	g.Render(screen)
	if !strings.Contains(screen.String(), "small") {
		t.Errorf("expected a too-small message, got:\n%s", screen.String())
	}
}

func TestGameRenderShowsScore(t *testing.T) {
	g := newTestGame(t, core.GameSettings{})
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	if !strings.Contains(out, "Score") {
		t.Errorf("render should include the HUD, got:\n%s", out)
	}
	if !strings.Contains(out, "2") {
		t.Error("render should show the initial tiles")
	}
}
