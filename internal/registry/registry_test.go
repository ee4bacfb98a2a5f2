package registry

import (
	"testing"

	"github.com/vovakirdan/term2048/internal/core"
)

type stubGame struct {
	id       string
	settings core.GameSettings
}

func (s *stubGame) ID() string { return s.id }
func (s *stubGame) Title() string { return "Stub " + s.id }
func (s *stubGame) Reset(core.RuntimeConfig) {}
func (s *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (s *stubGame) Render(*core.Screen) {}
func (s *stubGame) State() core.GameState { return core.GameState{} }
func (s *stubGame) Controls() string { return "" }

func stubFactory(id string) Factory {
	return func(settings core.GameSettings) Game {
		return &stubGame{id: id, settings: settings}
	}
}

func TestRegisterAndCreate(t *testing.T) {
	Register("zz_stub", stubFactory("zz_stub"))

	if !Exists("zz_stub") {
		t.Fatal("registered game should exist")
	}

	g, err := Create("zz_stub", core.GameSettings{BoardSize: 5})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if got := g.(*stubGame).settings.BoardSize; got != 5 {
		t.Errorf("settings not passed to factory, BoardSize = %d", got)
	}

	found := false
	for _, info := range List() {
		if info.ID == "zz_stub" {
			found = true
			if info.Title != "Stub zz_stub" {
				t.Errorf("Title = %q", info.Title)
			}
		}
	}
	if !found {
		t.Error("List should include the registered game")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no_such_game", core.GameSettings{}); err == nil {
		t.Error("expected error for unknown game")
	}
	if Exists("no_such_game") {
		t.Error("unknown game should not exist")
	}
}

func TestListSorted(t *testing.T) {
	Register("aa_stub", stubFactory("aa_stub"))
	Register("mm_stub", stubFactory("mm_stub"))

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Errorf("List not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup_stub", stubFactory("dup_stub"))

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("dup_stub", stubFactory("dup_stub"))
}
