package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/term2048/internal/core"
	"github.com/vovakirdan/term2048/internal/games/t2048"
)

// GoalSelection holds the user's choice from the goal menu.
type GoalSelection struct {
	Goal *t2048.Goal // nil plays endless
}

// GameID returns the registry ID the selection plays.
func (s GoalSelection) GameID() string {
	if s.Goal == nil {
		return t2048.IDEndless
	}
	return t2048.IDClassic
}

// Apply sets the goal's target and spawn odds on settings.
func (s GoalSelection) Apply(settings core.GameSettings) core.GameSettings {
	if s.Goal != nil {
		settings.Target = s.Goal.Target
		settings.Spawn4Prob = s.Goal.Spawn4
	}
	return settings
}

// GoalModel lets users pick a target tile, or endless play.
type GoalModel struct {
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selection GoalSelection
	choosing  bool
	quitting  bool
	back      bool
}

// NewGoalModel creates a goal selector with the classic goal highlighted.
func NewGoalModel(width, height int) GoalModel {
	return GoalModel{
		cursor:    t2048.ClassicGoalIndex,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m GoalModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m GoalModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m GoalModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Goals plus the endless entry
	last := t2048.GoalCount()

	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < last {
			m.cursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selection = GoalSelection{Goal: t2048.GetGoal(m.cursor)}
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the goal list.
func (m GoalModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("CHOOSE YOUR GOAL", m.width))
	b.WriteString("\n\n")

	targets := t2048.GoalTargets()
	for i, name := range t2048.GoalNames() {
		b.WriteString(centerText(fmt.Sprintf("%s%d. %-18s %5d", m.cursorMark(i), i+1, name, targets[i]), m.width))
		b.WriteString("\n")
	}
	endless := t2048.GoalCount()
	b.WriteString(centerText(fmt.Sprintf("%s%d. %-18s %5s", m.cursorMark(endless), endless+1, "Endless", "-"), m.width))
	b.WriteString("\n")

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

func (m GoalModel) cursorMark(i int) string {
	if i == m.cursor {
		return "> "
	}
	return "  "
}

// Selected returns the selection, or nil if still choosing.
func (m GoalModel) Selected() *GoalSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m GoalModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m GoalModel) WantsBack() bool {
	return m.back
}

// RunGoalSelector runs the goal menu. A nil selection means back or quit.
func RunGoalSelector(cfg core.RuntimeConfig) (*GoalSelection, error) {
	model := NewGoalModel(cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(GoalModel)
	if !ok || m.IsQuitting() || m.WantsBack() {
		return nil, nil
	}

	return m.Selected(), nil
}
