// Package picker is a fuzzy finder over the preset catalog.
package picker

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/macropower/aspect/pkg/keys"
	"github.com/macropower/aspect/pkg/preset"
	"github.com/macropower/aspect/pkg/ui/common"
)

type (
	// SelectedMsg is sent when a preset is chosen.
	SelectedMsg struct {
		Preset preset.Preset
	}
	// ClosedMsg is sent when the picker is dismissed.
	ClosedMsg struct{}
)

type KeyBinds struct {
	Select *keys.KeyBind `json:"select,omitempty" jsonschema:"title=Select Preset"`
	Up     *keys.KeyBind `json:"up,omitempty"     jsonschema:"title=Move Up"`
	Down   *keys.KeyBind `json:"down,omitempty"   jsonschema:"title=Move Down"`
}

func (kb *KeyBinds) EnsureDefaults() {
	keys.SetDefaultBind(&kb.Select, keys.NewBind("add preset",
		keys.New("enter", keys.WithAlias("↵")),
	))
	keys.SetDefaultBind(&kb.Up, keys.NewBind("move up",
		keys.New("up", keys.WithAlias("↑")),
		keys.New("ctrl+k", keys.Hidden()),
	))
	keys.SetDefaultBind(&kb.Down, keys.NewBind("move down",
		keys.New("down", keys.WithAlias("↓")),
		keys.New("ctrl+j", keys.Hidden()),
	))
}

func (kb *KeyBinds) GetKeyBinds() []keys.KeyBind {
	return []keys.KeyBind{
		*kb.Select,
		*kb.Up,
		*kb.Down,
	}
}

type Model struct {
	cm      *common.CommonModel
	kb      *KeyBinds
	catalog *preset.Catalog
	matches []preset.Match
	input   textinput.Model
	cursor  int
}

func New(cm *common.CommonModel, kb *KeyBinds, catalog *preset.Catalog) Model {
	in := textinput.New()
	in.Prompt = "> "
	in.Placeholder = "search presets"
	in.PromptStyle = cm.Theme.InputPromptStyle
	in.PlaceholderStyle = cm.Theme.SubtleStyle
	in.Focus()

	return Model{
		cm:      cm,
		kb:      kb,
		catalog: catalog,
		input:   in,
		matches: catalog.Search(""),
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Query returns the current search text.
func (m Model) Query() string {
	return m.input.Value()
}

// Matches returns the presets matching the query, best first.
func (m Model) Matches() []preset.Match {
	return m.matches
}

// Cursor returns the index of the highlighted match.
func (m Model) Cursor() int {
	return m.cursor
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)

		return m, cmd
	}

	key := keyMsg.String()

	switch {
	case m.cm.KeyBinds.Escape.Match(key):
		return m, func() tea.Msg { return ClosedMsg{} }

	case m.kb.Select.Match(key):
		if len(m.matches) == 0 {
			return m, nil
		}

		p := m.matches[m.cursor].Preset

		return m, func() tea.Msg { return SelectedMsg{Preset: p} }

	case m.kb.Up.Match(key):
		m.cursor = max(0, m.cursor-1)

		return m, nil

	case m.kb.Down.Match(key):
		m.cursor = max(0, min(len(m.matches)-1, m.cursor+1))

		return m, nil
	}

	prev := m.input.Value()

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	if m.input.Value() != prev {
		m.matches = m.catalog.Search(m.input.Value())
		m.cursor = 0
	}

	return m, cmd
}

func (m Model) View() string {
	t := m.cm.Theme
	width := max(20, m.cm.Width-4)

	lines := []string{
		t.SelectedStyle.Bold(true).Render("Presets"),
		m.input.View(),
		"",
	}

	limit := max(1, m.cm.Height-8)
	start := max(0, m.cursor-limit+1)

	if len(m.matches) == 0 {
		lines = append(lines, t.SubtleStyle.Render("no matching presets"))
	}

	for i := start; i < len(m.matches) && i < start+limit; i++ {
		row := ansi.Truncate(m.matches[i].Preset.Describe(), width-2, t.Ellipsis)
		if i == m.cursor {
			lines = append(lines, t.SelectedStyle.Render("▸ "+row))

			continue
		}

		lines = append(lines, t.GenericTextStyle.Render("  "+row))
	}

	return t.FocusedBorderStyle.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
