package ui_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/macropower/aspect/pkg/preset"
	"github.com/macropower/aspect/pkg/screen"
	"github.com/macropower/aspect/pkg/screenlist"
	"github.com/macropower/aspect/pkg/ui"
	"github.com/macropower/aspect/pkg/ui/picker"
)

type fakeCopier struct {
	err    error
	copied []string
}

func (c *fakeCopier) Copy(text string) error {
	if c.err != nil {
		return c.err
	}

	c.copied = append(c.copied, text)

	return nil
}

var (
	keyTab      = tea.KeyMsg{Type: tea.KeyTab}
	keyShiftTab = tea.KeyMsg{Type: tea.KeyShiftTab}
	keyUp       = tea.KeyMsg{Type: tea.KeyUp}
	keyDown     = tea.KeyMsg{Type: tea.KeyDown}
	keyEnter    = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc      = tea.KeyMsg{Type: tea.KeyEsc}
	keyAdd      = tea.KeyMsg{Type: tea.KeyCtrlN}
	keyRemove   = tea.KeyMsg{Type: tea.KeyCtrlD}
	keyRotate   = tea.KeyMsg{Type: tea.KeyCtrlR}
	keyDiagUnit = tea.KeyMsg{Type: tea.KeyCtrlU}
	keySizeUnit = tea.KeyMsg{Type: tea.KeyCtrlS}
	keyCopy     = tea.KeyMsg{Type: tea.KeyCtrlY}
	keyCopyAll  = tea.KeyMsg{Type: tea.KeyCtrlA}
	keyPresets  = tea.KeyMsg{Type: tea.KeyCtrlP}
	keySave     = tea.KeyMsg{Type: tea.KeyCtrlO}
	keyHelp     = tea.KeyMsg{Type: tea.KeyF1}
	keyQuit     = tea.KeyMsg{Type: tea.KeyCtrlC}
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(m *ui.Model, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}

	return cmd
}

func newModel(t *testing.T, opts ...ui.ModelOpt) (*ui.Model, *fakeCopier) {
	t.Helper()

	c := &fakeCopier{}
	m := ui.NewModel(nil, append([]ui.ModelOpt{ui.WithCopier(c)}, opts...)...)
	send(m, tea.WindowSizeMsg{Width: 100, Height: 60})

	return m, c
}

func only(t *testing.T, m *ui.Model) screenlist.Entry {
	t.Helper()

	entries := m.List().Entries()
	require.Len(t, entries, 1)

	return entries[0]
}

func TestModelStartsWithOneEntry(t *testing.T) {
	t.Parallel()

	m, _ := newModel(t)

	e := only(t, m)
	assert.True(t, e.IsEmpty())

	id, field := m.Focus()
	assert.Equal(t, e.ID, id)
	assert.Equal(t, ui.FieldWidth, field)

	view := ansi.Strip(m.View())
	assert.Contains(t, view, "1 screen")
	assert.Contains(t, view, "1/1")
}

func TestModelTyping(t *testing.T) {
	t.Parallel()

	m, _ := newModel(t)
	send(m,
		runes("1366"), keyTab,
		runes("768"), keyTab,
		runes("15.6"),
	)

	e := only(t, m)
	assert.Equal(t, "1366", e.Width)
	assert.Equal(t, "768", e.Height)
	assert.Equal(t, "15.6", e.Diagonal)

	_, field := m.Focus()
	assert.Equal(t, ui.FieldDiagonal, field)

	view := ansi.Strip(m.View())
	assert.Contains(t, view, "DPI: 100.45")
	assert.Contains(t, view, "PixelCount: 1,049,088")
	assert.Contains(t, view, "(39.62cm)")

	send(m, tea.KeyMsg{Type: tea.KeyBackspace}, tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "15", only(t, m).Diagonal)
}

func TestModelInvalidEntry(t *testing.T) {
	t.Parallel()

	m, _ := newModel(t)
	send(m, runes("0"), keyTab, runes("1080"))

	_, ok := only(t, m).Info()
	assert.False(t, ok)
	assert.Contains(t, ansi.Strip(m.View()), "enter a positive width and height")
}

func TestModelFieldNavigation(t *testing.T) {
	t.Parallel()

	m, _ := newModel(t, ui.WithList(listOf(
		screenlist.Entry{Width: "1920", Height: "1080"},
		screenlist.Entry{Width: "2560", Height: "1440"},
	)))

	send(m, keyShiftTab)
	id, field := m.Focus()
	assert.Equal(t, screenlist.ID(0), id)
	assert.Equal(t, ui.FieldWidth, field)

	send(m, keyTab, keyTab, keyTab)
	id, field = m.Focus()
	assert.Equal(t, screenlist.ID(1), id)
	assert.Equal(t, ui.FieldWidth, field)

	send(m, keyTab, keyTab, keyTab)
	id, field = m.Focus()
	assert.Equal(t, screenlist.ID(1), id)
	assert.Equal(t, ui.FieldDiagonal, field)

	send(m, keyUp)
	id, field = m.Focus()
	assert.Equal(t, screenlist.ID(0), id)
	assert.Equal(t, ui.FieldDiagonal, field)

	send(m, keyUp)
	id, _ = m.Focus()
	assert.Equal(t, screenlist.ID(0), id)

	send(m, keyEnter)
	id, _ = m.Focus()
	assert.Equal(t, screenlist.ID(1), id)
	assert.Equal(t, 2, m.List().Len())
}

func TestModelAddAndRemove(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		check func(t *testing.T, m *ui.Model)
		keys  []tea.Msg
	}{
		"add focuses the new entry": {
			keys: []tea.Msg{runes("1920"), keyAdd},
			check: func(t *testing.T, m *ui.Model) {
				t.Helper()

				assert.Equal(t, []screenlist.ID{0, 1}, m.List().IDs())

				id, field := m.Focus()
				assert.Equal(t, screenlist.ID(1), id)
				assert.Equal(t, ui.FieldWidth, field)
			},
		},
		"leaving an empty entry removes it": {
			keys: []tea.Msg{runes("1920"), keyAdd, keyUp},
			check: func(t *testing.T, m *ui.Model) {
				t.Helper()

				assert.Equal(t, []screenlist.ID{0}, m.List().IDs())

				id, _ := m.Focus()
				assert.Equal(t, screenlist.ID(0), id)
			},
		},
		"leaving the only empty entry keeps it": {
			keys: []tea.Msg{keyDown, keyUp},
			check: func(t *testing.T, m *ui.Model) {
				t.Helper()

				assert.Equal(t, []screenlist.ID{0}, m.List().IDs())
			},
		},
		"remove focuses the next entry": {
			keys: []tea.Msg{runes("1920"), keyAdd, runes("800"), keyUp, keyRemove},
			check: func(t *testing.T, m *ui.Model) {
				t.Helper()

				assert.Equal(t, []screenlist.ID{1}, m.List().IDs())

				id, _ := m.Focus()
				assert.Equal(t, screenlist.ID(1), id)
			},
		},
		"remove the last entry focuses the previous one": {
			keys: []tea.Msg{runes("1920"), keyAdd, runes("800"), keyRemove},
			check: func(t *testing.T, m *ui.Model) {
				t.Helper()

				assert.Equal(t, []screenlist.ID{0}, m.List().IDs())

				id, _ := m.Focus()
				assert.Equal(t, screenlist.ID(0), id)
			},
		},
		"remove the only entry clears it": {
			keys: []tea.Msg{runes("1920"), keyTab, runes("1080"), keyRemove},
			check: func(t *testing.T, m *ui.Model) {
				t.Helper()

				e := only(t, m)
				assert.True(t, e.IsEmpty())
				assert.Equal(t, screenlist.ID(0), e.ID)

				_, field := m.Focus()
				assert.Equal(t, ui.FieldWidth, field)
			},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			m, _ := newModel(t)
			send(m, tc.keys...)
			tc.check(t, m)
		})
	}
}

func TestModelRotate(t *testing.T) {
	t.Parallel()

	m, _ := newModel(t)
	send(m, runes("1920"), keyTab, runes("1080"), keyRotate)

	e := only(t, m)
	assert.Equal(t, "1080", e.Width)
	assert.Equal(t, "1920", e.Height)

	// The inputs show the swapped values, so further typing appends to them.
	send(m, runes("0"))
	assert.Equal(t, "19200", only(t, m).Height)
}

func TestModelUnits(t *testing.T) {
	t.Parallel()

	m, _ := newModel(t, ui.WithList(listOf(
		screenlist.Entry{Width: "1920", Height: "1080", Diagonal: "27"},
		screenlist.Entry{Width: "1366", Height: "768", Diagonal: "15.6"},
	)))

	send(m, keyDiagUnit)

	entries := m.List().Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, screen.UnitCentimeter, entries[0].DiagonalUnit)
	assert.Equal(t, "68.58", entries[0].Diagonal)
	assert.Equal(t, screen.UnitCentimeter, entries[1].DiagonalUnit)
	assert.Equal(t, "39.624", entries[1].Diagonal)
	assert.Contains(t, ansi.Strip(m.View()), "diagonal in cm")

	send(m, keyDiagUnit)
	assert.Equal(t, "27", m.List().Entries()[0].Diagonal)
	assert.Equal(t, screen.UnitInch, m.List().Entries()[0].DiagonalUnit)

	send(m, keySizeUnit)
	for _, e := range m.List().Entries() {
		assert.Equal(t, screen.UnitInch, e.SizeUnit)
	}
}

func TestModelCopy(t *testing.T) {
	t.Parallel()

	m, c := newModel(t, ui.WithList(listOf(
		screenlist.Entry{Width: "1920", Height: "1080"},
		screenlist.Entry{Width: "abc", Height: "1080"},
		screenlist.Entry{Width: "2560", Height: "1440", Diagonal: "27"},
	)))

	send(m, keyCopy)
	require.Len(t, c.copied, 1)

	want, ok := m.List().Entries()[0].Text()
	require.True(t, ok)
	assert.Equal(t, want, c.copied[0])
	assert.Contains(t, ansi.Strip(m.View()), "copied screen")

	send(m, keyDown, keyCopy)
	assert.Len(t, c.copied, 1)
	assert.Contains(t, ansi.Strip(m.View()), "invalid screen")

	send(m, keyCopyAll)
	require.Len(t, c.copied, 2)
	assert.Equal(t, m.List().Text(), c.copied[1])
	assert.Contains(t, ansi.Strip(m.View()), "copied 2 screens")
}

func TestModelCopyErrors(t *testing.T) {
	t.Parallel()

	m, c := newModel(t)
	send(m, keyCopyAll)
	assert.Empty(t, c.copied)
	assert.Contains(t, ansi.Strip(m.View()), "no valid screens")

	c.err = errors.New("no clipboard")

	send(m, runes("1920"), keyTab, runes("1080"), keyCopy)
	assert.Empty(t, c.copied)
	assert.Contains(t, ansi.Strip(m.View()), "no clipboard")
}

func TestModelPresets(t *testing.T) {
	t.Parallel()

	m, _ := newModel(t, ui.WithCatalog(preset.NewCatalog()))
	send(m, runes("1920"))

	send(m, keyPresets)
	require.True(t, m.PickerOpen())
	assert.Contains(t, ansi.Strip(m.View()), "Presets")

	// Keys go to the picker while it is open.
	send(m, runes("steam deck"))
	assert.Equal(t, "1920", only(t, m).Width)

	cmd := send(m, keyEnter)
	require.NotNil(t, cmd)

	msg := cmd()
	require.IsType(t, picker.SelectedMsg{}, msg)

	send(m, msg)
	assert.False(t, m.PickerOpen())

	entries := m.List().Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "Steam Deck", entries[1].Name)
	assert.Equal(t, "1280", entries[1].Width)

	id, _ := m.Focus()
	assert.Equal(t, entries[1].ID, id)

	send(m, keyPresets)
	cmd = send(m, keyEsc)
	require.NotNil(t, cmd)
	send(m, cmd())
	assert.False(t, m.PickerOpen())
	assert.Equal(t, 2, m.List().Len())
}

func TestModelSave(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "screens.yaml")

	m, _ := newModel(t, ui.WithSavePath(path))
	send(m, runes("1920"), keyTab, runes("1080"), keyTab, runes("24"), keySave)
	assert.Contains(t, ansi.Strip(m.View()), "saved")

	doc, err := screenlist.Load(path)
	require.NoError(t, err)
	require.Len(t, doc.Screens, 1)
	assert.Equal(t, screenlist.Input("1920"), doc.Screens[0].Width)
	assert.Equal(t, screenlist.Input("24"), doc.Screens[0].Diagonal)
}

func TestModelSaveWithoutPath(t *testing.T) {
	t.Parallel()

	m, _ := newModel(t)
	send(m, keySave)
	assert.Contains(t, ansi.Strip(m.View()), "no file to save to")
}

func TestModelHelpAndQuit(t *testing.T) {
	t.Parallel()

	m, _ := newModel(t)
	assert.NotContains(t, ansi.Strip(m.View()), "size in/cm")

	send(m, keyHelp)
	assert.Contains(t, ansi.Strip(m.View()), "size in/cm")

	cmd := send(m, keyQuit)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())

	cmd = send(m, keyEsc)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func listOf(entries ...screenlist.Entry) *screenlist.List {
	l := screenlist.New()
	for _, e := range entries {
		l.Add(e)
	}

	return l
}
