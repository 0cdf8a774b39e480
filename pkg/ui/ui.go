// Package ui provides the interactive screen list editor.
package ui

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/macropower/aspect/pkg/export"
	"github.com/macropower/aspect/pkg/keys"
	"github.com/macropower/aspect/pkg/preset"
	"github.com/macropower/aspect/pkg/screenlist"
	"github.com/macropower/aspect/pkg/ui/common"
	"github.com/macropower/aspect/pkg/ui/picker"
	"github.com/macropower/aspect/pkg/ui/statusbar"
	"github.com/macropower/aspect/pkg/ui/theme"
	"github.com/macropower/aspect/pkg/yaml"
)

// NewProgram returns a new Tea program running the editor.
func NewProgram(cfg *Config, opts ...ModelOpt) *tea.Program {
	slog.Debug("starting aspect ui")

	return tea.NewProgram(NewModel(cfg, opts...), tea.WithAltScreen())
}

// Model edits a [screenlist.List]. Every change to an input is written to
// the list immediately, and the results are derived from the list on render.
type Model struct {
	copier    export.Copier
	cm        *common.CommonModel
	kb        *KeyBinds
	list      *screenlist.List
	catalog   *preset.Catalog
	picker    *picker.Model
	rows      map[screenlist.ID]*row
	help      help.Model
	savePath  string
	focus     screenlist.ID
	field     Field
	showHelp  bool
	compact   bool
	alternate bool
}

type ModelOpt func(*Model)

// WithList edits l instead of a new, empty list.
func WithList(l *screenlist.List) ModelOpt {
	return func(m *Model) {
		m.list = l
	}
}

// WithCopier replaces the system clipboard.
func WithCopier(c export.Copier) ModelOpt {
	return func(m *Model) {
		m.copier = c
	}
}

// WithCatalog sets the presets offered by the picker.
func WithCatalog(c *preset.Catalog) ModelOpt {
	return func(m *Model) {
		m.catalog = c
	}
}

// WithSavePath enables saving the list to path.
func WithSavePath(path string) ModelOpt {
	return func(m *Model) {
		m.savePath = path
	}
}

func NewModel(cfg *Config, opts ...ModelOpt) *Model {
	if cfg == nil {
		cfg = NewConfig()
	}

	cfg.EnsureDefaults()

	t := theme.New(cfg.Theme)

	m := &Model{
		cm: &common.CommonModel{
			Theme:    t,
			KeyBinds: cfg.KeyBinds.Common,
		},
		kb:        cfg.KeyBinds,
		copier:    export.Clipboard{},
		rows:      map[screenlist.ID]*row{},
		help:      help.New(),
		compact:   *cfg.Compact,
		alternate: *cfg.AlternateDiagonal,
	}
	for _, opt := range opts {
		opt(m)
	}

	if m.list == nil {
		m.list = screenlist.New()
	}
	if m.catalog == nil {
		m.catalog = preset.NewCatalog()
	}
	if m.list.Len() == 0 {
		m.list.Add(screenlist.Entry{})
	}

	m.help.Styles.ShortKey = t.GenericTextStyle
	m.help.Styles.ShortDesc = t.SubtleStyle
	m.help.Styles.ShortSeparator = t.SubtleStyle

	for _, e := range m.list.Entries() {
		m.rows[e.ID] = newRow(t, e)
	}

	m.focus = m.list.IDs()[0]
	m.rows[m.focus].inputs[FieldWidth].Focus()

	return m
}

// List returns the edited list.
func (m *Model) List() *screenlist.List {
	return m.list
}

// Focus returns the focused entry and input.
func (m *Model) Focus() (screenlist.ID, Field) {
	return m.focus, m.field
}

// PickerOpen reports whether the preset picker is shown.
func (m *Model) PickerOpen() bool {
	return m.picker != nil
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

//nolint:ireturn // Must satisfy [tea.Model].
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.cm.Width = msg.Width
		m.cm.Height = msg.Height

		return m, nil

	case common.StatusMessageTimeoutMsg:
		m.cm.ClearStatusMessage()

		return m, nil

	case picker.ClosedMsg:
		m.picker = nil

		return m, m.focusInput()

	case picker.SelectedMsg:
		m.picker = nil

		return m, tea.Batch(
			m.addEntry(msg.Preset.Entry()),
			m.cm.SendStatusMessage("added "+msg.Preset.Name, statusbar.StyleSuccess),
		)

	case tea.KeyMsg:
		if m.cm.KeyBinds.Quit.Match(msg.String()) {
			return m, tea.Quit
		}
		if m.picker != nil {
			return m, m.updatePicker(msg)
		}

		return m, m.handleKey(msg)
	}

	if m.picker != nil {
		return m, m.updatePicker(msg)
	}

	return m, m.updateInput(msg)
}

func (m *Model) updatePicker(msg tea.Msg) tea.Cmd {
	p, cmd := m.picker.Update(msg)
	m.picker = &p

	return cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	k := msg.String()
	ckb := m.cm.KeyBinds
	ekb := m.kb.Editor

	switch {
	case ckb.Escape.Match(k):
		return tea.Quit
	case ckb.Suspend.Match(k):
		return tea.Suspend
	case ckb.Help.Match(k):
		m.showHelp = !m.showHelp
	case ekb.Next.Match(k):
		return m.moveField(1)
	case ekb.Prev.Match(k):
		return m.moveField(-1)
	case ekb.Up.Match(k):
		return m.moveRow(-1)
	case ekb.Down.Match(k):
		return m.moveRow(1)
	case ekb.Add.Match(k):
		return m.addEntry(screenlist.Entry{})
	case ekb.Remove.Match(k):
		return m.removeFocused()
	case ekb.Rotate.Match(k):
		m.list.Update(m.focus, screenlist.Rotate())
		m.syncRows()
	case ekb.DiagonalUnit.Match(k):
		return m.toggleDiagonalUnit()
	case ekb.SizeUnit.Match(k):
		return m.toggleSizeUnit()
	case ekb.Copy.Match(k):
		return m.copyFocused()
	case ekb.CopyAll.Match(k):
		return m.copyAll()
	case ekb.Presets.Match(k):
		return m.openPicker()
	case ekb.Save.Match(k):
		return m.save()
	default:
		return m.updateInput(msg)
	}

	return nil
}

// updateInput forwards msg to the focused input and stores any change.
func (m *Model) updateInput(msg tea.Msg) tea.Cmd {
	r, ok := m.rows[m.focus]
	if !ok {
		return nil
	}

	prev := r.inputs[m.field].Value()

	var cmd tea.Cmd
	r.inputs[m.field], cmd = r.inputs[m.field].Update(msg)

	if v := r.inputs[m.field].Value(); v != prev {
		m.list.Update(m.focus, m.field.change(v))
	}

	return cmd
}

func (m *Model) index(id screenlist.ID) int {
	return slices.Index(m.list.IDs(), id)
}

// setFocus moves the focus. Leaving an entry with all inputs empty removes
// it, unless it is the only one.
func (m *Model) setFocus(id screenlist.ID, f Field) tea.Cmd {
	if id != m.focus {
		m.rows[m.focus].blur()

		if e, ok := m.list.Get(m.focus); ok && e.IsEmpty() && m.list.Len() > 1 {
			slog.Debug("remove empty screen", slog.Int("id", int(m.focus)))
			m.list.Remove(m.focus)
			delete(m.rows, m.focus)
		}
	}

	m.focus = id
	m.field = f

	return m.focusInput()
}

func (m *Model) focusInput() tea.Cmd {
	r, ok := m.rows[m.focus]
	if !ok {
		return nil
	}

	for f := range numFields {
		if f != m.field {
			r.inputs[f].Blur()
		}
	}

	return r.inputs[m.field].Focus()
}

func (m *Model) moveField(delta int) tea.Cmd {
	ids := m.list.IDs()
	pos := m.index(m.focus)*int(numFields) + int(m.field) + delta

	if pos < 0 || pos >= len(ids)*int(numFields) {
		return nil
	}

	return m.setFocus(ids[pos/int(numFields)], Field(pos%int(numFields)))
}

func (m *Model) moveRow(delta int) tea.Cmd {
	ids := m.list.IDs()
	i := m.index(m.focus) + delta

	if i < 0 || i >= len(ids) {
		return nil
	}

	return m.setFocus(ids[i], m.field)
}

func (m *Model) addEntry(e screenlist.Entry) tea.Cmd {
	id := m.list.Add(e)

	added, _ := m.list.Get(id)
	m.rows[id] = newRow(m.cm.Theme, added)

	slog.Debug("add screen", slog.Int("id", int(id)))

	return m.setFocus(id, FieldWidth)
}

func (m *Model) removeFocused() tea.Cmd {
	ids := m.list.IDs()

	if len(ids) == 1 {
		m.list.Update(m.focus,
			screenlist.SetWidth(""),
			screenlist.SetHeight(""),
			screenlist.SetDiagonal(""),
		)
		m.syncRows()

		return m.setFocus(m.focus, FieldWidth)
	}

	i := m.index(m.focus)
	removed := m.focus

	m.list.Remove(removed)
	delete(m.rows, removed)

	ids = m.list.IDs()
	m.focus = ids[min(i, len(ids)-1)]
	m.field = FieldWidth

	return tea.Batch(
		m.focusInput(),
		m.cm.SendStatusMessage("removed screen", statusbar.StyleNormal),
	)
}

func (m *Model) syncRows() {
	for _, e := range m.list.Entries() {
		if r, ok := m.rows[e.ID]; ok {
			r.sync(e)
		}
	}
}

func (m *Model) focused() screenlist.Entry {
	e, _ := m.list.Get(m.focus)

	return e
}

func (m *Model) toggleDiagonalUnit() tea.Cmd {
	to := m.focused().DiagonalUnit.Other()

	m.list.UpdateAll(screenlist.ConvertDiagonal(to))
	m.syncRows()

	return m.cm.SendStatusMessage("diagonal in "+to.String(), statusbar.StyleNormal)
}

func (m *Model) toggleSizeUnit() tea.Cmd {
	to := m.focused().SizeUnit.Other()

	m.list.UpdateAll(screenlist.SetSizeUnit(to))

	return m.cm.SendStatusMessage("size in "+to.String(), statusbar.StyleNormal)
}

func (m *Model) copyFocused() tea.Cmd {
	r, ok := m.focused().Report()
	if !ok {
		return m.cm.SendStatusMessage("nothing to copy: invalid screen", statusbar.StyleError)
	}

	err := export.CopyEntry(m.copier, r)
	if err != nil {
		return m.cm.SendStatusMessage(err.Error(), statusbar.StyleError)
	}

	return m.cm.SendStatusMessage("copied screen", statusbar.StyleSuccess)
}

func (m *Model) copyAll() tea.Cmd {
	reports := m.list.Reports()

	err := export.CopyAll(m.copier, reports...)
	switch {
	case errors.Is(err, export.ErrNoScreens):
		return m.cm.SendStatusMessage("nothing to copy: no valid screens", statusbar.StyleError)
	case err != nil:
		return m.cm.SendStatusMessage(err.Error(), statusbar.StyleError)
	}

	return m.cm.SendStatusMessage(fmt.Sprintf("copied %d screens", len(reports)), statusbar.StyleSuccess)
}

func (m *Model) openPicker() tea.Cmd {
	m.rows[m.focus].blur()

	p := picker.New(m.cm, m.kb.Picker, m.catalog)
	m.picker = &p

	return p.Init()
}

func (m *Model) save() tea.Cmd {
	if m.savePath == "" {
		return m.cm.SendStatusMessage("no file to save to", statusbar.StyleError)
	}

	b, err := yaml.Marshal(screenlist.NewDocument(m.list))
	if err == nil {
		err = os.WriteFile(m.savePath, b, 0o600)
	}

	if err != nil {
		slog.Error("save screen list", slog.String("path", m.savePath), slog.Any("error", err))

		return m.cm.SendStatusMessage("save failed: "+err.Error(), statusbar.StyleError)
	}

	return m.cm.SendStatusMessage("saved "+m.savePath, statusbar.StyleSuccess)
}

func (m *Model) View() string {
	width := m.cm.Width
	if width <= 0 {
		width = 80
	}

	footer := []string{}

	if m.showHelp {
		footer = append(footer, m.fullHelp(width))
	} else if !m.compact {
		footer = append(footer, m.help.ShortHelpView(m.shortHelp()))
	}

	footer = append(footer, m.statusBar())
	foot := strings.Join(footer, "\n")

	var body string
	if m.picker != nil {
		body = m.picker.View()
	} else {
		body = m.rowsView(width, m.cm.Height-lipgloss.Height(foot))
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, foot)
}

// rowsView renders as many rows as fit in height, keeping the focused row
// visible. A height of zero or less renders every row.
func (m *Model) rowsView(width, height int) string {
	entries := m.list.Entries()
	views := make([]string, len(entries))
	focusIdx := 0

	for i, e := range entries {
		if e.ID == m.focus {
			focusIdx = i
		}

		views[i] = rowView{
			theme:     m.cm.Theme,
			entry:     e,
			row:       m.rows[e.ID],
			width:     width,
			focused:   e.ID == m.focus,
			alternate: m.alternate,
		}.render()
	}

	if height <= 0 || m.cm.Height <= 0 {
		return strings.Join(views, "\n")
	}

	start, end := focusIdx, focusIdx+1
	used := lipgloss.Height(views[focusIdx])

	for start > 0 && used+lipgloss.Height(views[start-1]) <= height {
		start--
		used += lipgloss.Height(views[start])
	}
	for end < len(views) && used+lipgloss.Height(views[end]) <= height {
		used += lipgloss.Height(views[end])
		end++
	}

	return strings.Join(views[start:end], "\n")
}

func (m *Model) statusBar() string {
	n := m.list.Len()

	note := fmt.Sprintf("%d screens", n)
	if n == 1 {
		note = "1 screen"
	}

	pos := fmt.Sprintf("%d/%d", m.index(m.focus)+1, n)

	return m.cm.StatusBar().Render(note, pos, m.cm.KeyBinds.Help.String()+" help")
}

func (m *Model) shortHelp() []key.Binding {
	ekb := m.kb.Editor
	if m.picker != nil {
		return []key.Binding{
			m.kb.Picker.Select.Binding(),
			m.cm.KeyBinds.Escape.Binding(),
		}
	}

	return []key.Binding{
		ekb.Add.Binding(),
		ekb.Remove.Binding(),
		ekb.Rotate.Binding(),
		ekb.Copy.Binding(),
		ekb.Presets.Binding(),
		m.cm.KeyBinds.Quit.Binding(),
	}
}

func (m *Model) fullHelp(width int) string {
	ekb := m.kb.Editor
	r := &keys.KeyBindRenderer{}

	r.AddColumn(*ekb.Next, *ekb.Prev, *ekb.Up, *ekb.Down)
	r.AddColumn(*ekb.Add, *ekb.Remove, *ekb.Rotate, *ekb.Presets, *ekb.Save)
	r.AddColumn(*ekb.DiagonalUnit, *ekb.SizeUnit, *ekb.Copy, *ekb.CopyAll)
	r.AddColumn(m.cm.KeyBinds.GetKeyBinds()...)

	return m.cm.Theme.HelpStyle.Render(r.Render(width))
}
