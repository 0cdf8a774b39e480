// Package common holds state shared by the TUI components.
package common

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/macropower/aspect/pkg/keys"
	"github.com/macropower/aspect/pkg/ui/statusbar"
	"github.com/macropower/aspect/pkg/ui/theme"
)

// StatusMessageTimeout is how long a status message is shown.
const StatusMessageTimeout = 3 * time.Second

type CommonModel struct {
	Theme              *theme.Theme
	KeyBinds           *KeyBinds
	StatusMessageTimer *time.Timer
	StatusMessage      StatusMessage
	Width              int
	Height             int
	ShowStatusMessage  bool
}

type (
	StatusMessage struct {
		Message string
		Style   statusbar.Style
	}
	StatusMessageTimeoutMsg struct{}
)

// StatusBar returns a renderer showing the current status message, if any.
func (m *CommonModel) StatusBar() *statusbar.Renderer {
	opts := []statusbar.Opt{}
	if m.ShowStatusMessage && m.StatusMessage.Message != "" {
		opts = append(opts, statusbar.WithMessage(m.StatusMessage.Message, m.StatusMessage.Style))
	}

	return statusbar.New(m.Theme, m.Width, opts...)
}

// SendStatusMessage shows msg until [StatusMessageTimeout] passes or another
// message replaces it.
func (m *CommonModel) SendStatusMessage(msg string, style statusbar.Style) tea.Cmd {
	m.ShowStatusMessage = true
	m.StatusMessage = StatusMessage{Message: msg, Style: style}

	if m.StatusMessageTimer != nil {
		m.StatusMessageTimer.Stop()
	}

	m.StatusMessageTimer = time.NewTimer(StatusMessageTimeout)

	return waitForTimeout(m.StatusMessageTimer)
}

// ClearStatusMessage hides the status message.
func (m *CommonModel) ClearStatusMessage() {
	m.ShowStatusMessage = false
	m.StatusMessage = StatusMessage{}
}

func waitForTimeout(t *time.Timer) tea.Cmd {
	return func() tea.Msg {
		<-t.C

		return StatusMessageTimeoutMsg{}
	}
}

// KeyBinds are available everywhere in the TUI.
type KeyBinds struct {
	Quit    *keys.KeyBind `json:"quit,omitempty"    jsonschema:"title=Quit"`
	Suspend *keys.KeyBind `json:"suspend,omitempty" jsonschema:"title=Suspend"`
	Help    *keys.KeyBind `json:"help,omitempty"    jsonschema:"title=Toggle Help"`
	Escape  *keys.KeyBind `json:"escape,omitempty"  jsonschema:"title=Go Back"`
}

func (kb *KeyBinds) EnsureDefaults() {
	keys.SetDefaultBind(&kb.Quit,
		keys.NewBind("quit",
			keys.New("ctrl+q", keys.WithAlias("⌃q")),
		))
	kb.Quit.AddKey(keys.New("ctrl+c", keys.WithAlias("⌃c"), keys.Hidden()))

	keys.SetDefaultBind(&kb.Suspend,
		keys.NewBind("suspend",
			keys.New("ctrl+z", keys.WithAlias("⌃z"), keys.Hidden()),
		))
	keys.SetDefaultBind(&kb.Help,
		keys.NewBind("toggle help",
			keys.New("f1", keys.WithAlias("F1")),
		))
	keys.SetDefaultBind(&kb.Escape,
		keys.NewBind("back/quit",
			keys.New("esc"),
		))
}

func (kb *KeyBinds) GetKeyBinds() []keys.KeyBind {
	return []keys.KeyBind{
		*kb.Quit,
		*kb.Suspend,
		*kb.Help,
		*kb.Escape,
	}
}
