// Package statusbar renders the one line status bar at the bottom of the
// TUI.
package statusbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"

	"github.com/macropower/aspect/pkg/ui/theme"
)

const logoText = " aspect "

type Style int

const (
	StyleNormal Style = iota
	StyleSuccess
	StyleError
)

// Renderer lays out the logo, a note, a position indicator and a help hint
// across the given width.
type Renderer struct {
	theme   *theme.Theme
	message string
	width   int
	style   Style
}

type Opt func(*Renderer)

// WithMessage replaces the note with a status message.
func WithMessage(message string, style Style) Opt {
	return func(r *Renderer) {
		r.message = message
		r.style = style
	}
}

func New(t *theme.Theme, width int, opts ...Opt) *Renderer {
	r := &Renderer{theme: t, width: width}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Render draws the bar. note is shown unless a message was set.
func (r *Renderer) Render(note, position, help string) string {
	logo := r.theme.LogoStyle.Render(logoText)
	pos := r.positionStyle().Render(" " + position + " ")
	hint := r.helpStyle().Render(" " + help + " ")

	text := note
	if r.message != "" {
		text = r.message
	}

	text = strings.TrimSpace(strings.ReplaceAll(text, "\n", " "))

	avail := max(0, r.width-ansi.PrintableRuneWidth(logo)-ansi.PrintableRuneWidth(pos)-ansi.PrintableRuneWidth(hint))
	text = truncate.StringWithTail(" "+text+" ", uint(avail), theme.Ellipsis) //nolint:gosec // Uses max.
	text = r.noteStyle().Render(text)

	fill := max(0, avail-ansi.PrintableRuneWidth(text))
	space := r.noteStyle().Render(strings.Repeat(" ", fill))

	return logo + text + space + pos + hint
}

func (r *Renderer) noteStyle() lipgloss.Style {
	switch r.style {
	case StyleError:
		return r.theme.ErrorTitleStyle
	case StyleSuccess:
		return r.theme.StatusBarMessageStyle
	default:
		return r.theme.StatusBarStyle
	}
}

func (r *Renderer) positionStyle() lipgloss.Style {
	switch r.style {
	case StyleError:
		return r.theme.ErrorTitleStyle
	case StyleSuccess:
		return r.theme.StatusBarMessageStyle
	default:
		return r.theme.StatusBarPosStyle
	}
}

func (r *Renderer) helpStyle() lipgloss.Style {
	if r.style == StyleNormal {
		return r.theme.StatusBarHelpStyle
	}

	return r.theme.StatusBarMessageHelpStyle
}
