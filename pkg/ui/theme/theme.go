// Package theme derives the terminal styles from a chroma syntax
// highlighting style, so that one name themes the TUI, the YAML output and
// the CLI help.
package theme

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

const Ellipsis = "…"

var (
	ErrInvalidName    = errors.New("theme name must not be empty")
	ErrRegisterStyles = errors.New("register styles")

	Default = New("github")
)

type Theme struct {
	ErrorTextStyle            lipgloss.Style
	ErrorTitleStyle           lipgloss.Style
	FieldKeyStyle             lipgloss.Style
	FieldValueStyle           lipgloss.Style
	FocusedBorderStyle        lipgloss.Style
	GenericTextStyle          lipgloss.Style
	HelpStyle                 lipgloss.Style
	InputPromptStyle          lipgloss.Style
	LogoStyle                 lipgloss.Style
	SelectedStyle             lipgloss.Style
	SelectedSubtleStyle       lipgloss.Style
	StatusBarHelpStyle        lipgloss.Style
	StatusBarMessageHelpStyle lipgloss.Style
	StatusBarMessageStyle     lipgloss.Style
	StatusBarPosStyle         lipgloss.Style
	StatusBarStyle            lipgloss.Style
	SubtleStyle               lipgloss.Style
	SuccessStyle              lipgloss.Style
	UnfocusedBorderStyle      lipgloss.Style

	ChromaStyle *chroma.Style
	Name        string
	Ellipsis    string
}

// New builds the theme for a chroma style name. "auto" (or "") picks a
// light or dark style from the terminal background; unknown names fall back
// to chroma's default style.
func New(name string) *Theme {
	cs := newChromaStyle(name)

	generic := lipgloss.NewStyle().Foreground(cs.fg(chroma.Background))
	selected := lipgloss.NewStyle().Foreground(cs.fg(chroma.NameTag))
	subtle := lipgloss.NewStyle().Foreground(cs.fg(chroma.Comment))
	help := lipgloss.NewStyle().
		Foreground(cs.fgFactor(chroma.Background, 0.2)).
		Background(cs.bgFactor(chroma.Background, 0.2))

	return &Theme{
		GenericTextStyle: generic,
		LogoStyle: lipgloss.NewStyle().
			Foreground(cs.bg(chroma.Background)).
			Background(cs.fg(chroma.NameTag)).
			Bold(true),
		SelectedStyle:       selected,
		SelectedSubtleStyle: lipgloss.NewStyle().Foreground(cs.fgFactor(chroma.NameTag, 0.3)),
		SubtleStyle:         subtle,
		HelpStyle:           help,
		InputPromptStyle:    selected.Bold(true),
		FieldKeyStyle:       lipgloss.NewStyle().Foreground(cs.fg(chroma.NameTag)),
		FieldValueStyle:     lipgloss.NewStyle().Foreground(cs.fg(chroma.LiteralString)),
		SuccessStyle:        lipgloss.NewStyle().Foreground(cs.fg(chroma.GenericInserted)),
		ErrorTextStyle:      lipgloss.NewStyle().Foreground(cs.fg(chroma.GenericDeleted)),
		ErrorTitleStyle: generic.
			Background(cs.fg(chroma.GenericDeleted)).
			Bold(true),
		FocusedBorderStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(cs.fg(chroma.NameTag)),
		UnfocusedBorderStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(cs.fg(chroma.Comment)),
		StatusBarStyle: lipgloss.NewStyle().
			Foreground(cs.fg(chroma.Background)).
			Background(cs.bgFactor(chroma.Background, 0.1)),
		StatusBarPosStyle: lipgloss.NewStyle().
			Foreground(cs.fg(chroma.Background)).
			Background(cs.bgFactor(chroma.Background, 0.15)),
		StatusBarHelpStyle: help,
		StatusBarMessageStyle: lipgloss.NewStyle().
			Foreground(cs.bg(chroma.Background)).
			Background(cs.fgFactor(chroma.NameTag, 0.15)),
		StatusBarMessageHelpStyle: lipgloss.NewStyle().
			Foreground(cs.bg(chroma.Background)).
			Background(cs.fg(chroma.NameTag)),

		ChromaStyle: cs.style,
		Name:        cs.style.Name,
		Ellipsis:    Ellipsis,
	}
}

// Register adds a custom chroma style that can then be used by name.
func Register(name string, entries chroma.StyleEntries) error {
	if name == "" {
		return ErrInvalidName
	}

	s, err := chroma.NewStyle(name, entries)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRegisterStyles, err)
	}

	styles.Register(s)

	return nil
}

type chromaStyle struct {
	style *chroma.Style
}

func newChromaStyle(name string) chromaStyle {
	s := styles.Get(resolveName(name))
	if s == nil {
		s = styles.Fallback
	}

	return chromaStyle{style: s}
}

func (cs chromaStyle) fg(t chroma.TokenType) lipgloss.Color {
	return lipgloss.Color(cs.style.Get(t).Colour.String()) //nolint:misspell // Chroma naming.
}

func (cs chromaStyle) bg(t chroma.TokenType) lipgloss.Color {
	return lipgloss.Color(cs.style.Get(t).Background.String())
}

func (cs chromaStyle) fgFactor(t chroma.TokenType, factor float64) lipgloss.Color {
	c := cs.style.Get(t).Colour.BrightenOrDarken(factor) //nolint:misspell // Chroma naming.

	return lipgloss.Color(c.String())
}

func (cs chromaStyle) bgFactor(t chroma.TokenType, factor float64) lipgloss.Color {
	return lipgloss.Color(cs.style.Get(t).Background.BrightenOrDarken(factor).String())
}

func resolveName(name string) string {
	switch name {
	case "dark":
		return "github-dark"
	case "light":
		return "github"
	case "auto", "":
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return ""
		}
		if termenv.HasDarkBackground() {
			return "github-dark"
		}

		return "github"
	default:
		return name
	}
}
