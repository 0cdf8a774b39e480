// Package yamls highlights the text forms printed by the CLI.
package yamls

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/muesli/termenv"

	"github.com/macropower/aspect/pkg/ui/theme"
)

// Languages understood by [Highlighter].
const (
	LangYAML = "YAML"
	LangJSON = "JSON"
	LangDiff = "Diff"
)

var ErrUnknownLanguage = errors.New("unknown language")

// Highlighter colours YAML-like text with the theme's chroma style.
type Highlighter struct {
	lexer     chroma.Lexer
	formatter chroma.Formatter
	style     *chroma.Style
}

// NewHighlighter returns a [Highlighter] for lang, formatting for the given
// colour profile. [termenv.Ascii] disables colour.
func NewHighlighter(t *theme.Theme, lang string, profile termenv.Profile) (*Highlighter, error) {
	lexer := lexers.Get(lang)
	if lexer == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, lang)
	}

	return &Highlighter{
		lexer:     chroma.Coalesce(lexer),
		formatter: formatters.Get(formatterName(profile)),
		style:     t.ChromaStyle,
	}, nil
}

func formatterName(profile termenv.Profile) string {
	switch profile {
	case termenv.TrueColor:
		return "terminal16m"
	case termenv.ANSI256:
		return "terminal256"
	case termenv.ANSI:
		return "terminal8"
	case termenv.Ascii:
		return "noop"
	}

	return "noop"
}

// Highlight returns text with ANSI colour codes. Line breaks are kept as in
// the input, including a trailing newline.
func (h *Highlighter) Highlight(text string) (string, error) {
	it, err := h.lexer.Tokenise(nil, text)
	if err != nil {
		return "", fmt.Errorf("tokenize: %w", err)
	}

	buf := &bytes.Buffer{}

	err = h.formatter.Format(buf, h.style, it)
	if err != nil {
		return "", fmt.Errorf("format: %w", err)
	}

	out := buf.String()
	if !strings.HasSuffix(text, "\n") {
		out = strings.TrimSuffix(out, "\n")
	}

	return out, nil
}
