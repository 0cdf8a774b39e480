package uitest

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
)

// SetupColorProfile forces true colour output from lipgloss.
func SetupColorProfile() {
	lipgloss.SetColorProfile(termenv.TrueColor)
}

// Style is the set of SGR attributes applied to a run of text. Colours are
// "#RRGGBB" for true colour and the palette index otherwise.
type Style struct {
	Foreground string
	Background string
	Bold       bool
	Italic     bool
	Underline  bool
}

// Segment is a run of printable text drawn with one [Style].
type Segment struct {
	Text  string
	Style Style
}

// Segments splits rendered output into styled runs.
func Segments(output string) []Segment {
	var (
		segs  []Segment
		style Style
		text  strings.Builder
		state byte
	)

	flush := func() {
		if text.Len() > 0 {
			segs = append(segs, Segment{Text: text.String(), Style: style})
			text.Reset()
		}
	}

	p := ansi.GetParser()
	defer ansi.PutParser(p)

	input := []byte(output)
	for len(input) > 0 {
		seq, width, n, next := ansi.DecodeSequence(input, state, p)

		switch {
		case ansi.HasCsiPrefix(seq) && seq[len(seq)-1] == 'm':
			flush()

			style = applySGR(style, p.Params())
		case width > 0 || (len(seq) == 1 && seq[0] == '\n'):
			text.Write(seq)
		}

		input = input[n:]
		state = next
	}

	flush()

	return segs
}

// StyleAt returns the style of the first segment containing text.
func StyleAt(output, text string) (Style, bool) {
	for _, s := range Segments(output) {
		if strings.Contains(s.Text, text) {
			return s.Style, true
		}
	}

	return Style{}, false
}

func applySGR(s Style, params ansi.Params) Style {
	for i := 0; i < len(params); i++ {
		switch p := params[i].Param(0); {
		case p == 0:
			s = Style{}
		case p == 1:
			s.Bold = true
		case p == 3:
			s.Italic = true
		case p == 4:
			s.Underline = true
		case p == 22:
			s.Bold = false
		case p == 23:
			s.Italic = false
		case p == 24:
			s.Underline = false
		case p == 38 || p == 48:
			c, used := extendedColor(params[i+1:])
			i += used

			if p == 38 {
				s.Foreground = c
			} else {
				s.Background = c
			}
		case p >= 30 && p <= 37:
			s.Foreground = fmt.Sprint(p - 30)
		case p >= 90 && p <= 97:
			s.Foreground = fmt.Sprint(p - 90 + 8)
		case p >= 40 && p <= 47:
			s.Background = fmt.Sprint(p - 40)
		case p >= 100 && p <= 107:
			s.Background = fmt.Sprint(p - 100 + 8)
		case p == 39:
			s.Foreground = ""
		case p == 49:
			s.Background = ""
		}
	}

	return s
}

// extendedColor reads the arguments of a 38 or 48 parameter and reports how
// many parameters it consumed.
func extendedColor(params ansi.Params) (string, int) {
	if len(params) == 0 {
		return "", 0
	}

	switch params[0].Param(0) {
	case 5:
		if len(params) > 1 {
			return fmt.Sprint(params[1].Param(0)), 2
		}
	case 2:
		if len(params) > 3 {
			return fmt.Sprintf("#%02X%02X%02X",
				params[1].Param(0), params[2].Param(0), params[3].Param(0)), 4
		}
	}

	return "", len(params)
}
