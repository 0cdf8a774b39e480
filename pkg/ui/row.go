package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/x/cellbuf"

	"github.com/macropower/aspect/pkg/screen"
	"github.com/macropower/aspect/pkg/screenlist"
	"github.com/macropower/aspect/pkg/ui/theme"
)

// Field is one of the inputs of a row.
type Field int

const (
	FieldWidth Field = iota
	FieldHeight
	FieldDiagonal
	numFields
)

func (f Field) change(value string) screenlist.Change {
	switch f {
	case FieldHeight:
		return screenlist.SetHeight(value)
	case FieldDiagonal:
		return screenlist.SetDiagonal(value)
	default:
		return screenlist.SetWidth(value)
	}
}

func (f Field) value(e screenlist.Entry) string {
	switch f {
	case FieldHeight:
		return e.Height
	case FieldDiagonal:
		return e.Diagonal
	default:
		return e.Width
	}
}

type row struct {
	inputs [numFields]textinput.Model
}

func newRow(t *theme.Theme, e screenlist.Entry) *row {
	r := &row{}

	placeholders := [numFields]string{"1920", "1080", "24"}
	for f := range numFields {
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = placeholders[f]
		in.PlaceholderStyle = t.SubtleStyle
		in.TextStyle = t.GenericTextStyle
		in.CharLimit = 16
		in.Width = 8
		in.SetValue(f.value(e))

		r.inputs[f] = in
	}

	return r
}

func (r *row) sync(e screenlist.Entry) {
	for f := range numFields {
		if v := f.value(e); r.inputs[f].Value() != v {
			r.inputs[f].SetValue(v)
		}
	}
}

func (r *row) blur() {
	for f := range numFields {
		r.inputs[f].Blur()
	}
}

type rowView struct {
	theme     *theme.Theme
	entry     screenlist.Entry
	row       *row
	width     int
	focused   bool
	alternate bool
}

func (v rowView) render() string {
	t := v.theme
	e := v.entry

	label := func(s string) string {
		return t.SubtleStyle.Render(s)
	}

	unit := e.DiagonalUnit
	if unit == "" {
		unit = screen.UnitInch
	}

	inputs := label("W ") + v.row.inputs[FieldWidth].View() +
		label(" x H ") + v.row.inputs[FieldHeight].View() +
		label(" @ ") + v.row.inputs[FieldDiagonal].View() +
		" " + t.GenericTextStyle.Render(unit.String())

	if v.alternate {
		if alt := screen.AlternateDiagonal(e.Diagonal, unit); alt != "-" {
			inputs += " " + label("("+alt+")")
		}
	}

	lines := []string{inputs}

	inner := max(10, v.width-4)

	report, ok := e.Report()
	switch {
	case ok:
		for _, f := range report.Fields() {
			value := f.Value
			if f.Key == screen.KeyPixelCount {
				value = screen.GroupDigits(report.Info().PixelCount().Total)
			}

			line := t.FieldKeyStyle.Render(f.Key+":") + " " + t.FieldValueStyle.Render(value)
			lines = append(lines, cellbuf.Wrap(line, inner, ""))
		}

	case strings.TrimSpace(e.Width) != "" || strings.TrimSpace(e.Height) != "":
		lines = append(lines, t.ErrorTextStyle.Render("enter a positive width and height"))
	}

	box := t.UnfocusedBorderStyle
	if v.focused {
		box = t.FocusedBorderStyle
	}

	return box.Width(max(10, v.width-2)).Render(strings.Join(lines, "\n"))
}
