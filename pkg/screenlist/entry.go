package screenlist

import (
	"strings"

	"github.com/macropower/aspect/pkg/screen"
)

// ID identifies an [Entry] within a [List]. IDs are assigned sequentially
// and never reused.
type ID int

// Entry is one screen as typed by the user. The raw strings are kept so
// that what was typed survives until it is edited again; the geometry is
// derived from them on demand.
type Entry struct {
	Name         string      `json:"name,omitempty"`
	Width        string      `json:"width"`
	Height       string      `json:"height"`
	Diagonal     string      `json:"diagonal,omitempty"`
	DiagonalUnit screen.Unit `json:"diagonalUnit,omitempty"`
	SizeUnit     screen.Unit `json:"sizeUnit,omitempty"`
	ID           ID          `json:"-"`
}

// Info derives the screen geometry. It reports false if the width or
// height is not valid.
func (e Entry) Info() (screen.Info, bool) {
	return screen.Parse(e.Width, e.Height,
		screen.WithDiagonalString(e.Diagonal),
		screen.WithDiagonalUnit(e.DiagonalUnit),
	)
}

// Units returns the units the entry is displayed in.
func (e Entry) Units() screen.UnitOptions {
	return screen.UnitOptions{
		DiagonalUnit: e.DiagonalUnit,
		SizeUnit:     e.SizeUnit,
	}
}

// Report serializes the entry in its own units.
func (e Entry) Report() (*screen.Report, bool) {
	info, ok := e.Info()
	if !ok {
		return nil, false
	}

	return screen.NewReport(info, e.Units()), true
}

// Text returns the single entry text form with a trailing newline, as it
// is copied to the clipboard.
func (e Entry) Text() (string, bool) {
	r, ok := e.Report()
	if !ok {
		return "", false
	}

	return r.String() + "\n", true
}

// IsEmpty reports whether width, height and diagonal are all empty.
func (e Entry) IsEmpty() bool {
	return e.Width == "" && e.Height == "" && e.Diagonal == ""
}

// Label returns the name of the entry, or its raw dimensions.
func (e Entry) Label() string {
	if e.Name != "" {
		return e.Name
	}

	label := strings.TrimSpace(e.Width) + "x" + strings.TrimSpace(e.Height)
	if d := strings.TrimSpace(e.Diagonal); d != "" {
		unit := e.DiagonalUnit
		if unit == "" {
			unit = screen.UnitInch
		}

		label += "@" + d + unit.String()
	}

	return label
}

// Change modifies an [Entry] in [List.Update].
type Change func(*Entry)

func SetName(name string) Change {
	return func(e *Entry) {
		e.Name = name
	}
}

func SetWidth(width string) Change {
	return func(e *Entry) {
		e.Width = width
	}
}

func SetHeight(height string) Change {
	return func(e *Entry) {
		e.Height = height
	}
}

func SetDiagonal(diagonal string) Change {
	return func(e *Entry) {
		e.Diagonal = diagonal
	}
}

func SetDiagonalUnit(u screen.Unit) Change {
	return func(e *Entry) {
		e.DiagonalUnit = u
	}
}

func SetSizeUnit(u screen.Unit) Change {
	return func(e *Entry) {
		e.SizeUnit = u
	}
}

// Rotate swaps the raw width and height.
func Rotate() Change {
	return func(e *Entry) {
		e.Width, e.Height = e.Height, e.Width
	}
}

// ConvertDiagonal switches the diagonal unit and converts the raw diagonal
// so that the physical size stays the same. A diagonal that is not a
// positive number is kept as typed.
func ConvertDiagonal(to screen.Unit) Change {
	return func(e *Entry) {
		from := e.DiagonalUnit
		if from == "" {
			from = screen.UnitInch
		}
		if from == to {
			return
		}

		e.DiagonalUnit = to

		v, ok := screen.ParseLength(e.Diagonal)
		if !ok {
			return
		}

		e.Diagonal = screen.FormatTrimmed(screen.Convert(v, from, to), 6)
	}
}
