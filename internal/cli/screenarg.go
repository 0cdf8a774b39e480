package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-shellwords"

	"github.com/macropower/aspect/pkg/screen"
	"github.com/macropower/aspect/pkg/screenlist"
)

var ErrInvalidScreenArg = errors.New("expected WIDTHxHEIGHT[@DIAGONAL[in|cm]]")

// parseScreenArg reads a compact screen such as "2560x1440@27in".
func parseScreenArg(s string, units screen.UnitOptions) (screenlist.Entry, error) {
	s = strings.TrimSpace(s)

	dims, diagonal, _ := strings.Cut(s, "@")
	dims = strings.ReplaceAll(strings.ToLower(dims), "×", "x")

	width, height, ok := strings.Cut(dims, "x")
	if !ok {
		return screenlist.Entry{}, fmt.Errorf("%w, got %q", ErrInvalidScreenArg, s)
	}

	return newEntry(s, width, height, diagonal, units), nil
}

// parseScreenFields reads a screen from positional values: a single compact
// screen, or a width, a height and an optional diagonal.
func parseScreenFields(fields []string, units screen.UnitOptions) (screenlist.Entry, error) {
	switch len(fields) {
	case 1:
		return parseScreenArg(fields[0], units)
	case 2, 3:
		diagonal := ""
		if len(fields) == 3 {
			diagonal = fields[2]
		}

		return newEntry("", fields[0], fields[1], diagonal, units), nil
	default:
		return screenlist.Entry{}, fmt.Errorf("expected 1 to 3 values, got %d", len(fields))
	}
}

// parseScreenLine splits a line of input the way a shell would, then reads
// it with [parseScreenFields].
func parseScreenLine(line string, units screen.UnitOptions) (screenlist.Entry, error) {
	fields, err := shellwords.Parse(line)
	if err != nil {
		return screenlist.Entry{}, fmt.Errorf("split %q: %w", line, err)
	}

	return parseScreenFields(fields, units)
}

func newEntry(name, width, height, diagonal string, units screen.UnitOptions) screenlist.Entry {
	diagonal, unit := splitDiagonalUnit(diagonal, units.DiagonalUnit)

	return screenlist.Entry{
		Name:         name,
		Width:        strings.TrimSpace(width),
		Height:       strings.TrimSpace(height),
		Diagonal:     diagonal,
		DiagonalUnit: unit,
		SizeUnit:     units.SizeUnit,
	}
}

// splitDiagonalUnit removes a trailing unit from a diagonal, e.g. "68.58cm"
// or `27"`. Without one, def is returned.
func splitDiagonalUnit(s string, def screen.Unit) (string, screen.Unit) {
	s = strings.TrimSpace(s)
	lower := strings.ToLower(s)

	for suffix, u := range map[string]screen.Unit{
		"cm": screen.UnitCentimeter,
		"in": screen.UnitInch,
		`"`:  screen.UnitInch,
	} {
		if strings.HasSuffix(lower, suffix) {
			return strings.TrimSpace(s[:len(s)-len(suffix)]), u
		}
	}

	return s, def
}
