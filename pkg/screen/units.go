package screen

import (
	"errors"
	"fmt"
	"strings"
)

// CentimetersPerInch is the exact length of one inch in centimeters.
const CentimetersPerInch = 2.54

// Unit is a physical length unit.
type Unit string

const (
	UnitInch       Unit = "in"
	UnitCentimeter Unit = "cm"
)

var (
	ErrUnknownUnit = errors.New("unknown unit")

	AllUnits = []string{
		string(UnitInch),
		string(UnitCentimeter),
	}
)

// ParseUnit returns the [Unit] named by s. The empty string selects
// [UnitInch].
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "in", "inch", "inches", `"`:
		return UnitInch, nil
	case "cm", "centimeter", "centimeters", "centimetre", "centimetres":
		return UnitCentimeter, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownUnit, s)
}

// Other returns the opposite unit.
func (u Unit) Other() Unit {
	if u == UnitCentimeter {
		return UnitInch
	}

	return UnitCentimeter
}

// Suffix returns the compact suffix used in short displays, e.g. 6.14" or
// 15.60cm.
func (u Unit) Suffix() string {
	if u == UnitCentimeter {
		return "cm"
	}

	return `"`
}

func (u Unit) String() string {
	return string(u)
}

// orDefault returns u, or def when u is unset.
func (u Unit) orDefault(def Unit) Unit {
	if u == "" {
		return def
	}

	return u
}

// ToInches converts centimeters to inches.
func ToInches(cm float64) float64 {
	return cm / CentimetersPerInch
}

// ToCentimeters converts inches to centimeters.
func ToCentimeters(in float64) float64 {
	return in * CentimetersPerInch
}

// Convert converts value from one unit to another.
func Convert(value float64, from, to Unit) float64 {
	if from.orDefault(UnitInch) == to.orDefault(UnitInch) {
		return value
	}
	if to == UnitCentimeter {
		return ToCentimeters(value)
	}

	return ToInches(value)
}

// AlternateDiagonal shows a raw diagonal entered in unit in the other unit,
// rounded to two decimals. It returns "-" when raw is not a positive number.
func AlternateDiagonal(raw string, unit Unit) string {
	v, ok := parsePositiveFloat(raw)
	if !ok {
		return "-"
	}

	other := unit.orDefault(UnitInch).Other()

	return FormatFixed(Convert(v, unit, other), 2) + other.Suffix()
}
