package screen

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ratioTolerance is the allowed distance (2^-7) between ratio*9 and a named
// entry.
const ratioTolerance = 0.0078125

// ErrRatioOutOfRange is returned for ratios that are not positive.
var ErrRatioOutOfRange = errors.New("ratio must be a positive number")

// namedRatios maps conventional names to their width on a height of 9.
// Order matters: the first match wins.
var namedRatios = []struct {
	name   string
	times9 float64
}{
	{"3:2", 13.5},
	{"4:3", 12},
	{"5:3", 15},
	{"5:4", 11.25},
	{"16:10", 14.4},
	{"17:10", 15.3},
}

// RatioName names an aspect ratio (width / height). Well-known ratios use
// their common name, others are expressed as "X:9" with one decimal.
// Ratios below 1 are named like their inverse with the sides swapped.
func RatioName(ratio float64) (string, error) {
	if math.IsNaN(ratio) || ratio <= 0 {
		return "", fmt.Errorf("%w: %v", ErrRatioOutOfRange, ratio)
	}
	if math.IsInf(ratio, 1) {
		return "", fmt.Errorf("%w: %v", ErrRatioOutOfRange, ratio)
	}

	return ratioName(ratio), nil
}

// MustRatioName is like [RatioName] but panics on error.
func MustRatioName(ratio float64) string {
	name, err := RatioName(ratio)
	if err != nil {
		panic(err)
	}

	return name
}

func ratioName(ratio float64) string {
	if ratio == 1 {
		return "1:1"
	}

	if ratio < 1 {
		w, h, _ := strings.Cut(ratioName(1/ratio), ":")

		return h + ":" + w
	}

	times9 := ratio * 9
	for _, r := range namedRatios {
		if math.Abs(r.times9-times9) <= ratioTolerance {
			return r.name
		}
	}

	return formatShortest(math.Round(times9*10)/10) + ":9"
}

// ParseRatio reads a ratio given either as a number ("1.78") or as two
// sides ("16:9", "16x9", "16/9").
func ParseRatio(s string) (float64, error) {
	s = strings.TrimSpace(s)

	for _, sep := range []string{":", "x", "/"} {
		a, b, ok := strings.Cut(s, sep)
		if !ok {
			continue
		}

		w, okW := parsePositiveFloat(a)
		h, okH := parsePositiveFloat(b)
		if !okW || !okH {
			return 0, fmt.Errorf("%w: %q", ErrRatioOutOfRange, s)
		}

		return w / h, nil
	}

	v, ok := parsePositiveFloat(s)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrRatioOutOfRange, s)
	}

	return v, nil
}
