package screen

import (
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/dustin/go-humanize"
)

// maxSafeInteger is the largest integer that float64 represents exactly.
const maxSafeInteger = 1<<53 - 1

var floatPrefix = regexp.MustCompile(`^[+-]?(?:Infinity|(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?)`)

func trimLeadingSpace(s string) string {
	return strings.TrimLeftFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\uFEFF'
	})
}

// parseIntPrefix reads a base 10 integer from the start of s. Leading
// whitespace and a single sign are accepted, and parsing stops at the first
// non-digit. It reports false if no digit was found.
func parseIntPrefix(s string) (float64, bool) {
	s = trimLeadingSpace(s)

	sign := ""
	if s != "" && (s[0] == '+' || s[0] == '-') {
		sign = s[:1]
		s = s[1:]
	}

	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return math.NaN(), false
	}

	v, err := strconv.ParseFloat(sign+s[:end], 64)
	if err != nil {
		return math.NaN(), false
	}

	return v, true
}

// parseFloatPrefix reads a decimal number from the start of s, in the same
// way as parseIntPrefix. Exponents and "Infinity" are accepted.
func parseFloatPrefix(s string) (float64, bool) {
	m := floatPrefix.FindString(trimLeadingSpace(s))
	if m == "" {
		return math.NaN(), false
	}

	v, err := strconv.ParseFloat(m, 64)
	if err != nil && !math.IsInf(v, 0) {
		return math.NaN(), false
	}

	return v, true
}

// ParseLength reads a positive finite length from the start of s, such as
// "15.6" or "15.6in".
func ParseLength(s string) (float64, bool) {
	return parsePositiveFloat(s)
}

// parsePositiveFloat parses s as a positive finite number.
func parsePositiveFloat(s string) (float64, bool) {
	v, ok := parseFloatPrefix(s)
	if !ok || !isPositiveFinite(v) {
		return 0, false
	}

	return v, true
}

func isPositiveFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}

// pixelValue validates a floored pixel dimension.
func pixelValue(v float64) (int64, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 || v > maxSafeInteger {
		return 0, false
	}

	return int64(v), true
}

// formatShortest formats v with the fewest digits that represent it exactly.
// Magnitudes from 1e21 up, and below 1e-6, use exponent notation, e.g. "1e+21".
func formatShortest(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}

	abs := math.Abs(v)
	if abs < 1e21 && (abs >= 1e-6 || abs == 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	s := strconv.FormatFloat(v, 'e', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "e")
	sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")

	return mantissa + "e" + sign + digits
}

// fixedDigits is enough fraction digits to write any float64 exactly.
const fixedDigits = 1100

// FormatFixed formats v with exactly n fraction digits. The exact binary value
// is rounded, and a tie rounds away from zero, so 0.125 gives "0.13" while
// 1.005 (stored as 1.00499...) gives "1.00". n is clamped to [0, 100].
// Magnitudes from 1e21 up use the shortest exponent form.
func FormatFixed(v float64, n int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) >= 1e21 {
		return formatShortest(v)
	}

	n = min(max(0, n), 100)

	sign := ""
	if v < 0 {
		sign = "-"
	}

	exact := new(big.Float).SetFloat64(math.Abs(v)).Text('f', fixedDigits)
	intPart, frac, _ := strings.Cut(exact, ".")

	digits := []byte(intPart + frac[:n])
	if frac[n] >= '5' {
		i := len(digits) - 1
		for ; i >= 0; i-- {
			if digits[i] != '9' {
				digits[i]++

				break
			}

			digits[i] = '0'
		}

		if i < 0 {
			digits = append([]byte{'1'}, digits...)
		}
	}

	if n == 0 {
		return sign + string(digits)
	}

	split := len(digits) - n

	return sign + string(digits[:split]) + "." + string(digits[split:])
}

// FormatTrimmed formats value using at most length characters for its digits
// and decimal point, then drops trailing zeros from the fraction. Integral
// values are returned as they are.
func FormatTrimmed(value float64, length int) string {
	integer := math.Floor(value)
	if integer == value {
		return formatShortest(value)
	}

	decimals := max(0, length-len(formatShortest(integer))-1)

	s := FormatFixed(value, decimals)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}

	return s
}

// GroupDigits formats n with comma thousands separators.
func GroupDigits(n float64) string {
	return humanize.Commaf(n)
}
