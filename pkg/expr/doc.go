// Package expr provides CEL (Common Expression Language) filters over
// screen list entries.
//
// Expressions have access to the `screen` variable (map<string, dyn>):
//   - name (string), width, height (int), pixels (double)
//   - ratio (double), ratioName (string), hasDiagonal (bool)
//   - diagonal, diagonalCm, dpi, dotPitch (double)
//   - sizeWidth, sizeHeight (double, centimeters)
//
// Metric fields are absent when the screen has no diagonal; use
// `has(screen.dpi)` or `screen.hasDiagonal` to check.
//
// Functions: toInches(double), toCentimeters(double), ratioName(double) and
// ratioName(int, int).
package expr
