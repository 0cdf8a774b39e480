package screen

import (
	"encoding/json"
	"errors"
	"math"
)

// ErrInvalidGeometry is returned by callers that need an error for input the
// engine rejected.
var ErrInvalidGeometry = errors.New("invalid screen geometry")

// PixelCount is the resolution of a screen. Total is a float64 because the
// product of two dimensions up to 2^53-1 does not fit in an int64.
type PixelCount struct {
	Width  int64   `json:"width"`
	Height int64   `json:"height"`
	Total  float64 `json:"total"`
}

// RectSize is a physical width and height in centimeters.
type RectSize struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// DiagonalMetrics holds everything that depends on the diagonal size.
type DiagonalMetrics struct {
	// Diagonal in inches.
	Diagonal float64 `json:"diagonal"`
	// DPI is the number of dots per inch along the diagonal.
	DPI float64 `json:"dpi"`
	// DotPitch is the distance between two pixels in millimeters.
	DotPitch float64 `json:"dotPitch"`
	// Size is the physical size of the visible area.
	Size RectSize `json:"size"`
}

// Info is the derived geometry of one screen. The zero value is not valid;
// use [Parse] or [FromNumbers].
type Info struct {
	pixels      PixelCount
	metrics     DiagonalMetrics
	hasDiagonal bool
}

// Opt configures [Parse] and [FromNumbers].
type Opt func(*options)

type options struct {
	unit     Unit
	diagonal float64
	valid    bool
}

// WithDiagonal sets the diagonal size. Non-positive and non-finite values
// are ignored.
func WithDiagonal(diagonal float64) Opt {
	return func(o *options) {
		o.diagonal = diagonal
		o.valid = isPositiveFinite(diagonal)
	}
}

// WithDiagonalString parses the diagonal size from s, e.g. "15.6" or
// "15.6in". Values that do not start with a positive number are ignored.
func WithDiagonalString(s string) Opt {
	return func(o *options) {
		o.diagonal, o.valid = parsePositiveFloat(s)
	}
}

// WithDiagonalUnit sets the unit of the diagonal. The default is [UnitInch].
func WithDiagonalUnit(u Unit) Opt {
	return func(o *options) {
		o.unit = u
	}
}

// Parse builds an [Info] from user input. Width and height are read as base
// 10 integers from the start of each string. It reports false if either value
// is missing, not positive, or larger than 2^53-1.
func Parse(width, height string, opts ...Opt) (Info, bool) {
	w, ok := parseIntPrefix(width)
	if !ok {
		return Info{}, false
	}

	h, ok := parseIntPrefix(height)
	if !ok {
		return Info{}, false
	}

	return build(w, h, opts...)
}

// FromNumbers builds an [Info] from numeric input. Fractional pixel values
// are floored. It reports false under the same conditions as [Parse].
func FromNumbers(width, height float64, opts ...Opt) (Info, bool) {
	return build(math.Floor(width), math.Floor(height), opts...)
}

func build(width, height float64, opts ...Opt) (Info, bool) {
	w, ok := pixelValue(width)
	if !ok {
		return Info{}, false
	}

	h, ok := pixelValue(height)
	if !ok {
		return Info{}, false
	}

	o := &options{unit: UnitInch}
	for _, opt := range opts {
		opt(o)
	}

	info := newInfo(w, h)
	if o.valid {
		if withDiagonal, ok := info.withDiagonal(Convert(o.diagonal, o.unit, UnitInch)); ok {
			info = withDiagonal
		}
	}

	return info, true
}

func newInfo(width, height int64) Info {
	return Info{
		pixels: PixelCount{
			Width:  width,
			Height: height,
			Total:  float64(width) * float64(height),
		},
	}
}

// withDiagonal derives the diagonal metrics. The diagonal is in inches. It
// reports false if a metric is not finite, e.g. for a subnormal diagonal.
func (i Info) withDiagonal(diagonal float64) (Info, bool) {
	w := float64(i.pixels.Width)
	h := float64(i.pixels.Height)

	dpi := math.Sqrt(w*w+h*h) / diagonal
	dotPitch := 10 * CentimetersPerInch / dpi

	size := RectSize{
		Width:  w * dotPitch / 10,
		Height: h * dotPitch / 10,
	}

	for _, v := range []float64{diagonal, dpi, dotPitch, size.Width, size.Height} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return i, false
		}
	}

	i.metrics = DiagonalMetrics{
		Diagonal: diagonal,
		DPI:      dpi,
		DotPitch: dotPitch,
		Size:     size,
	}
	i.hasDiagonal = true

	return i, true
}

// PixelCount returns the resolution.
func (i Info) PixelCount() PixelCount {
	return i.pixels
}

// Ratio returns width divided by height.
func (i Info) Ratio() float64 {
	return float64(i.pixels.Width) / float64(i.pixels.Height)
}

// RatioName returns the conventional name of the aspect ratio, e.g. "16:9".
func (i Info) RatioName() string {
	return MustRatioName(i.Ratio())
}

// Metrics returns the diagonal metrics, if a diagonal was given.
func (i Info) Metrics() (DiagonalMetrics, bool) {
	return i.metrics, i.hasDiagonal
}

// HasDiagonal reports whether a valid diagonal was given.
func (i Info) HasDiagonal() bool {
	return i.hasDiagonal
}

// Rotated returns the screen turned by 90 degrees. Width and height swap and
// the ratio is inverted. The diagonal, DPI and dot pitch do not change.
func (i Info) Rotated() Info {
	r := newInfo(i.pixels.Height, i.pixels.Width)
	if i.hasDiagonal {
		if withDiagonal, ok := r.withDiagonal(i.metrics.Diagonal); ok {
			r = withDiagonal
		}
	}

	return r
}

type infoJSON struct {
	Metrics    *DiagonalMetrics `json:"metrics,omitempty"`
	RatioName  string           `json:"ratioName"`
	PixelCount PixelCount       `json:"pixelCount"`
	Ratio      float64          `json:"ratio"`
}

// MarshalJSON implements [json.Marshaler].
func (i Info) MarshalJSON() ([]byte, error) {
	out := infoJSON{
		PixelCount: i.pixels,
		Ratio:      i.Ratio(),
		RatioName:  i.RatioName(),
	}
	if m, ok := i.Metrics(); ok {
		out.Metrics = &m
	}

	return json.Marshal(out) //nolint:wrapcheck // Return the original error.
}
