package screen

import (
	"fmt"
	"slices"
	"strings"
)

// Field keys, in serialization order.
const (
	KeyScreen      = "Screen"
	KeyDiagonal    = "Diagonal"
	KeyAspectRatio = "AspectRatio"
	KeyDPI         = "DPI"
	KeyDotPitch    = "DotPitch"
	KeySize        = "Size"
	KeyPixelCount  = "PixelCount"
)

// UnitOptions selects the units used when serializing an [Info].
type UnitOptions struct {
	DiagonalUnit Unit `json:"diagonal,omitempty" jsonschema:"title=Diagonal Unit,enum=in,enum=cm"`
	SizeUnit     Unit `json:"size,omitempty"     jsonschema:"title=Size Unit,enum=in,enum=cm"`
}

// DefaultUnitOptions shows the diagonal in inches and the size in
// centimeters.
func DefaultUnitOptions() UnitOptions {
	return UnitOptions{
		DiagonalUnit: UnitInch,
		SizeUnit:     UnitCentimeter,
	}
}

func (o UnitOptions) normalize() UnitOptions {
	return UnitOptions{
		DiagonalUnit: o.DiagonalUnit.orDefault(UnitInch),
		SizeUnit:     o.SizeUnit.orDefault(UnitCentimeter),
	}
}

// Field is one serialized key/value pair.
type Field struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Fields is an ordered list of [Field]s.
type Fields []Field

// Get returns the value stored under key.
func (fs Fields) Get(key string) (string, bool) {
	for _, f := range fs {
		if f.Key == key {
			return f.Value, true
		}
	}

	return "", false
}

// Lines returns each field as "Key: value".
func (fs Fields) Lines() []string {
	lines := make([]string, 0, len(fs))
	for _, f := range fs {
		lines = append(lines, f.Key+": "+f.Value)
	}

	return lines
}

// String joins the fields with newlines, without a trailing newline.
func (fs Fields) String() string {
	return strings.Join(fs.Lines(), "\n")
}

// ListEntry renders the fields as one entry of a YAML sequence.
func (fs Fields) ListEntry() string {
	return "- " + strings.Join(fs.Lines(), "\n  ")
}

// Fields serializes the screen. Optional fields are omitted when no
// diagonal is known.
func (i Info) Fields(opts UnitOptions) Fields {
	opts = opts.normalize()
	m, hasDiagonal := i.Metrics()

	fs := Fields{
		{Key: KeyScreen, Value: fmt.Sprintf("%d x %d", i.pixels.Width, i.pixels.Height)},
	}

	if hasDiagonal {
		fs = append(fs, Field{Key: KeyDiagonal, Value: formatDiagonal(m.Diagonal, opts.DiagonalUnit)})
	}

	fs = append(fs, Field{
		Key:   KeyAspectRatio,
		Value: FormatFixed(i.Ratio(), 2) + ":1 (" + i.RatioName() + ")",
	})

	if hasDiagonal {
		fs = append(fs,
			Field{Key: KeyDPI, Value: FormatFixed(m.DPI, 2)},
			Field{Key: KeyDotPitch, Value: FormatFixed(m.DotPitch, 4)},
			Field{Key: KeySize, Value: formatSize(m.Size, opts.SizeUnit)},
		)
	}

	fs = append(fs, Field{Key: KeyPixelCount, Value: formatShortest(i.pixels.Total)})

	return fs
}

// String serializes the screen with [DefaultUnitOptions].
func (i Info) String() string {
	return i.Fields(DefaultUnitOptions()).String()
}

func formatDiagonal(inches float64, unit Unit) string {
	if unit == UnitCentimeter {
		return formatShortest(ToCentimeters(inches)) + " cm"
	}

	return formatShortest(inches) + `"`
}

func formatSize(size RectSize, unit Unit) string {
	if unit == UnitInch {
		return FormatFixed(ToInches(size.Width), 2) + `" x ` + FormatFixed(ToInches(size.Height), 2) + `"`
	}

	return FormatFixed(size.Width, 2) + " cm x " + FormatFixed(size.Height, 2) + " cm"
}

// Report is an [Info] serialized once with fixed [UnitOptions]. Repeated
// calls return the same values without recomputing them.
type Report struct {
	text   string
	fields Fields
	opts   UnitOptions
	info   Info
}

// NewReport serializes info with opts.
func NewReport(info Info, opts UnitOptions) *Report {
	opts = opts.normalize()
	fields := info.Fields(opts)

	return &Report{
		info:   info,
		opts:   opts,
		fields: fields,
		text:   fields.String(),
	}
}

// Info returns the serialized screen.
func (r *Report) Info() Info {
	return r.info
}

// Units returns the units the report was built with.
func (r *Report) Units() UnitOptions {
	return r.opts
}

// Fields returns a copy of the serialized fields.
func (r *Report) Fields() Fields {
	return slices.Clone(r.fields)
}

// String returns the single entry text form.
func (r *Report) String() string {
	return r.text
}

// FormatList renders reports as a YAML-like list: one "- " entry per report,
// separated by blank lines, with a trailing newline.
func FormatList(reports ...*Report) string {
	entries := make([]string, 0, len(reports))
	for _, r := range reports {
		entries = append(entries, r.fields.ListEntry())
	}

	return strings.Join(entries, "\n\n") + "\n"
}
