package screenlist

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"

	"github.com/invopop/jsonschema"

	"github.com/macropower/aspect/pkg/screen"
	"github.com/macropower/aspect/pkg/yaml"
)

const (
	APIVersion = "aspect.jacobcolvin.com/v1beta1"
	Kind       = "ScreenList"
)

var (
	ErrInvalidAPIVersion = errors.New("invalid apiVersion")
	ErrInvalidKind       = errors.New("invalid kind")
	ErrInvalidUnit       = errors.New("invalid unit")
)

// Input is a raw value in a screen list file. It accepts YAML strings and
// numbers, so both `width: 1920` and `width: "1920px"` can be written.
type Input string

// JSONSchema allows both strings and numbers.
func (Input) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		OneOf: []*jsonschema.Schema{
			{Type: "string"},
			{Type: "number"},
		},
	}
}

// UnmarshalYAML implements the goccy/go-yaml interface unmarshaler.
func (in *Input) UnmarshalYAML(unmarshal func(any) error) error {
	var v any

	err := unmarshal(&v)
	if err != nil {
		return err
	}

	switch t := v.(type) {
	case nil:
		*in = ""
	case string:
		*in = Input(t)
	case float64:
		*in = Input(strconv.FormatFloat(t, 'f', -1, 64))
	case uint64:
		*in = Input(strconv.FormatUint(t, 10))
	case int64:
		*in = Input(strconv.FormatInt(t, 10))
	case int:
		*in = Input(strconv.Itoa(t))
	default:
		return fmt.Errorf("expected a string or number, got %T", v)
	}

	return nil
}

// UnmarshalJSON accepts JSON strings, numbers and null.
func (in *Input) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*in = ""
	case len(data) > 0 && data[0] == '"':
		var s string

		err := json.Unmarshal(data, &s)
		if err != nil {
			return fmt.Errorf("decode string: %w", err)
		}

		*in = Input(s)
	default:
		var f float64

		err := json.Unmarshal(data, &f)
		if err != nil {
			return fmt.Errorf("expected a string or number: %w", err)
		}

		*in = Input(strconv.FormatFloat(f, 'f', -1, 64))
	}

	return nil
}

// FileScreen is one screen in a [Document].
type FileScreen struct {
	Name         string      `json:"name,omitempty"`
	Width        Input       `json:"width"`
	Height       Input       `json:"height"`
	Diagonal     Input       `json:"diagonal,omitempty"`
	DiagonalUnit screen.Unit `json:"diagonalUnit,omitempty"`
	SizeUnit     screen.Unit `json:"sizeUnit,omitempty"`
}

// Document is the YAML representation of a screen list:
//
//	apiVersion: aspect.jacobcolvin.com/v1beta1
//	kind: ScreenList
//	units:
//	  diagonal: in
//	  size: cm
//	screens:
//	  - name: laptop
//	    width: 1366
//	    height: 768
//	    diagonal: 15.6
type Document struct {
	Units      *screen.UnitOptions `json:"units,omitempty"`
	APIVersion string              `json:"apiVersion"`
	Kind       string              `json:"kind"`
	Screens    []FileScreen        `json:"screens"`
}

// Decode reads and checks a [Document].
func Decode(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read screen list: %w", err)
	}

	return DecodeBytes(data)
}

// DecodeBytes is like [Decode] for in-memory data.
func DecodeBytes(data []byte) (*Document, error) {
	ew := yaml.NewErrorWrapper(yaml.WithSource(data))

	doc := &Document{}

	err := yaml.NewDecoder(bytes.NewReader(data), yaml.Strict()).Decode(doc)
	if err != nil {
		return nil, ew.Wrap(err)
	}

	err = doc.Validate()
	if err != nil {
		return nil, ew.Wrap(err)
	}

	return doc, nil
}

// Load reads the screen list at path.
func Load(path string) (*Document, error) {
	f, err := os.Open(path) //nolint:gosec // G304: Path is provided by the user.
	if err != nil {
		return nil, fmt.Errorf("open screen list: %w", err)
	}
	defer f.Close() //nolint:errcheck // Read only.

	doc, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

// Validate checks the header and the units. Geometry is not checked here:
// invalid screens are skipped when rendering, like in the editor.
func (d *Document) Validate() error {
	var errs []error

	if d.APIVersion != APIVersion {
		errs = append(errs, fmt.Errorf("%w %q, expected %q", ErrInvalidAPIVersion, d.APIVersion, APIVersion))
	}
	if d.Kind != Kind {
		errs = append(errs, fmt.Errorf("%w %q, expected %q", ErrInvalidKind, d.Kind, Kind))
	}

	check := func(where string, u screen.Unit) {
		if u != "" && !slices.Contains(screen.AllUnits, string(u)) {
			errs = append(errs, fmt.Errorf("%s: %w %q", where, ErrInvalidUnit, u))
		}
	}

	if d.Units != nil {
		check("units.diagonal", d.Units.DiagonalUnit)
		check("units.size", d.Units.SizeUnit)
	}

	for i, s := range d.Screens {
		check(fmt.Sprintf("screens[%d].diagonalUnit", i), s.DiagonalUnit)
		check(fmt.Sprintf("screens[%d].sizeUnit", i), s.SizeUnit)
	}

	return errors.Join(errs...)
}

// List converts the document into a [List]. Document units override
// defaults, and per-screen units override both.
func (d *Document) List(defaults screen.UnitOptions) *List {
	units := defaults
	if d.Units != nil {
		if d.Units.DiagonalUnit != "" {
			units.DiagonalUnit = d.Units.DiagonalUnit
		}
		if d.Units.SizeUnit != "" {
			units.SizeUnit = d.Units.SizeUnit
		}
	}

	l := New(WithDefaultUnits(units))
	for _, s := range d.Screens {
		l.Add(Entry{
			Name:         s.Name,
			Width:        string(s.Width),
			Height:       string(s.Height),
			Diagonal:     string(s.Diagonal),
			DiagonalUnit: s.DiagonalUnit,
			SizeUnit:     s.SizeUnit,
		})
	}

	return l
}

// NewDocument builds a [Document] from the entries of l.
func NewDocument(l *List) *Document {
	doc := &Document{
		APIVersion: APIVersion,
		Kind:       Kind,
	}

	for _, e := range l.Entries() {
		doc.Screens = append(doc.Screens, FileScreen{
			Name:         e.Name,
			Width:        Input(e.Width),
			Height:       Input(e.Height),
			Diagonal:     Input(e.Diagonal),
			DiagonalUnit: e.DiagonalUnit,
			SizeUnit:     e.SizeUnit,
		})
	}

	return doc
}
