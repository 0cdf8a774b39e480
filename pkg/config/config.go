package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/invopop/jsonschema"

	_ "embed"

	"github.com/macropower/aspect/pkg/preset"
	"github.com/macropower/aspect/pkg/screen"
	"github.com/macropower/aspect/pkg/screenlist"
	"github.com/macropower/aspect/pkg/ui"
	"github.com/macropower/aspect/pkg/yaml"
)

//go:generate go run ../../internal/schemagen -root ../.. -o config.v1beta1.json

const (
	APIVersion     = "aspect.jacobcolvin.com/v1beta1"
	Kind           = "Configuration"
	SchemaFileName = "config.v1beta1.json"
)

var (
	//go:embed config.yaml
	defaultConfigYAML []byte

	//go:embed config.v1beta1.json
	schemaJSON []byte

	ErrInvalidAPIVersion = errors.New("invalid apiVersion")
	ErrInvalidKind       = errors.New("invalid kind")
	ErrInvalidUnit       = errors.New("invalid unit")

	DefaultValidator = yaml.MustNewValidator("/"+SchemaFileName, schemaJSON)
)

//nolint:recvcheck // Must satisfy the jsonschema interface.
type Configuration struct {
	// Units are the default units for new screens.
	Units *screen.UnitOptions `json:"units,omitempty" jsonschema:"title=Default Units"`
	// UI configures the interactive editor.
	UI *ui.Config `json:"ui,omitempty" jsonschema:"title=UI"`
	// Detect seeds the editor with the resolution of the primary display.
	Detect *bool `json:"detect,omitempty" jsonschema:"title=Detect Display"`
	// APIVersion specifies the API version for this configuration.
	APIVersion string `json:"apiVersion" jsonschema:"title=API Version"`
	// Kind defines the type of configuration.
	Kind string `json:"kind" jsonschema:"title=Kind"`
	// Presets are added to the built-in presets. A preset with the name of
	// a built-in one replaces it.
	Presets []preset.Preset `json:"presets,omitempty" jsonschema:"title=Presets"`
	// Screens are shown when the editor starts.
	Screens []screenlist.FileScreen `json:"screens,omitempty" jsonschema:"title=Initial Screens"`
}

func New() *Configuration {
	c := &Configuration{
		APIVersion: APIVersion,
		Kind:       Kind,
	}
	c.EnsureDefaults()

	return c
}

func (c *Configuration) EnsureDefaults() {
	if c.Units == nil {
		units := screen.DefaultUnitOptions()
		c.Units = &units
	}

	defaults := screen.DefaultUnitOptions()
	if c.Units.DiagonalUnit == "" {
		c.Units.DiagonalUnit = defaults.DiagonalUnit
	}
	if c.Units.SizeUnit == "" {
		c.Units.SizeUnit = defaults.SizeUnit
	}

	if c.UI == nil {
		c.UI = ui.NewConfig()
	} else {
		c.UI.EnsureDefaults()
	}

	if c.Detect == nil {
		c.Detect = new(bool)
	}
}

// Validate checks what the schema cannot express. Errors carry the YAML
// path of the offending value.
func (c *Configuration) Validate() error {
	var errs []error

	if c.APIVersion != APIVersion {
		errs = append(errs, yaml.NewError(
			fmt.Errorf("%w %q, expected %q", ErrInvalidAPIVersion, c.APIVersion, APIVersion),
			yaml.WithPath(yaml.NewPathBuilder().Root().Child("apiVersion").Build()),
		))
	}
	if c.Kind != Kind {
		errs = append(errs, yaml.NewError(
			fmt.Errorf("%w %q, expected %q", ErrInvalidKind, c.Kind, Kind),
			yaml.WithPath(yaml.NewPathBuilder().Root().Child("kind").Build()),
		))
	}

	checkUnit := func(u screen.Unit, path ...string) {
		if u == "" || slices.Contains(screen.AllUnits, string(u)) {
			return
		}

		pb := yaml.NewPathBuilder().Root()
		for _, p := range path {
			pb = pb.Child(p)
		}

		errs = append(errs, yaml.NewError(
			fmt.Errorf("%w %q", ErrInvalidUnit, u),
			yaml.WithPath(pb.Build()),
		))
	}

	if c.Units != nil {
		checkUnit(c.Units.DiagonalUnit, "units", "diagonal")
		checkUnit(c.Units.SizeUnit, "units", "size")
	}

	for i, p := range c.Presets {
		if p.Unit != "" && !slices.Contains(screen.AllUnits, string(p.Unit)) {
			errs = append(errs, yaml.NewError(
				fmt.Errorf("%w %q", ErrInvalidUnit, p.Unit),
				yaml.WithPath(yaml.NewPathBuilder().Root().Child("presets").Index(uint(i)).Child("unit").Build()),
			))
		}
	}

	if c.UI != nil {
		err := c.UI.Validate()
		if err != nil {
			errs = append(errs, yaml.NewError(err,
				yaml.WithPath(yaml.NewPathBuilder().Root().Child("ui").Child("keybinds").Build()),
			))
		}
	}

	return errors.Join(errs...)
}

func (c Configuration) JSONSchemaExtend(jss *jsonschema.Schema) {
	extendConst(jss, "apiVersion", "API Version", APIVersion)
	extendConst(jss, "kind", "Kind", Kind)
}

func extendConst(jss *jsonschema.Schema, property, title string, values ...string) {
	prop, ok := jss.Properties.Get(property)
	if !ok {
		panic(property + " property not found in schema")
	}

	for _, v := range values {
		prop.OneOf = append(prop.OneOf, &jsonschema.Schema{
			Type:  "string",
			Const: v,
			Title: title,
		})
	}

	_, _ = jss.Properties.Set(property, prop)
}

// Catalog returns the built-in presets merged with the configured ones.
func (c *Configuration) Catalog() *preset.Catalog {
	return preset.NewCatalog(c.Presets...)
}

// List returns the initial screens as an editable list.
func (c *Configuration) List() *screenlist.List {
	doc := &screenlist.Document{
		APIVersion: screenlist.APIVersion,
		Kind:       screenlist.Kind,
		Screens:    c.Screens,
	}

	return doc.List(*c.Units)
}

func (c *Configuration) MarshalYAML() ([]byte, error) {
	b, err := yaml.Marshal(*c)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}

	return b, nil
}
