package config

import (
	"bytes"
	"log/slog"
	"regexp"
	"strings"

	"github.com/macropower/aspect/pkg/ui/theme"
	"github.com/macropower/aspect/pkg/yaml"
)

// Validator checks decoded configuration data.
type Validator interface {
	Validate(data any) error
}

type LoaderOpt func(*Loader)

// WithValidator replaces [DefaultValidator].
func WithValidator(v Validator) LoaderOpt {
	return func(l *Loader) {
		l.validator = v
	}
}

// WithThemeFromData styles errors with the theme named in the data, so that
// errors match the rest of the output even when the file is invalid.
func WithThemeFromData() LoaderOpt {
	return func(l *Loader) {
		l.theme = themeFromData(l.data)
	}
}

// WithColor enables coloured source annotations in errors.
func WithColor(colored bool) LoaderOpt {
	return func(l *Loader) {
		l.colored = colored
	}
}

// Loader validates and decodes configuration data.
type Loader struct {
	validator Validator
	theme     *theme.Theme
	errs      *yaml.ErrorWrapper
	data      []byte
	colored   bool
}

func NewLoaderFromBytes(data []byte, opts ...LoaderOpt) *Loader {
	l := &Loader{
		validator: DefaultValidator,
		theme:     theme.Default,
		data:      data,
	}
	for _, opt := range opts {
		opt(l)
	}

	l.errs = yaml.NewErrorWrapper(
		yaml.WithSource(l.data),
		yaml.WithColor(l.colored),
	)

	return l
}

func NewLoaderFromFile(path string, opts ...LoaderOpt) (*Loader, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	return NewLoaderFromBytes(data, opts...), nil
}

// Validate checks the data against the schema without decoding it into a
// [Configuration].
func (l *Loader) Validate() error {
	var data any

	err := yaml.Unmarshal(l.data, &data)
	if err != nil {
		return l.errs.Wrap(err)
	}

	if l.validator == nil {
		return nil
	}

	return l.errs.Wrap(l.validator.Validate(data))
}

// Load decodes the data and fills in defaults. It does not run the schema
// validation; call [Loader.Validate] first.
func (l *Loader) Load() (*Configuration, error) {
	c := &Configuration{}

	err := yaml.NewDecoder(bytes.NewReader(l.data)).Decode(c)
	if err != nil {
		return nil, l.errs.Wrap(err)
	}

	c.EnsureDefaults()

	err = c.Validate()
	if err != nil {
		return nil, l.errs.Wrap(err)
	}

	return c, nil
}

// Theme returns the theme used for errors.
func (l *Loader) Theme() *theme.Theme {
	return l.theme
}

// themeRe finds `theme:` directly under a top level `ui:` key.
var themeRe = regexp.MustCompile(`(?m)^ui:[ \t]*\n(?:[ \t]+.*\n)*?[ \t]+theme:[ \t]*["']?([^"'#\s]+)`)

func themeFromData(data []byte) *theme.Theme {
	var name string

	path := yaml.NewPathBuilder().Root().Child("ui").Child("theme").Build()

	err := path.Read(bytes.NewReader(data), &name)
	if err == nil && name != "" {
		return theme.New(name)
	}

	// The data may not be valid YAML, which is often why we are here.
	if m := themeRe.FindSubmatch(data); m != nil {
		name = strings.TrimSpace(string(m[1]))
		slog.Debug("read theme from invalid config", slog.String("theme", name))

		return theme.New(name)
	}

	return theme.Default
}
