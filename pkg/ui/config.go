package ui

import (
	"github.com/macropower/aspect/pkg/keys"
	"github.com/macropower/aspect/pkg/ui/common"
	"github.com/macropower/aspect/pkg/ui/picker"
)

// Config contains TUI-specific configuration.
type Config struct {
	// KeyBinds overrides the default key bindings.
	KeyBinds *KeyBinds `json:"keybinds,omitempty" jsonschema:"title=Key Bindings"`
	// Compact hides the key help line.
	Compact *bool `json:"compact,omitempty" jsonschema:"title=Compact"`
	// AlternateDiagonal shows each diagonal in the other unit next to the
	// input.
	AlternateDiagonal *bool `json:"alternateDiagonal,omitempty" jsonschema:"title=Show Alternate Diagonal"`
	// Theme is a chroma style name, or "auto", "light" or "dark".
	Theme string `json:"theme,omitempty" jsonschema:"title=Theme"`
}

func NewConfig() *Config {
	c := &Config{}
	c.EnsureDefaults()

	return c
}

func (c *Config) EnsureDefaults() {
	if c.KeyBinds == nil {
		c.KeyBinds = &KeyBinds{}
	}

	c.KeyBinds.EnsureDefaults()

	if c.Compact == nil {
		c.Compact = new(bool)
	}
	if c.AlternateDiagonal == nil {
		show := true
		c.AlternateDiagonal = &show
	}
	if c.Theme == "" {
		c.Theme = "auto"
	}
}

// Validate fails if a key is bound to more than one action.
func (c *Config) Validate() error {
	return c.KeyBinds.Validate()
}

type KeyBinds struct {
	Common *common.KeyBinds `json:"common,omitempty" jsonschema:"title=Common"`
	Editor *EditorKeyBinds  `json:"editor,omitempty" jsonschema:"title=Editor"`
	Picker *picker.KeyBinds `json:"picker,omitempty" jsonschema:"title=Preset Picker"`
}

func (kb *KeyBinds) EnsureDefaults() {
	if kb.Common == nil {
		kb.Common = &common.KeyBinds{}
	}
	if kb.Editor == nil {
		kb.Editor = &EditorKeyBinds{}
	}
	if kb.Picker == nil {
		kb.Picker = &picker.KeyBinds{}
	}

	kb.Common.EnsureDefaults()
	kb.Editor.EnsureDefaults()
	kb.Picker.EnsureDefaults()
}

// Validate checks the editor and picker binds, each together with the
// common binds.
func (kb *KeyBinds) Validate() error {
	common := kb.Common.GetKeyBinds()

	err := keys.ValidateBinds(append(common, kb.Editor.GetKeyBinds()...)...)
	if err != nil {
		return err //nolint:wrapcheck // Already descriptive.
	}

	return keys.ValidateBinds(append(common, kb.Picker.GetKeyBinds()...)...) //nolint:wrapcheck // Already descriptive.
}

type EditorKeyBinds struct {
	Next         *keys.KeyBind `json:"next,omitempty"         jsonschema:"title=Next Field"`
	Prev         *keys.KeyBind `json:"prev,omitempty"         jsonschema:"title=Previous Field"`
	Up           *keys.KeyBind `json:"up,omitempty"           jsonschema:"title=Previous Screen"`
	Down         *keys.KeyBind `json:"down,omitempty"         jsonschema:"title=Next Screen"`
	Add          *keys.KeyBind `json:"add,omitempty"          jsonschema:"title=Add Screen"`
	Remove       *keys.KeyBind `json:"remove,omitempty"       jsonschema:"title=Remove Screen"`
	Rotate       *keys.KeyBind `json:"rotate,omitempty"       jsonschema:"title=Rotate Screen"`
	DiagonalUnit *keys.KeyBind `json:"diagonalUnit,omitempty" jsonschema:"title=Toggle Diagonal Unit"`
	SizeUnit     *keys.KeyBind `json:"sizeUnit,omitempty"     jsonschema:"title=Toggle Size Unit"`
	Copy         *keys.KeyBind `json:"copy,omitempty"         jsonschema:"title=Copy Screen"`
	CopyAll      *keys.KeyBind `json:"copyAll,omitempty"      jsonschema:"title=Copy All Screens"`
	Presets      *keys.KeyBind `json:"presets,omitempty"      jsonschema:"title=Open Presets"`
	Save         *keys.KeyBind `json:"save,omitempty"         jsonschema:"title=Save List"`
}

func (kb *EditorKeyBinds) EnsureDefaults() {
	keys.SetDefaultBind(&kb.Next, keys.NewBind("next field",
		keys.New("tab"),
	))
	keys.SetDefaultBind(&kb.Prev, keys.NewBind("previous field",
		keys.New("shift+tab", keys.WithAlias("⇧+tab")),
	))
	keys.SetDefaultBind(&kb.Up, keys.NewBind("previous screen",
		keys.New("up", keys.WithAlias("↑")),
	))
	keys.SetDefaultBind(&kb.Down, keys.NewBind("next screen",
		keys.New("down", keys.WithAlias("↓")),
		keys.New("enter", keys.Hidden()),
	))
	keys.SetDefaultBind(&kb.Add, keys.NewBind("add screen",
		keys.New("ctrl+n", keys.WithAlias("⌃n")),
	))
	keys.SetDefaultBind(&kb.Remove, keys.NewBind("remove screen",
		keys.New("ctrl+d", keys.WithAlias("⌃d")),
	))
	keys.SetDefaultBind(&kb.Rotate, keys.NewBind("rotate screen",
		keys.New("ctrl+r", keys.WithAlias("⌃r")),
	))
	keys.SetDefaultBind(&kb.DiagonalUnit, keys.NewBind("diagonal in/cm",
		keys.New("ctrl+u", keys.WithAlias("⌃u")),
	))
	keys.SetDefaultBind(&kb.SizeUnit, keys.NewBind("size in/cm",
		keys.New("ctrl+s", keys.WithAlias("⌃s")),
	))
	keys.SetDefaultBind(&kb.Copy, keys.NewBind("copy screen",
		keys.New("ctrl+y", keys.WithAlias("⌃y")),
	))
	keys.SetDefaultBind(&kb.CopyAll, keys.NewBind("copy all",
		keys.New("ctrl+a", keys.WithAlias("⌃a")),
	))
	keys.SetDefaultBind(&kb.Presets, keys.NewBind("presets",
		keys.New("ctrl+p", keys.WithAlias("⌃p")),
	))
	keys.SetDefaultBind(&kb.Save, keys.NewBind("save list",
		keys.New("ctrl+o", keys.WithAlias("⌃o")),
	))
}

func (kb *EditorKeyBinds) GetKeyBinds() []keys.KeyBind {
	return []keys.KeyBind{
		*kb.Next,
		*kb.Prev,
		*kb.Up,
		*kb.Down,
		*kb.Add,
		*kb.Remove,
		*kb.Rotate,
		*kb.DiagonalUnit,
		*kb.SizeUnit,
		*kb.Copy,
		*kb.CopyAll,
		*kb.Presets,
		*kb.Save,
	}
}
