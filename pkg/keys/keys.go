// Package keys describes configurable key bindings and renders them as help
// columns.
package keys

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/x/ansi"
	rfansi "github.com/muesli/reflow/ansi"
)

const ellipsis = "…"

var ErrDuplicateKey = errors.New("duplicate key binding")

// Key is a single key code, as reported by bubbletea's KeyMsg.String.
type Key struct {
	// Code is the key code, e.g. "ctrl+n".
	Code string `json:"code" jsonschema:"title=Code"`
	// Alias is shown in help instead of the code.
	Alias string `json:"alias,omitempty" jsonschema:"title=Alias"`
	// Hidden keys work but are not shown in help.
	Hidden bool `json:"hidden,omitempty" jsonschema:"title=Hidden"`
}

type KeyOpt func(k *Key)

func New(code string, opts ...KeyOpt) Key {
	k := Key{Code: code}
	for _, opt := range opts {
		opt(&k)
	}

	return k
}

func WithAlias(alias string) KeyOpt {
	return func(k *Key) {
		k.Alias = alias
	}
}

func Hidden() KeyOpt {
	return func(k *Key) {
		k.Hidden = true
	}
}

func (k Key) String() string {
	if k.Alias != "" {
		return k.Alias
	}

	return k.Code
}

// KeyBind is an action and the keys that trigger it.
type KeyBind struct {
	// Description is shown in help.
	Description string `json:"description" jsonschema:"title=Description"`
	// Keys trigger the action.
	Keys []Key `json:"keys" jsonschema:"title=Keys"`
}

func NewBind(description string, keys ...Key) KeyBind {
	return KeyBind{
		Description: description,
		Keys:        keys,
	}
}

// String joins the visible keys with "/".
func (kb *KeyBind) String() string {
	var out []string
	for _, k := range kb.Keys {
		if !k.Hidden {
			out = append(out, k.String())
		}
	}

	return strings.Join(out, "/")
}

// Match reports whether key triggers the binding.
func (kb *KeyBind) Match(key string) bool {
	if kb == nil {
		return false
	}

	for _, k := range kb.Keys {
		if k.Code == key {
			return true
		}
	}

	return false
}

// AddKey appends key unless its code is already bound.
func (kb *KeyBind) AddKey(key Key) {
	if kb == nil || kb.Match(key.Code) {
		return
	}

	kb.Keys = append(kb.Keys, key)
}

// Binding converts the bind for use with the bubbles help component.
func (kb *KeyBind) Binding() key.Binding {
	codes := make([]string, 0, len(kb.Keys))
	for _, k := range kb.Keys {
		codes = append(codes, k.Code)
	}

	b := key.NewBinding(key.WithKeys(codes...), key.WithHelp(kb.String(), kb.Description))
	if kb.String() == "" {
		b.SetEnabled(false)
	}

	return b
}

// StringRow renders the bind as one help row, padding the keys to keyWidth
// and truncating the description to fit descWidth.
func (kb *KeyBind) StringRow(keyWidth, descWidth int) string {
	keys := kb.String()
	if keys == "" {
		return ""
	}

	desc := truncate(kb.Description, descWidth-2)

	keyPad := strings.Repeat(" ", max(0, keyWidth-rfansi.PrintableRuneWidth(keys)))
	descPad := strings.Repeat(" ", max(0, descWidth-rfansi.PrintableRuneWidth(desc)-2))

	return keys + keyPad + "  " + desc + descPad
}

// SetDefaultBind fills a nil or partially configured bind from def.
func SetDefaultBind(kb **KeyBind, def KeyBind) {
	if *kb == nil {
		*kb = &def

		return
	}

	if len((*kb).Keys) == 0 {
		(*kb).Keys = def.Keys
	}
	if (*kb).Description == "" {
		(*kb).Description = def.Description
	}
}

// ValidateBinds fails if any key code is bound more than once.
func ValidateBinds(kbs ...KeyBind) error {
	var errs []error

	seen := map[string]string{}
	for _, kb := range kbs {
		for _, k := range kb.Keys {
			if prev, ok := seen[k.Code]; ok {
				errs = append(errs, fmt.Errorf("%w: %q used by %q and %q", ErrDuplicateKey, k.Code, prev, kb.Description))

				continue
			}

			seen[k.Code] = kb.Description
		}
	}

	return errors.Join(errs...)
}

func truncate(s string, width int) string {
	if width <= 0 {
		if s == "" {
			return ""
		}

		return ellipsis
	}

	return ansi.Truncate(s, width, ellipsis)
}
