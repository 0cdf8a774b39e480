package preset

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"unicode"

	"github.com/sahilm/fuzzy"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Catalog is an ordered, searchable set of presets. Names are unique,
// compared after [Normalize].
type Catalog struct {
	presets []Preset
	targets []string
}

// NewCatalog returns the built-in presets followed by extra. An extra preset
// with the name of an existing one replaces it in place.
func NewCatalog(extra ...Preset) *Catalog {
	c := &Catalog{}
	for _, p := range slices.Concat(Builtin(), extra) {
		c.add(p)
	}

	return c
}

func (c *Catalog) add(p Preset) {
	key := normalizeKey(p.Name)
	target := normalizeKey(p.Name + " " + fmt.Sprintf("%dx%d", p.Width, p.Height) + " " + strings.Join(p.Tags, " "))

	for i, existing := range c.presets {
		if normalizeKey(existing.Name) == key {
			c.presets[i] = p
			c.targets[i] = target

			return
		}
	}

	c.presets = append(c.presets, p)
	c.targets = append(c.targets, target)
}

// All returns every preset in catalog order.
func (c *Catalog) All() []Preset {
	return slices.Clone(c.presets)
}

// Len implements [fuzzy.Source].
func (c *Catalog) Len() int {
	return len(c.targets)
}

// String implements [fuzzy.Source].
func (c *Catalog) String(i int) string {
	return c.targets[i]
}

// Get returns the preset with the given name, ignoring case and accents.
func (c *Catalog) Get(name string) (Preset, bool) {
	key := normalizeKey(name)
	for _, p := range c.presets {
		if normalizeKey(p.Name) == key {
			return p, true
		}
	}

	return Preset{}, false
}

// Match is a search result.
type Match struct {
	Preset Preset `json:"preset"`
	Score  int    `json:"score"`
}

// Search fuzzy-matches query against preset names, resolutions and tags,
// best match first. An empty query returns every preset.
func (c *Catalog) Search(query string) []Match {
	q := normalizeKey(query)
	if q == "" {
		out := make([]Match, 0, len(c.presets))
		for _, p := range c.presets {
			out = append(out, Match{Preset: p})
		}

		return out
	}

	found := fuzzy.FindFrom(q, c)
	out := make([]Match, 0, len(found))
	for _, m := range found {
		out = append(out, Match{Preset: c.presets[m.Index], Score: m.Score})
	}

	return out
}

// Normalize removes diacritics, so that "é" matches "e".
func Normalize(in string) (string, error) {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	out, _, err := transform.String(t, in)
	if err != nil {
		return "", fmt.Errorf("normalize: %w", err)
	}

	return out, nil
}

func normalizeKey(in string) string {
	out, err := Normalize(in)
	if err != nil {
		slog.Debug("could not normalize", slog.String("input", in), slog.Any("error", err))

		out = in
	}

	return strings.ToLower(strings.TrimSpace(out))
}
