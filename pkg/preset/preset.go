// Package preset holds a catalog of well-known displays that can be
// searched by name.
package preset

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/macropower/aspect/pkg/screen"
	"github.com/macropower/aspect/pkg/screenlist"
)

// Preset is a named display.
type Preset struct {
	Name     string      `json:"name"                jsonschema:"title=Name"`
	Unit     screen.Unit `json:"unit,omitempty"      jsonschema:"title=Diagonal Unit,enum=in,enum=cm"`
	Tags     []string    `json:"tags,omitempty"      jsonschema:"title=Tags"`
	Width    int64       `json:"width"               jsonschema:"title=Width,minimum=1"`
	Height   int64       `json:"height"              jsonschema:"title=Height,minimum=1"`
	Diagonal float64     `json:"diagonal,omitempty"  jsonschema:"title=Diagonal,exclusiveMinimum=0"`
}

// Entry returns the preset as a list entry.
func (p Preset) Entry() screenlist.Entry {
	e := screenlist.Entry{
		Name:         p.Name,
		Width:        strconv.FormatInt(p.Width, 10),
		Height:       strconv.FormatInt(p.Height, 10),
		DiagonalUnit: p.Unit,
	}
	if p.Diagonal > 0 {
		e.Diagonal = strconv.FormatFloat(p.Diagonal, 'f', -1, 64)
	}

	return e
}

// Info derives the screen geometry of the preset.
func (p Preset) Info() (screen.Info, bool) {
	opts := []screen.Opt{screen.WithDiagonalUnit(p.Unit)}
	if p.Diagonal > 0 {
		opts = append(opts, screen.WithDiagonal(p.Diagonal))
	}

	return screen.FromNumbers(float64(p.Width), float64(p.Height), opts...)
}

// Describe returns a one line summary, such as
// `Steam Deck  1280 x 800  7"  16:10`.
func (p Preset) Describe() string {
	parts := []string{p.Name, fmt.Sprintf("%d x %d", p.Width, p.Height)}

	if info, ok := p.Info(); ok {
		if m, ok := info.Metrics(); ok {
			unit := p.Unit
			if unit == "" {
				unit = screen.UnitInch
			}

			d := screen.FormatTrimmed(screen.Convert(m.Diagonal, screen.UnitInch, unit), 4)
			parts = append(parts, d+unit.Suffix())
		}

		parts = append(parts, info.RatioName())
	}

	return strings.Join(parts, "  ")
}

// Builtin returns the built-in catalog.
func Builtin() []Preset {
	return []Preset{
		{Name: "HD Laptop", Width: 1366, Height: 768, Diagonal: 15.6, Tags: []string{"laptop"}},
		{Name: "Full HD Monitor", Width: 1920, Height: 1080, Diagonal: 24, Tags: []string{"monitor", "fhd", "1080p"}},
		{Name: "QHD Monitor", Width: 2560, Height: 1440, Diagonal: 27, Tags: []string{"monitor", "1440p"}},
		{Name: "QHD Monitor 32", Width: 2560, Height: 1440, Diagonal: 32, Tags: []string{"monitor", "1440p"}},
		{Name: "4K Monitor", Width: 3840, Height: 2160, Diagonal: 27, Tags: []string{"monitor", "uhd", "2160p"}},
		{Name: "4K TV", Width: 3840, Height: 2160, Diagonal: 43, Tags: []string{"tv", "uhd", "2160p"}},
		{Name: "4K TV 65", Width: 3840, Height: 2160, Diagonal: 65, Tags: []string{"tv", "uhd", "2160p"}},
		{Name: "UltraWide Monitor", Width: 3440, Height: 1440, Diagonal: 34, Tags: []string{"monitor", "ultrawide"}},
		{Name: "Super UltraWide Monitor", Width: 5120, Height: 1440, Diagonal: 49, Tags: []string{"monitor", "ultrawide"}},
		{Name: "Studio Display", Width: 5120, Height: 2880, Diagonal: 27, Tags: []string{"monitor", "apple", "5k"}},
		{Name: "Pro Display XDR", Width: 6016, Height: 3384, Diagonal: 32, Tags: []string{"monitor", "apple", "6k"}},
		{Name: "MacBook Air 13", Width: 2560, Height: 1664, Diagonal: 13.6, Tags: []string{"laptop", "apple"}},
		{Name: "MacBook Pro 14", Width: 3024, Height: 1964, Diagonal: 14.2, Tags: []string{"laptop", "apple"}},
		{Name: "MacBook Pro 16", Width: 3456, Height: 2234, Diagonal: 16.2, Tags: []string{"laptop", "apple"}},
		{Name: "XPS 13", Width: 1920, Height: 1200, Diagonal: 13.4, Tags: []string{"laptop", "dell"}},
		{Name: "Surface Pro", Width: 2880, Height: 1920, Diagonal: 13, Tags: []string{"tablet", "microsoft"}},
		{Name: "iPad Pro 12.9", Width: 2048, Height: 2732, Diagonal: 12.9, Tags: []string{"tablet", "apple"}},
		{Name: "iPhone 15", Width: 1179, Height: 2556, Diagonal: 6.1, Tags: []string{"phone", "apple"}},
		{Name: "Pixel 8", Width: 1080, Height: 2400, Diagonal: 6.2, Tags: []string{"phone", "google"}},
		{Name: "Steam Deck", Width: 1280, Height: 800, Diagonal: 7, Tags: []string{"handheld"}},
		{Name: "Nintendo Switch", Width: 1280, Height: 720, Diagonal: 6.2, Tags: []string{"handheld"}},
		{Name: "SXGA Monitor", Width: 1280, Height: 1024, Diagonal: 17, Tags: []string{"monitor"}},
		{Name: "XGA Monitor", Width: 1024, Height: 768, Diagonal: 15, Tags: []string{"monitor"}},
	}
}
