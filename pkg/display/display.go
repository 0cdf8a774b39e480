// Package display detects the displays connected to this machine.
package display

import (
	"errors"
	"fmt"
	"image"
	"strconv"

	"github.com/kbinani/screenshot"

	"github.com/macropower/aspect/pkg/screenlist"
)

var ErrNoDisplays = errors.New("no active displays")

// Display is a connected monitor. Only the pixel dimensions are known; the
// physical size is not reported by the OS.
type Display struct {
	ID      string `json:"id"`
	Index   int    `json:"index"`
	Width   int64  `json:"width"`
	Height  int64  `json:"height"`
	Primary bool   `json:"primary"`
}

// Entry returns the display as a list entry without a diagonal.
func (d Display) Entry() screenlist.Entry {
	return screenlist.Entry{
		Width:  strconv.FormatInt(d.Width, 10),
		Height: strconv.FormatInt(d.Height, 10),
	}
}

// Source reports display bounds.
type Source interface {
	NumDisplays() int
	Bounds(i int) image.Rectangle
}

type systemSource struct{}

func (systemSource) NumDisplays() int {
	return screenshot.NumActiveDisplays()
}

func (systemSource) Bounds(i int) image.Rectangle {
	return screenshot.GetDisplayBounds(i)
}

// System returns the [Source] backed by the operating system.
func System() Source { //nolint:ireturn // Source is implemented by fakes in tests.
	return systemSource{}
}

// Detector lists displays from a [Source].
type Detector struct {
	src Source
}

func NewDetector(src Source) *Detector {
	return &Detector{src: src}
}

// List returns the active displays. The first display is the primary one.
// Displays with empty bounds are skipped.
func (d *Detector) List() ([]Display, error) {
	n := d.src.NumDisplays()
	if n <= 0 {
		return nil, ErrNoDisplays
	}

	out := make([]Display, 0, n)
	for i := range n {
		b := d.src.Bounds(i)
		if b.Dx() <= 0 || b.Dy() <= 0 {
			continue
		}

		out = append(out, Display{
			ID:      fmt.Sprintf("display-%d", i),
			Index:   i,
			Width:   int64(b.Dx()),
			Height:  int64(b.Dy()),
			Primary: i == 0,
		})
	}

	if len(out) == 0 {
		return nil, ErrNoDisplays
	}

	return out, nil
}

// Primary returns the primary display.
func (d *Detector) Primary() (Display, error) {
	displays, err := d.List()
	if err != nil {
		return Display{}, err
	}

	return displays[0], nil
}
