package export

import (
	"github.com/aymanbagabas/go-udiff"

	"github.com/macropower/aspect/pkg/screen"
)

// Diff returns a unified diff between the single entry text forms of two
// reports. It is empty when both serialize identically.
func Diff(aLabel, bLabel string, a, b *screen.Report) string {
	return udiff.Unified(aLabel, bLabel, a.String()+"\n", b.String()+"\n")
}
