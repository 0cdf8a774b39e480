package export

import (
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/macropower/aspect/pkg/screen"
)

// Copier puts text on a clipboard.
type Copier interface {
	Copy(text string) error
}

// Clipboard is the native system clipboard.
type Clipboard struct{}

func (Clipboard) Copy(text string) error {
	err := clipboard.WriteAll(text)
	if err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}

	return nil
}

// CopyEntry copies the single entry text form of r, with a trailing
// newline.
func CopyEntry(c Copier, r *screen.Report) error {
	if r == nil {
		return ErrNoScreens
	}

	return c.Copy(r.String() + "\n")
}

// CopyAll copies the list text form of reports. It fails with
// [ErrNoScreens] when there is nothing to copy.
func CopyAll(c Copier, reports ...*screen.Report) error {
	if len(reports) == 0 {
		return ErrNoScreens
	}

	return c.Copy(screen.FormatList(reports...))
}
