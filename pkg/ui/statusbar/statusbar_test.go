package statusbar_test

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"github.com/macropower/aspect/pkg/ui/statusbar"
	"github.com/macropower/aspect/pkg/ui/theme"
)

func TestRender(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		opts  []statusbar.Opt
		width int
		want  string
	}{
		"note": {
			width: 40,
			want:  " aspect  2 screens         1/2  F1 help ",
		},
		"message": {
			opts:  []statusbar.Opt{statusbar.WithMessage("copied", statusbar.StyleSuccess)},
			width: 40,
			want:  " aspect  copied            1/2  F1 help ",
		},
		"truncated": {
			opts:  []statusbar.Opt{statusbar.WithMessage("a very long error message", statusbar.StyleError)},
			width: 30,
			want:  " aspect  a very… 1/2  F1 help ",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			r := statusbar.New(theme.Default, tc.width, tc.opts...)
			got := ansi.Strip(r.Render("2 screens", "1/2", "F1 help"))

			assert.Equal(t, tc.want, got)
		})
	}
}
