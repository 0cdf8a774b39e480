package yamls_test

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/aspect/pkg/ui/theme"
	"github.com/macropower/aspect/pkg/ui/yamls"
	"github.com/macropower/aspect/pkg/uitest"
)

const report = `Screen: 1366 x 768
Diagonal: 15.6"
AspectRatio: 1.78:1 (16:9)
PixelCount: 1049088
`

func TestHighlight(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		lang    string
		input   string
		profile termenv.Profile
		colored bool
	}{
		"yaml truecolor": {
			lang:    yamls.LangYAML,
			input:   report,
			profile: termenv.TrueColor,
			colored: true,
		},
		"yaml 256": {
			lang:    yamls.LangYAML,
			input:   report,
			profile: termenv.ANSI256,
			colored: true,
		},
		"yaml ascii": {
			lang:    yamls.LangYAML,
			input:   report,
			profile: termenv.Ascii,
		},
		"json": {
			lang:    yamls.LangJSON,
			input:   `{"width": 1366}`,
			profile: termenv.TrueColor,
			colored: true,
		},
		"diff": {
			lang:    yamls.LangDiff,
			input:   "--- a\n+++ b\n-Screen: 1 x 1\n+Screen: 2 x 2\n",
			profile: termenv.ANSI,
			colored: true,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			h, err := yamls.NewHighlighter(theme.Default, tc.lang, tc.profile)
			require.NoError(t, err)

			got, err := h.Highlight(tc.input)
			require.NoError(t, err)

			assert.Equal(t, tc.input, ansi.Strip(got))
			if tc.colored {
				assert.NotEqual(t, tc.input, got)
			} else {
				assert.Equal(t, tc.input, got)
			}
		})
	}
}

func TestHighlightNoTrailingNewline(t *testing.T) {
	t.Parallel()

	h, err := yamls.NewHighlighter(theme.Default, yamls.LangYAML, termenv.Ascii)
	require.NoError(t, err)

	got, err := h.Highlight("Screen: 1 x 1")
	require.NoError(t, err)
	assert.Equal(t, "Screen: 1 x 1", got)
}

func TestUnknownLanguage(t *testing.T) {
	t.Parallel()

	_, err := yamls.NewHighlighter(theme.Default, "not-a-language-at-all", termenv.Ascii)
	require.ErrorIs(t, err, yamls.ErrUnknownLanguage)
}

func TestHighlightDiffLines(t *testing.T) {
	t.Parallel()

	h, err := yamls.NewHighlighter(theme.New("github"), yamls.LangDiff, termenv.TrueColor)
	require.NoError(t, err)

	got, err := h.Highlight("--- a\n+++ b\n-Screen: 1 x 1\n+Screen: 2 x 2\n")
	require.NoError(t, err)

	deleted, ok := uitest.StyleAt(got, "-Screen")
	require.True(t, ok)

	inserted, ok := uitest.StyleAt(got, "+Screen")
	require.True(t, ok)

	assert.NotEqual(t, deleted, inserted)
}
