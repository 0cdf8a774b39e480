package mcp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/macropower/aspect/pkg/mcp"
	"github.com/macropower/aspect/pkg/preset"
	"github.com/macropower/aspect/pkg/screen"
)

func connect(t *testing.T, opts ...mcp.ServerOpt) *sdk.ClientSession {
	t.Helper()

	clientTransport, serverTransport := sdk.NewInMemoryTransports()

	opts = append([]mcp.ServerOpt{mcp.WithTracer(noop.NewTracerProvider().Tracer("test"))}, opts...)
	s := mcp.NewServer(opts...)

	ctx := t.Context()

	serverSession, err := s.Server().Connect(ctx, serverTransport)
	require.NoError(t, err)

	client := sdk.NewClient(&sdk.Implementation{Name: "client"}, nil)
	clientSession, err := client.Connect(ctx, clientTransport)
	require.NoError(t, err)

	t.Cleanup(func() {
		assert.NoError(t, clientSession.Close())
		assert.NoError(t, serverSession.Wait())
	})

	return clientSession
}

func callTool(t *testing.T, cs *sdk.ClientSession, name string, args map[string]any) map[string]any {
	t.Helper()

	r, err := cs.CallTool(t.Context(), &sdk.CallToolParams{Name: name, Arguments: args})
	require.NoError(t, err)
	require.NotNil(t, r)
	require.False(t, r.IsError, "tool returned an error: %v", r.Content)
	require.NotEmpty(t, r.Content)

	out, ok := r.StructuredContent.(map[string]any)
	require.True(t, ok, "structured content is %T", r.StructuredContent)

	return out
}

func callToolError(t *testing.T, cs *sdk.ClientSession, name string, args map[string]any) {
	t.Helper()

	r, err := cs.CallTool(t.Context(), &sdk.CallToolParams{Name: name, Arguments: args})
	if err != nil {
		return
	}

	require.NotNil(t, r)
	assert.True(t, r.IsError)
}

func TestListTools(t *testing.T) {
	t.Parallel()

	cs := connect(t)

	r, err := cs.ListTools(t.Context(), nil)
	require.NoError(t, err)

	names := []string{}
	for _, tool := range r.Tools {
		names = append(names, tool.Name)
	}

	assert.ElementsMatch(t,
		[]string{"compute_screen", "name_aspect_ratio", "convert_length", "search_presets"},
		names,
	)
}

func TestComputeScreen(t *testing.T) {
	t.Parallel()

	cs := connect(t)

	tcs := map[string]struct {
		args      map[string]any
		wantRatio string
		wantTotal float64
		wantDPI   float64
	}{
		"laptop as numbers": {
			args:      map[string]any{"width": 1366, "height": 768, "diagonal": 15.6},
			wantRatio: "16:9",
			wantTotal: 1049088,
			wantDPI:   100.45,
		},
		"strings with suffixes": {
			args:      map[string]any{"width": "2560px", "height": "1440", "diagonal": "32in"},
			wantRatio: "16:9",
			wantTotal: 3686400,
			wantDPI:   91.79,
		},
		"diagonal in centimeters": {
			args:      map[string]any{"width": 1366, "height": 768, "diagonal": 39.624, "diagonalUnit": "cm"},
			wantRatio: "16:9",
			wantTotal: 1049088,
			wantDPI:   100.45,
		},
		"rotated": {
			args:      map[string]any{"width": 1920, "height": 1080, "rotate": true},
			wantRatio: "9:16",
			wantTotal: 2073600,
		},
		"no diagonal": {
			args:      map[string]any{"width": 1920, "height": 1080},
			wantRatio: "16:9",
			wantTotal: 2073600,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			out := callTool(t, cs, "compute_screen", tc.args)

			assert.Equal(t, true, out["valid"])
			assert.Equal(t, tc.wantRatio, out["ratioName"])

			pixels, ok := out["pixelCount"].(map[string]any)
			require.True(t, ok)
			assert.InDelta(t, tc.wantTotal, pixels["total"], 0)

			metrics, hasMetrics := out["metrics"].(map[string]any)
			if tc.wantDPI == 0 {
				assert.False(t, hasMetrics)

				return
			}

			require.True(t, hasMetrics)
			assert.InDelta(t, tc.wantDPI, metrics["dpi"], 0.01)
		})
	}
}

func TestComputeScreenFields(t *testing.T) {
	t.Parallel()

	cs := connect(t, mcp.WithUnits(screen.UnitOptions{
		DiagonalUnit: screen.UnitInch,
		SizeUnit:     screen.UnitInch,
	}))

	out := callTool(t, cs, "compute_screen", map[string]any{"width": 1366, "height": 768, "diagonal": 15.6})

	fields, ok := out["fields"].([]any)
	require.True(t, ok)

	got := map[string]any{}
	for _, f := range fields {
		m, ok := f.(map[string]any)
		require.True(t, ok)

		got[m["key"].(string)] = m["value"]
	}

	assert.Equal(t, "100.45", got[screen.KeyDPI])
	assert.Equal(t, "0.2529", got[screen.KeyDotPitch])
	assert.Equal(t, "1049088", got[screen.KeyPixelCount])
	assert.Contains(t, got[screen.KeySize], `"`)
	assert.Contains(t, out["text"], "DPI: 100.45")
}

func TestComputeScreenInvalid(t *testing.T) {
	t.Parallel()

	cs := connect(t)

	tcs := map[string]map[string]any{
		"zero width":     {"width": 0, "height": 1, "diagonal": 1},
		"negative":       {"width": -1, "height": 1},
		"too large":      {"width": 9007199254740992, "height": 1},
		"not a number":   {"width": "wide", "height": "1080"},
		"empty strings":  {"width": "", "height": ""},
		"whitespace":     {"width": "   ", "height": "1080"},
		"negative float": {"width": "1920", "height": -0.5},
	}

	for name, args := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			out := callTool(t, cs, "compute_screen", args)

			assert.Equal(t, false, out["valid"])
			assert.Contains(t, out["message"], "INVALID INPUT")
			assert.NotContains(t, out, "pixelCount")
		})
	}

	callToolError(t, cs, "compute_screen", map[string]any{"width": 1, "height": 1, "sizeUnit": "mm"})
}

func TestNameAspectRatio(t *testing.T) {
	t.Parallel()

	cs := connect(t)

	tcs := map[string]struct {
		args map[string]any
		want string
	}{
		"sides":         {args: map[string]any{"ratio": "16:9"}, want: "16:9"},
		"number":        {args: map[string]any{"ratio": 1.6}, want: "16:10"},
		"string number": {args: map[string]any{"ratio": "1.3333"}, want: "4:3"},
		"square":        {args: map[string]any{"width": 1, "height": 1}, want: "1:1"},
		"ultrawide":     {args: map[string]any{"width": 2560, "height": 1080}, want: "21.3:9"},
		"portrait":      {args: map[string]any{"width": 9, "height": 16}, want: "9:16"},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			out := callTool(t, cs, "name_aspect_ratio", tc.args)
			assert.Equal(t, tc.want, out["name"])
		})
	}
}

func TestNameAspectRatioErrors(t *testing.T) {
	t.Parallel()

	cs := connect(t)

	tcs := map[string]map[string]any{
		"missing":     {},
		"zero ratio":  {"ratio": "0"},
		"zero height": {"width": 16, "height": 0},
		"bad sides":   {"ratio": "16:x"},
	}

	for name, args := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			callToolError(t, cs, "name_aspect_ratio", args)
		})
	}
}

func TestConvertLength(t *testing.T) {
	t.Parallel()

	cs := connect(t)

	tcs := map[string]struct {
		args     map[string]any
		wantUnit string
		wantText string
		want     float64
	}{
		"inches": {
			args:     map[string]any{"value": 27, "from": "in"},
			want:     68.58,
			wantUnit: "cm",
			wantText: "68.58cm",
		},
		"centimeters": {
			args:     map[string]any{"value": "2.54", "from": "cm"},
			want:     1,
			wantUnit: "in",
			wantText: `1"`,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			out := callTool(t, cs, "convert_length", tc.args)

			assert.InDelta(t, tc.want, out["value"], 1e-9)
			assert.Equal(t, tc.wantUnit, out["unit"])
			assert.Equal(t, tc.wantText, out["text"])
		})
	}

	callToolError(t, cs, "convert_length", map[string]any{"value": "abc", "from": "in"})
	callToolError(t, cs, "convert_length", map[string]any{"value": 1, "from": "ft"})
}

func TestSearchPresets(t *testing.T) {
	t.Parallel()

	catalog := preset.NewCatalog(preset.Preset{
		Name:     "Office Monitor",
		Width:    2560,
		Height:   1080,
		Diagonal: 29,
		Tags:     []string{"ultrawide"},
	})
	cs := connect(t, mcp.WithCatalog(catalog))

	out := callTool(t, cs, "search_presets", map[string]any{"query": "steam deck"})

	presets, ok := out["presets"].([]any)
	require.True(t, ok)
	require.NotEmpty(t, presets)

	first, ok := presets[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Steam Deck", first["name"])
	assert.Equal(t, "16:10", first["ratioName"])
	assert.Equal(t, "in", first["unit"])

	out = callTool(t, cs, "search_presets", map[string]any{"query": "office"})
	presets, ok = out["presets"].([]any)
	require.True(t, ok)
	require.NotEmpty(t, presets)

	first, ok = presets[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Office Monitor", first["name"])
	assert.Equal(t, "21.3:9", first["ratioName"])

	out = callTool(t, cs, "search_presets", map[string]any{"limit": 2})
	presets, ok = out["presets"].([]any)
	require.True(t, ok)
	assert.Len(t, presets, 2)
	assert.InDelta(t, float64(catalog.Len()), out["count"], 0)
	assert.Contains(t, out["message"], "showing the first 2")
}
