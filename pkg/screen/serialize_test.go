package screen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/aspect/pkg/screen"
)

func TestFields(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		width, height string
		opts          []screen.Opt
		units         screen.UnitOptions
		want          string
	}{
		"without diagonal": {
			width: "1920", height: "1080",
			units: screen.DefaultUnitOptions(),
			want: "Screen: 1920 x 1080\n" +
				"AspectRatio: 1.78:1 (16:9)\n" +
				"PixelCount: 2073600",
		},
		"default units": {
			width: "1366", height: "768",
			opts:  []screen.Opt{screen.WithDiagonal(15.6)},
			units: screen.DefaultUnitOptions(),
			want: "Screen: 1366 x 768\n" +
				"Diagonal: 15.6\"\n" +
				"AspectRatio: 1.78:1 (16:9)\n" +
				"DPI: 100.45\n" +
				"DotPitch: 0.2529\n" +
				"Size: 34.54 cm x 19.42 cm\n" +
				"PixelCount: 1049088",
		},
		"zero value units use defaults": {
			width: "1366", height: "768",
			opts: []screen.Opt{screen.WithDiagonal(15.6)},
			want: "Screen: 1366 x 768\n" +
				"Diagonal: 15.6\"\n" +
				"AspectRatio: 1.78:1 (16:9)\n" +
				"DPI: 100.45\n" +
				"DotPitch: 0.2529\n" +
				"Size: 34.54 cm x 19.42 cm\n" +
				"PixelCount: 1049088",
		},
		"inch size": {
			width: "2560", height: "1440",
			opts:  []screen.Opt{screen.WithDiagonal(32)},
			units: screen.UnitOptions{DiagonalUnit: screen.UnitInch, SizeUnit: screen.UnitInch},
			want: "Screen: 2560 x 1440\n" +
				"Diagonal: 32\"\n" +
				"AspectRatio: 1.78:1 (16:9)\n" +
				"DPI: 91.79\n" +
				"DotPitch: 0.2767\n" +
				"Size: 27.89\" x 15.69\"\n" +
				"PixelCount: 3686400",
		},
		"centimeter diagonal": {
			width: "2560", height: "1440",
			opts:  []screen.Opt{screen.WithDiagonal(10)},
			units: screen.UnitOptions{DiagonalUnit: screen.UnitCentimeter, SizeUnit: screen.UnitCentimeter},
			want: "Screen: 2560 x 1440\n" +
				"Diagonal: 25.4 cm\n" +
				"AspectRatio: 1.78:1 (16:9)\n" +
				"DPI: 293.72\n" +
				"DotPitch: 0.0865\n" +
				"Size: 22.14 cm x 12.45 cm\n" +
				"PixelCount: 3686400",
		},
		"portrait": {
			width: "1080", height: "1920",
			units: screen.DefaultUnitOptions(),
			want: "Screen: 1080 x 1920\n" +
				"AspectRatio: 0.56:1 (9:16)\n" +
				"PixelCount: 2073600",
		},
		"ratio tie rounds up": {
			width: "1152", height: "1024",
			units: screen.DefaultUnitOptions(),
			want: "Screen: 1152 x 1024\n" +
				"AspectRatio: 1.13:1 (10.1:9)\n" +
				"PixelCount: 1179648",
		},
		"portrait ratio tie rounds up": {
			width: "1000", height: "1600",
			units: screen.DefaultUnitOptions(),
			want: "Screen: 1000 x 1600\n" +
				"AspectRatio: 0.63:1 (10:16)\n" +
				"PixelCount: 1600000",
		},
		"total above max int64": {
			width: "4294967296", height: "4294967296",
			units: screen.DefaultUnitOptions(),
			want: "Screen: 4294967296 x 4294967296\n" +
				"AspectRatio: 1.00:1 (1:1)\n" +
				"PixelCount: 18446744073709552000",
		},
		"total in exponent form": {
			width: "9007199254740991", height: "9007199254740991",
			units: screen.DefaultUnitOptions(),
			want: "Screen: 9007199254740991 x 9007199254740991\n" +
				"AspectRatio: 1.00:1 (1:1)\n" +
				"PixelCount: 8.112963841460666e+31",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			info, ok := screen.Parse(tc.width, tc.height, tc.opts...)
			require.True(t, ok)

			assert.Equal(t, tc.want, info.Fields(tc.units).String())
		})
	}
}

func TestFieldsOrder(t *testing.T) {
	t.Parallel()

	info, ok := screen.FromNumbers(1366, 768, screen.WithDiagonal(15.6))
	require.True(t, ok)

	var keys []string
	for _, f := range info.Fields(screen.DefaultUnitOptions()) {
		keys = append(keys, f.Key)
	}

	assert.Equal(t, []string{
		screen.KeyScreen,
		screen.KeyDiagonal,
		screen.KeyAspectRatio,
		screen.KeyDPI,
		screen.KeyDotPitch,
		screen.KeySize,
		screen.KeyPixelCount,
	}, keys)

	dpi, ok := info.Fields(screen.DefaultUnitOptions()).Get(screen.KeyDPI)
	require.True(t, ok)
	assert.Equal(t, "100.45", dpi)

	plain, ok := screen.FromNumbers(1366, 768)
	require.True(t, ok)

	_, ok = plain.Fields(screen.DefaultUnitOptions()).Get(screen.KeyDPI)
	assert.False(t, ok)
}

func TestReport(t *testing.T) {
	t.Parallel()

	info, ok := screen.FromNumbers(1366, 768, screen.WithDiagonal(15.6))
	require.True(t, ok)

	r := screen.NewReport(info, screen.UnitOptions{})

	assert.Equal(t, screen.DefaultUnitOptions(), r.Units())
	assert.Equal(t, info.Fields(screen.DefaultUnitOptions()), r.Fields())
	assert.Equal(t, r.String(), r.String())

	// Mutating the returned fields does not affect the report.
	fs := r.Fields()
	fs[0].Value = "changed"
	assert.Equal(t, "1366 x 768", r.Fields()[0].Value)
}

func TestFormatList(t *testing.T) {
	t.Parallel()

	a, ok := screen.FromNumbers(1920, 1080)
	require.True(t, ok)

	b, ok := screen.FromNumbers(1366, 768, screen.WithDiagonal(15.6))
	require.True(t, ok)

	got := screen.FormatList(
		screen.NewReport(a, screen.DefaultUnitOptions()),
		screen.NewReport(b, screen.UnitOptions{DiagonalUnit: screen.UnitInch, SizeUnit: screen.UnitInch}),
	)

	want := "- Screen: 1920 x 1080\n" +
		"  AspectRatio: 1.78:1 (16:9)\n" +
		"  PixelCount: 2073600\n" +
		"\n" +
		"- Screen: 1366 x 768\n" +
		"  Diagonal: 15.6\"\n" +
		"  AspectRatio: 1.78:1 (16:9)\n" +
		"  DPI: 100.45\n" +
		"  DotPitch: 0.2529\n" +
		"  Size: 13.60\" x 7.65\"\n" +
		"  PixelCount: 1049088\n"

	assert.Equal(t, want, got)
	assert.Equal(t, "\n", screen.FormatList())
}
