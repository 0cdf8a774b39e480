package screen_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/aspect/pkg/screen"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		width, height string
		opts          []screen.Opt
		want          screen.PixelCount
		wantOK        bool
		wantDiagonal  bool
	}{
		"plain integers": {
			width: "1920", height: "1080",
			want:   screen.PixelCount{Width: 1920, Height: 1080, Total: 2073600},
			wantOK: true,
		},
		"unit suffix is ignored": {
			width: "1920px", height: "1080px",
			want:   screen.PixelCount{Width: 1920, Height: 1080, Total: 2073600},
			wantOK: true,
		},
		"leading whitespace and plus sign": {
			width: "  +800", height: "\t600",
			want:   screen.PixelCount{Width: 800, Height: 600, Total: 480000},
			wantOK: true,
		},
		"fraction is truncated": {
			width: "1920.9", height: "1080.5",
			want:   screen.PixelCount{Width: 1920, Height: 1080, Total: 2073600},
			wantOK: true,
		},
		"exponent is not read": {
			width: "1e3", height: "2",
			want:   screen.PixelCount{Width: 1, Height: 2, Total: 2},
			wantOK: true,
		},
		"with diagonal": {
			width: "1366", height: "768",
			opts:         []screen.Opt{screen.WithDiagonalString("15.6")},
			want:         screen.PixelCount{Width: 1366, Height: 768, Total: 1049088},
			wantOK:       true,
			wantDiagonal: true,
		},
		"diagonal with suffix": {
			width: "1366", height: "768",
			opts:         []screen.Opt{screen.WithDiagonalString("15.6in")},
			want:         screen.PixelCount{Width: 1366, Height: 768, Total: 1049088},
			wantOK:       true,
			wantDiagonal: true,
		},
		"empty diagonal": {
			width: "1366", height: "768",
			opts:   []screen.Opt{screen.WithDiagonalString("")},
			want:   screen.PixelCount{Width: 1366, Height: 768, Total: 1049088},
			wantOK: true,
		},
		"non-numeric diagonal": {
			width: "1366", height: "768",
			opts:   []screen.Opt{screen.WithDiagonalString("abc")},
			want:   screen.PixelCount{Width: 1366, Height: 768, Total: 1049088},
			wantOK: true,
		},
		"infinite diagonal": {
			width: "1366", height: "768",
			opts:   []screen.Opt{screen.WithDiagonalString("Infinity")},
			want:   screen.PixelCount{Width: 1366, Height: 768, Total: 1049088},
			wantOK: true,
		},
		"zero diagonal": {
			width: "1366", height: "768",
			opts:   []screen.Opt{screen.WithDiagonalString("0")},
			want:   screen.PixelCount{Width: 1366, Height: 768, Total: 1049088},
			wantOK: true,
		},
		"empty width": {
			width: "", height: "1080",
		},
		"letters": {
			width: "abc", height: "1080",
		},
		"hex is not read": {
			width: "0x10", height: "1080",
		},
		"zero": {
			width: "0", height: "1",
		},
		"negative": {
			width: "-1", height: "1",
		},
		"negative zero": {
			width: "1", height: "-0",
		},
		"above max safe integer": {
			width: "9007199254740992", height: "1",
		},
		"max safe integer": {
			width: "9007199254740991", height: "1",
			want:   screen.PixelCount{Width: 9007199254740991, Height: 1, Total: 9007199254740991},
			wantOK: true,
		},
		"total above max int64": {
			width: "4294967296", height: "4294967296",
			want:   screen.PixelCount{Width: 4294967296, Height: 4294967296, Total: 18446744073709551616},
			wantOK: true,
		},
		"total just above max int64": {
			width: "3037000500", height: "3037000500",
			want:   screen.PixelCount{Width: 3037000500, Height: 3037000500, Total: 3037000500.0 * 3037000500.0},
			wantOK: true,
		},
		"max safe integer squared": {
			width: "9007199254740991", height: "9007199254740991",
			want: screen.PixelCount{
				Width:  9007199254740991,
				Height: 9007199254740991,
				Total:  9007199254740991.0 * 9007199254740991.0,
			},
			wantOK: true,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			info, ok := screen.Parse(tc.width, tc.height, tc.opts...)
			require.Equal(t, tc.wantOK, ok)
			if !ok {
				return
			}

			assert.Equal(t, tc.want, info.PixelCount())
			assert.Equal(t, tc.wantDiagonal, info.HasDiagonal())
		})
	}
}

func TestFromNumbers(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		width, height float64
		want          screen.PixelCount
		wantOK        bool
	}{
		"integers": {
			width: 1920, height: 1080,
			want:   screen.PixelCount{Width: 1920, Height: 1080, Total: 2073600},
			wantOK: true,
		},
		"fractions are floored": {
			width: 1920.99, height: 1080.01,
			want:   screen.PixelCount{Width: 1920, Height: 1080, Total: 2073600},
			wantOK: true,
		},
		"below one floors to zero": {
			width: 0.5, height: 1,
		},
		"NaN": {
			width: math.NaN(), height: 1,
		},
		"infinity": {
			width: math.Inf(1), height: 1,
		},
		"negative fraction": {
			width: 1, height: -0.5,
		},
		"2^53": {
			width: 1 << 53, height: 1,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			info, ok := screen.FromNumbers(tc.width, tc.height)
			require.Equal(t, tc.wantOK, ok)
			if ok {
				assert.Equal(t, tc.want, info.PixelCount())
			}
		})
	}
}

func TestMetrics(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		width, height  float64
		diagonal       float64
		wantDPI        float64
		wantDotPitch   float64
		wantSizeWidth  float64
		wantSizeHeight float64
		wantTotal      float64
	}{
		"laptop": {
			width: 1366, height: 768, diagonal: 15.6,
			wantDPI: 100.45, wantDotPitch: 0.2529,
			wantSizeWidth: 34.54, wantSizeHeight: 19.42,
			wantTotal: 1049088,
		},
		"monitor": {
			width: 2560, height: 1440, diagonal: 32,
			wantDPI: 91.79, wantDotPitch: 0.2767,
			wantSizeWidth: 70.84, wantSizeHeight: 39.85,
			wantTotal: 3686400,
		},
		"television": {
			width: 3840, height: 2160, diagonal: 43,
			wantDPI: 102.46, wantDotPitch: 0.2479,
			wantSizeWidth: 95.19, wantSizeHeight: 53.55,
			wantTotal: 8294400,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			info, ok := screen.FromNumbers(tc.width, tc.height, screen.WithDiagonal(tc.diagonal))
			require.True(t, ok)

			m, ok := info.Metrics()
			require.True(t, ok)

			assert.InDelta(t, tc.diagonal, m.Diagonal, 1e-12)
			assert.InDelta(t, tc.wantDPI, m.DPI, 0.005)
			assert.InDelta(t, tc.wantDotPitch, m.DotPitch, 0.00005)
			assert.InDelta(t, tc.wantSizeWidth, m.Size.Width, 0.005)
			assert.InDelta(t, tc.wantSizeHeight, m.Size.Height, 0.005)
			assert.InDelta(t, tc.wantTotal, info.PixelCount().Total, 0)

			// The derived values are consistent with each other.
			w, h := tc.width, tc.height
			assert.InDelta(t, math.Sqrt(w*w+h*h)/tc.diagonal, m.DPI, 1e-9)
			assert.InDelta(t, 25.4/m.DPI, m.DotPitch, 1e-12)
			assert.InDelta(t, w*m.DotPitch/10, m.Size.Width, 1e-9)
			assert.InDelta(t, h*m.DotPitch/10, m.Size.Height, 1e-9)
		})
	}
}

func TestDiagonalUnit(t *testing.T) {
	t.Parallel()

	inches, ok := screen.Parse("1366", "768", screen.WithDiagonalString("15.6"))
	require.True(t, ok)

	cm, ok := screen.Parse("1366", "768",
		screen.WithDiagonalString("39.624"),
		screen.WithDiagonalUnit(screen.UnitCentimeter),
	)
	require.True(t, ok)

	mi, _ := inches.Metrics()
	mc, _ := cm.Metrics()

	assert.InDelta(t, mi.Diagonal, mc.Diagonal, 1e-9)
	assert.InDelta(t, mi.DPI, mc.DPI, 1e-9)

	// Option order does not matter.
	cm2, ok := screen.Parse("1366", "768",
		screen.WithDiagonalUnit(screen.UnitCentimeter),
		screen.WithDiagonalString("39.624"),
	)
	require.True(t, ok)

	mc2, _ := cm2.Metrics()
	assert.Equal(t, mc, mc2)
}

func TestWithoutDiagonal(t *testing.T) {
	t.Parallel()

	info, ok := screen.FromNumbers(1920, 1080)
	require.True(t, ok)

	_, hasMetrics := info.Metrics()
	assert.False(t, hasMetrics)
	assert.InDelta(t, 1.7778, info.Ratio(), 0.0001)
	assert.InDelta(t, 2073600, info.PixelCount().Total, 0)

	withDiagonal, ok := screen.FromNumbers(1920, 1080, screen.WithDiagonal(24))
	require.True(t, ok)

	assert.Equal(t, info.PixelCount(), withDiagonal.PixelCount())
	assert.Equal(t, info.Ratio(), withDiagonal.Ratio()) //nolint:testifylint // Must be exact.
}

func TestNonFiniteDiagonalMetrics(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		opts []screen.Opt
	}{
		"subnormal diagonal": {
			opts: []screen.Opt{screen.WithDiagonal(5e-324)},
		},
		"subnormal diagonal string": {
			opts: []screen.Opt{screen.WithDiagonalString("5e-324")},
		},
		"largest diagonal": {
			opts: []screen.Opt{screen.WithDiagonal(math.MaxFloat64)},
		},
		"subnormal diagonal in centimeters": {
			opts: []screen.Opt{
				screen.WithDiagonal(5e-324),
				screen.WithDiagonalUnit(screen.UnitCentimeter),
			},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			info, ok := screen.FromNumbers(1920, 1080, tc.opts...)
			require.True(t, ok)

			assert.False(t, info.HasDiagonal())
			assert.False(t, info.Rotated().HasDiagonal())

			_, err := json.Marshal(info)
			require.NoError(t, err)

			_, ok = info.Fields(screen.DefaultUnitOptions()).Get(screen.KeyDPI)
			assert.False(t, ok)
		})
	}
}

func TestRatioIsExact(t *testing.T) {
	t.Parallel()

	for _, dims := range [][2]float64{{1, 1}, {1920, 1080}, {1080, 1920}, {7, 3}, {9007199254740991, 3}} {
		info, ok := screen.FromNumbers(dims[0], dims[1])
		require.True(t, ok)

		pc := info.PixelCount()
		assert.InDelta(t, float64(pc.Width)*float64(pc.Height), pc.Total, 0)
		assert.Equal(t, float64(pc.Width)/float64(pc.Height), info.Ratio()) //nolint:testifylint // Must be exact.
	}
}

func TestRotated(t *testing.T) {
	t.Parallel()

	info, ok := screen.FromNumbers(1366, 768, screen.WithDiagonal(15.6))
	require.True(t, ok)

	rotated := info.Rotated()

	assert.Equal(t, screen.PixelCount{Width: 768, Height: 1366, Total: 1049088}, rotated.PixelCount())
	assert.InDelta(t, 1/info.Ratio(), rotated.Ratio(), 1e-15)
	assert.Equal(t, "9:16", rotated.RatioName())

	m, _ := info.Metrics()
	rm, ok := rotated.Metrics()
	require.True(t, ok)

	assert.InDelta(t, m.Diagonal, rm.Diagonal, 1e-12)
	assert.InDelta(t, m.DPI, rm.DPI, 1e-12)
	assert.InDelta(t, m.DotPitch, rm.DotPitch, 1e-12)
	assert.InDelta(t, m.Size.Width, rm.Size.Height, 1e-9)
	assert.InDelta(t, m.Size.Height, rm.Size.Width, 1e-9)

	// Rotating twice gives the original screen back.
	assert.Equal(t, info.PixelCount(), rotated.Rotated().PixelCount())

	plain, ok := screen.FromNumbers(1920, 1080)
	require.True(t, ok)
	assert.False(t, plain.Rotated().HasDiagonal())
}

func TestMarshalJSON(t *testing.T) {
	t.Parallel()

	info, ok := screen.FromNumbers(1920, 1080)
	require.True(t, ok)

	b, err := json.Marshal(info)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(b, &got))

	assert.Equal(t, "16:9", got["ratioName"])
	assert.NotContains(t, got, "metrics")

	info, ok = screen.FromNumbers(1920, 1080, screen.WithDiagonal(24))
	require.True(t, ok)

	b, err = json.Marshal(info)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Contains(t, got, "metrics")
}
