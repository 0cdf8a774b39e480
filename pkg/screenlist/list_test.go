package screenlist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/aspect/pkg/screen"
	"github.com/macropower/aspect/pkg/screenlist"
)

func TestListAdd(t *testing.T) {
	t.Parallel()

	l := screenlist.New()

	first := l.Add(screenlist.Entry{Width: "1920", Height: "1080"})
	second := l.Add(screenlist.Entry{Width: "1366", Height: "768", SizeUnit: screen.UnitInch})

	assert.Equal(t, screenlist.ID(0), first)
	assert.Equal(t, screenlist.ID(1), second)
	assert.Equal(t, []screenlist.ID{0, 1}, l.IDs())

	e, ok := l.Get(second)
	require.True(t, ok)
	assert.Equal(t, second, e.ID)
	assert.Equal(t, screen.UnitInch, e.DiagonalUnit)
	assert.Equal(t, screen.UnitInch, e.SizeUnit)

	e, ok = l.Get(first)
	require.True(t, ok)
	assert.Equal(t, screen.UnitCentimeter, e.SizeUnit)
}

func TestListDefaultUnits(t *testing.T) {
	t.Parallel()

	l := screenlist.New(screenlist.WithDefaultUnits(screen.UnitOptions{
		DiagonalUnit: screen.UnitCentimeter,
		SizeUnit:     screen.UnitInch,
	}))

	e, ok := l.Get(l.Add(screenlist.Entry{}))
	require.True(t, ok)
	assert.Equal(t, screen.UnitCentimeter, e.DiagonalUnit)
	assert.Equal(t, screen.UnitInch, e.SizeUnit)
}

func TestListUpdate(t *testing.T) {
	t.Parallel()

	l := screenlist.New()
	id := l.Add(screenlist.Entry{Width: "1920", Height: "1080"})

	ok := l.Update(id, screenlist.SetDiagonal("24"), screenlist.SetName("desk"))
	require.True(t, ok)

	e, _ := l.Get(id)
	assert.Equal(t, "24", e.Diagonal)
	assert.Equal(t, "desk", e.Name)
	assert.Equal(t, "1920", e.Width)

	// Unknown and removed IDs are ignored.
	assert.False(t, l.Update(42, screenlist.SetWidth("1")))

	require.True(t, l.Remove(id))
	assert.False(t, l.Update(id, screenlist.SetWidth("1")))
	assert.Equal(t, 0, l.Len())
}

func TestListRemove(t *testing.T) {
	t.Parallel()

	l := screenlist.New()
	a := l.Add(screenlist.Entry{Width: "1"})
	b := l.Add(screenlist.Entry{Width: "2"})
	c := l.Add(screenlist.Entry{Width: "3"})

	require.True(t, l.Remove(b))
	assert.False(t, l.Remove(b))
	assert.Equal(t, []screenlist.ID{a, c}, l.IDs())

	// IDs are not reused.
	d := l.Add(screenlist.Entry{Width: "4"})
	assert.Equal(t, screenlist.ID(3), d)

	var widths []string
	for _, e := range l.Entries() {
		widths = append(widths, e.Width)
	}

	assert.Equal(t, []string{"1", "3", "4"}, widths)
}

func TestListReplace(t *testing.T) {
	t.Parallel()

	l := screenlist.New()
	a := l.Add(screenlist.Entry{Width: "1"})
	b := l.Add(screenlist.Entry{Width: "2"})

	next := l.Map()
	next[a] = screenlist.Entry{Width: "10"}
	next[b] = screenlist.Entry{Width: "20"}

	require.True(t, l.Replace(next))

	e, _ := l.Get(a)
	assert.Equal(t, "10", e.Width)
	assert.Equal(t, a, e.ID)

	// Count mismatch is rejected.
	assert.False(t, l.Replace(map[screenlist.ID]screenlist.Entry{a: {Width: "x"}}))

	// Unknown IDs are rejected.
	assert.False(t, l.Replace(map[screenlist.ID]screenlist.Entry{a: {}, 7: {}}))

	e, _ = l.Get(a)
	assert.Equal(t, "10", e.Width)
	assert.Equal(t, []screenlist.ID{a, b}, l.IDs())
}

func TestListText(t *testing.T) {
	t.Parallel()

	l := screenlist.New()
	l.Add(screenlist.Entry{Width: "1920", Height: "1080"})
	l.Add(screenlist.Entry{Width: "", Height: "1080"})
	l.Add(screenlist.Entry{
		Width: "1366", Height: "768", Diagonal: "15.6",
		DiagonalUnit: screen.UnitInch, SizeUnit: screen.UnitInch,
	})

	assert.Len(t, l.Reports(), 2)
	assert.Equal(t, "- Screen: 1920 x 1080\n"+
		"  AspectRatio: 1.78:1 (16:9)\n"+
		"  PixelCount: 2073600\n"+
		"\n"+
		"- Screen: 1366 x 768\n"+
		"  Diagonal: 15.6\"\n"+
		"  AspectRatio: 1.78:1 (16:9)\n"+
		"  DPI: 100.45\n"+
		"  DotPitch: 0.2529\n"+
		"  Size: 13.60\" x 7.65\"\n"+
		"  PixelCount: 1049088\n", l.Text())
}

func TestListUpdateAll(t *testing.T) {
	t.Parallel()

	l := screenlist.New()
	l.Add(screenlist.Entry{Width: "1366", Height: "768", Diagonal: "15.6"})
	l.Add(screenlist.Entry{Width: "1920", Height: "1080"})

	l.UpdateAll(screenlist.ConvertDiagonal(screen.UnitCentimeter))

	entries := l.Entries()
	assert.Equal(t, "39.624", entries[0].Diagonal)
	assert.Equal(t, screen.UnitCentimeter, entries[0].DiagonalUnit)
	assert.Empty(t, entries[1].Diagonal)
	assert.Equal(t, screen.UnitCentimeter, entries[1].DiagonalUnit)
}
