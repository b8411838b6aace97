package plot

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edp1096/toy-coulomb/pkg/table"
)

func sampleTable(t *testing.T) *table.Table {
	t.Helper()
	tbl := table.New(0)
	require.NoError(t, table.Record(tbl, 10, 5, 8.1e-7, 3.6e-7, 2.0e-7, 1.3e-7, 0.9e-7, 0.66e-7, 0.5e-7))
	return tbl
}

func countColor(img *image.RGBA, c color.RGBA) int {
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y) == c {
				n++
			}
		}
	}
	return n
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"#3EA6FF", color.RGBA{R: 0x3e, G: 0xa6, B: 0xff, A: 0xff}, false},
		{"ff0000", color.RGBA{R: 0xff, A: 0xff}, false},
		{"#0f0", color.RGBA{G: 0xff, A: 0xff}, false},
		{"#12345", color.RGBA{}, true},
		{"#zzzzzz", color.RGBA{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHexColor(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrBadColor)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderDefault(t *testing.T) {
	img, err := Render(sampleTable(t), DefaultOptions("F vs r"))
	require.NoError(t, err)

	assert.Equal(t, image.Rect(0, 0, DefaultWidth, DefaultHeight), img.Bounds())
	assert.Equal(t, colorBG, img.RGBAAt(1, 1))

	series, err := ParseHexColor(DefaultColor)
	require.NoError(t, err)
	assert.Greater(t, countColor(img, series), 7*9)
	assert.Greater(t, countColor(img, colorText), 0)
}

func TestRenderSeriesInsidePlotArea(t *testing.T) {
	opts := DefaultOptions("")
	opts.Color = "#FF0000"
	img, err := Render(sampleTable(t), opts)
	require.NoError(t, err)

	red := color.RGBA{R: 0xff, A: 0xff}
	area := image.Rect(marginLeft, marginTop, DefaultWidth-marginRight, DefaultHeight-marginBottom)
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y) == red {
				require.True(t, image.Pt(x, y).In(area), "series pixel outside plot area at %d,%d", x, y)
			}
		}
	}
}

func TestRenderInverseSquareAxis(t *testing.T) {
	opts := DefaultOptions("F vs 1/r²")
	opts.XColumn = table.ColInverseSq
	opts.Width, opts.Height = 400, 300

	img, err := Render(sampleTable(t), opts)
	require.NoError(t, err)
	assert.Equal(t, 400, img.Bounds().Dx())
	assert.Equal(t, 300, img.Bounds().Dy())
}

func TestRenderEmptyTable(t *testing.T) {
	img, err := Render(table.New(0), DefaultOptions("empty"))
	require.NoError(t, err)
	assert.Greater(t, countColor(img, colorAxis), 0)
}

func TestRenderErrors(t *testing.T) {
	tbl := sampleTable(t)

	opts := DefaultOptions("")
	opts.XColumn = "q (C)"
	_, err := Render(tbl, opts)
	assert.ErrorIs(t, err, table.ErrUnknownColumn)

	opts = DefaultOptions("")
	opts.Color = "blue"
	_, err = Render(tbl, opts)
	assert.ErrorIs(t, err, ErrBadColor)

	opts = DefaultOptions("")
	opts.Width, opts.Height = 100, 100
	_, err = Render(tbl, opts)
	assert.ErrorIs(t, err, ErrTooSmall)
}

func TestOptionsDefaults(t *testing.T) {
	o := Options{}.withDefaults()
	assert.Equal(t, table.ColDistance, o.XColumn)
	assert.Equal(t, DefaultColor, o.Color)
	assert.Equal(t, DefaultWidth, o.Width)
	assert.Equal(t, DefaultHeight, o.Height)
}

func TestGlyphSafe(t *testing.T) {
	assert.Equal(t, "1/r^2", glyphSafe("1/r²"))
	assert.Equal(t, "F (N)", glyphSafe("F (N)"))
}

func TestCaption(t *testing.T) {
	assert.Equal(t, "F (N) vs r (pm)", Options{}.Caption())
	assert.Equal(t, "F (N) vs 1/r²", Options{XColumn: table.ColInverseSq}.Caption())
	assert.Equal(t, "run 1", Options{Title: "run 1", XColumn: table.ColInverseSq}.Caption())
}

// assertSingleRunPerColumn requires series pixels in each column to form one
// contiguous vertical run and returns how many columns were painted.
func assertSingleRunPerColumn(t *testing.T, img *image.RGBA, c color.RGBA) int {
	t.Helper()
	b := img.Bounds()
	painted := 0
	for x := b.Min.X; x < b.Max.X; x++ {
		first, last, n := -1, -1, 0
		for y := b.Min.Y; y < b.Max.Y; y++ {
			if img.RGBAAt(x, y) == c {
				if first < 0 {
					first = y
				}
				last = y
				n++
			}
		}
		if n > 0 {
			painted++
			require.Equal(t, last-first+1, n, "column %d has disjoint series pixels (rows %d..%d)", x, first, last)
		}
	}
	return painted
}

func TestRenderDistanceBeyondLimits(t *testing.T) {
	for _, far := range []float64{8000, 5e6, 1e300} {
		tbl := table.New(0)
		require.NoError(t, table.RecordCharges(tbl,
			table.ChargeRecord{Force: 1e-6, Distance: 1},
			table.ChargeRecord{Force: 0, Distance: far},
		))

		opts := DefaultOptions("")
		opts.Color = "#FF0000"
		img, err := Render(tbl, opts)
		require.NoError(t, err)

		red := color.RGBA{R: 0xff, A: 0xff}
		assert.Greater(t, assertSingleRunPerColumn(t, img, red), 0)

		// the segment leaves through the right edge of the plot area
		edge := DefaultWidth - marginRight - 1
		hit := false
		for y := marginTop; y < DefaultHeight-marginBottom; y++ {
			hit = hit || img.RGBAAt(edge, y) == red
		}
		assert.True(t, hit, "distance %g: no series pixel on the right edge", far)
	}
}

func TestClipSegment(t *testing.T) {
	r := image.Rect(0, 0, 101, 101) // pixels 0..100

	x0, y0, x1, y1, ok := clipSegment(10, 10, 20, 20, r)
	require.True(t, ok)
	assert.Equal(t, []float64{10, 10, 20, 20}, []float64{x0, y0, x1, y1})

	x0, y0, x1, y1, ok = clipSegment(50, 50, 1050, 50, r)
	require.True(t, ok)
	assert.InDelta(t, 50, x0, 1e-9)
	assert.InDelta(t, 100, x1, 1e-9)
	assert.InDelta(t, 50, y0, 1e-9)
	assert.InDelta(t, 50, y1, 1e-9)

	x0, y0, x1, y1, ok = clipSegment(-100, -100, 200, 200, r)
	require.True(t, ok)
	assert.InDelta(t, 0, x0, 1e-9)
	assert.InDelta(t, 0, y0, 1e-9)
	assert.InDelta(t, 100, x1, 1e-9)
	assert.InDelta(t, 100, y1, 1e-9)

	_, _, _, _, ok = clipSegment(200, 0, 300, 100, r)
	assert.False(t, ok)
	_, _, _, _, ok = clipSegment(-5, -5, -1, 200, r)
	assert.False(t, ok)
}
