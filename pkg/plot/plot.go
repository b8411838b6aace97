package plot

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"
	"strings"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"
	"tinygo.org/x/tinyfont/proggy"

	"github.com/edp1096/toy-coulomb/pkg/table"
)

const (
	DefaultColor  = "#3EA6FF"
	DefaultWidth  = 700 // 7in at 100dpi
	DefaultHeight = 500 // 5in at 100dpi

	marginLeft   = 80
	marginRight  = 24
	marginTop    = 44
	marginBottom = 52
	markerRadius = 3
	maxTicks     = 8
)

// Distance in pm is always shown over this fixed range.
var distanceLimits = Limits{Min: 0, Max: 45}

var (
	colorBG     = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	colorGrid   = color.RGBA{R: 0xe0, G: 0xe0, B: 0xe0, A: 0xff}
	colorAxis   = color.RGBA{R: 0x40, G: 0x40, B: 0x40, A: 0xff}
	colorText   = color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}
	ErrBadColor = errors.New("invalid hex color")
	ErrTooSmall = errors.New("plot area too small")
)

type Options struct {
	Title   string
	XColumn string
	Color   string
	Width   int
	Height  int
}

func DefaultOptions(title string) Options {
	return Options{
		Title:   title,
		XColumn: table.ColDistance,
		Color:   DefaultColor,
		Width:   DefaultWidth,
		Height:  DefaultHeight,
	}
}

func (o Options) withDefaults() Options {
	if o.XColumn == "" {
		o.XColumn = table.ColDistance
	}
	if o.Color == "" {
		o.Color = DefaultColor
	}
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	return o
}

// Caption is the window caption: the title, or "F (N) vs <x column>".
func (o Options) Caption() string {
	if o.Title != "" {
		return o.Title
	}
	return table.ColForce + " vs " + o.withDefaults().XColumn
}

// ParseHexColor accepts "#RRGGBB" or "#RGB".
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("%q: %w", s, ErrBadColor)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%q: %w", s, ErrBadColor)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// Render draws force against opts.XColumn as a line with dot markers.
func Render(t *table.Table, opts Options) (*image.RGBA, error) {
	opts = opts.withDefaults()

	series, err := ParseHexColor(opts.Color)
	if err != nil {
		return nil, err
	}
	xs, err := t.Column(opts.XColumn)
	if err != nil {
		return nil, err
	}
	ys, err := t.Column(table.ColForce)
	if err != nil {
		return nil, err
	}

	area := image.Rect(marginLeft, marginTop, opts.Width-marginRight, opts.Height-marginBottom)
	if area.Dx() < 50 || area.Dy() < 50 {
		return nil, fmt.Errorf("%dx%d: %w", opts.Width, opts.Height, ErrTooSmall)
	}

	xl := autoLimits(xs)
	if opts.XColumn == table.ColDistance {
		xl = distanceLimits
	}
	yl := autoLimits(ys)

	c := NewCanvas(opts.Width, opts.Height)
	c.Fill(c.img.Bounds(), colorBG)

	fx := func(v float64) float64 {
		return float64(area.Min.X) + (v-xl.Min)/xl.Span()*float64(area.Dx()-1)
	}
	fy := func(v float64) float64 {
		return float64(area.Max.Y-1) - (v-yl.Min)/yl.Span()*float64(area.Dy()-1)
	}
	px := func(v float64) int { return int(math.Round(fx(v))) }
	py := func(v float64) int { return int(math.Round(fy(v))) }

	drawGrid(c, area, xl, yl, px, py)

	c.SetClip(area)
	prevX, prevY, havePrev := 0.0, 0.0, false
	for i := range xs {
		if !finite(xs[i]) || !finite(ys[i]) {
			havePrev = false
			continue
		}
		x, y := fx(xs[i]), fy(ys[i])
		if !finite(x) || !finite(y) {
			havePrev = false
			continue
		}
		if havePrev {
			if x0, y0, x1, y1, ok := clipSegment(prevX, prevY, x, y, area); ok {
				c.Line(int(math.Round(x0)), int(math.Round(y0)), int(math.Round(x1)), int(math.Round(y1)), series)
			}
		}
		prevX, prevY, havePrev = x, y, true
	}
	for i := range xs {
		if !finite(xs[i]) || !finite(ys[i]) {
			continue
		}
		x, y := fx(xs[i]), fy(ys[i])
		if image.Pt(int(math.Round(clampF(x))), int(math.Round(clampF(y)))).In(inflate(area, markerRadius)) {
			c.Dot(int(math.Round(x)), int(math.Round(y)), markerRadius, series)
		}
	}
	c.SetClip(image.Rectangle{})

	drawLabels(c, area, opts)

	return c.Image(), nil
}

func drawGrid(c *Canvas, area image.Rectangle, xl, yl Limits, px, py func(float64) int) {
	font := &proggy.TinySZ8pt7b

	for _, v := range ticks(xl, maxTicks) {
		x := px(v)
		c.VLine(x, area.Min.Y, area.Max.Y-1, colorGrid)
		c.VLine(x, area.Max.Y, area.Max.Y+4, colorAxis)
		label := tickLabel(v)
		_, w := tinyfont.LineWidth(font, label)
		tinyfont.WriteLine(c, font, int16(x-int(w)/2), int16(area.Max.Y+16), label, colorText)
	}
	for _, v := range ticks(yl, maxTicks) {
		y := py(v)
		c.HLine(area.Min.X, area.Max.X-1, y, colorGrid)
		c.HLine(area.Min.X-4, area.Min.X, y, colorAxis)
		label := tickLabel(v)
		_, w := tinyfont.LineWidth(font, label)
		tinyfont.WriteLine(c, font, int16(area.Min.X-8-int(w)), int16(y+4), label, colorText)
	}

	c.HLine(area.Min.X, area.Max.X-1, area.Min.Y, colorAxis)
	c.HLine(area.Min.X, area.Max.X-1, area.Max.Y-1, colorAxis)
	c.VLine(area.Min.X, area.Min.Y, area.Max.Y-1, colorAxis)
	c.VLine(area.Max.X-1, area.Min.Y, area.Max.Y-1, colorAxis)
}

func drawLabels(c *Canvas, area image.Rectangle, opts Options) {
	font := &freemono.Bold9pt7b

	if opts.Title != "" {
		title := glyphSafe(opts.Title)
		_, w := tinyfont.LineWidth(font, title)
		x := area.Min.X + (area.Dx()-int(w))/2
		tinyfont.WriteLine(c, font, int16(x), int16(area.Min.Y-18), title, colorText)
	}

	xLabel := glyphSafe(opts.XColumn)
	_, w := tinyfont.LineWidth(font, xLabel)
	tinyfont.WriteLine(c, font, int16(area.Min.X+(area.Dx()-int(w))/2), int16(opts.Height-12), xLabel, colorText)

	tinyfont.WriteLine(c, font, 8, int16(area.Min.Y-4), glyphSafe(table.ColForce), colorText)
}

// The bundled fonts only cover 7-bit ASCII.
func glyphSafe(s string) string {
	r := strings.NewReplacer("²", "^2", "°", "o", "á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ñ", "n")
	return r.Replace(s)
}

// clipSegment clips a segment to the pixel rectangle r (Liang-Barsky) so
// rasterising never walks outside the plot area.
func clipSegment(x0, y0, x1, y1 float64, r image.Rectangle) (float64, float64, float64, float64, bool) {
	minX, minY := float64(r.Min.X), float64(r.Min.Y)
	maxX, maxY := float64(r.Max.X-1), float64(r.Max.Y-1)
	dx, dy := x1-x0, y1-y0

	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, x0 - minX},
		{dx, maxX - x0},
		{-dy, y0 - minY},
		{dy, maxY - y0},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return 0, 0, 0, 0, false
			}
			t0 = math.Max(t0, t)
		} else {
			if t < t0 {
				return 0, 0, 0, 0, false
			}
			t1 = math.Min(t1, t)
		}
	}
	return x0 + t0*dx, y0 + t0*dy, x0 + t1*dx, y0 + t1*dy, true
}

func inflate(r image.Rectangle, n int) image.Rectangle {
	return image.Rect(r.Min.X-n, r.Min.Y-n, r.Max.X+n, r.Max.Y+n)
}

// clampF keeps far-off coordinates inside int range before conversion.
func clampF(v float64) float64 {
	return math.Max(-1e6, math.Min(1e6, v))
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
