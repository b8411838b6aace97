package plot

import (
	"image"
	"image/color"
	"image/draw"

	"tinygo.org/x/drivers"
)

// Canvas adapts an RGBA image to drivers.Displayer so tinyfont can write on it.
type Canvas struct {
	img  *image.RGBA
	clip image.Rectangle
}

var _ drivers.Displayer = (*Canvas)(nil)

func NewCanvas(width, height int) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	return &Canvas{img: img, clip: img.Bounds()}
}

func (c *Canvas) Size() (x, y int16) {
	b := c.img.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

func (c *Canvas) SetPixel(x, y int16, col color.RGBA) {
	c.set(int(x), int(y), col)
}

// set checks bounds on int coordinates, so values beyond int16 never wrap.
func (c *Canvas) set(x, y int, col color.RGBA) {
	if !image.Pt(x, y).In(c.clip) {
		return
	}
	c.img.SetRGBA(x, y, col)
}

func (c *Canvas) Display() error {
	return nil
}

func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// SetClip limits drawing to r; an empty rectangle resets to the full image.
func (c *Canvas) SetClip(r image.Rectangle) {
	if r.Empty() {
		c.clip = c.img.Bounds()
		return
	}
	c.clip = r.Intersect(c.img.Bounds())
}

func (c *Canvas) Fill(r image.Rectangle, col color.RGBA) {
	draw.Draw(c.img, r.Intersect(c.clip), &image.Uniform{C: col}, image.Point{}, draw.Src)
}

func (c *Canvas) HLine(x0, x1, y int, col color.RGBA) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	for x := x0; x <= x1; x++ {
		c.set(x, y, col)
	}
}

func (c *Canvas) VLine(x, y0, y1 int, col color.RGBA) {
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	for y := y0; y <= y1; y++ {
		c.set(x, y, col)
	}
}

// Line draws a segment with Bresenham's algorithm.
func (c *Canvas) Line(x0, y0, x1, y1 int, col color.RGBA) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		c.set(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// Dot draws a filled disc of radius r.
func (c *Canvas) Dot(cx, cy, r int, col color.RGBA) {
	for y := -r; y <= r; y++ {
		for x := -r; x <= r; x++ {
			if x*x+y*y <= r*r {
				c.set(cx+x, cy+y, col)
			}
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
