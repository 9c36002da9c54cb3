package canvas

import "math"

// DefaultSize is the logical canvas edge length used by the renderer.
const DefaultSize = 64

// Canvas is a fixed-size logical pixel grid that all drawing operations
// target. The origin is the bottom-left corner; presentation layers flip Y
// when blitting to a top-down surface.
type Canvas struct {
	width, height int
	pix           []uint32 // row-major ARGB, row 0 = bottom row
}

// New creates a canvas of the given logical size. Dimensions below 1 are
// clamped to 1.
func New(width, height int) *Canvas {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &Canvas{
		width:  width,
		height: height,
		pix:    make([]uint32, width*height),
	}
}

// Width returns the logical width in pixels.
func (c *Canvas) Width() int { return c.width }

// Height returns the logical height in pixels.
func (c *Canvas) Height() int { return c.height }

// Clear fills the whole canvas with the given color.
func (c *Canvas) Clear(col Color) {
	argb := col.ARGB()
	for i := range c.pix {
		c.pix[i] = argb
	}
}

// SetPixel writes a single pixel. Out-of-range coordinates are ignored.
func (c *Canvas) SetPixel(x, y int, col Color) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	c.pix[y*c.width+x] = col.ARGB()
}

// At returns the packed ARGB pixel at (x, y). Out-of-range coordinates
// return 0.
func (c *Canvas) At(x, y int) uint32 {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return 0
	}
	return c.pix[y*c.width+x]
}

// Line draws a segment between two canvas points, inclusive of both
// endpoints. Vertical segments are special-cased; everything else walks
// the x axis and interpolates y, so steep lines render sparse. That
// matches the look of the original rasterizer and is intentional.
func (c *Canvas) Line(x1, y1, x2, y2 int, col Color) {
	switch {
	case x1 == x2:
		startY, endY := y1, y2
		if startY > endY {
			startY, endY = endY, startY
		}
		for y := startY; y <= endY; y++ {
			c.SetPixel(x1, y, col)
		}
	case x1 < x2:
		for x := x1; x <= x2; x++ {
			t := float64(x-x1) / float64(x2-x1)
			y := int(math.Round(float64(y1) + float64(y2-y1)*t))
			c.SetPixel(x, y, col)
		}
	default:
		for x := x2; x <= x1; x++ {
			t := float64(x-x2) / float64(x1-x2)
			y := int(math.Round(float64(y2) + float64(y1-y2)*t))
			c.SetPixel(x, y, col)
		}
	}
}

// Blit scales the canvas into dst (row-major ARGB, w*h pixels) using
// nearest-neighbor sampling. dst row 0 is the TOP row; the canvas Y axis
// is flipped during the copy. The canvas is stretched to fill the whole
// destination, aspect ratio is not preserved.
func (c *Canvas) Blit(dst []uint32, w, h int) {
	if w <= 0 || h <= 0 || len(dst) < w*h {
		return
	}
	for dy := 0; dy < h; dy++ {
		srcY := (h - 1 - dy) * c.height / h
		if srcY >= c.height {
			srcY = c.height - 1
		}
		srcRow := srcY * c.width
		dstRow := dy * w
		for dx := 0; dx < w; dx++ {
			srcX := dx * c.width / w
			if srcX >= c.width {
				srcX = c.width - 1
			}
			dst[dstRow+dx] = c.pix[srcRow+srcX]
		}
	}
}
