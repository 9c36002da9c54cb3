package surface

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/wilbur182/salmon/internal/canvas"
)

// ScreenshotScale multiplies the logical canvas size for PNG exports. Both
// the interactive screenshot key and the headless -screenshot path use it,
// so the two outputs stay the same size.
const ScreenshotScale = 8

// ToImage blits the canvas into a w x h RGBA image, top row first.
func ToImage(c *canvas.Canvas, w, h int) *image.RGBA {
	if w <= 0 {
		w = c.Width()
	}
	if h <= 0 {
		h = c.Height()
	}

	buf := make([]uint32, w*h)
	c.Blit(buf, w, h)

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			px := buf[y*w+x]
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(px >> 16),
				G: uint8(px >> 8),
				B: uint8(px),
				A: uint8(px >> 24),
			})
		}
	}
	return img
}

// WritePNG renders the canvas at w x h and writes it to path.
func WritePNG(c *canvas.Canvas, w, h int, path string) error {
	img := ToImage(c, w, h)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create screenshot: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode screenshot: %w", err)
	}
	return f.Close()
}
