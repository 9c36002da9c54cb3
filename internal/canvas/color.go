package canvas

import "fmt"

// Color is an RGBA color with float channels in the 0.0–1.0 range.
// Channels outside that range are clamped when packing.
type Color struct {
	R, G, B, A float64
}

// Named colors used by the built-in scenes.
var (
	Black  = Color{0, 0, 0, 1}
	White  = Color{1, 1, 1, 1}
	Pink   = Color{1, 0, 1, 1}
	Blue   = Color{0, 0, 1, 1}
	Green  = Color{0, 1, 0, 1}
	Yellow = Color{1, 1, 0, 1}
	Red    = Color{1, 0, 0, 1}
)

// ARGB packs the color into a 32-bit 0xAARRGGBB pixel.
func (c Color) ARGB() uint32 {
	a := uint32(clamp01(c.A) * 255)
	r := uint32(clamp01(c.R) * 255)
	g := uint32(clamp01(c.G) * 255)
	b := uint32(clamp01(c.B) * 255)
	return a<<24 | r<<16 | g<<8 | b
}

// Hex returns the color as a #RRGGBB string, ignoring alpha.
// Lipgloss styles take colors in this form.
func (c Color) Hex() string {
	argb := c.ARGB()
	return fmt.Sprintf("#%06x", argb&0x00ffffff)
}

// HexARGB formats a packed 0xAARRGGBB pixel as a #RRGGBB string.
func HexARGB(p uint32) string {
	return fmt.Sprintf("#%06x", p&0x00ffffff)
}

func (c Color) String() string {
	return fmt.Sprintf("Color(r: %.3f, g: %.3f, b: %.3f, a: %.3f)", c.R, c.G, c.B, c.A)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
