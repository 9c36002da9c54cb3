// Package surface presents a canvas on the terminal. Each terminal cell
// carries two vertically stacked pixels rendered with the upper-half-block
// rune, so a cols x rows viewport gives a cols x 2*rows pixel grid.
package surface

import (
	"encoding/binary"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/charmbracelet/lipgloss"

	"github.com/wilbur182/salmon/internal/canvas"
)

const halfBlock = "▀"

// Renderer turns canvas frames into styled terminal output. It keeps the
// blit buffer and the last rendered string so an unchanged frame costs a
// hash instead of a restyle.
type Renderer struct {
	buf        []uint32
	bufW, bufH int

	lastDigest uint64
	cached     string
}

// NewRenderer creates an empty renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render scales the canvas into a cols x rows cell viewport and returns
// the styled frame. Degenerate viewports return an empty string.
func (r *Renderer) Render(c *canvas.Canvas, cols, rows int) string {
	if cols <= 0 || rows <= 0 {
		return ""
	}

	pw, ph := cols, rows*2
	if r.bufW != pw || r.bufH != ph {
		r.buf = make([]uint32, pw*ph)
		r.bufW, r.bufH = pw, ph
		r.lastDigest = 0
		r.cached = ""
	}

	c.Blit(r.buf, pw, ph)

	digest := frameDigest(r.buf, pw, ph)
	if digest == r.lastDigest && r.cached != "" {
		return r.cached
	}

	var sb strings.Builder
	for ry := 0; ry < rows; ry++ {
		if ry > 0 {
			sb.WriteByte('\n')
		}
		topRow := (ry * 2) * pw
		botRow := (ry*2 + 1) * pw

		// Group runs of identical pixel pairs into a single styled span.
		x := 0
		for x < pw {
			top, bot := r.buf[topRow+x], r.buf[botRow+x]
			run := 1
			for x+run < pw && r.buf[topRow+x+run] == top && r.buf[botRow+x+run] == bot {
				run++
			}
			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(canvas.HexARGB(top))).
				Background(lipgloss.Color(canvas.HexARGB(bot)))
			sb.WriteString(style.Render(strings.Repeat(halfBlock, run)))
			x += run
		}
	}

	r.lastDigest = digest
	r.cached = sb.String()
	return r.cached
}

// frameDigest hashes the blitted pixels together with the viewport
// dimensions.
func frameDigest(buf []uint32, w, h int) uint64 {
	d := xxhash.New()
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(w))
	_, _ = d.Write(b[:])
	binary.LittleEndian.PutUint32(b[:], uint32(h))
	_, _ = d.Write(b[:])
	for _, px := range buf {
		binary.LittleEndian.PutUint32(b[:], px)
		_, _ = d.Write(b[:])
	}
	return d.Sum64()
}
