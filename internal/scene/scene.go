package scene

import "github.com/wilbur182/salmon/internal/canvas"

// Scene produces the content of a single frame.
type Scene interface {
	// Render draws one frame into the canvas. The canvas is reused
	// between frames, so scenes clear it first.
	Render(c *canvas.Canvas)
}

// WireTriangle is the built-in demo scene: a wireframe triangle with one
// internal diagonal, drawn in four colors on a black background.
type WireTriangle struct{}

// Vertices of the demo triangle in 64x64 canvas space.
var (
	vertexA = [2]int{7, 3}
	vertexB = [2]int{12, 37}
	vertexC = [2]int{62, 53}
)

// Render draws the triangle edges in order; the final red pass retraces
// the A-C edge and wins on shared pixels.
func (WireTriangle) Render(c *canvas.Canvas) {
	c.Clear(canvas.Black)

	c.Line(vertexA[0], vertexA[1], vertexB[0], vertexB[1], canvas.Blue)
	c.Line(vertexC[0], vertexC[1], vertexB[0], vertexB[1], canvas.Green)
	c.Line(vertexC[0], vertexC[1], vertexA[0], vertexA[1], canvas.Yellow)
	c.Line(vertexA[0], vertexA[1], vertexC[0], vertexC[1], canvas.Red)
}
