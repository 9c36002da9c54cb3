package scene

import (
	"testing"

	"github.com/wilbur182/salmon/internal/canvas"
)

func TestWireTriangleRender(t *testing.T) {
	c := canvas.New(canvas.DefaultSize, canvas.DefaultSize)
	WireTriangle{}.Render(c)

	// Vertex A is retraced by the red A-C pass last.
	if got := c.At(7, 3); got != canvas.Red.ARGB() {
		t.Errorf("vertex A = %#08x, want red", got)
	}
	// Vertex B is only touched by the blue and green edges; green draws last.
	if got := c.At(12, 37); got != canvas.Green.ARGB() {
		t.Errorf("vertex B = %#08x, want green", got)
	}
	if got := c.At(62, 53); got != canvas.Red.ARGB() {
		t.Errorf("vertex C = %#08x, want red", got)
	}

	// A corner far from every edge stays background.
	if got := c.At(0, 63); got != canvas.Black.ARGB() {
		t.Errorf("background = %#08x, want black", got)
	}
}

func TestWireTriangleClearsBetweenFrames(t *testing.T) {
	c := canvas.New(canvas.DefaultSize, canvas.DefaultSize)
	c.SetPixel(0, 63, canvas.White)

	WireTriangle{}.Render(c)

	if got := c.At(0, 63); got != canvas.Black.ARGB() {
		t.Error("stale pixel survived a frame render")
	}
}
