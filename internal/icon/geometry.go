// Package icon renders launcher icons, writes them in the configured layout
// and format, and verifies previously generated output.
package icon

// Point is a vertex in pixel space. The origin is the top-left corner of the
// canvas and Y grows downwards.
type Point struct {
	X, Y float64
}

// Triangle is the upward-pointing launcher glyph.
type Triangle struct {
	Top         Point
	BottomRight Point
	BottomLeft  Point
}

// Vertices returns the vertices in drawing order.
func (t Triangle) Vertices() [3]Point {
	return [3]Point{t.Top, t.BottomRight, t.BottomLeft}
}

// TriangleFor returns the triangle for a size×size canvas. The triangle's
// bounding box is scale*size on each side and centred on the canvas.
func TriangleFor(size int, scale float64) Triangle {
	cx := float64(size) / 2
	cy := float64(size) / 2
	half := float64(size) * scale / 2

	return Triangle{
		Top:         Point{X: cx, Y: cy - half},
		BottomRight: Point{X: cx + half, Y: cy + half},
		BottomLeft:  Point{X: cx - half, Y: cy + half},
	}
}
