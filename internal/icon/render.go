package icon

import (
	"image"
	"image/color"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Variant selects one of the two launcher icon layers.
type Variant int

const (
	// Launcher is the full icon: opaque background with the triangle on top.
	Launcher Variant = iota
	// Foreground is the adaptive-icon foreground layer: the same triangle on
	// a fully transparent background.
	Foreground
)

func (v Variant) String() string {
	switch v {
	case Launcher:
		return "launcher"
	case Foreground:
		return "foreground"
	}
	return "unknown"
}

// Style holds the paint parameters shared by both variants.
type Style struct {
	Background  color.RGBA
	Fill        color.RGBA
	StrokeWidth float64
}

// strokeMiterLimit keeps the apex sharp; the apex miter ratio of the default
// triangle is about 2.2.
const strokeMiterLimit = 4

// Render draws one variant onto a new size×size canvas. Layers are painted in
// a fixed order: base colour, filled triangle, then the triangle outline.
func Render(size int, tri Triangle, v Variant, st Style) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	var base color.Color = color.Transparent
	if v == Launcher {
		base = st.Background
	}
	draw.Draw(img, img.Bounds(), image.NewUniform(base), image.Point{}, draw.Src)

	fillTriangle(img, tri, st.Fill)
	if st.StrokeWidth > 0 {
		strokeTriangle(img, tri, st.Fill, st.StrokeWidth)
	}
	return img
}

// fillTriangle composites the filled triangle over dst.
func fillTriangle(dst *image.RGBA, tri Triangle, c color.RGBA) {
	b := dst.Bounds()
	pts := tri.Vertices()

	var z vector.Rasterizer
	z.Reset(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	z.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		z.LineTo(float32(p.X), float32(p.Y))
	}
	z.ClosePath()
	z.Draw(dst, b, image.NewUniform(c), image.Point{})
}

// strokeTriangle composites the closed triangle outline over dst. The stroke
// is centred on the edges, so half of it lies outside the filled area.
func strokeTriangle(dst *image.RGBA, tri Triangle, c color.RGBA, width float64) {
	b := dst.Bounds()
	w, h := b.Dx(), b.Dy()
	pts := tri.Vertices()

	scanner := rasterx.NewScannerGV(w, h, dst, b)
	s := rasterx.NewStroker(w, h, scanner)
	s.SetStroke(
		fixed.Int26_6(width*64),
		fixed.Int26_6(strokeMiterLimit*64),
		rasterx.ButtCap, rasterx.ButtCap,
		rasterx.FlatGap,
		rasterx.Miter,
	)
	s.SetColor(c)

	s.Start(rasterx.ToFixedP(pts[0].X, pts[0].Y))
	for _, p := range pts[1:] {
		s.Line(rasterx.ToFixedP(p.X, p.Y))
	}
	s.Stop(true)
	s.Draw()
}
