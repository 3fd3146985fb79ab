package icon

import (
	"image"
	"image/color"
	"testing"
)

var (
	testBlue  = color.RGBA{R: 33, G: 150, B: 243, A: 255}
	testWhite = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

func testStyle() Style {
	return Style{Background: testBlue, Fill: testWhite, StrokeWidth: 2}
}

func TestRenderDimensions(t *testing.T) {
	for _, size := range []int{48, 72, 96, 144, 192} {
		for _, v := range []Variant{Launcher, Foreground} {
			img := Render(size, TriangleFor(size, 0.7), v, testStyle())
			if b := img.Bounds(); b != image.Rect(0, 0, size, size) {
				t.Errorf("size %d %s: bounds %v", size, v, b)
			}
		}
	}
}

func TestRenderCorners(t *testing.T) {
	for _, size := range []int{48, 72, 96, 144, 192} {
		tri := TriangleFor(size, 0.7)
		main := Render(size, tri, Launcher, testStyle())
		fg := Render(size, tri, Foreground, testStyle())

		for _, p := range corners(main.Bounds()) {
			if got := main.RGBAAt(p.X, p.Y); got != testBlue {
				t.Errorf("size %d launcher corner %v = %v; want %v", size, p, got, testBlue)
			}
			if got := fg.RGBAAt(p.X, p.Y); got.A != 0 {
				t.Errorf("size %d foreground corner %v alpha = %d; want 0", size, p, got.A)
			}
		}
	}
}

func TestRenderTriangleInterior(t *testing.T) {
	size := 48
	tri := TriangleFor(size, 0.7)
	for _, v := range []Variant{Launcher, Foreground} {
		img := Render(size, tri, v, testStyle())
		// The centroid is well inside the triangle.
		if got := img.RGBAAt(24, 24); got != testWhite {
			t.Errorf("%s: centre pixel = %v; want %v", v, got, testWhite)
		}
	}
}

// near reports whether every channel of a and b differs by at most tol.
// Edge pixels are blended against different bases, so exact equality only
// holds for untouched or fully covered pixels.
func near(a, b color.RGBA, tol int) bool {
	d := func(x, y uint8) bool {
		diff := int(x) - int(y)
		return diff >= -tol && diff <= tol
	}
	return d(a.R, b.R) && d(a.G, b.G) && d(a.B, b.B) && d(a.A, b.A)
}

func TestRenderForegroundIsSubsetOfLauncher(t *testing.T) {
	for _, size := range []int{48, 192} {
		tri := TriangleFor(size, 0.7)
		main := Render(size, tri, Launcher, testStyle())
		fg := Render(size, tri, Foreground, testStyle())

		opaque := 0
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				f := fg.RGBAAt(x, y)
				m := main.RGBAAt(x, y)
				switch f.A {
				case 0:
					if !near(m, testBlue, 2) {
						t.Fatalf("size %d: (%d,%d) transparent in foreground but %v in launcher", size, x, y, m)
					}
				case 0xFF:
					opaque++
					if !near(m, f, 2) {
						t.Fatalf("size %d: (%d,%d) foreground %v != launcher %v", size, x, y, f, m)
					}
				}
			}
		}
		if opaque == 0 {
			t.Errorf("size %d: foreground has no opaque pixels", size)
		}
	}
}

func TestRenderOutlineIsDrawn(t *testing.T) {
	size := 48
	tri := TriangleFor(size, 0.7)
	withStroke := Render(size, tri, Launcher, testStyle())

	noStroke := testStyle()
	noStroke.StrokeWidth = 0
	fillOnly := Render(size, tri, Launcher, noStroke)

	diff := 0
	for i := range withStroke.Pix {
		if withStroke.Pix[i] != fillOnly.Pix[i] {
			diff++
		}
	}
	if diff == 0 {
		t.Error("outline stroke had no visible effect at 48px")
	}

	// The bottom edge sits at y=40.8; the outline pushes coverage into row 41.
	if got := fillOnly.RGBAAt(24, 41); got != testBlue {
		t.Errorf("fill-only row 41 = %v; want background", got)
	}
	if got := withStroke.RGBAAt(24, 41); got == testBlue {
		t.Error("stroked row 41 still background")
	}
}

func TestRenderLeavesMarginUntouched(t *testing.T) {
	size := 96
	img := Render(size, TriangleFor(size, 0.7), Launcher, testStyle())
	// The apex is at y=14.4; even the mitred outline stays below row 8.
	for y := 0; y < 8; y++ {
		for x := 0; x < size; x++ {
			if got := img.RGBAAt(x, y); got != testBlue {
				t.Fatalf("(%d,%d) = %v; want background", x, y, got)
			}
		}
	}
}

func TestRenderAlternatePalette(t *testing.T) {
	st := Style{
		Background:  color.RGBA{R: 0, G: 0, B: 0, A: 255},
		Fill:        color.RGBA{R: 255, G: 0, B: 0, A: 255},
		StrokeWidth: 2,
	}
	img := Render(72, TriangleFor(72, 0.7), Launcher, st)
	if got := img.RGBAAt(0, 0); got != st.Background {
		t.Errorf("corner = %v; want %v", got, st.Background)
	}
	if got := img.RGBAAt(36, 40); got != st.Fill {
		t.Errorf("interior = %v; want %v", got, st.Fill)
	}
}

func TestVariantString(t *testing.T) {
	if Launcher.String() != "launcher" || Foreground.String() != "foreground" {
		t.Errorf("unexpected names %q, %q", Launcher, Foreground)
	}
	if Variant(9).String() != "unknown" {
		t.Errorf("Variant(9) = %q", Variant(9))
	}
}
