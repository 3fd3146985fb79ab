package icon

import (
	"fmt"
	"image"
	"image/color"
	"os"

	"github.com/aellingwood/iconforge/internal/config"
	"github.com/disintegration/imaging"
	xwebp "golang.org/x/image/webp"
)

// Check is the outcome of verifying one expected artifact. Err is nil when
// the file passed every check.
type Check struct {
	Artifact Artifact
	Err      error
}

// Verify inspects the files a Generator for cfg would produce. Each file must
// decode, be size×size, and have the expected corner pixels: the background
// colour for launcher icons and full transparency for foreground icons.
//
// The returned error covers configuration problems only; per-file failures
// are reported through the checks.
func Verify(cfg config.Config) ([]Check, error) {
	g, err := NewGenerator(cfg)
	if err != nil {
		return nil, err
	}

	plan := g.Plan()
	checks := make([]Check, 0, len(plan))
	for _, a := range plan {
		checks = append(checks, Check{Artifact: a, Err: verifyArtifact(a, g.cfg.Format, g.style.Background)})
	}
	return checks, nil
}

func verifyArtifact(a Artifact, format string, background color.RGBA) error {
	img, err := openArtifact(a.Path, format)
	if err != nil {
		return err
	}

	b := img.Bounds()
	if b.Dx() != a.Size || b.Dy() != a.Size {
		return fmt.Errorf("%s: got %dx%d, want %dx%d", a.Path, b.Dx(), b.Dy(), a.Size, a.Size)
	}

	for _, p := range corners(b) {
		c := color.NRGBAModel.Convert(img.At(p.X, p.Y)).(color.NRGBA)
		switch a.Variant {
		case Foreground:
			if c.A != 0 {
				return fmt.Errorf("%s: corner (%d,%d) has alpha %d, want 0", a.Path, p.X, p.Y, c.A)
			}
		default:
			want := color.NRGBA{R: background.R, G: background.G, B: background.B, A: background.A}
			if c != want {
				return fmt.Errorf("%s: corner (%d,%d) is %v, want %v", a.Path, p.X, p.Y, c, want)
			}
		}
	}
	return nil
}

// openArtifact decodes the file at path. WebP goes through x/image/webp
// explicitly: the decoder registered for the "webp" sniff by the encoder
// package returns YCbCr, which does not reproduce lossless pixels exactly.
func openArtifact(path, format string) (image.Image, error) {
	if format != config.FormatWebP {
		img, err := imaging.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", path, err)
		}
		return img, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	img, err := xwebp.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("opening %s: decoding webp: %w", path, err)
	}
	return img, nil
}

// corners returns the four corner pixel coordinates of b.
func corners(b image.Rectangle) [4]image.Point {
	return [4]image.Point{
		{X: b.Min.X, Y: b.Min.Y},
		{X: b.Max.X - 1, Y: b.Min.Y},
		{X: b.Min.X, Y: b.Max.Y - 1},
		{X: b.Max.X - 1, Y: b.Max.Y - 1},
	}
}
