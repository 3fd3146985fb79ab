package icon

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/aellingwood/iconforge/internal/config"
	"github.com/gen2brain/webp"
)

// ArtifactPath returns where the given density and variant is written.
//
//	flat:   {out}/ic_launcher_{density}.{ext}
//	        {out}/ic_launcher_foreground_{density}.{ext}
//	mipmap: {out}/mipmap-{density}/ic_launcher.{ext}
//	        {out}/mipmap-{density}/ic_launcher_foreground.{ext}
func ArtifactPath(outputDir, layout, format, density string, v Variant) string {
	base := "ic_launcher"
	if v == Foreground {
		base = "ic_launcher_foreground"
	}
	ext := formatExtension(format)

	if layout == config.LayoutMipmap {
		return filepath.Join(outputDir, "mipmap-"+density, base+"."+ext)
	}
	return filepath.Join(outputDir, fmt.Sprintf("%s_%s.%s", base, density, ext))
}

// formatExtension returns the file extension (without dot) for a format name.
func formatExtension(format string) string {
	switch format {
	case config.FormatWebP:
		return "webp"
	default:
		return "png"
	}
}

// encodeImage writes img to w in the specified format.
func encodeImage(w io.Writer, img image.Image, format string) error {
	switch format {
	case config.FormatWebP:
		if err := webp.Encode(w, img, webp.Options{Lossless: true, Quality: 100}); err != nil {
			return fmt.Errorf("encoding webp: %w", err)
		}
	default:
		if err := png.Encode(w, rgbaPNG{img}); err != nil {
			return fmt.Errorf("encoding png: %w", err)
		}
	}
	return nil
}

// rgbaPNG makes image/png write colour type 6 (RGBA) even when every pixel is
// opaque, so launcher and foreground files share one colour mode.
type rgbaPNG struct{ image.Image }

func (rgbaPNG) Opaque() bool { return false }

// writeImage encodes img to outPath, replacing any existing file, and
// returns the number of bytes written.
func writeImage(img image.Image, outPath, format string) (int64, error) {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return 0, fmt.Errorf("creating directory for %s: %w", outPath, err)
	}
	f, err := os.Create(outPath)
	if err != nil {
		return 0, fmt.Errorf("creating %s: %w", outPath, err)
	}
	defer f.Close()

	if err := encodeImage(f, img, format); err != nil {
		return 0, fmt.Errorf("writing %s: %w", outPath, err)
	}
	if err := f.Close(); err != nil {
		return 0, fmt.Errorf("closing %s: %w", outPath, err)
	}

	info, err := os.Stat(outPath)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}
