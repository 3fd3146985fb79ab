package icon

import (
	"context"
	"fmt"
	"os"

	"github.com/aellingwood/iconforge/internal/config"
)

// Artifact describes a single generated icon file.
type Artifact struct {
	Density string
	Size    int
	Variant Variant
	Path    string
	Bytes   int64 // encoded file size; zero for planned artifacts
}

// Generator renders the launcher and foreground icon for every configured
// density and writes them to the output directory.
type Generator struct {
	cfg   config.Config
	style Style

	// OnWrite, if non-nil, is called after each file has been written.
	OnWrite func(Artifact)
}

// NewGenerator validates cfg and creates a Generator for it. The density
// table is copied, so later changes to cfg do not affect the generator.
func NewGenerator(cfg config.Config) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	bg, fill, err := cfg.Palette()
	if err != nil {
		return nil, err
	}
	cfg.Densities = append([]config.Density(nil), cfg.Densities...)

	return &Generator{
		cfg: cfg,
		style: Style{
			Background:  bg,
			Fill:        fill,
			StrokeWidth: cfg.Triangle.StrokeWidth,
		},
	}, nil
}

// Plan returns the artifacts Generate will write, in write order, without
// touching the filesystem.
func (g *Generator) Plan() []Artifact {
	plan := make([]Artifact, 0, 2*len(g.cfg.Densities))
	for _, d := range g.cfg.Densities {
		for _, v := range []Variant{Launcher, Foreground} {
			plan = append(plan, Artifact{
				Density: d.Name,
				Size:    d.Size,
				Variant: v,
				Path:    ArtifactPath(g.cfg.OutputDir, g.cfg.Layout, g.cfg.Format, d.Name, v),
			})
		}
	}
	return plan
}

// Generate creates the output directory if needed, then renders and writes
// the launcher and foreground icon for each density in order. Existing files
// are overwritten. The first error aborts the run; files written before it
// are left in place.
//
// The context is checked between densities only.
func (g *Generator) Generate(ctx context.Context) ([]Artifact, error) {
	if err := os.MkdirAll(g.cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	var written []Artifact
	plan := g.Plan()
	for i := 0; i < len(plan); i += 2 {
		if err := ctx.Err(); err != nil {
			return written, err
		}

		// Both variants share one triangle.
		size := plan[i].Size
		tri := TriangleFor(size, g.cfg.Triangle.Scale)

		for _, a := range plan[i : i+2] {
			img := Render(size, tri, a.Variant, g.style)
			n, err := writeImage(img, a.Path, g.cfg.Format)
			if err != nil {
				return written, fmt.Errorf("%s %s icon: %w", a.Density, a.Variant, err)
			}
			a.Bytes = n
			written = append(written, a)
			if g.OnWrite != nil {
				g.OnWrite(a)
			}
		}
	}
	return written, nil
}
