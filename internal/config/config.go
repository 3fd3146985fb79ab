// Package config handles loading, validating, and encoding the icon
// generation configuration for iconforge.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/viper"
	"golang.org/x/text/unicode/norm"
)

// Output layouts.
const (
	LayoutFlat   = "flat"
	LayoutMipmap = "mipmap"
)

// Output formats.
const (
	FormatPNG  = "png"
	FormatWebP = "webp"
)

// Config is the top-level configuration for an icon generation run.
type Config struct {
	OutputDir string         `yaml:"outputDir" toml:"outputDir" mapstructure:"outputDir"`
	Layout    string         `yaml:"layout"    toml:"layout"    mapstructure:"layout"`
	Format    string         `yaml:"format"    toml:"format"    mapstructure:"format"`
	Colors    ColorConfig    `yaml:"colors"    toml:"colors"    mapstructure:"colors"`
	Triangle  TriangleConfig `yaml:"triangle"  toml:"triangle"  mapstructure:"triangle"`
	Densities []Density      `yaml:"densities" toml:"densities" mapstructure:"densities"`
}

// ColorConfig holds the palette as #RRGGBB hex strings.
type ColorConfig struct {
	Background string `yaml:"background" toml:"background" mapstructure:"background"`
	Triangle   string `yaml:"triangle"   toml:"triangle"   mapstructure:"triangle"`
}

// TriangleConfig controls the triangle geometry and outline.
type TriangleConfig struct {
	// Scale is the triangle's height as a fraction of the icon size.
	Scale       float64 `yaml:"scale"       toml:"scale"       mapstructure:"scale"`
	StrokeWidth float64 `yaml:"strokeWidth" toml:"strokeWidth" mapstructure:"strokeWidth"`
}

// Density maps an Android density bucket to a square icon size in pixels.
type Density struct {
	Name string `yaml:"name" toml:"name" mapstructure:"name"`
	Size int    `yaml:"size" toml:"size" mapstructure:"size"`
}

// DefaultDensities returns the standard launcher icon density table, in
// generation order.
func DefaultDensities() []Density {
	return []Density{
		{Name: "mdpi", Size: 48},
		{Name: "hdpi", Size: 72},
		{Name: "xhdpi", Size: 96},
		{Name: "xxhdpi", Size: 144},
		{Name: "xxxhdpi", Size: 192},
	}
}

// Default returns a Config populated with the standard launcher icon set.
func Default() *Config {
	return &Config{
		OutputDir: "android-icons",
		Layout:    LayoutFlat,
		Format:    FormatPNG,
		Colors: ColorConfig{
			Background: "#2196F3",
			Triangle:   "#FFFFFF",
		},
		Triangle: TriangleConfig{
			Scale:       0.7,
			StrokeWidth: 2,
		},
		Densities: DefaultDensities(),
	}
}

// Load reads a configuration file from configPath (YAML or TOML) and returns
// a Config with defaults applied first and file values overlaid on top.
func Load(configPath string) (*Config, error) {
	def := Default()

	v := viper.New()

	// Determine format from extension.
	ext := strings.TrimPrefix(filepath.Ext(configPath), ".")
	switch ext {
	case "toml":
		v.SetConfigType("toml")
	default:
		v.SetConfigType("yaml")
	}

	// Defaults are registered with viper rather than pre-filled in the target
	// struct so that a shorter densities list in the file replaces the table
	// instead of being merged into it.
	v.SetDefault("outputDir", def.OutputDir)
	v.SetDefault("layout", def.Layout)
	v.SetDefault("format", def.Format)
	v.SetDefault("colors.background", def.Colors.Background)
	v.SetDefault("colors.triangle", def.Colors.Triangle)
	v.SetDefault("triangle.scale", def.Triangle.Scale)
	v.SetDefault("triangle.strokeWidth", def.Triangle.StrokeWidth)
	densities := make([]map[string]any, 0, len(def.Densities))
	for _, d := range def.Densities {
		densities = append(densities, map[string]any{"name": d.Name, "size": d.Size})
	}
	v.SetDefault("densities", densities)

	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// LoadOrDefault loads configPath if it exists. A missing file yields the
// default configuration unless required is set.
func LoadOrDefault(configPath string, required bool) (*Config, error) {
	if configPath == "" {
		return Default(), nil
	}
	if _, err := os.Stat(configPath); err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return Load(configPath)
}

// Validate checks the Config for errors that would make generation fail or
// produce unusable file names.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.OutputDir) == "" {
		return fmt.Errorf("config: outputDir is required")
	}
	if err := oneOf("layout", c.Layout, LayoutFlat, LayoutMipmap); err != nil {
		return err
	}
	if err := oneOf("format", c.Format, FormatPNG, FormatWebP); err != nil {
		return err
	}
	if _, err := ParseColor(c.Colors.Background); err != nil {
		return fmt.Errorf("config: colors.background: %w", err)
	}
	if _, err := ParseColor(c.Colors.Triangle); err != nil {
		return fmt.Errorf("config: colors.triangle: %w", err)
	}
	if c.Triangle.Scale <= 0 || c.Triangle.Scale > 1 {
		return fmt.Errorf("config: triangle.scale must be in (0, 1] (got %g)", c.Triangle.Scale)
	}
	if c.Triangle.StrokeWidth < 0 {
		return fmt.Errorf("config: triangle.strokeWidth must not be negative (got %g)", c.Triangle.StrokeWidth)
	}
	if len(c.Densities) == 0 {
		return fmt.Errorf("config: at least one density is required")
	}

	seen := make(map[string]bool, len(c.Densities))
	for i, d := range c.Densities {
		if !validDensityName(d.Name) {
			return fmt.Errorf("config: densities[%d]: name %q must be lower-case letters, digits, or hyphens", i, d.Name)
		}
		if seen[d.Name] {
			return fmt.Errorf("config: densities[%d]: duplicate name %q", i, d.Name)
		}
		seen[d.Name] = true
		if d.Size <= 0 {
			return fmt.Errorf("config: densities[%d]: size must be positive (got %d)", i, d.Size)
		}
	}

	return nil
}

// WithOverrides applies CLI flag overrides to the config. Known keys are
// mapped to their corresponding struct fields. The modified config is returned
// for convenient chaining.
func (c *Config) WithOverrides(overrides map[string]any) *Config {
	for key, val := range overrides {
		switch key {
		case "outputDir":
			if s, ok := val.(string); ok && s != "" {
				c.OutputDir = s
			}
		case "layout":
			if s, ok := val.(string); ok && s != "" {
				c.Layout = s
			}
		case "format":
			if s, ok := val.(string); ok && s != "" {
				c.Format = s
			}
		case "background":
			if s, ok := val.(string); ok && s != "" {
				c.Colors.Background = s
			}
		case "triangle":
			if s, ok := val.(string); ok && s != "" {
				c.Colors.Triangle = s
			}
		}
	}
	return c
}

// Palette returns the parsed background and triangle colours.
func (c *Config) Palette() (background, triangle color.RGBA, err error) {
	background, err = ParseColor(c.Colors.Background)
	if err != nil {
		return color.RGBA{}, color.RGBA{}, fmt.Errorf("background colour: %w", err)
	}
	triangle, err = ParseColor(c.Colors.Triangle)
	if err != nil {
		return color.RGBA{}, color.RGBA{}, fmt.Errorf("triangle colour: %w", err)
	}
	return background, triangle, nil
}

// ParseColor parses a "#RRGGBB" or "#RGB" hex string into an opaque colour.
// The leading "#" is optional.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return color.RGBA{}, fmt.Errorf("empty colour")
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	if len(s) != 4 && len(s) != 7 {
		return color.RGBA{}, fmt.Errorf("invalid colour %q: expected #RGB or #RRGGBB", s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}, nil
}

// validDensityName reports whether name is usable verbatim inside a file or
// directory name: non-empty, NFC-normalised, and restricted to lower-case
// letters, digits, and hyphens.
func validDensityName(name string) bool {
	if name == "" || !norm.NFC.IsNormalString(name) {
		return false
	}
	for _, r := range name {
		if (unicode.IsLetter(r) && unicode.IsLower(r)) || unicode.IsDigit(r) || r == '-' {
			continue
		}
		return false
	}
	return true
}

// oneOf returns an error naming key if val is not in allowed, suggesting the
// closest allowed value when one is near enough to be a typo.
func oneOf(key, val string, allowed ...string) error {
	best := ""
	bestDist := -1
	for _, a := range allowed {
		if val == a {
			return nil
		}
		d := levenshtein.ComputeDistance(strings.ToLower(val), a)
		if bestDist < 0 || d < bestDist {
			best, bestDist = a, d
		}
	}
	if bestDist >= 0 && bestDist <= 2 {
		return fmt.Errorf("config: unsupported %s %q (did you mean %q?)", key, val, best)
	}
	return fmt.Errorf("config: unsupported %s %q (expected one of %s)", key, val, strings.Join(allowed, ", "))
}
