package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/aellingwood/iconforge/internal/config"
	"github.com/aellingwood/iconforge/internal/icon"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the launcher icons",
	Long: "Generate renders the launcher icon and its foreground layer for each " +
		"configured density and writes them to the output directory, replacing " +
		"any files from a previous run.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		verbose, _ := cmd.Root().PersistentFlags().GetBool("verbose")
		cfg.WithOverrides(overrides(cmd))

		_, err = runGenerate(cmd.Context(), cmd.OutOrStdout(), cfg, verbose)
		return err
	},
}

func init() {
	addOverrideFlags(generateCmd)

	rootCmd.AddCommand(generateCmd)
}

// addOverrideFlags registers the flags that override config file values.
// generate and verify share them so both resolve the same file set.
func addOverrideFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", "", "output directory (overrides config)")
	cmd.Flags().String("format", "", "image format: png or webp")
	cmd.Flags().String("layout", "", "file layout: flat or mipmap")
	cmd.Flags().String("background", "", "background colour as #RRGGBB")
	cmd.Flags().String("triangle", "", "triangle colour as #RRGGBB")
}

// overrides collects the override flag values in the form accepted by
// config.WithOverrides.
func overrides(cmd *cobra.Command) map[string]any {
	output, _ := cmd.Flags().GetString("output")
	format, _ := cmd.Flags().GetString("format")
	layout, _ := cmd.Flags().GetString("layout")
	background, _ := cmd.Flags().GetString("background")
	triangle, _ := cmd.Flags().GetString("triangle")

	return map[string]any{
		"outputDir":  output,
		"format":     format,
		"layout":     layout,
		"background": background,
		"triangle":   triangle,
	}
}

// runGenerate renders every icon for cfg, printing one line per file written
// and a closing success line.
func runGenerate(ctx context.Context, out io.Writer, cfg *config.Config, verbose bool) ([]icon.Artifact, error) {
	g, err := icon.NewGenerator(*cfg)
	if err != nil {
		return nil, err
	}
	g.OnWrite = func(a icon.Artifact) {
		if a.Variant == icon.Foreground {
			fmt.Fprintf(out, "Generated foreground icon: %s\n", a.Path)
		} else {
			fmt.Fprintf(out, "Generated icon: %s\n", a.Path)
		}
		if verbose {
			fmt.Fprintf(out, "  %s %dx%d, %s\n", a.Density, a.Size, a.Size, humanize.Bytes(uint64(a.Bytes)))
		}
	}

	start := time.Now()
	artifacts, err := g.Generate(ctx)
	if err != nil {
		return artifacts, fmt.Errorf("generating icons: %w", err)
	}

	fmt.Fprintln(out, "All icons generated successfully!")
	if verbose {
		var total int64
		for _, a := range artifacts {
			total += a.Bytes
		}
		fmt.Fprintf(out, "%d files, %s in %s\n",
			len(artifacts), humanize.Bytes(uint64(total)), time.Since(start).Round(time.Millisecond))
	}
	return artifacts, nil
}
