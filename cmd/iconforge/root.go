package main

import (
	"context"

	"github.com/aellingwood/iconforge/internal/config"
	"github.com/spf13/cobra"
)

const defaultConfigPath = "iconforge.yaml"

var rootCmd = &cobra.Command{
	Use:   "iconforge",
	Short: "Generate Android launcher icons",
	Long: "iconforge renders the launcher icon and its adaptive foreground layer " +
		"for every Android screen density and writes them as image files.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().String("config", defaultConfigPath, "path to config file (YAML or TOML)")
	rootCmd.PersistentFlags().Bool("verbose", false, "enable verbose output")
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// loadConfig resolves the configuration for cmd. A missing config file is
// only an error when --config was given explicitly; otherwise the built-in
// defaults are used.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	flags := cmd.Root().PersistentFlags()
	path, _ := flags.GetString("config")
	return config.LoadOrDefault(path, flags.Changed("config"))
}
