package main

import (
	"fmt"

	"github.com/aellingwood/iconforge/internal/config"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a default config file",
	Long: "Init writes the default configuration to path (iconforge.yaml if " +
		"omitted). A .toml extension selects TOML output.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := defaultConfigPath
		if len(args) == 1 {
			path = args[0]
		}
		force, _ := cmd.Flags().GetBool("force")

		if err := config.Default().WriteFile(path, force); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

func init() {
	initCmd.Flags().BoolP("force", "f", false, "overwrite an existing file")

	rootCmd.AddCommand(initCmd)
}
