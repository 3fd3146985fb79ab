package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the resolved configuration",
	Long:  "Print the fully resolved configuration after merging defaults and the config file.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		format, _ := cmd.Flags().GetString("format")
		return cfg.Encode(cmd.OutOrStdout(), format)
	},
}

func init() {
	configCmd.Flags().String("format", "yaml", "output format: yaml or toml")

	rootCmd.AddCommand(configCmd)
}
