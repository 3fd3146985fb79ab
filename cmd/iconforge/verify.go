package main

import (
	"fmt"

	"github.com/aellingwood/iconforge/internal/icon"
	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check previously generated icons",
	Long: "Verify opens every icon the current configuration would produce and " +
		"checks its dimensions and corner pixels.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg.WithOverrides(overrides(cmd))

		checks, err := icon.Verify(*cfg)
		if err != nil {
			return err
		}

		failed := 0
		for _, c := range checks {
			if c.Err != nil {
				failed++
				fmt.Fprintf(cmd.OutOrStdout(), "FAIL %v\n", c.Err)
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d icons failed verification", failed, len(checks))
		}
		fmt.Fprintf(cmd.OutOrStdout(), "All %d icons verified.\n", len(checks))
		return nil
	},
}

func init() {
	addOverrideFlags(verifyCmd)

	rootCmd.AddCommand(verifyCmd)
}
