package cmd

import (
	"fmt"

	"trainbot/pkg/config"
	"trainbot/pkg/tui"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage trainbot configuration",
	Long:  "View or edit your local settings, like the default route used to pre-fill searches.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		setFrom, _ := cmd.Flags().GetString("set-from")
		setTo, _ := cmd.Flags().GetString("set-to")

		if setFrom != "" || setTo != "" {
			if setFrom != "" {
				cfg.SetDefaultFrom(setFrom)
			}
			if setTo != "" {
				cfg.SetDefaultTo(setTo)
			}

			if err := config.Save(cfg); err != nil {
				return err
			}

			fmt.Printf("✅ Default route saved: %s -> %s\n", cfg.FromLabel(), cfg.ToLabel())
			return nil
		}

		// If no flags are given, launch the interactive TUI flow
		return tui.RunConfigTUI()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().String("set-from", "", "Set the default departure station")
	configCmd.Flags().String("set-to", "", "Set the default destination station")
}
