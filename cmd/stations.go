package cmd

import (
	"trainbot/pkg/tui"

	"github.com/spf13/cobra"
)

var stationsCmd = &cobra.Command{
	Use:   "stations",
	Short: "List station names trainbot can translate to codes",
	Run: func(cmd *cobra.Command, args []string) {
		tui.PrintStations()
	},
}

func init() {
	rootCmd.AddCommand(stationsCmd)
}
