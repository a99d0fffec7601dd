package cmd

import (
	"trainbot/pkg/tui"

	"github.com/spf13/cobra"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Launch the interactive TUI",
	Long:  `Launch the Text User Interface that asks for your journey step by step.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		polish, _ := cmd.Flags().GetBool("polish")

		svc, err := newServices(polish)
		if err != nil {
			return err
		}
		return tui.RunTUI(svc.pipeline, svc.validator)
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
	// Running bare "trainbot" starts the interactive flow
	rootCmd.RunE = interactiveCmd.RunE
	interactiveCmd.Flags().Bool("polish", false, "Let the LLM rewrite replies (needs GROQ_API_KEY)")
}
