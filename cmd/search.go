package cmd

import (
	"trainbot/pkg/assistant"
	"trainbot/pkg/config"
	"trainbot/pkg/tui"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search trains between two stations on a date",
	Long: `Look up trains for a journey and print them as plain text, followed by
recommendations. Stations may be codes (NDLS) or known names ("New Delhi").`,
	Example: `  trainbot search --from NDLS --to BCT --date 25-12-2030
  trainbot search -f "new delhi" -t "mumbai central" -d 25-12-2030 --polish`,
	RunE: func(cmd *cobra.Command, args []string) error {
		from, _ := cmd.Flags().GetString("from")
		to, _ := cmd.Flags().GetString("to")
		date, _ := cmd.Flags().GetString("date")
		polish, _ := cmd.Flags().GetBool("polish")

		// Fall back to the saved default route
		if cfg, err := config.Load(); err == nil {
			if from == "" {
				from = cfg.DefaultFrom
			}
			if to == "" {
				to = cfg.DefaultTo
			}
		}

		svc, err := newServices(polish)
		if err != nil {
			return err
		}

		req := assistant.SearchRequest{Origin: from, Destination: to, Date: date}
		tui.PrintReply(req, tui.Search(svc.pipeline, req))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().StringP("from", "f", "", "Departure station code or name (defaults to the saved route)")
	searchCmd.Flags().StringP("to", "t", "", "Destination station code or name (defaults to the saved route)")
	searchCmd.Flags().StringP("date", "d", "", "Date of journey (DD-MM-YYYY)")
	searchCmd.Flags().Bool("polish", false, "Let the LLM rewrite the reply (needs GROQ_API_KEY)")
	searchCmd.MarkFlagRequired("date")
}
