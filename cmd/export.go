package cmd

import (
	"fmt"
	"os"
	"strings"

	"trainbot/pkg/exporter"
	"trainbot/pkg/railway"
	"trainbot/pkg/stations"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the trains for a journey to an ICS calendar file",
	Long:  `Fetch the trains for a journey and write one calendar event per train, so you can compare options in your calendar app.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		from, _ := cmd.Flags().GetString("from")
		to, _ := cmd.Flags().GetString("to")
		date, _ := cmd.Flags().GetString("date")
		output, _ := cmd.Flags().GetString("output")
		limit, _ := cmd.Flags().GetInt("limit")

		svc, err := newServices(false)
		if err != nil {
			return err
		}

		if res := svc.validator.Validate(from, to, date); !res.Valid {
			return fmt.Errorf("%w: %s", errInvalidJourney, strings.Join(res.Issues, "; "))
		}

		var resp railway.ScheduleResponse
		_ = spinner.New().
			Title(fmt.Sprintf("Fetching trains from %s to %s on %s...", stations.Resolve(from), stations.Resolve(to), date)).
			Action(func() {
				resp = svc.client.FetchTrains(from, to, date)
			}).
			Run()

		var records []railway.TrainRecord
		switch r := resp.(type) {
		case railway.Failure:
			return fmt.Errorf("failed to fetch trains: %s", r.Message)
		case railway.Trains:
			records = r.Records
		}

		if len(records) == 0 {
			return fmt.Errorf("no trains found from %s to %s on %s", stations.Resolve(from), stations.Resolve(to), date)
		}
		if limit > 0 && len(records) > limit {
			records = records[:limit]
		}

		file, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()

		if err := exporter.GenerateICS(records, date, file); err != nil {
			return fmt.Errorf("failed to generate ICS: %w", err)
		}

		fmt.Printf("✨ Exported %d trains to %s\n", len(records), output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("from", "f", "", "Departure station code or name")
	exportCmd.Flags().StringP("to", "t", "", "Destination station code or name")
	exportCmd.Flags().StringP("date", "d", "", "Date of journey (DD-MM-YYYY)")
	exportCmd.Flags().StringP("output", "o", "trains.ics", "Output file path")
	exportCmd.Flags().IntP("limit", "n", railway.MaxDisplayed, "Maximum number of trains to export (0 = all)")
	exportCmd.MarkFlagRequired("from")
	exportCmd.MarkFlagRequired("to")
	exportCmd.MarkFlagRequired("date")
}
