package railway

import (
	"fmt"
	"strings"
)

// MaxDisplayed caps how many trains are listed in a reply
const MaxDisplayed = 5

// FormatForDisplay renders a schedule response as plain chat text.
// Trains keep the order the API returned them in.
func FormatForDisplay(resp ScheduleResponse) string {
	switch r := resp.(type) {
	case Failure:
		return "❌ " + r.Message
	case Trains:
		return formatTrains(r.Records)
	default:
		return "❌ Unknown schedule response"
	}
}

func formatTrains(records []TrainRecord) string {
	if len(records) == 0 {
		return "No trains available for this route on the selected date."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d %s:\n", len(records), plural(len(records), "train", "trains"))

	shown := records
	if len(shown) > MaxDisplayed {
		shown = shown[:MaxDisplayed]
	}

	for i, t := range shown {
		b.WriteString("\n")
		writeTrainBlock(&b, i+1, t)
	}

	if extra := len(records) - len(shown); extra > 0 {
		fmt.Fprintf(&b, "\n%d more %s available.\n", extra, plural(extra, "train", "trains"))
	}

	return strings.TrimRight(b.String(), "\n")
}

func writeTrainBlock(b *strings.Builder, seq int, t TrainRecord) {
	fmt.Fprintf(b, "%d. %s - %s\n", seq, t.Number, t.Name)
	fmt.Fprintf(b, "   From: %s (%s) at %s\n", t.OriginName, t.OriginCode, t.DepartureTime)
	fmt.Fprintf(b, "   To: %s (%s) at %s\n", t.DestinationName, t.DestinationCode, t.ArrivalTime)
	fmt.Fprintf(b, "   Duration: %s\n", t.Duration)
	if t.DistanceKm != nil {
		fmt.Fprintf(b, "   Distance: %d km\n", *t.DistanceKm)
	}
	if len(t.RunningDays) > 0 {
		fmt.Fprintf(b, "   Runs on: %s\n", strings.Join(t.RunningDays, ", "))
	}
	if len(t.Classes) > 0 {
		fmt.Fprintf(b, "   Classes: %s\n", strings.Join(t.Classes, ", "))
	}
	if h := t.Halts(); h != 0 {
		fmt.Fprintf(b, "   Halts: %d\n", h)
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
