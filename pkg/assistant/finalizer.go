package assistant

import (
	"fmt"
	"strings"

	"trainbot/pkg/railway"
	"trainbot/pkg/validate"
)

// Finalizer turns the validation result and fetch outcome into the text shown
// to the traveler. outcome is nil when validation failed.
type Finalizer interface {
	Finalize(validation validate.Result, outcome *Outcome) string
}

// PlainFinalizer lays the reply out as a station check, then the train list
// or a no-trains message, then recommendations or alternative suggestions.
type PlainFinalizer struct{}

func (PlainFinalizer) Finalize(validation validate.Result, outcome *Outcome) string {
	if !validation.Valid || outcome == nil {
		return invalidReply(validation)
	}

	sections := []string{
		fmt.Sprintf("Route check: %s to %s on %s", outcome.OriginCode, outcome.DestinationCode, outcome.Date),
		outcome.Listing,
	}

	if outcome.Recommendation != "" {
		sections = append(sections, "Recommendations:\n"+outcome.Recommendation)
	}

	if alt := alternatives(outcome); len(alt) > 0 {
		sections = append(sections, "What you can try:\n"+bullets(alt))
	}

	return strings.Join(sections, "\n\n")
}

func invalidReply(validation validate.Result) string {
	lines := make([]string, 0, len(validation.Issues))
	for i, issue := range validation.Issues {
		line := issue
		if i < len(validation.Suggestions) && validation.Suggestions[i] != "" {
			line += ". " + validation.Suggestions[i]
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		lines = append(lines, "The search details are incomplete")
	}
	return "Please fix the following before searching:\n" + bullets(lines)
}

// alternatives suggests next steps when nothing useful came back
func alternatives(outcome *Outcome) []string {
	switch r := outcome.Response.(type) {
	case railway.Failure:
		if strings.HasPrefix(r.Message, "Connection error") {
			return []string{
				"Check your internet connection and try again",
				"Make sure your RAPIDAPI_KEY is valid",
			}
		}
		return []string{
			"Double-check the station codes (run 'trainbot stations' for common ones)",
			"Try again in a few minutes",
		}
	case railway.Trains:
		if len(r.Records) == 0 {
			return []string{
				"Try a date one or two days earlier or later",
				"Search from a nearby major station instead",
			}
		}
	}
	return nil
}

func bullets(lines []string) string {
	var b strings.Builder
	for i, l := range lines {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("- ")
		b.WriteString(l)
	}
	return b.String()
}
