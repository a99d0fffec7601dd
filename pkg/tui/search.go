package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"trainbot/pkg/assistant"
	"trainbot/pkg/config"
	"trainbot/pkg/validate"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// validateStationInput only rejects inputs that cannot be a station; the
// resolver handles names and codes alike.
func validateStationInput(s string) error {
	if utf8.RuneCountInString(strings.TrimSpace(s)) < 2 {
		return fmt.Errorf("enter a station code like NDLS or a name like New Delhi")
	}
	return nil
}

func dateInputValidator(v *validate.Validator) func(string) error {
	return func(s string) error {
		if !v.DateOK(s) {
			return fmt.Errorf("use DD-MM-YYYY with today's date or later")
		}
		return nil
	}
}

// RunSearchTUI prompts for a journey until the inputs are well-formed, shows
// the results and offers to search again.
func RunSearchTUI(p *assistant.Pipeline, v *validate.Validator) error {
	cfg, err := config.Load()
	if err != nil {
		cfg = &config.AppConfig{}
	}

	for {
		req := assistant.SearchRequest{
			Origin:      cfg.DefaultFrom,
			Destination: cfg.DefaultTo,
		}

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("🔸 Departure station").
					Description("Station code or name").
					Placeholder("e.g. NDLS or New Delhi").
					Value(&req.Origin).
					Validate(validateStationInput),
				huh.NewInput().
					Title("🔸 Destination station").
					Description("Station code or name").
					Placeholder("e.g. BCT or Mumbai Central").
					Value(&req.Destination).
					Validate(validateStationInput),
				huh.NewInput().
					Title("🔸 Date of journey").
					Placeholder("DD-MM-YYYY").
					Value(&req.Date).
					Validate(dateInputValidator(v)),
			),
		).WithTheme(GetTheme())

		if err := form.Run(); err != nil {
			return err
		}

		PrintReply(req, Search(p, req))

		again := false
		confirm := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title("Search for another journey?").
					Value(&again),
			),
		).WithTheme(GetTheme())

		if err := confirm.Run(); err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

// Search runs the assistant pipeline behind a spinner.
func Search(p *assistant.Pipeline, req assistant.SearchRequest) assistant.Reply {
	var reply assistant.Reply

	_ = spinner.New().
		Title(fmt.Sprintf("Looking up trains from %s to %s...", displayName(req.Origin), displayName(req.Destination))).
		Action(func() {
			reply = p.Run(req)
		}).
		Run()

	return reply
}

// PrintReply prints a styled header followed by the unstyled reply text.
func PrintReply(req assistant.SearchRequest, reply assistant.Reply) {
	ApplyTheme()
	if !reply.Validation.Valid {
		fmt.Println(errorStyle.Render("\n⚠️ Some details need fixing"))
		fmt.Println(reply.Text)
		fmt.Println()
		return
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n--- 🚆 %s -> %s on %s ---",
		displayName(req.Origin), displayName(req.Destination), strings.TrimSpace(req.Date))))
	fmt.Println()
	fmt.Println(reply.Text)
	fmt.Println()
}

// displayName title-cases what the user typed, keeping short codes upper-case
func displayName(s string) string {
	s = strings.TrimSpace(s)
	if len(s) <= 5 && !strings.Contains(s, " ") {
		return strings.ToUpper(s)
	}
	return cases.Title(language.English).String(strings.ToLower(s))
}
