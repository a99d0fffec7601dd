package tui

import (
	"fmt"
	"strings"

	"trainbot/pkg/config"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// RunConfigTUI launches the interactive experience for managing configurations
func RunConfigTUI() error {
	for {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		var action string

		initialForm := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Configuration Settings").
					Options(
						huh.NewOption("Set Accent Color (Theme)", "theme"),
						huh.NewOption("Set Default Route", "route"),
						huh.NewOption("View Current Config", "view"),
						huh.NewOption("Back", "back"),
					).
					Value(&action),
			),
		).WithTheme(GetTheme())

		if err := initialForm.Run(); err != nil {
			return err
		}

		switch action {
		case "back":
			return nil
		case "theme":
			err = runSetThemeTUI(cfg)
		case "route":
			err = runSetRouteTUI(cfg)
		case "view":
			fmt.Println(FormatConfig(cfg))
		}

		if err != nil {
			return err
		}
	}
}

// FormatConfig describes the saved settings for display.
func FormatConfig(cfg *config.AppConfig) string {
	orNotSet := func(s string) string {
		if s == "" {
			return "Not set"
		}
		return s
	}

	lines := []string{
		accentStyle.Render("\n--- Current Configuration (~/.trainbot.json) ---"),
		fmt.Sprintf("Default departure: %s", orNotSet(cfg.FromLabel())),
		fmt.Sprintf("Default destination: %s", orNotSet(cfg.ToLabel())),
		fmt.Sprintf("Accent Color: %s", orNotSet(cfg.AccentColor)),
	}
	return strings.Join(lines, "\n") + "\n"
}

func runSetRouteTUI(cfg *config.AppConfig) error {
	from, to := firstSet(cfg.DefaultFromName, cfg.DefaultFrom), firstSet(cfg.DefaultToName, cfg.DefaultTo)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Default departure station").
				Description("Pre-filled in every search. Leave empty to clear.").
				Placeholder("e.g. NDLS").
				Value(&from),
			huh.NewInput().
				Title("Default destination station").
				Placeholder("e.g. BCT").
				Value(&to),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.SetDefaultFrom(from)
	cfg.SetDefaultTo(to)
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Default route saved: %s -> %s\n", orDash(cfg.FromLabel()), orDash(cfg.ToLabel()))))
	return nil
}

func firstSet(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func colorBlock(color string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("██")
}

// validateHexColor accepts "#RRGGBB"
func validateHexColor(str string) error {
	if len(str) != 7 || !strings.HasPrefix(str, "#") {
		return fmt.Errorf("must be a valid 6-character hex code starting with #")
	}
	for _, r := range str[1:] {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return fmt.Errorf("must be a valid 6-character hex code starting with #")
		}
	}
	return nil
}

func runSetThemeTUI(cfg *config.AppConfig) error {
	var input string

	inputForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Choose an Accent Color for trainbot").
				Options(
					huh.NewOption(fmt.Sprintf("%s Signal Blue", colorBlock(defaultAccent)), defaultAccent),
					huh.NewOption(fmt.Sprintf("%s Rajdhani Red", colorBlock("160")), "160"),
					huh.NewOption(fmt.Sprintf("%s Shatabdi Saffron", colorBlock("214")), "214"),
					huh.NewOption(fmt.Sprintf("%s Sleeper Green", colorBlock("42")), "42"),
					huh.NewOption("✨ Custom Hex Code", "custom"),
				).
				Value(&input),
		),
	).WithTheme(GetTheme())

	if err := inputForm.Run(); err != nil {
		return err
	}

	if input == "custom" {
		var hexInput string
		hexForm := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Enter a Hex Color Code").
					Description("Include the # symbol. Example: #FF00FF").
					Placeholder("#").
					Value(&hexInput).
					Validate(validateHexColor),
			),
		).WithTheme(GetTheme())

		if err := hexForm.Run(); err != nil {
			return err
		}
		cfg.AccentColor = hexInput
	} else {
		cfg.AccentColor = input
	}

	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render("\n✅ Theme color saved.\n"))
	return nil
}
