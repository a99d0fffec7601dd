package tui

import (
	"trainbot/pkg/assistant"
	"trainbot/pkg/config"
	"trainbot/pkg/validate"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// defaultAccent is the fallback theme color (ANSI 256 palette)
const defaultAccent = "39"

var (
	// These act as fallbacks until ApplyTheme() loads the saved accent color
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(defaultAccent))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

// ApplyTheme loads the user's saved accent color into the styles used by
// plain printed output and returns it.
func ApplyTheme() string {
	cfg, err := config.Load()
	baseColor := defaultAccent

	if err == nil && cfg != nil && cfg.AccentColor != "" {
		baseColor = cfg.AccentColor
	}

	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(baseColor))
	return baseColor
}

// GetTheme constructs the form theme from the saved accent color.
func GetTheme() *huh.Theme {
	return GetCustomTheme(ApplyTheme())
}

// GetCustomTheme returns a huh.Theme using the given lipgloss color string.
func GetCustomTheme(baseColor string) *huh.Theme {
	t := huh.ThemeCharm()
	p := lipgloss.Color(baseColor)

	t.Focused.Title = t.Focused.Title.Foreground(p).Bold(true)
	t.Focused.Base = t.Focused.Base.Border(lipgloss.RoundedBorder()).BorderForeground(p).Padding(0, 1)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(p)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(p)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(p)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(p)
	t.Focused.FocusedButton = t.Focused.FocusedButton.Foreground(lipgloss.Color("0")).Background(p)

	// Softer borders for unfocused elements
	t.Blurred.Base = t.Blurred.Base.Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1)

	return t
}

// RunTUI launches the main menu
func RunTUI(p *assistant.Pipeline, v *validate.Validator) error {
	var action string

	initialForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("🚆 Welcome to TrainBot! What would you like to do?").
				Options(
					huh.NewOption("🔎 Find trains", "search"),
					huh.NewOption("🗺️ Browse station codes", "stations"),
					huh.NewOption("⚙️ Settings", "config"),
				).
				Value(&action),
		),
	).WithTheme(GetTheme())

	if err := initialForm.Run(); err != nil {
		return err
	}

	switch action {
	case "stations":
		PrintStations()
		return nil
	case "config":
		return RunConfigTUI()
	}

	return RunSearchTUI(p, v)
}
