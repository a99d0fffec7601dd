package tui

import (
	"fmt"
	"strings"

	"trainbot/pkg/stations"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// RenderStations lays the known station names out as a two column table.
func RenderStations() string {
	known := stations.Known()

	width := 0
	for _, s := range known {
		if len(s.Name) > width {
			width = len(s.Name)
		}
	}

	codeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	title := cases.Title(language.English)

	var b strings.Builder
	for _, s := range known {
		fmt.Fprintf(&b, "  %-*s  %s\n", width, title.String(strings.ToLower(s.Name)), codeStyle.Render(s.Code))
	}
	return b.String()
}

// PrintStations prints the station table with a header.
func PrintStations() {
	ApplyTheme()
	fmt.Println(accentStyle.Render("\n--- 🗺️ Known stations ---"))
	fmt.Println(mutedStyle.Render("Names are matched case-insensitively. Anything else is treated as a station code.\n"))
	fmt.Print(RenderStations())
	fmt.Println()
}
