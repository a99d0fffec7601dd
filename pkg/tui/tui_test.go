package tui

import (
	"strings"
	"testing"
	"time"

	"trainbot/pkg/clock"
	"trainbot/pkg/config"
	"trainbot/pkg/validate"

	"github.com/stretchr/testify/assert"
)

func TestValidateStationInput(t *testing.T) {
	assert.NoError(t, validateStationInput("NDLS"))
	assert.NoError(t, validateStationInput("new delhi"))
	assert.Error(t, validateStationInput("N"))
	assert.Error(t, validateStationInput("   "))
	assert.Error(t, validateStationInput("É"))
	assert.NoError(t, validateStationInput("ÉÉ"))
}

func TestDateInputValidator(t *testing.T) {
	v := validate.New(clock.NewMock(time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)))
	check := dateInputValidator(v)

	assert.NoError(t, check("19-10-2026"))
	assert.NoError(t, check("25-12-2030"))
	assert.Error(t, check("18-10-2026"))
	assert.Error(t, check("2026-10-20"))
}

func TestValidateHexColor(t *testing.T) {
	assert.NoError(t, validateHexColor("#FF00aa"))
	assert.Error(t, validateHexColor("FF00AA"))
	assert.Error(t, validateHexColor("#FF00A"))
	assert.Error(t, validateHexColor("#GG00AA"))
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "NDLS", displayName(" ndls "))
	assert.Equal(t, "New Delhi", displayName("NEW DELHI"))
	assert.Equal(t, "Mumbai Central", displayName("mumbai central"))
}

func TestRenderStations(t *testing.T) {
	out := RenderStations()
	assert.Contains(t, out, "New Delhi")
	assert.Contains(t, out, "NDLS")

	// One line per known station, alphabetical
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.True(t, strings.Contains(lines[0], "Agra"), "first line: %q", lines[0])
}

func TestFormatConfig(t *testing.T) {
	out := FormatConfig(&config.AppConfig{DefaultFrom: "NDLS"})
	assert.Contains(t, out, "Default departure: NDLS")
	assert.Contains(t, out, "Default destination: Not set")
	assert.Contains(t, out, "Accent Color: Not set")

	named := &config.AppConfig{}
	named.SetDefaultTo("New Delhi")
	assert.Contains(t, FormatConfig(named), "Default destination: New Delhi (NDLS)")
}

func TestApplyTheme(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	assert.Equal(t, defaultAccent, ApplyTheme())

	assert.NoError(t, config.Save(&config.AppConfig{AccentColor: "#FF9933"}))
	assert.Equal(t, "#FF9933", ApplyTheme())
	assert.NotNil(t, GetTheme())
}
