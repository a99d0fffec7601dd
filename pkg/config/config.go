package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"trainbot/pkg/stations"
)

// AppConfig holds all user-defined persistent settings.
// DefaultFrom and DefaultTo are resolved station codes; the *Name fields keep
// what the user typed when it was a name rather than a code.
type AppConfig struct {
	DefaultFrom     string `json:"default_from,omitempty"`
	DefaultFromName string `json:"default_from_name,omitempty"`
	DefaultTo       string `json:"default_to,omitempty"`
	DefaultToName   string `json:"default_to_name,omitempty"`
	AccentColor     string `json:"accent_color,omitempty"`
}

// SetDefaultFrom stores the departure station. An empty input clears it.
func (c *AppConfig) SetDefaultFrom(input string) {
	c.DefaultFrom, c.DefaultFromName = resolveDefault(input)
}

// SetDefaultTo stores the destination station. An empty input clears it.
func (c *AppConfig) SetDefaultTo(input string) {
	c.DefaultTo, c.DefaultToName = resolveDefault(input)
}

// FromLabel renders the saved departure as "New Delhi (NDLS)" or just the code.
func (c *AppConfig) FromLabel() string {
	return stationLabel(c.DefaultFromName, c.DefaultFrom)
}

// ToLabel renders the saved destination like FromLabel.
func (c *AppConfig) ToLabel() string {
	return stationLabel(c.DefaultToName, c.DefaultTo)
}

func resolveDefault(input string) (code, name string) {
	name = strings.TrimSpace(input)
	if name == "" {
		return "", ""
	}
	code = stations.Resolve(name)
	if strings.EqualFold(name, code) {
		return code, ""
	}
	return code, name
}

func stationLabel(name, code string) string {
	if code == "" {
		return ""
	}
	if name == "" {
		return code
	}
	return fmt.Sprintf("%s (%s)", name, code)
}

// getConfigPath returns the absolute path to ~/.trainbot.json
func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".trainbot.json"), nil
}

// Load reads the application configuration from disk.
// Returns an empty struct if the file does not exist.
func Load() (*AppConfig, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &AppConfig{}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg AppConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Save writes the application configuration back to disk.
func Save(cfg *AppConfig) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
