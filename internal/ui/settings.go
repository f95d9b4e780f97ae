package ui

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Settings holds the application UI settings
type Settings struct {
	// InitialVolume is the playback volume applied when a record is
	// opened, in percent. Default: 80
	InitialVolume int `json:"initialVolume"`

	// SeekStepSeconds is how far h/l and the arrow keys move the
	// playback position. Default: 10
	SeekStepSeconds int `json:"seekStepSeconds"`

	// FuzzySearch enables fuzzy matching in the search bar instead of
	// plain substring matching. Default: false
	FuzzySearch bool `json:"fuzzySearch"`
}

// DefaultSettings returns the default settings
func DefaultSettings() *Settings {
	return &Settings{
		InitialVolume:   80,
		SeekStepSeconds: 10,
	}
}

// LoadSettings loads the settings from the config directory
func LoadSettings(configDir string) (*Settings, error) {
	settingsPath := filepath.Join(configDir, "settings.json")

	if _, err := os.Stat(settingsPath); os.IsNotExist(err) {
		return DefaultSettings(), nil
	}

	data, err := os.ReadFile(settingsPath)
	if err != nil {
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	// Clamp hand-edited values back into range
	if settings.InitialVolume < 0 {
		settings.InitialVolume = 0
	}
	if settings.InitialVolume > 100 {
		settings.InitialVolume = 100
	}
	if settings.SeekStepSeconds <= 0 {
		settings.SeekStepSeconds = 10
	}

	return settings, nil
}

// SaveSettings saves the settings to the config directory
func SaveSettings(configDir string, settings *Settings) error {
	settingsPath := filepath.Join(configDir, "settings.json")

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	return os.WriteFile(settingsPath, data, 0644)
}
