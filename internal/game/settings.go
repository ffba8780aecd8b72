package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings are the tunables that make sense to change without rebuilding:
// window shape, traffic density, and the generation seed. Loaded from an
// optional YAML file; zero values fall back to the compiled defaults.
type Settings struct {
	Seed uint64 `yaml:"seed"`

	Window struct {
		Width  int    `yaml:"width"`
		Height int    `yaml:"height"`
		Title  string `yaml:"title"`
	} `yaml:"window"`

	Traffic struct {
		Cars int `yaml:"cars"`
	} `yaml:"traffic"`
}

// DefaultSettings returns the compiled-in configuration.
func DefaultSettings() Settings {
	var s Settings
	s.Window.Width = WindowWidth
	s.Window.Height = WindowHeight
	s.Window.Title = WindowTitle
	s.Traffic.Cars = DefaultTrafficCars
	return s
}

// LoadSettings reads a YAML settings file over the defaults. An empty path
// returns the defaults unchanged.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	if path == "" {
		return s, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("read settings: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parse settings: %w", err)
	}
	if s.Window.Width <= 0 {
		s.Window.Width = WindowWidth
	}
	if s.Window.Height <= 0 {
		s.Window.Height = WindowHeight
	}
	if s.Window.Title == "" {
		s.Window.Title = WindowTitle
	}
	if s.Traffic.Cars <= 0 {
		s.Traffic.Cars = DefaultTrafficCars
	}
	return s, nil
}
