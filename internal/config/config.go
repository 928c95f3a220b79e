package config

import (
	"fmt"
	"os"

	"mabacktest/internal/app"

	"gopkg.in/yaml.v3"
)

// Config holds CLI defaults. Everything here can be overridden by
// command flags; the strategy itself takes no configuration beyond
// the two windows.
type Config struct {
	Strategy struct {
		ShortWindow int `yaml:"short_window"`
		LongWindow  int `yaml:"long_window"`
	} `yaml:"strategy"`
	Data struct {
		BarFile string `yaml:"bar_file"`
	} `yaml:"data"`
}

// Load reads config from a YAML file. A missing file is fine and
// yields the defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if cfg.Strategy.ShortWindow == 0 {
		cfg.Strategy.ShortWindow = app.DefaultShortWindow
	}
	if cfg.Strategy.LongWindow == 0 {
		cfg.Strategy.LongWindow = app.DefaultLongWindow
	}

	return cfg, nil
}
