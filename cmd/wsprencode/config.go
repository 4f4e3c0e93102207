package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ftl/wsprencode/wspr"
)

// Config contains the stations to encode.
type Config struct {
	Stations []StationConfig `yaml:"stations"`
}

// StationConfig describes one station as the user writes it: callsign and locator in any case, the locator with 4, 6
// or 8 characters.
type StationConfig struct {
	Callsign string `yaml:"callsign"`
	Locator  string `yaml:"locator"`
	Power    int    `yaml:"power"` // dBm
}

// LoadConfig loads the station list from a YAML file
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if len(config.Stations) == 0 {
		return nil, fmt.Errorf("no stations configured in %s", filename)
	}

	return &config, nil
}

// Station normalizes the configured values into a station that can be encoded.
func (c StationConfig) Station() (wspr.Station, error) {
	callsign, err := wspr.NormalizeCallsign(c.Callsign)
	if err != nil {
		return wspr.Station{}, fmt.Errorf("callsign %q: %w", c.Callsign, err)
	}
	locator, err := wspr.NormalizeLocator(c.Locator)
	if err != nil {
		return wspr.Station{}, fmt.Errorf("locator %q: %w", c.Locator, err)
	}
	if c.Power < 0 || c.Power > wspr.MaxPower {
		return wspr.Station{}, fmt.Errorf("power %d: %w", c.Power, wspr.ErrInvalidPower)
	}

	return wspr.NewStation(callsign, locator, uint8(c.Power)), nil
}
