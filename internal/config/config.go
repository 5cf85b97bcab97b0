// Package config loads the optional YAML configuration file that tunes
// marker style, division presets, canvas bounds, and the server address.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the file-backed configuration. Every field has a default;
// a missing file is not an error.
type Config struct {
	Marker struct {
		Color string  `yaml:"color"`
		Size  float64 `yaml:"size"`
	} `yaml:"marker"`

	Division struct {
		Presets      []int   `yaml:"presets"`
		HitThreshold float64 `yaml:"hit_threshold"`
	} `yaml:"division"`

	Canvas struct {
		Width  float64 `yaml:"width"`
		Height float64 `yaml:"height"`
	} `yaml:"canvas"`

	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
}

// Default returns the built-in configuration.
func Default() Config {
	var c Config
	c.Division.Presets = []int{2, 3, 4, 5}
	c.Division.HitThreshold = 10
	c.Canvas.Width = 800
	c.Canvas.Height = 600
	c.Server.Addr = ":8080"
	return c
}

// Load reads a configuration file and merges it over the defaults.
// A missing file yields the defaults with no error; a malformed file
// yields a wrapped error naming the path.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
