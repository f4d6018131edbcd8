// Package config loads application settings from TOML files with
// validated defaults. Missing files are not an error: callers get the
// defaults and may ship without a config file at all.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/lixenwraith/runeframe/render"
)

// Config holds display and loop settings
type Config struct {
	Title      string `toml:"title"`
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Font       string `toml:"font"`
	FPS        int    `toml:"fps"`
	Background Color  `toml:"background"`
}

// Color is an RGB triple in TOML ([3]int, 0-255 per channel)
type Color [3]int

// RGBA converts the config color to an opaque render color
func (c Color) RGBA() render.RGBA {
	return render.RGBA{R: uint8(c[0]), G: uint8(c[1]), B: uint8(c[2]), A: 255}
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		Title:      "runeframe",
		Width:      80,
		Height:     30,
		Font:       "10x20",
		FPS:        60,
		Background: Color{20, 20, 30},
	}
}

// Load reads path and overlays it on the defaults. A missing file
// returns the defaults; a malformed or invalid file returns an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks ranges before the settings reach the engine
func (c Config) Validate() error {
	if c.Width < 1 || c.Height < 1 {
		return fmt.Errorf("window size %dx%d must be at least 1x1", c.Width, c.Height)
	}
	if c.FPS < 1 {
		return fmt.Errorf("fps %d must be at least 1", c.FPS)
	}
	for i, ch := range c.Background {
		if ch < 0 || ch > 255 {
			return fmt.Errorf("background channel %d value %d out of range 0-255", i, ch)
		}
	}
	return nil
}
