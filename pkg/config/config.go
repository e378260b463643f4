// Package config loads the command-line tool's TOML settings.
//
// A config file looks like:
//
//	base_selector = ".tooltipper"
//	visible_class = "tooltipper-block"
//	events = ["#help:mouseenter", "#more:click"]
//
//	[viewport]
//	width = 800
//	height = 600
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds the tool's settings. Zero fields are filled from Default.
type Config struct {
	BaseSelector string   `toml:"base_selector"`
	VisibleClass string   `toml:"visible_class"`
	Viewport     Viewport `toml:"viewport"`
	Events       []string `toml:"events"`
}

// Viewport is the canvas size used for snapshots and the viewer window.
type Viewport struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		BaseSelector: ".tooltipper",
		VisibleClass: "tooltipper-block",
		Viewport:     Viewport{Width: 800, Height: 600},
	}
}

// Load reads path over Default. An empty path returns the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data)
}

// Parse decodes TOML over Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("parsing config: unknown keys %s", strings.Join(keys, ", "))
	}
	cfg.fillDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) fillDefaults() {
	def := Default()
	if c.BaseSelector == "" {
		c.BaseSelector = def.BaseSelector
	}
	if c.VisibleClass == "" {
		c.VisibleClass = def.VisibleClass
	}
	if c.Viewport.Width == 0 {
		c.Viewport.Width = def.Viewport.Width
	}
	if c.Viewport.Height == 0 {
		c.Viewport.Height = def.Viewport.Height
	}
}

// Validate checks the viewport and the event list syntax.
func (c Config) Validate() error {
	if c.Viewport.Width < 0 || c.Viewport.Height < 0 {
		return fmt.Errorf("invalid viewport %dx%d", c.Viewport.Width, c.Viewport.Height)
	}
	for _, ev := range c.Events {
		if _, _, err := ParseEvent(ev); err != nil {
			return err
		}
	}
	return nil
}

// ParseEvent splits a "selector:type" event string at its last colon, so
// selectors containing pseudo-classes still parse.
func ParseEvent(spec string) (selector, typ string, err error) {
	i := strings.LastIndexByte(spec, ':')
	if i <= 0 || i == len(spec)-1 {
		return "", "", fmt.Errorf("invalid event %q: want selector:type", spec)
	}
	return strings.TrimSpace(spec[:i]), strings.TrimSpace(spec[i+1:]), nil
}
