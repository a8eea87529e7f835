package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Window  WindowConfig  `toml:"window"`
	World   WorldConfig   `toml:"world"`
	Editor  EditorConfig  `toml:"editor"`
	Logging LoggingConfig `toml:"logging"`
}

type WindowConfig struct {
	Title  string  `toml:"title"`
	Width  int     `toml:"width"`
	Height int     `toml:"height"`
	Zoom   float64 `toml:"zoom"`
}

type WorldConfig struct {
	Map    string `toml:"map"`    // layout file; empty uses the shipped map
	Script string `toml:"script"` // tengo layout script, used when Map is empty
	Watch  bool   `toml:"watch"`  // reload the map when it changes on disk
}

type EditorConfig struct {
	Enabled       bool `toml:"enabled"`
	ShowColliders bool `toml:"show_colliders"`
	Clipboard     bool `toml:"clipboard"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOptional is Load, except a missing file yields the defaults.
func LoadOptional(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Defaults(), nil
	}
	return cfg, err
}

func Defaults() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "MailMe",
			Width:  1280,
			Height: 720,
			Zoom:   1,
		},
		World: WorldConfig{
			Watch: true,
		},
		Editor: EditorConfig{
			Clipboard: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
