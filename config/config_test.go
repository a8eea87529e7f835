package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zapcore"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadKeepsDefaultsForMissingKeys(t *testing.T) {
	path := writeConfig(t, `
[world]
map = "maps/village.json"

[logging]
level = "debug"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.World.Map != "maps/village.json" || !cfg.World.Watch {
		t.Fatalf("world section %+v", cfg.World)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "console" {
		t.Fatalf("logging section %+v", cfg.Logging)
	}
	if cfg.Window != Defaults().Window {
		t.Fatalf("window section %+v", cfg.Window)
	}
}

func TestLoadErrors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.toml")
	if _, err := Load(missing); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
	cfg, err := LoadOptional(missing)
	if err != nil || cfg.Window.Title != "MailMe" {
		t.Fatalf("LoadOptional: %v", err)
	}

	bad := writeConfig(t, "[window\nwidth = ")
	if _, err := Load(bad); err == nil {
		t.Fatal("malformed toml accepted")
	}
	if _, err := LoadOptional(bad); err == nil {
		t.Fatal("LoadOptional hid a parse error")
	}
}

func TestNewLogger(t *testing.T) {
	cases := []struct {
		cfg  LoggingConfig
		want zapcore.Level
	}{
		{LoggingConfig{Level: "debug", Format: "console"}, zapcore.DebugLevel},
		{LoggingConfig{Level: "warn", Format: "json"}, zapcore.WarnLevel},
		{LoggingConfig{Level: "loud"}, zapcore.InfoLevel},
	}
	for _, c := range cases {
		log, err := NewLogger(c.cfg)
		if err != nil {
			t.Fatal(err)
		}
		if !log.Core().Enabled(c.want) || (c.want > zapcore.DebugLevel && log.Core().Enabled(c.want-1)) {
			t.Fatalf("%+v: wrong level", c.cfg)
		}
	}
}
