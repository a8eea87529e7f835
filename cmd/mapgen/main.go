// Command mapgen runs a tengo layout script and writes the resulting layout
// as a map JSON file.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/milk9111/mailme/config"
	"github.com/milk9111/mailme/levels"
	"github.com/milk9111/mailme/prefabs"
	"go.uber.org/zap"
)

func main() {
	script := flag.String("script", "orchard", "script name in prefabs/scripts, or a .tengo file path")
	out := flag.String("out", "map.json", "output map file; - writes to stdout")
	level := flag.String("log", "info", "log level")
	flag.Parse()

	log, err := config.NewLogger(config.LoggingConfig{Level: *level, Format: "console"})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync() //nolint:errcheck

	if err := run(*script, *out, log); err != nil {
		log.Fatal("mapgen failed", zap.Error(err))
	}
}

func run(script, out string, log *zap.Logger) error {
	src, err := readScript(script)
	if err != nil {
		return err
	}
	items, err := levels.RunScript(src, log)
	if err != nil {
		return err
	}
	if out == "-" {
		data, err := levels.Serialize(items)
		if err != nil {
			return err
		}
		_, err = fmt.Println(string(data))
		return err
	}
	if err := levels.SaveFile(out, items); err != nil {
		return err
	}
	log.Info("map written", zap.String("path", out), zap.Int("items", len(items)))
	return nil
}

// readScript prefers an existing file path, then the prefab script lookup.
func readScript(name string) ([]byte, error) {
	if info, err := os.Stat(name); err == nil && !info.IsDir() {
		return os.ReadFile(name)
	}
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("load script %s: %w", name, err)
	}
	return src, nil
}
