// Command editor opens the village with the layout editor enabled on a map
// file. Ctrl+S writes the file back.
package main

import (
	"flag"
	"log"

	"github.com/milk9111/mailme/app"
	"github.com/milk9111/mailme/config"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to the TOML config file")
	mapPath := flag.String("map", "levels/map.json", "layout JSON file to edit")
	noWatch := flag.Bool("nowatch", false, "do not reload the map when it changes on disk")
	flag.Parse()

	cfg, err := config.LoadOptional(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	cfg.World.Map = *mapPath
	cfg.World.Script = ""
	cfg.Editor.Enabled = true
	if *noWatch {
		cfg.World.Watch = false
	}
	cfg.Window.Title += " (editor)"

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync() //nolint:errcheck

	if err := app.Run(cfg, logger); err != nil {
		logger.Fatal("editor exited", zap.Error(err))
	}
}
