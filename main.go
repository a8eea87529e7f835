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
	mapPath := flag.String("map", "", "layout JSON file (default: shipped map)")
	script := flag.String("script", "", "tengo layout script in prefabs/scripts, used when -map is empty")
	edit := flag.Bool("edit", false, "start with the layout editor open")
	debug := flag.Bool("debug", false, "show collider overlays and physics shapes")
	flag.Parse()

	cfg, err := config.LoadOptional(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *mapPath != "" {
		cfg.World.Map = *mapPath
	}
	if *script != "" {
		cfg.World.Script = *script
	}
	if *edit {
		cfg.Editor.Enabled = true
	}
	if *debug {
		cfg.Editor.ShowColliders = true
	}

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync() //nolint:errcheck

	if err := app.Run(cfg, logger); err != nil {
		logger.Fatal("game exited", zap.Error(err))
	}
}
