package app

import (
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/mailme/config"
	"github.com/milk9111/mailme/editor"
	"github.com/milk9111/mailme/levels"
	"github.com/milk9111/mailme/prefabs"
	"github.com/milk9111/mailme/scene"
	"go.uber.org/zap"
)

// DefaultMapPath is where the editor saves when no map file was given.
const DefaultMapPath = "map.json"

// LoadItems picks the startup layout: the configured map file, else the
// configured tengo script, else the shipped map.
func LoadItems(cfg config.WorldConfig, log *zap.Logger) levels.ItemList {
	switch {
	case cfg.Map != "":
		return levels.LoadFile(cfg.Map, log)
	case cfg.Script != "":
		src, err := prefabs.LoadScript(cfg.Script)
		if err != nil {
			log.Warn("layout script unreadable, using shipped map", zap.String("script", cfg.Script), zap.Error(err))
			return levels.Shipped(log)
		}
		items, err := levels.RunScript(src, log)
		if err != nil {
			log.Warn("layout script failed, using shipped map", zap.String("script", cfg.Script), zap.Error(err))
			return levels.Shipped(log)
		}
		return items
	}
	return levels.Shipped(log)
}

// Run opens the window and blocks until the game exits.
func Run(cfg *config.Config, log *zap.Logger) error {
	sceneSpec, err := prefabs.LoadSceneSpec()
	if err != nil {
		return err
	}
	editorSpec, err := prefabs.LoadEditorSpec()
	if err != nil {
		return err
	}
	palette, err := prefabs.LoadPaletteSpec()
	if err != nil {
		return err
	}

	mapPath := cfg.World.Map
	if mapPath == "" {
		mapPath = DefaultMapPath
	}

	var clip editor.Clipboard
	if cfg.Editor.Clipboard {
		if c, err := NewSystemClipboard(); err != nil {
			log.Warn("clipboard unavailable", zap.Error(err))
		} else {
			clip = c
		}
	}

	s, err := scene.New(scene.Options{
		Spec:      sceneSpec,
		Editor:    editorSpec,
		Palette:   palette,
		Items:     LoadItems(cfg.World, log),
		MapPath:   mapPath,
		Clipboard: clip,
		Logger:    log,
	})
	if err != nil {
		return err
	}
	s.SetEditing(cfg.Editor.Enabled)
	s.SetDebug(cfg.Editor.ShowColliders)

	var watcher *levels.Watcher
	if cfg.World.Watch {
		watcher = watch(log, filepath.Dir(mapPath), "prefabs", filepath.Join("prefabs", "scripts"))
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	game := NewGame(s, Options{
		Width:   cfg.Window.Width,
		Height:  cfg.Window.Height,
		Zoom:    cfg.Window.Zoom,
		Watcher: watcher,
		Logger:  log,
	})
	defer game.Close()

	log.Info("starting",
		zap.String("map", mapPath),
		zap.Int("items", s.State().Len()),
		zap.Bool("editor", cfg.Editor.Enabled))
	return ebiten.RunGame(game)
}

// watch starts a watcher on the existing directories among dirs.
func watch(log *zap.Logger, dirs ...string) *levels.Watcher {
	var existing []string
	for _, d := range dirs {
		if info, err := os.Stat(d); err == nil && info.IsDir() {
			existing = append(existing, d)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	w, err := levels.NewWatcher(existing...)
	if err != nil {
		log.Warn("file watching disabled", zap.Error(err))
		return nil
	}
	log.Debug("watching for changes", zap.Strings("dirs", existing))
	return w
}
