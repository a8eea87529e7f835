package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

//go:embed *.json
var LevelsFS embed.FS

// ShippedMap is the name of the layout bundled with the binary.
const ShippedMap = "map.json"

// LoadFS reads and parses a layout from fsys.
func LoadFS(fsys fs.FS, name string, log *zap.Logger) (ItemList, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read layout: %w", err)
	}
	items, err := Deserialize(data, log)
	if err != nil {
		return nil, fmt.Errorf("parse layout %s: %w", name, err)
	}
	return items, nil
}

// Shipped returns the bundled village layout.
func Shipped(log *zap.Logger) ItemList {
	items, err := LoadFS(LevelsFS, ShippedMap, log)
	if err != nil {
		if log != nil {
			log.Error("shipped layout unreadable", zap.Error(err))
		}
		return ItemList{}
	}
	return items
}

// LoadFile reads a layout from disk. A missing or unparsable file yields an
// empty list so startup never fails on a bad map.
func LoadFile(path string, log *zap.Logger) ItemList {
	if log == nil {
		log = zap.NewNop()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Warn("layout file not found, starting empty", zap.String("path", path))
		} else {
			log.Warn("layout file unreadable, starting empty", zap.String("path", path), zap.Error(err))
		}
		return ItemList{}
	}
	items, err := Deserialize(data, log)
	if err != nil {
		log.Warn("layout file unparsable, starting empty", zap.String("path", path), zap.Error(err))
		return ItemList{}
	}
	return items
}

// SaveFile writes items to path, replacing any previous file in one rename.
func SaveFile(path string, items ItemList) error {
	data, err := Serialize(items)
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create layout dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".layout-*.json")
	if err != nil {
		return fmt.Errorf("create temp layout: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(append(data, '\n')); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write layout: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write layout: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace layout %s: %w", path, err)
	}
	return nil
}
