package levels

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestShippedLayout(t *testing.T) {
	items := Shipped(nil)
	if len(items) == 0 {
		t.Fatal("shipped layout is empty")
	}
	counts := map[Kind]int{}
	for _, it := range items {
		if !it.Kind().Known() {
			t.Fatalf("shipped layout contains unknown kind %q", it.Kind())
		}
		counts[it.Kind()]++
	}
	for _, k := range []Kind{KindBench, KindMailbox, KindWardrobe} {
		if counts[k] != 1 {
			t.Fatalf("expected exactly one %s, got %d", k, counts[k])
		}
	}
}

func TestLoadFileFallsBackToEmpty(t *testing.T) {
	dir := t.TempDir()
	broken := filepath.Join(dir, "broken.json")
	if err := os.WriteFile(broken, []byte(`{"t":`), 0o644); err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name string
		path string
	}{
		{"missing", filepath.Join(dir, "nope.json")},
		{"unparsable", broken},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			core, logs := observer.New(zap.WarnLevel)
			items := LoadFile(c.path, zap.New(core))
			if items == nil || len(items) != 0 {
				t.Fatalf("expected empty non-nil list, got %#v", items)
			}
			if logs.Len() != 1 {
				t.Fatalf("expected one warning, got %d", logs.Len())
			}
		})
	}
}

func TestSaveFileThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "map.json")
	want := sampleItems()
	if err := SaveFile(path, want); err != nil {
		t.Fatalf("SaveFile: %v", err)
	}
	got := LoadFile(path, nil)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("saved layout differs after reload")
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("temp files left behind: %v", entries)
	}
}
