package prefabs

import (
	"testing"

	"github.com/milk9111/mailme/levels"
	"gopkg.in/yaml.v3"
)

func TestLoadPaletteSpec(t *testing.T) {
	spec, err := LoadPaletteSpec()
	if err != nil {
		t.Fatalf("LoadPaletteSpec: %v", err)
	}
	if spec.Order[0] != levels.KindTree {
		t.Fatalf("expected tree first, got %s", spec.Order[0])
	}

	cases := []struct {
		kind  levels.Kind
		check func(t *testing.T, it levels.Item)
	}{
		{levels.KindHouse, func(t *testing.T, it levels.Item) {
			h := it.(*levels.House)
			if h.W != 240 || h.H != 180 || levels.Or(h.DoorPos, "") != levels.DoorCenter {
				t.Fatalf("house defaults %+v", h)
			}
		}},
		{levels.KindTree, func(t *testing.T, it levels.Item) {
			if s := levels.Or(it.(*levels.Tree).Scale, 0); s != 3.2 {
				t.Fatalf("tree scale %v", s)
			}
		}},
		{levels.KindRocks, func(t *testing.T, it levels.Item) {
			r := it.(*levels.Rocks)
			if levels.Or(r.Count, 0) != 3 || levels.Or(r.BaseScale, 0) != 1 {
				t.Fatalf("rocks defaults %+v", r)
			}
		}},
		{levels.KindSign, func(t *testing.T, it levels.Item) {
			if txt := levels.Or(it.(*levels.Sign).Text, ""); txt != "Sign" {
				t.Fatalf("sign text %q", txt)
			}
		}},
		{levels.KindWater, func(t *testing.T, it levels.Item) {
			g := it.(*levels.Ground)
			if g.Kind() != levels.KindWater || levels.Or(g.Size, 0) != 64 {
				t.Fatalf("water defaults %+v", g)
			}
		}},
		{levels.KindBench, func(t *testing.T, it levels.Item) {
			if it.Pos() != (levels.Vec{X: 20, Y: 40}) {
				t.Fatalf("bench pos %+v", it.Pos())
			}
		}},
	}
	for _, c := range cases {
		t.Run(string(c.kind), func(t *testing.T) {
			it, err := spec.NewItem(c.kind, levels.Vec{X: 20, Y: 40})
			if err != nil {
				t.Fatalf("NewItem: %v", err)
			}
			if it.Kind() != c.kind {
				t.Fatalf("kind %s", it.Kind())
			}
			c.check(t, it)
		})
	}
}

func TestLoadSceneAndEditorSpecs(t *testing.T) {
	scene, err := LoadSceneSpec()
	if err != nil {
		t.Fatalf("LoadSceneSpec: %v", err)
	}
	if scene.Width != 3200 || scene.Sky != 0x86c5ff || scene.Player.Speed != 230 || len(scene.Paths) != 2 {
		t.Fatalf("unexpected scene spec %+v", scene)
	}

	ed, err := LoadEditorSpec()
	if err != nil {
		t.Fatalf("LoadEditorSpec: %v", err)
	}
	if ed.Grid != 20 || ed.DebounceMS != 30 || ed.SelectedColor != 0x00ff6a {
		t.Fatalf("unexpected editor spec %+v", ed)
	}
}

func TestHexUnmarshal(t *testing.T) {
	cases := []struct {
		in      string
		want    Hex
		wantErr bool
	}{
		{`"#a8876a"`, 0xa8876a, false},
		{`"3e2723"`, 0x3e2723, false},
		{`"#fff"`, 0, true},
		{`"#zzzzzz"`, 0, true},
		{`[1, 2]`, 0, true},
	}
	for _, c := range cases {
		var h Hex
		err := yaml.Unmarshal([]byte(c.in), &h)
		if (err != nil) != c.wantErr {
			t.Fatalf("%s: err = %v", c.in, err)
		}
		if !c.wantErr && h != c.want {
			t.Fatalf("%s: got %#x", c.in, h)
		}
	}
}

func TestLoadScript(t *testing.T) {
	for _, name := range []string{"orchard", "orchard.tengo", "scripts/orchard.tengo", "prefabs/scripts/orchard"} {
		src, err := LoadScript(name)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		items, err := levels.RunScript(src, nil)
		if err != nil {
			t.Fatalf("%s: RunScript: %v", name, err)
		}
		if len(items) != 30 {
			t.Fatalf("%s: expected 30 items, got %d", name, len(items))
		}
	}
}
