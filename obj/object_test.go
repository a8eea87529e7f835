package obj

import (
	"testing"

	"github.com/milk9111/mailme/gfx"
	"github.com/milk9111/mailme/levels"
)

func TestObjectSetPositionMovesFootprints(t *testing.T) {
	cw := NewCollisionWorld()
	o, err := (benchFactory{}).Create(cw, &levels.Bench{Base: levels.Base{X: 100, Y: 100}})
	if err != nil {
		t.Fatal(err)
	}
	// bench footprint is centered 8 below the anchor
	if len(cw.BoxesAt(100, 108)) != 1 {
		t.Fatal("footprint not registered at the anchor")
	}

	o.SetPosition(400, 300)
	if len(cw.BoxesAt(100, 108)) != 0 {
		t.Fatal("footprint left behind at old position")
	}
	if len(cw.BoxesAt(400, 308)) != 1 {
		t.Fatal("footprint not moved to new position")
	}
	if o.Node().X != 400 || o.Node().Y != 300 || o.Node().Depth != 300 {
		t.Fatalf("node not realigned: %+v", o.Node())
	}
	if cw.Count() != 1 {
		t.Fatalf("move changed box count to %d", cw.Count())
	}
}

func TestObjectDestroy(t *testing.T) {
	cw := NewCollisionWorld()
	o, err := (lampFactory{}).Create(cw, &levels.Lamp{Base: levels.Base{X: 10, Y: 10}})
	if err != nil {
		t.Fatal(err)
	}
	if cw.Count() == 0 {
		t.Fatal("lamp registered no footprint")
	}
	o.Destroy()
	if cw.Count() != 0 {
		t.Fatalf("%d footprints survive Destroy", cw.Count())
	}
	if !o.Destroyed() || !o.Node().Destroyed() {
		t.Fatal("object not marked destroyed")
	}
	o.Destroy()
	o.SetPosition(50, 50)
	if cw.Count() != 0 {
		t.Fatal("destroyed object touched the collision world")
	}
}

func TestGroundDrawsBelowProps(t *testing.T) {
	tile, err := (groundFactory{kind: levels.KindDirt}).Create(nil, &levels.Ground{Base: levels.Base{Y: 900}, Tag: levels.KindDirt})
	if err != nil {
		t.Fatal(err)
	}
	tree, err := (treeFactory{}).Create(nil, &levels.Tree{Base: levels.Base{Y: 100}})
	if err != nil {
		t.Fatal(err)
	}
	if tile.Node().Depth >= tree.Node().Depth {
		t.Fatalf("tile depth %v not below tree depth %v", tile.Node().Depth, tree.Node().Depth)
	}
	tile.SetPosition(0, 1000)
	if tile.Node().Depth != 1000+groundDepth {
		t.Fatalf("tile depth after move %v", tile.Node().Depth)
	}
}

func TestDebugOverlayHiddenByDefault(t *testing.T) {
	o, err := (colliderFactory{}).Create(nil, &levels.Collider{W: 20, H: 20})
	if err != nil {
		t.Fatal(err)
	}
	if o.debug.Visible() {
		t.Fatal("collider overlay visible outside the editor")
	}
	o.SetDebugVisible(true)
	if !o.debug.Visible() {
		t.Fatal("overlay not shown")
	}
}

func commandCount(n *gfx.Node) int {
	total := 0
	n.Walk(func(node *gfx.Node, _, _ float64) {
		for _, g := range node.GraphicsList() {
			total += len(g.Commands())
		}
	})
	return total
}

func TestOversizedRecordsAreBounded(t *testing.T) {
	small, err := (rocksFactory{}).Create(nil, &levels.Rocks{Count: levels.Ptr(maxRocks)})
	if err != nil {
		t.Fatal(err)
	}
	huge, err := (rocksFactory{}).Create(nil, &levels.Rocks{Count: levels.Ptr(2_000_000)})
	if err != nil {
		t.Fatal(err)
	}
	if commandCount(huge.Node()) != commandCount(small.Node()) {
		t.Fatalf("rock count not capped: %d commands", commandCount(huge.Node()))
	}

	cases := []struct {
		name string
		size float64
		want float64
	}{
		{"huge", 20_000_000, maxTileSize},
		{"negative", -50, 0},
		{"normal", 64, 64},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tile, err := (groundFactory{kind: levels.KindPlanks}).Create(nil,
				&levels.Ground{Tag: levels.KindPlanks, Size: levels.Ptr(c.size)})
			if err != nil {
				t.Fatal(err)
			}
			if n := commandCount(tile.Node()); n > 2+int(maxTileSize)/12+1 {
				t.Fatalf("%d commands for one tile", n)
			}
			cmds := tile.Node().GraphicsList()[0].Commands()
			if cmds[0].W != c.want {
				t.Fatalf("tile width %v, want %v", cmds[0].W, c.want)
			}
		})
	}
}
