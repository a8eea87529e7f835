package scene

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/milk9111/mailme/levels"
	"github.com/milk9111/mailme/obj"
	"github.com/milk9111/mailme/prefabs"
	"github.com/milk9111/mailme/world"
)

func newTestScene(t *testing.T, items levels.ItemList) *MailScene {
	t.Helper()
	spec, err := prefabs.LoadSceneSpec()
	if err != nil {
		t.Fatal(err)
	}
	ed, err := prefabs.LoadEditorSpec()
	if err != nil {
		t.Fatal(err)
	}
	pal, err := prefabs.LoadPaletteSpec()
	if err != nil {
		t.Fatal(err)
	}
	s, err := New(Options{
		Spec:    spec,
		Editor:  ed,
		Palette: pal,
		Items:   items,
		MapPath: filepath.Join(t.TempDir(), "map.json"),
	})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(s.Close)
	return s
}

func press(keys ...obj.Key) obj.InputState {
	return obj.InputState{Pressed: obj.KeySet(0).With(keys...)}
}

func TestNewRequiresSpecs(t *testing.T) {
	if _, err := New(Options{}); err != ErrNoSpec {
		t.Fatalf("expected ErrNoSpec, got %v", err)
	}
}

func TestInteractWithBench(t *testing.T) {
	s := newTestScene(t, levels.Shipped(nil))
	now := time.Now()

	s.Player().Teleport(1000, 1020)
	s.Update(obj.InputState{}, now)
	if s.Nearby() != world.InteractCompose {
		t.Fatalf("nearby %q at the bench", s.Nearby())
	}
	s.Update(press(obj.KeyE), now)
	if got := s.Interactions(); len(got) != 1 || got[0] != world.InteractCompose {
		t.Fatalf("interactions %v", got)
	}
	if len(s.Interactions()) != 0 {
		t.Fatal("Interactions did not drain")
	}

	s.Player().Teleport(1600, 1600)
	s.Update(press(obj.KeyE), now)
	if s.Nearby() != world.InteractNone || len(s.Interactions()) != 0 {
		t.Fatal("interaction raised far from any prop")
	}
}

func TestFenceKeepsPlayerInside(t *testing.T) {
	s := newTestScene(t, nil)
	s.Player().Teleport(160, 1000)
	for range 120 {
		s.Update(obj.InputState{MoveX: -1}, time.Now())
	}
	if x := s.Player().Position().X; x < s.Spec().Fence.Inset {
		t.Fatalf("player escaped through the fence: x=%v", x)
	}
}

func TestPlayerDrawnInsideBuild(t *testing.T) {
	s := newTestScene(t, levels.Shipped(nil))
	if s.Player().Node().Parent() != s.Build().Root {
		t.Fatal("player not attached to the build")
	}
	s.State().SetItems(levels.ItemList{&levels.Tree{}})
	if s.Player().Node().Destroyed() || s.Player().Node().Parent() != s.Build().Root {
		t.Fatal("player lost across a rebuild")
	}
	if layers := s.Layers(); len(layers) != 3 || layers[1] != s.Build().Root {
		t.Fatal("unexpected layers")
	}
}

func TestEditorToggle(t *testing.T) {
	s := newTestScene(t, nil)
	now := time.Now()

	click := obj.InputState{MouseWorldX: 1503, MouseWorldY: 1497, MouseLeftPressed: true, MouseLeftHeld: true}
	s.Update(click, now)
	if s.State().Len() != 0 {
		t.Fatal("click placed an item outside the editor")
	}

	s.Update(press(obj.KeyF2), now)
	if !s.Editing() || !s.Layers()[2].Visible() {
		t.Fatal("F2 did not open the editor")
	}
	s.Update(click, now)
	if s.State().Len() != 1 || s.State().Items()[0].Pos() != (levels.Vec{X: 1500, Y: 1500}) {
		t.Fatalf("editor click gave %+v", s.State().Items())
	}
	if len(s.Layers()[2].GraphicsList()[0].Commands()) != 1 {
		t.Fatal("handles not drawn")
	}

	s.Update(press(obj.KeyF2), now)
	if s.Editing() || s.Layers()[2].Visible() {
		t.Fatal("F2 did not close the editor")
	}
	// the layout outlives the editor session, the selection does not
	if s.State().Len() != 1 || s.State().SelectedIndex() != -1 || s.State().Dragging() {
		t.Fatal("closing the editor did not reset the session")
	}
}

func TestHandleFileChange(t *testing.T) {
	s := newTestScene(t, levels.Shipped(nil))
	if err := levels.SaveFile(s.mapPath, levels.ItemList{&levels.Mailbox{Base: levels.Base{X: 5, Y: 5}}}); err != nil {
		t.Fatal(err)
	}
	s.HandleFileChange(s.mapPath)
	if s.State().Len() != 1 || s.Build().Interactables.Inbox == nil {
		t.Fatal("map change not applied")
	}

	other := filepath.Join(filepath.Dir(s.mapPath), "other.json")
	if err := os.WriteFile(other, []byte("[]"), 0o644); err != nil {
		t.Fatal(err)
	}
	s.HandleFileChange(other)
	if s.State().Len() != 1 {
		t.Fatal("unrelated file replaced the layout")
	}

	script := filepath.Join(filepath.Dir(s.mapPath), "yard.tengo")
	src := `items := [item("tree", 10, 10), item("bench", 100, 100)]`
	if err := os.WriteFile(script, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	s.HandleFileChange(script)
	if s.State().Len() != 2 || s.Build().Interactables.Compose == nil {
		t.Fatalf("script reload gave %d items", s.State().Len())
	}
}

func TestCloseReleasesFootprints(t *testing.T) {
	spec, _ := prefabs.LoadSceneSpec()
	ed, _ := prefabs.LoadEditorSpec()
	s, err := New(Options{Spec: spec, Editor: ed, Items: levels.Shipped(nil)})
	if err != nil {
		t.Fatal(err)
	}
	cw := s.Collision()
	if cw.Count() <= 4 {
		t.Fatal("expected fence and layout footprints")
	}
	s.Close()
	if cw.Count() != 0 {
		t.Fatalf("%d footprints survive Close", cw.Count())
	}
}

func TestOwnSaveDoesNotReload(t *testing.T) {
	s := newTestScene(t, levels.Shipped(nil))
	if err := levels.SaveFile(s.mapPath, s.State().Items()); err != nil {
		t.Fatal(err)
	}
	s.State().Select(3)
	before := s.State().Rebuilds()
	s.HandleFileChange(s.mapPath)
	if s.State().Rebuilds() != before || s.State().SelectedIndex() != 3 {
		t.Fatal("reloaded a file identical to the current layout")
	}
}
