package world

import (
	"errors"
	"testing"

	"github.com/milk9111/mailme/levels"
	"github.com/milk9111/mailme/obj"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newTestBuilder(t *testing.T) (*Builder, *obj.CollisionWorld, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zap.WarnLevel)
	cw := obj.NewCollisionWorld()
	b, err := NewBuilder(obj.DefaultRegistry(), cw, zap.New(core))
	if err != nil {
		t.Fatal(err)
	}
	return b, cw, logs
}

func TestNewBuilderRequiresCollaborators(t *testing.T) {
	if _, err := NewBuilder(nil, obj.NewCollisionWorld(), nil); !errors.Is(err, ErrNoRegistry) {
		t.Fatalf("expected ErrNoRegistry, got %v", err)
	}
	if _, err := NewBuilder(obj.DefaultRegistry(), nil, nil); !errors.Is(err, ErrNoObstacles) {
		t.Fatalf("expected ErrNoObstacles, got %v", err)
	}
}

func TestBuildSkipsUnknownKinds(t *testing.T) {
	b, _, logs := newTestBuilder(t)
	items := levels.ItemList{
		&levels.Tree{Base: levels.Base{X: 1, Y: 1}},
		levels.New("fountain", levels.Vec{X: 5, Y: 5}),
		&levels.Bench{Base: levels.Base{X: 10, Y: 10}},
	}
	build := b.Build(items)
	if len(build.Objects) != 2 {
		t.Fatalf("expected 2 objects, got %d", len(build.Objects))
	}
	if build.ObjectFor(1) != nil || build.ObjectFor(2) == nil {
		t.Fatal("item index mapping wrong")
	}
	if len(build.Root.Children()) != 2 {
		t.Fatalf("root holds %d children", len(build.Root.Children()))
	}
	if logs.FilterMessage("skipping item").Len() != 1 {
		t.Fatal("unknown item not logged")
	}
}

func TestBuildInteractables(t *testing.T) {
	cases := []struct {
		name                     string
		items                    levels.ItemList
		compose, inbox, wardrobe bool
		dupWarnings              int
	}{
		{"none", levels.ItemList{&levels.Tree{}}, false, false, false, 0},
		{"all", levels.ItemList{&levels.Bench{}, &levels.Mailbox{}, &levels.Wardrobe{}}, true, true, true, 0},
		{"only_mailbox", levels.ItemList{&levels.Mailbox{}}, false, true, false, 0},
		{"two_benches", levels.ItemList{&levels.Bench{}, &levels.Bench{Base: levels.Base{X: 99}}}, true, false, false, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b, _, logs := newTestBuilder(t)
			in := b.Build(c.items).Interactables
			if (in.Compose != nil) != c.compose || (in.Inbox != nil) != c.inbox || (in.Wardrobe != nil) != c.wardrobe {
				t.Fatalf("unexpected interactables %+v", in)
			}
			if got := logs.FilterMessage("duplicate interactable, last one wins").Len(); got != c.dupWarnings {
				t.Fatalf("expected %d duplicate warnings, got %d", c.dupWarnings, got)
			}
		})
	}

	b, _, _ := newTestBuilder(t)
	in := b.Build(levels.ItemList{&levels.Bench{}, &levels.Bench{Base: levels.Base{X: 99}}}).Interactables
	if in.Compose.Position().X != 99 {
		t.Fatal("last bench did not win")
	}
}

func TestRebuildExclusivity(t *testing.T) {
	items := levels.Shipped(nil)

	fresh := obj.NewCollisionWorld()
	fb, err := NewBuilder(obj.DefaultRegistry(), fresh, nil)
	if err != nil {
		t.Fatal(err)
	}
	fb.Rebuild(items)
	want := fresh.Count()
	if want == 0 {
		t.Fatal("shipped layout produced no footprints")
	}

	b, cw, _ := newTestBuilder(t)
	for i := range 5 {
		build := b.Rebuild(items)
		if cw.Count() != want {
			t.Fatalf("rebuild %d: %d footprints, want %d", i, cw.Count(), want)
		}
		if b.Generation() != i+1 || b.Current() != build {
			t.Fatal("generation bookkeeping wrong")
		}
	}

	prev := b.Current()
	moved := items.Clone()
	moved[0].SetPos(levels.Vec{X: 2000, Y: 2000})
	b.Rebuild(moved)
	if cw.Count() != want {
		t.Fatalf("after moving an item: %d footprints, want %d", cw.Count(), want)
	}
	if len(prev.Objects) != 0 || !prev.Root.Destroyed() {
		t.Fatal("previous generation not destroyed")
	}

	b.Rebuild(levels.ItemList{})
	if cw.Count() != 0 {
		t.Fatalf("empty rebuild left %d footprints", cw.Count())
	}
	b.Destroy()
	if b.Current() != nil {
		t.Fatal("Destroy kept a current build")
	}
}

func TestMoveItemRepositionsLiveObject(t *testing.T) {
	b, cw, _ := newTestBuilder(t)
	b.Rebuild(levels.ItemList{&levels.Wardrobe{Base: levels.Base{X: 100, Y: 100}}})
	b.MoveItem(0, 300, 300)
	o := b.Current().ObjectFor(0)
	if o.Position() != (levels.Vec{X: 300, Y: 300}) {
		t.Fatalf("object at %+v", o.Position())
	}
	if len(cw.BoxesAt(300, 300)) != 1 || len(cw.BoxesAt(100, 100)) != 0 {
		t.Fatal("footprint did not follow the object")
	}
	b.MoveItem(7, 0, 0)
}

func TestSetDebugShapes(t *testing.T) {
	b, _, _ := newTestBuilder(t)
	b.SetDebugShapes(true)
	b.Rebuild(levels.ItemList{&levels.Collider{W: 10, H: 10}})
	root := b.Current().ObjectFor(0).Node()
	overlay := root.Children()[0]
	if !overlay.Visible() {
		t.Fatal("overlay hidden while debug shapes are on")
	}
	b.SetDebugShapes(false)
	if overlay.Visible() {
		t.Fatal("overlay still visible")
	}
}

func TestNearestInteractable(t *testing.T) {
	b, _, _ := newTestBuilder(t)
	in := b.Build(levels.ItemList{
		&levels.Bench{Base: levels.Base{X: 0, Y: 0}},
		&levels.Mailbox{Base: levels.Base{X: 100, Y: 0}},
	}).Interactables

	cases := []struct {
		x, y float64
		want Interaction
	}{
		{10, 0, InteractCompose},
		{70, 0, InteractInbox},
		{50, 200, InteractNone},
		{64, 0, InteractInbox},
	}
	for _, c := range cases {
		got, o := in.Nearest(c.x, c.y, 64)
		if got != c.want {
			t.Fatalf("(%v,%v): got %q, want %q", c.x, c.y, got, c.want)
		}
		if (o != nil) != (c.want != InteractNone) {
			t.Fatalf("(%v,%v): object handle mismatch", c.x, c.y)
		}
	}
}
