package obj

import (
	"testing"
)

func TestCollisionWorldBoxLifecycle(t *testing.T) {
	cw := NewCollisionWorld()
	a := cw.AddStaticBox(0, 0, 10, 10)
	b := cw.AddStaticBox(100, 0, 20, 20)
	if cw.Count() != 2 {
		t.Fatalf("expected 2 boxes, got %d", cw.Count())
	}

	cw.MoveStaticBox(a, 50, 50)
	if !a.Contains(50, 50) || a.Contains(0, 0) {
		t.Fatalf("box not moved: %+v", a.BB())
	}

	cw.RemoveStaticBox(a)
	cw.RemoveStaticBox(a)
	if cw.Count() != 1 || !a.Removed() {
		t.Fatalf("expected 1 box after removal, got %d", cw.Count())
	}
	cw.MoveStaticBox(a, 0, 0)
	if cw.Count() != 1 {
		t.Fatal("moving a removed box re-registered it")
	}
	if got := cw.BoxesAt(100, 0); len(got) != 1 || got[0] != b {
		t.Fatalf("BoxesAt returned %v", got)
	}
}

func TestPlayerBlockedByStaticBox(t *testing.T) {
	cw := NewCollisionWorld()
	cw.AddStaticBox(100, 0, 20, 200)
	p := NewPlayer(cw, 0, 0, 10, 230, 0xffffff)

	in := InputState{MoveX: 1}
	for range 120 {
		p.Update(in)
		cw.Step(1.0 / 60.0)
		p.Sync()
	}
	pos := p.Position()
	if pos.X > 90.5 {
		t.Fatalf("player passed into the wall: x=%v", pos.X)
	}
	if pos.X < 60 {
		t.Fatalf("player barely moved: x=%v", pos.X)
	}
	if p.Node().X != pos.X {
		t.Fatal("node not synced to body")
	}
}

func TestPlayerDiagonalSpeed(t *testing.T) {
	cw := NewCollisionWorld()
	p := NewPlayer(cw, 0, 0, 10, 100, 0xffffff)
	p.Update(InputState{MoveX: 1, MoveY: 1})
	cw.Step(1)
	pos := p.Position()
	if d := pos.X*pos.X + pos.Y*pos.Y; d > 100*100+1 {
		t.Fatalf("diagonal moved %v units squared, faster than straight", d)
	}
}

func TestKeySet(t *testing.T) {
	s := KeySet(0).With(KeyZ, KeyDigit3)
	if !s.Has(KeyZ) || !s.Has(KeyDigit3) || s.Has(KeyG) {
		t.Fatalf("unexpected set %b", s)
	}
	k, ok := DigitKey(3)
	if !ok || k != KeyDigit3 {
		t.Fatal("DigitKey(3)")
	}
	if _, ok := DigitKey(0); ok {
		t.Fatal("DigitKey(0) should fail")
	}
}
