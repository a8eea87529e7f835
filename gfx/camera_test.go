package gfx

import (
	"math"
	"testing"
)

func TestCameraClampsToWorld(t *testing.T) {
	c := NewCamera(960, 540, 1)
	c.SetWorldBounds(3200, 2200)

	cases := []struct {
		name         string
		tx, ty       float64
		wantX, wantY float64
	}{
		{"inside", 1000, 1000, 1000, 1000},
		{"top_left", 0, 0, 480, 270},
		{"bottom_right", 5000, 5000, 3200 - 480, 2200 - 270},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c.SnapTo(tc.tx, tc.ty)
			if c.PosX != tc.wantX || c.PosY != tc.wantY {
				t.Fatalf("camera at (%v,%v), want (%v,%v)", c.PosX, c.PosY, tc.wantX, tc.wantY)
			}
		})
	}

	small := NewCamera(960, 540, 1)
	small.SetWorldBounds(400, 300)
	small.SnapTo(0, 0)
	if small.PosX != 200 || small.PosY != 150 {
		t.Fatal("small world not centered")
	}
}

func TestCameraScreenWorldRoundTrip(t *testing.T) {
	c := NewCamera(800, 600, 2)
	c.SnapTo(1000, 700)
	wx, wy := c.ScreenToWorld(123, 456)
	sx, sy := c.WorldToScreen(wx, wy)
	if math.Abs(sx-123) > 1e-9 || math.Abs(sy-456) > 1e-9 {
		t.Fatalf("round trip gave (%v,%v)", sx, sy)
	}
	if x, y := c.WorldToScreen(1000, 700); x != 400 || y != 300 {
		t.Fatalf("center maps to (%v,%v)", x, y)
	}
}

func TestCameraSmoothFollow(t *testing.T) {
	c := NewCamera(100, 100, 1)
	c.SnapTo(0, 0)
	c.SetSmooth(0.5)
	c.Update(100, 0)
	if c.PosX != 50 {
		t.Fatalf("expected half way, got %v", c.PosX)
	}
	c.SetSmooth(0)
	c.Update(300, 40)
	if c.PosX != 300 || c.PosY != 40 {
		t.Fatal("zero smoothing should jump")
	}
}

func TestOutlines(t *testing.T) {
	pts := EllipseOutline(10, 20, 40, 20, 16)
	if len(pts) != 16 || pts[0] != (Point{X: 30, Y: 20}) {
		t.Fatalf("ellipse starts at %+v", pts[0])
	}
	for _, p := range pts {
		nx, ny := (p.X-10)/20, (p.Y-20)/10
		if d := nx*nx + ny*ny; math.Abs(d-1) > 1e-9 {
			t.Fatalf("point %+v off the ellipse", p)
		}
	}

	rr := RoundedRectOutline(0, 0, 100, 20, 50, 4)
	for _, p := range rr {
		if p.X < -1e-9 || p.X > 100+1e-9 || p.Y < -1e-9 || p.Y > 20+1e-9 {
			t.Fatalf("point %+v outside the rect", p)
		}
	}
	if sq := RoundedRectOutline(0, 0, 10, 10, 0, 4); len(sq) != 4 {
		t.Fatal("zero radius should be a plain rect")
	}
}
