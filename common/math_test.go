package common

import "testing"

func TestSnap(t *testing.T) {
	cases := []struct {
		v, grid, want float64
	}{
		{103, 20, 100},
		{207, 20, 200},
		{110, 20, 120},
		{-9, 20, -0},
		{-11, 20, -20},
		{-10, 20, 0},
		{10, 20, 20},
		{-30, 20, -20},
		{13.7, 0, 13.7},
	}
	for _, c := range cases {
		if got := Snap(c.v, c.grid); got != c.want {
			t.Fatalf("Snap(%v, %v) = %v, want %v", c.v, c.grid, got, c.want)
		}
	}
}

func TestSnapIdempotentAndMonotonic(t *testing.T) {
	const grid = 20.0
	for v := -500.0; v <= 500; v += 0.75 {
		s := Snap(v, grid)
		if Snap(s, grid) != s {
			t.Fatalf("Snap not idempotent at %v", v)
		}
		next := Snap(v+grid/2-0.01, grid)
		if next < s || next-s > grid {
			t.Fatalf("Snap not monotonic between %v and %v: %v, %v", v, v+grid/2, s, next)
		}
	}
}
