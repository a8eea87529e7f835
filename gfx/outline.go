package gfx

import "math"

// EllipseOutline approximates an ellipse centered on (cx, cy) with w by h
// extents as a closed polygon.
func EllipseOutline(cx, cy, w, h float64, segments int) []Point {
	if segments < 3 {
		segments = 3
	}
	pts := make([]Point, segments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(segments)
		pts[i] = Point{X: cx + math.Cos(a)*w/2, Y: cy + math.Sin(a)*h/2}
	}
	return pts
}

// RoundedRectOutline approximates a top-left based rectangle with corner
// radius r as a closed polygon. r is limited to half the shorter side.
func RoundedRectOutline(x, y, w, h, r float64, cornerSegments int) []Point {
	r = math.Min(r, math.Min(w, h)/2)
	if r <= 0 {
		return []Point{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}}
	}
	if cornerSegments < 1 {
		cornerSegments = 1
	}
	corners := []struct {
		cx, cy, start float64
	}{
		{x + w - r, y + r, -math.Pi / 2},
		{x + w - r, y + h - r, 0},
		{x + r, y + h - r, math.Pi / 2},
		{x + r, y + r, math.Pi},
	}
	pts := make([]Point, 0, 4*(cornerSegments+1))
	for _, c := range corners {
		for i := 0; i <= cornerSegments; i++ {
			a := c.start + math.Pi/2*float64(i)/float64(cornerSegments)
			pts = append(pts, Point{X: c.cx + math.Cos(a)*r, Y: c.cy + math.Sin(a)*r})
		}
	}
	return pts
}
