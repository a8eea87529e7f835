package common

import "math"

func Lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}

// Snap rounds v to the nearest multiple of grid, with halves going toward
// positive infinity. A non-positive grid disables snapping.
func Snap(v, grid float64) float64 {
	if grid <= 0 {
		return v
	}
	return math.Floor(v/grid+0.5) * grid
}

func DistSq(ax, ay, bx, by float64) float64 {
	dx, dy := ax-bx, ay-by
	return dx*dx + dy*dy
}

func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
