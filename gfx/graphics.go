package gfx

import "math"

// Op identifies a drawing primitive.
type Op int

const (
	OpFillRect Op = iota
	OpStrokeRect
	OpFillRoundRect
	OpStrokeRoundRect
	OpFillCircle
	OpStrokeCircle
	OpFillEllipse
	OpFillPolygon
	OpStrokePolyline
)

type Point struct {
	X float64
	Y float64
}

// Cmd is one recorded primitive in the owning node's local space. Rects are
// top-left based; circles and ellipses are centered on X, Y.
type Cmd struct {
	Op     Op
	Color  uint32
	Alpha  float64
	Width  float64
	X, Y   float64
	W, H   float64
	Radius float64
	Points []Point
}

// Graphics records fill and stroke primitives in the order they are drawn.
// Style calls affect the primitives that follow them.
type Graphics struct {
	cmds []Cmd

	fillColor uint32
	fillAlpha float64

	lineWidth float64
	lineColor uint32
	lineAlpha float64
}

func NewGraphics() *Graphics {
	return &Graphics{fillAlpha: 1, lineWidth: 1, lineAlpha: 1}
}

func (g *Graphics) FillStyle(color uint32, alpha float64) *Graphics {
	g.fillColor = color
	g.fillAlpha = alpha
	return g
}

func (g *Graphics) LineStyle(width float64, color uint32, alpha float64) *Graphics {
	g.lineWidth = width
	g.lineColor = color
	g.lineAlpha = alpha
	return g
}

func (g *Graphics) fill(c Cmd) *Graphics {
	c.Color = g.fillColor
	c.Alpha = g.fillAlpha
	g.cmds = append(g.cmds, c)
	return g
}

func (g *Graphics) stroke(c Cmd) *Graphics {
	c.Color = g.lineColor
	c.Alpha = g.lineAlpha
	c.Width = g.lineWidth
	g.cmds = append(g.cmds, c)
	return g
}

func (g *Graphics) FillRect(x, y, w, h float64) *Graphics {
	return g.fill(Cmd{Op: OpFillRect, X: x, Y: y, W: w, H: h})
}

func (g *Graphics) StrokeRect(x, y, w, h float64) *Graphics {
	return g.stroke(Cmd{Op: OpStrokeRect, X: x, Y: y, W: w, H: h})
}

func (g *Graphics) FillRoundedRect(x, y, w, h, r float64) *Graphics {
	return g.fill(Cmd{Op: OpFillRoundRect, X: x, Y: y, W: w, H: h, Radius: r})
}

func (g *Graphics) StrokeRoundedRect(x, y, w, h, r float64) *Graphics {
	return g.stroke(Cmd{Op: OpStrokeRoundRect, X: x, Y: y, W: w, H: h, Radius: r})
}

func (g *Graphics) FillCircle(x, y, r float64) *Graphics {
	return g.fill(Cmd{Op: OpFillCircle, X: x, Y: y, Radius: r})
}

func (g *Graphics) StrokeCircle(x, y, r float64) *Graphics {
	return g.stroke(Cmd{Op: OpStrokeCircle, X: x, Y: y, Radius: r})
}

// FillEllipse draws an ellipse of the given full width and height.
func (g *Graphics) FillEllipse(x, y, w, h float64) *Graphics {
	return g.fill(Cmd{Op: OpFillEllipse, X: x, Y: y, W: w, H: h})
}

func (g *Graphics) FillTriangle(x1, y1, x2, y2, x3, y3 float64) *Graphics {
	return g.FillPolygon(Point{x1, y1}, Point{x2, y2}, Point{x3, y3})
}

func (g *Graphics) FillPolygon(pts ...Point) *Graphics {
	return g.fill(Cmd{Op: OpFillPolygon, Points: append([]Point(nil), pts...)})
}

func (g *Graphics) LineBetween(x1, y1, x2, y2 float64) *Graphics {
	return g.StrokePolyline(Point{x1, y1}, Point{x2, y2})
}

func (g *Graphics) StrokePolyline(pts ...Point) *Graphics {
	return g.stroke(Cmd{Op: OpStrokePolyline, Points: append([]Point(nil), pts...)})
}

// Commands returns the recorded primitives.
func (g *Graphics) Commands() []Cmd {
	if g == nil {
		return nil
	}
	return g.cmds
}

func (g *Graphics) Clear() {
	g.cmds = g.cmds[:0]
}

// Bounds returns the local-space box covering every primitive.
func (g *Graphics) Bounds() (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	grow := func(x0, y0, x1, y1 float64) {
		minX = math.Min(minX, x0)
		minY = math.Min(minY, y0)
		maxX = math.Max(maxX, x1)
		maxY = math.Max(maxY, y1)
	}
	for _, c := range g.cmds {
		switch c.Op {
		case OpFillRect, OpStrokeRect, OpFillRoundRect, OpStrokeRoundRect:
			grow(c.X, c.Y, c.X+c.W, c.Y+c.H)
		case OpFillCircle, OpStrokeCircle:
			grow(c.X-c.Radius, c.Y-c.Radius, c.X+c.Radius, c.Y+c.Radius)
		case OpFillEllipse:
			grow(c.X-c.W/2, c.Y-c.H/2, c.X+c.W/2, c.Y+c.H/2)
		case OpFillPolygon, OpStrokePolyline:
			for _, p := range c.Points {
				grow(p.X, p.Y, p.X, p.Y)
			}
		}
	}
	if len(g.cmds) == 0 {
		return 0, 0, 0, 0
	}
	return minX, minY, maxX, maxY
}
