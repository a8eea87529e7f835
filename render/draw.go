package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/mailme/gfx"
	"golang.org/x/image/font/basicfont"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)

	labelFace = text.NewGoXFace(basicfont.Face7x13)
)

func init() {
	whiteImage.Fill(color.White)
}

// RGBA converts a 0xRRGGBB color and an alpha in 0..1.
func RGBA(c uint32, alpha float64) color.NRGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return color.NRGBA{R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c), A: uint8(alpha * 255)}
}

// Tree draws root and its visible descendants through cam.
func Tree(dst *ebiten.Image, root *gfx.Node, cam *gfx.Camera) {
	z := cam.Zoom()
	root.Walk(func(n *gfx.Node, wx, wy float64) {
		ox, oy := cam.WorldToScreen(wx, wy)
		for _, g := range n.GraphicsList() {
			for _, c := range g.Commands() {
				drawCmd(dst, c, ox, oy, z)
			}
		}
		for _, l := range n.Labels() {
			drawLabel(dst, l, ox, oy, z)
		}
	})
}

func drawCmd(dst *ebiten.Image, c gfx.Cmd, ox, oy, z float64) {
	clr := RGBA(c.Color, c.Alpha)
	x, y := float32(ox+c.X*z), float32(oy+c.Y*z)
	w, h := float32(c.W*z), float32(c.H*z)
	r := float32(c.Radius * z)
	sw := float32(c.Width * z)

	switch c.Op {
	case gfx.OpFillRect:
		vector.FillRect(dst, x, y, w, h, clr, false)
	case gfx.OpStrokeRect:
		vector.StrokeRect(dst, x, y, w, h, sw, clr, true)
	case gfx.OpFillCircle:
		vector.FillCircle(dst, x, y, r, clr, true)
	case gfx.OpStrokeCircle:
		vector.StrokeCircle(dst, x, y, r, sw, clr, true)
	case gfx.OpFillEllipse:
		fillPolygon(dst, gfx.EllipseOutline(c.X, c.Y, c.W, c.H, 24), ox, oy, z, clr)
	case gfx.OpFillRoundRect:
		fillPolygon(dst, gfx.RoundedRectOutline(c.X, c.Y, c.W, c.H, c.Radius, 4), ox, oy, z, clr)
	case gfx.OpStrokeRoundRect:
		pts := gfx.RoundedRectOutline(c.X, c.Y, c.W, c.H, c.Radius, 4)
		strokePolyline(dst, append(pts, pts[0]), ox, oy, z, sw, clr)
	case gfx.OpFillPolygon:
		fillPolygon(dst, c.Points, ox, oy, z, clr)
	case gfx.OpStrokePolyline:
		strokePolyline(dst, c.Points, ox, oy, z, sw, clr)
	}
}

func strokePolyline(dst *ebiten.Image, pts []gfx.Point, ox, oy, z float64, sw float32, clr color.Color) {
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		vector.StrokeLine(dst,
			float32(ox+a.X*z), float32(oy+a.Y*z),
			float32(ox+b.X*z), float32(oy+b.Y*z),
			sw, clr, true)
	}
	// round joints keep wide path strokes continuous
	if sw > 4 {
		for _, p := range pts {
			vector.FillCircle(dst, float32(ox+p.X*z), float32(oy+p.Y*z), sw/2, clr, true)
		}
	}
}

func fillPolygon(dst *ebiten.Image, pts []gfx.Point, ox, oy, z float64, clr color.NRGBA) {
	if len(pts) < 3 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(ox+pts[0].X*z), float32(oy+pts[0].Y*z))
	for _, p := range pts[1:] {
		path.LineTo(float32(ox+p.X*z), float32(oy+p.Y*z))
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := float32(clr.R)/255, float32(clr.G)/255, float32(clr.B)/255, float32(clr.A)/255
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR, vs[i].ColorG, vs[i].ColorB, vs[i].ColorA = r*a, g*a, b*a, a
	}
	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	dst.DrawTriangles(vs, is, whiteSubImage, op)
}

func drawLabel(dst *ebiten.Image, l *gfx.Label, ox, oy, z float64) {
	w, h := text.Measure(l.Text, labelFace, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate(-w*l.OriginX, -h*l.OriginY)
	op.GeoM.Scale(z, z)
	op.GeoM.Translate(ox+l.X*z, oy+l.Y*z)
	op.ColorScale.ScaleWithColor(RGBA(l.Color, 1))
	text.Draw(dst, l.Text, labelFace, op)
}

// Text draws a screen-space HUD string with its top-left at (x, y).
func Text(dst *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.LineSpacing = 16
	text.Draw(dst, s, labelFace, op)
}
