package scene

import (
	"github.com/milk9111/mailme/gfx"
	"github.com/milk9111/mailme/obj"
	"github.com/milk9111/mailme/prefabs"
)

const (
	backdropDepth = -1e9
	fenceColor    = 0x8d6e63
)

// newBackdrop draws the fixed sky, lawn, paths and fence line.
func newBackdrop(spec *prefabs.SceneSpec) *gfx.Node {
	n := gfx.NewNode(0, 0)
	n.SetDepth(backdropDepth)

	g := n.Graphics()
	g.FillStyle(uint32(spec.Sky), 1).FillRect(0, 0, spec.Width, spec.HorizonY)
	g.FillStyle(uint32(spec.Ground), 1).FillRect(0, spec.HorizonY, spec.Width, spec.Height-spec.HorizonY)

	for _, p := range spec.Paths {
		pts := make([]gfx.Point, 0, len(p.Points))
		for _, xy := range p.Points {
			pts = append(pts, gfx.Point{X: xy[0], Y: xy[1]})
		}
		g.LineStyle(p.Width, uint32(p.Color), 1).StrokePolyline(pts...)
	}

	l, t, r, b := fenceRect(spec)
	g.LineStyle(spec.Fence.Thickness, fenceColor, 1).
		StrokePolyline(gfx.Point{X: l, Y: t}, gfx.Point{X: r, Y: t}, gfx.Point{X: r, Y: b}, gfx.Point{X: l, Y: b}, gfx.Point{X: l, Y: t})
	return n
}

func fenceRect(spec *prefabs.SceneSpec) (left, top, right, bottom float64) {
	f := spec.Fence
	return f.Inset, f.Top, spec.Width - f.Inset, spec.Height - f.Inset
}

// addFence registers the four walls that keep the player inside the yard.
func addFence(obs obj.Obstacles, spec *prefabs.SceneSpec) []*obj.StaticBox {
	l, t, r, b := fenceRect(spec)
	th := spec.Fence.Thickness
	w, h := r-l, b-t
	return []*obj.StaticBox{
		obs.AddStaticBox(l+w/2, t, w+th, th),
		obs.AddStaticBox(l+w/2, b, w+th, th),
		obs.AddStaticBox(l, t+h/2, th, h+th),
		obs.AddStaticBox(r, t+h/2, th, h+th),
	}
}
