package obj

import (
	"github.com/milk9111/mailme/gfx"
	"github.com/milk9111/mailme/levels"
)

const debugColliderColor = 0xff0000

// footprint is a collision box held at a fixed offset from the object anchor.
type footprint struct {
	box    *StaticBox
	dx, dy float64
	w, h   float64
}

// Object is a constructed prop: a display node anchored at the item position
// plus the collision footprints it owns.
type Object struct {
	kind  levels.Kind
	x, y  float64
	node  *gfx.Node
	debug *gfx.Node
	// added to y to get the draw depth; ground tiles sit below props
	depthBias float64

	obs        Obstacles
	footprints []footprint
	destroyed  bool
}

func newObject(kind levels.Kind, obs Obstacles, pos levels.Vec) *Object {
	node := gfx.NewNode(pos.X, pos.Y)
	node.SetDepth(pos.Y)
	debug := gfx.NewNode(0, 0)
	debug.SetDepth(1e6)
	debug.SetVisible(false)
	node.Add(debug)
	return &Object{kind: kind, x: pos.X, y: pos.Y, node: node, debug: debug, obs: obs}
}

// addStaticBox registers a w×h footprint centered at (dx, dy) from the anchor
// and records an outline for the collider overlay.
func (o *Object) addStaticBox(dx, dy, w, h float64) {
	fp := footprint{dx: dx, dy: dy, w: w, h: h}
	if o.obs != nil {
		fp.box = o.obs.AddStaticBox(o.x+dx, o.y+dy, w, h)
	}
	o.footprints = append(o.footprints, fp)
	o.debug.Graphics().
		FillStyle(debugColliderColor, 0.3).
		FillRect(dx-w/2, dy-h/2, w, h)
}

func (o *Object) setDepthBias(bias float64) {
	o.depthBias = bias
	o.node.SetDepth(o.y + bias)
}

func (o *Object) Kind() levels.Kind { return o.kind }

func (o *Object) Node() *gfx.Node {
	if o == nil {
		return nil
	}
	return o.node
}

func (o *Object) Position() levels.Vec {
	return levels.Vec{X: o.x, Y: o.y}
}

// SetPosition moves the visual, its depth and every footprint together.
func (o *Object) SetPosition(x, y float64) {
	if o == nil || o.destroyed {
		return
	}
	o.x, o.y = x, y
	o.node.SetPosition(x, y)
	o.node.SetDepth(y + o.depthBias)
	for _, fp := range o.footprints {
		if fp.box != nil && o.obs != nil {
			o.obs.MoveStaticBox(fp.box, x+fp.dx, y+fp.dy)
		}
	}
}

// Footprints returns the live collision boxes owned by the object.
func (o *Object) Footprints() []*StaticBox {
	if o == nil {
		return nil
	}
	out := make([]*StaticBox, 0, len(o.footprints))
	for _, fp := range o.footprints {
		if fp.box != nil && !fp.box.Removed() {
			out = append(out, fp.box)
		}
	}
	return out
}

// SetDebugVisible shows or hides the collider overlay.
func (o *Object) SetDebugVisible(v bool) {
	if o == nil || o.destroyed {
		return
	}
	o.debug.SetVisible(v)
}

// Destroy releases every footprint and detaches the visual. Safe to call twice.
func (o *Object) Destroy() {
	if o == nil || o.destroyed {
		return
	}
	for _, fp := range o.footprints {
		if fp.box != nil && o.obs != nil {
			o.obs.RemoveStaticBox(fp.box)
		}
	}
	o.footprints = nil
	o.node.Destroy()
	o.destroyed = true
}

func (o *Object) Destroyed() bool {
	return o == nil || o.destroyed
}

// Shapes returns the recorded primitives of the visual in draw order,
// excluding the collider overlay.
func (o *Object) Shapes() []gfx.Cmd {
	if o == nil {
		return nil
	}
	var out []gfx.Cmd
	collect := func(n *gfx.Node) {
		for _, g := range n.GraphicsList() {
			out = append(out, g.Commands()...)
		}
	}
	collect(o.node)
	for _, c := range o.node.Children() {
		if c != o.debug {
			collect(c)
		}
	}
	return out
}

// Labels returns the text labels of the visual.
func (o *Object) Labels() []gfx.Label {
	if o == nil {
		return nil
	}
	var out []gfx.Label
	for _, l := range o.node.Labels() {
		out = append(out, *l)
	}
	return out
}
