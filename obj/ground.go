package obj

import (
	"fmt"

	"github.com/milk9111/mailme/levels"
)

const (
	// groundDepth keeps flat tiles under every standing prop.
	groundDepth = -1e5
	// maxTileSize bounds the edge of one ground tile.
	maxTileSize = 4096.0
)

type tileStyle struct {
	fill, edge  uint32
	edgeWidth   float64
	stripes     bool
	stripeColor uint32
}

var tileStyles = map[levels.Kind]tileStyle{
	levels.KindWater:  {fill: 0x42a5f5, edge: 0x1e88e5, edgeWidth: 1.5},
	levels.KindDirt:   {fill: 0x8d6e63, edge: 0x5d4037, edgeWidth: 1.5},
	levels.KindGravel: {fill: 0x9e9e9e, edge: 0x616161, edgeWidth: 1.5},
	levels.KindPlanks: {fill: 0xa1887f, edge: 0x5d4037, edgeWidth: 2, stripes: true, stripeColor: 0x4e342e},
}

// groundFactory draws a flat square tile. Tiles never block.
type groundFactory struct {
	kind levels.Kind
}

func (f groundFactory) Kind() levels.Kind { return f.kind }

func (f groundFactory) Create(obs Obstacles, it levels.Item) (*Object, error) {
	t, ok := it.(*levels.Ground)
	if !ok || t.Kind() != f.kind {
		return nil, wrongItem(f.kind, it)
	}
	style, ok := tileStyles[f.kind]
	if !ok {
		return nil, fmt.Errorf("obj: no tile style for %s", f.kind)
	}
	size := levels.Or(t.Size, 64)
	if !(size > 0) {
		size = 0
	}
	size = min(size, maxTileSize)
	half := size / 2

	o := newObject(f.kind, obs, t.Pos())
	o.setDepthBias(groundDepth)
	g := o.node.Graphics()
	g.FillStyle(style.fill, 1).FillRect(-half, -half, size, size)
	g.LineStyle(style.edgeWidth, style.edge, 0.6).StrokeRect(-half, -half, size, size)
	if style.stripes {
		g.LineStyle(1, style.stripeColor, 0.8)
		for y := -half + 8; y < half; y += 12 {
			g.LineBetween(-half, y, half, y)
		}
	}
	return o, nil
}

// colliderFactory builds an invisible blocking box whose outline only shows
// while colliders are being debugged.
type colliderFactory struct{}

func (colliderFactory) Kind() levels.Kind { return levels.KindCollider }

func (colliderFactory) Create(obs Obstacles, it levels.Item) (*Object, error) {
	c, ok := it.(*levels.Collider)
	if !ok {
		return nil, wrongItem(levels.KindCollider, it)
	}
	w, h := c.W, c.H
	if w <= 0 {
		w = 16
	}
	if h <= 0 {
		h = 16
	}
	o := newObject(levels.KindCollider, obs, c.Pos())
	o.addStaticBox(0, 0, w, h)
	o.debug.Graphics().
		LineStyle(1, debugColliderColor, 0.8).
		StrokeRect(-w/2, -h/2, w, h)
	return o, nil
}
