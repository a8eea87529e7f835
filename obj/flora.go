package obj

import (
	"hash/fnv"
	"math"
	"math/rand/v2"

	"github.com/milk9111/mailme/levels"
)

const (
	trunkColor  = 0x795548
	canopyColor = 0x2e7d32
	bushColor   = 0x3fa34d
	rockColor   = 0x9e9e9e
)

type treeFactory struct{}

func (treeFactory) Kind() levels.Kind { return levels.KindTree }

func (treeFactory) Create(obs Obstacles, it levels.Item) (*Object, error) {
	t, ok := it.(*levels.Tree)
	if !ok {
		return nil, wrongItem(levels.KindTree, it)
	}
	s := levels.Or(t.Scale, 1.6)
	tint := uint32(levels.Or(t.Tint, canopyColor))

	o := newObject(levels.KindTree, obs, t.Pos())
	o.node.Graphics().
		FillStyle(trunkColor, 1).
		FillRect(-6*s, -2*s, 12*s, 26*s)
	o.node.Graphics().
		FillStyle(tint, 1).
		FillCircle(-10*s, -14*s, 20*s).
		FillCircle(10*s, -14*s, 20*s).
		FillCircle(0, -30*s, 22*s)

	// only the trunk blocks
	hit := math.Round(26 * s)
	o.addStaticBox(0, math.Round(6*s), hit, hit)
	return o, nil
}

type bushFactory struct{}

func (bushFactory) Kind() levels.Kind { return levels.KindBush }

func (bushFactory) Create(obs Obstacles, it levels.Item) (*Object, error) {
	b, ok := it.(*levels.Bush)
	if !ok {
		return nil, wrongItem(levels.KindBush, it)
	}
	s := levels.Or(b.Scale, 1.0)
	tint := uint32(levels.Or(b.Tint, bushColor))
	r := math.Max(8, math.Round(10*s))

	o := newObject(levels.KindBush, obs, b.Pos())
	o.node.Graphics().
		FillStyle(0x000000, 0.12).
		FillEllipse(0, r*0.6, r*2.2, r*0.8)
	o.node.Graphics().
		FillStyle(tint, 1).
		FillCircle(-r*0.6, 0, r*0.8).
		FillCircle(r*0.6, 0, r*0.8).
		FillCircle(0, -r*0.4, r)
	o.addStaticBox(0, 0, r*1.6, r*1.2)
	return o, nil
}

// maxRocks caps the pebbles drawn for one rocks item.
const maxRocks = 64

type rocksFactory struct{}

func (rocksFactory) Kind() levels.Kind { return levels.KindRocks }

func (rocksFactory) Create(obs Obstacles, it levels.Item) (*Object, error) {
	rk, ok := it.(*levels.Rocks)
	if !ok {
		return nil, wrongItem(levels.KindRocks, it)
	}
	count := min(max(levels.Or(rk.Count, 3), 0), maxRocks)
	base := levels.Or(rk.BaseScale, 1.0)
	tint := uint32(levels.Or(rk.Tint, rockColor))

	o := newObject(levels.KindRocks, obs, rk.Pos())
	if count == 0 {
		return o, nil
	}

	rng := rockRand(rk, count, base)
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for range count {
		s := base * (0.8 + rng.Float64()*0.6)
		r := math.Round(8 * s)
		dx := float64(rng.IntN(25) - 12)
		dy := float64(rng.IntN(13) - 6)

		o.node.Graphics().
			FillStyle(tint, 1).
			FillCircle(dx, dy, r).
			FillCircle(dx+math.Round(r*0.4), dy-math.Round(r*0.2), math.Round(r*0.7))

		minX, maxX = math.Min(minX, dx-r), math.Max(maxX, dx+r)
		minY, maxY = math.Min(minY, dy-r), math.Max(maxY, dy+r)
	}

	w := math.Max(8, maxX-minX)
	h := math.Max(6, maxY-minY) * 0.6
	o.addStaticBox((minX+maxX)/2, (minY+maxY)/2+6, w, h)
	return o, nil
}

// rockRand seeds the cluster jitter from the item itself, so a layout renders
// the same rocks every time it is built.
func rockRand(rk *levels.Rocks, count int, base float64) *rand.Rand {
	h := fnv.New64a()
	var buf [8]byte
	for _, v := range []uint64{
		math.Float64bits(rk.X),
		math.Float64bits(rk.Y),
		uint64(count),
		math.Float64bits(base),
	} {
		for i := range buf {
			buf[i] = byte(v >> (8 * i))
		}
		_, _ = h.Write(buf[:])
	}
	seed := h.Sum64()
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
