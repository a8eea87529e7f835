package obj

import (
	"math"

	"github.com/jakecoffman/cp"
)

const (
	collisionTypePlayer cp.CollisionType = iota + 1
	collisionTypeSolid
)

// Obstacles is the collision surface world objects register footprints in.
type Obstacles interface {
	AddStaticBox(cx, cy, w, h float64) *StaticBox
	MoveStaticBox(b *StaticBox, cx, cy float64)
	RemoveStaticBox(b *StaticBox)
}

// StaticBox is an axis-aligned blocking rectangle centered on CX, CY.
type StaticBox struct {
	CX, CY float64
	W, H   float64

	shape   *cp.Shape
	removed bool
}

func (b *StaticBox) BB() cp.BB {
	return cp.BB{L: b.CX - b.W/2, B: b.CY - b.H/2, R: b.CX + b.W/2, T: b.CY + b.H/2}
}

// Contains reports whether the point lies inside the box.
func (b *StaticBox) Contains(x, y float64) bool {
	bb := b.BB()
	return x >= bb.L && x <= bb.R && y >= bb.B && y <= bb.T
}

func (b *StaticBox) Removed() bool {
	return b == nil || b.removed
}

// CollisionWorld owns the chipmunk space: static footprints plus the player
// body. The space has no gravity since the world is seen from above.
type CollisionWorld struct {
	space *cp.Space
	boxes map[*StaticBox]struct{}

	playerBody  *cp.Body
	playerShape *cp.Shape
}

func NewCollisionWorld() *CollisionWorld {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: 0})
	return &CollisionWorld{space: space, boxes: make(map[*StaticBox]struct{})}
}

func (cw *CollisionWorld) AddStaticBox(cx, cy, w, h float64) *StaticBox {
	b := &StaticBox{CX: cx, CY: cy, W: math.Abs(w), H: math.Abs(h)}
	if cw == nil || cw.space == nil {
		b.removed = true
		return b
	}
	cw.attach(b)
	cw.boxes[b] = struct{}{}
	return b
}

func (cw *CollisionWorld) attach(b *StaticBox) {
	shape := cp.NewBox2(cw.space.StaticBody, b.BB(), 0)
	shape.SetFriction(0.8)
	shape.SetCollisionType(collisionTypeSolid)
	cw.space.AddShape(shape)
	b.shape = shape
}

// MoveStaticBox recenters b. Static shapes are not reindexed by chipmunk when
// moved in place, so the shape is swapped for a fresh one.
func (cw *CollisionWorld) MoveStaticBox(b *StaticBox, cx, cy float64) {
	if cw == nil || b == nil || b.removed {
		return
	}
	if b.CX == cx && b.CY == cy {
		return
	}
	if b.shape != nil {
		cw.space.RemoveShape(b.shape)
	}
	b.CX, b.CY = cx, cy
	cw.attach(b)
}

func (cw *CollisionWorld) RemoveStaticBox(b *StaticBox) {
	if cw == nil || b == nil || b.removed {
		return
	}
	if b.shape != nil {
		cw.space.RemoveShape(b.shape)
		b.shape = nil
	}
	b.removed = true
	delete(cw.boxes, b)
}

// Count returns the number of live static footprints.
func (cw *CollisionWorld) Count() int {
	if cw == nil {
		return 0
	}
	return len(cw.boxes)
}

// BoxesAt returns the live footprints containing the point.
func (cw *CollisionWorld) BoxesAt(x, y float64) []*StaticBox {
	if cw == nil {
		return nil
	}
	var out []*StaticBox
	for b := range cw.boxes {
		if b.Contains(x, y) {
			out = append(out, b)
		}
	}
	return out
}

// AttachPlayer adds the avatar as a round body that never rotates.
func (cw *CollisionWorld) AttachPlayer(x, y, radius float64) *cp.Body {
	if cw == nil || cw.space == nil {
		return nil
	}
	if cw.playerBody != nil {
		return cw.playerBody
	}

	body := cp.NewBody(1.0, math.Inf(1))
	body.SetPosition(cp.Vector{X: x, Y: y})
	shape := cp.NewCircle(body, radius, cp.Vector{})
	shape.SetFriction(0.0)
	shape.SetElasticity(0.0)
	shape.SetCollisionType(collisionTypePlayer)

	cw.space.AddBody(body)
	cw.space.AddShape(shape)

	cw.playerBody = body
	cw.playerShape = shape
	return body
}

func (cw *CollisionWorld) Step(dt float64) {
	if cw == nil || cw.space == nil {
		return
	}
	cw.space.Step(dt)
}

// Space exposes the chipmunk space for debug drawing.
func (cw *CollisionWorld) Space() *cp.Space {
	if cw == nil {
		return nil
	}
	return cw.space
}
