package obj

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/mailme/gfx"
	"github.com/milk9111/mailme/levels"
)

// Player is the walking avatar. Movement is resolved by chipmunk against the
// static footprints of the world.
type Player struct {
	body   *cp.Body
	node   *gfx.Node
	speed  float64
	radius float64
}

func NewPlayer(cw *CollisionWorld, x, y, radius, speed float64, color uint32) *Player {
	p := &Player{speed: speed, radius: radius}
	p.body = cw.AttachPlayer(x, y, radius)

	p.node = gfx.NewNode(x, y)
	p.node.SetDepth(y)
	p.node.Graphics().
		FillStyle(0x000000, 0.2).FillEllipse(0, radius*0.8, radius*2, radius*0.8).
		FillStyle(color, 1).FillCircle(0, 0, radius).
		LineStyle(2, 0x3e2723, 0.9).StrokeCircle(0, 0, radius)
	return p
}

// Update sets the body velocity from input. Call before stepping the space.
func (p *Player) Update(in InputState) {
	if p == nil || p.body == nil {
		return
	}
	dx, dy := in.MoveDir()
	p.body.SetVelocity(dx*p.speed, dy*p.speed)
}

// Sync copies the simulated position onto the visual. Call after stepping.
func (p *Player) Sync() {
	if p == nil || p.body == nil {
		return
	}
	pos := p.body.Position()
	p.node.SetPosition(pos.X, pos.Y)
	p.node.SetDepth(pos.Y)
}

func (p *Player) Position() levels.Vec {
	if p == nil || p.body == nil {
		return levels.Vec{}
	}
	pos := p.body.Position()
	return levels.Vec{X: pos.X, Y: pos.Y}
}

// Teleport moves the avatar without simulating the path.
func (p *Player) Teleport(x, y float64) {
	if p == nil || p.body == nil {
		return
	}
	p.body.SetPosition(cp.Vector{X: x, Y: y})
	p.body.SetVelocity(0, 0)
	p.Sync()
}

func (p *Player) Node() *gfx.Node {
	if p == nil {
		return nil
	}
	return p.node
}

func (p *Player) Radius() float64 {
	return p.radius
}
