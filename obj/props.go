package obj

import (
	"math"

	"github.com/milk9111/mailme/gfx"
	"github.com/milk9111/mailme/levels"
)

const (
	labelColor = 0xffffff
	signInk    = 0x3e2723
	lampGlow   = 0xfff59d
)

type lampFactory struct{}

func (lampFactory) Kind() levels.Kind { return levels.KindLamp }

func (lampFactory) Create(obs Obstacles, it levels.Item) (*Object, error) {
	l, ok := it.(*levels.Lamp)
	if !ok {
		return nil, wrongItem(levels.KindLamp, it)
	}
	s := levels.Or(l.Scale, 1.8)
	postH := math.Round(52 * s)
	postW := math.Max(4, math.Round(4*s))
	headW := math.Round(16 * s)
	headH := math.Round(12 * s)
	glowR := math.Round(26 * s)

	o := newObject(levels.KindLamp, obs, l.Pos())
	o.node.Graphics().
		FillStyle(0x263238, 1).FillRect(-postW/2, -postH+14, postW, postH).
		FillStyle(lampGlow, 1).FillRoundedRect(-headW/2, -postH-headH/2, headW, headH, 3).
		LineStyle(1, 0x000000, 0.4).StrokeRoundedRect(-headW/2, -postH-headH/2, headW, headH, 3).
		FillStyle(lampGlow, 0.12).FillCircle(0, -postH+2, glowR)

	// lower post only so the player can walk behind the head
	o.addStaticBox(0, -postH/2+14, postW+4, postH*0.6)
	return o, nil
}

type signFactory struct{}

func (signFactory) Kind() levels.Kind { return levels.KindSign }

func (signFactory) Create(obs Obstacles, it levels.Item) (*Object, error) {
	sg, ok := it.(*levels.Sign)
	if !ok {
		return nil, wrongItem(levels.KindSign, it)
	}
	o := newObject(levels.KindSign, obs, sg.Pos())
	o.node.Graphics().
		FillStyle(0x6d4c41, 1).FillRect(-3, -24, 6, 28).
		FillStyle(0x8d6e63, 1).FillRoundedRect(-40, -40, 80, 24, 4).
		LineStyle(1, signInk, 0.8).StrokeRoundedRect(-40, -40, 80, 24, 4)
	o.node.AddLabel(&gfx.Label{
		Text: levels.Or(sg.Text, "Welcome"), X: 0, Y: -38,
		Color: signInk, OriginX: 0.5, OriginY: 0,
	})
	o.addStaticBox(0, -8, 70, 14)
	return o, nil
}

type benchFactory struct{}

func (benchFactory) Kind() levels.Kind { return levels.KindBench }

func (benchFactory) Create(obs Obstacles, it levels.Item) (*Object, error) {
	if _, ok := it.(*levels.Bench); !ok {
		return nil, wrongItem(levels.KindBench, it)
	}
	o := newObject(levels.KindBench, obs, it.Pos())
	g := o.node.Graphics()
	g.FillStyle(0x5d4037, 1).FillRect(-42, 6, 10, 28).FillRect(32, 6, 10, 28)
	g.FillStyle(0x8d6e63, 1).FillRect(-56, 0, 112, 14).FillRect(-56, -18, 112, 10)
	g.LineStyle(2, 0x3e2723, 0.5).StrokeRect(-56, 0, 112, 14).StrokeRect(-56, -18, 112, 10)

	// ink pot and quill
	g.FillStyle(0x263238, 1).FillRoundedRect(12, -2, 16, 14, 3).FillRect(14, -8, 12, 6)
	g.LineStyle(2, 0xffffff, 1).StrokePolyline(
		gfx.Point{X: 6, Y: -3}, gfx.Point{X: 0, Y: -9}, gfx.Point{X: -8, Y: -12},
		gfx.Point{X: -18, Y: -13}, gfx.Point{X: -28, Y: -12},
	)
	for _, b := range []gfx.Point{{X: 0, Y: -8}, {X: -6, Y: -10}, {X: -13, Y: -11}, {X: -21, Y: -11}} {
		g.LineBetween(b.X, b.Y, b.X-10, b.Y-4)
	}

	o.node.AddLabel(&gfx.Label{Text: "Compose", X: 0, Y: -36, Color: labelColor, OriginX: 0.5, OriginY: 1})
	o.addStaticBox(0, 8, 112, 24)
	return o, nil
}

type mailboxFactory struct{}

func (mailboxFactory) Kind() levels.Kind { return levels.KindMailbox }

func (mailboxFactory) Create(obs Obstacles, it levels.Item) (*Object, error) {
	if _, ok := it.(*levels.Mailbox); !ok {
		return nil, wrongItem(levels.KindMailbox, it)
	}
	o := newObject(levels.KindMailbox, obs, it.Pos())
	o.node.Graphics().
		FillStyle(0x8d6e63, 1).FillRect(-8, -40, 16, 80).
		FillStyle(0x3b82f6, 1).FillRoundedRect(-26, -66, 52, 36, 6).
		LineStyle(2, 0xffffff, 1).StrokeRoundedRect(-26, -66, 52, 36, 6).
		FillStyle(0xff3b30, 1).FillRect(14, -76, 4, 14).FillRect(14, -76, 18, 4).
		StrokeRect(-14, -56, 28, 18).
		LineBetween(-14, -56, 0, -47).
		LineBetween(14, -56, 0, -47)
	o.node.AddLabel(&gfx.Label{Text: "Inbox", X: 0, Y: -86, Color: labelColor, OriginX: 0.5, OriginY: 1})
	o.addStaticBox(0, -6, 52, 80)
	return o, nil
}

type wardrobeFactory struct{}

func (wardrobeFactory) Kind() levels.Kind { return levels.KindWardrobe }

func (wardrobeFactory) Create(obs Obstacles, it levels.Item) (*Object, error) {
	if _, ok := it.(*levels.Wardrobe); !ok {
		return nil, wrongItem(levels.KindWardrobe, it)
	}
	o := newObject(levels.KindWardrobe, obs, it.Pos())
	o.node.Graphics().
		FillStyle(0x5d4037, 1).FillRect(-22, -40, 44, 80).
		LineStyle(2, 0x3e2723, 1).StrokeRect(-22, -40, 44, 80).
		FillStyle(0xd7ccc8, 1).FillCircle(-6, 0, 2).FillCircle(6, 0, 2)
	o.node.AddLabel(&gfx.Label{Text: "Wardrobe", X: 0, Y: -52, Color: labelColor, OriginX: 0.5, OriginY: 1})
	o.addStaticBox(0, 0, 44, 80)
	return o, nil
}
