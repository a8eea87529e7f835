package obj

import (
	"math"

	"github.com/milk9111/mailme/gfx"
	"github.com/milk9111/mailme/levels"
)

// housePalette holds the colors of a house. Only the default is used today.
type housePalette struct {
	wall, wallShade, trim, roof, roofTrim, window, door uint32
}

var defaultHousePalette = housePalette{
	wall:      0xA1887F,
	wallShade: 0x8D6E63,
	trim:      0x3E2723,
	roof:      0x6D4C41,
	roofTrim:  0x3E2723,
	window:    0xCFE8FF,
	door:      0x4E342E,
}

type houseFactory struct{}

func (houseFactory) Kind() levels.Kind { return levels.KindHouse }

func (houseFactory) Create(obs Obstacles, it levels.Item) (*Object, error) {
	h, ok := it.(*levels.House)
	if !ok {
		return nil, wrongItem(levels.KindHouse, it)
	}
	w, ht := h.W, h.H
	if w <= 0 {
		w = 240
	}
	if ht <= 0 {
		ht = 180
	}
	o := newObject(levels.KindHouse, obs, h.Pos())
	drawHouse(o.node, w, ht, levels.Or(h.DoorPos, levels.DoorCenter), defaultHousePalette)
	o.addStaticBox(0, 0, w, ht)
	return o, nil
}

func drawHouse(n *gfx.Node, w, h float64, door levels.DoorPos, p housePalette) {
	over := math.Max(8, math.Round(w*0.06))
	roofH := math.Max(24, math.Round(h*0.45))
	bodyX := -w / 2
	bodyY := -h / 2

	shadowW := math.Round(w * 0.9)
	shadowH := math.Max(8, math.Round(h*0.08))
	n.Graphics().
		FillStyle(0x000000, 0.15).
		FillEllipse(0, h/2+shadowH*0.4, shadowW, shadowH)

	apexY := bodyY - roofH
	leftX, rightX, eaveY := bodyX-over, bodyX+w+over, bodyY
	roof := n.Graphics()
	roof.FillStyle(p.roof, 1).FillTriangle(0, apexY, rightX, eaveY, leftX, eaveY)
	roof.LineStyle(2, p.roofTrim, 0.9).StrokePolyline(
		gfx.Point{X: 0, Y: apexY}, gfx.Point{X: rightX, Y: eaveY},
		gfx.Point{X: leftX, Y: eaveY}, gfx.Point{X: 0, Y: apexY},
	)
	roof.LineStyle(3, p.trim, 0.8).LineBetween(leftX, eaveY, rightX, eaveY)

	chimW := math.Max(10, math.Round(w*0.12))
	chimH := math.Max(16, math.Round(roofH*0.55))
	chimX := math.Round(w * 0.22)
	chimTop := apexY + math.Round(roofH*0.25)
	roof.FillStyle(0x888888, 1).FillRect(chimX, chimTop, chimW, chimH)
	roof.LineStyle(2, p.roofTrim, 0.9).StrokeRect(chimX, chimTop, chimW, chimH)

	walls := n.Graphics()
	walls.FillStyle(p.wall, 1).FillRect(bodyX, bodyY, w, h)
	walls.FillStyle(p.wallShade, 0.55).FillRect(bodyX, bodyY, math.Round(w*0.33), h)
	walls.LineStyle(2, p.trim, 0.8).StrokeRect(bodyX, bodyY, w, h)
	walls.FillStyle(p.trim, 1).FillRect(bodyX, bodyY-4, w, 4)

	winW := math.Max(22, math.Round(w*0.22))
	winH := math.Max(16, math.Round(winW*0.75))
	winY := bodyY + math.Round(h*0.28)
	gapX := math.Max(16, math.Round(w*0.12))
	for _, wx := range []float64{-gapX - winW/2, gapX - winW/2} {
		g := n.Graphics()
		g.FillStyle(p.trim, 1).FillRect(wx-2, winY-2, winW+4, winH+4)
		g.FillStyle(p.window, 1).FillRect(wx, winY, winW, winH)
		g.LineStyle(1.5, p.trim, 0.9).
			LineBetween(wx+winW/2, winY, wx+winW/2, winY+winH).
			LineBetween(wx, winY+winH/2, wx+winW, winY+winH/2)
	}

	doorW := math.Max(22, math.Round(w*0.22))
	doorH := math.Max(40, math.Round(h*0.48))
	doorCX := 0.0
	switch door {
	case levels.DoorLeft:
		doorCX = -math.Round(w * 0.22)
	case levels.DoorRight:
		doorCX = math.Round(w * 0.22)
	}
	doorX := math.Round(doorCX - doorW/2)
	doorY := math.Round(h/2 - doorH)
	const stepH = 4

	g := n.Graphics()
	g.FillStyle(p.trim, 1).FillRect(doorX-3, doorY-3, doorW+6, doorH+6)
	g.FillStyle(p.door, 1).FillRect(doorX, doorY, doorW, doorH)
	g.FillStyle(0xFFD54F, 1).FillCircle(doorX+doorW-6, doorY+math.Round(doorH*0.55), 2)
	g.FillStyle(0x2f2f2f, 0.8).FillRect(doorX-6, doorY+doorH, doorW+12, stepH)
	g.FillStyle(0x262626, 0.9).FillRect(doorX-10, doorY+doorH+stepH, doorW+20, stepH)
}
