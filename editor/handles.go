package editor

import (
	"github.com/milk9111/mailme/gfx"
)

type HandleStyle struct {
	Radius         float64
	SelectedRadius float64
	Color          uint32
	SelectedColor  uint32
}

// Handles draws a ring over every item, with a larger ring on the selection.
// It only redraws when the editor state version changes.
type Handles struct {
	style   HandleStyle
	root    *gfx.Node
	g       *gfx.Graphics
	version int
}

func NewHandles(style HandleStyle) *Handles {
	root := gfx.NewNode(0, 0)
	root.SetDepth(1e9)
	return &Handles{style: style, root: root, g: root.Graphics(), version: -1}
}

func (h *Handles) Node() *gfx.Node {
	return h.root
}

func (h *Handles) Sync(s *State) {
	if s.Version() == h.version {
		return
	}
	h.version = s.Version()

	g := h.g
	g.Clear()
	sel := s.Selected()
	for _, it := range s.items {
		p := it.Pos()
		if it == sel {
			g.LineStyle(3, h.style.SelectedColor, 1).StrokeCircle(p.X, p.Y, h.style.SelectedRadius)
			continue
		}
		g.LineStyle(2, h.style.Color, 0.9).StrokeCircle(p.X, p.Y, h.style.Radius)
	}
}

func (h *Handles) SetVisible(v bool) {
	h.root.SetVisible(v)
}

func (h *Handles) Destroy() {
	h.root.Destroy()
}
