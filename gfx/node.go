package gfx

import (
	"slices"
	"sort"
)

// Label is a line of text anchored in the owning node's local space.
// OriginX/OriginY pick the anchor inside the text box (0.5, 1 is bottom center).
type Label struct {
	Text    string
	X, Y    float64
	Color   uint32
	OriginX float64
	OriginY float64
}

// Node is a retained display container. Children draw after their parent and
// are ordered among siblings by Depth.
type Node struct {
	X, Y   float64
	Depth  float64
	Hidden bool

	graphics []*Graphics
	labels   []*Label
	children []*Node
	parent   *Node

	destroyed bool
}

func NewNode(x, y float64) *Node {
	return &Node{X: x, Y: y}
}

func (n *Node) SetPosition(x, y float64) {
	if n == nil {
		return
	}
	n.X = x
	n.Y = y
}

func (n *Node) SetDepth(d float64) {
	if n == nil {
		return
	}
	n.Depth = d
}

func (n *Node) SetVisible(v bool) {
	if n == nil {
		return
	}
	n.Hidden = !v
}

func (n *Node) Visible() bool {
	return n != nil && !n.Hidden
}

// Graphics returns a new primitive list attached to n.
func (n *Node) Graphics() *Graphics {
	g := NewGraphics()
	n.graphics = append(n.graphics, g)
	return g
}

func (n *Node) AddLabel(l *Label) *Label {
	n.labels = append(n.labels, l)
	return l
}

func (n *Node) Add(child *Node) {
	if n == nil || child == nil || child == n {
		return
	}
	if child.parent != nil {
		child.parent.Remove(child)
	}
	child.parent = n
	n.children = append(n.children, child)
}

func (n *Node) Remove(child *Node) {
	if n == nil || child == nil {
		return
	}
	if i := slices.Index(n.children, child); i >= 0 {
		n.children = slices.Delete(n.children, i, i+1)
		child.parent = nil
	}
}

// Destroy detaches n from its parent and destroys its subtree.
func (n *Node) Destroy() {
	if n == nil || n.destroyed {
		return
	}
	if n.parent != nil {
		n.parent.Remove(n)
	}
	for _, c := range n.children {
		c.parent = nil
		c.Destroy()
	}
	n.children = nil
	n.graphics = nil
	n.labels = nil
	n.destroyed = true
}

func (n *Node) Destroyed() bool {
	return n == nil || n.destroyed
}

func (n *Node) Parent() *Node {
	if n == nil {
		return nil
	}
	return n.parent
}

func (n *Node) Children() []*Node {
	if n == nil {
		return nil
	}
	return n.children
}

func (n *Node) GraphicsList() []*Graphics {
	if n == nil {
		return nil
	}
	return n.graphics
}

func (n *Node) Labels() []*Label {
	if n == nil {
		return nil
	}
	return n.labels
}

// SortedChildren returns the children ordered by Depth, keeping insertion
// order for equal depths.
func (n *Node) SortedChildren() []*Node {
	out := slices.Clone(n.Children())
	sort.SliceStable(out, func(i, j int) bool { return out[i].Depth < out[j].Depth })
	return out
}

// WorldPosition sums the offsets of n and its ancestors.
func (n *Node) WorldPosition() (float64, float64) {
	var x, y float64
	for p := n; p != nil; p = p.parent {
		x += p.X
		y += p.Y
	}
	return x, y
}

// Walk visits visible nodes in draw order, passing each node's world offset.
func (n *Node) Walk(fn func(node *Node, wx, wy float64)) {
	if n == nil {
		return
	}
	px, py := 0.0, 0.0
	if n.parent != nil {
		px, py = n.parent.WorldPosition()
	}
	n.walk(px, py, fn)
}

func (n *Node) walk(px, py float64, fn func(*Node, float64, float64)) {
	if n.Hidden || n.destroyed {
		return
	}
	wx, wy := px+n.X, py+n.Y
	fn(n, wx, wy)
	for _, c := range n.SortedChildren() {
		c.walk(wx, wy, fn)
	}
}
