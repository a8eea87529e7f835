package world

import (
	"errors"

	"github.com/milk9111/mailme/gfx"
	"github.com/milk9111/mailme/levels"
	"github.com/milk9111/mailme/obj"
	"go.uber.org/zap"
)

var (
	ErrNoRegistry  = errors.New("world: builder needs a factory registry")
	ErrNoObstacles = errors.New("world: builder needs a collision surface")
)

// Build is one generation of constructed world objects. It owns every object
// and footprint it holds.
type Build struct {
	Root          *gfx.Node
	Objects       []*obj.Object
	Interactables Interactables

	// byItem maps item index to its object; nil where the item was skipped.
	byItem    []*obj.Object
	destroyed bool
}

// ObjectFor returns the object built from the item at index i.
func (b *Build) ObjectFor(i int) *obj.Object {
	if b == nil || i < 0 || i >= len(b.byItem) {
		return nil
	}
	return b.byItem[i]
}

// Destroy tears down every object and detaches every footprint.
func (b *Build) Destroy() {
	if b == nil || b.destroyed {
		return
	}
	for _, o := range b.Objects {
		o.Destroy()
	}
	b.Root.Destroy()
	b.Objects = nil
	b.byItem = nil
	b.Interactables = Interactables{}
	b.destroyed = true
}

// Builder turns item lists into world objects and keeps the current
// generation alive until the next rebuild.
type Builder struct {
	reg *obj.Registry
	obs obj.Obstacles
	log *zap.Logger

	current     *Build
	generation  int
	debugShapes bool
}

func NewBuilder(reg *obj.Registry, obs obj.Obstacles, log *zap.Logger) (*Builder, error) {
	if reg == nil {
		return nil, ErrNoRegistry
	}
	if obs == nil {
		return nil, ErrNoObstacles
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Builder{reg: reg, obs: obs, log: log}, nil
}

// Build constructs items into a fresh generation without touching the
// current one. Items without a factory are skipped and logged.
func (b *Builder) Build(items levels.ItemList) *Build {
	out := &Build{
		Root:   gfx.NewNode(0, 0),
		byItem: make([]*obj.Object, len(items)),
	}
	for i, it := range items {
		if it == nil {
			continue
		}
		o, err := b.reg.Create(b.obs, it)
		if err != nil {
			b.log.Warn("skipping item", zap.Int("index", i), zap.String("kind", string(it.Kind())), zap.Error(err))
			continue
		}
		o.SetDebugVisible(b.debugShapes)
		out.Root.Add(o.Node())
		out.Objects = append(out.Objects, o)
		out.byItem[i] = o
		if slot, ok := interactionFor(it.Kind()); ok {
			if prev := out.Interactables.get(slot); prev != nil {
				b.log.Warn("duplicate interactable, last one wins",
					zap.String("interaction", string(slot)), zap.Int("index", i))
			}
			out.Interactables.set(slot, o)
		}
	}
	return out
}

// Rebuild destroys the current generation and only then builds items.
func (b *Builder) Rebuild(items levels.ItemList) *Build {
	if b.current != nil {
		b.current.Destroy()
		b.current = nil
	}
	b.current = b.Build(items)
	b.generation++
	b.log.Debug("world rebuilt",
		zap.Int("generation", b.generation),
		zap.Int("objects", len(b.current.Objects)))
	return b.current
}

// MoveItem repositions the live object for item index i without a rebuild.
func (b *Builder) MoveItem(i int, x, y float64) {
	if o := b.current.ObjectFor(i); o != nil {
		o.SetPosition(x, y)
	}
}

func (b *Builder) Current() *Build {
	return b.current
}

func (b *Builder) Generation() int {
	return b.generation
}

// SetDebugShapes shows or hides collider overlays on current and future builds.
func (b *Builder) SetDebugShapes(v bool) {
	b.debugShapes = v
	if b.current == nil {
		return
	}
	for _, o := range b.current.Objects {
		o.SetDebugVisible(v)
	}
}

func (b *Builder) Destroy() {
	if b.current != nil {
		b.current.Destroy()
		b.current = nil
	}
}
