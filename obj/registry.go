package obj

import (
	"errors"
	"fmt"
	"sort"

	"github.com/milk9111/mailme/levels"
)

var ErrUnknownKind = errors.New("obj: no factory registered for kind")

// Factory turns one item into a world object. Create must depend only on the
// item so that equal items always yield equal objects.
type Factory interface {
	Kind() levels.Kind
	Create(obs Obstacles, it levels.Item) (*Object, error)
}

// Registry maps item kinds to their factories.
type Registry struct {
	factories map[levels.Kind]Factory
}

func NewRegistry(factories ...Factory) *Registry {
	r := &Registry{factories: make(map[levels.Kind]Factory, len(factories))}
	for _, f := range factories {
		r.Register(f)
	}
	return r
}

// DefaultRegistry knows every prop the layout format defines.
func DefaultRegistry() *Registry {
	return NewRegistry(
		houseFactory{},
		treeFactory{},
		bushFactory{},
		rocksFactory{},
		lampFactory{},
		signFactory{},
		benchFactory{},
		mailboxFactory{},
		wardrobeFactory{},
		groundFactory{kind: levels.KindWater},
		groundFactory{kind: levels.KindDirt},
		groundFactory{kind: levels.KindGravel},
		groundFactory{kind: levels.KindPlanks},
		colliderFactory{},
	)
}

// Register adds f, replacing any factory already bound to its kind.
func (r *Registry) Register(f Factory) {
	if r == nil || f == nil {
		return
	}
	r.factories[f.Kind()] = f
}

func (r *Registry) Lookup(kind levels.Kind) (Factory, bool) {
	if r == nil {
		return nil, false
	}
	f, ok := r.factories[kind]
	return f, ok
}

func (r *Registry) Kinds() []levels.Kind {
	if r == nil {
		return nil
	}
	out := make([]levels.Kind, 0, len(r.factories))
	for k := range r.factories {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Create resolves the item's factory and builds it.
func (r *Registry) Create(obs Obstacles, it levels.Item) (*Object, error) {
	if it == nil {
		return nil, fmt.Errorf("obj: nil item")
	}
	f, ok := r.Lookup(it.Kind())
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, it.Kind())
	}
	return f.Create(obs, it)
}

func wrongItem(want levels.Kind, it levels.Item) error {
	return fmt.Errorf("obj: %s factory got %T", want, it)
}
