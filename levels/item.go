package levels

import (
	"encoding/json"
	"slices"
)

// Kind is the type tag stored in the "t" field of a layout record.
type Kind string

const (
	KindHouse    Kind = "house"
	KindTree     Kind = "tree"
	KindBush     Kind = "bush"
	KindRocks    Kind = "rocks"
	KindLamp     Kind = "lamp"
	KindSign     Kind = "sign"
	KindBench    Kind = "bench"
	KindMailbox  Kind = "mailbox"
	KindWardrobe Kind = "wardrobe"
	KindWater    Kind = "water"
	KindDirt     Kind = "dirt"
	KindGravel   Kind = "gravel"
	KindPlanks   Kind = "planks"
	KindCollider Kind = "collider"
)

var knownKinds = []Kind{
	KindHouse, KindTree, KindBush, KindRocks, KindLamp, KindSign,
	KindBench, KindMailbox, KindWardrobe,
	KindWater, KindDirt, KindGravel, KindPlanks,
	KindCollider,
}

// Kinds returns every tag this package knows how to decode.
func Kinds() []Kind {
	return slices.Clone(knownKinds)
}

func (k Kind) Known() bool {
	return slices.Contains(knownKinds, k)
}

// Ground reports whether k is a flat ground tile.
func (k Kind) Ground() bool {
	switch k {
	case KindWater, KindDirt, KindGravel, KindPlanks:
		return true
	}
	return false
}

type Vec struct {
	X float64
	Y float64
}

// Item is one placed record of a layout. The set of implementations is closed.
type Item interface {
	Kind() Kind
	Pos() Vec
	SetPos(Vec)
	item()
}

// ItemList is an ordered layout. Order only affects draw and overlap priority.
type ItemList []Item

// Color is a packed 0xRRGGBB value.
type Color uint32

type DoorPos string

const (
	DoorLeft   DoorPos = "left"
	DoorCenter DoorPos = "center"
	DoorRight  DoorPos = "right"
)

// Base carries the anchor shared by every record.
type Base struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (b *Base) Pos() Vec { return Vec{X: b.X, Y: b.Y} }

func (b *Base) SetPos(v Vec) {
	b.X = v.X
	b.Y = v.Y
}

func (b *Base) item() {}

type House struct {
	Base
	W       float64  `json:"w"`
	H       float64  `json:"h"`
	DoorPos *DoorPos `json:"doorPos,omitempty"`
}

func (*House) Kind() Kind { return KindHouse }

type Tree struct {
	Base
	Scale *float64 `json:"scale,omitempty"`
	Tint  *Color   `json:"tint,omitempty"`
}

func (*Tree) Kind() Kind { return KindTree }

type Bush struct {
	Base
	Scale *float64 `json:"scale,omitempty"`
	Tint  *Color   `json:"tint,omitempty"`
}

func (*Bush) Kind() Kind { return KindBush }

type Rocks struct {
	Base
	Count     *int     `json:"count,omitempty"`
	BaseScale *float64 `json:"baseScale,omitempty"`
	Tint      *Color   `json:"tint,omitempty"`
}

func (*Rocks) Kind() Kind { return KindRocks }

type Lamp struct {
	Base
	Scale *float64 `json:"scale,omitempty"`
}

func (*Lamp) Kind() Kind { return KindLamp }

type Sign struct {
	Base
	Text *string `json:"text,omitempty"`
}

func (*Sign) Kind() Kind { return KindSign }

type Bench struct{ Base }

func (*Bench) Kind() Kind { return KindBench }

type Mailbox struct{ Base }

func (*Mailbox) Kind() Kind { return KindMailbox }

type Wardrobe struct{ Base }

func (*Wardrobe) Kind() Kind { return KindWardrobe }

// Ground is a flat tile. Tag is one of water, dirt, gravel or planks.
type Ground struct {
	Base
	Tag  Kind     `json:"-"`
	Size *float64 `json:"size,omitempty"`
}

func (g *Ground) Kind() Kind { return g.Tag }

// Collider is an invisible blocking box.
type Collider struct {
	Base
	W float64 `json:"w"`
	H float64 `json:"h"`
}

func (*Collider) Kind() Kind { return KindCollider }

// Unknown keeps a record whose tag this build does not recognise, so saving
// a layout never loses data written by a newer editor.
type Unknown struct {
	Tag    string
	Fields map[string]json.RawMessage
}

func (u *Unknown) Kind() Kind { return Kind(u.Tag) }

func (u *Unknown) Pos() Vec {
	var v Vec
	if raw, ok := u.Fields["x"]; ok {
		_ = json.Unmarshal(raw, &v.X)
	}
	if raw, ok := u.Fields["y"]; ok {
		_ = json.Unmarshal(raw, &v.Y)
	}
	return v
}

func (u *Unknown) SetPos(v Vec) {
	if u.Fields == nil {
		u.Fields = make(map[string]json.RawMessage, 2)
	}
	u.Fields["x"], _ = json.Marshal(v.X)
	u.Fields["y"], _ = json.Marshal(v.Y)
}

func (u *Unknown) item() {}

// Or dereferences p, falling back to def when the field was omitted.
func Or[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}

// Ptr returns a pointer to v. Handy for optional fields.
func Ptr[T any](v T) *T {
	return &v
}

// New returns a record of the given kind at pos with no optional fields set.
func New(kind Kind, pos Vec) Item {
	base := Base{X: pos.X, Y: pos.Y}
	switch kind {
	case KindHouse:
		return &House{Base: base}
	case KindTree:
		return &Tree{Base: base}
	case KindBush:
		return &Bush{Base: base}
	case KindRocks:
		return &Rocks{Base: base}
	case KindLamp:
		return &Lamp{Base: base}
	case KindSign:
		return &Sign{Base: base}
	case KindBench:
		return &Bench{Base: base}
	case KindMailbox:
		return &Mailbox{Base: base}
	case KindWardrobe:
		return &Wardrobe{Base: base}
	case KindWater, KindDirt, KindGravel, KindPlanks:
		return &Ground{Base: base, Tag: kind}
	case KindCollider:
		return &Collider{Base: base}
	}
	u := &Unknown{Tag: string(kind)}
	u.SetPos(pos)
	return u
}

// Clone returns a deep copy of it.
func Clone(it Item) Item {
	if it == nil {
		return nil
	}
	data, err := marshalItem(it)
	if err != nil {
		return nil
	}
	out, err := decodeRecord(data)
	if err != nil {
		return nil
	}
	return out
}

// Clone deep-copies every record in the list.
func (l ItemList) Clone() ItemList {
	out := make(ItemList, 0, len(l))
	for _, it := range l {
		if c := Clone(it); c != nil {
			out = append(out, c)
		}
	}
	return out
}
