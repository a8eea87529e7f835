package world

import (
	"math"

	"github.com/milk9111/mailme/levels"
	"github.com/milk9111/mailme/obj"
)

// Interaction names what walking up to an interactable prop opens.
type Interaction string

const (
	InteractNone     Interaction = ""
	InteractCompose  Interaction = "compose"
	InteractInbox    Interaction = "inbox"
	InteractWardrobe Interaction = "wardrobe"
)

func interactionFor(k levels.Kind) (Interaction, bool) {
	switch k {
	case levels.KindBench:
		return InteractCompose, true
	case levels.KindMailbox:
		return InteractInbox, true
	case levels.KindWardrobe:
		return InteractWardrobe, true
	}
	return InteractNone, false
}

// Interactables holds lookup handles to the three interactive props of a
// build. An unset slot means that interaction is unavailable.
type Interactables struct {
	Compose  *obj.Object
	Inbox    *obj.Object
	Wardrobe *obj.Object
}

func (in *Interactables) get(slot Interaction) *obj.Object {
	switch slot {
	case InteractCompose:
		return in.Compose
	case InteractInbox:
		return in.Inbox
	case InteractWardrobe:
		return in.Wardrobe
	}
	return nil
}

func (in *Interactables) set(slot Interaction, o *obj.Object) {
	switch slot {
	case InteractCompose:
		in.Compose = o
	case InteractInbox:
		in.Inbox = o
	case InteractWardrobe:
		in.Wardrobe = o
	}
}

// Nearest returns the closest interactable strictly within radius of (x, y).
func (in Interactables) Nearest(x, y, radius float64) (Interaction, *obj.Object) {
	best, bestObj := InteractNone, (*obj.Object)(nil)
	bestD := radius * radius
	for _, slot := range []Interaction{InteractCompose, InteractInbox, InteractWardrobe} {
		o := in.get(slot)
		if o == nil || o.Destroyed() {
			continue
		}
		p := o.Position()
		d := math.Pow(p.X-x, 2) + math.Pow(p.Y-y, 2)
		if d < bestD {
			best, bestObj, bestD = slot, o, d
		}
	}
	return best, bestObj
}
