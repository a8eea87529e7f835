package obj

import "math"

// Key names the keyboard keys gameplay and the editor react to.
type Key int

const (
	KeyEscape Key = iota
	KeyDelete
	KeyBackspace
	KeyE
	KeyG
	KeyH
	KeyL
	KeyS
	KeyZ
	KeyF1
	KeyF2
	KeyDigit1
	KeyDigit2
	KeyDigit3
	KeyDigit4
	KeyDigit5
	KeyDigit6
	KeyDigit7
	KeyDigit8
	KeyDigit9
)

// DigitKey returns the key for digit n in 1..9.
func DigitKey(n int) (Key, bool) {
	if n < 1 || n > 9 {
		return 0, false
	}
	return KeyDigit1 + Key(n-1), true
}

// KeySet is a set of keys that were pressed this frame.
type KeySet uint64

func (s KeySet) Has(k Key) bool { return s&(1<<uint(k)) != 0 }

func (s KeySet) With(keys ...Key) KeySet {
	for _, k := range keys {
		s |= 1 << uint(k)
	}
	return s
}

// InputState is one frame of polled input. The platform layer fills it in so
// gameplay and the editor never talk to the window system directly.
type InputState struct {
	// MoveX/MoveY are -1, 0 or +1 per axis.
	MoveX float64
	MoveY float64

	// MouseWorldX/Y are the cursor position in world coordinates.
	MouseWorldX float64
	MouseWorldY float64

	MouseLeftPressed  bool
	MouseLeftHeld     bool
	MouseLeftReleased bool

	// PointerOverUI is set while the cursor is over an overlay panel, so
	// presses there belong to the panel and not the world.
	PointerOverUI bool

	// Ctrl is true while Control or the platform command key is held.
	Ctrl  bool
	Shift bool

	Pressed KeySet
}

func (in InputState) JustPressed(k Key) bool {
	return in.Pressed.Has(k)
}

// MoveDir returns the movement direction normalized so diagonals are not faster.
func (in InputState) MoveDir() (float64, float64) {
	x, y := in.MoveX, in.MoveY
	if l := math.Hypot(x, y); l > 1 {
		return x / l, y / l
	}
	return x, y
}
