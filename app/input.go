package app

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/mailme/gfx"
	"github.com/milk9111/mailme/obj"
)

const stickDeadzone = 0.2

var keyBindings = map[obj.Key][]ebiten.Key{
	obj.KeyEscape:    {ebiten.KeyEscape},
	obj.KeyDelete:    {ebiten.KeyDelete},
	obj.KeyBackspace: {ebiten.KeyBackspace},
	obj.KeyE:         {ebiten.KeyE},
	obj.KeyG:         {ebiten.KeyG},
	obj.KeyH:         {ebiten.KeyH},
	obj.KeyL:         {ebiten.KeyL},
	obj.KeyS:         {ebiten.KeyS},
	obj.KeyZ:         {ebiten.KeyZ},
	obj.KeyF1:        {ebiten.KeyF1},
	obj.KeyF2:        {ebiten.KeyF2},
	obj.KeyDigit1:    {ebiten.KeyDigit1, ebiten.KeyNumpad1},
	obj.KeyDigit2:    {ebiten.KeyDigit2, ebiten.KeyNumpad2},
	obj.KeyDigit3:    {ebiten.KeyDigit3, ebiten.KeyNumpad3},
	obj.KeyDigit4:    {ebiten.KeyDigit4, ebiten.KeyNumpad4},
	obj.KeyDigit5:    {ebiten.KeyDigit5, ebiten.KeyNumpad5},
	obj.KeyDigit6:    {ebiten.KeyDigit6, ebiten.KeyNumpad6},
	obj.KeyDigit7:    {ebiten.KeyDigit7, ebiten.KeyNumpad7},
	obj.KeyDigit8:    {ebiten.KeyDigit8, ebiten.KeyNumpad8},
	obj.KeyDigit9:    {ebiten.KeyDigit9, ebiten.KeyNumpad9},
}

func anyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// PollInput samples keyboard, mouse and the first gamepad for this frame.
// The cursor is converted to world space through cam.
func PollInput(cam *gfx.Camera) obj.InputState {
	var in obj.InputState

	if anyPressed(ebiten.KeyA, ebiten.KeyArrowLeft) {
		in.MoveX -= 1
	}
	if anyPressed(ebiten.KeyD, ebiten.KeyArrowRight) {
		in.MoveX += 1
	}
	if anyPressed(ebiten.KeyW, ebiten.KeyArrowUp) {
		in.MoveY -= 1
	}
	if anyPressed(ebiten.KeyS, ebiten.KeyArrowDown) {
		in.MoveY += 1
	}

	if gamepads := ebiten.AppendGamepadIDs(nil); len(gamepads) > 0 {
		id := gamepads[0]
		lx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		ly := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Hypot(lx, ly) > stickDeadzone {
			in.MoveX, in.MoveY = lx, ly
		}
		if inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom) {
			in.Pressed = in.Pressed.With(obj.KeyE)
		}
	}

	in.Ctrl = anyPressed(ebiten.KeyControl, ebiten.KeyMeta)
	in.Shift = ebiten.IsKeyPressed(ebiten.KeyShift)

	// Ctrl+S is a save, not a step down.
	if in.Ctrl && in.MoveY > 0 && ebiten.IsKeyPressed(ebiten.KeyS) {
		in.MoveY = 0
	}

	for k, keys := range keyBindings {
		for _, ek := range keys {
			if inpututil.IsKeyJustPressed(ek) {
				in.Pressed = in.Pressed.With(k)
				break
			}
		}
	}

	mx, my := ebiten.CursorPosition()
	in.MouseWorldX, in.MouseWorldY = cam.ScreenToWorld(float64(mx), float64(my))
	in.MouseLeftPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	in.MouseLeftHeld = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	in.MouseLeftReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	return in
}
