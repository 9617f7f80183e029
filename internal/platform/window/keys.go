package window

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rook-computer/pocketedit/internal/input"
	"github.com/rook-computer/pocketedit/internal/render"
)

var keyboardKeys = map[ebiten.Key]input.Keys{
	ebiten.KeyX:          input.KeyA,
	ebiten.KeyZ:          input.KeyB,
	ebiten.KeyS:          input.KeyX,
	ebiten.KeyA:          input.KeyY,
	ebiten.KeyQ:          input.KeyL,
	ebiten.KeyW:          input.KeyR,
	ebiten.Key1:          input.KeyZL,
	ebiten.Key2:          input.KeyZR,
	ebiten.KeyEnter:      input.KeyStart,
	ebiten.KeyShiftRight: input.KeySelect,
	ebiten.KeyBackspace:  input.KeySelect,
	ebiten.KeyArrowUp:    input.KeyDUp,
	ebiten.KeyArrowDown:  input.KeyDDown,
	ebiten.KeyArrowLeft:  input.KeyDLeft,
	ebiten.KeyArrowRight: input.KeyDRight,
}

var gamepadButtons = map[ebiten.StandardGamepadButton]input.Keys{
	ebiten.StandardGamepadButtonRightRight:       input.KeyA,
	ebiten.StandardGamepadButtonRightBottom:      input.KeyB,
	ebiten.StandardGamepadButtonRightTop:         input.KeyX,
	ebiten.StandardGamepadButtonRightLeft:        input.KeyY,
	ebiten.StandardGamepadButtonFrontTopLeft:     input.KeyL,
	ebiten.StandardGamepadButtonFrontTopRight:    input.KeyR,
	ebiten.StandardGamepadButtonFrontBottomLeft:  input.KeyZL,
	ebiten.StandardGamepadButtonFrontBottomRight: input.KeyZR,
	ebiten.StandardGamepadButtonCenterLeft:       input.KeySelect,
	ebiten.StandardGamepadButtonCenterRight:      input.KeyStart,
	ebiten.StandardGamepadButtonLeftTop:          input.KeyDUp,
	ebiten.StandardGamepadButtonLeftBottom:       input.KeyDDown,
	ebiten.StandardGamepadButtonLeftLeft:         input.KeyDLeft,
	ebiten.StandardGamepadButtonLeftRight:        input.KeyDRight,
}

func heldKeys() input.Keys {
	var held input.Keys
	for k, key := range keyboardKeys {
		if ebiten.IsKeyPressed(k) {
			held |= key
		}
	}
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for b, key := range gamepadButtons {
			if ebiten.IsStandardGamepadButtonPressed(id, b) {
				held |= key
			}
		}
	}
	return held
}

// homePressed treats Escape and the gamepad guide button as a home request.
func homePressed() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return true
	}
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if ebiten.IsStandardGamepadLayoutAvailable(id) &&
			inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterCenter) {
			return true
		}
	}
	return false
}

// touchPoint maps the mouse or the first touch onto the bottom surface.
func touchPoint() (image.Point, bool) {
	if ids := ebiten.AppendTouchIDs(nil); len(ids) > 0 {
		return render.BottomPoint(image.Pt(ebiten.TouchPosition(ids[0])))
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		return render.BottomPoint(image.Pt(ebiten.CursorPosition()))
	}
	return image.Point{}, false
}
