package systems

import (
	"github.com/automoto/doomerang-input/input"
	"github.com/hajimehoshi/ebiten/v2"
)

type keyMapping struct {
	key    ebiten.Key
	button input.InputButton
}

var keyMap = buildKeyMap()

// ebiten key constants are not guaranteed contiguous, so each run is listed.
var (
	ebitenLetters = [26]ebiten.Key{
		ebiten.KeyA,
		ebiten.KeyB,
		ebiten.KeyC,
		ebiten.KeyD,
		ebiten.KeyE,
		ebiten.KeyF,
		ebiten.KeyG,
		ebiten.KeyH,
		ebiten.KeyI,
		ebiten.KeyJ,
		ebiten.KeyK,
		ebiten.KeyL,
		ebiten.KeyM,
		ebiten.KeyN,
		ebiten.KeyO,
		ebiten.KeyP,
		ebiten.KeyQ,
		ebiten.KeyR,
		ebiten.KeyS,
		ebiten.KeyT,
		ebiten.KeyU,
		ebiten.KeyV,
		ebiten.KeyW,
		ebiten.KeyX,
		ebiten.KeyY,
		ebiten.KeyZ,
	}
	ebitenDigits = [10]ebiten.Key{
		ebiten.KeyDigit0,
		ebiten.KeyDigit1,
		ebiten.KeyDigit2,
		ebiten.KeyDigit3,
		ebiten.KeyDigit4,
		ebiten.KeyDigit5,
		ebiten.KeyDigit6,
		ebiten.KeyDigit7,
		ebiten.KeyDigit8,
		ebiten.KeyDigit9,
	}
	ebitenFunctionKeys = [12]ebiten.Key{
		ebiten.KeyF1,
		ebiten.KeyF2,
		ebiten.KeyF3,
		ebiten.KeyF4,
		ebiten.KeyF5,
		ebiten.KeyF6,
		ebiten.KeyF7,
		ebiten.KeyF8,
		ebiten.KeyF9,
		ebiten.KeyF10,
		ebiten.KeyF11,
		ebiten.KeyF12,
	}
)

func buildKeyMap() []keyMapping {
	m := make([]keyMapping, 0, 96)
	for i, k := range ebitenLetters {
		m = append(m, keyMapping{k, input.KeyA + input.InputButton(i)})
	}
	for i, k := range ebitenDigits {
		m = append(m, keyMapping{k, input.Key0 + input.InputButton(i)})
	}
	for i, k := range ebitenFunctionKeys {
		m = append(m, keyMapping{k, input.KeyF1 + input.InputButton(i)})
	}
	return append(m,
		keyMapping{ebiten.KeySpace, input.KeySpace},
		keyMapping{ebiten.KeyEnter, input.KeyEnter},
		keyMapping{ebiten.KeyEscape, input.KeyEscape},
		keyMapping{ebiten.KeyTab, input.KeyTab},
		keyMapping{ebiten.KeyBackspace, input.KeyBackspace},
		keyMapping{ebiten.KeyInsert, input.KeyInsert},
		keyMapping{ebiten.KeyDelete, input.KeyDelete},
		keyMapping{ebiten.KeyHome, input.KeyHome},
		keyMapping{ebiten.KeyEnd, input.KeyEnd},
		keyMapping{ebiten.KeyPageUp, input.KeyPageUp},
		keyMapping{ebiten.KeyPageDown, input.KeyPageDown},
		keyMapping{ebiten.KeyArrowUp, input.KeyUp},
		keyMapping{ebiten.KeyArrowDown, input.KeyDown},
		keyMapping{ebiten.KeyArrowLeft, input.KeyLeft},
		keyMapping{ebiten.KeyArrowRight, input.KeyRight},
		keyMapping{ebiten.KeyMinus, input.KeyMinus},
		keyMapping{ebiten.KeyEqual, input.KeyEqual},
		keyMapping{ebiten.KeyComma, input.KeyComma},
		keyMapping{ebiten.KeyPeriod, input.KeyPeriod},
		keyMapping{ebiten.KeySlash, input.KeySlash},
		keyMapping{ebiten.KeySemicolon, input.KeySemicolon},
		keyMapping{ebiten.KeyQuote, input.KeyQuote},
		keyMapping{ebiten.KeyBracketLeft, input.KeyBracketLeft},
		keyMapping{ebiten.KeyBracketRight, input.KeyBracketRight},
		keyMapping{ebiten.KeyBackslash, input.KeyBackslash},
		keyMapping{ebiten.KeyBackquote, input.KeyBackquote},
		keyMapping{ebiten.KeyShiftLeft, input.KeyLeftShift},
		keyMapping{ebiten.KeyShiftRight, input.KeyRightShift},
		keyMapping{ebiten.KeyControlLeft, input.KeyLeftCtrl},
		keyMapping{ebiten.KeyControlRight, input.KeyRightCtrl},
		keyMapping{ebiten.KeyAltLeft, input.KeyLeftAlt},
		keyMapping{ebiten.KeyAltRight, input.KeyRightAlt},
		keyMapping{ebiten.KeyMetaLeft, input.KeyLeftSuper},
		keyMapping{ebiten.KeyMetaRight, input.KeyRightSuper},
		keyMapping{ebiten.KeyCapsLock, input.KeyCapsLock},
		keyMapping{ebiten.KeyNumLock, input.KeyNumLock},
	)
}

var mouseMap = []struct {
	mouse  ebiten.MouseButton
	button input.InputButton
}{
	{ebiten.MouseButtonLeft, input.MouseLeft},
	{ebiten.MouseButtonRight, input.MouseRight},
	{ebiten.MouseButtonMiddle, input.MouseMiddle},
	{ebiten.MouseButton3, input.MouseBack},
	{ebiten.MouseButton4, input.MouseForward},
}

// padButtonMap maps pad buttons to the standard layout (Xbox naming):
// A = RightBottom, B = RightRight, X = RightLeft, Y = RightTop.
var padButtonMap = [input.PadButtonCount]ebiten.StandardGamepadButton{
	input.PadA:            ebiten.StandardGamepadButtonRightBottom,
	input.PadB:            ebiten.StandardGamepadButtonRightRight,
	input.PadX:            ebiten.StandardGamepadButtonRightLeft,
	input.PadY:            ebiten.StandardGamepadButtonRightTop,
	input.PadLeftBumper:   ebiten.StandardGamepadButtonFrontTopLeft,
	input.PadRightBumper:  ebiten.StandardGamepadButtonFrontTopRight,
	input.PadLeftTrigger:  ebiten.StandardGamepadButtonFrontBottomLeft,
	input.PadRightTrigger: ebiten.StandardGamepadButtonFrontBottomRight,
	input.PadBack:         ebiten.StandardGamepadButtonCenterLeft,
	input.PadStart:        ebiten.StandardGamepadButtonCenterRight,
	input.PadGuide:        ebiten.StandardGamepadButtonCenterCenter,
	input.PadLeftThumb:    ebiten.StandardGamepadButtonLeftStick,
	input.PadRightThumb:   ebiten.StandardGamepadButtonRightStick,
	input.PadDPadUp:       ebiten.StandardGamepadButtonLeftTop,
	input.PadDPadRight:    ebiten.StandardGamepadButtonLeftRight,
	input.PadDPadDown:     ebiten.StandardGamepadButtonLeftBottom,
	input.PadDPadLeft:     ebiten.StandardGamepadButtonLeftLeft,
}

var padStickMap = []struct {
	axis input.PadAxis
	std  ebiten.StandardGamepadAxis
}{
	{input.PadLeftStickX, ebiten.StandardGamepadAxisLeftStickHorizontal},
	{input.PadLeftStickY, ebiten.StandardGamepadAxisLeftStickVertical},
	{input.PadRightStickX, ebiten.StandardGamepadAxisRightStickHorizontal},
	{input.PadRightStickY, ebiten.StandardGamepadAxisRightStickVertical},
}

// Triggers are analog buttons in the standard layout.
var padTriggerMap = []struct {
	axis input.PadAxis
	std  ebiten.StandardGamepadButton
}{
	{input.PadLeftTriggerAxis, ebiten.StandardGamepadButtonFrontBottomLeft},
	{input.PadRightTriggerAxis, ebiten.StandardGamepadButtonFrontBottomRight},
}
