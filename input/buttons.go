package input

// InputButton identifies a physical button: a key, a mouse button or a
// gamepad button in a specific slot.
type InputButton uint16

const (
	ButtonUnknown InputButton = iota

	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	KeySpace
	KeyEnter
	KeyEscape
	KeyTab
	KeyBackspace
	KeyInsert
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	KeyMinus
	KeyEqual
	KeyComma
	KeyPeriod
	KeySlash
	KeySemicolon
	KeyQuote
	KeyBracketLeft
	KeyBracketRight
	KeyBackslash
	KeyBackquote

	KeyLeftShift
	KeyRightShift
	KeyLeftCtrl
	KeyRightCtrl
	KeyLeftAlt
	KeyRightAlt
	KeyLeftSuper
	KeyRightSuper
	KeyCapsLock
	KeyNumLock

	MouseLeft
	MouseRight
	MouseMiddle
	MouseBack
	MouseForward

	firstGamepadButton
)

const firstMouseButton = MouseLeft

// PadButton is a gamepad button independent of its slot.
type PadButton uint8

const (
	PadA PadButton = iota
	PadB
	PadX
	PadY
	PadLeftBumper
	PadRightBumper
	PadLeftTrigger
	PadRightTrigger
	PadBack
	PadStart
	PadGuide
	PadLeftThumb
	PadRightThumb
	PadDPadUp
	PadDPadRight
	PadDPadDown
	PadDPadLeft

	PadButtonCount
)

// ButtonCount is the size of a table indexed by InputButton.
const ButtonCount = int(firstGamepadButton) + MaxGamepads*int(PadButtonCount)

// GamepadButton returns the button id of pad in gamepad slot (0-based).
func GamepadButton(slot int, pad PadButton) InputButton {
	if slot < 0 || slot >= MaxGamepads || pad >= PadButtonCount {
		return ButtonUnknown
	}
	return firstGamepadButton + InputButton(slot*int(PadButtonCount)+int(pad))
}

// Valid reports whether b names a real button.
func (b InputButton) Valid() bool {
	return b != ButtonUnknown && int(b) < ButtonCount
}

// Device derives the owning device from the button id.
func (b InputButton) Device() InputDevice {
	switch {
	case !b.Valid():
		return DeviceNone
	case b < firstMouseButton:
		return DeviceKeyboard
	case b < firstGamepadButton:
		return DeviceMouse
	}
	slot, _, _ := b.Gamepad()
	return GamepadDevice(slot)
}

// Gamepad splits a gamepad button id into its slot and pad button.
func (b InputButton) Gamepad() (slot int, pad PadButton, ok bool) {
	if b < firstGamepadButton || int(b) >= ButtonCount {
		return 0, 0, false
	}
	off := int(b - firstGamepadButton)
	return off / int(PadButtonCount), PadButton(off % int(PadButtonCount)), true
}

func (b InputButton) String() string {
	if !b.Valid() {
		return "Unknown"
	}
	return buttonNames[b]
}

// InputAxis identifies an analog control: mouse cursor or wheel, or a gamepad
// stick or trigger in a specific slot.
type InputAxis uint8

const (
	AxisUnknown InputAxis = iota

	MouseCursorX
	MouseCursorY
	MouseWheelX
	MouseWheelY

	firstGamepadAxis
)

// PadAxis is a gamepad axis independent of its slot.
type PadAxis uint8

const (
	PadLeftStickX PadAxis = iota
	PadLeftStickY
	PadRightStickX
	PadRightStickY
	PadLeftTriggerAxis
	PadRightTriggerAxis

	PadAxisCount
)

// AxisCount is the size of a table indexed by InputAxis.
const AxisCount = int(firstGamepadAxis) + MaxGamepads*int(PadAxisCount)

// GamepadAxis returns the axis id of pad in gamepad slot (0-based).
func GamepadAxis(slot int, pad PadAxis) InputAxis {
	if slot < 0 || slot >= MaxGamepads || pad >= PadAxisCount {
		return AxisUnknown
	}
	return firstGamepadAxis + InputAxis(slot*int(PadAxisCount)+int(pad))
}

// Valid reports whether a names a real axis.
func (a InputAxis) Valid() bool {
	return a != AxisUnknown && int(a) < AxisCount
}

// Device derives the owning device from the axis id.
func (a InputAxis) Device() InputDevice {
	switch {
	case !a.Valid():
		return DeviceNone
	case a < firstGamepadAxis:
		return DeviceMouse
	}
	slot, _, _ := a.Gamepad()
	return GamepadDevice(slot)
}

// Gamepad splits a gamepad axis id into its slot and pad axis.
func (a InputAxis) Gamepad() (slot int, pad PadAxis, ok bool) {
	if a < firstGamepadAxis || int(a) >= AxisCount {
		return 0, 0, false
	}
	off := int(a - firstGamepadAxis)
	return off / int(PadAxisCount), PadAxis(off % int(PadAxisCount)), true
}

func (a InputAxis) String() string {
	if !a.Valid() {
		return "Unknown"
	}
	return axisNames[a]
}
