package input

import "strings"

// MaxGamepads is the number of gamepad slots a controller tracks.
const MaxGamepads = 4

// InputDevice is a bitmask identifying the keyboard, the mouse or one gamepad slot.
type InputDevice uint8

const DeviceNone InputDevice = 0

const (
	DeviceKeyboard InputDevice = 1 << iota
	DeviceMouse
	DeviceGamepad1
	DeviceGamepad2
	DeviceGamepad3
	DeviceGamepad4
)

// AllDevices lists every device in bit order. Processors built for a
// multi-device binding are installed in this order.
var AllDevices = [...]InputDevice{
	DeviceKeyboard,
	DeviceMouse,
	DeviceGamepad1,
	DeviceGamepad2,
	DeviceGamepad3,
	DeviceGamepad4,
}

// GamepadDevice returns the device for gamepad slot (0-based).
func GamepadDevice(slot int) InputDevice {
	if slot < 0 || slot >= MaxGamepads {
		return DeviceNone
	}
	return DeviceGamepad1 << slot
}

// GamepadSlot returns the 0-based slot of a gamepad device.
func (d InputDevice) GamepadSlot() (int, bool) {
	for slot := 0; slot < MaxGamepads; slot++ {
		if d == DeviceGamepad1<<slot {
			return slot, true
		}
	}
	return 0, false
}

func (d InputDevice) String() string {
	switch d {
	case DeviceNone:
		return "None"
	case DeviceKeyboard:
		return "Keyboard"
	case DeviceMouse:
		return "Mouse"
	case DeviceGamepad1:
		return "Gamepad1"
	case DeviceGamepad2:
		return "Gamepad2"
	case DeviceGamepad3:
		return "Gamepad3"
	case DeviceGamepad4:
		return "Gamepad4"
	}

	// Combined mask
	var parts []string
	for _, dev := range AllDevices {
		if d&dev != 0 {
			parts = append(parts, dev.String())
		}
	}
	return strings.Join(parts, "|")
}

// PressState combines a base state (Released, JustPressed, Pressing) with
// independent modifier bits.
type PressState uint16

const (
	Released    PressState = 0
	JustPressed PressState = 1
	Pressing    PressState = 2

	baseMask PressState = 0x3
)

const (
	ModShift PressState = 1 << (iota + 2)
	ModCtrl
	ModAlt
	ModSuper
	ModCapsLock
	ModNumLock

	modMask = ModShift | ModCtrl | ModAlt | ModSuper | ModCapsLock | ModNumLock
)

// Base returns the state without modifier bits.
func (s PressState) Base() PressState {
	return s & baseMask
}

// Modifiers returns only the modifier bits.
func (s PressState) Modifiers() PressState {
	return s & modMask
}

// IsPressed reports whether the base state is JustPressed or Pressing.
func (s PressState) IsPressed() bool {
	b := s.Base()
	return b == JustPressed || b == Pressing
}

// With returns s with the given modifier bits added.
func (s PressState) With(mods PressState) PressState {
	return s | mods.Modifiers()
}

// Satisfies reports whether a live state meets a required state.
//
// A required JustPressed is met by a live JustPressed or Pressing, so a held
// button keeps a chord satisfied. A required Pressing only matches Pressing
// and Released only matches Released. Required modifier bits must all be
// present in the live state; extra live modifiers are ignored.
func (s PressState) Satisfies(required PressState) bool {
	if s.Modifiers()&required.Modifiers() != required.Modifiers() {
		return false
	}
	switch required.Base() {
	case JustPressed:
		return s.IsPressed()
	case Pressing:
		return s.Base() == Pressing
	case Released:
		return s.Base() == Released
	}
	return false
}

var modifierNames = []struct {
	bit  PressState
	name string
}{
	{ModShift, "Shift"},
	{ModCtrl, "Ctrl"},
	{ModAlt, "Alt"},
	{ModSuper, "Super"},
	{ModCapsLock, "CapsLock"},
	{ModNumLock, "NumLock"},
}

func (s PressState) String() string {
	var b strings.Builder
	switch s.Base() {
	case Released:
		b.WriteString("Released")
	case JustPressed:
		b.WriteString("JustPressed")
	case Pressing:
		b.WriteString("Pressing")
	default:
		b.WriteString("Invalid")
	}
	for _, m := range modifierNames {
		if s&m.bit != 0 {
			b.WriteByte('|')
			b.WriteString(m.name)
		}
	}
	return b.String()
}
