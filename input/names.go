package input

import (
	"fmt"
	"strings"
)

// Name tables are built once at package init and only read afterwards.
// Lookups are case-insensitive; String() returns the canonical name.
var (
	buttonNames    = buildButtonNames()
	axisNames      = buildAxisNames()
	buttonByName   = buildButtonLookup()
	axisByName     = buildAxisLookup()
	modifierByName = map[string]PressState{
		"shift":    ModShift,
		"ctrl":     ModCtrl,
		"control":  ModCtrl,
		"alt":      ModAlt,
		"option":   ModAlt,
		"super":    ModSuper,
		"meta":     ModSuper,
		"cmd":      ModSuper,
		"win":      ModSuper,
		"capslock": ModCapsLock,
		"caps":     ModCapsLock,
		"numlock":  ModNumLock,
		"num":      ModNumLock,
	}
)

// modifierKeys maps keys that act as modifiers to the bit they contribute.
// Used when folding modifier keys of a chord into its other atoms.
var modifierKeys = map[InputButton]PressState{
	KeyLeftShift:  ModShift,
	KeyRightShift: ModShift,
	KeyLeftCtrl:   ModCtrl,
	KeyRightCtrl:  ModCtrl,
	KeyLeftAlt:    ModAlt,
	KeyRightAlt:   ModAlt,
	KeyLeftSuper:  ModSuper,
	KeyRightSuper: ModSuper,
	KeyCapsLock:   ModCapsLock,
	KeyNumLock:    ModNumLock,
}

// LookupButton resolves a button name such as "KeyW", "W", "Up" or "Gamepad2A".
func LookupButton(name string) (InputButton, bool) {
	b, ok := buttonByName[strings.ToLower(strings.TrimSpace(name))]
	return b, ok
}

// LookupAxis resolves an axis name such as "MouseCursorX" or "GamepadLeftStickY".
func LookupAxis(name string) (InputAxis, bool) {
	a, ok := axisByName[strings.ToLower(strings.TrimSpace(name))]
	return a, ok
}

// LookupModifier resolves a modifier name such as "Shift" or "Ctrl" to its bit.
func LookupModifier(name string) (PressState, bool) {
	m, ok := modifierByName[strings.ToLower(strings.TrimSpace(name))]
	return m, ok
}

// ModifierKey returns the modifier bit a key contributes, if it is a modifier key.
func ModifierKey(b InputButton) (PressState, bool) {
	m, ok := modifierKeys[b]
	return m, ok
}

var padButtonNames = [PadButtonCount]string{
	PadA:            "A",
	PadB:            "B",
	PadX:            "X",
	PadY:            "Y",
	PadLeftBumper:   "LeftBumper",
	PadRightBumper:  "RightBumper",
	PadLeftTrigger:  "LeftTrigger",
	PadRightTrigger: "RightTrigger",
	PadBack:         "Back",
	PadStart:        "Start",
	PadGuide:        "Guide",
	PadLeftThumb:    "LeftThumb",
	PadRightThumb:   "RightThumb",
	PadDPadUp:       "DPadUp",
	PadDPadRight:    "DPadRight",
	PadDPadDown:     "DPadDown",
	PadDPadLeft:     "DPadLeft",
}

var padButtonAliases = map[PadButton][]string{
	PadLeftBumper:   {"LB", "L1"},
	PadRightBumper:  {"RB", "R1"},
	PadLeftTrigger:  {"LT", "L2"},
	PadRightTrigger: {"RT", "R2"},
	PadBack:         {"Select", "View"},
	PadStart:        {"Menu", "Options"},
	PadGuide:        {"Home"},
	PadLeftThumb:    {"LS", "L3"},
	PadRightThumb:   {"RS", "R3"},
	PadDPadUp:       {"Up"},
	PadDPadRight:    {"Right"},
	PadDPadDown:     {"Down"},
	PadDPadLeft:     {"Left"},
}

var padAxisNames = [PadAxisCount]string{
	PadLeftStickX:       "LeftStickX",
	PadLeftStickY:       "LeftStickY",
	PadRightStickX:      "RightStickX",
	PadRightStickY:      "RightStickY",
	PadLeftTriggerAxis:  "LeftTriggerAxis",
	PadRightTriggerAxis: "RightTriggerAxis",
}

// namedKeys holds canonical names and aliases for keys that are not letters,
// digits or function keys. The first name is canonical.
var namedKeys = []struct {
	button InputButton
	names  []string
}{
	{KeySpace, []string{"KeySpace", "Space"}},
	{KeyEnter, []string{"KeyEnter", "Enter", "Return"}},
	{KeyEscape, []string{"KeyEscape", "Escape", "Esc"}},
	{KeyTab, []string{"KeyTab", "Tab"}},
	{KeyBackspace, []string{"KeyBackspace", "Backspace"}},
	{KeyInsert, []string{"KeyInsert", "Insert"}},
	{KeyDelete, []string{"KeyDelete", "Delete", "Del"}},
	{KeyHome, []string{"KeyHome", "Home"}},
	{KeyEnd, []string{"KeyEnd", "End"}},
	{KeyPageUp, []string{"KeyPageUp", "PageUp", "PgUp"}},
	{KeyPageDown, []string{"KeyPageDown", "PageDown", "PgDn"}},
	{KeyUp, []string{"KeyUp", "Up", "ArrowUp"}},
	{KeyDown, []string{"KeyDown", "Down", "ArrowDown"}},
	{KeyLeft, []string{"KeyLeft", "Left", "ArrowLeft"}},
	{KeyRight, []string{"KeyRight", "Right", "ArrowRight"}},
	{KeyMinus, []string{"KeyMinus", "Minus"}},
	{KeyEqual, []string{"KeyEqual", "Equal"}},
	{KeyComma, []string{"KeyComma", "Comma"}},
	{KeyPeriod, []string{"KeyPeriod", "Period"}},
	{KeySlash, []string{"KeySlash", "Slash"}},
	{KeySemicolon, []string{"KeySemicolon", "Semicolon"}},
	{KeyQuote, []string{"KeyQuote", "Quote", "Apostrophe"}},
	{KeyBracketLeft, []string{"KeyBracketLeft", "BracketLeft", "LeftBracket"}},
	{KeyBracketRight, []string{"KeyBracketRight", "BracketRight", "RightBracket"}},
	{KeyBackslash, []string{"KeyBackslash", "Backslash"}},
	{KeyBackquote, []string{"KeyBackquote", "Backquote", "Grave", "Tilde"}},
	{KeyLeftShift, []string{"LeftShift", "ShiftLeft", "LShift", "KeyLeftShift"}},
	{KeyRightShift, []string{"RightShift", "ShiftRight", "RShift", "KeyRightShift"}},
	{KeyLeftCtrl, []string{"LeftCtrl", "ControlLeft", "LeftControl", "LCtrl", "KeyLeftCtrl"}},
	{KeyRightCtrl, []string{"RightCtrl", "ControlRight", "RightControl", "RCtrl", "KeyRightCtrl"}},
	{KeyLeftAlt, []string{"LeftAlt", "AltLeft", "LAlt", "KeyLeftAlt"}},
	{KeyRightAlt, []string{"RightAlt", "AltRight", "RAlt", "KeyRightAlt"}},
	{KeyLeftSuper, []string{"LeftSuper", "MetaLeft", "LeftMeta", "LSuper", "KeyLeftSuper"}},
	{KeyRightSuper, []string{"RightSuper", "MetaRight", "RightMeta", "RSuper", "KeyRightSuper"}},
	{KeyCapsLock, []string{"CapsLock", "KeyCapsLock"}},
	{KeyNumLock, []string{"NumLock", "KeyNumLock"}},
	{MouseLeft, []string{"MouseLeft", "MouseButtonLeft", "LMB"}},
	{MouseRight, []string{"MouseRight", "MouseButtonRight", "RMB"}},
	{MouseMiddle, []string{"MouseMiddle", "MouseButtonMiddle", "MMB"}},
	{MouseBack, []string{"MouseBack", "MouseButton4"}},
	{MouseForward, []string{"MouseForward", "MouseButton5"}},
}

// buttonAliases yields every accepted name of every button, canonical first.
func buttonAliases(yield func(b InputButton, name string)) {
	for i := 0; i < 26; i++ {
		letter := string(rune('A' + i))
		b := KeyA + InputButton(i)
		yield(b, "Key"+letter)
		yield(b, letter)
	}
	for i := 0; i < 10; i++ {
		digit := string(rune('0' + i))
		b := Key0 + InputButton(i)
		yield(b, "Key"+digit)
		yield(b, "Digit"+digit)
		yield(b, digit)
	}
	for i := 1; i <= 12; i++ {
		b := KeyF1 + InputButton(i-1)
		yield(b, fmt.Sprintf("KeyF%d", i))
		yield(b, fmt.Sprintf("F%d", i))
	}
	for _, k := range namedKeys {
		for _, name := range k.names {
			yield(k.button, name)
		}
	}
	for slot := 0; slot < MaxGamepads; slot++ {
		prefix := fmt.Sprintf("Gamepad%d", slot+1)
		for pad := PadButton(0); pad < PadButtonCount; pad++ {
			b := GamepadButton(slot, pad)
			names := append([]string{padButtonNames[pad]}, padButtonAliases[pad]...)
			for _, n := range names {
				yield(b, prefix+n)
				if slot == 0 {
					yield(b, "Gamepad"+n)
				}
			}
		}
	}
}

func buildButtonNames() [ButtonCount]string {
	var names [ButtonCount]string
	buttonAliases(func(b InputButton, name string) {
		if names[b] == "" {
			names[b] = name
		}
	})
	return names
}

func buildButtonLookup() map[string]InputButton {
	m := make(map[string]InputButton, ButtonCount*3)
	buttonAliases(func(b InputButton, name string) {
		key := strings.ToLower(name)
		if _, dup := m[key]; dup {
			panic(fmt.Sprintf("input: duplicate button name %q", name))
		}
		m[key] = b
	})
	return m
}

func axisAliases(yield func(a InputAxis, name string)) {
	yield(MouseCursorX, "MouseCursorX")
	yield(MouseCursorX, "MouseX")
	yield(MouseCursorY, "MouseCursorY")
	yield(MouseCursorY, "MouseY")
	yield(MouseWheelX, "MouseWheelX")
	yield(MouseWheelY, "MouseWheelY")
	yield(MouseWheelY, "MouseWheel")
	for slot := 0; slot < MaxGamepads; slot++ {
		prefix := fmt.Sprintf("Gamepad%d", slot+1)
		for pad := PadAxis(0); pad < PadAxisCount; pad++ {
			a := GamepadAxis(slot, pad)
			yield(a, prefix+padAxisNames[pad])
			if slot == 0 {
				yield(a, "Gamepad"+padAxisNames[pad])
			}
		}
	}
}

func buildAxisNames() [AxisCount]string {
	var names [AxisCount]string
	axisAliases(func(a InputAxis, name string) {
		if names[a] == "" {
			names[a] = name
		}
	})
	return names
}

func buildAxisLookup() map[string]InputAxis {
	m := make(map[string]InputAxis, AxisCount*2)
	axisAliases(func(a InputAxis, name string) {
		key := strings.ToLower(name)
		if _, dup := m[key]; dup {
			panic(fmt.Sprintf("input: duplicate axis name %q", name))
		}
		if _, clash := buttonByName[key]; clash {
			panic(fmt.Sprintf("input: axis name %q shadows a button", name))
		}
		m[key] = a
	})
	return m
}
