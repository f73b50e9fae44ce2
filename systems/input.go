package systems

import (
	"log"
	"strings"

	"github.com/automoto/doomerang-input/components"
	cfg "github.com/automoto/doomerang-input/config"
	"github.com/automoto/doomerang-input/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slices for gamepad IDs to avoid allocations
var (
	gamepadIDs       []ebiten.GamepadID
	newGamepadIDs    []ebiten.GamepadID
	connectedScratch = make(map[ebiten.GamepadID]bool, input.MaxGamepads)
)

// Cache controller types to avoid string allocation every frame
var controllerTypeCache = make(map[ebiten.GamepadID]components.InputMethod)

// UpdateInput polls ebiten, feeds every transition to the controller, advances
// the input clock by one tick and generates this frame's events.
// Must run BEFORE any system that consumes events.
func UpdateInput(e *ecs.ECS) {
	in := GetInput(e)
	if in == nil || in.Controller == nil {
		return
	}

	updateGamepadSlots(in)

	mods := keyboardModifiers()
	keyboardUsed := pollKeyboard(in.Controller, mods)
	mouseUsed := pollMouse(in.Controller, in.Axes, mods)
	gamepadUsed, gamepadMethod := pollGamepads(in)

	// Gamepad takes priority if several were used
	switch {
	case gamepadUsed:
		in.LastInputMethod = gamepadMethod
	case keyboardUsed:
		in.LastInputMethod = components.InputKeyboard
	case mouseUsed:
		in.LastInputMethod = components.InputMouse
	}

	in.Clock.Advance(1 / float64(cfg.C.TPS))
	in.Controller.GenerateInputEvents()
}

// keyboardModifiers reads the modifier bits applied to every key and mouse
// button this frame. Lock keys report as held rather than toggled.
func keyboardModifiers() input.PressState {
	var mods input.PressState
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= input.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= input.ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= input.ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= input.ModSuper
	}
	if ebiten.IsKeyPressed(ebiten.KeyCapsLock) {
		mods |= input.ModCapsLock
	}
	if ebiten.IsKeyPressed(ebiten.KeyNumLock) {
		mods |= input.ModNumLock
	}
	return mods
}

// pressState builds the state reported for one button.
func pressState(pressed, justPressed bool, mods input.PressState) input.PressState {
	switch {
	case justPressed:
		return input.JustPressed.With(mods)
	case pressed:
		return input.Pressing.With(mods)
	}
	return input.Released
}

// report forwards a state only when it changed, so the platform layer sends
// transitions rather than a full snapshot every frame.
func report(c *input.Controller, b input.InputButton, state input.PressState) {
	if c.ButtonState(b) != state {
		c.OnButtonAction(b, state)
	}
}

func pollKeyboard(c *input.Controller, mods input.PressState) bool {
	used := false
	for _, m := range keyMap {
		pressed := ebiten.IsKeyPressed(m.key)
		report(c, m.button, pressState(pressed, inpututil.IsKeyJustPressed(m.key), mods))
		used = used || pressed
	}
	return used
}

func pollMouse(c *input.Controller, axes *input.AxisTable, mods input.PressState) bool {
	used := false
	for _, m := range mouseMap {
		pressed := ebiten.IsMouseButtonPressed(m.mouse)
		report(c, m.button, pressState(pressed, inpututil.IsMouseButtonJustPressed(m.mouse), mods))
		used = used || pressed
	}

	x, y := ebiten.CursorPosition()
	axes.Set(input.MouseCursorX, float64(x))
	axes.Set(input.MouseCursorY, float64(y))

	// Wheel offsets are per frame, so the axis is the frame's scroll amount.
	wx, wy := ebiten.Wheel()
	axes.Set(input.MouseWheelX, wx)
	axes.Set(input.MouseWheelY, wy)
	return used || wx != 0 || wy != 0
}

func pollGamepads(in *components.InputData) (bool, components.InputMethod) {
	used := false
	method := components.InputXbox
	for slot := range in.Gamepads {
		gp := &in.Gamepads[slot]
		if !gp.Connected || !ebiten.IsStandardGamepadLayoutAvailable(gp.ID) {
			continue
		}

		for pad := input.PadButton(0); pad < input.PadButtonCount; pad++ {
			std := padButtonMap[pad]
			pressed := ebiten.IsStandardGamepadButtonPressed(gp.ID, std)
			just := inpututil.IsStandardGamepadButtonJustPressed(gp.ID, std)
			report(in.Controller, input.GamepadButton(slot, pad), pressState(pressed, just, 0))
			if pressed {
				used = true
				method = gp.Method
			}
		}

		for _, s := range padStickMap {
			in.Axes.Set(input.GamepadAxis(slot, s.axis), ebiten.StandardGamepadAxisValue(gp.ID, s.std))
		}
		for _, t := range padTriggerMap {
			in.Axes.Set(input.GamepadAxis(slot, t.axis), ebiten.StandardGamepadButtonValue(gp.ID, t.std))
		}
	}
	return used, method
}

// updateGamepadSlots keeps each connected gamepad in a stable slot: a pad
// keeps its slot until it disconnects, and new pads take the first free one.
func updateGamepadSlots(in *components.InputData) {
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	clear(connectedScratch)
	for _, id := range gamepadIDs {
		connectedScratch[id] = true
	}

	for slot := range in.Gamepads {
		gp := &in.Gamepads[slot]
		if gp.Connected && !connectedScratch[gp.ID] {
			log.Printf("Gamepad %d disconnected: %s", slot+1, gp.Name)
			releaseGamepadSlot(in, slot)
		}
	}

	newGamepadIDs = inpututil.AppendJustConnectedGamepadIDs(newGamepadIDs[:0])
	for _, id := range newGamepadIDs {
		delete(controllerTypeCache, id)
	}

	for _, id := range gamepadIDs {
		if gamepadSlotOf(in, id) >= 0 {
			continue
		}
		slot := freeGamepadSlot(in)
		if slot < 0 {
			break
		}
		in.Gamepads[slot] = components.GamepadSlot{
			Connected: true,
			ID:        id,
			Name:      ebiten.GamepadName(id),
			Method:    getControllerType(id),
		}
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			log.Printf("Warning: gamepad %q has no standard layout, its input is ignored", in.Gamepads[slot].Name)
		}
		log.Printf("Gamepad %d connected: %s", slot+1, in.Gamepads[slot].Name)
	}
}

func gamepadSlotOf(in *components.InputData, id ebiten.GamepadID) int {
	for slot, gp := range in.Gamepads {
		if gp.Connected && gp.ID == id {
			return slot
		}
	}
	return -1
}

func freeGamepadSlot(in *components.InputData) int {
	for slot, gp := range in.Gamepads {
		if !gp.Connected {
			return slot
		}
	}
	return -1
}

// releaseGamepadSlot releases every button of the slot and makes its axes
// unavailable, so axis bindings stop emitting until it reconnects.
func releaseGamepadSlot(in *components.InputData, slot int) {
	for pad := input.PadButton(0); pad < input.PadButtonCount; pad++ {
		report(in.Controller, input.GamepadButton(slot, pad), input.Released)
	}
	in.Axes.ClearDevice(input.GamepadDevice(slot))
	in.Gamepads[slot] = components.GamepadSlot{}
}

// getControllerType returns cached controller type, detecting on first access
func getControllerType(gpID ebiten.GamepadID) components.InputMethod {
	if method, ok := controllerTypeCache[gpID]; ok {
		return method
	}

	// Detect and cache controller type
	name := strings.ToLower(ebiten.GamepadName(gpID))
	var method components.InputMethod
	if strings.Contains(name, "ps4") || strings.Contains(name, "ps5") ||
		strings.Contains(name, "playstation") || strings.Contains(name, "dualshock") ||
		strings.Contains(name, "dualsense") {
		method = components.InputPlayStation
	} else {
		// Default gamepad to Xbox-style
		method = components.InputXbox
	}

	controllerTypeCache[gpID] = method
	return method
}

// GetInput returns the singleton InputData, or nil before the scene spawned it.
func GetInput(e *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(e.World)
	if !ok {
		return nil
	}
	return components.Input.Get(entry)
}
