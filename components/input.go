package components

import (
	"github.com/automoto/doomerang-input/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputMouse
	InputXbox
	InputPlayStation
)

func (m InputMethod) String() string {
	switch m {
	case InputMouse:
		return "Mouse"
	case InputXbox:
		return "Xbox"
	case InputPlayStation:
		return "PlayStation"
	}
	return "Keyboard"
}

// GamepadSlot tracks which ebiten gamepad drives one input device slot.
type GamepadSlot struct {
	Connected bool
	ID        ebiten.GamepadID
	Name      string
	Method    InputMethod
}

// InputData is the singleton owning the binding controller and everything the
// platform poller writes into it.
type InputData struct {
	Controller *input.Controller
	Clock      *input.FrameClock
	Axes       *input.AxisTable

	Gamepads        [input.MaxGamepads]GamepadSlot
	LastInputMethod InputMethod // Most recently used input method

	Profile    int    // Index into config.Input.Profiles
	ConfigPath string // Reloaded when Reload is set
	Reload     bool
	Quit       bool
}

var Input = donburi.NewComponentType[InputData]()

// ListenerData is one consumer of the controller's events. Every listener
// entity gets its own queue, so each sees every event.
type ListenerData struct {
	Queue    *input.Queue
	Handle   input.QueueHandle
	Listener input.Listener
}

var Listener = donburi.NewComponentType[ListenerData]()
