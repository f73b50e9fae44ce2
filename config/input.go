package config

import (
	"fmt"
	"strings"

	"github.com/automoto/doomerang-input/input"
)

// ActionID represents a logical game action. It is the code carried by
// every input event.
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionCrouch
	ActionJump
	ActionAttack
	ActionBoomerang
	ActionSprint
	ActionPause
	ActionQuickSave
	ActionMove
	ActionAim
	ActionTriggers
	ActionCursor
	ActionScroll
	ActionCycleProfile
	ActionQuit
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionNone:         "none",
	ActionMoveLeft:     "move_left",
	ActionMoveRight:    "move_right",
	ActionMoveUp:       "move_up",
	ActionCrouch:       "crouch",
	ActionJump:         "jump",
	ActionAttack:       "attack",
	ActionBoomerang:    "boomerang",
	ActionSprint:       "sprint",
	ActionPause:        "pause",
	ActionQuickSave:    "quick_save",
	ActionMove:         "move",
	ActionAim:          "aim",
	ActionTriggers:     "triggers",
	ActionCursor:       "cursor",
	ActionScroll:       "scroll",
	ActionCycleProfile: "cycle_profile",
	ActionQuit:         "quit",
}

func (a ActionID) String() string {
	if a < 0 || a >= ActionCount {
		return fmt.Sprintf("action(%d)", int(a))
	}
	return actionNames[a]
}

// BindingProfile is a named, ordered set of bindings. Order is the order
// events are generated in within one frame.
type BindingProfile struct {
	Name     string
	Bindings []input.InputBinding
}

// InputConfig holds all input mappings
type InputConfig struct {
	Profiles      []BindingProfile `toml:"-"`
	ActiveProfile int              `toml:"-"`

	// Event log
	MaxLogLines      int     `toml:"max_log_lines"`
	EventFadeSeconds float64 `toml:"event_fade_seconds"`
}

// Input is the global input configuration
var Input InputConfig

// Profile returns profile i, wrapping out-of-range indices.
func (c InputConfig) Profile(i int) BindingProfile {
	if len(c.Profiles) == 0 {
		return BindingProfile{}
	}
	i %= len(c.Profiles)
	if i < 0 {
		i += len(c.Profiles)
	}
	return c.Profiles[i]
}

// ProfileIndex finds a profile by case-insensitive name.
func (c InputConfig) ProfileIndex(name string) (int, bool) {
	for i, p := range c.Profiles {
		if strings.EqualFold(p.Name, strings.TrimSpace(name)) {
			return i, true
		}
	}
	return 0, false
}

// Active returns the selected profile.
func (c InputConfig) Active() BindingProfile {
	return c.Profile(c.ActiveProfile)
}

func bind(a ActionID, t input.ActionType, expr string) input.InputBinding {
	return input.InputBinding{Name: a.String(), Code: int(a), Expression: expr, Type: t}
}

// mergeProfiles ORs the expressions of bindings that share a name, keeping
// the order of first appearance.
func mergeProfiles(name string, profiles ...BindingProfile) BindingProfile {
	merged := BindingProfile{Name: name}
	index := map[string]int{}
	for _, p := range profiles {
		for _, b := range p.Bindings {
			if i, ok := index[b.Name]; ok {
				if merged.Bindings[i].Expression != b.Expression {
					merged.Bindings[i].Expression += ";" + b.Expression
				}
				continue
			}
			index[b.Name] = len(merged.Bindings)
			merged.Bindings = append(merged.Bindings, b)
		}
	}
	return merged
}

var keyboardProfile = BindingProfile{
	Name: "Keyboard",
	Bindings: []input.InputBinding{
		bind(ActionMoveLeft, input.ActionContinuous, "KeyA;KeyLeft"),
		bind(ActionMoveRight, input.ActionContinuous, "KeyD;KeyRight"),
		bind(ActionMoveUp, input.ActionContinuous, "KeyW;KeyUp"),
		bind(ActionCrouch, input.ActionContinuous, "KeyS;KeyDown"),
		bind(ActionJump, input.ActionEvent, "Space;KeyX"),
		bind(ActionAttack, input.ActionEvent, "KeyZ;MouseLeft"),
		bind(ActionBoomerang, input.ActionEvent, "KeyC;MouseRight"),
		bind(ActionSprint, input.ActionContinuous, "LeftShift"),
		bind(ActionPause, input.ActionEvent, "Escape;KeyP"),
		bind(ActionQuickSave, input.ActionEvent, "LeftCtrl+S"),
		bind(ActionCursor, input.ActionAxis, "MouseCursorX+MouseCursorY"),
		bind(ActionScroll, input.ActionAxis, "MouseWheelY"),
		bind(ActionCycleProfile, input.ActionEvent, "F1"),
		bind(ActionQuit, input.ActionEvent, "LeftCtrl+Q"),
	},
}

var gamepadProfile = BindingProfile{
	Name: "Gamepad",
	Bindings: []input.InputBinding{
		bind(ActionMoveLeft, input.ActionContinuous, "GamepadDPadLeft;Gamepad2DPadLeft"),
		bind(ActionMoveRight, input.ActionContinuous, "GamepadDPadRight;Gamepad2DPadRight"),
		bind(ActionMoveUp, input.ActionContinuous, "GamepadDPadUp;Gamepad2DPadUp"),
		bind(ActionCrouch, input.ActionContinuous, "GamepadDPadDown;Gamepad2DPadDown"),
		bind(ActionJump, input.ActionEvent, "GamepadA;Gamepad2A"),
		bind(ActionAttack, input.ActionEvent, "GamepadX;Gamepad2X"),
		bind(ActionBoomerang, input.ActionEvent, "GamepadB;Gamepad2B"),
		bind(ActionSprint, input.ActionContinuous, "GamepadRightBumper"),
		bind(ActionPause, input.ActionEvent, "GamepadStart;Gamepad2Start"),
		bind(ActionQuickSave, input.ActionEvent, "GamepadBack+GamepadY"),
		bind(ActionMove, input.ActionAxis, "GamepadLeftStickX+GamepadLeftStickY;Gamepad2LeftStickX+Gamepad2LeftStickY"),
		bind(ActionAim, input.ActionAxis, "GamepadRightStickX+GamepadRightStickY"),
		bind(ActionTriggers, input.ActionAxis, "GamepadLeftTriggerAxis+GamepadRightTriggerAxis"),
		bind(ActionCycleProfile, input.ActionEvent, "F1;GamepadBack+GamepadLeftBumper"),
		bind(ActionQuit, input.ActionEvent, "LeftCtrl+Q"),
	},
}

// terminalProfile avoids bindings a terminal cannot report: key releases
// arrive late, there is no bare modifier key, no gamepad and no wheel X.
var terminalProfile = BindingProfile{
	Name: "Terminal",
	Bindings: []input.InputBinding{
		bind(ActionMoveLeft, input.ActionContinuous, "KeyA;KeyLeft;KeyH"),
		bind(ActionMoveRight, input.ActionContinuous, "KeyD;KeyRight;KeyL"),
		bind(ActionMoveUp, input.ActionContinuous, "KeyW;KeyUp;KeyK"),
		bind(ActionCrouch, input.ActionContinuous, "KeyS;KeyDown;KeyJ"),
		bind(ActionJump, input.ActionEvent, "Space"),
		bind(ActionAttack, input.ActionEvent, "KeyZ;MouseLeft"),
		bind(ActionBoomerang, input.ActionEvent, "KeyX;MouseRight"),
		bind(ActionSprint, input.ActionContinuous, "KeyD&Shift;KeyA&Shift"),
		bind(ActionPause, input.ActionEvent, "KeyP;Escape"),
		bind(ActionQuickSave, input.ActionEvent, "KeyS&Ctrl"),
		bind(ActionCursor, input.ActionAxis, "MouseCursorX+MouseCursorY"),
		bind(ActionScroll, input.ActionAxis, "MouseWheelY"),
		bind(ActionCycleProfile, input.ActionEvent, "F1;Tab"),
		bind(ActionQuit, input.ActionEvent, "KeyQ;KeyC&Ctrl"),
	},
}

// TerminalProfile returns the bindings used by the terminal viewer.
func TerminalProfile() BindingProfile {
	return terminalProfile
}

func init() {
	Input = InputConfig{
		Profiles: []BindingProfile{
			mergeProfiles("Keyboard + Gamepad", keyboardProfile, gamepadProfile),
			keyboardProfile,
			gamepadProfile,
		},
		ActiveProfile:    0,
		MaxLogLines:      18,
		EventFadeSeconds: 2.5,
	}
}
