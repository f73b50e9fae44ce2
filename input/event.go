package input

import (
	"fmt"
	"strings"
)

// ActionType selects how a binding turns device state into events.
type ActionType uint8

const (
	// ActionEvent fires once on the activation edge.
	ActionEvent ActionType = iota
	// ActionContinuous fires every tick while the condition holds.
	ActionContinuous
	// ActionAxis reports axis values and deltas every tick the axes resolve.
	ActionAxis
)

func (t ActionType) String() string {
	switch t {
	case ActionEvent:
		return "Event"
	case ActionContinuous:
		return "Continuous"
	case ActionAxis:
		return "Axis"
	}
	return fmt.Sprintf("ActionType(%d)", t)
}

// Vec3 holds up to three axis components.
type Vec3 struct {
	X, Y, Z float64
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Component returns the i-th component (0 = X).
func (v Vec3) Component(i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	return 0
}

func (v *Vec3) setComponent(i int, f float64) {
	switch i {
	case 0:
		v.X = f
	case 1:
		v.Y = f
	case 2:
		v.Z = f
	}
}

// Event is a game input event. The concrete types are EventAction,
// ContinuousAction and AxisAction.
type Event interface {
	ActionCode() int
	ActionType() ActionType
}

// EventAction is emitted once when an Event binding activates.
type EventAction struct {
	Code int
}

// ContinuousAction is emitted every tick a Continuous binding stays active.
type ContinuousAction struct {
	Code           int
	ActiveStart    float64 // time of the activation tick
	ActiveDuration float64 // seconds since ActiveStart
}

// AxisAction carries the current value and per-tick delta of one superposition.
// Only the first Components fields of Value and Delta are meaningful.
type AxisAction struct {
	Code       int
	Components int
	Value      Vec3
	Delta      Vec3
}

func (e EventAction) ActionCode() int      { return e.Code }
func (e ContinuousAction) ActionCode() int { return e.Code }
func (e AxisAction) ActionCode() int       { return e.Code }

func (EventAction) ActionType() ActionType      { return ActionEvent }
func (ContinuousAction) ActionType() ActionType { return ActionContinuous }
func (AxisAction) ActionType() ActionType       { return ActionAxis }

// Describe renders ev as one log line, naming its action with name.
func Describe(ev Event, name string) string {
	switch ev := ev.(type) {
	case ContinuousAction:
		return fmt.Sprintf("%s held %.2fs", name, ev.ActiveDuration)
	case AxisAction:
		return fmt.Sprintf("%s %s d%s", name, formatVec(ev.Value, ev.Components), formatVec(ev.Delta, ev.Components))
	}
	return name
}

func formatVec(v Vec3, n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf("%+.2f", v.Component(i))
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
