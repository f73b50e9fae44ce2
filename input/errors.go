package input

import (
	"errors"
	"fmt"
)

// Binding diagnostics. All of them are recoverable: the offending atom,
// chord or binding is dropped and the rest of the configuration still loads.
var (
	ErrEmptyExpression    = errors.New("empty binding expression")
	ErrNoConditions       = errors.New("binding expression produced no conditions")
	ErrEmptyDisjunct      = errors.New("empty disjunct")
	ErrDeviceMismatch     = errors.New("chord spans more than one device")
	ErrUnknownToken       = errors.New("unknown button or axis")
	ErrUnknownModifier    = errors.New("unknown modifier")
	ErrMixedAtoms         = errors.New("disjunct mixes buttons and axes")
	ErrTooManyAxes        = errors.New("axis superposition has more than 3 axes")
	ErrAxisModifier       = errors.New("modifiers are ignored on axes")
	ErrActionTypeMismatch = errors.New("action type does not match condition kind")
	ErrNilStateQuery      = errors.New("nil state query")
)

// ParseError reports a binding expression that is empty or yielded nothing usable.
type ParseError struct {
	Expr string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q: %v", e.Expr, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// DeviceMismatchError reports a disjunct whose atoms resolve to different devices.
// The whole disjunct is dropped.
type DeviceMismatchError struct {
	Disjunct string
	Token    string
	Want     InputDevice
	Got      InputDevice
}

func (e *DeviceMismatchError) Error() string {
	return fmt.Sprintf("%v: %q uses %s, chord %q is on %s", ErrDeviceMismatch, e.Token, e.Got, e.Disjunct, e.Want)
}

func (e *DeviceMismatchError) Unwrap() error { return ErrDeviceMismatch }

// UnknownTokenError reports a token missing from the name tables. The atom
// (or the modifier) is ignored.
type UnknownTokenError struct {
	Token    string
	Modifier bool
}

func (e *UnknownTokenError) Error() string {
	return fmt.Sprintf("%v: %q", e.Unwrap(), e.Token)
}

func (e *UnknownTokenError) Unwrap() error {
	if e.Modifier {
		return ErrUnknownModifier
	}
	return ErrUnknownToken
}

// ConstructionError reports a processor that could not be built for a binding.
// The binding (or the part of it on Device) stays disabled.
type ConstructionError struct {
	Binding string
	Type    ActionType
	Device  InputDevice
	Err     error
}

func (e *ConstructionError) Error() string {
	if e.Binding == "" {
		return fmt.Sprintf("construct %s processor on %s: %v", e.Type, e.Device, e.Err)
	}
	return fmt.Sprintf("binding %q: construct %s processor on %s: %v", e.Binding, e.Type, e.Device, e.Err)
}

func (e *ConstructionError) Unwrap() error { return e.Err }

// splitErrors flattens an errors.Join result into its parts.
func splitErrors(err error) []error {
	if err == nil {
		return nil
	}
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		return j.Unwrap()
	}
	return []error{err}
}
