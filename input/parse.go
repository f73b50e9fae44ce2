package input

import (
	"errors"
	"fmt"
	"strings"
)

// Grammar separators, lowest to highest precedence:
//
//	expression := disjunct (';' disjunct)*
//	disjunct   := atom ('+' atom)*
//	atom       := token ('&' modifier)*
const (
	disjunctSep = ";"
	chordSep    = "+"
	modifierSep = "&"
)

// MaxSuperpositionAxes is the number of axis components one disjunct can combine.
const MaxSuperpositionAxes = 3

// ButtonSimpleCondition requires Button to be in State.
type ButtonSimpleCondition struct {
	Button InputButton
	State  PressState
}

// ButtonsChord is satisfied when every condition holds at once.
type ButtonsChord []ButtonSimpleCondition

// ButtonsCondition is satisfied when any chord is.
type ButtonsCondition []ButtonsChord

// AxesSuperposition groups up to three axes into the x, y and z components of
// one axis action. Unused slots hold AxisUnknown.
type AxesSuperposition [MaxSuperpositionAxes]InputAxis

// AxesCondition lists alternative superpositions.
type AxesCondition []AxesSuperposition

// DeviceCondition is everything a binding expression asks of one device.
type DeviceCondition struct {
	Buttons ButtonsCondition
	Axes    AxesCondition
}

// Empty reports whether the condition can never be met.
func (c DeviceCondition) Empty() bool {
	return len(c.Buttons) == 0 && len(c.Axes) == 0
}

// Conditions holds the parse result keyed by device.
type Conditions map[InputDevice]DeviceCondition

// Devices returns the devices present in c in AllDevices order.
func (c Conditions) Devices() []InputDevice {
	devices := make([]InputDevice, 0, len(c))
	for _, d := range AllDevices {
		if _, ok := c[d]; ok {
			devices = append(devices, d)
		}
	}
	return devices
}

type atom struct {
	token  string
	button InputButton
	axis   InputAxis
	mods   PressState
}

// Parse turns a binding expression into per-device conditions.
//
// Parsing never stops at the first problem: unknown tokens and modifiers are
// skipped, chords spanning two devices are dropped, and every such diagnostic
// is returned joined in the error. The returned Conditions hold whatever
// parsed cleanly and are never nil. Parse is a pure function of expr and the
// name tables.
func Parse(expr string) (Conditions, error) {
	conds := Conditions{}
	if strings.TrimSpace(expr) == "" {
		return conds, &ParseError{Expr: expr, Err: ErrEmptyExpression}
	}

	var diags []error
	for _, raw := range strings.Split(expr, disjunctSep) {
		d := strings.TrimSpace(raw)
		if d == "" {
			diags = append(diags, &ParseError{Expr: expr, Err: ErrEmptyDisjunct})
			continue
		}
		diags = parseDisjunct(conds, d, diags)
	}

	if len(conds) == 0 {
		diags = append(diags, &ParseError{Expr: expr, Err: ErrNoConditions})
	}
	return conds, errors.Join(diags...)
}

func parseDisjunct(conds Conditions, d string, diags []error) []error {
	var buttons, axes []atom
	for _, raw := range strings.Split(d, chordSep) {
		a, errs := parseAtom(raw)
		diags = append(diags, errs...)
		switch {
		case a.button != ButtonUnknown:
			buttons = append(buttons, a)
		case a.axis != AxisUnknown:
			axes = append(axes, a)
		}
	}

	switch {
	case len(buttons) > 0 && len(axes) > 0:
		return append(diags, fmt.Errorf("%w: %q", ErrMixedAtoms, d))
	case len(axes) > 0:
		return addSuperposition(conds, d, axes, diags)
	case len(buttons) > 0:
		return addChord(conds, d, buttons, diags)
	}
	// Every atom was unknown; the chord is empty and dropped.
	return diags
}

func parseAtom(raw string) (atom, []error) {
	parts := strings.Split(raw, modifierSep)
	a := atom{token: strings.TrimSpace(parts[0])}
	var errs []error

	for _, m := range parts[1:] {
		bit, ok := LookupModifier(m)
		if !ok {
			errs = append(errs, &UnknownTokenError{Token: strings.TrimSpace(m), Modifier: true})
			continue
		}
		a.mods |= bit
	}

	if axis, ok := LookupAxis(a.token); ok {
		a.axis = axis
		if a.mods != 0 {
			errs = append(errs, fmt.Errorf("%w: %q", ErrAxisModifier, strings.TrimSpace(raw)))
			a.mods = 0
		}
		return a, errs
	}
	if b, ok := LookupButton(a.token); ok {
		a.button = b
		return a, errs
	}
	return a, append(errs, &UnknownTokenError{Token: a.token})
}

func addChord(conds Conditions, d string, buttons []atom, diags []error) []error {
	chord, modKey := buildChord(buttons)
	device := chord[0].Button.Device()
	// Only keyboard and mouse buttons carry modifier bits.
	if modKey != ButtonUnknown && device != DeviceKeyboard && device != DeviceMouse {
		return append(diags, &DeviceMismatchError{Disjunct: d, Token: chord[0].Button.String(), Want: modKey.Device(), Got: device})
	}
	for _, c := range chord[1:] {
		if got := c.Button.Device(); got != device {
			return append(diags, &DeviceMismatchError{Disjunct: d, Token: c.Button.String(), Want: device, Got: got})
		}
	}

	dc := conds[device]
	dc.Buttons = append(dc.Buttons, chord)
	conds[device] = dc
	return diags
}

// buildChord folds modifier keys (LeftCtrl, RightShift, ...) into the required
// modifier bits of the other atoms, so "LeftCtrl&Shift+S" needs S pressed
// with Ctrl and Shift. Folded keys do not count toward the chord's device, so
// "LeftCtrl+MouseLeft" is a mouse chord. A chord made only of modifier keys
// keeps them as atoms. Repeated buttons are merged. The first folded key is
// returned, or ButtonUnknown if none was folded.
func buildChord(buttons []atom) (ButtonsChord, InputButton) {
	var folded PressState
	modKey := ButtonUnknown
	rest := make([]atom, 0, len(buttons))
	for _, a := range buttons {
		if bit, ok := modifierKeys[a.button]; ok {
			folded |= bit | a.mods
			if modKey == ButtonUnknown {
				modKey = a.button
			}
			continue
		}
		rest = append(rest, a)
	}
	if len(rest) == 0 {
		rest, folded, modKey = buttons, 0, ButtonUnknown
	}

	chord := make(ButtonsChord, 0, len(rest))
	for _, a := range rest {
		state := JustPressed | a.mods | folded
		if i := chord.index(a.button); i >= 0 {
			chord[i].State |= state
			continue
		}
		chord = append(chord, ButtonSimpleCondition{Button: a.button, State: state})
	}
	return chord, modKey
}

func addSuperposition(conds Conditions, d string, axes []atom, diags []error) []error {
	if len(axes) > MaxSuperpositionAxes {
		return append(diags, fmt.Errorf("%w: %q", ErrTooManyAxes, d))
	}

	device := axes[0].axis.Device()
	var sp AxesSuperposition
	for i, a := range axes {
		if got := a.axis.Device(); got != device {
			return append(diags, &DeviceMismatchError{Disjunct: d, Token: a.token, Want: device, Got: got})
		}
		sp[i] = a.axis
	}

	c := conds[device]
	c.Axes = append(c.Axes, sp)
	conds[device] = c
	return diags
}

func (c ButtonsChord) index(b InputButton) int {
	for i, cond := range c {
		if cond.Button == b {
			return i
		}
	}
	return -1
}

func (c ButtonsChord) String() string {
	parts := make([]string, len(c))
	for i, cond := range c {
		parts[i] = fmt.Sprintf("%s[%s]", cond.Button, cond.State)
	}
	return strings.Join(parts, chordSep)
}

// Components returns the number of axes in use.
func (sp AxesSuperposition) Components() int {
	n := 0
	for _, a := range sp {
		if a != AxisUnknown {
			n++
		}
	}
	return n
}

func (sp AxesSuperposition) String() string {
	parts := make([]string, 0, MaxSuperpositionAxes)
	for _, a := range sp {
		if a != AxisUnknown {
			parts = append(parts, a.String())
		}
	}
	return strings.Join(parts, chordSep)
}
