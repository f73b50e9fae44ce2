package input

// ButtonStateFunc reads the live press state of a button.
type ButtonStateFunc func(InputButton) PressState

// AxisStateFunc reads one axis of a device. ok is false while the device is
// disconnected or the axis is unavailable.
type AxisStateFunc func(device InputDevice, axis InputAxis) (value float64, ok bool)

// StateQuery bundles the live-state callbacks a processor reads from.
type StateQuery struct {
	Button ButtonStateFunc
	Axis   AxisStateFunc
}

// Processor turns one parsed condition into events, one tick at a time.
// TickAction and Actions are pure computations and never block.
type Processor interface {
	// TickAction evaluates the condition at time now (seconds).
	TickAction(now float64)
	// Actions appends the events produced by the last tick to dst.
	Actions(dst []Event) []Event
	// Device is the device the processor reads.
	Device() InputDevice
}

// NewProcessor builds the processor kind matching t: a ButtonProcessor for
// Event and Continuous, an AxisProcessor for Axis. It fails with a
// *ConstructionError when the condition only holds the other kind.
func NewProcessor(t ActionType, code int, device InputDevice, cond DeviceCondition, query StateQuery) (Processor, error) {
	switch t {
	case ActionEvent, ActionContinuous:
		if len(cond.Buttons) == 0 && len(cond.Axes) > 0 {
			return nil, &ConstructionError{Type: t, Device: device, Err: ErrActionTypeMismatch}
		}
		p, err := NewButtonProcessor(t, code, device, cond.Buttons, query.Button)
		if err != nil {
			return nil, err
		}
		return p, nil
	case ActionAxis:
		if len(cond.Axes) == 0 && len(cond.Buttons) > 0 {
			return nil, &ConstructionError{Type: t, Device: device, Err: ErrActionTypeMismatch}
		}
		p, err := NewAxisProcessor(code, device, cond.Axes, query.Axis)
		if err != nil {
			return nil, err
		}
		return p, nil
	}
	return nil, &ConstructionError{Type: t, Device: device, Err: ErrActionTypeMismatch}
}

// ButtonProcessor drives the Inactive/Active state machine of an Event or
// Continuous binding.
type ButtonProcessor struct {
	actionType ActionType
	code       int
	device     InputDevice
	condition  ButtonsCondition
	state      ButtonStateFunc

	isActive        bool
	justActivated   bool
	activeTimestamp float64
	activeDuration  float64
}

// NewButtonProcessor validates cond and returns an inactive processor. An
// empty cond is allowed and yields a processor that never activates.
func NewButtonProcessor(t ActionType, code int, device InputDevice, cond ButtonsCondition, state ButtonStateFunc) (*ButtonProcessor, error) {
	if t != ActionEvent && t != ActionContinuous {
		return nil, &ConstructionError{Type: t, Device: device, Err: ErrActionTypeMismatch}
	}
	if state == nil {
		return nil, &ConstructionError{Type: t, Device: device, Err: ErrNilStateQuery}
	}
	for _, chord := range cond {
		for _, c := range chord {
			if c.Button.Device() != device {
				return nil, &ConstructionError{Type: t, Device: device, Err: ErrDeviceMismatch}
			}
		}
	}
	return &ButtonProcessor{
		actionType: t,
		code:       code,
		device:     device,
		condition:  cond,
		state:      state,
	}, nil
}

// evaluate ORs the chords; each chord ANDs its buttons.
func (p *ButtonProcessor) evaluate() bool {
	for _, chord := range p.condition {
		if len(chord) == 0 {
			continue
		}
		matched := true
		for _, c := range chord {
			if !p.state(c.Button).Satisfies(c.State) {
				matched = false
				break
			}
		}
		if matched {
			return true
		}
	}
	return false
}

func (p *ButtonProcessor) TickAction(now float64) {
	active := p.evaluate()
	p.justActivated = false

	switch {
	case active && !p.isActive:
		p.isActive = true
		p.justActivated = true
		p.activeTimestamp = now
		p.activeDuration = 0
	case active:
		if d := now - p.activeTimestamp; d > p.activeDuration {
			p.activeDuration = d
		}
	default:
		p.isActive = false
	}
}

// Action returns the event of the last tick, if any.
func (p *ButtonProcessor) Action() (Event, bool) {
	if !p.isActive {
		return nil, false
	}
	switch p.actionType {
	case ActionEvent:
		if p.justActivated {
			return EventAction{Code: p.code}, true
		}
	case ActionContinuous:
		return ContinuousAction{
			Code:           p.code,
			ActiveStart:    p.activeTimestamp,
			ActiveDuration: p.activeDuration,
		}, true
	}
	return nil, false
}

func (p *ButtonProcessor) Actions(dst []Event) []Event {
	if ev, ok := p.Action(); ok {
		dst = append(dst, ev)
	}
	return dst
}

func (p *ButtonProcessor) Device() InputDevice { return p.device }

// IsActive reports whether the condition held on the last tick.
func (p *ButtonProcessor) IsActive() bool { return p.isActive }

// ActiveTimestamp is the time of the current (or last) activation edge.
func (p *ButtonProcessor) ActiveTimestamp() float64 { return p.activeTimestamp }

// ActiveDuration is the time since the activation edge; it never decreases
// while the processor stays active.
func (p *ButtonProcessor) ActiveDuration() float64 { return p.activeDuration }

// AxisProcessor samples every superposition of an Axis binding each tick.
// There is no activation state and no dead zone: every resolved
// superposition emits one AxisAction, in condition order.
type AxisProcessor struct {
	code      int
	device    InputDevice
	condition AxesCondition
	state     AxisStateFunc

	previous    []Vec3
	hasPrevious []bool
	pending     []AxisAction
}

// NewAxisProcessor validates cond and returns a processor. An empty cond
// yields a processor that never emits.
func NewAxisProcessor(code int, device InputDevice, cond AxesCondition, state AxisStateFunc) (*AxisProcessor, error) {
	if state == nil {
		return nil, &ConstructionError{Type: ActionAxis, Device: device, Err: ErrNilStateQuery}
	}
	for _, sp := range cond {
		for _, a := range sp {
			if a != AxisUnknown && a.Device() != device {
				return nil, &ConstructionError{Type: ActionAxis, Device: device, Err: ErrDeviceMismatch}
			}
		}
	}
	return &AxisProcessor{
		code:        code,
		device:      device,
		condition:   cond,
		state:       state,
		previous:    make([]Vec3, len(cond)),
		hasPrevious: make([]bool, len(cond)),
		pending:     make([]AxisAction, 0, len(cond)),
	}, nil
}

// sample reads every axis of sp; it fails if any component is unavailable.
func (p *AxisProcessor) sample(sp AxesSuperposition) (Vec3, int, bool) {
	var v Vec3
	n := 0
	for i, a := range sp {
		if a == AxisUnknown {
			continue
		}
		f, ok := p.state(p.device, a)
		if !ok {
			return Vec3{}, 0, false
		}
		v.setComponent(i, f)
		n++
	}
	return v, n, n > 0
}

func (p *AxisProcessor) TickAction(now float64) {
	p.pending = p.pending[:0]
	for i, sp := range p.condition {
		v, n, ok := p.sample(sp)
		if !ok {
			// Reconnecting starts a fresh delta baseline.
			p.hasPrevious[i] = false
			continue
		}

		var delta Vec3
		if p.hasPrevious[i] {
			delta = v.Sub(p.previous[i])
		}
		p.previous[i] = v
		p.hasPrevious[i] = true

		p.pending = append(p.pending, AxisAction{
			Code:       p.code,
			Components: n,
			Value:      v,
			Delta:      delta,
		})
	}
}

func (p *AxisProcessor) Actions(dst []Event) []Event {
	for _, a := range p.pending {
		dst = append(dst, a)
	}
	return dst
}

func (p *AxisProcessor) Device() InputDevice { return p.device }
