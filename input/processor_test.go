package input

import (
	"errors"
	"testing"
)

// liveButtons is a mutable button table for driving processors by hand.
type liveButtons map[InputButton]PressState

func (l liveButtons) state(b InputButton) PressState { return l[b] }

func mustParse(t *testing.T, expr string) Conditions {
	t.Helper()
	conds, err := Parse(expr)
	if err != nil {
		t.Fatalf("Parse(%q) error = %v", expr, err)
	}
	return conds
}

func TestContinuousProcessor(t *testing.T) {
	live := liveButtons{}
	conds := mustParse(t, "KeyW")
	p, err := NewButtonProcessor(ActionContinuous, 7, DeviceKeyboard, conds[DeviceKeyboard].Buttons, live.state)
	if err != nil {
		t.Fatalf("NewButtonProcessor error = %v", err)
	}

	steps := []struct {
		state        PressState
		wantEvent    bool
		wantDuration float64
	}{
		{Released, false, 0},
		{JustPressed, true, 0},
		{Pressing, true, 1},
		{Pressing, true, 2},
		{Released, false, 0},
	}
	for tick, s := range steps {
		live[KeyW] = s.state
		p.TickAction(float64(tick))
		ev, ok := p.Action()
		if ok != s.wantEvent {
			t.Fatalf("tick %d: event = %v, want %v", tick, ok, s.wantEvent)
		}
		if !ok {
			continue
		}
		ca, isCont := ev.(ContinuousAction)
		if !isCont {
			t.Fatalf("tick %d: event %T, want ContinuousAction", tick, ev)
		}
		if ca.Code != 7 || ca.ActiveStart != 1 || ca.ActiveDuration != s.wantDuration {
			t.Errorf("tick %d: %+v, want code 7 start 1 duration %v", tick, ca, s.wantDuration)
		}
	}
	if p.IsActive() {
		t.Error("processor still active after release")
	}
}

func TestEventProcessorFiresOncePerHold(t *testing.T) {
	live := liveButtons{}
	conds := mustParse(t, "Space")
	p, err := NewButtonProcessor(ActionEvent, 3, DeviceKeyboard, conds[DeviceKeyboard].Buttons, live.state)
	if err != nil {
		t.Fatalf("NewButtonProcessor error = %v", err)
	}

	seq := []PressState{Released, JustPressed, Pressing, Pressing, Released, JustPressed, Pressing, Released}
	wantFire := []bool{false, true, false, false, false, true, false, false}
	fired := 0
	for tick, s := range seq {
		live[KeySpace] = s
		p.TickAction(float64(tick))
		ev, ok := p.Action()
		if ok != wantFire[tick] {
			t.Errorf("tick %d (%v): fired = %v, want %v", tick, s, ok, wantFire[tick])
		}
		if ok {
			fired++
			if ev != (EventAction{Code: 3}) {
				t.Errorf("tick %d: event = %+v, want EventAction{3}", tick, ev)
			}
		}
	}
	if fired != 2 {
		t.Errorf("fired %d events, want 2", fired)
	}
}

func TestButtonProcessorChordAndModifiers(t *testing.T) {
	live := liveButtons{}
	conds := mustParse(t, "LeftCtrl&Shift+S;F5")
	p, err := NewButtonProcessor(ActionEvent, 1, DeviceKeyboard, conds[DeviceKeyboard].Buttons, live.state)
	if err != nil {
		t.Fatalf("NewButtonProcessor error = %v", err)
	}

	tick := func(now float64) bool {
		p.TickAction(now)
		_, ok := p.Action()
		return ok
	}

	live[KeyS] = JustPressed.With(ModCtrl)
	if tick(0) {
		t.Error("fired without Shift")
	}
	live[KeyS] = Pressing.With(ModCtrl | ModShift)
	if !tick(1) {
		t.Error("did not fire with Ctrl+Shift held")
	}
	live[KeyS] = Released
	tick(2)
	live[KeyF5] = JustPressed.With(ModAlt)
	if !tick(3) {
		t.Error("second chord did not fire")
	}
}

func TestAxisProcessor(t *testing.T) {
	values := map[InputAxis]float64{MouseCursorX: 10, MouseCursorY: 20}
	connected := true
	query := func(d InputDevice, a InputAxis) (float64, bool) {
		if !connected || d != DeviceMouse {
			return 0, false
		}
		v, ok := values[a]
		return v, ok
	}

	conds := mustParse(t, "MouseX+MouseY;MouseWheel")
	p, err := NewAxisProcessor(9, DeviceMouse, conds[DeviceMouse].Axes, query)
	if err != nil {
		t.Fatalf("NewAxisProcessor error = %v", err)
	}

	// Wheel is unavailable, so only the cursor superposition emits.
	p.TickAction(0)
	evs := p.Actions(nil)
	if len(evs) != 1 {
		t.Fatalf("tick 0: %d events, want 1", len(evs))
	}
	a := evs[0].(AxisAction)
	if a.Code != 9 || a.Components != 2 || a.Value != (Vec3{10, 20, 0}) || a.Delta != (Vec3{}) {
		t.Errorf("tick 0: %+v", a)
	}

	values[MouseCursorX] = 15
	values[MouseWheelY] = 1
	p.TickAction(1)
	evs = p.Actions(nil)
	if len(evs) != 2 {
		t.Fatalf("tick 1: %d events, want 2", len(evs))
	}
	if a := evs[0].(AxisAction); a.Delta != (Vec3{5, 0, 0}) {
		t.Errorf("tick 1 cursor delta = %v, want {5 0 0}", a.Delta)
	}
	if a := evs[1].(AxisAction); a.Components != 1 || a.Value.X != 1 || a.Delta != (Vec3{}) {
		t.Errorf("tick 1 wheel = %+v", a)
	}

	connected = false
	p.TickAction(2)
	if evs := p.Actions(nil); len(evs) != 0 {
		t.Errorf("disconnected: %d events, want 0", len(evs))
	}

	// A reconnect restarts the delta baseline.
	connected = true
	values[MouseCursorX] = 100
	p.TickAction(3)
	evs = p.Actions(nil)
	if a := evs[0].(AxisAction); a.Delta != (Vec3{}) {
		t.Errorf("after reconnect delta = %v, want zero", a.Delta)
	}
}

func TestNewProcessorTypeMismatch(t *testing.T) {
	query := StateQuery{
		Button: liveButtons{}.state,
		Axis:   func(InputDevice, InputAxis) (float64, bool) { return 0, false },
	}

	axes := mustParse(t, "MouseX")[DeviceMouse]
	p, err := NewProcessor(ActionEvent, 1, DeviceMouse, axes, query)
	if p != nil || !errors.Is(err, ErrActionTypeMismatch) {
		t.Errorf("Event on axes = %v, %v, want nil, ErrActionTypeMismatch", p, err)
	}

	buttons := mustParse(t, "KeyW")[DeviceKeyboard]
	p, err = NewProcessor(ActionAxis, 1, DeviceKeyboard, buttons, query)
	if p != nil || !errors.Is(err, ErrActionTypeMismatch) {
		t.Errorf("Axis on buttons = %v, %v, want nil, ErrActionTypeMismatch", p, err)
	}

	p, err = NewProcessor(ActionContinuous, 1, DeviceKeyboard, buttons, query)
	if err != nil {
		t.Fatalf("Continuous on buttons error = %v", err)
	}
	if _, ok := p.(*ButtonProcessor); !ok {
		t.Errorf("processor = %T, want *ButtonProcessor", p)
	}

	_, err = NewButtonProcessor(ActionEvent, 1, DeviceMouse, buttons.Buttons, query.Button)
	var ce *ConstructionError
	if !errors.As(err, &ce) || !errors.Is(err, ErrDeviceMismatch) {
		t.Errorf("keyboard chord on mouse error = %v, want ConstructionError/ErrDeviceMismatch", err)
	}

	_, err = NewButtonProcessor(ActionEvent, 1, DeviceKeyboard, buttons.Buttons, nil)
	if !errors.Is(err, ErrNilStateQuery) {
		t.Errorf("nil state error = %v, want ErrNilStateQuery", err)
	}
}

func TestEmptyConditionNeverFires(t *testing.T) {
	p, err := NewButtonProcessor(ActionEvent, 1, DeviceKeyboard, nil, liveButtons{}.state)
	if err != nil {
		t.Fatalf("NewButtonProcessor error = %v", err)
	}
	for i := 0; i < 3; i++ {
		p.TickAction(float64(i))
		if evs := p.Actions(nil); len(evs) != 0 {
			t.Errorf("tick %d: %v, want nothing", i, evs)
		}
	}
}

func TestFrameClock(t *testing.T) {
	c := NewFrameClock(1)
	if got := c.Advance(0.5); got != 1.5 {
		t.Errorf("Advance(0.5) = %v, want 1.5", got)
	}
	if got := c.Advance(-1); got != 1.5 {
		t.Errorf("Advance(-1) = %v, want 1.5", got)
	}
	c.Set(10)
	if got := c.Now(); got != 10 {
		t.Errorf("Now() = %v, want 10", got)
	}
}
