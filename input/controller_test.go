package input

import (
	"errors"
	"sync"
	"testing"
)

const (
	codeJump = iota + 1
	codeRun
	codeLook
	codeSave
)

func newTestController() (*Controller, *FrameClock, map[InputAxis]float64) {
	clock := NewFrameClock(0)
	axes := map[InputAxis]float64{}
	src := AxisSourceFunc(func(d InputDevice, a InputAxis) (float64, bool) {
		v, ok := axes[a]
		return v, ok && a.Device() == d
	})
	return NewController(clock, src), clock, axes
}

func TestControllerFanOut(t *testing.T) {
	c, clock, _ := newTestController()
	if err := c.SetInputBindings([]InputBinding{
		{Name: "jump", Code: codeJump, Expression: "Space;GamepadA", Type: ActionEvent},
		{Name: "run", Code: codeRun, Expression: "LeftShift", Type: ActionContinuous},
	}); err != nil {
		t.Fatalf("SetInputBindings error = %v", err)
	}
	if got := c.ProcessorCount(); got != 3 {
		t.Errorf("ProcessorCount() = %d, want 3", got)
	}

	const consumers = 3
	queues := make([]*Queue, consumers)
	for i := range queues {
		queues[i] = NewQueue()
		c.BindInputQueue(queues[i])
	}

	const frames = 5
	for f := 0; f < frames; f++ {
		state := Pressing
		if f == 0 {
			state = JustPressed
		}
		c.OnButtonAction(KeySpace, state)
		c.OnButtonAction(KeyLeftShift, state)
		clock.Advance(1.0 / 60)
		c.GenerateInputEvents()
	}

	// One jump plus one run per frame, jump first by binding order.
	for i, q := range queues {
		evs := q.Drain(nil)
		if len(evs) != 1+frames {
			t.Fatalf("queue %d: %d events, want %d", i, len(evs), 1+frames)
		}
		if evs[0] != (EventAction{Code: codeJump}) {
			t.Errorf("queue %d: first = %+v, want jump", i, evs[0])
		}
		for _, ev := range evs[1:] {
			if ev.ActionCode() != codeRun || ev.ActionType() != ActionContinuous {
				t.Errorf("queue %d: %+v, want continuous run", i, ev)
			}
		}
	}
}

func TestControllerMalformedBindingDoesNotBlockOthers(t *testing.T) {
	c, clock, axes := newTestController()
	err := c.SetInputBindings([]InputBinding{
		{Name: "broken", Code: 99, Expression: "KeyA+GamepadA", Type: ActionEvent},
		{Name: "empty", Code: 98, Expression: "", Type: ActionEvent},
		{Name: "wrong-kind", Code: 97, Expression: "MouseX", Type: ActionEvent},
		{Name: "save", Code: codeSave, Expression: "LeftCtrl+S", Type: ActionEvent},
		{Name: "look", Code: codeLook, Expression: "MouseX+MouseY", Type: ActionAxis},
	})
	for _, want := range []error{ErrDeviceMismatch, ErrEmptyExpression, ErrActionTypeMismatch} {
		if !errors.Is(err, want) {
			t.Errorf("SetInputBindings error = %v, want %v", err, want)
		}
	}
	var ce *ConstructionError
	if !errors.As(err, &ce) || ce.Binding != "wrong-kind" {
		t.Errorf("ConstructionError = %v, want binding wrong-kind", ce)
	}
	if got := c.ProcessorCount(); got != 2 {
		t.Errorf("ProcessorCount() = %d, want 2", got)
	}
	if got := len(c.Bindings()); got != 5 {
		t.Errorf("Bindings() has %d entries, want 5", got)
	}

	q := NewQueue()
	c.BindInputQueue(q)
	axes[MouseCursorX] = 3
	axes[MouseCursorY] = 4
	c.OnButtonAction(KeyS, JustPressed.With(ModCtrl))
	c.OnButtonAction(KeyA, JustPressed)
	c.OnButtonAction(GamepadButton(0, PadA), JustPressed)
	clock.Advance(1)
	c.GenerateInputEvents()

	evs := q.Drain(nil)
	if len(evs) != 2 {
		t.Fatalf("got %d events, want 2: %v", len(evs), evs)
	}
	if evs[0].ActionCode() != codeSave {
		t.Errorf("first event = %+v, want save", evs[0])
	}
	if a, ok := evs[1].(AxisAction); !ok || a.Value != (Vec3{3, 4, 0}) {
		t.Errorf("second event = %+v, want look at (3,4)", evs[1])
	}
}

func TestControllerRebindReplacesWholesale(t *testing.T) {
	c, clock, _ := newTestController()
	q := NewQueue()
	c.BindInputQueue(q)

	c.SetInputBindings([]InputBinding{{Name: "jump", Code: codeJump, Expression: "Space", Type: ActionEvent}})
	c.SetInputBindings([]InputBinding{{Name: "jump", Code: codeJump, Expression: "KeyW", Type: ActionEvent}})

	c.OnButtonAction(KeySpace, JustPressed)
	clock.Advance(1)
	c.GenerateInputEvents()
	if n := q.Len(); n != 0 {
		t.Errorf("old binding still fires: %d events", n)
	}

	c.OnButtonAction(KeyW, JustPressed)
	clock.Advance(1)
	c.GenerateInputEvents()
	if n := q.Len(); n != 1 {
		t.Errorf("new binding: %d events, want 1", n)
	}
}

func TestControllerQueueRegistry(t *testing.T) {
	c, clock, _ := newTestController()
	c.SetInputBindings([]InputBinding{{Name: "run", Code: codeRun, Expression: "KeyD", Type: ActionContinuous}})
	c.OnButtonAction(KeyD, Pressing)

	a, b, closed := NewQueue(), NewQueue(), NewQueue()
	ha := c.BindInputQueue(a)
	c.BindInputQueue(b)
	c.BindInputQueue(closed)
	if h := c.BindInputQueue(nil); h != 0 {
		t.Errorf("BindInputQueue(nil) = %d, want 0", h)
	}
	closed.Close()

	clock.Advance(1)
	c.GenerateInputEvents()
	if got := c.QueueCount(); got != 2 {
		t.Errorf("QueueCount() = %d after closing one, want 2", got)
	}

	if !c.UnbindInputQueue(ha) {
		t.Error("UnbindInputQueue(ha) = false")
	}
	if c.UnbindInputQueue(ha) {
		t.Error("second UnbindInputQueue(ha) = true")
	}
	clock.Advance(1)
	c.GenerateInputEvents()

	if a.Len() != 1 || b.Len() != 2 || closed.Len() != 0 {
		t.Errorf("lens = %d/%d/%d, want 1/2/0", a.Len(), b.Len(), closed.Len())
	}
}

func TestUnbindReleasesQueue(t *testing.T) {
	c, _, _ := newTestController()
	a, b := NewQueue(), NewQueue()
	c.BindInputQueue(a)
	hb := c.BindInputQueue(b)

	if !c.UnbindInputQueue(hb) {
		t.Fatal("UnbindInputQueue(hb) = false")
	}
	tail := c.queues[:cap(c.queues)]
	for i := len(c.queues); i < len(tail); i++ {
		if tail[i].queue != nil {
			t.Errorf("slot %d still references a queue after unbind", i)
		}
	}
	if c.QueueCount() != 1 || c.queues[0].queue != a {
		t.Errorf("remaining queues = %v, want only a", c.queues)
	}
}

func TestControllerConcurrentInput(t *testing.T) {
	c, clock, _ := newTestController()
	c.SetInputBindings([]InputBinding{
		{Name: "run", Code: codeRun, Expression: "KeyD;GamepadDPadRight", Type: ActionContinuous},
	})
	q := NewQueue()
	c.BindInputQueue(q)

	var wg sync.WaitGroup
	stop := make(chan struct{})
	for _, b := range []InputButton{KeyD, GamepadButton(0, PadDPadRight)} {
		wg.Add(1)
		go func(b InputButton) {
			defer wg.Done()
			for i := 0; ; i++ {
				select {
				case <-stop:
					return
				default:
				}
				if i%2 == 0 {
					c.OnButtonAction(b, Pressing)
				} else {
					c.OnButtonAction(b, Released)
				}
			}
		}(b)
	}

	var consumed sync.WaitGroup
	consumed.Add(1)
	go func() {
		defer consumed.Done()
		var l Listener
		l.ListenInputQueue(q)
		for {
			if _, ok := l.ConsumeInputEvent(); ok {
				continue
			}
			select {
			case <-stop:
				return
			default:
			}
		}
	}()

	for f := 0; f < 500; f++ {
		clock.Advance(1.0 / 60)
		c.GenerateInputEvents()
	}
	close(stop)
	wg.Wait()
	consumed.Wait()
}

func TestControllerIgnoresInvalidButtons(t *testing.T) {
	c, _, _ := newTestController()
	c.OnButtonAction(ButtonUnknown, Pressing)
	c.OnButtonAction(InputButton(ButtonCount+10), Pressing)
	if got := c.ButtonState(InputButton(ButtonCount + 10)); got != Released {
		t.Errorf("ButtonState(out of range) = %v", got)
	}
	c.OnButtonAction(KeyQ, Pressing)
	c.ResetButtons()
	if got := c.ButtonState(KeyQ); got != Released {
		t.Errorf("ButtonState after reset = %v, want Released", got)
	}
}

func TestAxisTable(t *testing.T) {
	var tbl AxisTable
	if _, ok := tbl.CheckAxisState(DeviceMouse, MouseCursorX); ok {
		t.Error("unset axis available")
	}
	tbl.Set(MouseCursorX, 12)
	if v, ok := tbl.CheckAxisState(DeviceMouse, MouseCursorX); !ok || v != 12 {
		t.Errorf("CheckAxisState = %v, %v, want 12, true", v, ok)
	}
	if _, ok := tbl.CheckAxisState(DeviceGamepad1, MouseCursorX); ok {
		t.Error("mouse axis resolved on gamepad device")
	}

	tbl.Add(MouseWheelY, 1)
	tbl.Add(MouseWheelY, 2)
	if v, _ := tbl.Value(MouseWheelY); v != 3 {
		t.Errorf("wheel = %v, want 3", v)
	}

	stick := GamepadAxis(1, PadLeftStickX)
	tbl.Set(stick, 0.5)
	tbl.ClearDevice(DeviceGamepad2)
	if _, ok := tbl.Value(stick); ok {
		t.Error("stick still available after ClearDevice")
	}
	if _, ok := tbl.Value(MouseCursorX); !ok {
		t.Error("ClearDevice cleared another device")
	}
}
