package input

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
)

// InputBinding maps a named expression to an action code.
type InputBinding struct {
	Name       string
	Code       int
	Expression string
	Type       ActionType
}

// AxisSource answers axis queries from the platform layer.
type AxisSource interface {
	CheckAxisState(device InputDevice, axis InputAxis) (float64, bool)
}

// AxisSourceFunc adapts a function to AxisSource.
type AxisSourceFunc func(device InputDevice, axis InputAxis) (float64, bool)

func (f AxisSourceFunc) CheckAxisState(device InputDevice, axis InputAxis) (float64, bool) {
	return f(device, axis)
}

// ButtonSink receives raw button transitions. *Controller implements it.
type ButtonSink interface {
	OnButtonAction(button InputButton, state PressState)
}

// QueueHandle identifies a queue bound to a controller.
type QueueHandle uint64

type boundQueue struct {
	handle QueueHandle
	queue  *Queue
}

// Controller owns the live button table, the processors built from the
// installed bindings, and the queues events fan out to.
//
// OnButtonAction, ButtonState and the queue registry are safe for concurrent
// use. SetInputBindings and GenerateInputEvents belong to the logic thread and
// must not run concurrently with each other.
type Controller struct {
	clock Clock
	axes  AxisSource

	states [ButtonCount]atomic.Uint32

	bindings   []InputBinding
	processors []Processor
	events     []Event

	mu         sync.Mutex
	queues     []boundQueue
	nextHandle QueueHandle
}

// NewController creates a controller with no bindings. A nil axes source
// reports every axis as unavailable.
func NewController(clock Clock, axes AxisSource) *Controller {
	if clock == nil {
		clock = NewSystemClock()
	}
	if axes == nil {
		axes = AxisSourceFunc(func(InputDevice, InputAxis) (float64, bool) { return 0, false })
	}
	return &Controller{clock: clock, axes: axes}
}

// OnButtonAction records the live state of button. Unknown buttons are ignored.
func (c *Controller) OnButtonAction(button InputButton, state PressState) {
	if !button.Valid() {
		return
	}
	c.states[button].Store(uint32(state))
}

// ButtonState returns the last state recorded for button.
func (c *Controller) ButtonState(button InputButton) PressState {
	if !button.Valid() {
		return Released
	}
	return PressState(c.states[button].Load())
}

// ResetButtons marks every button released, e.g. after the window loses focus.
func (c *Controller) ResetButtons() {
	for i := range c.states {
		c.states[i].Store(uint32(Released))
	}
}

func (c *Controller) axisState(device InputDevice, axis InputAxis) (float64, bool) {
	return c.axes.CheckAxisState(device, axis)
}

// SetInputBindings replaces every installed processor with ones built from
// bindings. Problems in one binding never stop the others from installing:
// each diagnostic is logged with the binding it came from, and all of them
// are returned joined.
func (c *Controller) SetInputBindings(bindings []InputBinding) error {
	query := StateQuery{Button: c.ButtonState, Axis: c.axisState}

	var (
		processors []Processor
		diags      []error
	)
	for _, b := range bindings {
		conds, err := Parse(b.Expression)
		for _, d := range splitErrors(err) {
			logf("Warning: binding %q (%q): %v", b.Name, b.Expression, d)
			diags = append(diags, fmt.Errorf("binding %q: %w", b.Name, d))
		}

		for _, device := range conds.Devices() {
			cond := conds[device]
			p, err := NewProcessor(b.Type, b.Code, device, cond, query)
			if err != nil {
				var ce *ConstructionError
				if errors.As(err, &ce) {
					ce.Binding = b.Name
				}
				logf("Warning: %v", err)
				diags = append(diags, err)
				continue
			}
			if ignored := ignoredKind(b.Type, cond); ignored != "" {
				logf("Warning: binding %q (%q): %s binding ignores %s on %s", b.Name, b.Expression, b.Type, ignored, device)
			}
			processors = append(processors, p)
		}
	}

	c.bindings = append([]InputBinding(nil), bindings...)
	c.processors = processors
	return errors.Join(diags...)
}

func ignoredKind(t ActionType, cond DeviceCondition) string {
	switch {
	case t == ActionAxis && len(cond.Buttons) > 0:
		return "buttons"
	case t != ActionAxis && len(cond.Axes) > 0:
		return "axes"
	}
	return ""
}

// Bindings returns a copy of the installed bindings.
func (c *Controller) Bindings() []InputBinding {
	return append([]InputBinding(nil), c.bindings...)
}

// ProcessorCount returns the number of live processors. A binding spanning
// several devices owns one processor per device.
func (c *Controller) ProcessorCount() int {
	return len(c.processors)
}

// GenerateInputEvents ticks every processor in binding order and pushes each
// event to every bound queue. Call it once per logic frame after the clock
// advances.
func (c *Controller) GenerateInputEvents() {
	now := c.clock.Now()
	c.events = c.events[:0]
	for _, p := range c.processors {
		p.TickAction(now)
		c.events = p.Actions(c.events)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	live := c.queues[:0]
	for _, bq := range c.queues {
		if bq.queue.Closed() {
			continue
		}
		for _, ev := range c.events {
			bq.queue.PushEvent(ev)
		}
		live = append(live, bq)
	}
	for i := len(live); i < len(c.queues); i++ {
		c.queues[i] = boundQueue{}
	}
	c.queues = live
}

// BindInputQueue registers q to receive every event from now on. Binding the
// same queue twice delivers each event twice. A nil queue is not bound and
// gets the zero handle.
func (c *Controller) BindInputQueue(q *Queue) QueueHandle {
	if q == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.nextHandle++
	c.queues = append(c.queues, boundQueue{handle: c.nextHandle, queue: q})
	return c.nextHandle
}

// UnbindInputQueue stops delivery to the queue bound under h. It reports
// whether h was bound.
func (c *Controller) UnbindInputQueue(h QueueHandle) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, bq := range c.queues {
		if bq.handle == h {
			last := len(c.queues) - 1
			copy(c.queues[i:], c.queues[i+1:])
			c.queues[last] = boundQueue{}
			c.queues = c.queues[:last]
			return true
		}
	}
	return false
}

// QueueCount returns the number of bound queues.
func (c *Controller) QueueCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.queues)
}
