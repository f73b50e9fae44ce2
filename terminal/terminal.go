// Package terminal feeds tcell keyboard and mouse events to an input
// controller. Terminals report key presses and repeats but never releases,
// so held keys are released after a quiet period.
package terminal

import (
	"context"
	"time"

	"github.com/automoto/doomerang-input/input"
	"github.com/gdamore/tcell/v2"
)

const (
	// DefaultRepeatDelay covers the gap between a key's first press and the
	// first auto-repeat on common terminals.
	DefaultRepeatDelay = 550 * time.Millisecond
	// DefaultReleaseAfter is the quiet period after which a repeating key
	// counts as released.
	DefaultReleaseAfter = 120 * time.Millisecond
)

type heldButton struct {
	state     input.PressState
	lastSeen  time.Time
	repeating bool
	expires   bool // keys expire, mouse buttons get explicit releases
}

// Adapter translates tcell events into button and axis updates. HandleEvent
// and EndFrame must be called from the same goroutine.
type Adapter struct {
	Sink         input.ButtonSink
	Axes         *input.AxisTable
	RepeatDelay  time.Duration
	ReleaseAfter time.Duration
	Now          func() time.Time

	held        map[input.InputButton]*heldButton
	mouseButton tcell.ButtonMask
}

// NewAdapter creates an adapter writing to sink and axes. The wheel axes
// start at zero so wheel bindings are available before the first scroll.
func NewAdapter(sink input.ButtonSink, axes *input.AxisTable) *Adapter {
	a := &Adapter{
		Sink:         sink,
		Axes:         axes,
		RepeatDelay:  DefaultRepeatDelay,
		ReleaseAfter: DefaultReleaseAfter,
		Now:          time.Now,
		held:         map[input.InputButton]*heldButton{},
	}
	if axes != nil {
		axes.Set(input.MouseWheelX, 0)
		axes.Set(input.MouseWheelY, 0)
	}
	return a
}

// HandleEvent applies one tcell event. It reports whether the event was an
// input event.
func (a *Adapter) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		a.handleKey(ev)
		return true
	case *tcell.EventMouse:
		a.handleMouse(ev)
		return true
	}
	return false
}

func (a *Adapter) handleKey(ev *tcell.EventKey) {
	b, mods := translateKey(ev)
	if b == input.ButtonUnknown {
		return
	}
	now := a.Now()

	h, ok := a.held[b]
	if !ok {
		h = &heldButton{state: input.JustPressed.With(mods), expires: true}
		a.held[b] = h
	} else {
		h.state = input.Pressing.With(mods)
		h.repeating = true
	}
	h.lastSeen = now
	a.Sink.OnButtonAction(b, h.state)
}

var mouseButtons = []struct {
	mask   tcell.ButtonMask
	button input.InputButton
}{
	{tcell.ButtonPrimary, input.MouseLeft},
	{tcell.ButtonSecondary, input.MouseRight},
	{tcell.ButtonMiddle, input.MouseMiddle},
}

func (a *Adapter) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	if a.Axes != nil {
		a.Axes.Set(input.MouseCursorX, float64(x))
		a.Axes.Set(input.MouseCursorY, float64(y))
	}

	mods := translateMods(ev.Modifiers())
	pressed := ev.Buttons()
	now := a.Now()
	for _, mb := range mouseButtons {
		was := a.mouseButton&mb.mask != 0
		is := pressed&mb.mask != 0
		switch {
		case is && !was:
			h := &heldButton{state: input.JustPressed.With(mods), lastSeen: now}
			a.held[mb.button] = h
			a.Sink.OnButtonAction(mb.button, h.state)
		case !is && was:
			delete(a.held, mb.button)
			a.Sink.OnButtonAction(mb.button, input.Released)
		}
	}
	a.mouseButton = pressed & (tcell.ButtonPrimary | tcell.ButtonSecondary | tcell.ButtonMiddle)

	if a.Axes == nil {
		return
	}
	if pressed&tcell.WheelUp != 0 {
		a.Axes.Add(input.MouseWheelY, 1)
	}
	if pressed&tcell.WheelDown != 0 {
		a.Axes.Add(input.MouseWheelY, -1)
	}
	if pressed&tcell.WheelLeft != 0 {
		a.Axes.Add(input.MouseWheelX, -1)
	}
	if pressed&tcell.WheelRight != 0 {
		a.Axes.Add(input.MouseWheelX, 1)
	}
}

// EndFrame runs after the controller has generated this frame's events.
// JustPressed buttons become Pressing, keys quiet for too long are released
// and the wheel offsets reset.
func (a *Adapter) EndFrame(now time.Time) {
	for b, h := range a.held {
		if h.expires {
			window := a.RepeatDelay
			if h.repeating {
				window = a.ReleaseAfter
			}
			if now.Sub(h.lastSeen) > window {
				delete(a.held, b)
				a.Sink.OnButtonAction(b, input.Released)
				continue
			}
		}
		if h.state.Base() == input.JustPressed {
			h.state = input.Pressing.With(h.state.Modifiers())
			a.Sink.OnButtonAction(b, h.state)
		}
	}
	if a.Axes != nil {
		a.Axes.Set(input.MouseWheelX, 0)
		a.Axes.Set(input.MouseWheelY, 0)
	}
}

// Held returns the number of buttons the adapter considers down.
func (a *Adapter) Held() int {
	return len(a.held)
}

// Run pumps events from screen into the adapter and calls frame at tps ticks
// per second until ctx is done or the screen is finalized. frame should
// generate input events; EndFrame runs right after it. The event pump stays
// blocked in screen.PollEvent after ctx is done, so the caller must call
// screen.Fini to release it.
func (a *Adapter) Run(ctx context.Context, screen tcell.Screen, tps int, frame func(now time.Time)) error {
	if tps <= 0 {
		tps = 60
	}
	ticker := time.NewTicker(time.Second / time.Duration(tps))
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		defer close(events)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if _, resized := ev.(*tcell.EventResize); resized {
				screen.Sync()
				continue
			}
			a.HandleEvent(ev)
		case now := <-ticker.C:
			frame(now)
			a.EndFrame(now)
		}
	}
}
