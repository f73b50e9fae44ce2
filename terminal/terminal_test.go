package terminal

import (
	"context"
	"testing"
	"time"

	cfg "github.com/automoto/doomerang-input/config"
	"github.com/automoto/doomerang-input/input"
	"github.com/gdamore/tcell/v2"
)

type fakeTime struct{ t time.Time }

func (f *fakeTime) now() time.Time { return f.t }

func (f *fakeTime) advance(d time.Duration) time.Time {
	f.t = f.t.Add(d)
	return f.t
}

func newTestAdapter() (*Adapter, *input.Controller, *input.AxisTable, *fakeTime) {
	axes := &input.AxisTable{}
	c := input.NewController(input.NewFrameClock(0), axes)
	a := NewAdapter(c, axes)
	ft := &fakeTime{t: time.Unix(1000, 0)}
	a.Now = ft.now
	return a, c, axes, ft
}

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		name   string
		key    tcell.Key
		r      rune
		mod    tcell.ModMask
		button input.InputButton
		mods   input.PressState
	}{
		{"lower letter", tcell.KeyRune, 'a', tcell.ModNone, input.KeyA, 0},
		{"upper letter", tcell.KeyRune, 'Q', tcell.ModNone, input.KeyQ, input.ModShift},
		{"digit", tcell.KeyRune, '7', tcell.ModNone, input.Key7, 0},
		{"shifted symbol", tcell.KeyRune, '!', tcell.ModNone, input.Key1, input.ModShift},
		{"space", tcell.KeyRune, ' ', tcell.ModNone, input.KeySpace, 0},
		{"alt letter", tcell.KeyRune, 'x', tcell.ModAlt, input.KeyX, input.ModAlt},
		{"ctrl letter", tcell.KeyCtrlS, 0, tcell.ModCtrl, input.KeyS, input.ModCtrl},
		{"ctrl letter without mod bit", tcell.KeyCtrlC, 0, tcell.ModNone, input.KeyC, input.ModCtrl},
		{"tab", tcell.KeyTab, 0, tcell.ModNone, input.KeyTab, 0},
		{"backtab", tcell.KeyBacktab, 0, tcell.ModNone, input.KeyTab, input.ModShift},
		{"enter", tcell.KeyEnter, 0, tcell.ModNone, input.KeyEnter, 0},
		{"escape", tcell.KeyEscape, 0, tcell.ModNone, input.KeyEscape, 0},
		{"arrow", tcell.KeyLeft, 0, tcell.ModShift, input.KeyLeft, input.ModShift},
		{"function", tcell.KeyF1, 0, tcell.ModNone, input.KeyF1, 0},
		{"unmapped rune", tcell.KeyRune, 'é', tcell.ModNone, input.ButtonUnknown, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, mods := translateKey(tcell.NewEventKey(tt.key, tt.r, tt.mod))
			if b != tt.button {
				t.Errorf("button = %v, want %v", b, tt.button)
			}
			if mods != tt.mods {
				t.Errorf("mods = %v, want %v", mods, tt.mods)
			}
		})
	}
}

func TestKeyPressRepeatRelease(t *testing.T) {
	a, c, _, ft := newTestAdapter()

	a.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone))
	if s := c.ButtonState(input.KeyA); s != input.JustPressed {
		t.Fatalf("after press: %v", s)
	}

	a.EndFrame(ft.advance(16 * time.Millisecond))
	if s := c.ButtonState(input.KeyA); s != input.Pressing {
		t.Fatalf("after frame: %v", s)
	}

	// Before the first repeat arrives the key stays held.
	a.EndFrame(ft.advance(400 * time.Millisecond))
	if s := c.ButtonState(input.KeyA); s != input.Pressing {
		t.Fatalf("inside repeat delay: %v", s)
	}

	a.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone))
	a.EndFrame(ft.advance(30 * time.Millisecond))
	if s := c.ButtonState(input.KeyA); s != input.Pressing {
		t.Fatalf("while repeating: %v", s)
	}

	a.EndFrame(ft.advance(a.ReleaseAfter + time.Millisecond))
	if s := c.ButtonState(input.KeyA); s != input.Released {
		t.Fatalf("after repeats stop: %v", s)
	}
	if a.Held() != 0 {
		t.Errorf("Held() = %d", a.Held())
	}
}

func TestTapReleasesAfterRepeatDelay(t *testing.T) {
	a, c, _, ft := newTestAdapter()

	a.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'Z', tcell.ModNone))
	if s := c.ButtonState(input.KeyZ); s != input.JustPressed|input.ModShift {
		t.Fatalf("after press: %v", s)
	}
	a.EndFrame(ft.advance(a.RepeatDelay + time.Millisecond))
	if s := c.ButtonState(input.KeyZ); s != input.Released {
		t.Fatalf("after delay: %v", s)
	}
}

func TestMouseButtonsAndAxes(t *testing.T) {
	a, c, axes, ft := newTestAdapter()

	a.HandleEvent(tcell.NewEventMouse(12, 5, tcell.ButtonPrimary, tcell.ModNone))
	if s := c.ButtonState(input.MouseLeft); s != input.JustPressed {
		t.Fatalf("left after press: %v", s)
	}
	if x, ok := axes.Value(input.MouseCursorX); !ok || x != 12 {
		t.Errorf("cursor x = %v, %v", x, ok)
	}
	if y, ok := axes.Value(input.MouseCursorY); !ok || y != 5 {
		t.Errorf("cursor y = %v, %v", y, ok)
	}

	// Mouse buttons never time out.
	a.EndFrame(ft.advance(time.Second))
	if s := c.ButtonState(input.MouseLeft); s != input.Pressing {
		t.Fatalf("left after frame: %v", s)
	}

	a.HandleEvent(tcell.NewEventMouse(13, 5, tcell.ButtonPrimary|tcell.ButtonSecondary, tcell.ModNone))
	if s := c.ButtonState(input.MouseRight); s != input.JustPressed {
		t.Errorf("right: %v", s)
	}

	a.HandleEvent(tcell.NewEventMouse(13, 5, tcell.ButtonNone, tcell.ModNone))
	if s := c.ButtonState(input.MouseLeft); s != input.Released {
		t.Errorf("left after release: %v", s)
	}
	if s := c.ButtonState(input.MouseRight); s != input.Released {
		t.Errorf("right after release: %v", s)
	}
}

func TestWheelResetsEachFrame(t *testing.T) {
	a, _, axes, ft := newTestAdapter()

	if v, ok := axes.Value(input.MouseWheelY); !ok || v != 0 {
		t.Fatalf("wheel before scroll = %v, %v", v, ok)
	}

	a.HandleEvent(tcell.NewEventMouse(0, 0, tcell.WheelUp, tcell.ModNone))
	a.HandleEvent(tcell.NewEventMouse(0, 0, tcell.WheelUp, tcell.ModNone))
	a.HandleEvent(tcell.NewEventMouse(0, 0, tcell.WheelLeft, tcell.ModNone))
	if v, _ := axes.Value(input.MouseWheelY); v != 2 {
		t.Errorf("wheel y = %v, want 2", v)
	}
	if v, _ := axes.Value(input.MouseWheelX); v != -1 {
		t.Errorf("wheel x = %v, want -1", v)
	}

	a.EndFrame(ft.advance(16 * time.Millisecond))
	if v, ok := axes.Value(input.MouseWheelY); !ok || v != 0 {
		t.Errorf("wheel y after frame = %v, %v", v, ok)
	}
}

func TestTerminalProfileEvents(t *testing.T) {
	a, c, _, ft := newTestAdapter()
	if err := c.SetInputBindings(cfg.TerminalProfile().Bindings); err != nil {
		t.Fatalf("terminal profile: %v", err)
	}
	q := input.NewQueue()
	c.BindInputQueue(q)

	a.HandleEvent(tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl))
	c.GenerateInputEvents()
	a.EndFrame(ft.advance(16 * time.Millisecond))

	var saved bool
	for _, ev := range q.Drain(nil) {
		if ev.ActionCode() == int(cfg.ActionQuickSave) {
			saved = true
		}
	}
	if !saved {
		t.Error("ctrl+s did not fire quick save")
	}

	// Still held on the next frame: an event action does not repeat.
	c.GenerateInputEvents()
	for _, ev := range q.Drain(nil) {
		if ev.ActionCode() == int(cfg.ActionQuickSave) {
			t.Error("quick save fired twice for one press")
		}
	}
}

func TestRunStopsOnQuit(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	defer screen.Fini()

	a, c, _, _ := newTestAdapter()
	a.Now = time.Now
	if err := c.SetInputBindings(cfg.TerminalProfile().Bindings); err != nil {
		t.Fatalf("terminal profile: %v", err)
	}
	q := input.NewQueue()
	c.BindInputQueue(q)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	var quit bool
	err := a.Run(ctx, screen, 120, func(time.Time) {
		c.GenerateInputEvents()
		for _, ev := range q.Drain(nil) {
			if ev.ActionCode() == int(cfg.ActionQuit) {
				quit = true
				cancel()
			}
		}
	})
	if !quit {
		t.Fatalf("quit never fired: %v", err)
	}
}
