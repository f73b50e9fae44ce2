// Command termview runs the input controller against a terminal and shows
// the bindings, held buttons and generated events.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/automoto/doomerang-input/config"
	"github.com/automoto/doomerang-input/input"
	"github.com/automoto/doomerang-input/terminal"
	"github.com/gdamore/tcell/v2"
)

type logLine struct {
	code  int
	text  string
	count int
}

type viewer struct {
	screen     tcell.Screen
	controller *input.Controller
	clock      *input.FrameClock
	adapter    *terminal.Adapter
	queue      *input.Queue
	lines      []logLine
	total      int
	tps        int
	cancel     context.CancelFunc
}

var (
	styleHeader = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleText   = tcell.StyleDefault
	styleActive = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleDim    = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

func main() {
	logPath := flag.String("log", "", "write logs to this file instead of discarding them")
	tps := flag.Int("tps", config.C.TPS, "ticks per second")
	flag.Parse()

	// The screen owns the terminal, so logs go to a file or nowhere
	log.SetOutput(io.Discard)
	input.SetLogger(nil)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
		input.SetLogger(log.New(f, "input: ", log.LstdFlags))
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.EnableMouse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	v := newViewer(screen, *tps, cancel)
	if err := v.adapter.Run(ctx, screen, v.tps, v.frame); err != nil && ctx.Err() == nil {
		log.Printf("Terminal loop stopped: %v", err)
	}
}

func newViewer(screen tcell.Screen, tps int, cancel context.CancelFunc) *viewer {
	axes := &input.AxisTable{}
	clock := input.NewFrameClock(0)
	controller := input.NewController(clock, axes)

	profile := config.TerminalProfile()
	if err := controller.SetInputBindings(profile.Bindings); err != nil {
		log.Printf("Warning: profile %q has bindings that will never fire", profile.Name)
	}

	q := input.NewQueue()
	controller.BindInputQueue(q)

	if tps <= 0 {
		tps = 60
	}
	return &viewer{
		screen:     screen,
		controller: controller,
		clock:      clock,
		adapter:    terminal.NewAdapter(controller, axes),
		queue:      q,
		tps:        tps,
		cancel:     cancel,
	}
}

func (v *viewer) frame(time.Time) {
	v.clock.Advance(1 / float64(v.tps))
	v.controller.GenerateInputEvents()

	for {
		ev, ok := v.queue.PopEvent()
		if !ok {
			break
		}
		v.total++
		if config.ActionID(ev.ActionCode()) == config.ActionQuit {
			v.cancel()
		}
		v.addLine(ev)
	}
	v.draw()
}

// addLine appends one line per event action and refreshes the line of a
// continuous or axis action in place.
func (v *viewer) addLine(ev input.Event) {
	text := input.Describe(ev, config.ActionID(ev.ActionCode()).String())
	if ev.ActionType() != input.ActionEvent {
		for i := range v.lines {
			if v.lines[i].code == ev.ActionCode() {
				v.lines[i].text = text
				v.lines[i].count++
				return
			}
		}
	}
	v.lines = append(v.lines, logLine{code: ev.ActionCode(), text: text, count: 1})
	if over := len(v.lines) - config.Input.MaxLogLines; over > 0 {
		v.lines = append(v.lines[:0], v.lines[over:]...)
	}
}

func (v *viewer) draw() {
	v.screen.Clear()
	width, _ := v.screen.Size()

	drawText(v.screen, 1, 0, styleHeader, "Profile: "+config.TerminalProfile().Name+"  (q or ctrl+c quits)")
	y := 2
	for _, b := range v.controller.Bindings() {
		drawText(v.screen, 1, y, styleText, fmt.Sprintf("%-13s %-10s %s", b.Name, b.Type, b.Expression))
		y++
	}

	y++
	drawText(v.screen, 1, y, styleHeader, "Pressed:")
	x := 10
	for b := input.InputButton(1); int(b) < input.ButtonCount; b++ {
		if s := v.controller.ButtonState(b); s.IsPressed() {
			label := fmt.Sprintf("%s[%s]", b, s)
			drawText(v.screen, x, y, styleActive, label)
			x += len(label) + 1
		}
	}
	if x == 10 {
		drawText(v.screen, x, y, styleDim, "(none)")
	}

	col := width / 2
	drawText(v.screen, col, 0, styleHeader, fmt.Sprintf("Events (%d)", v.total))
	for i, line := range v.lines {
		label := line.text
		if line.count > 1 {
			label = fmt.Sprintf("%s  x%d", label, line.count)
		}
		style := styleDim
		if i == len(v.lines)-1 {
			style = styleActive
		}
		drawText(v.screen, col, i+2, style, label)
	}

	v.screen.Show()
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
