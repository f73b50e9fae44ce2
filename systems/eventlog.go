package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/doomerang-input/components"
	cfg "github.com/automoto/doomerang-input/config"
	"github.com/automoto/doomerang-input/fonts"
	"github.com/automoto/doomerang-input/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

func describeEvent(ev input.Event) string {
	return input.Describe(ev, cfg.ActionID(ev.ActionCode()).String())
}

// UpdateEventLog drains the log's queue into lines and fades old lines out.
// Event actions always add a line; continuous and axis actions refresh the
// line of their action so a held key does not flood the log.
func UpdateEventLog(e *ecs.ECS) {
	entry, ok := components.EventLog.First(e.World)
	if !ok {
		return
	}
	logData := components.EventLog.Get(entry)
	listener := components.Listener.Get(entry)

	for {
		ev, ok := listener.Listener.ConsumeInputEvent()
		if !ok {
			break
		}
		logData.Total++
		addLogLine(logData, ev)
	}

	dt := float32(1 / float64(cfg.C.TPS))
	kept := logData.Lines[:0]
	for _, line := range logData.Lines {
		alpha, done := line.Fade.Update(dt)
		if done {
			continue
		}
		line.Alpha = alpha
		kept = append(kept, line)
	}
	logData.Lines = kept
}

func addLogLine(logData *components.EventLogData, ev input.Event) {
	fade := gween.New(1, 0, float32(cfg.Input.EventFadeSeconds), ease.InQuad)
	label := describeEvent(ev)

	if ev.ActionType() != input.ActionEvent {
		for i := range logData.Lines {
			line := &logData.Lines[i]
			if line.Code == ev.ActionCode() {
				line.Text = label
				line.Count++
				line.Alpha = 1
				line.Fade = fade
				return
			}
		}
	}

	logData.Lines = append(logData.Lines, components.EventLogLine{
		Code:  ev.ActionCode(),
		Text:  label,
		Count: 1,
		Alpha: 1,
		Fade:  fade,
	})
	if over := len(logData.Lines) - cfg.Input.MaxLogLines; over > 0 {
		logData.Lines = append(logData.Lines[:0], logData.Lines[over:]...)
	}
}

// DrawEventLog renders the log in the right-hand column, newest at the bottom.
func DrawEventLog(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.EventLog.First(e.World)
	if !ok {
		return
	}
	logData := components.EventLog.Get(entry)

	face := fonts.Mono.Get()
	x := int(float64(screen.Bounds().Dx()) - cfg.UI.ColumnWidth)
	y := int(cfg.UI.Margin + cfg.UI.LineHeight)

	header := fmt.Sprintf("Events (%d)", logData.Total)
	text.Draw(screen, header, fonts.Regular.Get(), x, y, cfg.UI.HeaderColor)

	for i, line := range logData.Lines {
		label := line.Text
		if line.Count > 1 {
			label = fmt.Sprintf("%s  x%d", label, line.Count)
		}
		ly := y + int(float64(i+1)*cfg.UI.LineHeight)
		text.Draw(screen, label, face, x, ly, fadeColor(cfg.UI.ActiveColor, line.Alpha))
	}
}

// fadeColor scales a color by alpha, keeping it premultiplied.
func fadeColor(c color.RGBA, alpha float32) color.RGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return color.RGBA{
		R: uint8(float32(c.R) * alpha),
		G: uint8(float32(c.G) * alpha),
		B: uint8(float32(c.B) * alpha),
		A: uint8(float32(c.A) * alpha),
	}
}

// lineAlpha returns how recently code fired, from 1 (this frame) to 0.
func lineAlpha(logData *components.EventLogData, code int) float32 {
	var alpha float32
	for _, line := range logData.Lines {
		if line.Code == code && line.Alpha > alpha {
			alpha = line.Alpha
		}
	}
	return alpha
}
