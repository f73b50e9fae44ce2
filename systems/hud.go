package systems

import (
	"fmt"
	"math"
	"strings"

	"github.com/automoto/doomerang-input/components"
	cfg "github.com/automoto/doomerang-input/config"
	"github.com/automoto/doomerang-input/fonts"
	"github.com/automoto/doomerang-input/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// Reusable buffer for the pressed-button line
var pressedNames []string

// DrawHUD renders the active profile's bindings in the left column and the
// live device state (pressed buttons, axes, gamepad slots) below them.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	in := GetInput(e)
	if in == nil || in.Controller == nil {
		return
	}

	var logData *components.EventLogData
	if entry, ok := components.EventLog.First(e.World); ok {
		logData = components.EventLog.Get(entry)
	}

	face := fonts.Regular.Get()
	small := fonts.Small.Get()
	x := int(cfg.UI.Margin)
	y := int(cfg.UI.Margin + cfg.UI.LineHeight)
	line := int(cfg.UI.LineHeight)

	profile := cfg.Input.Profile(in.Profile)
	header := fmt.Sprintf("Profile: %s  [%d/%d]  input: %s", profile.Name, in.Profile+1, len(cfg.Input.Profiles), in.LastInputMethod)
	text.Draw(screen, header, face, x, y, cfg.UI.HeaderColor)
	y += line

	// Bindings light up while their events are still fading in the log.
	for _, b := range in.Controller.Bindings() {
		c := cfg.UI.TextColor
		if logData != nil {
			if alpha := lineAlpha(logData, b.Code); alpha > 0 {
				c = fadeColor(cfg.UI.ActiveColor, 0.4+0.6*alpha)
			}
		}
		label := fmt.Sprintf("%-13s %-10s %s", b.Name, b.Type, b.Expression)
		text.Draw(screen, label, small, x, y, c)
		y += line - 2
	}

	if !cfg.Debug.ShowHUD {
		return
	}

	y += line
	text.Draw(screen, "Pressed: "+pressedButtons(in.Controller), small, x, y, cfg.UI.TextColor)
	y += line

	y = drawMouseAxes(screen, in.Axes, x, y)
	drawGamepads(screen, in, x, y)
}

func pressedButtons(c *input.Controller) string {
	pressedNames = pressedNames[:0]
	for b := input.InputButton(1); int(b) < input.ButtonCount; b++ {
		if s := c.ButtonState(b); s.IsPressed() {
			pressedNames = append(pressedNames, fmt.Sprintf("%s[%s]", b, s))
		}
	}
	if len(pressedNames) == 0 {
		return "(none)"
	}
	return strings.Join(pressedNames, " ")
}

func drawMouseAxes(screen *ebiten.Image, axes *input.AxisTable, x, y int) int {
	small := fonts.Small.Get()
	cx, _ := axes.Value(input.MouseCursorX)
	cy, _ := axes.Value(input.MouseCursorY)
	wx, _ := axes.Value(input.MouseWheelX)
	wy, _ := axes.Value(input.MouseWheelY)
	label := fmt.Sprintf("Mouse  cursor (%.0f, %.0f)  wheel (%+.1f, %+.1f)", cx, cy, wx, wy)
	text.Draw(screen, label, small, x, y, cfg.UI.TextColor)
	return y + int(cfg.UI.LineHeight)
}

func drawGamepads(screen *ebiten.Image, in *components.InputData, x, y int) {
	small := fonts.Small.Get()
	line := int(cfg.UI.LineHeight)

	for slot, gp := range in.Gamepads {
		if !gp.Connected {
			text.Draw(screen, fmt.Sprintf("Pad %d  (empty)", slot+1), small, x, y, cfg.UI.DimColor)
			y += line
			continue
		}
		text.Draw(screen, fmt.Sprintf("Pad %d  %s (%s)", slot+1, gp.Name, gp.Method), small, x, y, cfg.UI.TextColor)
		y += line

		bx := float64(x)
		for pad := input.PadAxis(0); pad < input.PadAxisCount; pad++ {
			v, ok := in.Axes.Value(input.GamepadAxis(slot, pad))
			if !ok {
				continue
			}
			drawAxisBar(screen, bx, float64(y), v, isTriggerAxis(pad))
			bx += cfg.UI.AxisBarWidth/2 + 4
		}
		y += line
	}
}

func isTriggerAxis(pad input.PadAxis) bool {
	return pad == input.PadLeftTriggerAxis || pad == input.PadRightTriggerAxis
}

// drawAxisBar draws a half-width bar. Sticks fill from the center in
// [-1, 1]; triggers fill from the left in [0, 1].
func drawAxisBar(screen *ebiten.Image, x, y, v float64, unipolar bool) {
	w := cfg.UI.AxisBarWidth / 2
	h := cfg.UI.AxisBarHeight
	vector.FillRect(screen, float32(x), float32(y-h), float32(w), float32(h), cfg.UI.AxisBarBgColor, false)

	v = math.Max(-1, math.Min(1, v))
	if unipolar {
		vector.FillRect(screen, float32(x), float32(y-h), float32(w*math.Max(0, v)), float32(h), cfg.UI.AxisBarColor, false)
		return
	}
	mid := x + w/2
	start, width := mid, w/2*v
	if v < 0 {
		start, width = mid+w/2*v, -w/2*v
	}
	vector.FillRect(screen, float32(start), float32(y-h), float32(width), float32(h), cfg.UI.AxisBarColor, false)
}
