package scenes

import (
	"image/color"
	"sync"
	"sync/atomic"

	"github.com/automoto/doomerang-input/archetypes"
	"github.com/automoto/doomerang-input/components"
	cfg "github.com/automoto/doomerang-input/config"
	"github.com/automoto/doomerang-input/input"
	"github.com/automoto/doomerang-input/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ViewerScene shows the active bindings, live device state and the events
// the controller generates.
type ViewerScene struct {
	ecs        *ecs.ECS
	configPath string
	once       sync.Once

	reload atomic.Bool
}

// NewViewerScene creates a viewer. configPath is reloaded on RequestReload.
func NewViewerScene(configPath string) *ViewerScene {
	return &ViewerScene{configPath: configPath}
}

// RequestReload asks the scene to reload its config file on the next frame.
// Safe to call from any goroutine.
func (vs *ViewerScene) RequestReload() {
	vs.reload.Store(true)
}

func (vs *ViewerScene) Update() error {
	vs.once.Do(vs.configure)

	in := systems.GetInput(vs.ecs)
	if vs.reload.Swap(false) {
		in.Reload = true
	}
	vs.ecs.Update()
	if in.Quit {
		return ebiten.Termination
	}
	return nil
}

func (vs *ViewerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	if vs.ecs == nil {
		screen.Fill(color.Black)
		return
	}
	screen.Fill(cfg.UI.BackgroundColor)
	vs.ecs.Draw(screen)
}

func (vs *ViewerScene) configure() {
	vs.ecs = ecs.NewECS(donburi.NewWorld())

	axes := &input.AxisTable{}
	clock := input.NewFrameClock(0)
	controller := input.NewController(clock, axes)

	// Controller entity: owns the controller and consumes viewer commands
	ctrlEntry := archetypes.InputController.Spawn(vs.ecs)
	in := components.Input.Get(ctrlEntry)
	in.Controller = controller
	in.Clock = clock
	in.Axes = axes
	in.ConfigPath = vs.configPath
	bindListener(controller, ctrlEntry)

	// Event log entity: its own queue, so it sees every event too
	logEntry := archetypes.EventLog.Spawn(vs.ecs)
	bindListener(controller, logEntry)

	systems.BindProfile(in, cfg.Input.ActiveProfile)

	// Input must run first: it generates the events the rest consume
	vs.ecs.AddSystem(systems.UpdateInput)
	vs.ecs.AddSystem(systems.UpdateProfile)
	vs.ecs.AddSystem(systems.UpdateEventLog)

	vs.ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	vs.ecs.AddRenderer(cfg.Overlay, systems.DrawEventLog)
}

func bindListener(c *input.Controller, entry *donburi.Entry) {
	l := components.Listener.Get(entry)
	l.Queue = input.NewQueue()
	l.Handle = c.BindInputQueue(l.Queue)
	l.Listener.ListenInputQueue(l.Queue)
}
