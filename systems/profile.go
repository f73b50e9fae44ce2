package systems

import (
	"log"

	"github.com/automoto/doomerang-input/components"
	cfg "github.com/automoto/doomerang-input/config"
	"github.com/yohamta/donburi/ecs"
)

// BindProfile installs profile i on the controller, replacing every binding,
// and records it as the active profile. Out-of-range indices wrap.
func BindProfile(in *components.InputData, i int) {
	n := len(cfg.Input.Profiles)
	if n == 0 {
		return
	}
	i = ((i % n) + n) % n
	p := cfg.Input.Profiles[i]

	// Each diagnostic is already logged with its binding; the rest installed.
	if err := in.Controller.SetInputBindings(p.Bindings); err != nil {
		log.Printf("Warning: profile %q has bindings that will never fire", p.Name)
	}
	in.Profile = i
	cfg.Input.ActiveProfile = i
	log.Printf("Input profile %q: %d bindings, %d processors", p.Name, len(p.Bindings), in.Controller.ProcessorCount())
}

// UpdateProfile drains the controller entity's own queue for viewer commands:
// profile cycling and quit. It also applies a pending config file reload.
func UpdateProfile(e *ecs.ECS) {
	entry, ok := components.Input.First(e.World)
	if !ok {
		return
	}
	in := components.Input.Get(entry)
	listener := components.Listener.Get(entry)

	if in.Reload {
		in.Reload = false
		reloadConfig(in)
	}

	for {
		ev, ok := listener.Listener.ConsumeInputEvent()
		if !ok {
			break
		}
		if cfg.Debug.LogEvents {
			log.Printf("event %s", describeEvent(ev))
		}

		switch cfg.ActionID(ev.ActionCode()) {
		case cfg.ActionCycleProfile:
			BindProfile(in, in.Profile+1)
			SaveCurrentSettings()
		case cfg.ActionQuit:
			in.Quit = true
		}
	}
}

func reloadConfig(in *components.InputData) {
	if in.ConfigPath == "" {
		return
	}
	if err := cfg.LoadFile(in.ConfigPath); err != nil {
		log.Printf("Warning: Could not reload %s: %v", in.ConfigPath, err)
		return
	}
	log.Printf("Reloaded %s", in.ConfigPath)
	BindProfile(in, cfg.Input.ActiveProfile)
}
