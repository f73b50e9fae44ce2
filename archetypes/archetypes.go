package archetypes

import (
	"github.com/automoto/doomerang-input/components"
	cfg "github.com/automoto/doomerang-input/config"
	"github.com/automoto/doomerang-input/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	InputController = newArchetype(
		tags.InputController,
		components.Input,
		components.Listener,
	)
	EventLog = newArchetype(
		tags.EventLog,
		components.EventLog,
		components.Listener,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
