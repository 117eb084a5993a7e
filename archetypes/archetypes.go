package archetypes

import (
	"github.com/automoto/focusball/components"
	cfg "github.com/automoto/focusball/config"
	"github.com/automoto/focusball/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Trainer = newArchetype(
		components.Trainer,
	)
	Viewport = newArchetype(
		components.Viewport,
	)
	Overlay = newArchetype(
		components.Overlay,
	)
	Flash = newArchetype(
		components.Flash,
	)
	Panel = newArchetype(
		components.Panel,
	)
	Input = newArchetype(
		components.Input,
	)
	Space = newArchetype(
		components.Space,
	)
	Target = newArchetype(
		tags.Target,
		components.Object,
	)
	Pillar = newArchetype(
		tags.Pillar,
		components.Object,
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
