package factory

import (
	"github.com/automoto/focusball/archetypes"
	"github.com/automoto/focusball/components"
	"github.com/automoto/focusball/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// CreateTarget adds the collision box that follows the ball.
func CreateTarget(ecs *ecs.ECS) *donburi.Entry {
	return createBox(ecs, archetypes.Target.Spawn(ecs), tags.ResolvTarget)
}

// CreatePillar adds the collision box for the peek pillar.
func CreatePillar(ecs *ecs.ECS) *donburi.Entry {
	return createBox(ecs, archetypes.Pillar.Spawn(ecs), tags.ResolvPillar)
}

// createBox starts with a 1x1 box; the cover system resizes it every frame.
func createBox(ecs *ecs.ECS, entry *donburi.Entry, tag string) *donburi.Entry {
	obj := resolv.NewObject(0, 0, 1, 1, tag)
	obj.Data = entry

	components.Object.SetValue(entry, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	return entry
}
