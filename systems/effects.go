package systems

import (
	"github.com/automoto/focusball/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFlash springs the background blend toward the flash colour while the
// round-end flash is active and back afterwards.
func UpdateFlash(ecs *ecs.ECS) {
	trainerEntry, ok := components.Trainer.First(ecs.World)
	if !ok {
		return
	}
	frame := &components.Trainer.Get(trainerEntry).Frame

	components.Flash.Each(ecs.World, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		target := 0.0
		if frame.Flash {
			target = 1
		}
		flash.Amount, flash.Velocity = flash.Spring.Update(flash.Amount, flash.Velocity, target)
		flash.Amount = clamp01(flash.Amount)
	})
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
