package factory

import (
	"github.com/automoto/focusball/archetypes"
	"github.com/automoto/focusball/components"
	cfg "github.com/automoto/focusball/config"
	"github.com/automoto/focusball/session"
	"github.com/charmbracelet/harmonica"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateTrainer adds the singleton that owns the session.
func CreateTrainer(ecs *ecs.ECS, s *session.Session) *donburi.Entry {
	trainer := archetypes.Trainer.Spawn(ecs)
	components.Trainer.SetValue(trainer, components.TrainerData{
		Session: s,
		Exposed: true,
	})
	return trainer
}

func CreateViewport(ecs *ecs.ECS, width, height int) {
	viewport := archetypes.Viewport.Spawn(ecs)
	components.Viewport.SetValue(viewport, components.ViewportData{
		Width:  float64(width),
		Height: float64(height),
	})
}

// CreateOverlay seeds the overlay toggles from config.
func CreateOverlay(ecs *ecs.ECS) {
	overlay := archetypes.Overlay.Spawn(ecs)
	components.Overlay.SetValue(overlay, components.OverlayData{
		Hashtag:           cfg.Overlay.Hashtag,
		VerticalStripes:   cfg.Overlay.VerticalStripes,
		HorizontalStripes: cfg.Overlay.HorizontalStripes,
		Solid:             cfg.Overlay.Solid,
	})
}

func CreateFlash(ecs *ecs.ECS) {
	flash := archetypes.Flash.Spawn(ecs)
	components.Flash.SetValue(flash, components.FlashData{
		Spring: harmonica.NewSpring(harmonica.FPS(60), cfg.Round.FlashFrequency, cfg.Round.FlashDamping),
	})
}

func CreatePanel(ecs *ecs.ECS) {
	panel := archetypes.Panel.Spawn(ecs)
	components.Panel.SetValue(panel, components.PanelData{
		Visible: cfg.Panel.Visible,
		Dirty:   true,
	})
}
