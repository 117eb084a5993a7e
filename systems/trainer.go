package systems

import (
	"log"

	"github.com/automoto/focusball/components"
	cfg "github.com/automoto/focusball/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// trainerActions are checked in order every tick.
var trainerActions = []cfg.ActionID{
	cfg.ActionToggleMenu,
	cfg.ActionNextLevel,
	cfg.ActionPrevLevel,
	cfg.ActionSpeedUp,
	cfg.ActionSpeedDown,
	cfg.ActionSizeUp,
	cfg.ActionSizeDown,
	cfg.ActionRestartRound,
	cfg.ActionToggleMeditation,
	cfg.ActionToggleHashtag,
	cfg.ActionToggleVerticalStripes,
	cfg.ActionToggleHorizontalStripes,
	cfg.ActionToggleSolidOverlay,
	cfg.ActionToggleAutoAdvance,
	cfg.ActionQuit,
}

// UpdateTrainer applies this frame's actions, then advances the session by
// one fixed tick.
func UpdateTrainer(ecs *ecs.ECS) {
	trainerEntry, ok := components.Trainer.First(ecs.World)
	if !ok {
		return
	}
	trainer := components.Trainer.Get(trainerEntry)
	input := getOrCreateInput(ecs)
	overlay := mustOverlay(ecs)
	panel := mustPanel(ecs)

	for _, id := range trainerActions {
		if GetAction(input, id).JustPressed {
			ApplyAction(trainer, overlay, panel, id)
		}
	}

	viewportEntry, ok := components.Viewport.First(ecs.World)
	if !ok {
		return
	}
	canvas := components.Viewport.Get(viewportEntry).Canvas()

	dt := 1 / float64(ebiten.TPS())
	trainer.Frame = trainer.Session.Tick(dt, canvas)
	if trainer.Frame.RoundEnded {
		// Auto-advance may have changed the level
		panel.Dirty = true
	}
}

// ApplyAction performs one trainer action. The panel buttons and the key
// bindings both end up here.
func ApplyAction(trainer *components.TrainerData, overlay *components.OverlayData, panel *components.PanelData, id cfg.ActionID) {
	s := trainer.Session
	switch id {
	case cfg.ActionToggleMenu:
		panel.Visible = !panel.Visible
	case cfg.ActionNextLevel:
		s.NextLevel()
	case cfg.ActionPrevLevel:
		s.PrevLevel()
	case cfg.ActionSpeedUp:
		s.ChangeSpeed(1)
	case cfg.ActionSpeedDown:
		s.ChangeSpeed(-1)
	case cfg.ActionSizeUp:
		s.ChangeSize(cfg.Target.SizeStep)
	case cfg.ActionSizeDown:
		s.ChangeSize(-cfg.Target.SizeStep)
	case cfg.ActionRestartRound:
		s.RestartRound()
	case cfg.ActionToggleMeditation:
		on, err := s.ToggleMeditation()
		if err != nil {
			log.Printf("Warning: meditation mode: %v", err)
			return
		}
		log.Printf("Meditation mode: %v", on)
	case cfg.ActionToggleHashtag:
		overlay.Hashtag = !overlay.Hashtag
	case cfg.ActionToggleVerticalStripes:
		overlay.VerticalStripes = !overlay.VerticalStripes
	case cfg.ActionToggleHorizontalStripes:
		overlay.HorizontalStripes = !overlay.HorizontalStripes
	case cfg.ActionToggleSolidOverlay:
		overlay.Solid = !overlay.Solid
	case cfg.ActionToggleAutoAdvance:
		s.SetAutoAdvance(!s.Settings().AutoAdvance)
	case cfg.ActionQuit:
		trainer.Quit = true
	default:
		return
	}
	panel.Dirty = true
}

// IsQuitRequested reports whether the quit action fired.
func IsQuitRequested(ecs *ecs.ECS) bool {
	trainerEntry, ok := components.Trainer.First(ecs.World)
	if !ok {
		return false
	}
	return components.Trainer.Get(trainerEntry).Quit
}

func mustOverlay(ecs *ecs.ECS) *components.OverlayData {
	return components.Overlay.Get(components.Overlay.MustFirst(ecs.World))
}

func mustPanel(ecs *ecs.ECS) *components.PanelData {
	return components.Panel.Get(components.Panel.MustFirst(ecs.World))
}
