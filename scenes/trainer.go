package scenes

import (
	"fmt"
	"log"
	"math/rand"
	"sync"

	"github.com/automoto/focusball/components"
	cfg "github.com/automoto/focusball/config"
	"github.com/automoto/focusball/mode"
	"github.com/automoto/focusball/session"
	"github.com/automoto/focusball/systems"
	"github.com/automoto/focusball/systems/factory"
	"github.com/automoto/focusball/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Collision space covers a 4K canvas
const (
	spaceWidth  = 4096
	spaceHeight = 4096
	spaceCell   = 64
)

// TrainerScene runs the moving target, its overlays and the control panel
type TrainerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	session      *session.Session
	panelUI      *ui.PanelUI
	panel        *components.PanelData
	once         sync.Once
}

// NewTrainerScene builds the session from the loaded configuration.
func NewTrainerScene(sc SceneChanger) (*TrainerScene, error) {
	rng := rand.New(rand.NewSource(cfg.C.Seed))
	s, err := session.New(SessionConfig(), rng)
	if err != nil {
		return nil, fmt.Errorf("trainer: %w", err)
	}
	if cfg.Meditation.StartEnabled {
		if _, err := s.ToggleMeditation(); err != nil {
			log.Printf("Warning: could not start in meditation mode: %v", err)
		}
	}
	return &TrainerScene{sceneChanger: sc, session: s}, nil
}

// SessionConfig maps the config package onto a session configuration.
func SessionConfig() session.Config {
	return session.Config{
		Base:       cfg.Curve.Base,
		Tiers:      cfg.Curve.Tiers,
		Sublevels:  cfg.Curve.Sublevels,
		Tier:       cfg.Curve.Tier,
		Sublevel:   cfg.Curve.Sublevel,
		Resolution: cfg.ScreenFactor(cfg.Curve.ScreenType),
		Level:      cfg.Target.StartLevel,
		Settings:   sessionSettings(),

		BaseRadius:     cfg.Target.BaseRadius,
		MinSize:        cfg.Target.MinSize,
		MaxSize:        cfg.Target.MaxSize,
		SpeedIncrement: cfg.Curve.SpeedIncrement,
		FlashDisabled:  cfg.Round.FlashDisabled,

		Motion:     cfg.Target.Motion,
		Meditation: cfg.Meditation.Preset,
		Breath:     cfg.Breath,
	}
}

func (ts *TrainerScene) Update() {
	ts.once.Do(ts.configure)
	ts.ecs.Update()

	if ts.panel.Visible {
		ts.panelUI.Update()
	}
}

// Quit reports whether the user asked to leave.
func (ts *TrainerScene) Quit() bool {
	return ts.ecs != nil && systems.IsQuitRequested(ts.ecs)
}

func (ts *TrainerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Black)

	if ts.ecs == nil {
		return
	}
	ts.ecs.Draw(screen)

	if ts.panel.Visible {
		ts.panelUI.UI.Draw(screen)
	}
}

func (ts *TrainerScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateViewport)
	ecs.AddSystem(systems.UpdateTrainer)
	ecs.AddSystem(systems.UpdateFlash)
	ecs.AddSystem(systems.UpdateCover)

	ecs.AddRenderer(cfg.Default, systems.DrawBackground)
	ecs.AddRenderer(cfg.Default, systems.DrawBreath)
	ecs.AddRenderer(cfg.Default, systems.DrawTarget)
	ecs.AddRenderer(cfg.Default, systems.DrawPillar)
	ecs.AddRenderer(cfg.Default, systems.DrawOverlays)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)

	ts.ecs = ecs

	factory.CreateSpace(ts.ecs, spaceWidth, spaceHeight, spaceCell, spaceCell)
	factory.CreateTarget(ts.ecs)
	factory.CreatePillar(ts.ecs)
	factory.CreateViewport(ts.ecs, cfg.C.Width, cfg.C.Height)
	factory.CreateOverlay(ts.ecs)
	factory.CreateFlash(ts.ecs)
	factory.CreatePanel(ts.ecs)
	trainerEntry := factory.CreateTrainer(ts.ecs, ts.session)

	trainer := components.Trainer.Get(trainerEntry)
	overlay := components.Overlay.Get(components.Overlay.MustFirst(ts.ecs.World))
	ts.panel = components.Panel.Get(components.Panel.MustFirst(ts.ecs.World))

	panelUI, err := ui.NewPanelUI(trainer, overlay, ts.panel)
	if err != nil {
		panic("failed to build control panel: " + err.Error())
	}
	ts.panelUI = panelUI

	log.Printf("Trainer ready: level %d (%s), tier %d sublevel %d",
		int(ts.session.Level()), ts.session.Level(), ts.session.Tier()+1, ts.session.Sublevel()+1)
}

func sessionSettings() mode.Settings {
	return mode.Settings{
		Palette:       cfg.Target.Palette,
		AutoAdvance:   cfg.Round.AutoAdvance,
		SizePercent:   cfg.Target.SizePercent,
		RoundDuration: cfg.Round.Duration,
	}
}
