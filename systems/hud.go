package systems

import (
	"fmt"

	cfg "github.com/automoto/focusball/config"
	"github.com/automoto/focusball/fonts"
	"github.com/automoto/focusball/motion"
	"github.com/automoto/focusball/session"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// DrawHUD renders the session clock, the round countdown and the level
// readout in the top-left corner of the canvas.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	trainer, ok := frameOf(ecs)
	if !ok {
		return
	}
	dst, _ := canvasImage(ecs, screen)
	f := &trainer.Frame
	face := fonts.HUD.Get()
	margin := int(cfg.HUD.Margin)
	line := face.Metrics().Height.Ceil() + 4

	lines := []string{
		"Elapsed " + f.Elapsed,
		"Round   " + f.Remaining,
		fmt.Sprintf("%d. %s  %.2f px/s", int(f.Level), f.Level, f.Speed),
	}
	if cfg.HUD.ShowHints {
		if hint := HintText(f.Hints, trainer.Exposed); hint != "" {
			lines = append(lines, hint)
		}
	}

	// Backing box keeps the text legible over stripes
	boxW := float32(0)
	for _, l := range lines {
		if w := float32(font.MeasureString(face, l).Ceil()); w > boxW {
			boxW = w
		}
	}
	vector.FillRect(dst,
		float32(margin/2), float32(margin/2),
		boxW+float32(margin), float32(line*len(lines)+margin),
		cfg.BlackOverlay, false)

	for i, l := range lines {
		text.Draw(dst, l, face, margin, margin+line*(i+1)-4, cfg.HUD.TextColor)
	}

	if f.Meditation {
		drawBreathLabel(dst, f)
	}
}

// HintText describes the pattern state for the HUD.
func HintText(h motion.Hints, exposed bool) string {
	switch h.Level {
	case motion.LevelPeek:
		side := "right"
		if h.Side < 0 {
			side = "left"
		}
		s := fmt.Sprintf("peek %s, %s", side, h.Phase)
		if h.Fake {
			s += " (fake)"
		}
		if !exposed {
			s += ", hidden"
		}
		return s
	case motion.LevelClock:
		return "clock " + h.Phase
	case motion.LevelSpiral:
		if h.Delaying {
			return "spiral waiting"
		}
		return "spiral " + h.Phase
	case motion.LevelFigureEightH, motion.LevelFigureEightV:
		if h.Delaying {
			return "figure-eight waiting"
		}
	}
	return ""
}

// drawBreathLabel centres the inhale/exhale prompt on the canvas.
func drawBreathLabel(dst *ebiten.Image, f *session.Frame) {
	label := f.Breath.Label
	if label == "" {
		return
	}
	face := fonts.BreathTag.Get()
	b := dst.Bounds()
	w := font.MeasureString(face, label).Ceil()
	x := b.Min.X + (b.Dx()-w)/2
	y := b.Min.Y + b.Dy()/2 - int(f.Breath.Radius) - face.Metrics().Descent.Ceil() - 8
	if y < face.Metrics().Ascent.Ceil() {
		y = face.Metrics().Ascent.Ceil()
	}
	text.Draw(dst, label, face, x, y, cfg.Meditation.LabelColor)
}
