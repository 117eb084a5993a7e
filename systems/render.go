package systems

import (
	"image"
	"image/color"
	"math"

	"github.com/automoto/focusball/components"
	cfg "github.com/automoto/focusball/config"
	"github.com/automoto/focusball/motion"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/yohamta/donburi/ecs"
)

// canvasImage returns the part of the screen the target moves in.
func canvasImage(ecs *ecs.ECS, screen *ebiten.Image) (*ebiten.Image, motion.Canvas) {
	viewportEntry, ok := components.Viewport.First(ecs.World)
	if !ok {
		b := screen.Bounds()
		return screen, motion.Canvas{W: float64(b.Dx()), H: float64(b.Dy())}
	}
	canvas := components.Viewport.Get(viewportEntry).Canvas()
	sub := screen.SubImage(image.Rect(0, 0, int(canvas.W), int(canvas.H))).(*ebiten.Image)
	return sub, canvas
}

func frameOf(ecs *ecs.ECS) (*components.TrainerData, bool) {
	trainerEntry, ok := components.Trainer.First(ecs.World)
	if !ok {
		return nil, false
	}
	return components.Trainer.Get(trainerEntry), true
}

// DrawBackground fills the canvas, blending into the flash colour as the
// flash spring rises.
func DrawBackground(ecs *ecs.ECS, screen *ebiten.Image) {
	trainer, ok := frameOf(ecs)
	if !ok {
		return
	}
	amount := 0.0
	if flashEntry, ok := components.Flash.First(ecs.World); ok {
		amount = components.Flash.Get(flashEntry).Amount
	}
	dst, _ := canvasImage(ecs, screen)
	dst.Fill(BlendColor(trainer.Frame.Palette.Background, trainer.Frame.Palette.Flash, amount))
}

// BlendColor mixes a toward b in RGB space; t is clamped to [0, 1].
func BlendColor(a, b color.RGBA, t float64) color.RGBA {
	t = clamp01(t)
	if t == 0 {
		return a
	}
	if t == 1 {
		return b
	}
	ca, _ := colorful.MakeColor(a)
	cb, _ := colorful.MakeColor(b)
	r, g, bl := ca.BlendRgb(cb, t).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: bl, A: 255}
}

// DrawBreath draws the breathing circle behind the target in meditation mode.
func DrawBreath(ecs *ecs.ECS, screen *ebiten.Image) {
	trainer, ok := frameOf(ecs)
	if !ok || !trainer.Frame.Meditation {
		return
	}
	dst, canvas := canvasImage(ecs, screen)
	st := trainer.Frame.Breath
	if st.Radius <= 0 {
		return
	}
	vector.DrawFilledCircle(dst,
		float32(canvas.W/2), float32(canvas.H/2), float32(st.Radius),
		withAlpha(st.Color, st.Alpha), true)
}

// DrawTarget draws the ball and its inner dot.
func DrawTarget(ecs *ecs.ECS, screen *ebiten.Image) {
	trainer, ok := frameOf(ecs)
	if !ok {
		return
	}
	f := &trainer.Frame
	if f.Radius <= 0 {
		return
	}
	dst, _ := canvasImage(ecs, screen)
	x, y := float32(f.Position.X), float32(f.Position.Y)
	vector.DrawFilledCircle(dst, x, y, float32(f.Radius), f.Palette.Ball, true)
	vector.DrawFilledCircle(dst, x, y, float32(DotRadius(f.Radius)), f.Palette.Dot, true)
}

// DotRadius is the inner dot radius for a ball of radius r.
func DotRadius(r float64) float64 {
	return math.Max(r*cfg.Target.DotRatio, cfg.Target.DotMinPx)
}

// DrawPillar covers the middle of the canvas on the peek level.
func DrawPillar(ecs *ecs.ECS, screen *ebiten.Image) {
	trainer, ok := frameOf(ecs)
	if !ok || trainer.Frame.Level != motion.LevelPeek {
		return
	}
	dst, canvas := canvasImage(ecs, screen)
	r := PillarRect(canvas, trainer.Frame.Radius)
	vector.FillRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), cfg.Overlay.PillarColor, false)
}

// DrawOverlays draws the enabled distraction bars over the canvas.
func DrawOverlays(ecs *ecs.ECS, screen *ebiten.Image) {
	overlayEntry, ok := components.Overlay.First(ecs.World)
	if !ok {
		return
	}
	overlay := components.Overlay.Get(overlayEntry)
	if !overlay.Any() {
		return
	}
	dst, canvas := canvasImage(ecs, screen)

	alpha := cfg.Overlay.Alpha
	if overlay.Solid {
		alpha = 1
	}
	clr := withAlpha(cfg.Overlay.Color, alpha)

	var bars []Rect
	if overlay.Hashtag {
		bars = append(bars, HashtagBars(canvas)...)
	}
	if overlay.VerticalStripes {
		bars = append(bars, Stripes(canvas, true)...)
	}
	if overlay.HorizontalStripes {
		bars = append(bars, Stripes(canvas, false)...)
	}
	for _, b := range bars {
		vector.FillRect(dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), clr, false)
	}
}

// HashtagBars returns the vertical and horizontal bars of the grid overlay,
// each centred on a division line of the canvas.
func HashtagBars(canvas motion.Canvas) []Rect {
	n := cfg.Overlay.HashtagBars
	thick := cfg.Overlay.HashtagBar
	bars := make([]Rect, 0, 2*n)
	for i := 1; i <= n; i++ {
		x := canvas.W*float64(i)/float64(n+1) - thick/2
		bars = append(bars, Rect{X: x, Y: 0, W: thick, H: canvas.H})
	}
	for i := 1; i <= n; i++ {
		y := canvas.H*float64(i)/float64(n+1) - thick/2
		bars = append(bars, Rect{X: 0, Y: y, W: canvas.W, H: thick})
	}
	return bars
}

// Stripes returns evenly spaced stripes across the canvas.
func Stripes(canvas motion.Canvas, vertical bool) []Rect {
	width, gap := cfg.Overlay.StripeWidth, cfg.Overlay.StripeGap
	if width <= 0 || width+gap <= 0 {
		return nil
	}
	span := canvas.H
	if vertical {
		span = canvas.W
	}
	var out []Rect
	for p := 0.0; p < span; p += width + gap {
		if vertical {
			out = append(out, Rect{X: p, Y: 0, W: width, H: canvas.H})
		} else {
			out = append(out, Rect{X: 0, Y: p, W: canvas.W, H: width})
		}
	}
	return out
}

// withAlpha turns an opaque colour into a translucent one.
func withAlpha(c color.RGBA, alpha float64) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(clamp01(alpha) * 255))}
}
