// Package breath drives the paced-breathing circle shown in meditation mode.
package breath

import (
	"image/color"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Phase is half of one breath.
type Phase int

const (
	Inhale Phase = iota
	Exhale
)

func (p Phase) String() string {
	if p == Exhale {
		return "exhale"
	}
	return "inhale"
}

// Style is how one phase is drawn.
type Style struct {
	Seconds float64
	// From and To are the circle radius at the start and end of the phase.
	From, To float64
	// Alpha holds until FadeAt (fraction of the phase), then moves to
	// FadeTo by the end.
	Alpha  float64
	FadeTo float64
	FadeAt float64
	Color  color.RGBA
	Label  string
}

// Config pairs the two phase styles.
type Config struct {
	Inhale Style
	Exhale Style
}

// DefaultConfig is a 4s inhale and 6s exhale.
var DefaultConfig = Config{
	Inhale: Style{
		Seconds: 4, From: 200, To: 425,
		Alpha: 0.2, FadeTo: 0.35, FadeAt: 0.75,
		Color: color.RGBA{R: 0xff, G: 0xd9, B: 0xaa, A: 0xff},
		Label: "Inhale...",
	},
	Exhale: Style{
		Seconds: 6, From: 425, To: 200,
		Alpha: 0.3, FadeTo: 0.125, FadeAt: 0.75,
		Color: color.RGBA{R: 0x55, G: 0x2f, B: 0x00, A: 0xff},
		Label: "Exhale...",
	},
}

// State is the overlay for one frame.
type State struct {
	Phase    Phase
	Progress float64
	Radius   float64
	Alpha    float64
	Color    color.RGBA
	Label    string
}

// Timer alternates inhale and exhale phases.
type Timer struct {
	cfg     Config
	phase   Phase
	elapsed float64
	radius  *gween.Tween
	fade    *gween.Tween
}

// NewTimer returns a timer at the start of an inhale. Phases with a
// non-positive length fall back to the defaults.
func NewTimer(cfg Config) *Timer {
	if !(cfg.Inhale.Seconds > 0) {
		cfg.Inhale = DefaultConfig.Inhale
	}
	if !(cfg.Exhale.Seconds > 0) {
		cfg.Exhale = DefaultConfig.Exhale
	}
	t := &Timer{cfg: cfg}
	t.enter(Inhale)
	return t
}

// Reset returns to the start of an inhale.
func (t *Timer) Reset() {
	t.enter(Inhale)
}

func (t *Timer) style() Style {
	if t.phase == Exhale {
		return t.cfg.Exhale
	}
	return t.cfg.Inhale
}

func (t *Timer) enter(p Phase) {
	t.phase = p
	t.elapsed = 0
	s := t.style()
	t.radius = gween.New(float32(s.From), float32(s.To), float32(s.Seconds), ease.Linear)
	fadeLen := s.Seconds * (1 - s.FadeAt)
	t.fade = gween.New(float32(s.Alpha), float32(s.FadeTo), float32(fadeLen), ease.Linear)
}

// Update advances the timer by dt seconds and returns the new state. A
// phase switch starts the next phase from zero.
func (t *Timer) Update(dt float64) State {
	if dt > 0 {
		t.elapsed += dt
		if t.elapsed >= t.style().Seconds {
			if t.phase == Inhale {
				t.enter(Exhale)
			} else {
				t.enter(Inhale)
			}
		}
	}
	return t.State()
}

// State returns the overlay for the current position in the cycle.
func (t *Timer) State() State {
	s := t.style()
	progress := t.elapsed / s.Seconds

	radius, _ := t.radius.Set(float32(t.elapsed))

	alpha := s.Alpha
	if fadeStart := s.Seconds * s.FadeAt; t.elapsed > fadeStart {
		a, _ := t.fade.Set(float32(t.elapsed - fadeStart))
		alpha = float64(a)
	}

	return State{
		Phase:    t.phase,
		Progress: progress,
		Radius:   float64(radius),
		Alpha:    alpha,
		Color:    s.Color,
		Label:    s.Label,
	}
}
