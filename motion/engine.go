// Package motion moves the single training target through one of eight
// procedural patterns. The engine is advanced once per frame by the driver
// loop and owns the target position and the active pattern state.
package motion

import (
	"errors"
	"fmt"
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// LevelID selects a motion pattern. Valid ids are 1 through LevelCount.
type LevelID int

const (
	LevelHorizontal LevelID = iota + 1
	LevelVertical
	LevelSpiral
	LevelFigureEightH
	LevelFigureEightV
	LevelBounce
	LevelClock
	LevelPeek
)

// LevelCount is the number of patterns.
const LevelCount = 8

// SpawnDelay is the pause between pattern-internal resets, in seconds.
const SpawnDelay = 0.2

var ErrUnknownLevel = errors.New("motion: unknown level")

// Valid reports whether l names one of the eight patterns.
func (l LevelID) Valid() bool {
	return l >= LevelHorizontal && l <= LevelPeek
}

// Slot returns the zero-based index of l in a per-pattern speed row.
func (l LevelID) Slot() int { return int(l) - 1 }

func (l LevelID) String() string {
	switch l {
	case LevelHorizontal:
		return "Horizontal"
	case LevelVertical:
		return "Vertical"
	case LevelSpiral:
		return "Spiral"
	case LevelFigureEightH:
		return "Figure Eight"
	case LevelFigureEightV:
		return "Figure Eight (vertical)"
	case LevelBounce:
		return "Bounce"
	case LevelClock:
		return "Clock"
	case LevelPeek:
		return "Peek"
	}
	return fmt.Sprintf("LevelID(%d)", int(l))
}

// Vec2 is a point or vector in canvas pixel space.
type Vec2 = dmath.Vec2

// Canvas is the drawable area for this frame.
type Canvas struct {
	W, H float64
}

func (c Canvas) center() Vec2 {
	return Vec2{X: c.W / 2, Y: c.H / 2}
}

func (c Canvas) minDim() float64 {
	return math.Min(c.W, c.H)
}

// Rand is the random source shared by all patterns. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Config holds the engine constants that do not change per frame.
type Config struct {
	// BounceBaseSpeed normalises the bounce velocity vector; the frame speed
	// is applied on top of it.
	BounceBaseSpeed float64
}

// DefaultConfig matches the tuning the speed tables were built for.
var DefaultConfig = Config{BounceBaseSpeed: 250}

// Engine owns the target position and the active pattern state.
type Engine struct {
	cfg    Config
	rng    Rand
	radius float64
	pos    Vec2
	level  LevelID
	state  Pattern

	// hours survives level re-entry so the clock pattern can cap repeats
	// across entries.
	hours hourMemory
}

// NewEngine returns an engine with no active level.
func NewEngine(cfg Config, rng Rand) *Engine {
	if cfg.BounceBaseSpeed <= 0 {
		cfg.BounceBaseSpeed = DefaultConfig.BounceBaseSpeed
	}
	return &Engine{cfg: cfg, rng: rng}
}

// SetRadius sets the target radius used for edge tests. Non-finite or
// negative values are ignored.
func (e *Engine) SetRadius(r float64) {
	if r < 0 || !finite(r) {
		return
	}
	e.radius = r
}

// Radius returns the current target radius.
func (e *Engine) Radius() float64 { return e.radius }

// Position returns the current target position.
func (e *Engine) Position() Vec2 { return e.pos }

// Level returns the active level, or 0 before the first EnterLevel.
func (e *Engine) Level() LevelID { return e.level }

// State returns the active pattern state.
func (e *Engine) State() Pattern { return e.state }

// EnterLevel discards the current pattern state and initialises the given
// level. Unknown levels leave the engine untouched.
func (e *Engine) EnterLevel(level LevelID, c Canvas) error {
	if !level.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownLevel, int(level))
	}
	c = sanitize(c)

	var p Pattern
	switch level {
	case LevelHorizontal:
		p = newSweep(e, c, axisX)
	case LevelVertical:
		p = newSweep(e, c, axisY)
	case LevelSpiral:
		p = newSpiral(e, c)
	case LevelFigureEightH:
		p = newFigureEight(e, c, false)
	case LevelFigureEightV:
		p = newFigureEight(e, c, true)
	case LevelBounce:
		p = newBounce(e, c)
	case LevelClock:
		p = newClock(e, c)
	case LevelPeek:
		p = newPeek(e, c)
	}

	e.level = level
	e.state = p
	return nil
}

// Advance moves the target by one frame and returns the new position. A
// level different from the active one is entered fresh first. Unknown
// levels and non-positive timesteps leave the position unchanged.
func (e *Engine) Advance(level LevelID, dt, speed float64, c Canvas) (Vec2, error) {
	if !level.Valid() {
		return e.pos, fmt.Errorf("%w: %d", ErrUnknownLevel, int(level))
	}
	if level != e.level || e.state == nil {
		if err := e.EnterLevel(level, c); err != nil {
			return e.pos, err
		}
	}
	if !(dt > 0) || math.IsInf(dt, 0) {
		return e.pos, nil
	}
	if speed < 0 || !finite(speed) {
		speed = 0
	}

	e.state.advance(e, dt, speed, sanitize(c))
	return e.pos, nil
}

// Hints summarises the pattern state for display.
type Hints struct {
	Level    LevelID
	Phase    string
	Fake     bool
	Side     int
	Delaying bool
}

// Hints returns display hints for the active pattern.
func (e *Engine) Hints() Hints {
	h := Hints{Level: e.level}
	switch s := e.state.(type) {
	case *ClockState:
		h.Phase = s.Phase.String()
	case *PeekState:
		h.Phase = s.Phase.String()
		h.Fake = s.Fake
		h.Side = s.Side
	case *SpiralState:
		h.Delaying = s.Delay > 0
		if s.Forward {
			h.Phase = "outward"
		} else {
			h.Phase = "inward"
		}
	case *FigureEightState:
		h.Delaying = s.Delay > 0
	}
	return h
}

// Pattern is the per-level motion state. The concrete types are
// *SweepState, *SpiralState, *FigureEightState, *BounceState, *ClockState
// and *PeekState.
type Pattern interface {
	Level() LevelID
	advance(e *Engine, dt, speed float64, c Canvas)
}

func sanitize(c Canvas) Canvas {
	if c.W < 0 || !finite(c.W) {
		c.W = 0
	}
	if c.H < 0 || !finite(c.H) {
		c.H = 0
	}
	return c
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}

// randSign returns -1 or +1 with equal probability.
func randSign(rng Rand) float64 {
	if rng.Float64() < 0.5 {
		return -1
	}
	return 1
}

// randRange returns a uniform value in [lo, hi).
func randRange(rng Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// minGeometry guards divisions by radii and amplitudes.
const minGeometry = 1e-6
