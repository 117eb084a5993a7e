// Package round tracks the session clock and the fixed-length training
// round, raising one end-of-round event each time the round timer runs out.
package round

import (
	"errors"
	"fmt"
	"math"
)

// FlashDuration is how long the background flash lasts after a round ends.
const FlashDuration = 1.0

// DefaultDuration is the round length used when none is configured.
const DefaultDuration = 30.0

var ErrInvalidDuration = errors.New("round: duration must be a positive finite number of seconds")

// Advancer moves the session to the next level when a round ends.
type Advancer interface {
	AdvanceLevel()
}

// AdvancerFunc adapts a plain function to Advancer.
type AdvancerFunc func()

func (f AdvancerFunc) AdvanceLevel() { f() }

// Status is the timer output for one tick.
type Status struct {
	Elapsed        float64
	RoundRemaining float64
	FlashActive    bool
	RoundEnded     bool
}

// Controller owns the elapsed clock, the round countdown and the flash window.
type Controller struct {
	duration      float64
	remaining     float64
	elapsed       float64
	flash         float64
	autoAdvance   bool
	flashDisabled bool
	advancer      Advancer
}

// NewController returns a controller with a full round ahead of it. An
// invalid duration falls back to DefaultDuration.
func NewController(duration float64, autoAdvance bool, adv Advancer) *Controller {
	if validDuration(duration) != nil {
		duration = DefaultDuration
	}
	return &Controller{
		duration:    duration,
		remaining:   duration,
		autoAdvance: autoAdvance,
		advancer:    adv,
	}
}

// Tick advances both clocks by dt seconds. Non-positive or non-finite dt
// leaves the state unchanged.
func (c *Controller) Tick(dt float64) Status {
	if !(dt > 0) || math.IsInf(dt, 0) {
		return c.status(false)
	}

	c.elapsed += dt
	c.remaining -= dt
	if c.flash > 0 {
		c.flash = math.Max(0, c.flash-dt)
	}

	if c.remaining > 0 {
		return c.status(false)
	}

	// The new round starts at the full duration; the overshoot is dropped.
	c.remaining = c.duration
	if !c.flashDisabled {
		c.flash = FlashDuration
	}
	if c.autoAdvance && c.advancer != nil {
		c.advancer.AdvanceLevel()
	}
	return c.status(true)
}

func (c *Controller) status(ended bool) Status {
	return Status{
		Elapsed:        c.elapsed,
		RoundRemaining: c.remaining,
		FlashActive:    c.FlashActive(),
		RoundEnded:     ended,
	}
}

// SetDuration changes the round length and restarts the current round. The
// previous duration is kept when d is rejected.
func (c *Controller) SetDuration(d float64) error {
	if err := validDuration(d); err != nil {
		return err
	}
	c.duration = d
	c.remaining = d
	return nil
}

// Duration returns the configured round length in seconds.
func (c *Controller) Duration() float64 { return c.duration }

// Restart begins a fresh round. Elapsed time is not touched.
func (c *Controller) Restart() {
	c.remaining = c.duration
}

// ResetElapsed zeroes the session clock.
func (c *Controller) ResetElapsed() {
	c.elapsed = 0
}

func (c *Controller) SetAutoAdvance(on bool) { c.autoAdvance = on }

func (c *Controller) AutoAdvance() bool { return c.autoAdvance }

// SetFlashDisabled turns the end-of-round flash off. An active flash is
// cut short.
func (c *Controller) SetFlashDisabled(off bool) {
	c.flashDisabled = off
	if off {
		c.flash = 0
	}
}

func (c *Controller) FlashDisabled() bool { return c.flashDisabled }

// FlashActive reports whether the post-round flash window is open.
func (c *Controller) FlashActive() bool {
	return c.flash > 0 && !c.flashDisabled
}

// FlashRemaining returns the seconds left in the flash window.
func (c *Controller) FlashRemaining() float64 { return c.flash }

func (c *Controller) Elapsed() float64 { return c.elapsed }

func (c *Controller) Remaining() float64 { return c.remaining }

func validDuration(d float64) error {
	if !(d > 0) || math.IsInf(d, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidDuration, d)
	}
	return nil
}
