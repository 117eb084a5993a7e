// Package mode switches a session between normal training and the
// restricted meditation mode, saving and restoring the user's settings
// around it.
package mode

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/automoto/focusball/motion"
	"github.com/automoto/focusball/speedcurve"
	"github.com/lucasb-eyer/go-colorful"
)

var (
	ErrNotRestricted = errors.New("mode: not in meditation mode")
	ErrSlot          = errors.New("mode: speed slot out of range")
)

// Palette is the four user-visible colours.
type Palette struct {
	Ball       color.RGBA
	Dot        color.RGBA
	Background color.RGBA
	Flash      color.RGBA
}

// Settings is the user-editable state that meditation mode overrides.
type Settings struct {
	Speeds        speedcurve.Row
	Palette       Palette
	AutoAdvance   bool
	SizePercent   float64
	RoundDuration float64
}

// Preset describes what meditation mode applies on entry. Speeds are in
// reference-resolution units and are scaled on entry.
type Preset struct {
	Speeds        speedcurve.Row
	Palette       Palette
	AutoAdvance   bool
	SizePercent   float64
	RoundDuration float64
	Levels        []motion.LevelID
}

// Meditation is the stock meditation preset.
var Meditation = Preset{
	Speeds: speedcurve.Row{75, 75, 0, 0, 0, 75, 0, 0},
	Palette: Palette{
		Ball:       MustHex("#d3a047"),
		Dot:        MustHex("#ffdea3"),
		Background: MustHex("#4b3d92"),
		Flash:      MustHex("#aa7839"),
	},
	AutoAdvance:   true,
	SizePercent:   100,
	RoundDuration: 60,
	Levels:        []motion.LevelID{motion.LevelHorizontal, motion.LevelVertical, motion.LevelBounce},
}

// Controller tracks which mode is active and holds the saved settings
// while meditation mode is on.
type Controller struct {
	preset     Preset
	restricted bool
	saved      Settings
	index      int
}

// NewController returns a controller in normal mode. An empty level list in
// the preset falls back to the stock meditation levels.
func NewController(p Preset) *Controller {
	if len(p.Levels) == 0 {
		p.Levels = Meditation.Levels
	}
	p.Levels = append([]motion.LevelID(nil), p.Levels...)
	return &Controller{preset: p}
}

// Restricted reports whether meditation mode is active.
func (c *Controller) Restricted() bool { return c.restricted }

// Levels returns the levels reachable in meditation mode.
func (c *Controller) Levels() []motion.LevelID {
	return append([]motion.LevelID(nil), c.preset.Levels...)
}

// Allowed reports whether level may be selected in the current mode.
func (c *Controller) Allowed(level motion.LevelID) bool {
	if !level.Valid() {
		return false
	}
	if !c.restricted {
		return true
	}
	return c.indexOf(level) >= 0
}

// Enter snapshots live, applies the preset scaled by resolution, and
// returns the level to continue on. Entering twice is a no-op that returns
// current unchanged.
func (c *Controller) Enter(live *Settings, current motion.LevelID, resolution float64) (motion.LevelID, error) {
	if c.restricted {
		return current, nil
	}
	speeds, err := speedcurve.Scale(c.preset.Speeds, resolution)
	if err != nil {
		return current, fmt.Errorf("enter meditation: %w", err)
	}

	c.saved = *live
	c.restricted = true

	live.Speeds = speeds
	live.Palette = c.preset.Palette
	live.AutoAdvance = c.preset.AutoAdvance
	live.SizePercent = c.preset.SizePercent
	live.RoundDuration = c.preset.RoundDuration

	if i := c.indexOf(current); i >= 0 {
		c.index = i
		return current, nil
	}
	c.index = 0
	return c.preset.Levels[0], nil
}

// Exit restores the settings captured by Enter. Exiting while in normal
// mode is a no-op.
func (c *Controller) Exit(live *Settings) {
	if !c.restricted {
		return
	}
	*live = c.saved
	c.saved = Settings{}
	c.restricted = false
}

// Next returns the level after current. Meditation mode cycles its own
// subset; normal mode cycles all levels.
func (c *Controller) Next(current motion.LevelID) motion.LevelID {
	if c.restricted {
		c.sync(current)
		c.index = (c.index + 1) % len(c.preset.Levels)
		return c.preset.Levels[c.index]
	}
	if !current.Valid() {
		return motion.LevelHorizontal
	}
	return current%motion.LevelCount + 1
}

// Prev returns the level before current.
func (c *Controller) Prev(current motion.LevelID) motion.LevelID {
	if c.restricted {
		c.sync(current)
		n := len(c.preset.Levels)
		c.index = (c.index - 1 + n) % n
		return c.preset.Levels[c.index]
	}
	if !current.Valid() {
		return motion.LevelHorizontal
	}
	return (current+motion.LevelCount-2)%motion.LevelCount + 1
}

// Select records a direct level choice so Next and Prev continue from it.
// Levels outside the meditation subset are refused while restricted.
func (c *Controller) Select(level motion.LevelID) bool {
	if !c.Allowed(level) {
		return false
	}
	if c.restricted {
		c.index = c.indexOf(level)
	}
	return true
}

// RestoreSpeed returns the meditation default for one speed slot, scaled by
// resolution.
func (c *Controller) RestoreSpeed(slot int, resolution float64) (float64, error) {
	if !c.restricted {
		return 0, ErrNotRestricted
	}
	if slot < 0 || slot >= speedcurve.PatternCount {
		return 0, fmt.Errorf("%w: %d", ErrSlot, slot)
	}
	return speedcurve.ScaleValue(c.preset.Speeds[slot], resolution)
}

// Saved returns the settings captured on entry and whether there are any.
func (c *Controller) Saved() (Settings, bool) {
	return c.saved, c.restricted
}

func (c *Controller) sync(current motion.LevelID) {
	if i := c.indexOf(current); i >= 0 {
		c.index = i
	}
}

func (c *Controller) indexOf(level motion.LevelID) int {
	for i, l := range c.preset.Levels {
		if l == level {
			return i
		}
	}
	return -1
}

// ParseHex parses a #rrggbb colour.
func ParseHex(s string) (color.RGBA, error) {
	col, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, err
	}
	r, g, b := col.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// MustHex is ParseHex for package-level literals.
func MustHex(s string) color.RGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}
