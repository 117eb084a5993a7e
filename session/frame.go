package session

import (
	"image/color"

	"github.com/automoto/focusball/breath"
	"github.com/automoto/focusball/mode"
	"github.com/automoto/focusball/motion"
)

// Frame is what the renderer needs after one tick.
type Frame struct {
	Position motion.Vec2
	Radius   float64
	Level    motion.LevelID
	Speed    float64

	Palette    mode.Palette
	Background color.RGBA
	Flash      bool
	RoundEnded bool

	Hints     motion.Hints
	Elapsed   string
	Remaining string

	Meditation bool
	// Breath is only set in meditation mode.
	Breath breath.State
}
