package motion

import "math"

// figureEightOffsets are the phase offsets a new loop may start from.
var figureEightOffsets = [4]float64{-math.Pi / 4, math.Pi / 4, 3 * math.Pi / 4, -3 * math.Pi / 4}

// FigureEightState traces a lemniscate-like curve around the canvas centre.
// The vertical variant swaps the axes.
type FigureEightState struct {
	Vertical bool
	T        float64
	Offset   float64
	Scale    float64
	Mirror   float64
	Delay    float64
}

func newFigureEight(e *Engine, c Canvas, vertical bool) *FigureEightState {
	s := &FigureEightState{Vertical: vertical}
	s.reset(e.rng)
	s.place(e, c)
	return s
}

func (s *FigureEightState) Level() LevelID {
	if s.Vertical {
		return LevelFigureEightV
	}
	return LevelFigureEightH
}

func (s *FigureEightState) reset(rng Rand) {
	s.T = 0
	s.Offset = figureEightOffsets[rng.Intn(len(figureEightOffsets))]
	s.Scale = randRange(rng, patternScaleMin, patternScaleMax)
	if rng.Float64() < 0.5 {
		s.Mirror = 1
	} else {
		s.Mirror = -1
	}
	s.Delay = SpawnDelay
}

func (s *FigureEightState) amplitude(c Canvas) float64 {
	return c.minDim() / 4 * s.Scale
}

func (s *FigureEightState) place(e *Engine, c Canvas) {
	center := c.center()
	a := s.amplitude(c)
	t := s.T + s.Offset

	major := a * math.Sin(t)
	minor := a / 2 * math.Sin(2*t)
	if s.Vertical {
		e.pos.X = center.X + minor*s.Mirror
		e.pos.Y = center.Y + major
		return
	}
	e.pos.X = center.X + major*s.Mirror
	e.pos.Y = center.Y + minor
}

func (s *FigureEightState) advance(e *Engine, dt, speed float64, c Canvas) {
	if s.Delay > 0 {
		s.Delay -= dt
		return
	}

	s.place(e, c)

	a := s.amplitude(c)
	if a < minGeometry {
		return
	}
	s.T += speed / a * dt
	if s.T >= 2*math.Pi {
		s.reset(e.rng)
	}
}
