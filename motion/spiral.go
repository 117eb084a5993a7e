package motion

import "math"

const (
	patternScaleMin = 0.85
	patternScaleMax = 1.15
)

// SpiralState unwinds the target from the centre out to an outer radius and
// back. Each return to the centre picks a new rotation and scale and flips
// the winding direction.
type SpiralState struct {
	Progress  float64
	Forward   bool
	Rotation  float64
	Scale     float64
	Clockwise bool
	Delay     float64
}

func newSpiral(e *Engine, c Canvas) *SpiralState {
	s := &SpiralState{
		Progress:  0,
		Forward:   true,
		Rotation:  e.rng.Float64() * 2 * math.Pi,
		Scale:     randRange(e.rng, patternScaleMin, patternScaleMax),
		Clockwise: true,
		Delay:     SpawnDelay,
	}
	s.place(e, c)
	return s
}

func (s *SpiralState) Level() LevelID { return LevelSpiral }

func (s *SpiralState) outerRadius(c Canvas) float64 {
	return c.minDim() / 3 * s.Scale
}

func (s *SpiralState) place(e *Engine, c Canvas) {
	center := c.center()
	outer := s.outerRadius(c)
	inner := e.radius

	theta := 2 * math.Pi * s.Progress
	if !s.Clockwise {
		theta = -theta
	}
	angle := theta + s.Rotation
	radius := inner + s.Progress*(outer-inner)

	e.pos.X = center.X + radius*math.Cos(angle)
	e.pos.Y = center.Y + radius*math.Sin(angle)
}

func (s *SpiralState) advance(e *Engine, dt, speed float64, c Canvas) {
	if s.Delay > 0 {
		s.Delay -= dt
		return
	}

	s.place(e, c)

	outer := s.outerRadius(c)
	if outer < minGeometry {
		return
	}
	delta := speed / outer * dt

	if s.Forward {
		s.Progress += delta
		if s.Progress >= 1 {
			s.Progress = 1
			s.Forward = false
		}
		return
	}

	s.Progress -= delta
	if s.Progress <= 0 {
		s.Progress = 0
		s.Rotation = e.rng.Float64() * 2 * math.Pi
		s.Scale = randRange(e.rng, patternScaleMin, patternScaleMax)
		s.Forward = true
		s.Clockwise = !s.Clockwise
		s.Delay = SpawnDelay
	}
}
