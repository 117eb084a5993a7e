package motion

type axis int

const (
	axisX axis = iota
	axisY
)

const (
	sweepEdgeMargin = 30.0
	sweepShiftMin   = 0.10
	sweepShiftMax   = 0.25
)

// SweepState drives the horizontal and vertical sweep levels: straight runs
// along one axis with a random cross-axis shift at every wall.
type SweepState struct {
	Vertical  bool
	Direction float64
}

func newSweep(e *Engine, c Canvas, a axis) *SweepState {
	s := &SweepState{Vertical: a == axisY, Direction: 1}
	r := e.radius
	if s.Vertical {
		e.pos.Y = r
		e.pos.X = e.rng.Float64()*(c.W-2*r) + r
	} else {
		e.pos.X = r
		e.pos.Y = e.rng.Float64()*(c.H-2*r) + r
	}
	return s
}

func (s *SweepState) Level() LevelID {
	if s.Vertical {
		return LevelVertical
	}
	return LevelHorizontal
}

func (s *SweepState) advance(e *Engine, dt, speed float64, c Canvas) {
	// along is the travel axis, cross the one shifted at each wall.
	along, cross := &e.pos.X, &e.pos.Y
	length, breadth := c.W, c.H
	if s.Vertical {
		along, cross = &e.pos.Y, &e.pos.X
		length, breadth = c.H, c.W
	}

	// The canvas may have shrunk since the last frame.
	r := e.radius
	*cross = clamp(*cross, r, breadth-r)
	*along = clamp(*along, r, length-r)
	*along += speed * dt * s.Direction

	switch {
	case s.Direction > 0 && *along+r >= length:
		*along = length - r
	case s.Direction < 0 && *along-r <= 0:
		*along = r
	default:
		return
	}
	s.Direction = -s.Direction
	*cross = shiftAcross(e.rng, *cross, r, breadth)
}

// shiftAcross moves the cross-axis coordinate by 10-25% of the breadth,
// away from a nearby edge, and clamps it inside [r, breadth-r].
func shiftAcross(rng Rand, v, r, breadth float64) float64 {
	var sign float64
	switch {
	case v <= r+sweepEdgeMargin:
		sign = 1
	case v >= breadth-r-sweepEdgeMargin:
		sign = -1
	default:
		sign = randSign(rng)
	}
	shift := randRange(rng, sweepShiftMin, sweepShiftMax) * breadth * sign
	return clamp(v+shift, r, breadth-r)
}
