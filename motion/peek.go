package motion

// PeekPhase is the leg of the peek cycle.
type PeekPhase int

const (
	PeekOutgoing PeekPhase = iota
	PeekReturning
)

func (p PeekPhase) String() string {
	if p == PeekReturning {
		return "returning"
	}
	return "outgoing"
}

const (
	peekMinReach     = 25.0
	peekMaxReach     = 100.0
	peekFakeChance   = 0.2
	peekHeightOffset = 50.0
)

// PeekState slides the target out from behind the canvas centre to one side
// and back. Fake peeks move the same way; the flag is for the UI.
type PeekState struct {
	Phase        PeekPhase
	Progress     float64
	Side         int
	Fake         bool
	HeightOffset float64
	MaxOffset    float64
}

func newPeek(e *Engine, c Canvas) *PeekState {
	r := e.radius
	s := &PeekState{
		Phase:        PeekOutgoing,
		Fake:         e.rng.Float64() < peekFakeChance,
		Side:         1,
		HeightOffset: randSign(e.rng) * peekHeightOffset,
		MaxOffset:    randRange(e.rng, r+peekMinReach, r+peekMaxReach),
	}
	if e.rng.Float64() < 0.5 {
		s.Side = -1
	}

	center := c.center()
	e.pos = Vec2{X: center.X, Y: center.Y + s.HeightOffset}
	return s
}

func (s *PeekState) Level() LevelID { return LevelPeek }

func (s *PeekState) advance(e *Engine, dt, speed float64, c Canvas) {
	dir := 1.0
	if s.Phase == PeekReturning {
		dir = -1
	}
	if s.MaxOffset >= minGeometry {
		s.Progress = clamp(s.Progress+dir*speed*dt/s.MaxOffset, 0, 1)
	}

	center := c.center()
	e.pos.X = center.X + s.MaxOffset*s.Progress*float64(s.Side)
	e.pos.Y = center.Y + s.HeightOffset

	switch {
	case s.Phase == PeekOutgoing && s.Progress >= 1:
		s.Phase = PeekReturning
	case s.Phase == PeekReturning && s.Progress <= 0:
		*s = *newPeek(e, c)
	}
}
