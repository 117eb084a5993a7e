package motion

import "math"

const (
	bouncePlainChance = 0.2
	bounceJitter      = 0.33
)

// BounceState moves the target in a straight line and reflects it off the
// canvas walls with a small random angle change.
type BounceState struct {
	Velocity Vec2
}

func newBounce(e *Engine, c Canvas) *BounceState {
	r := e.radius
	e.pos.X = randRange(e.rng, r, c.W-r)
	e.pos.Y = randRange(e.rng, r, c.H-r)

	angle := e.rng.Float64() * 2 * math.Pi
	return &BounceState{
		Velocity: Vec2{
			X: e.cfg.BounceBaseSpeed * math.Cos(angle),
			Y: e.cfg.BounceBaseSpeed * math.Sin(angle),
		},
	}
}

func (s *BounceState) Level() LevelID { return LevelBounce }

func (s *BounceState) advance(e *Engine, dt, speed float64, c Canvas) {
	base := e.cfg.BounceBaseSpeed
	e.pos.X += s.Velocity.X / base * speed * dt
	e.pos.Y += s.Velocity.Y / base * speed * dt

	r := e.radius

	// X and Y walls are tested independently, so a corner hit reflects twice.
	switch {
	case e.pos.X-r < 0:
		e.pos.X = r
		s.reflect(e.rng, true)
	case e.pos.X+r > c.W:
		e.pos.X = c.W - r
		s.reflect(e.rng, true)
	}
	switch {
	case e.pos.Y-r < 0:
		e.pos.Y = r
		s.reflect(e.rng, false)
	case e.pos.Y+r > c.H:
		e.pos.Y = c.H - r
		s.reflect(e.rng, false)
	}
}

// reflect bounces the velocity off a vertical wall (xWall) or a horizontal
// one. Most bounces mirror about the wall normal with a jittered angle; the
// rest are a plain axis flip. Speed magnitude is preserved either way.
func (s *BounceState) reflect(rng Rand, xWall bool) {
	if rng.Float64() < bouncePlainChance {
		if xWall {
			s.Velocity.X = -s.Velocity.X
		} else {
			s.Velocity.Y = -s.Velocity.Y
		}
		return
	}

	v := s.Velocity
	mag := math.Hypot(v.X, v.Y)
	current := math.Atan2(v.Y, v.X)

	ideal := -current
	if xWall {
		ideal = math.Pi - current
	}
	angle := ideal + rng.Float64()*2*bounceJitter - bounceJitter

	s.Velocity = Vec2{X: mag * math.Cos(angle), Y: mag * math.Sin(angle)}
}
