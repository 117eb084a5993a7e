package motion

import "math"

// ClockPhase is the leg of the clock cycle the target is on.
type ClockPhase int

const (
	ClockOutgoing ClockPhase = iota
	ClockIncoming
)

func (p ClockPhase) String() string {
	if p == ClockIncoming {
		return "incoming"
	}
	return "outgoing"
}

const (
	clockHours        = 12
	clockMaxRepeats   = 2
	clockSameAngle    = 0.25
	clockSameDistance = 0.25
	clockMinReach     = 0.25
)

// clockBand is one entry of the weighted distance distribution used on
// level entry.
type clockBand struct {
	cumulative float64
	lo, hi     float64
}

var clockEntryBands = [3]clockBand{
	{cumulative: 0.45, lo: 0.25, hi: 0.35},
	{cumulative: 0.80, lo: 0.35, hi: 0.50},
	{cumulative: 1.00, lo: 0.50, hi: 0.75},
}

// hourMemory caps how often level entry may pick the same hour in a row.
type hourMemory struct {
	last    int
	set     bool
	repeats int
}

// ClockState shoots the target from the centre out to a clock-hour point
// and back again.
type ClockState struct {
	Phase          ClockPhase
	TargetAngle    float64
	TargetDistance float64
	LastHour       int
	Repeats        int
}

func newClock(e *Engine, c Canvas) *ClockState {
	e.pos = c.center()

	hour := pickEntryHour(e.rng, &e.hours)
	return &ClockState{
		Phase:          ClockOutgoing,
		TargetAngle:    hourAngle(hour),
		TargetDistance: entryDistance(e.rng) * clockMaxDistance(c, e.radius),
		LastHour:       e.hours.last,
		Repeats:        e.hours.repeats,
	}
}

func (s *ClockState) Level() LevelID { return LevelClock }

func (s *ClockState) advance(e *Engine, dt, speed float64, c Canvas) {
	center := c.center()
	step := speed * dt

	dest := center
	if s.Phase == ClockOutgoing {
		dest = Vec2{
			X: center.X + s.TargetDistance*math.Cos(s.TargetAngle),
			Y: center.Y + s.TargetDistance*math.Sin(s.TargetAngle),
		}
	}

	dx, dy := dest.X-e.pos.X, dest.Y-e.pos.Y
	dist := math.Hypot(dx, dy)
	if dist > step {
		e.pos.X += dx / dist * step
		e.pos.Y += dy / dist * step
		return
	}

	e.pos = dest
	if s.Phase == ClockOutgoing {
		s.Phase = ClockIncoming
		return
	}
	s.nextTarget(e.rng, clockMaxDistance(c, e.radius))
	s.Phase = ClockOutgoing
}

// nextTarget picks the following hand: sometimes the same hour again,
// otherwise a different hour with a fresh length.
func (s *ClockState) nextTarget(rng Rand, maxDistance float64) {
	if rng.Float64() < clockSameAngle {
		if rng.Float64() >= clockSameDistance {
			s.TargetDistance = randRange(rng, clockMinReach, 1) * maxDistance
		}
		return
	}

	current := angleHour(s.TargetAngle)
	hour := rng.Intn(clockHours)
	for hour == current {
		hour = rng.Intn(clockHours)
	}
	s.TargetAngle = hourAngle(hour)
	s.TargetDistance = randRange(rng, clockMinReach, 1) * maxDistance
}

// pickEntryHour draws an hour, refusing a third consecutive repeat.
func pickEntryHour(rng Rand, m *hourMemory) int {
	hour := rng.Intn(clockHours)
	for m.set && hour == m.last && m.repeats >= clockMaxRepeats {
		hour = rng.Intn(clockHours)
	}
	if m.set && hour == m.last {
		m.repeats++
	} else {
		m.last = hour
		m.set = true
		m.repeats = 1
	}
	return hour
}

// entryDistance draws a reach factor from the weighted entry bands.
func entryDistance(rng Rand) float64 {
	r := rng.Float64()
	for _, b := range clockEntryBands {
		if r < b.cumulative {
			return randRange(rng, b.lo, b.hi)
		}
	}
	last := clockEntryBands[len(clockEntryBands)-1]
	return randRange(rng, last.lo, last.hi)
}

func clockMaxDistance(c Canvas, radius float64) float64 {
	return math.Max(0, c.minDim()/2-radius)
}

// hourAngle maps an hour (0 = twelve o'clock) to an angle in radians.
func hourAngle(hour int) float64 {
	return float64(hour)*math.Pi/6 - math.Pi/2
}

func angleHour(angle float64) int {
	h := int(math.Round((angle + math.Pi/2) / (math.Pi / 6)))
	return ((h % clockHours) + clockHours) % clockHours
}
