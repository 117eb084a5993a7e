// Package session owns one training run: the speed table, the live
// settings, the motion engine, the round timer and the meditation overlay.
// A single driver loop calls Tick once per frame; every other method is a
// user action.
package session

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/automoto/focusball/breath"
	"github.com/automoto/focusball/mode"
	"github.com/automoto/focusball/motion"
	"github.com/automoto/focusball/round"
	"github.com/automoto/focusball/speedcurve"
)

var (
	ErrRestricted   = errors.New("session: not available in meditation mode")
	ErrInvalidValue = errors.New("session: invalid value")
)

// Config is everything a session needs at start-up.
type Config struct {
	Base      speedcurve.Row
	Tiers     int
	Sublevels int

	// Tier and Sublevel are zero-based.
	Tier       int
	Sublevel   int
	Resolution float64

	Level    motion.LevelID
	Settings mode.Settings

	BaseRadius     float64
	MinSize        float64
	MaxSize        float64
	SpeedIncrement float64
	FlashDisabled  bool

	Motion     motion.Config
	Meditation mode.Preset
	Breath     breath.Config
}

// DefaultConfig starts on tier 12, sublevel 1 of a 16x10 grid with the
// stock palette.
func DefaultConfig() Config {
	return Config{
		Base:       speedcurve.Row{1000, 1400, 350, 600, 600, 1800, 400, 200},
		Tiers:      16,
		Sublevels:  10,
		Tier:       speedcurve.AnchorTier,
		Sublevel:   speedcurve.AnchorSublevel,
		Resolution: 1,
		Level:      motion.LevelHorizontal,
		Settings: mode.Settings{
			Palette: mode.Palette{
				Ball:       color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
				Dot:        color.RGBA{A: 0xff},
				Background: color.RGBA{R: 0x11, G: 0x11, B: 0x11, A: 0xff},
				Flash:      color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff},
			},
			AutoAdvance:   false,
			SizePercent:   100,
			RoundDuration: round.DefaultDuration,
		},
		BaseRadius:     30,
		MinSize:        15,
		MaxSize:        200,
		SpeedIncrement: 5,
		Motion:         motion.DefaultConfig,
		Meditation:     mode.Meditation,
		Breath:         breath.DefaultConfig,
	}
}

// Session is the explicit state of one run.
type Session struct {
	cfg Config

	table      *speedcurve.Table
	tier       int
	sublevel   int
	resolution float64
	increment  float64

	level motion.LevelID
	live  mode.Settings
	// reenter is set by level resets; the next tick enters the level with
	// that frame's canvas.
	reenter bool

	engine *motion.Engine
	timer  *round.Controller
	modes  *mode.Controller
	breath *breath.Timer
}

// New builds a session and loads the configured tier row.
func New(cfg Config, rng motion.Rand) (*Session, error) {
	table, err := speedcurve.Generate(cfg.Base, cfg.Tiers, cfg.Sublevels)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	if _, err := table.At(cfg.Tier, cfg.Sublevel); err != nil {
		return nil, fmt.Errorf("session: start row: %w", err)
	}
	if _, err := speedcurve.ScaleValue(1, cfg.Resolution); err != nil {
		return nil, fmt.Errorf("session: resolution: %w", err)
	}
	if !cfg.Level.Valid() {
		return nil, fmt.Errorf("session: %w", motion.ErrUnknownLevel)
	}
	if !(cfg.BaseRadius > 0) {
		cfg.BaseRadius = 30
	}
	if !(cfg.MinSize > 0) || cfg.MaxSize < cfg.MinSize {
		cfg.MinSize, cfg.MaxSize = 15, 200
	}

	s := &Session{
		cfg:        cfg,
		table:      table,
		tier:       cfg.Tier,
		sublevel:   cfg.Sublevel,
		resolution: cfg.Resolution,
		increment:  cfg.SpeedIncrement,
		level:      cfg.Level,
		live:       cfg.Settings,
		engine:     motion.NewEngine(cfg.Motion, rng),
		modes:      mode.NewController(cfg.Meditation),
		breath:     breath.NewTimer(cfg.Breath),
	}
	s.live.SizePercent = s.clampSize(s.live.SizePercent)
	s.timer = round.NewController(s.live.RoundDuration, s.live.AutoAdvance, s)
	s.timer.SetFlashDisabled(cfg.FlashDisabled)
	s.live.RoundDuration = s.timer.Duration()

	if err := s.loadRow(); err != nil {
		return nil, err
	}
	return s, nil
}

// Tick runs one frame: timer, then motion, then the breathing overlay.
func (s *Session) Tick(dt float64, canvas motion.Canvas) Frame {
	s.engine.SetRadius(s.Radius())

	status := s.timer.Tick(dt)
	if s.reenter {
		s.reenter = false
		if err := s.engine.EnterLevel(s.level, canvas); err != nil {
			log.Printf("Warning: enter level: %v", err)
		}
	}

	pos, err := s.engine.Advance(s.level, dt, s.Speed(), canvas)
	if err != nil {
		log.Printf("Warning: motion: %v", err)
	}

	f := Frame{
		Position:   pos,
		Radius:     s.Radius(),
		Level:      s.level,
		Speed:      s.Speed(),
		Palette:    s.live.Palette,
		Background: s.live.Palette.Background,
		Flash:      status.FlashActive,
		RoundEnded: status.RoundEnded,
		Hints:      s.engine.Hints(),
		Elapsed:    round.FormatHMS(status.Elapsed),
		Remaining:  round.FormatMS(status.RoundRemaining),
		Meditation: s.modes.Restricted(),
	}
	if f.Flash {
		f.Background = s.live.Palette.Flash
	}
	if f.Meditation {
		f.Breath = s.breath.Update(dt)
	}
	return f
}

// AdvanceLevel moves to the next level. The round timer calls it when a
// round ends with auto-advance on.
func (s *Session) AdvanceLevel() {
	s.NextLevel()
}

func (s *Session) Level() motion.LevelID { return s.level }

func (s *Session) Tier() int { return s.tier }

func (s *Session) Sublevel() int { return s.sublevel }

func (s *Session) Resolution() float64 { return s.resolution }

func (s *Session) Table() *speedcurve.Table { return s.table }

// Settings returns a copy of the live settings.
func (s *Session) Settings() mode.Settings { return s.live }

func (s *Session) Meditation() bool { return s.modes.Restricted() }

func (s *Session) FlashDisabled() bool { return s.timer.FlashDisabled() }

func (s *Session) SpeedIncrement() float64 { return s.increment }

// Position returns the target position as of the last tick.
func (s *Session) Position() motion.Vec2 { return s.engine.Position() }

// Speed returns the live speed of the current level.
func (s *Session) Speed() float64 {
	return s.live.Speeds[s.level.Slot()]
}

// Radius returns the target radius for the current size.
func (s *Session) Radius() float64 {
	return s.cfg.BaseRadius * s.live.SizePercent / 100
}

// MeditationLevels returns the levels reachable in meditation mode.
func (s *Session) MeditationLevels() []motion.LevelID { return s.modes.Levels() }

// Allowed reports whether level can be selected right now.
func (s *Session) Allowed(level motion.LevelID) bool { return s.modes.Allowed(level) }

// resetLevel restarts the round and schedules a fresh entry into the
// current level.
func (s *Session) resetLevel() {
	s.timer.Restart()
	s.reenter = true
}

// applySettings pushes live settings that other components hold a copy of.
func (s *Session) applySettings() {
	if err := s.timer.SetDuration(s.live.RoundDuration); err != nil {
		log.Printf("Warning: round duration: %v", err)
		s.live.RoundDuration = s.timer.Duration()
	}
	s.timer.SetAutoAdvance(s.live.AutoAdvance)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
