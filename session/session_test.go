package session

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/automoto/focusball/mode"
	"github.com/automoto/focusball/motion"
	"github.com/automoto/focusball/speedcurve"
)

var testCanvas = motion.Canvas{W: 1280, H: 720}

func newTestSession(t *testing.T) *Session {
	t.Helper()
	s, err := New(DefaultConfig(), rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func TestNewLoadsAnchorRow(t *testing.T) {
	s := newTestSession(t)
	want := DefaultConfig().Base
	if got := s.Settings().Speeds; got != want {
		t.Errorf("speeds = %v, want base %v", got, want)
	}
	if s.Level() != motion.LevelHorizontal || s.Speed() != 1000 {
		t.Errorf("level %v speed %v", s.Level(), s.Speed())
	}
	if s.Radius() != 30 {
		t.Errorf("radius = %v, want 30", s.Radius())
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"empty grid", func(c *Config) { c.Tiers = 0 }, speedcurve.ErrInvalidGrid},
		{"tier out of range", func(c *Config) { c.Tier = 16 }, speedcurve.ErrOutOfRange},
		{"zero resolution", func(c *Config) { c.Resolution = 0 }, speedcurve.ErrInvalidFactor},
		{"unknown level", func(c *Config) { c.Level = 11 }, motion.ErrUnknownLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			_, err := New(cfg, rand.New(rand.NewSource(1)))
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestTierSelection(t *testing.T) {
	s := newTestSession(t)
	if err := s.SetTier(0); err != nil {
		t.Fatal(err)
	}
	if err := s.SetSublevel(0); err != nil {
		t.Fatal(err)
	}
	if got := s.Settings().Speeds[0]; got != 200 {
		t.Errorf("lowest row speed[0] = %v, want 200", got)
	}
	if err := s.SetTier(99); !errors.Is(err, speedcurve.ErrOutOfRange) {
		t.Errorf("err = %v, want ErrOutOfRange", err)
	}
	if s.Tier() != 0 {
		t.Errorf("tier = %d after rejected change", s.Tier())
	}
}

func TestResolutionScalesRow(t *testing.T) {
	s := newTestSession(t)
	if err := s.SetResolution(0.67); err != nil {
		t.Fatal(err)
	}
	want, _ := speedcurve.Scale(DefaultConfig().Base, 0.67)
	if got := s.Settings().Speeds; got != want {
		t.Errorf("speeds = %v, want %v", got, want)
	}
	if err := s.SetResolution(math.Inf(1)); !errors.Is(err, speedcurve.ErrInvalidFactor) {
		t.Errorf("err = %v", err)
	}
	if s.Resolution() != 0.67 {
		t.Errorf("resolution = %v after rejected change", s.Resolution())
	}
}

func TestSpeedOverrideAndRestore(t *testing.T) {
	s := newTestSession(t)
	_ = s.SetResolution(2)

	if err := s.SetSpeed(2, 123.45); err != nil {
		t.Fatal(err)
	}
	if got := s.Settings().Speeds[2]; got != 123.45 {
		t.Errorf("override = %v", got)
	}
	for _, bad := range []float64{math.NaN(), -1} {
		if err := s.SetSpeed(2, bad); !errors.Is(err, ErrInvalidValue) {
			t.Errorf("SetSpeed(%v) err = %v", bad, err)
		}
	}
	if got := s.Settings().Speeds[2]; got != 123.45 {
		t.Errorf("rejected value replaced override: %v", got)
	}

	if err := s.RestoreSpeed(2); err != nil {
		t.Fatal(err)
	}
	if got := s.Settings().Speeds[2]; got != 700 {
		t.Errorf("restored = %v, want 350*2", got)
	}
}

func TestChangeSpeed(t *testing.T) {
	s := newTestSession(t)
	s.ChangeSpeed(1)
	if s.Speed() != 1050 {
		t.Errorf("speed up = %v, want 1050", s.Speed())
	}
	s.ChangeSpeed(-1)
	if s.Speed() != 997.5 {
		t.Errorf("speed down = %v, want 997.5", s.Speed())
	}

	_ = s.SetSpeedIncrement(10)
	s.ChangeSpeed(1)
	if s.Speed() != 1097.25 {
		t.Errorf("speed up 10%% = %v, want 1097.25", s.Speed())
	}
	if err := s.SetSpeedIncrement(0); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("err = %v", err)
	}
}

func TestSize(t *testing.T) {
	s := newTestSession(t)
	tests := []struct {
		in, want float64
	}{
		{50, 50},
		{500, 200},
		{5, 15},
	}
	for _, tt := range tests {
		if err := s.SetSize(tt.in); err != nil {
			t.Fatal(err)
		}
		if got := s.Settings().SizePercent; got != tt.want {
			t.Errorf("SetSize(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if err := s.SetSize(math.NaN()); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("err = %v", err)
	}
	s.ChangeSize(10)
	if got := s.Radius(); got != 7.5 {
		t.Errorf("radius = %v, want 7.5", got)
	}
}

func TestLevelNavigation(t *testing.T) {
	s := newTestSession(t)
	s.PrevLevel()
	if s.Level() != motion.LevelPeek {
		t.Errorf("Prev from 1 = %v, want Peek", s.Level())
	}
	s.NextLevel()
	if s.Level() != motion.LevelHorizontal {
		t.Errorf("Next from 8 = %v", s.Level())
	}
	if err := s.SelectLevel(motion.LevelClock); err != nil {
		t.Fatal(err)
	}
	if err := s.SelectLevel(0); !errors.Is(err, motion.ErrUnknownLevel) {
		t.Errorf("err = %v", err)
	}
	if s.Level() != motion.LevelClock {
		t.Errorf("level = %v", s.Level())
	}
}

func TestLevelChangeRestartsRound(t *testing.T) {
	s := newTestSession(t)
	f := s.Tick(10, testCanvas)
	if f.Remaining != "00:20" {
		t.Fatalf("remaining = %q", f.Remaining)
	}
	s.NextLevel()
	f = s.Tick(0.5, testCanvas)
	if f.Remaining != "00:29" {
		t.Errorf("remaining after level change = %q, want fresh round", f.Remaining)
	}
	if f.Elapsed != "00:00:10" {
		t.Errorf("elapsed = %q, want session clock kept", f.Elapsed)
	}
	if _, ok := s.engine.State().(*motion.SweepState); !ok || s.engine.Level() != motion.LevelVertical {
		t.Errorf("engine on %v with %T", s.engine.Level(), s.engine.State())
	}
}

func TestTickStaysOnCanvas(t *testing.T) {
	s := newTestSession(t)
	r := s.Radius()
	for i := 0; i < 600; i++ {
		f := s.Tick(1.0/60, testCanvas)
		if f.Position.X < r || f.Position.X > testCanvas.W-r || f.Position.Y < r || f.Position.Y > testCanvas.H-r {
			t.Fatalf("frame %d: %v off canvas", i, f.Position)
		}
	}
}

func TestAutoAdvanceAndFlash(t *testing.T) {
	s := newTestSession(t)
	if err := s.SetRoundDuration(1); err != nil {
		t.Fatal(err)
	}
	s.SetAutoAdvance(true)

	f := s.Tick(1.5, testCanvas)
	if !f.RoundEnded || !f.Flash {
		t.Fatalf("frame = %+v, want round end with flash", f)
	}
	if f.Level != motion.LevelVertical {
		t.Errorf("level = %v, want advanced to Vertical", f.Level)
	}
	if f.Background != f.Palette.Flash {
		t.Errorf("background = %v, want flash colour", f.Background)
	}

	s.SetFlashDisabled(true)
	f = s.Tick(1, testCanvas)
	if !f.RoundEnded || f.Flash || f.Background != f.Palette.Background {
		t.Errorf("frame with flash disabled = %+v", f)
	}
}

func TestSetRoundDurationRejectsInvalid(t *testing.T) {
	s := newTestSession(t)
	for _, d := range []float64{0, -2, math.NaN()} {
		if err := s.SetRoundDuration(d); err == nil {
			t.Errorf("SetRoundDuration(%v) accepted", d)
		}
	}
	if got := s.Settings().RoundDuration; got != 30 {
		t.Errorf("duration = %v, want 30 kept", got)
	}
}

func TestMeditationToggle(t *testing.T) {
	s := newTestSession(t)
	_ = s.SelectLevel(motion.LevelSpiral)
	_ = s.SetSpeed(0, 999)
	_ = s.SetSize(80)
	before := s.Settings()

	on, err := s.ToggleMeditation()
	if err != nil || !on {
		t.Fatalf("ToggleMeditation = %v, %v", on, err)
	}
	if s.Level() != motion.LevelHorizontal {
		t.Errorf("level = %v, want forced to Horizontal", s.Level())
	}
	if got := s.Settings().Speeds; got != mode.Meditation.Speeds {
		t.Errorf("speeds = %v", got)
	}
	if s.Radius() != 30 {
		t.Errorf("radius = %v, want meditation size", s.Radius())
	}

	if err := s.SetTier(3); !errors.Is(err, ErrRestricted) {
		t.Errorf("SetTier err = %v", err)
	}
	if err := s.SetResolution(2); !errors.Is(err, ErrRestricted) {
		t.Errorf("SetResolution err = %v", err)
	}
	if err := s.SelectLevel(motion.LevelClock); !errors.Is(err, ErrRestricted) {
		t.Errorf("SelectLevel err = %v", err)
	}

	s.ChangeSpeed(1)
	if err := s.RestoreSpeed(0); err != nil {
		t.Fatal(err)
	}
	if s.Speed() != 75 {
		t.Errorf("restored meditation speed = %v", s.Speed())
	}

	f := s.Tick(1, testCanvas)
	if !f.Meditation || f.Breath.Label != "Inhale..." {
		t.Errorf("breath = %+v", f.Breath)
	}
	s.NextLevel()
	if s.Level() != motion.LevelVertical {
		t.Errorf("meditation next = %v", s.Level())
	}

	on, err = s.ToggleMeditation()
	if err != nil || on {
		t.Fatalf("ToggleMeditation = %v, %v", on, err)
	}
	if got := s.Settings(); got != before {
		t.Errorf("settings after exit = %+v, want %+v", got, before)
	}
	if f := s.Tick(1, testCanvas); f.Meditation || f.Breath.Label != "" {
		t.Errorf("breath drawn outside meditation: %+v", f.Breath)
	}
}

func TestMeditationResetsBreath(t *testing.T) {
	s := newTestSession(t)
	_, _ = s.ToggleMeditation()
	s.Tick(5, testCanvas)
	_, _ = s.ToggleMeditation()
	_, _ = s.ToggleMeditation()
	f := s.Tick(0.001, testCanvas)
	if f.Breath.Phase.String() != "inhale" || f.Breath.Progress > 0.01 {
		t.Errorf("breath after toggle = %+v", f.Breath)
	}
}
