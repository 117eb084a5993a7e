package round

import (
	"errors"
	"math"
	"testing"
)

type countingAdvancer struct{ calls int }

func (a *countingAdvancer) AdvanceLevel() { a.calls++ }

func TestTickCountsDown(t *testing.T) {
	c := NewController(30, false, nil)
	st := c.Tick(0.5)
	if st.Elapsed != 0.5 || st.RoundRemaining != 29.5 {
		t.Errorf("status = %+v", st)
	}
	if st.RoundEnded || st.FlashActive {
		t.Errorf("unexpected event: %+v", st)
	}
}

func TestRoundExpiryWithAutoAdvance(t *testing.T) {
	adv := &countingAdvancer{}
	c := NewController(30, true, adv)
	c.remaining = 0.01

	st := c.Tick(0.02)
	if !st.RoundEnded {
		t.Fatal("round did not end")
	}
	if st.RoundRemaining != 30 {
		t.Errorf("remaining = %v, want 30", st.RoundRemaining)
	}
	if !st.FlashActive {
		t.Error("flash not active after expiry")
	}
	if adv.calls != 1 {
		t.Errorf("advancer called %d times, want 1", adv.calls)
	}

	st = c.Tick(0.016)
	if st.RoundEnded {
		t.Error("second tick raised another event")
	}
	if adv.calls != 1 {
		t.Errorf("advancer called %d times after second tick", adv.calls)
	}
}

func TestRoundExpiryWithoutAutoAdvance(t *testing.T) {
	adv := &countingAdvancer{}
	c := NewController(10, false, adv)

	st := c.Tick(10)
	if !st.RoundEnded || st.RoundRemaining != 10 {
		t.Errorf("status = %+v", st)
	}
	if adv.calls != 0 {
		t.Errorf("advancer called %d times with auto-advance off", adv.calls)
	}
}

func TestLongStepEndsOneRound(t *testing.T) {
	adv := &countingAdvancer{}
	c := NewController(30, true, adv)

	st := c.Tick(31)
	if !st.RoundEnded || !st.FlashActive {
		t.Fatalf("status = %+v", st)
	}
	if st.RoundRemaining != 30 {
		t.Errorf("remaining = %v, want 30", st.RoundRemaining)
	}
	if adv.calls != 1 {
		t.Errorf("advancer called %d times, want 1", adv.calls)
	}
	if st.Elapsed != 31 {
		t.Errorf("elapsed = %v, want 31", st.Elapsed)
	}
}

func TestFlashWindow(t *testing.T) {
	c := NewController(5, false, nil)
	c.Tick(5)

	if !c.FlashActive() {
		t.Fatal("flash not armed")
	}
	c.Tick(0.6)
	if !c.FlashActive() {
		t.Error("flash ended early")
	}
	c.Tick(0.5)
	if c.FlashActive() {
		t.Errorf("flash still active with %v left", c.FlashRemaining())
	}
	if c.FlashRemaining() != 0 {
		t.Errorf("flash remaining = %v, want clamped to 0", c.FlashRemaining())
	}
}

func TestFlashDisabled(t *testing.T) {
	c := NewController(1, false, nil)
	c.SetFlashDisabled(true)
	st := c.Tick(2)
	if !st.RoundEnded {
		t.Fatal("round did not end")
	}
	if st.FlashActive {
		t.Error("flash armed while disabled")
	}

	c.SetFlashDisabled(false)
	c.Tick(1)
	if !c.FlashActive() {
		t.Error("flash not armed after re-enabling")
	}
	c.SetFlashDisabled(true)
	if c.FlashActive() || c.FlashRemaining() != 0 {
		t.Error("disabling did not cut the active flash")
	}
}

func TestSetDuration(t *testing.T) {
	tests := []struct {
		name    string
		d       float64
		wantErr bool
	}{
		{"positive", 45, false},
		{"fractional", 0.5, false},
		{"zero", 0, true},
		{"negative", -5, true},
		{"nan", math.NaN(), true},
		{"inf", math.Inf(1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewController(30, false, nil)
			c.Tick(12)
			err := c.SetDuration(tt.d)

			if tt.wantErr {
				if !errors.Is(err, ErrInvalidDuration) {
					t.Fatalf("err = %v, want ErrInvalidDuration", err)
				}
				if c.Duration() != 30 || c.Remaining() != 18 {
					t.Errorf("rejected value changed state: duration %v remaining %v", c.Duration(), c.Remaining())
				}
				return
			}
			if err != nil {
				t.Fatalf("SetDuration: %v", err)
			}
			if c.Duration() != tt.d || c.Remaining() != tt.d {
				t.Errorf("duration %v remaining %v, want %v", c.Duration(), c.Remaining(), tt.d)
			}
			if c.Elapsed() != 12 {
				t.Errorf("elapsed = %v, want untouched", c.Elapsed())
			}
		})
	}
}

func TestNewControllerInvalidDuration(t *testing.T) {
	c := NewController(-1, false, nil)
	if c.Duration() != DefaultDuration {
		t.Errorf("duration = %v, want default", c.Duration())
	}
}

func TestRestartKeepsElapsed(t *testing.T) {
	c := NewController(30, false, nil)
	c.Tick(7)
	c.Restart()
	if c.Remaining() != 30 || c.Elapsed() != 7 {
		t.Errorf("remaining %v elapsed %v", c.Remaining(), c.Elapsed())
	}
	c.ResetElapsed()
	if c.Elapsed() != 0 {
		t.Errorf("elapsed = %v after reset", c.Elapsed())
	}
}

func TestTickIgnoresBadTimestep(t *testing.T) {
	c := NewController(30, false, nil)
	for _, dt := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		st := c.Tick(dt)
		if st.Elapsed != 0 || st.RoundRemaining != 30 {
			t.Errorf("dt=%v changed state: %+v", dt, st)
		}
	}
}

func TestAdvancerFunc(t *testing.T) {
	called := false
	c := NewController(1, true, AdvancerFunc(func() { called = true }))
	c.Tick(1.5)
	if !called {
		t.Error("advancer func not called")
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		in      float64
		hms, ms string
	}{
		{0, "00:00:00", "00:00"},
		{29.4, "00:00:29", "00:29"},
		{29.999, "00:00:29", "00:29"},
		{59.99, "00:00:59", "00:59"},
		{61, "00:01:01", "01:01"},
		{3725.5, "01:02:05", "62:05"},
		{-3, "00:00:00", "00:00"},
		{math.NaN(), "00:00:00", "00:00"},
		{math.Inf(-1), "00:00:00", "00:00"},
	}
	for _, tt := range tests {
		if got := FormatHMS(tt.in); got != tt.hms {
			t.Errorf("FormatHMS(%v) = %q, want %q", tt.in, got, tt.hms)
		}
		if got := FormatMS(tt.in); got != tt.ms {
			t.Errorf("FormatMS(%v) = %q, want %q", tt.in, got, tt.ms)
		}
	}
}

func TestFormatHugeClock(t *testing.T) {
	for _, v := range []float64{1e300, math.Inf(1)} {
		if got, want := FormatHMS(v), "596523:14:07"; got != want {
			t.Errorf("FormatHMS(%v) = %q, want %q", v, got, want)
		}
		if got, want := FormatMS(v), "35791394:07"; got != want {
			t.Errorf("FormatMS(%v) = %q, want %q", v, got, want)
		}
	}
}
