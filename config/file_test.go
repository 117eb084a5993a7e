package config

import (
	"errors"
	"image/color"
	"testing"

	"github.com/automoto/focusball/motion"
	"github.com/automoto/focusball/speedcurve"
	"gopkg.in/ini.v1"
)

// keepDefaults restores the package configuration after a test.
func keepDefaults(t *testing.T) {
	t.Helper()
	c, curve, target, rnd := *C, Curve, Target, Round
	med, ov, panel := Meditation, Overlay, Panel
	t.Cleanup(func() {
		*C, Curve, Target, Round = c, curve, target, rnd
		Meditation, Overlay, Panel = med, ov, panel
	})
}

func TestLoadOverrides(t *testing.T) {
	keepDefaults(t)

	src := []byte(`
[window]
width = 1600
height = 900

[curve]
base = 500, 700, 175, 300, 300, 900, 200, 100
tier = 3
sublevel = 10
screen = 4
increment = 2.5

[target]
size = 80
ball = #d3a047
background = #222 ; dark grey
level = 7

[round]
duration = 45
auto_advance = true
flash = false

[overlay]
hashtag = true
solid = yes

[meditation]
enabled = on
`)
	if err := Load(src); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if C.Width != 1600 || C.Height != 900 {
		t.Errorf("window = %dx%d", C.Width, C.Height)
	}
	if want := (speedcurve.Row{500, 700, 175, 300, 300, 900, 200, 100}); Curve.Base != want {
		t.Errorf("base = %v", Curve.Base)
	}
	if Curve.Tier != 2 || Curve.Sublevel != 9 || Curve.ScreenType != 3 {
		t.Errorf("selection = tier %d sublevel %d screen %d", Curve.Tier, Curve.Sublevel, Curve.ScreenType)
	}
	if Curve.SpeedIncrement != 2.5 {
		t.Errorf("increment = %v", Curve.SpeedIncrement)
	}
	if Target.SizePercent != 80 || Target.StartLevel != motion.LevelClock {
		t.Errorf("target = %+v", Target)
	}
	if want := (color.RGBA{R: 0xd3, G: 0xa0, B: 0x47, A: 0xff}); Target.Palette.Ball != want {
		t.Errorf("ball = %v", Target.Palette.Ball)
	}
	if want := (color.RGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff}); Target.Palette.Background != want {
		t.Errorf("background = %v", Target.Palette.Background)
	}
	if Round.Duration != 45 || !Round.AutoAdvance || !Round.FlashDisabled {
		t.Errorf("round = %+v", Round)
	}
	if !Overlay.Hashtag || !Overlay.Solid || Overlay.VerticalStripes {
		t.Errorf("overlay = %+v", Overlay)
	}
	if !Meditation.StartEnabled {
		t.Error("meditation not enabled")
	}
}

func TestApplyRejectsBadValues(t *testing.T) {
	keepDefaults(t)
	before := Curve

	f, err := ini.Load([]byte(`
[curve]
base = 1, 2, 3
tier = 0
sublevel = 11
screen = nine

[target]
size = 500
dot = not-a-colour
level = 9

[round]
duration = -3
auto_advance = maybe
`))
	if err != nil {
		t.Fatal(err)
	}

	errs := apply(f)
	if len(errs) != 9 {
		t.Errorf("got %d errors, want 9: %v", len(errs), errs)
	}
	for _, err := range errs {
		if !errors.Is(err, ErrBadValue) {
			t.Errorf("error %v is not ErrBadValue", err)
		}
	}
	if Curve != before {
		t.Errorf("curve changed: %+v", Curve)
	}
	if Target.SizePercent != 100 || Target.StartLevel != motion.LevelHorizontal {
		t.Errorf("target changed: %+v", Target)
	}
	if Round.Duration != 30 || Round.AutoAdvance {
		t.Errorf("round changed: %+v", Round)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if err := Load("testdata/does-not-exist.ini"); err == nil {
		t.Error("Load of a missing file succeeded")
	}
}

func TestScreenFactor(t *testing.T) {
	tests := []struct {
		i    int
		want float64
	}{
		{0, 0.67},
		{2, 1},
		{4, 2},
		{-1, 1},
		{len(Screens.Types), 1},
	}
	for _, tt := range tests {
		if got := ScreenFactor(tt.i); got != tt.want {
			t.Errorf("ScreenFactor(%d) = %v, want %v", tt.i, got, tt.want)
		}
	}
}
