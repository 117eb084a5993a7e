package config

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/automoto/focusball/mode"
	"github.com/automoto/focusball/motion"
	"github.com/automoto/focusball/speedcurve"
	"gopkg.in/ini.v1"
)

var ErrBadValue = errors.New("config: bad value")

// Load applies overrides from an INI file or byte slice on top of the
// package defaults. A bad value is logged and the default kept; only an
// unreadable source is returned as an error.
func Load(source interface{}) error {
	// Colours are written as #rrggbb, so only " #" starts a comment.
	f, err := ini.LoadSources(ini.LoadOptions{
		InsensitiveSections:      true,
		InsensitiveKeys:          true,
		SkipUnrecognizableLines:  true,
		SpaceBeforeInlineComment: true,
	}, source)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	for _, err := range apply(f) {
		log.Printf("Warning: %v", err)
	}
	return nil
}

// apply copies every recognised key into the package variables and returns
// the values it refused.
func apply(f *ini.File) []error {
	r := &reader{}

	win := f.Section("window")
	r.int(win, "width", &C.Width, positive)
	r.int(win, "height", &C.Height, positive)
	if win.HasKey("title") {
		C.Title = win.Key("title").String()
	}

	curve := f.Section("curve")
	r.row(curve, "base", &Curve.Base)
	r.int(curve, "tiers", &Curve.Tiers, positive)
	r.int(curve, "sublevels", &Curve.Sublevels, positive)
	// The file uses the one-based numbering shown in the panel.
	r.index(curve, "tier", &Curve.Tier, Curve.Tiers)
	r.index(curve, "sublevel", &Curve.Sublevel, Curve.Sublevels)
	r.index(curve, "screen", &Curve.ScreenType, len(Screens.Types))
	r.float(curve, "increment", &Curve.SpeedIncrement, positiveFloat)

	target := f.Section("target")
	r.float(target, "size", &Target.SizePercent, func(v float64) bool {
		return v >= Target.MinSize && v <= Target.MaxSize
	})
	r.color(target, "ball", &Target.Palette.Ball)
	r.color(target, "dot", &Target.Palette.Dot)
	r.color(target, "background", &Target.Palette.Background)
	r.color(target, "flash", &Target.Palette.Flash)
	if target.HasKey("level") {
		lvl, err := target.Key("level").Int()
		if err != nil || !motion.LevelID(lvl).Valid() {
			r.fail(target, "level", target.Key("level").String())
		} else {
			Target.StartLevel = motion.LevelID(lvl)
		}
	}

	rnd := f.Section("round")
	r.float(rnd, "duration", &Round.Duration, positiveFloat)
	r.bool(rnd, "auto_advance", &Round.AutoAdvance)
	if rnd.HasKey("flash") {
		var on bool
		if r.bool(rnd, "flash", &on) {
			Round.FlashDisabled = !on
		}
	}

	ov := f.Section("overlay")
	r.bool(ov, "hashtag", &Overlay.Hashtag)
	r.bool(ov, "vertical_stripes", &Overlay.VerticalStripes)
	r.bool(ov, "horizontal_stripes", &Overlay.HorizontalStripes)
	r.bool(ov, "solid", &Overlay.Solid)

	r.bool(f.Section("meditation"), "enabled", &Meditation.StartEnabled)
	r.bool(f.Section("panel"), "visible", &Panel.Visible)

	return r.errs
}

type reader struct {
	errs []error
}

func (r *reader) fail(sec *ini.Section, key, raw string) {
	r.errs = append(r.errs, fmt.Errorf("%w: [%s] %s = %q", ErrBadValue, sec.Name(), key, raw))
}

func (r *reader) int(sec *ini.Section, key string, dst *int, ok func(int) bool) {
	if !sec.HasKey(key) {
		return
	}
	v, err := sec.Key(key).Int()
	if err != nil || !ok(v) {
		r.fail(sec, key, sec.Key(key).String())
		return
	}
	*dst = v
}

// index reads a one-based position in [1, n] into a zero-based dst.
func (r *reader) index(sec *ini.Section, key string, dst *int, n int) {
	var v int
	r.int(sec, key, &v, func(i int) bool { return i >= 1 && i <= n })
	if sec.HasKey(key) && v >= 1 {
		*dst = v - 1
	}
}

func (r *reader) float(sec *ini.Section, key string, dst *float64, ok func(float64) bool) {
	if !sec.HasKey(key) {
		return
	}
	v, err := sec.Key(key).Float64()
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || !ok(v) {
		r.fail(sec, key, sec.Key(key).String())
		return
	}
	*dst = v
}

func (r *reader) bool(sec *ini.Section, key string, dst *bool) bool {
	if !sec.HasKey(key) {
		return false
	}
	v, err := sec.Key(key).Bool()
	if err != nil {
		r.fail(sec, key, sec.Key(key).String())
		return false
	}
	*dst = v
	return true
}

func (r *reader) color(sec *ini.Section, key string, dst *color.RGBA) {
	if !sec.HasKey(key) {
		return
	}
	raw := sec.Key(key).String()
	c, err := mode.ParseHex(raw)
	if err != nil {
		r.fail(sec, key, raw)
		return
	}
	*dst = c
}

func (r *reader) row(sec *ini.Section, key string, dst *speedcurve.Row) {
	if !sec.HasKey(key) {
		return
	}
	vals, err := sec.Key(key).StrictFloat64s(",")
	if err != nil || len(vals) != speedcurve.PatternCount {
		r.fail(sec, key, sec.Key(key).String())
		return
	}
	var row speedcurve.Row
	for i, v := range vals {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			r.fail(sec, key, sec.Key(key).String())
			return
		}
		row[i] = v
	}
	*dst = row
}

func positive(v int) bool { return v > 0 }

func positiveFloat(v float64) bool { return v > 0 }
