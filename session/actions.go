package session

import (
	"fmt"
	"math"

	"github.com/automoto/focusball/mode"
	"github.com/automoto/focusball/motion"
	"github.com/automoto/focusball/speedcurve"
)

// SetTier selects a zero-based tier and loads its row.
func (s *Session) SetTier(tier int) error {
	if s.modes.Restricted() {
		return ErrRestricted
	}
	if _, err := s.table.At(tier, s.sublevel); err != nil {
		return err
	}
	s.tier = tier
	return s.loadRow()
}

// SetSublevel selects a zero-based sublevel within the current tier.
func (s *Session) SetSublevel(sublevel int) error {
	if s.modes.Restricted() {
		return ErrRestricted
	}
	if _, err := s.table.At(s.tier, sublevel); err != nil {
		return err
	}
	s.sublevel = sublevel
	return s.loadRow()
}

// SetResolution changes the display-class factor and reloads the row.
func (s *Session) SetResolution(factor float64) error {
	if s.modes.Restricted() {
		return ErrRestricted
	}
	if _, err := speedcurve.ScaleValue(1, factor); err != nil {
		return err
	}
	s.resolution = factor
	return s.loadRow()
}

// loadRow replaces every live speed with the selected table row scaled by
// the resolution factor, discarding manual overrides.
func (s *Session) loadRow() error {
	row, err := s.table.At(s.tier, s.sublevel)
	if err != nil {
		return err
	}
	scaled, err := speedcurve.Scale(row, s.resolution)
	if err != nil {
		return err
	}
	s.live.Speeds = scaled
	s.resetLevel()
	return nil
}

// SetSpeed overrides one pattern's live speed until the row is reloaded or
// the slot restored.
func (s *Session) SetSpeed(slot int, v float64) error {
	if s.modes.Restricted() {
		return ErrRestricted
	}
	if slot < 0 || slot >= speedcurve.PatternCount {
		return fmt.Errorf("%w: slot %d", ErrInvalidValue, slot)
	}
	if v < 0 || !finite(v) {
		return fmt.Errorf("%w: speed %v", ErrInvalidValue, v)
	}
	s.live.Speeds[slot] = v
	return nil
}

// RestoreSpeed recomputes one slot from its default: the table row in
// normal mode, the meditation preset otherwise.
func (s *Session) RestoreSpeed(slot int) error {
	if slot < 0 || slot >= speedcurve.PatternCount {
		return fmt.Errorf("%w: slot %d", ErrInvalidValue, slot)
	}
	if s.modes.Restricted() {
		v, err := s.modes.RestoreSpeed(slot, s.resolution)
		if err != nil {
			return err
		}
		s.live.Speeds[slot] = v
		return nil
	}

	row, err := s.table.At(s.tier, s.sublevel)
	if err != nil {
		return err
	}
	v, err := speedcurve.ScaleValue(row[slot], s.resolution)
	if err != nil {
		return err
	}
	s.live.Speeds[slot] = v
	return nil
}

// ChangeSpeed nudges the current level's speed by one increment. dir is +1
// or -1.
func (s *Session) ChangeSpeed(dir int) {
	slot := s.level.Slot()
	v := s.live.Speeds[slot] * (1 + float64(dir)*s.increment/100)
	s.live.Speeds[slot] = math.Round(v*100) / 100
}

// SetSpeedIncrement sets the ChangeSpeed step in percent.
func (s *Session) SetSpeedIncrement(percent float64) error {
	if !(percent > 0) || !finite(percent) {
		return fmt.Errorf("%w: increment %v", ErrInvalidValue, percent)
	}
	s.increment = percent
	return nil
}

// SetSize sets the target size percent, clamped to the configured range.
func (s *Session) SetSize(percent float64) error {
	if !finite(percent) {
		return fmt.Errorf("%w: size %v", ErrInvalidValue, percent)
	}
	s.live.SizePercent = s.clampSize(percent)
	return nil
}

// ChangeSize adds delta percent to the target size.
func (s *Session) ChangeSize(delta float64) {
	if !finite(delta) {
		return
	}
	s.live.SizePercent = s.clampSize(s.live.SizePercent + delta)
}

func (s *Session) clampSize(p float64) float64 {
	if !finite(p) {
		p = 100
	}
	return math.Min(s.cfg.MaxSize, math.Max(s.cfg.MinSize, p))
}

// NextLevel moves to the following level and starts a fresh round.
func (s *Session) NextLevel() {
	s.level = s.modes.Next(s.level)
	s.resetLevel()
}

// PrevLevel moves to the preceding level and starts a fresh round.
func (s *Session) PrevLevel() {
	s.level = s.modes.Prev(s.level)
	s.resetLevel()
}

// SelectLevel jumps to level. Meditation mode only accepts its own levels.
func (s *Session) SelectLevel(level motion.LevelID) error {
	if !level.Valid() {
		return fmt.Errorf("%w: %d", motion.ErrUnknownLevel, int(level))
	}
	if !s.modes.Select(level) {
		return fmt.Errorf("%w: level %v", ErrRestricted, level)
	}
	s.level = level
	s.resetLevel()
	return nil
}

// RestartRound starts the current round again without changing level.
func (s *Session) RestartRound() {
	s.resetLevel()
}

// SetRoundDuration changes the round length. The current round restarts.
func (s *Session) SetRoundDuration(seconds float64) error {
	if err := s.timer.SetDuration(seconds); err != nil {
		return err
	}
	s.live.RoundDuration = seconds
	return nil
}

func (s *Session) SetAutoAdvance(on bool) {
	s.live.AutoAdvance = on
	s.timer.SetAutoAdvance(on)
}

func (s *Session) SetFlashDisabled(off bool) {
	s.timer.SetFlashDisabled(off)
}

// SetPalette replaces the four colours.
func (s *Session) SetPalette(p mode.Palette) {
	s.live.Palette = p
}

// ToggleMeditation enters or leaves meditation mode and reports the new
// state. The breathing overlay restarts on every toggle.
func (s *Session) ToggleMeditation() (bool, error) {
	if s.modes.Restricted() {
		s.modes.Exit(&s.live)
	} else {
		level, err := s.modes.Enter(&s.live, s.level, s.resolution)
		if err != nil {
			return false, err
		}
		s.level = level
	}

	s.breath.Reset()
	s.applySettings()
	s.resetLevel()
	return s.modes.Restricted(), nil
}
