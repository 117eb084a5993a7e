// Package speedcurve derives per-pattern speed rows for every tier/sublevel
// pair from a single base row, and scales rows for the display class.
package speedcurve

import (
	"errors"
	"fmt"
	"math"
)

// PatternCount is the number of motion patterns a row carries a speed for.
const PatternCount = 8

const (
	// AnchorTier and AnchorSublevel locate the row equal to the base speeds
	// (tier "12", sublevel 1 in the one-based UI numbering).
	AnchorTier     = 11
	AnchorSublevel = 0

	MinDownFactor = 0.2
	MaxUpFactor   = 2.0
)

var (
	ErrInvalidGrid   = errors.New("speedcurve: tier and sublevel counts must be positive")
	ErrOutOfRange    = errors.New("speedcurve: tier/sublevel out of range")
	ErrInvalidFactor = errors.New("speedcurve: scale factor must be a positive finite number")
)

// Row holds one speed per pattern, indexed by level id - 1.
type Row [PatternCount]float64

// Table is an immutable grid of rows indexed by (tier, sublevel), zero-based.
type Table struct {
	tiers     int
	sublevels int
	rows      []Row
}

// Generate builds the table for the given base row and grid dimensions.
func Generate(base Row, tiers, sublevels int) (*Table, error) {
	if tiers <= 0 || sublevels <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidGrid, tiers, sublevels)
	}

	total := tiers * sublevels
	t := &Table{
		tiers:     tiers,
		sublevels: sublevels,
		rows:      make([]Row, total),
	}

	if total == 1 {
		t.rows[0] = base
		return t, nil
	}

	lastStep := total - 1
	anchorStep := AnchorStep(sublevels, lastStep)

	for step := 0; step < total; step++ {
		if step == anchorStep {
			t.rows[step] = base
			continue
		}
		factor := Factor(step, anchorStep, lastStep)
		var row Row
		for i, s := range base {
			row[i] = round2(s * factor)
		}
		t.rows[step] = row
	}
	return t, nil
}

// AnchorStep returns the flattened anchor ordinal, clamped to lastStep for
// grids with fewer tiers than the anchor tier.
func AnchorStep(sublevels, lastStep int) int {
	step := AnchorTier*sublevels + AnchorSublevel
	if step > lastStep {
		return lastStep
	}
	return step
}

// Factor returns the speed multiplier for a flattened step.
func Factor(step, anchorStep, lastStep int) float64 {
	switch {
	case step < anchorStep:
		progress := float64(anchorStep-step) / float64(anchorStep)
		return 1 - (1-MinDownFactor)*progress
	case step > anchorStep:
		progress := float64(step-anchorStep) / float64(lastStep-anchorStep)
		return 1 + (MaxUpFactor-1)*progress
	default:
		return 1
	}
}

// Tiers returns the tier count the table was generated with.
func (t *Table) Tiers() int { return t.tiers }

// Sublevels returns the sublevels-per-tier count.
func (t *Table) Sublevels() int { return t.sublevels }

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// Step flattens a zero-based (tier, sublevel) pair.
func (t *Table) Step(tier, sublevel int) (int, error) {
	if tier < 0 || tier >= t.tiers || sublevel < 0 || sublevel >= t.sublevels {
		return 0, fmt.Errorf("%w: tier %d sublevel %d", ErrOutOfRange, tier, sublevel)
	}
	return tier*t.sublevels + sublevel, nil
}

// At returns a copy of the row for a zero-based (tier, sublevel) pair.
func (t *Table) At(tier, sublevel int) (Row, error) {
	step, err := t.Step(tier, sublevel)
	if err != nil {
		return Row{}, err
	}
	return t.rows[step], nil
}

// RowAt returns the row for a flattened step.
func (t *Table) RowAt(step int) (Row, error) {
	if step < 0 || step >= len(t.rows) {
		return Row{}, fmt.Errorf("%w: step %d", ErrOutOfRange, step)
	}
	return t.rows[step], nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
