package speedcurve

import (
	"fmt"
	"math"
)

// Scale multiplies every slot of row by the resolution factor, rounding to
// two decimals.
func Scale(row Row, factor float64) (Row, error) {
	if !validFactor(factor) {
		return Row{}, fmt.Errorf("%w: %v", ErrInvalidFactor, factor)
	}
	var out Row
	for i, s := range row {
		out[i] = round2(s * factor)
	}
	return out, nil
}

// ScaleValue scales a single slot. Used when one pattern's speed is restored
// from the table.
func ScaleValue(v, factor float64) (float64, error) {
	if !validFactor(factor) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidFactor, factor)
	}
	return round2(v * factor), nil
}

func validFactor(f float64) bool {
	return f > 0 && !math.IsInf(f, 0) && !math.IsNaN(f)
}
