package speedcurve

import (
	"errors"
	"math"
	"testing"
)

func TestScale(t *testing.T) {
	tests := []struct {
		name   string
		factor float64
		want   Row
	}{
		{"identity", 1, defaultBase},
		{"double", 2, Row{2000, 2800, 700, 1200, 1200, 3600, 800, 400}},
		{"quarter up", 1.25, Row{1250, 1750, 437.5, 750, 750, 2250, 500, 250}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Scale(defaultBase, tt.factor)
			if err != nil {
				t.Fatalf("Scale: %v", err)
			}
			for i := range got {
				if math.Abs(got[i]-tt.want[i]) > 1e-9 {
					t.Errorf("slot %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestScaleRejectsInvalidFactor(t *testing.T) {
	for _, f := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if _, err := Scale(defaultBase, f); !errors.Is(err, ErrInvalidFactor) {
			t.Errorf("Scale(%v) err = %v, want ErrInvalidFactor", f, err)
		}
		if _, err := ScaleValue(100, f); !errors.Is(err, ErrInvalidFactor) {
			t.Errorf("ScaleValue(%v) err = %v, want ErrInvalidFactor", f, err)
		}
	}
}

func TestScaleValueMatchesRow(t *testing.T) {
	row, _ := Scale(defaultBase, 0.67)
	for i, base := range defaultBase {
		v, err := ScaleValue(base, 0.67)
		if err != nil {
			t.Fatalf("ScaleValue: %v", err)
		}
		if v != row[i] {
			t.Errorf("slot %d: ScaleValue = %v, Scale row = %v", i, v, row[i])
		}
	}
}
