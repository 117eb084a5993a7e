package speedcurve

import (
	"errors"
	"math"
	"testing"
)

var defaultBase = Row{1000, 1400, 350, 600, 600, 1800, 400, 200}

func TestGenerateAnchorEqualsBase(t *testing.T) {
	table, err := Generate(defaultBase, 16, 10)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	row, err := table.At(AnchorTier, AnchorSublevel)
	if err != nil {
		t.Fatalf("At anchor: %v", err)
	}
	if row != defaultBase {
		t.Errorf("anchor row = %v, want %v", row, defaultBase)
	}
}

func TestGenerateAnchorKeepsUnroundedBase(t *testing.T) {
	base := Row{1.2345, 2.3456, 3, 4, 5, 6, 7, 8}
	table, err := Generate(base, 16, 10)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	row, _ := table.At(AnchorTier, AnchorSublevel)
	if row != base {
		t.Errorf("anchor row = %v, want base verbatim %v", row, base)
	}
}

func TestGenerateLowestStep(t *testing.T) {
	table, err := Generate(defaultBase, 16, 10)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	row, _ := table.At(0, 0)
	if row[0] != 200 {
		t.Errorf("speed[0] at step 0 = %v, want 200", row[0])
	}
	if row[7] != 40 {
		t.Errorf("speed[7] at step 0 = %v, want 40", row[7])
	}
}

func TestGenerateHighestStep(t *testing.T) {
	table, err := Generate(defaultBase, 16, 10)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	row, _ := table.At(15, 9)
	for i, s := range row {
		if want := defaultBase[i] * 2; s != want {
			t.Errorf("speed[%d] at last step = %v, want %v", i, s, want)
		}
	}
}

func TestGenerateMonotonic(t *testing.T) {
	table, err := Generate(defaultBase, 16, 10)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	prev, _ := table.RowAt(0)
	for step := 1; step < table.Len(); step++ {
		row, _ := table.RowAt(step)
		for i := range row {
			if row[i] < prev[i] {
				t.Fatalf("step %d slot %d decreased: %v -> %v", step, i, prev[i], row[i])
			}
		}
		prev = row
	}
}

func TestFactorBounds(t *testing.T) {
	const lastStep = 159
	anchor := AnchorStep(10, lastStep)
	if anchor != 110 {
		t.Fatalf("anchor step = %d, want 110", anchor)
	}

	prev := Factor(0, anchor, lastStep)
	for step := 0; step <= lastStep; step++ {
		f := Factor(step, anchor, lastStep)
		if f < MinDownFactor-1e-9 || f > MaxUpFactor+1e-9 {
			t.Errorf("factor at step %d = %v, outside [%v, %v]", step, f, MinDownFactor, MaxUpFactor)
		}
		if f < prev {
			t.Errorf("factor decreased at step %d: %v -> %v", step, prev, f)
		}
		prev = f
	}

	if f := Factor(anchor, anchor, lastStep); f != 1 {
		t.Errorf("anchor factor = %v, want 1", f)
	}
}

func TestGenerateSingleEntry(t *testing.T) {
	table, err := Generate(defaultBase, 1, 1)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if table.Len() != 1 {
		t.Fatalf("Len = %d, want 1", table.Len())
	}
	row, _ := table.At(0, 0)
	if row != defaultBase {
		t.Errorf("single row = %v, want base", row)
	}
}

func TestGenerateSmallGridClampsAnchor(t *testing.T) {
	table, err := Generate(defaultBase, 4, 5)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	last, _ := table.At(3, 4)
	if last != defaultBase {
		t.Errorf("clamped anchor row = %v, want base", last)
	}
	first, _ := table.At(0, 0)
	if first[0] != 200 {
		t.Errorf("first row speed[0] = %v, want 200", first[0])
	}
	for step := 0; step < table.Len(); step++ {
		row, _ := table.RowAt(step)
		for i, s := range row {
			if math.IsNaN(s) || math.IsInf(s, 0) {
				t.Fatalf("step %d slot %d is not finite", step, i)
			}
		}
	}
}

func TestGenerateInvalidGrid(t *testing.T) {
	tests := []struct {
		name             string
		tiers, sublevels int
	}{
		{"zero tiers", 0, 10},
		{"zero sublevels", 16, 0},
		{"negative", -1, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Generate(defaultBase, tt.tiers, tt.sublevels); !errors.Is(err, ErrInvalidGrid) {
				t.Errorf("err = %v, want ErrInvalidGrid", err)
			}
		})
	}
}

func TestTableAtOutOfRange(t *testing.T) {
	table, _ := Generate(defaultBase, 16, 10)
	if _, err := table.At(16, 0); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("At(16,0) err = %v, want ErrOutOfRange", err)
	}
	if _, err := table.At(0, -1); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("At(0,-1) err = %v, want ErrOutOfRange", err)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a, _ := Generate(defaultBase, 16, 10)
	b, _ := Generate(defaultBase, 16, 10)
	for step := 0; step < a.Len(); step++ {
		ra, _ := a.RowAt(step)
		rb, _ := b.RowAt(step)
		if ra != rb {
			t.Fatalf("step %d differs between runs: %v vs %v", step, ra, rb)
		}
	}
}
