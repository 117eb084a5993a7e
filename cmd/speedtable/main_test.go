package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/automoto/focusball/speedcurve"
)

var testBase = speedcurve.Row{1000, 1400, 350, 600, 600, 1800, 400, 200}

func TestRenderSelectedRow(t *testing.T) {
	tests := []struct {
		name   string
		factor float64
		want   []string
	}{
		{"anchor at 1x", 1, []string{"1000.00", "1400.00", "200.00"}},
		{"anchor at 2x", 2, []string{"2000.00", "2800.00", "400.00"}},
		{"anchor at 0.67x", 0.67, []string{"670.00", "938.00", "134.00"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := render(options{
				Base: testBase, Tiers: 16, Sublevels: 10,
				Factor: tt.factor, Tier: 12, Sublevel: 1, Only: true,
			})
			if err != nil {
				t.Fatalf("render: %v", err)
			}
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("output missing %q:\n%s", w, out)
				}
			}
			if !strings.Contains(out, "Horizontal") || !strings.Contains(out, "Peek") {
				t.Errorf("output missing headers:\n%s", out)
			}
		})
	}
}

func TestRenderFullTable(t *testing.T) {
	out, err := render(options{Base: testBase, Tiers: 2, Sublevels: 2, Factor: 1})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	// Header plus four data rows, framed by borders
	if n := strings.Count(out, "\n") + 1; n < 7 {
		t.Errorf("got %d lines:\n%s", n, out)
	}
}

func TestRenderErrors(t *testing.T) {
	if _, err := render(options{Base: testBase, Tiers: 0, Sublevels: 10, Factor: 1}); !errors.Is(err, speedcurve.ErrInvalidGrid) {
		t.Errorf("bad grid: err = %v", err)
	}
	if _, err := render(options{Base: testBase, Tiers: 16, Sublevels: 10, Factor: 1, Tier: 17, Sublevel: 1}); !errors.Is(err, speedcurve.ErrOutOfRange) {
		t.Errorf("bad selection: err = %v", err)
	}
	if _, err := render(options{Base: testBase, Tiers: 16, Sublevels: 10, Factor: 0}); !errors.Is(err, speedcurve.ErrInvalidFactor) {
		t.Errorf("bad factor: err = %v", err)
	}
}

func TestParseRow(t *testing.T) {
	row, err := parseRow("1, 2,3,4,5,6,7, 8.5")
	if err != nil {
		t.Fatalf("parseRow: %v", err)
	}
	if want := (speedcurve.Row{1, 2, 3, 4, 5, 6, 7, 8.5}); row != want {
		t.Errorf("row = %v, want %v", row, want)
	}
	for _, in := range []string{"1,2,3", "1,2,3,4,5,6,7,x", ""} {
		if _, err := parseRow(in); err == nil {
			t.Errorf("parseRow(%q) succeeded", in)
		}
	}
}
