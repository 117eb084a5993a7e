// Command speedtable prints the generated speed table for a base vector,
// grid and screen factor.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/automoto/focusball/config"
	"github.com/automoto/focusball/motion"
	"github.com/automoto/focusball/speedcurve"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#d3a047")).Padding(0, 1)
	cellStyle     = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
	anchorStyle   = cellStyle.Copy().Bold(true).Foreground(lipgloss.Color("#64b4ff"))
	selectedStyle = cellStyle.Copy().Bold(true).Foreground(lipgloss.Color("#000000")).Background(lipgloss.Color("#ffdea3"))
	borderStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#4b3d92"))
)

// options selects what to print. Tier and Sublevel are one-based; zero means
// no selection.
type options struct {
	Base      speedcurve.Row
	Tiers     int
	Sublevels int
	Factor    float64
	Tier      int
	Sublevel  int
	Only      bool // Print only the selected row
}

func main() {
	configPath := flag.String("config", "", "INI file with setting overrides")
	base := flag.String("base", "", "comma separated base speeds, one per level")
	tiers := flag.Int("tiers", 0, "number of tiers")
	sublevels := flag.Int("sublevels", 0, "number of sublevels per tier")
	screen := flag.Int("screen", 0, "screen type (1-based), overrides -factor")
	factor := flag.Float64("factor", 1, "resolution factor")
	tier := flag.Int("tier", 0, "tier to highlight (1-based)")
	sublevel := flag.Int("sublevel", 1, "sublevel to highlight (1-based)")
	only := flag.Bool("only", false, "print only the highlighted row")
	flag.Parse()

	if *configPath != "" {
		if err := config.Load(*configPath); err != nil {
			log.Fatal(err)
		}
	}

	opts := options{
		Base:      config.Curve.Base,
		Tiers:     config.Curve.Tiers,
		Sublevels: config.Curve.Sublevels,
		Factor:    *factor,
		Tier:      *tier,
		Sublevel:  *sublevel,
		Only:      *only,
	}
	if *base != "" {
		row, err := parseRow(*base)
		if err != nil {
			log.Fatal(err)
		}
		opts.Base = row
	}
	if *tiers > 0 {
		opts.Tiers = *tiers
	}
	if *sublevels > 0 {
		opts.Sublevels = *sublevels
	}
	if *screen > 0 {
		if *screen > len(config.Screens.Types) {
			log.Fatalf("screen must be 1-%d", len(config.Screens.Types))
		}
		opts.Factor = config.ScreenFactor(*screen - 1)
	}

	out, err := render(opts)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Fprintln(os.Stdout, out)
}

func parseRow(s string) (speedcurve.Row, error) {
	var row speedcurve.Row
	parts := strings.Split(s, ",")
	if len(parts) != speedcurve.PatternCount {
		return row, fmt.Errorf("base: want %d values, got %d", speedcurve.PatternCount, len(parts))
	}
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return row, fmt.Errorf("base: %w", err)
		}
		row[i] = v
	}
	return row, nil
}

// render builds the table. The anchor row and the selected row are
// highlighted.
func render(opts options) (string, error) {
	tbl, err := speedcurve.Generate(opts.Base, opts.Tiers, opts.Sublevels)
	if err != nil {
		return "", err
	}

	anchor := speedcurve.AnchorStep(opts.Sublevels, tbl.Len()-1)
	selected := -1
	if opts.Tier > 0 {
		step, err := tbl.Step(opts.Tier-1, opts.Sublevel-1)
		if err != nil {
			return "", fmt.Errorf("selection: %w", err)
		}
		selected = step
	}

	headers := []string{"Tier", "Sub"}
	for l := motion.LevelHorizontal; l <= motion.LevelPeek; l++ {
		headers = append(headers, l.String())
	}

	var steps []int
	var rows [][]string
	for step := 0; step < tbl.Len(); step++ {
		if opts.Only && step != selected {
			continue
		}
		row, err := tbl.RowAt(step)
		if err != nil {
			return "", err
		}
		scaled, err := speedcurve.Scale(row, opts.Factor)
		if err != nil {
			return "", err
		}
		cells := []string{
			strconv.Itoa(step/opts.Sublevels + 1),
			strconv.Itoa(step%opts.Sublevels + 1),
		}
		for _, v := range scaled {
			cells = append(cells, strconv.FormatFloat(v, 'f', 2, 64))
		}
		rows = append(rows, cells)
		steps = append(steps, step)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == 0 {
				return headerStyle
			}
			switch steps[row-1] {
			case selected:
				return selectedStyle
			case anchor:
				return anchorStyle
			}
			return cellStyle
		})
	return t.Render(), nil
}
