package config

import (
	"image/color"

	"github.com/automoto/focusball/breath"
	"github.com/automoto/focusball/mode"
	"github.com/automoto/focusball/motion"
	"github.com/automoto/focusball/round"
	"github.com/automoto/focusball/speedcurve"
	"github.com/yohamta/donburi/ecs"
)

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	Title  string
	Seed   int64
}

// CurveConfig selects the speed table and the starting row
type CurveConfig struct {
	Base      speedcurve.Row
	Tiers     int
	Sublevels int

	// Zero-based starting selection
	Tier     int
	Sublevel int

	ScreenType     int     // Index into Screens.Types
	SpeedIncrement float64 // Percent per speed up/down step
}

// TargetConfig contains the moving target's size and colours
type TargetConfig struct {
	BaseRadius  float64 // Radius at 100% size
	SizePercent float64
	MinSize     float64
	MaxSize     float64
	SizeStep    float64 // Percent per size up/down step

	DotRatio   float64 // Inner dot radius as a fraction of the target radius
	DotMinPx   float64
	StartLevel motion.LevelID

	Palette mode.Palette
	Motion  motion.Config
}

// RoundConfig contains round timing and the end-of-round flash
type RoundConfig struct {
	Duration      float64 // Seconds
	AutoAdvance   bool
	FlashDisabled bool

	// Spring used to ease the background into and out of the flash colour
	FlashFrequency float64
	FlashDamping   float64
}

// MeditationConfig contains meditation mode settings
type MeditationConfig struct {
	Preset       mode.Preset
	StartEnabled bool
	LabelColor   color.RGBA
}

// OverlayConfig contains the visual distraction overlays and the peek pillar
type OverlayConfig struct {
	Hashtag           bool
	VerticalStripes   bool
	HorizontalStripes bool
	Solid             bool

	HashtagBar  float64 // Bar thickness in pixels
	HashtagBars int     // Bars per axis
	StripeWidth float64
	StripeGap   float64
	Alpha       float64 // Used when Solid is off
	Color       color.RGBA

	PillarColor     color.RGBA
	PillarPadding   float64 // Added to the target diameter
	PillarMinWidth  float64
	PillarMinHeight float64
}

// PanelConfig contains the control panel layout
type PanelConfig struct {
	Visible     bool
	Width       int
	Padding     int
	Spacing     int
	FontSize    float64
	Background  color.RGBA
	ButtonIdle  color.RGBA
	ButtonHover color.RGBA
	ButtonPress color.RGBA
	ButtonOn    color.RGBA
	TextColor   color.RGBA
}

// HUDConfig contains the always-on timer readout
type HUDConfig struct {
	FontSize  float64
	Margin    float64
	TextColor color.RGBA
	ShowHints bool
}

// Global configuration instances
var C *Config
var Curve CurveConfig
var Target TargetConfig
var Round RoundConfig
var Meditation MeditationConfig
var Breath breath.Config
var Overlay OverlayConfig
var Panel PanelConfig
var HUD HUDConfig

// Default is the single render layer.
const Default ecs.LayerID = 0

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{A: 255}
	Charcoal     = color.RGBA{R: 0x22, G: 0x22, B: 0x22, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	Slate        = color.RGBA{R: 40, G: 44, B: 52, A: 235}
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
		Title:  "Focus Ball",
	}

	Curve = CurveConfig{
		Base:           speedcurve.Row{1000, 1400, 350, 600, 600, 1800, 400, 200},
		Tiers:          16,
		Sublevels:      10,
		Tier:           speedcurve.AnchorTier,
		Sublevel:       speedcurve.AnchorSublevel,
		ScreenType:     2, // Full HD
		SpeedIncrement: 5,
	}

	Target = TargetConfig{
		BaseRadius:  30,
		SizePercent: 100,
		MinSize:     15,
		MaxSize:     200,
		SizeStep:    5,
		DotRatio:    0.4,
		DotMinPx:    2,
		StartLevel:  motion.LevelHorizontal,
		Palette: mode.Palette{
			Ball:       White,
			Dot:        Black,
			Background: color.RGBA{R: 0x11, G: 0x11, B: 0x11, A: 255},
			Flash:      color.RGBA{R: 0x44, G: 0x44, B: 0x44, A: 255},
		},
		Motion: motion.DefaultConfig,
	}

	Round = RoundConfig{
		Duration:       round.DefaultDuration,
		AutoAdvance:    false,
		FlashDisabled:  false,
		FlashFrequency: 12,
		FlashDamping:   1,
	}

	Meditation = MeditationConfig{
		Preset:     mode.Meditation,
		LabelColor: White,
	}

	Breath = breath.DefaultConfig

	Overlay = OverlayConfig{
		HashtagBar:      25,
		HashtagBars:     4,
		StripeWidth:     10,
		StripeGap:       25,
		Alpha:           0.7,
		Color:           White,
		PillarColor:     Charcoal,
		PillarPadding:   30,
		PillarMinWidth:  80,
		PillarMinHeight: 300,
	}

	Panel = PanelConfig{
		Visible:     true,
		Width:       320,
		Padding:     12,
		Spacing:     6,
		FontSize:    16,
		Background:  Slate,
		ButtonIdle:  DarkBlue,
		ButtonHover: LightBlue,
		ButtonPress: color.RGBA{R: 40, G: 70, B: 120, A: 255},
		ButtonOn:    color.RGBA{R: 170, G: 120, B: 57, A: 255},
		TextColor:   White,
	}

	HUD = HUDConfig{
		FontSize:  18,
		Margin:    12,
		TextColor: White,
		ShowHints: true,
	}
}
