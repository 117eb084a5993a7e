package config

// ScreenType is a display class and the speed factor that keeps the target's
// apparent speed roughly constant across screen sizes
type ScreenType struct {
	Label  string
	Factor float64
}

// ScreensConfig lists the selectable display classes
type ScreensConfig struct {
	Types []ScreenType
}

// Screens is the global display class configuration
var Screens ScreensConfig

func init() {
	Screens = ScreensConfig{
		Types: []ScreenType{
			{Label: "HD 1280 x 720", Factor: 0.67},
			{Label: "Laptop 1366 x 768", Factor: 0.71},
			{Label: "Full HD 1920 x 1080", Factor: 1.0},
			{Label: "QHD 2560 x 1440", Factor: 1.33},
			{Label: "4K 3840 x 2160", Factor: 2.0},
		},
	}
}

// ScreenFactor returns the speed factor for a display class index, falling
// back to 1 for an unknown index.
func ScreenFactor(i int) float64 {
	if i < 0 || i >= len(Screens.Types) {
		return 1
	}
	return Screens.Types[i].Factor
}
