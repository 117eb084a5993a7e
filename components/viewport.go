package components

import (
	"github.com/automoto/focusball/motion"
	"github.com/yohamta/donburi"
)

// ViewportData is the drawable area handed to the motion engine each frame.
// The panel, when open, takes PanelWidth pixels from the right edge.
type ViewportData struct {
	Width      float64
	Height     float64
	PanelWidth float64
}

// Canvas returns the area left for the target.
func (v *ViewportData) Canvas() motion.Canvas {
	w := v.Width - v.PanelWidth
	if w < 0 {
		w = 0
	}
	return motion.Canvas{W: w, H: v.Height}
}

var Viewport = donburi.NewComponentType[ViewportData]()
