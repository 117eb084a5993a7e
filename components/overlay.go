package components

import "github.com/yohamta/donburi"

// OverlayData stores which distraction overlays are switched on
type OverlayData struct {
	Hashtag           bool
	VerticalStripes   bool
	HorizontalStripes bool
	Solid             bool // Draw bars at full opacity
}

// Any reports whether at least one overlay is drawn.
func (o *OverlayData) Any() bool {
	return o.Hashtag || o.VerticalStripes || o.HorizontalStripes
}

var Overlay = donburi.NewComponentType[OverlayData]()
