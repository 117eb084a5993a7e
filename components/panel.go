package components

import "github.com/yohamta/donburi"

// PanelData stores the control panel state
type PanelData struct {
	Visible bool
	// Dirty asks the panel to refresh its labels from the session
	Dirty bool
}

var Panel = donburi.NewComponentType[PanelData]()
