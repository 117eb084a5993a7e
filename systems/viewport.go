package systems

import (
	"github.com/automoto/focusball/components"
	cfg "github.com/automoto/focusball/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateViewport tracks the window size and the space the panel takes.
// Must run BEFORE UpdateTrainer so the motion engine sees this frame's canvas.
func UpdateViewport(ecs *ecs.ECS) {
	viewportEntry, ok := components.Viewport.First(ecs.World)
	if !ok {
		return
	}
	viewport := components.Viewport.Get(viewportEntry)
	viewport.Width = float64(cfg.C.Width)
	viewport.Height = float64(cfg.C.Height)

	viewport.PanelWidth = 0
	if panel := mustPanel(ecs); panel.Visible {
		viewport.PanelWidth = float64(cfg.Panel.Width)
	}
}
