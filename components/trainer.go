package components

import (
	"github.com/automoto/focusball/session"
	"github.com/yohamta/donburi"
)

// TrainerData wraps the running session and the last frame it produced
type TrainerData struct {
	Session *session.Session
	Frame   session.Frame

	// Exposed is false while the peek pillar fully covers the target
	Exposed bool
	Quit    bool
}

var Trainer = donburi.NewComponentType[TrainerData]()
