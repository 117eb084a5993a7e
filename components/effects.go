package components

import (
	"github.com/charmbracelet/harmonica"
	"github.com/yohamta/donburi"
)

// FlashData eases the background between the palette background (0) and the
// flash colour (1)
type FlashData struct {
	Spring   harmonica.Spring
	Amount   float64
	Velocity float64
}

var Flash = donburi.NewComponentType[FlashData]()
