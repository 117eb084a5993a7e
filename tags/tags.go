package tags

import "github.com/yohamta/donburi"

var (
	Target = donburi.NewTag().SetName("Target")
	Pillar = donburi.NewTag().SetName("Pillar")
)

// Resolv tags for cover checks
const (
	ResolvTarget = "target"
	ResolvPillar = "pillar"
)
