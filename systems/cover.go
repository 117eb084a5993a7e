package systems

import (
	"math"

	"github.com/automoto/focusball/components"
	cfg "github.com/automoto/focusball/config"
	"github.com/automoto/focusball/motion"
	"github.com/automoto/focusball/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
)

// Rect is an axis-aligned box in canvas pixels.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether o lies entirely inside r.
func (r Rect) Contains(o Rect) bool {
	return o.X >= r.X && o.Y >= r.Y && o.X+o.W <= r.X+r.W && o.Y+o.H <= r.Y+r.H
}

// PillarRect is the peek pillar for a target of the given radius, centred on
// the canvas.
func PillarRect(canvas motion.Canvas, radius float64) Rect {
	d := 2*radius + cfg.Overlay.PillarPadding
	w := math.Max(d, cfg.Overlay.PillarMinWidth)
	h := math.Max(d, cfg.Overlay.PillarMinHeight)
	return Rect{X: canvas.W/2 - w/2, Y: canvas.H/2 - h/2, W: w, H: h}
}

// TargetRect is the bounding box of the ball.
func TargetRect(pos motion.Vec2, radius float64) Rect {
	return Rect{X: pos.X - radius, Y: pos.Y - radius, W: 2 * radius, H: 2 * radius}
}

// UpdateCover moves the collision boxes to this frame's geometry and records
// whether the ball is visible past the pillar on the peek level.
// Must run AFTER UpdateTrainer.
func UpdateCover(ecs *ecs.ECS) {
	trainerEntry, ok := components.Trainer.First(ecs.World)
	if !ok {
		return
	}
	trainer := components.Trainer.Get(trainerEntry)
	frame := &trainer.Frame

	targetEntry, ok := tags.Target.First(ecs.World)
	if !ok {
		return
	}
	pillarEntry, ok := tags.Pillar.First(ecs.World)
	if !ok {
		return
	}
	targetObj := components.Object.Get(targetEntry).Object
	pillarObj := components.Object.Get(pillarEntry).Object

	tr := TargetRect(frame.Position, frame.Radius)
	place(targetObj, tr)

	if frame.Level != motion.LevelPeek {
		// Park the pillar outside the space so nothing collides with it
		place(pillarObj, Rect{X: -10, Y: -10, W: 1, H: 1})
		trainer.Exposed = true
		return
	}

	canvas := components.Viewport.Get(components.Viewport.MustFirst(ecs.World)).Canvas()
	pr := PillarRect(canvas, frame.Radius)
	place(pillarObj, pr)

	trainer.Exposed = true
	if check := targetObj.Check(0, 0, tags.ResolvPillar); check != nil {
		if pillars := check.ObjectsByTags(tags.ResolvPillar); len(pillars) > 0 {
			trainer.Exposed = !objectRect(pillars[0]).Contains(tr)
		}
	}
}

func place(obj *resolv.Object, r Rect) {
	obj.X, obj.Y = r.X, r.Y
	obj.W, obj.H = r.W, r.H
	obj.Update()
}

func objectRect(obj *resolv.Object) Rect {
	return Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}
}
