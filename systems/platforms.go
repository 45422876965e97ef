package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/strider/components"
)

// UpdatePatrols advances each patrolling block along its tween sequence.
// The sequence holds both legs of the patrol, so resetting it on
// completion produces a continuous back-and-forth.
func UpdatePatrols(e *ecs.ECS) {
	clock := GetOrCreateClock(e)
	dt := float32(clock.FrameDelta)

	components.Tween.Each(e.World, func(entry *donburi.Entry) {
		tw := components.Tween.Get(entry)
		if tw.Sequence == nil || !entry.HasComponent(components.Object) {
			return
		}

		offset, _, seqDone := tw.Sequence.Update(dt)
		if seqDone {
			tw.Sequence.Reset()
		}

		obj := components.Object.Get(entry)
		if obj.Object != nil {
			obj.Y = tw.OriginZ + float64(offset)
			obj.Update()
		}
	})
}
