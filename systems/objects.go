package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/strider/components"
)

// UpdateObjects syncs every resolv object's cell registration after the
// frame's movement.
func UpdateObjects(e *ecs.ECS) {
	components.Object.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		if obj.Object != nil {
			obj.Update()
		}
	})
}
