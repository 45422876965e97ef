package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/strider/components"
)

// UpdateCamera applies the controller's pitch to the camera's local
// orientation once per frame. Pitch is the camera's only rotation; yaw is
// applied to the body by the physics step. An actor without a camera
// component simply skips pitch application.
func UpdateCamera(e *ecs.ECS) {
	components.Controller.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.Camera) {
			return
		}
		ctl := components.Controller.Get(entry)
		cam := components.Camera.Get(entry)
		cam.Pitch = ctl.Pitch
	})
}
