package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/strider/components"
	"github.com/automoto/strider/input"
)

// UpdateInput polls live input backends once per frame. Must run before
// UpdateLook and UpdateMotion. Sources that need no polling (tests,
// replays) are left alone.
func UpdateInput(e *ecs.ECS) {
	components.Controller.Each(e.World, func(entry *donburi.Entry) {
		ctl := components.Controller.Get(entry)
		if src, ok := ctl.Source.(*input.EbitenSource); ok {
			src.Poll()
		}
	})
}
