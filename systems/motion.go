package systems

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/strider/components"
	cfg "github.com/automoto/strider/config"
	"github.com/automoto/strider/gamemath"
)

// UpdateMotion refreshes each actor's velocity intent once per frame: move
// axes clamped to the unit circle so diagonals are not faster, scaled by
// move speed and the sprint modifier, then rotated into world space by the
// controller's current yaw. Velocity is instantaneous; there is no
// acceleration curve.
func UpdateMotion(e *ecs.ECS) {
	c := &cfg.Controller

	components.Controller.Each(e.World, func(entry *donburi.Entry) {
		ctl := components.Controller.Get(entry)
		if ctl.Source == nil || !entry.HasComponent(components.VelocityIntent) {
			return
		}
		intent := components.VelocityIntent.Get(entry)

		move := gamemath.Vec2{
			X: ctl.Source.Axis(c.MoveAxisX),
			Y: ctl.Source.Axis(c.MoveAxisY),
		}
		move = gamemath.ClampMagnitude(move, 1)

		speed := c.MoveSpeed
		if ctl.Source.Held(c.SprintAction) {
			speed *= c.SprintMultiplier
		}

		// Local +X is strafe right, local +Z is forward at yaw 0.
		local := mgl64.Vec3{move.X * speed, 0, move.Y * speed}
		intent.Vector = gamemath.RotateYaw(local, ctl.Yaw)
	})
}
