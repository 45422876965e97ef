package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/strider/components"
	cfg "github.com/automoto/strider/config"
	"github.com/automoto/strider/gamemath"
)

// UpdateLook integrates yaw and pitch once per frame from the mouse-delta
// axes and the deadzone-remapped, smoothed look stick.
//
// Mouse deltas already encode motion since the last sample, so they scale
// by sensitivity alone; a held stick means continuous rotation, so stick
// contributions additionally scale by the frame delta. The two paths must
// not share a scaling formula.
func UpdateLook(e *ecs.ECS) {
	clock := GetOrCreateClock(e)
	dt := clock.FrameDelta
	c := &cfg.Controller

	components.Controller.Each(e.World, func(entry *donburi.Entry) {
		ctl := components.Controller.Get(entry)
		if ctl.Source == nil {
			return
		}
		if !ctl.Seeded {
			seedOrientation(entry, ctl)
		}

		// Mouse path. Rate <= 0 bypasses the filter entirely and uses the
		// raw deltas; this is distinct from a zero-rate stick filter,
		// which freezes its state instead.
		raw := gamemath.Vec2{
			X: ctl.Source.Axis(c.MouseAxisX),
			Y: ctl.Source.Axis(c.MouseAxisY),
		}
		mouse := raw
		if c.MouseLookSmoothing > 0 {
			ctl.SmoothedMouse = gamemath.SmoothVec2(ctl.SmoothedMouse, raw, c.MouseLookSmoothing, dt)
			mouse = ctl.SmoothedMouse
		} else {
			ctl.SmoothedMouse = raw
		}
		ctl.Yaw += mouse.X * c.MouseLookSensitivity
		if c.InvertY {
			ctl.Pitch += mouse.Y * c.MouseLookSensitivity
		} else {
			ctl.Pitch -= mouse.Y * c.MouseLookSensitivity
		}

		// Stick path: deadzone per axis, then always through the filter.
		rawStick := gamemath.Vec2{
			X: ctl.Source.Axis(c.LookAxisX),
			Y: ctl.Source.Axis(c.LookAxisY),
		}
		remapped := gamemath.ApplyDeadzoneVec2(rawStick, c.ControllerDeadzone)
		ctl.SmoothedStick = gamemath.SmoothVec2(ctl.SmoothedStick, remapped, c.ControllerLookSmoothing, dt)

		ctl.Yaw += ctl.SmoothedStick.X * c.ControllerLookSensitivity * dt
		pitchDelta := ctl.SmoothedStick.Y * c.ControllerLookSensitivity * dt
		if c.InvertY {
			ctl.Pitch += pitchDelta
		} else {
			ctl.Pitch -= pitchDelta
		}

		ctl.Pitch = gamemath.Clamp(ctl.Pitch, c.PitchMin, c.PitchMax)
	})
}

// seedOrientation copies the spawn orientation into the controller so the
// first update does not snap: yaw from the body's world orientation, pitch
// from the camera's local orientation normalized into (-180, 180].
func seedOrientation(entry *donburi.Entry, ctl *components.ControllerData) {
	if entry.HasComponent(components.RigidBody) {
		rb := components.RigidBody.Get(entry)
		ctl.Yaw = rb.Yaw
	}
	if entry.HasComponent(components.Camera) {
		cam := components.Camera.Get(entry)
		ctl.Pitch = gamemath.NormalizeDegrees(cam.Pitch)
	}
	ctl.Seeded = true
}
