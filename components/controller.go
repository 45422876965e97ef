package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/strider/gamemath"
	"github.com/automoto/strider/input"
)

// ControllerData is the first-person controller's per-actor state: the
// input source it samples, the accumulated orientation, and the persistent
// filter states. Orientation is mutated only by the per-frame look update;
// the fixed-rate physics step reads yaw from here.
type ControllerData struct {
	Source input.Source

	Yaw   float64 // degrees, unbounded (logically mod 360)
	Pitch float64 // degrees, clamped to the configured bounds

	// SmoothedStick persists across frames; it decays toward zero through
	// the filter rather than being reset on input loss.
	SmoothedStick gamemath.Vec2
	SmoothedMouse gamemath.Vec2

	// Seeded flips after the first look update copies the spawn
	// orientation from the rigid body and camera.
	Seeded bool
}

var Controller = donburi.NewComponentType[ControllerData]()
