package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// RigidBodyData is the controller's view of the physics body: an absolute
// world position and a pure-yaw orientation, both mutated only by the
// fixed-rate physics step. The body's position is the authoritative motion
// state; velocity intents are transient.
type RigidBodyData struct {
	Position mgl64.Vec3
	Yaw      float64 // degrees
	Rotation mgl64.Quat
}

var RigidBody = donburi.NewComponentType[RigidBodyData]()
