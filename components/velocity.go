package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// VelocityIntentData is the world-space velocity computed fresh each frame
// from the move axes and current facing, consumed by the next physics step.
type VelocityIntentData struct {
	Vector mgl64.Vec3
}

var VelocityIntent = donburi.NewComponentType[VelocityIntentData]()
