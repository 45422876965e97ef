package components

import (
	"github.com/yohamta/donburi"
)

// CameraData carries the camera's local orientation: pitch about the
// lateral axis only. Yaw lives on the body, not the camera. The component
// is optional; a player without one still moves and turns.
type CameraData struct {
	Pitch     float64 // degrees
	EyeHeight float64 // world units above the body position
}

var Camera = donburi.NewComponentType[CameraData]()
