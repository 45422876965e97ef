package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// ClockData is the singleton frame clock. FrameDelta is the measured
// variable timestep for the current frame; FixedDelta is the physics
// timestep; Accumulator carries unconsumed frame time between physics
// steps.
type ClockData struct {
	FrameDelta  float64
	FixedDelta  float64
	Accumulator float64
	LastTick    time.Time
}

var Clock = donburi.NewComponentType[ClockData]()
