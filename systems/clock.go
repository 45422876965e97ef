package systems

import (
	"time"

	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/strider/components"
	cfg "github.com/automoto/strider/config"
)

// UpdateClock measures the variable frame delta and feeds the fixed-step
// accumulator. Must run before every other system.
func UpdateClock(e *ecs.ECS) {
	clock := GetOrCreateClock(e)
	now := time.Now()

	if clock.LastTick.IsZero() {
		clock.FrameDelta = clock.FixedDelta
	} else {
		dt := now.Sub(clock.LastTick).Seconds()
		if dt > cfg.Physics.MaxFrameDelta {
			dt = cfg.Physics.MaxFrameDelta
		}
		clock.FrameDelta = dt
	}
	clock.LastTick = now
	clock.Accumulator += clock.FrameDelta
}

// GetOrCreateClock returns the singleton clock, creating it with the
// configured fixed timestep if needed.
func GetOrCreateClock(e *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(e.World)
	if !ok {
		entry = e.World.Entry(e.Create(cfg.Default, components.Clock))
		components.Clock.SetValue(entry, components.ClockData{
			FixedDelta: cfg.Physics.FixedTimestep,
		})
	}
	return components.Clock.Get(entry)
}
