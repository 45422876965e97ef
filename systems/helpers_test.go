package systems

import (
	"testing"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/strider/archetypes"
	"github.com/automoto/strider/components"
	cfg "github.com/automoto/strider/config"
	"github.com/automoto/strider/input"
)

// withController snapshots the global controller config for a test and
// restores it afterwards, so tests can tune freely.
func withController(t *testing.T, mutate func(c *cfg.ControllerConfig)) {
	t.Helper()
	orig := cfg.Controller
	t.Cleanup(func() { cfg.Controller = orig })
	if mutate != nil {
		mutate(&cfg.Controller)
	}
}

// newTestWorld builds an ECS with a clock pinned to a 60 Hz frame delta.
// The systems are cadence-agnostic, so tests call them directly.
func newTestWorld(t *testing.T) (*ecs.ECS, *components.ClockData) {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	clock := GetOrCreateClock(e)
	clock.FrameDelta = 1.0 / 60
	return e, clock
}

// spawnActor creates a controllable player with no resolv footprint.
func spawnActor(t *testing.T, e *ecs.ECS, src input.Source) *donburi.Entry {
	t.Helper()
	entry := archetypes.Player.Spawn(e)
	components.Controller.SetValue(entry, components.ControllerData{Source: src})
	return entry
}
