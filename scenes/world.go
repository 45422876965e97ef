package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/strider/assets"
	"github.com/automoto/strider/components"
	cfg "github.com/automoto/strider/config"
	"github.com/automoto/strider/input"
	"github.com/automoto/strider/leveldata"
	"github.com/automoto/strider/systems"
	"github.com/automoto/strider/systems/factory"
	"github.com/automoto/strider/tags"
)

// WorldScene hosts the first-person controller in the demo arena. It runs
// the variable-rate systems once per rendered frame and drains the fixed
// timestep accumulator into physics steps, so the two cadences stay
// decoupled.
type WorldScene struct {
	ecs  *ecs.ECS
	once sync.Once
}

func NewWorldScene() *WorldScene {
	return &WorldScene{}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()

	// Fixed-rate ticks: zero or more per frame depending on how much
	// frame time the accumulator has banked.
	clock := systems.GetOrCreateClock(ws.ecs)
	for clock.Accumulator >= clock.FixedDelta {
		systems.StepPhysics(ws.ecs)
		clock.Accumulator -= clock.FixedDelta
	}
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())

	arena := loadArena()
	scale := cfg.Arena.TileSize
	worldW := float64(arena.MapWidth) * scale
	worldH := float64(arena.MapHeight) * scale

	space := factory.CreateSpace(e, worldW, worldH)
	factory.CreateLevel(e, "arena", worldW, worldH)

	for _, wall := range arena.Walls {
		factory.CreateWall(e, space, wall.X*scale, wall.Y*scale, wall.W*scale, wall.H*scale)
	}
	for _, p := range arena.Patrols {
		travel := p.Range * scale
		if travel <= 0 {
			travel = cfg.Arena.PatrolRange
		}
		factory.CreatePatrol(e, space, p.X*scale, p.Y*scale, p.W*scale, p.H*scale, travel)
	}

	spawn := mgl64.Vec3{arena.Spawn.X * scale, 0, arena.Spawn.Y * scale}
	factory.CreatePlayer(e, space, spawn, float64(arena.Spawn.Facing), input.NewEbitenSource())

	validateActors(e)

	// Variable-rate systems, in sampling order.
	e.AddSystem(systems.UpdateClock)
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateSettings)
	e.AddSystem(systems.UpdateCursor)
	e.AddSystem(systems.UpdateLook)
	e.AddSystem(systems.UpdateMotion)
	e.AddSystem(systems.UpdateCamera)
	e.AddSystem(systems.UpdatePatrols)
	e.AddSystem(systems.UpdateObjects)

	e.AddRenderer(cfg.Default, systems.DrawOverlay)
	e.AddRenderer(cfg.Default, systems.DrawHUD)

	systems.LockCursor()

	ws.ecs = e
}

// loadArena reads the embedded TMX arena. A broken or missing file
// degrades to an open floor instead of failing, with a warning.
func loadArena() *leveldata.ArenaData {
	arena, err := leveldata.LoadArena(assets.Levels(), cfg.Arena.LevelPath)
	if err != nil {
		log.Printf("Warning: Could not load arena: %v", err)
		return &leveldata.ArenaData{
			MapWidth:  1280,
			MapHeight: 1280,
			Spawn:     leveldata.SpawnPoint{X: 640, Y: 640},
		}
	}
	return arena
}

// validateActors enforces the controller's startup contract: an actor
// without a rigid body cannot be driven and is a configuration error, not
// a per-frame fault. A missing camera only disables pitch application and
// is tolerated.
func validateActors(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		panic("world scene: no player actor was spawned")
	}
	if !playerEntry.HasComponent(components.RigidBody) {
		panic("world scene: player actor has no rigid body; the controller cannot run")
	}
	if !playerEntry.HasComponent(components.Camera) {
		log.Printf("Warning: player has no camera; pitch will not be applied")
	}
}
