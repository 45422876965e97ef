package factory

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/strider/archetypes"
	"github.com/automoto/strider/components"
	cfg "github.com/automoto/strider/config"
	"github.com/automoto/strider/gamemath"
	"github.com/automoto/strider/input"
	"github.com/automoto/strider/tags"
)

// CreateSpace builds the ground-plane collision space for the arena.
// Dimensions are world units; cells are one unit square.
func CreateSpace(e *ecs.ECS, width, height float64) *resolv.Space {
	space := resolv.NewSpace(int(width)+1, int(height)+1, 1, 1)
	entry := archetypes.Space.Spawn(e)
	components.Space.SetValue(entry, components.SpaceData{Space: space})
	return space
}

// CreatePlayer spawns the controlled actor: rigid body at the spawn point
// with its initial facing, camera at eye height, and a resolv footprint
// registered in the space.
func CreatePlayer(e *ecs.ECS, space *resolv.Space, spawn mgl64.Vec3, facing float64, src input.Source) *donburi.Entry {
	entry := archetypes.Player.Spawn(e)

	w, d := cfg.Arena.BodyWidth, cfg.Arena.BodyDepth
	obj := resolv.NewObject(spawn.X()-w/2, spawn.Z()-d/2, w, d, tags.ResolvPlayer)
	obj.Data = entry
	space.Add(obj)

	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	components.RigidBody.SetValue(entry, components.RigidBodyData{
		Position: spawn,
		Yaw:      facing,
		Rotation: gamemath.YawQuat(facing),
	})
	components.Camera.SetValue(entry, components.CameraData{
		EyeHeight: cfg.Arena.EyeHeight,
	})
	components.Controller.SetValue(entry, components.ControllerData{
		Source: src,
	})

	return entry
}

// CreateWall registers a solid rect in the space and the world.
func CreateWall(e *ecs.ECS, space *resolv.Space, x, z, w, d float64) *donburi.Entry {
	entry := archetypes.Wall.Spawn(e)
	obj := resolv.NewObject(x, z, w, d, tags.ResolvSolid)
	obj.Data = entry
	space.Add(obj)
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	return entry
}

// CreatePatrol spawns a solid block that slides back and forth along the
// world Z axis on a looping tween sequence.
func CreatePatrol(e *ecs.ECS, space *resolv.Space, x, z, w, d, travel float64) *donburi.Entry {
	entry := archetypes.Patrol.Spawn(e)
	obj := resolv.NewObject(x, z, w, d, tags.ResolvSolid, tags.ResolvPatrol)
	obj.Data = entry
	space.Add(obj)
	components.Object.SetValue(entry, components.ObjectData{Object: obj})

	period := float32(cfg.Arena.PatrolPeriod)
	tw := gween.NewSequence()
	tw.Add(
		gween.New(0, float32(travel), period, ease.Linear),
		gween.New(float32(travel), 0, period, ease.Linear),
	)
	components.Tween.SetValue(entry, components.TweenData{
		Sequence: tw,
		OriginZ:  z,
	})

	return entry
}

// CreateLevel records the arena dimensions for the overlay.
func CreateLevel(e *ecs.ECS, name string, width, height float64) *donburi.Entry {
	entry := archetypes.Level.Spawn(e)
	components.Level.SetValue(entry, components.LevelData{
		Name:   name,
		Width:  width,
		Height: height,
	})
	return entry
}
