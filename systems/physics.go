package systems

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/strider/components"
	"github.com/automoto/strider/gamemath"
	"github.com/automoto/strider/tags"
)

// StepPhysics advances one fixed physics tick: it displaces each rigid
// body by its velocity intent times the fixed delta (plain Euler, no
// sub-stepping) and sets the body rotation to a pure-yaw orientation from
// the controller. Repeated ticks with zero intent and unchanged yaw leave
// the body untouched.
//
// The host scheduler decides how many times this runs per frame; the
// system itself is cadence-agnostic.
func StepPhysics(e *ecs.ECS) {
	clock := GetOrCreateClock(e)
	fixedDt := clock.FixedDelta

	components.RigidBody.Each(e.World, func(entry *donburi.Entry) {
		rb := components.RigidBody.Get(entry)

		var displacement mgl64.Vec3
		if entry.HasComponent(components.VelocityIntent) {
			intent := components.VelocityIntent.Get(entry)
			displacement = intent.Vector.Mul(fixedDt)
		}

		dx, dz := displacement.X(), displacement.Z()
		if entry.HasComponent(components.Object) {
			obj := components.Object.Get(entry)
			if obj.Object != nil {
				dx, dz = resolveFootprint(obj, dx, dz)
			}
		}
		rb.Position = rb.Position.Add(mgl64.Vec3{dx, displacement.Y(), dz})

		if entry.HasComponent(components.Controller) {
			ctl := components.Controller.Get(entry)
			rb.Yaw = ctl.Yaw
		}
		rb.Rotation = gamemath.YawQuat(rb.Yaw)

		syncFootprint(entry, rb)
	})
}

// resolveFootprint slides the ground-plane displacement along solid
// contacts, one axis at a time with the other held still. The footprint is
// shifted between checks so the second axis sees the resolved position;
// syncFootprint re-centres it afterwards. resolv's Y axis carries world Z.
func resolveFootprint(obj *components.ObjectData, dx, dz float64) (float64, float64) {
	dx = resolveAxis(obj, dx, true)
	obj.X += dx
	dz = resolveAxis(obj, dz, false)
	obj.Y += dz
	return dx, dz
}

// resolveAxis clamps one axis of displacement to the nearest solid contact.
// The cell-based Check reports solids in neighbouring cells too, so each
// candidate must actually overlap the footprint on the perpendicular axis
// before it counts as blocking.
func resolveAxis(obj *components.ObjectData, d float64, horizontal bool) float64 {
	if d == 0 {
		return 0
	}

	cdx, cdz := d, 0.0
	if !horizontal {
		cdx, cdz = 0, d
	}
	check := obj.Check(cdx, cdz, tags.ResolvSolid)
	if check == nil {
		return d
	}

	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if horizontal {
			if obj.Y+obj.H <= solid.Y || obj.Y >= solid.Y+solid.H {
				continue
			}
		} else {
			if obj.X+obj.W <= solid.X || obj.X >= solid.X+solid.W {
				continue
			}
		}

		contact := check.ContactWithObject(solid)
		c := contact.X()
		if !horizontal {
			c = contact.Y()
		}

		// Contacts beyond the step mean the solid is in a shared cell but
		// out of reach; contacts past zero mean already touching.
		if d > 0 && c < d {
			d = math.Max(c, 0)
		} else if d < 0 && c > d {
			d = math.Min(c, 0)
		}
	}
	return d
}

// syncFootprint re-centres the resolv object under the body position.
func syncFootprint(entry *donburi.Entry, rb *components.RigidBodyData) {
	if !entry.HasComponent(components.Object) {
		return
	}
	obj := components.Object.Get(entry)
	if obj.Object == nil {
		return
	}
	obj.X = rb.Position.X() - obj.W/2
	obj.Y = rb.Position.Z() - obj.H/2
	obj.Update()
}
