package systems

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/strider/components"
	cfg "github.com/automoto/strider/config"
	"github.com/automoto/strider/gamemath"
	"github.com/automoto/strider/tags"
)

// DrawOverlay renders a top-down view of the collision space: walls grey,
// the patrol block orange, the player blue with a facing ray. It is the
// demo's stand-in for a 3D view and doubles as the collision debugger.
func DrawOverlay(e *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(e)
	if !settings.Overlay {
		return
	}

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	if level.Width <= 0 || level.Height <= 0 {
		return
	}

	// Fit the arena into the window with a margin.
	w, h := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	scale := min(w/level.Width, h/level.Height) * 0.9
	offX := (w - level.Width*scale) / 2
	offY := (h - level.Height*scale) / 2

	spaceEntry, ok := components.Space.First(e.World)
	if ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			x := float32(offX + obj.X*scale)
			y := float32(offY + obj.Y*scale)
			ow := float32(obj.W * scale)
			oh := float32(obj.H * scale)

			c := cfg.White
			switch {
			case obj.HasTags(tags.ResolvPlayer):
				c = cfg.Blue
			case obj.HasTags(tags.ResolvPatrol):
				c = cfg.Orange
			case obj.HasTags(tags.ResolvSolid):
				c = cfg.Grey
			}

			vector.FillRect(screen, x, y, ow, 1, c, false)
			vector.FillRect(screen, x, y+oh-1, ow, 1, c, false)
			vector.FillRect(screen, x, y, 1, oh, c, false)
			vector.FillRect(screen, x+ow-1, y, 1, oh, c, false)
		}
	}

	drawFacing(e, screen, scale, offX, offY)
}

// drawFacing draws the player's current yaw as a ray from the body centre.
func drawFacing(e *ecs.ECS, screen *ebiten.Image, scale, offX, offY float64) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	rb := components.RigidBody.Get(playerEntry)

	dir := gamemath.RotateYaw(mgl64.Vec3{0, 0, 1}, rb.Yaw)
	const rayLen = 2.0

	x0 := float32(offX + rb.Position.X()*scale)
	y0 := float32(offY + rb.Position.Z()*scale)
	x1 := float32(offX + (rb.Position.X()+dir.X()*rayLen)*scale)
	y1 := float32(offY + (rb.Position.Z()+dir.Z()*rayLen)*scale)

	vector.StrokeLine(screen, x0, y0, x1, y1, 2, cfg.Green, false)
}
