package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/strider/components"
	cfg "github.com/automoto/strider/config"
	"github.com/automoto/strider/gamemath"
	"github.com/automoto/strider/tags"
)

// DrawHUD renders the controller state readout in the top-left corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	ctl := components.Controller.Get(playerEntry)
	rb := components.RigidBody.Get(playerEntry)

	var speed float64
	if playerEntry.HasComponent(components.VelocityIntent) {
		speed = components.VelocityIntent.Get(playerEntry).Vector.Len()
	}

	invert := "off"
	if cfg.Controller.InvertY {
		invert = "on"
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf(
		"yaw %7.2f  pitch %6.2f\npos %6.2f %6.2f %6.2f\nspeed %5.2f\nsens %.2f  invert-Y %s\nF1 overlay  I invert  -/= sensitivity  Esc release cursor",
		gamemath.NormalizeDegrees(ctl.Yaw), ctl.Pitch,
		rb.Position.X(), rb.Position.Y(), rb.Position.Z(),
		speed,
		cfg.Controller.MouseLookSensitivity, invert,
	), 8, 8)
}
