package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"

	cfg "github.com/automoto/strider/config"
)

// LockCursor captures the cursor for relative mouse look, if configured.
func LockCursor() {
	if cfg.Controller.LockCursor {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	}
}

// ReleaseCursor drops any engine-level cursor capture on demand.
func ReleaseCursor() {
	ebiten.SetCursorMode(ebiten.CursorModeVisible)
}

// UpdateCursor handles the capture lifecycle: Escape releases the cursor,
// a click recaptures it.
func UpdateCursor(e *ecs.ECS) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		ReleaseCursor()
		return
	}
	if cfg.Controller.LockCursor &&
		ebiten.CursorMode() == ebiten.CursorModeVisible &&
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	}
}
