package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/strider/components"
	cfg "github.com/automoto/strider/config"
)

const (
	sensitivityStep = 0.25
	sensitivityMin  = 0.25
	sensitivityMax  = 8
)

// UpdateSettings handles the runtime tuning keys:
//
//	F1      toggle the top-down debug overlay
//	I       toggle invert-Y (shared by mouse and stick pitch)
//	- / =   adjust mouse look sensitivity
//
// Changes are written back to the persisted settings.
func UpdateSettings(e *ecs.ECS) {
	settings := GetOrCreateSettings(e)

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		settings.Overlay = !settings.Overlay
		settings.Dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyI) {
		cfg.Controller.InvertY = !cfg.Controller.InvertY
		settings.Dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		cfg.Controller.MouseLookSensitivity -= sensitivityStep
		if cfg.Controller.MouseLookSensitivity < sensitivityMin {
			cfg.Controller.MouseLookSensitivity = sensitivityMin
		}
		settings.Dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		cfg.Controller.MouseLookSensitivity += sensitivityStep
		if cfg.Controller.MouseLookSensitivity > sensitivityMax {
			cfg.Controller.MouseLookSensitivity = sensitivityMax
		}
		settings.Dirty = true
	}

	if settings.Dirty {
		_ = SaveSettings(CurrentSettings(settings.Overlay))
		settings.Dirty = false
	}
}

// GetOrCreateSettings returns the singleton settings state, creating it
// from config defaults if needed.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = e.World.Entry(e.Create(cfg.Default, components.Settings))
		components.Settings.SetValue(entry, components.SettingsData{
			Overlay: cfg.Debug.Overlay,
		})
	}
	return components.Settings.Get(entry)
}
