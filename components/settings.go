package components

import (
	"github.com/yohamta/donburi"
)

// SettingsData is the singleton runtime-settings state: which tuning keys
// changed this session and whether the debug overlay is visible.
type SettingsData struct {
	Overlay bool
	Dirty   bool // unsaved changes pending persistence
}

var Settings = donburi.NewComponentType[SettingsData]()
