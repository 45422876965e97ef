package components

import (
	"github.com/yohamta/donburi"
)

// LevelData holds the loaded arena's dimensions in world units, used by
// the debug overlay to frame the top-down view.
type LevelData struct {
	Name   string
	Width  float64
	Height float64
}

var Level = donburi.NewComponentType[LevelData]()
