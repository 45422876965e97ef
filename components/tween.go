package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// TweenData drives a patrolling obstacle along one axis of the ground
// plane with a looping tween sequence.
type TweenData struct {
	Sequence *gween.Sequence
	OriginZ  float64 // patrol start, world units; the tween offsets from here
}

var Tween = donburi.NewComponentType[TweenData]()
