package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Wall   = donburi.NewTag().SetName("Wall")
	Patrol = donburi.NewTag().SetName("Patrol")
)

// Resolv tags for footprint collision
const (
	ResolvSolid  = "solid"
	ResolvPlayer = "Player"
	ResolvPatrol = "patrol"
)
