// Package leveldata provides TMX arena parsing. It has no dependencies on
// ebitengine, donburi, or resolv — pure data only. Coordinates are TMX
// pixels; callers scale them into world units.
package leveldata

// ArenaData holds everything parsed from a TMX arena file.
type ArenaData struct {
	Walls     []WallRect
	Patrols   []PatrolRect
	Spawn     SpawnPoint
	HasSpawn  bool
	MapWidth  int
	MapHeight int
}

// WallRect is a solid axis-aligned wall footprint.
type WallRect struct {
	X, Y, W, H float64
}

// PatrolRect is a moving-block footprint with its patrol parameters.
type PatrolRect struct {
	X, Y, W, H float64
	Range      float64 // patrol travel in TMX pixels; 0 means use the default
}

// SpawnPoint is the player spawn location and initial facing.
type SpawnPoint struct {
	X, Y   float64
	Facing int // degrees of initial yaw
}
