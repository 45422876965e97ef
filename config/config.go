package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the single render layer the demo uses.
const Default ecs.LayerID = iota

// ControllerConfig contains all first-person controller tuning values.
type ControllerConfig struct {
	// Movement
	MoveSpeed        float64 // world units per second
	SprintMultiplier float64 // applied while the sprint action is held

	// Look
	MouseLookSensitivity      float64 // degrees per unit of mouse-delta axis
	ControllerLookSensitivity float64 // degrees per second at full stick deflection
	InvertY                   bool    // shared by mouse and stick pitch
	PitchMin                  float64 // degrees
	PitchMax                  float64 // degrees

	// Filtering
	ControllerDeadzone      float64 // per-axis stick deadzone in [0, 0.5]
	ControllerLookSmoothing float64 // stick filter rate; 0 freezes the stick state
	MouseLookSmoothing      float64 // mouse filter rate; <=0 bypasses the filter

	// Window
	LockCursor bool

	// Axis and action name bindings (resolved by the input source)
	MoveAxisX    string
	MoveAxisY    string
	MouseAxisX   string
	MouseAxisY   string
	LookAxisX    string
	LookAxisY    string
	SprintAction string
}

// PhysicsConfig contains fixed-step integration configuration.
type PhysicsConfig struct {
	FixedTimestep float64 // seconds per physics tick
	MaxFrameDelta float64 // cap on measured frame delta to absorb stalls
}

// ArenaConfig contains demo arena configuration.
type ArenaConfig struct {
	LevelPath    string  // TMX path inside the embedded assets FS
	TileSize     float64 // world units per TMX pixel
	BodyWidth    float64 // player footprint on the ground plane
	BodyDepth    float64
	EyeHeight    float64
	PatrolBlockW float64 // gween-driven patrolling block
	PatrolBlockD float64
	PatrolRange  float64 // patrol travel distance in world units
	PatrolPeriod float64 // seconds for one leg of the patrol
}

// Config holds general game configuration.
type Config struct {
	Width  int
	Height int
	Title  string
}

// Global configuration instances
var C *Config
var Controller ControllerConfig
var Physics PhysicsConfig
var Arena ArenaConfig
var Debug DebugConfig

// DebugConfig contains debug/testing options.
type DebugConfig struct {
	Overlay bool // start with the top-down collision overlay visible
}

// Shared RGBA color constants for the overlay and HUD.
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Grey         = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
		Title:  "strider",
	}

	Controller = ControllerConfig{
		MoveSpeed:        5,
		SprintMultiplier: 1.7,

		MouseLookSensitivity:      2.0,
		ControllerLookSensitivity: 180,
		InvertY:                   false,
		PitchMin:                  -89,
		PitchMax:                  89,

		ControllerDeadzone:      0.18,
		ControllerLookSmoothing: 8,
		MouseLookSmoothing:      0,

		LockCursor: true,

		MoveAxisX:    AxisMoveX,
		MoveAxisY:    AxisMoveY,
		MouseAxisX:   AxisMouseX,
		MouseAxisY:   AxisMouseY,
		LookAxisX:    AxisLookX,
		LookAxisY:    AxisLookY,
		SprintAction: ActionSprint,
	}

	Physics = PhysicsConfig{
		FixedTimestep: 1.0 / 50.0,
		MaxFrameDelta: 0.25,
	}

	Arena = ArenaConfig{
		LevelPath:    "levels/arena.tmx",
		TileSize:     1.0 / 32.0, // 32 TMX pixels per world unit
		BodyWidth:    0.8,
		BodyDepth:    0.8,
		EyeHeight:    1.6,
		PatrolBlockW: 2,
		PatrolBlockD: 2,
		PatrolRange:  6,
		PatrolPeriod: 3,
	}

	Debug = DebugConfig{
		Overlay: true,
	}
}
