package config

import "github.com/hajimehoshi/ebiten/v2"

// Axis and action names used by the controller bindings. The input source
// resolves them at poll time; an unbound name reads as zero.
const (
	AxisMoveX  = "Horizontal"
	AxisMoveY  = "Vertical"
	AxisMouseX = "Mouse X"
	AxisMouseY = "Mouse Y"
	AxisLookX  = "Look X"
	AxisLookY  = "Look Y"

	ActionSprint = "Sprint"
)

// MouseAxisKind selects which cursor-delta component feeds an axis.
type MouseAxisKind int

const (
	MouseNone MouseAxisKind = iota
	MouseDeltaX
	MouseDeltaY
)

// AxisBinding describes every device source that can drive a named axis.
// Key pairs contribute ±1, the standard-layout gamepad axis contributes its
// analog value, and a mouse-delta component contributes the per-frame
// cursor delta normalized by MouseDeltaCap. Contributions are summed and
// clamped to [-1, 1].
type AxisBinding struct {
	Positive []ebiten.Key
	Negative []ebiten.Key

	GamepadAxis     ebiten.StandardGamepadAxis // -1 when unused
	FlipGamepadAxis bool                       // standard layout reports stick-up as negative

	MouseDelta MouseAxisKind
}

// ActionBinding describes the devices that can hold a named binary action.
type ActionBinding struct {
	Keys           []ebiten.Key
	GamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings.
type InputConfig struct {
	Axes    map[string]AxisBinding
	Actions map[string]ActionBinding

	// MouseDeltaCap is the per-frame cursor delta, in pixels, that maps to
	// a full-scale mouse axis reading of ±1.
	MouseDeltaCap float64
}

// Input is the global input configuration.
var Input InputConfig

func init() {
	Input = InputConfig{
		MouseDeltaCap: 20,
		Axes: map[string]AxisBinding{
			AxisMoveX: {
				Positive:    []ebiten.Key{ebiten.KeyD, ebiten.KeyRight},
				Negative:    []ebiten.Key{ebiten.KeyA, ebiten.KeyLeft},
				GamepadAxis: ebiten.StandardGamepadAxisLeftStickHorizontal,
			},
			AxisMoveY: {
				Positive:        []ebiten.Key{ebiten.KeyW, ebiten.KeyUp},
				Negative:        []ebiten.Key{ebiten.KeyS, ebiten.KeyDown},
				GamepadAxis:     ebiten.StandardGamepadAxisLeftStickVertical,
				FlipGamepadAxis: true,
			},
			AxisMouseX: {
				GamepadAxis: -1,
				MouseDelta:  MouseDeltaX,
			},
			AxisMouseY: {
				GamepadAxis: -1,
				MouseDelta:  MouseDeltaY,
			},
			AxisLookX: {
				GamepadAxis: ebiten.StandardGamepadAxisRightStickHorizontal,
			},
			AxisLookY: {
				GamepadAxis:     ebiten.StandardGamepadAxisRightStickVertical,
				FlipGamepadAxis: true,
			},
		},
		Actions: map[string]ActionBinding{
			ActionSprint: {
				Keys: []ebiten.Key{ebiten.KeyShiftLeft, ebiten.KeyShiftRight},
				GamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftStick,
				},
			},
		},
	}
}
