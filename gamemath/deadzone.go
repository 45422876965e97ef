package gamemath

import "math"

// ApplyDeadzone remaps a raw axis value so that readings inside the deadzone
// band become 0 while the remaining range is stretched back over [0, 1],
// keeping the original sign. The output is continuous at the deadzone
// boundary and saturates at exactly ±1. A deadzone of 0 (or less) returns
// the input unchanged.
func ApplyDeadzone(val, deadzone float64) float64 {
	if deadzone <= 0 {
		return val
	}
	mag := math.Abs(val)
	if mag <= deadzone {
		return 0
	}
	remapped := (mag - deadzone) / (1 - deadzone)
	if remapped > 1 {
		remapped = 1
	}
	if val < 0 {
		return -remapped
	}
	return remapped
}

// ApplyDeadzoneVec2 applies ApplyDeadzone to each axis independently.
// There is no radial deadzone; a stick resting diagonally inside the band
// reads (0, 0).
func ApplyDeadzoneVec2(v Vec2, deadzone float64) Vec2 {
	return Vec2{
		X: ApplyDeadzone(v.X, deadzone),
		Y: ApplyDeadzone(v.Y, deadzone),
	}
}
