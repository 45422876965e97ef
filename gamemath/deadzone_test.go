package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyDeadzone_InsideBandReadsZero(t *testing.T) {
	for _, val := range []float64{0, 0.05, -0.05, 0.18, -0.18} {
		assert.Zero(t, ApplyDeadzone(val, 0.18), "val %v inside the band", val)
	}
}

func TestApplyDeadzone_ZeroDeadzonePassesThrough(t *testing.T) {
	for _, val := range []float64{-1, -0.3, 0, 0.004, 1} {
		assert.Equal(t, val, ApplyDeadzone(val, 0))
	}
}

func TestApplyDeadzone_ContinuousAtBoundary(t *testing.T) {
	// Just past the deadzone the output must rise smoothly from zero with
	// the input's sign, not jump.
	const deadzone = 0.18
	const eps = 1e-4

	out := ApplyDeadzone(deadzone+eps, deadzone)
	assert.Greater(t, out, 0.0)
	assert.Less(t, out, 0.001)

	out = ApplyDeadzone(-deadzone-eps, deadzone)
	assert.Less(t, out, 0.0)
	assert.Greater(t, out, -0.001)
}

func TestApplyDeadzone_SaturatesAtFullDeflection(t *testing.T) {
	for _, deadzone := range []float64{0.05, 0.18, 0.5} {
		assert.Equal(t, 1.0, ApplyDeadzone(1, deadzone))
		assert.Equal(t, -1.0, ApplyDeadzone(-1, deadzone))
	}
}

func TestApplyDeadzone_LinearRemap(t *testing.T) {
	// raw 0.2 with deadzone 0.18 remaps to (0.2-0.18)/0.82.
	got := ApplyDeadzone(0.2, 0.18)
	assert.InDelta(t, 0.0244, got, 0.0001)
}

func TestApplyDeadzoneVec2_PerAxisNotRadial(t *testing.T) {
	// Each axis is remapped independently; a diagonal rest inside the band
	// reads (0, 0) even though its radial magnitude exceeds the deadzone.
	v := ApplyDeadzoneVec2(Vec2{X: 0.15, Y: 0.15}, 0.18)
	assert.Zero(t, v.X)
	assert.Zero(t, v.Y)

	v = ApplyDeadzoneVec2(Vec2{X: 0.2, Y: -1}, 0.18)
	assert.InDelta(t, 0.0244, v.X, 0.0001)
	assert.Equal(t, -1.0, v.Y)
}
