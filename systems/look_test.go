package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/strider/components"
	cfg "github.com/automoto/strider/config"
	"github.com/automoto/strider/input"
)

func TestUpdateLook_MouseYawAndPitch(t *testing.T) {
	withController(t, func(c *cfg.ControllerConfig) {
		c.MouseLookSensitivity = 2.0
		c.MouseLookSmoothing = 0
		c.InvertY = false
	})
	e, _ := newTestWorld(t)
	src := &input.StaticSource{Axes: map[string]float64{
		cfg.AxisMouseX: 0.5,
		cfg.AxisMouseY: 0.25,
	}}
	entry := spawnActor(t, e, src)

	UpdateLook(e)

	ctl := components.Controller.Get(entry)
	assert.InDelta(t, 1.0, ctl.Yaw, 1e-9)
	// Positive mouse Y (cursor down) looks down when invert is off.
	assert.InDelta(t, -0.5, ctl.Pitch, 1e-9)
}

func TestUpdateLook_InvertYSharedByMouseAndStick(t *testing.T) {
	withController(t, func(c *cfg.ControllerConfig) {
		c.MouseLookSensitivity = 2.0
		c.ControllerLookSensitivity = 180
		c.ControllerLookSmoothing = 1000 // effectively unfiltered at 60 Hz
		c.ControllerDeadzone = 0
		c.InvertY = true
	})
	e, _ := newTestWorld(t)
	src := &input.StaticSource{Axes: map[string]float64{
		cfg.AxisMouseY: 0.25,
		cfg.AxisLookY:  1,
	}}
	entry := spawnActor(t, e, src)

	UpdateLook(e)

	ctl := components.Controller.Get(entry)
	// Mouse contribution: +0.25*2 = +0.5. Stick: +1*180*(1/60) = +3.
	assert.InDelta(t, 3.5, ctl.Pitch, 1e-9)
}

func TestUpdateLook_PitchStaysClamped(t *testing.T) {
	withController(t, func(c *cfg.ControllerConfig) {
		c.MouseLookSensitivity = 2.0
		c.PitchMin, c.PitchMax = -89, 89
	})
	e, _ := newTestWorld(t)
	src := &input.StaticSource{Axes: map[string]float64{cfg.AxisMouseY: 1}}
	entry := spawnActor(t, e, src)

	for i := 0; i < 200; i++ {
		UpdateLook(e)
		ctl := components.Controller.Get(entry)
		require.GreaterOrEqual(t, ctl.Pitch, -89.0)
		require.LessOrEqual(t, ctl.Pitch, 89.0)
	}
	assert.Equal(t, -89.0, components.Controller.Get(entry).Pitch)
}

func TestUpdateLook_ZeroRateStickNeverMoves(t *testing.T) {
	// With a 0-rate stick filter, full deflection held for 10 frames never
	// changes the smoothed stick from its initial value, so the stick
	// contributes no rotation. The bypassed 0-rate mouse filter behaves
	// differently on purpose.
	withController(t, func(c *cfg.ControllerConfig) {
		c.ControllerLookSmoothing = 0
		c.MouseLookSmoothing = 0
		c.ControllerDeadzone = 0
	})
	e, _ := newTestWorld(t)
	src := &input.StaticSource{Axes: map[string]float64{
		cfg.AxisLookX: 1,
		cfg.AxisLookY: 1,
	}}
	entry := spawnActor(t, e, src)

	for i := 0; i < 10; i++ {
		UpdateLook(e)
	}

	ctl := components.Controller.Get(entry)
	assert.Zero(t, ctl.SmoothedStick.X)
	assert.Zero(t, ctl.SmoothedStick.Y)
	assert.Zero(t, ctl.Yaw)
	assert.Zero(t, ctl.Pitch)
}

func TestUpdateLook_StickScalesByFrameDelta(t *testing.T) {
	withController(t, func(c *cfg.ControllerConfig) {
		c.ControllerLookSensitivity = 180
		c.ControllerLookSmoothing = 1000
		c.ControllerDeadzone = 0
	})
	e, clock := newTestWorld(t)
	clock.FrameDelta = 0.5
	src := &input.StaticSource{Axes: map[string]float64{cfg.AxisLookX: 1}}
	entry := spawnActor(t, e, src)

	UpdateLook(e)

	// Held stick is degrees per second: 180 * 0.5s.
	assert.InDelta(t, 90, components.Controller.Get(entry).Yaw, 1e-9)
}

func TestUpdateLook_StickDeadzoneApplied(t *testing.T) {
	withController(t, func(c *cfg.ControllerConfig) {
		c.ControllerDeadzone = 0.18
		c.ControllerLookSmoothing = 1000
		c.ControllerLookSensitivity = 180
	})
	e, _ := newTestWorld(t)
	src := &input.StaticSource{Axes: map[string]float64{cfg.AxisLookX: 0.18}}
	entry := spawnActor(t, e, src)

	UpdateLook(e)
	assert.Zero(t, components.Controller.Get(entry).Yaw)
}

func TestUpdateLook_MouseSmoothingLagsRawInput(t *testing.T) {
	withController(t, func(c *cfg.ControllerConfig) {
		c.MouseLookSensitivity = 1
		c.MouseLookSmoothing = 8
	})
	e, _ := newTestWorld(t)
	src := &input.StaticSource{Axes: map[string]float64{cfg.AxisMouseX: 1}}
	entry := spawnActor(t, e, src)

	UpdateLook(e)

	// One frame of filtering at rate 8, 60 Hz: factor 8/60 of the raw
	// delta, well short of the bypassed value of 1.
	ctl := components.Controller.Get(entry)
	assert.InDelta(t, 8.0/60, ctl.Yaw, 1e-9)
}

func TestUpdateLook_SeedsFromBodyAndCamera(t *testing.T) {
	withController(t, nil)
	e, _ := newTestWorld(t)
	entry := spawnActor(t, e, &input.StaticSource{})

	rb := components.RigidBody.Get(entry)
	rb.Yaw = 135
	cam := components.Camera.Get(entry)
	cam.Pitch = 350 // engine-style 0..360 local angle

	UpdateLook(e)

	ctl := components.Controller.Get(entry)
	assert.Equal(t, 135.0, ctl.Yaw)
	// Camera pitch is normalized into (-180, 180] before use.
	assert.InDelta(t, -10, ctl.Pitch, 1e-9)
	assert.True(t, ctl.Seeded)
}

func TestUpdateLook_NoSourceIsANoOp(t *testing.T) {
	withController(t, nil)
	e, _ := newTestWorld(t)
	entry := spawnActor(t, e, nil)

	UpdateLook(e)

	ctl := components.Controller.Get(entry)
	assert.False(t, ctl.Seeded)
	assert.Zero(t, ctl.Yaw)
}

func TestUpdateCamera_AppliesPitchWhenPresent(t *testing.T) {
	withController(t, nil)
	e, _ := newTestWorld(t)
	entry := spawnActor(t, e, &input.StaticSource{})

	ctl := components.Controller.Get(entry)
	ctl.Pitch = -42

	UpdateCamera(e)
	assert.Equal(t, -42.0, components.Camera.Get(entry).Pitch)

	// Removing the camera only disables pitch application.
	entry.RemoveComponent(components.Camera)
	assert.NotPanics(t, func() { UpdateCamera(e) })
}
