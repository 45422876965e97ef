package input

import (
	"github.com/hajimehoshi/ebiten/v2"

	cfg "github.com/automoto/strider/config"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// EbitenSource resolves the named bindings in cfg.Input against the live
// keyboard, mouse and standard-layout gamepads. Poll must be called once
// per frame, before any axis reads, to capture the cursor delta.
type EbitenSource struct {
	prevCursorX int
	prevCursorY int
	deltaX      float64
	deltaY      float64
	started     bool
}

func NewEbitenSource() *EbitenSource {
	return &EbitenSource{}
}

// Poll snapshots the per-frame cursor delta and refreshes the gamepad list.
// The first poll reads a delta of zero so the camera does not jump when the
// window gains focus.
func (s *EbitenSource) Poll() {
	x, y := ebiten.CursorPosition()
	if s.started {
		s.deltaX = float64(x - s.prevCursorX)
		s.deltaY = float64(y - s.prevCursorY)
	}
	s.prevCursorX, s.prevCursorY = x, y
	s.started = true

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
}

// Axis resolves a named axis. Unbound names read 0. Keyboard, gamepad and
// mouse contributions are summed and clamped to [-1, 1].
func (s *EbitenSource) Axis(name string) float64 {
	binding, ok := cfg.Input.Axes[name]
	if !ok {
		return 0
	}

	var val float64
	for _, key := range binding.Positive {
		if ebiten.IsKeyPressed(key) {
			val += 1
			break
		}
	}
	for _, key := range binding.Negative {
		if ebiten.IsKeyPressed(key) {
			val -= 1
			break
		}
	}

	if binding.GamepadAxis >= 0 {
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			av := ebiten.StandardGamepadAxisValue(gpID, binding.GamepadAxis)
			if binding.FlipGamepadAxis {
				av = -av
			}
			val += av
		}
	}

	switch binding.MouseDelta {
	case cfg.MouseDeltaX:
		val += s.normalizedDelta(s.deltaX)
	case cfg.MouseDeltaY:
		val += s.normalizedDelta(s.deltaY)
	}

	if val > 1 {
		val = 1
	} else if val < -1 {
		val = -1
	}
	return val
}

// Held resolves a named binary action. Unbound names read false.
func (s *EbitenSource) Held(name string) bool {
	binding, ok := cfg.Input.Actions[name]
	if !ok {
		return false
	}
	for _, key := range binding.Keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		for _, btn := range binding.GamepadButtons {
			if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
				return true
			}
		}
	}
	return false
}

func (s *EbitenSource) normalizedDelta(d float64) float64 {
	capPx := cfg.Input.MouseDeltaCap
	if capPx <= 0 {
		return 0
	}
	return d / capPx
}
