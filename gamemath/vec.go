package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec2 is a 2D input-plane vector (stick reading, move axes).
type Vec2 struct {
	X, Y float64
}

// Len returns the vector's magnitude.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// ClampMagnitude scales v down so its magnitude does not exceed max.
// Diagonal input is clamped to the unit circle rather than the unit square.
func ClampMagnitude(v Vec2, max float64) Vec2 {
	l := v.Len()
	if l <= max || l == 0 {
		return v
	}
	s := max / l
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// YawQuat returns a pure-yaw orientation: a rotation of yaw degrees about
// the world up axis.
func YawQuat(yawDeg float64) mgl64.Quat {
	return mgl64.QuatRotate(mgl64.DegToRad(yawDeg), mgl64.Vec3{0, 1, 0})
}

// RotateYaw rotates a local-space vector into world space by the given yaw.
// At yaw 0 the transform is the identity, so local +X maps to world +X.
func RotateYaw(v mgl64.Vec3, yawDeg float64) mgl64.Vec3 {
	return YawQuat(yawDeg).Rotate(v)
}
