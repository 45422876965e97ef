package gamemath

// Lerp linearly interpolates from a to b by t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Smooth moves current toward target with an interpolation factor of
// rate*dt, clamped to [0, 1]. A rate of 0 freezes current; callers that
// want "no smoothing" must bypass the filter rather than pass rate 0.
func Smooth(current, target, rate, dt float64) float64 {
	t := rate * dt
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return Lerp(current, target, t)
}

// SmoothVec2 applies Smooth per axis.
func SmoothVec2(current, target Vec2, rate, dt float64) Vec2 {
	return Vec2{
		X: Smooth(current.X, target.X, rate, dt),
		Y: Smooth(current.Y, target.Y, rate, dt),
	}
}
