package gamemath

import "math"

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// NormalizeDegrees wraps an angle into (-180, 180].
func NormalizeDegrees(deg float64) float64 {
	m := math.Mod(deg, 360)
	if m > 180 {
		m -= 360
	} else if m <= -180 {
		m += 360
	}
	return m
}
