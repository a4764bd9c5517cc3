package geom

import "math"

const (
	HalfPi      = math.Pi / 2
	ThreeHalfPi = 3 * math.Pi / 2
	TwoPi       = 2 * math.Pi
)

func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// NormalizeAngle maps any finite angle into [0, 2π).
func NormalizeAngle(rad float64) float64 {
	a := math.Mod(rad, TwoPi)
	if a < 0 {
		a += TwoPi
	}
	// tiny negative inputs round up to exactly 2π
	if a >= TwoPi {
		a = 0
	}
	return a
}

// IsVertical reports whether a line at rad has no finite slope.
func IsVertical(rad float64) bool {
	a := NormalizeAngle(rad)
	return a == HalfPi || a == ThreeHalfPi
}

// IsHorizontal reports whether a line at rad has zero slope.
func IsHorizontal(rad float64) bool {
	a := NormalizeAngle(rad)
	return a == 0 || a == math.Pi
}
