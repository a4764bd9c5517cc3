package geom

import (
	"math"

	"github.com/pkg/errors"
)

var ErrParallelLines = errors.New("parallel lines never meet")

// Line is an infinite line through Anchor heading at Angle (radians).
type Line struct {
	Anchor Point
	Angle  float64
}

// Along returns the point dist units from the anchor in the line's direction.
// Negative dist walks backwards.
func (l Line) Along(dist float64) Point {
	return Add(l.Anchor, Scale(DirectionVector(l.Angle), dist))
}

// Intersect is LineIntersection for two Line values.
func (l Line) Intersect(o Line) (Point, error) {
	return LineIntersection(l.Anchor, l.Angle, o.Anchor, o.Angle)
}

// LineIntersection gives the point where the line through pointA at angleA
// meets the line through pointB at angleB.
//
// Lines are solved in slope-intercept form, so vertical lines are handled
// first: a vertical A fixes x to pointA.X, then a vertical B fixes x to
// pointB.X, and only then are both slopes used. The line with the smaller
// angle is always taken as A, so swapping the arguments gives the same bits.
func LineIntersection(pointA Point, angleA float64, pointB Point, angleB float64) (Point, error) {
	if angleB < angleA {
		pointA, angleA, pointB, angleB = pointB, angleB, pointA, angleA
	}

	if angleA == angleB || isParallel(angleA, angleB) {
		return Point{}, ErrParallelLines
	}

	var x, y float64

	switch {
	case IsVertical(angleA):
		mB := math.Tan(angleB)
		tB := pointB.Y - mB*pointB.X
		x = pointA.X
		y = tB + mB*x
	case IsVertical(angleB):
		mA := math.Tan(angleA)
		tA := pointA.Y - mA*pointA.X
		x = pointB.X
		y = tA + mA*x
	default:
		mA := math.Tan(angleA)
		mB := math.Tan(angleB)
		if mA == mB {
			return Point{}, ErrParallelLines
		}
		tA := pointA.Y - mA*pointA.X
		tB := pointB.Y - mB*pointB.X
		x = (tA - tB) / (mB - mA)
		y = tA + mA*x
	}

	return Point{X: x, Y: y}, nil
}

// isParallel catches angles that differ by an exact multiple of π,
// including two vertical lines pointing opposite ways.
func isParallel(angleA, angleB float64) bool {
	if IsVertical(angleA) && IsVertical(angleB) {
		return true
	}
	return math.Mod(NormalizeAngle(angleA-angleB), math.Pi) == 0
}
