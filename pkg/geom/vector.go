package geom

import (
	"fmt"
	"math"
)

// Point is both a position and a free vector.
type Point struct {
	X float64
	Y float64
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// IsFinite is false when either coordinate is NaN or infinite.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

func Rotate(v Point, rad float64) Point {
	c := math.Cos(rad)
	s := math.Sin(rad)

	return Point{
		X: v.X*c - v.Y*s,
		Y: v.X*s + v.Y*c,
	}
}

func RotateDeg(v Point, deg float64) Point {
	return Rotate(v, DegToRad(deg))
}

func Scale(v Point, mult float64) Point {
	return Point{X: v.X * mult, Y: v.Y * mult}
}

func Add(v1, v2 Point) Point {
	return Point{X: v1.X + v2.X, Y: v1.Y + v2.Y}
}

func Midpoint(p1, p2 Point) Point {
	return Point{
		X: (p1.X + p2.X) / 2,
		Y: (p1.Y + p2.Y) / 2,
	}
}

// AngleBetween returns the direction of the segment p1 -> p2.
func AngleBetween(p1, p2 Point) float64 {
	return math.Atan2(p2.Y-p1.Y, p2.X-p1.X)
}

// DirectionVector returns the unit vector pointing at rad.
func DirectionVector(rad float64) Point {
	return Point{X: math.Cos(rad), Y: math.Sin(rad)}
}

func DirectionVectorDeg(deg float64) Point {
	return DirectionVector(DegToRad(deg))
}
