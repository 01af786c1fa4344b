package transform

import (
	"math"

	"github.com/kpfaulkner/coordplot/util"
)

// Matrix is a 2x2 rotation matrix in row major order:
//
//	[0][0] [0][1]   cos -sin
//	[1][0] [1][1]   sin  cos
type Matrix [2][2]float64

var MatrixIdentity = Matrix{{1, 0}, {0, 1}}

// Rotation is a rotation by AngleDegrees (counter clockwise) about Center.
type Rotation struct {
	AngleDegrees float64
	Center       util.FloatPoint
}

func NewRotation(angleDegrees float64, center util.FloatPoint) Rotation {
	return Rotation{AngleDegrees: angleDegrees, Center: center}
}

func (r Rotation) Matrix() Matrix {
	return RotationMatrix(r.AngleDegrees)
}

// Apply rotates every point in points about r.Center.
func Apply[T util.Number](r Rotation, points []util.Point[T]) []util.FloatPoint {
	return ApplyMatrix(points, r.Matrix(), r.Center)
}

func Radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

func RotationMatrix(angleDegrees float64) Matrix {
	rad := Radians(angleDegrees)
	c, s := math.Cos(rad), math.Sin(rad)
	return Matrix{
		{c, -s},
		{s, c},
	}
}

// Transform maps p by translating center to the origin, applying m, then
// translating back.
func (m Matrix) Transform(p util.FloatPoint, center util.FloatPoint) util.FloatPoint {
	dx := p.X - center.X
	dy := p.Y - center.Y
	return util.FloatPoint{
		X: m[0][0]*dx + m[0][1]*dy + center.X,
		Y: m[1][0]*dx + m[1][1]*dy + center.Y,
	}
}

// ApplyMatrix returns a new point set, one output per input in the same
// order. points is not modified.
func ApplyMatrix[T util.Number](points []util.Point[T], m Matrix, center util.FloatPoint) []util.FloatPoint {
	res := make([]util.FloatPoint, len(points))
	for i, p := range points {
		res[i] = m.Transform(p.ToFloat(), center)
	}
	return res
}
