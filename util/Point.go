package util

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

type Number interface {
	constraints.Integer | constraints.Float
}

// Point is an (x, y) coordinate pair. Points are values and never mutated
// in place.
type Point[T Number] struct {
	X T
	Y T
}

// IntPoint is a point as read from a coordinate file.
type IntPoint = Point[int]

// FloatPoint is a point after transformation.
type FloatPoint = Point[float64]

func NewPoint[T Number](x T, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

func (p Point[T]) ToFloat() FloatPoint {
	return FloatPoint{X: float64(p.X), Y: float64(p.Y)}
}

func (p Point[T]) String() string {
	return fmt.Sprintf("(%v, %v)", p.X, p.Y)
}

// Distance returns the Euclidean distance between p and q.
func Distance[T Number](p Point[T], q Point[T]) float64 {
	dx := float64(p.X) - float64(q.X)
	dy := float64(p.Y) - float64(q.Y)
	return math.Hypot(dx, dy)
}

// ToFloats converts a whole point set, keeping order.
func ToFloats[T Number](points []Point[T]) []FloatPoint {
	res := make([]FloatPoint, len(points))
	for i, p := range points {
		res[i] = p.ToFloat()
	}
	return res
}

// SplitAxes separates a point set into its X and Y coordinate slices.
func SplitAxes[T Number](points []Point[T]) ([]T, []T) {
	xs := make([]T, len(points))
	ys := make([]T, len(points))
	for i, p := range points {
		xs[i] = p.X
		ys[i] = p.Y
	}
	return xs, ys
}
