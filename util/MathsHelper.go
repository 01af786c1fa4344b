package util

import (
	"errors"
	"math"
)

// Bounds is an axis aligned box in data space.
type Bounds struct {
	Min FloatPoint
	Max FloatPoint
}

func (b Bounds) Width() float64 {
	return b.Max.X - b.Min.X
}

func (b Bounds) Height() float64 {
	return b.Max.Y - b.Min.Y
}

func (b Bounds) Center() FloatPoint {
	return FloatPoint{X: (b.Min.X + b.Max.X) / 2, Y: (b.Min.Y + b.Max.Y) / 2}
}

// BoundsOf returns the tightest box holding every point.
func BoundsOf(points []FloatPoint) (Bounds, error) {
	if len(points) == 0 {
		return Bounds{}, errors.New("no points to bound")
	}
	b := Bounds{
		Min: FloatPoint{X: math.Inf(1), Y: math.Inf(1)},
		Max: FloatPoint{X: math.Inf(-1), Y: math.Inf(-1)},
	}
	for _, p := range points {
		b.Min.X = math.Min(b.Min.X, p.X)
		b.Min.Y = math.Min(b.Min.Y, p.Y)
		b.Max.X = math.Max(b.Max.X, p.X)
		b.Max.Y = math.Max(b.Max.Y, p.Y)
	}
	return b, nil
}

// EqualAspect widens b so that one data unit takes the same number of pixels
// on both axes of a width x height canvas. A degenerate axis is padded to one
// unit either side so it still has a visible range.
func EqualAspect(b Bounds, width float64, height float64) Bounds {
	if b.Width() == 0 {
		b.Min.X--
		b.Max.X++
	}
	if b.Height() == 0 {
		b.Min.Y--
		b.Max.Y++
	}

	c := b.Center()
	unitsPerPixel := math.Max(b.Width()/width, b.Height()/height)
	halfW := unitsPerPixel * width / 2
	halfH := unitsPerPixel * height / 2
	return Bounds{
		Min: FloatPoint{X: c.X - halfW, Y: c.Y - halfH},
		Max: FloatPoint{X: c.X + halfW, Y: c.Y + halfH},
	}
}
