package util

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		p        IntPoint
		q        IntPoint
		expected float64
	}{
		{IntPoint{0, 0}, IntPoint{3, 4}, 5},
		{IntPoint{1, 1}, IntPoint{1, 1}, 0},
		{IntPoint{-1, 0}, IntPoint{1, 0}, 2},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.expected, Distance(tt.p, tt.q), 1e-12, "Distance(%v, %v)", tt.p, tt.q)
	}
}

func TestToFloats(t *testing.T) {
	in := []IntPoint{{1, 2}, {-3, 4}}
	out := ToFloats(in)
	assert.Equal(t, []FloatPoint{{1, 2}, {-3, 4}}, out)
}

func TestSplitAxes(t *testing.T) {
	xs, ys := SplitAxes([]IntPoint{{0, 0}, {1, 0}, {2, 2}})
	assert.Equal(t, []int{0, 1, 2}, xs)
	assert.Equal(t, []int{0, 0, 2}, ys)

	xs, ys = SplitAxes([]IntPoint{})
	assert.Empty(t, xs)
	assert.Empty(t, ys)
}

func TestPointString(t *testing.T) {
	assert.Equal(t, "(1, 2)", NewPoint(1, 2).String())
}

func TestBoundsOf(t *testing.T) {
	b, err := BoundsOf([]FloatPoint{{1, 5}, {-2, 3}, {4, -1}})
	assert.NoError(t, err)
	assert.Equal(t, FloatPoint{-2, -1}, b.Min)
	assert.Equal(t, FloatPoint{4, 5}, b.Max)

	_, err = BoundsOf(nil)
	assert.Error(t, err)
}

func TestEqualAspect(t *testing.T) {
	for _, tc := range []struct {
		name   string
		bounds Bounds
		width  float64
		height float64
	}{
		{name: "wide data on square canvas", bounds: Bounds{Min: FloatPoint{0, 0}, Max: FloatPoint{10, 2}}, width: 100, height: 100},
		{name: "tall data on wide canvas", bounds: Bounds{Min: FloatPoint{0, 0}, Max: FloatPoint{1, 10}}, width: 960, height: 540},
		{name: "single point", bounds: Bounds{Min: FloatPoint{3, 3}, Max: FloatPoint{3, 3}}, width: 960, height: 540},
	} {
		t.Run(tc.name, func(t *testing.T) {
			res := EqualAspect(tc.bounds, tc.width, tc.height)

			assert.InDelta(t, res.Width()/tc.width, res.Height()/tc.height, 1e-9)
			assert.LessOrEqual(t, res.Min.X, tc.bounds.Min.X)
			assert.LessOrEqual(t, res.Min.Y, tc.bounds.Min.Y)
			assert.GreaterOrEqual(t, res.Max.X, tc.bounds.Max.X)
			assert.GreaterOrEqual(t, res.Max.Y, tc.bounds.Max.Y)
			assert.False(t, math.IsNaN(res.Width()))
		})
	}
}
