package transform

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kpfaulkner/coordplot/testcommon"
	"github.com/kpfaulkner/coordplot/util"
)

const tolerance = 1e-9

var origin = util.FloatPoint{}

func samplePoints() []util.IntPoint {
	return []util.IntPoint{{0, 0}, {1, 0}, {2, 2}, {-7, 13}, {480, 480}, {960, 0}, {123, -456}}
}

func TestRotationMatrix(t *testing.T) {
	for _, tc := range []struct {
		name     string
		degrees  float64
		expected Matrix
	}{
		{name: "zero", degrees: 0, expected: MatrixIdentity},
		{name: "quarter", degrees: 90, expected: Matrix{{0, -1}, {1, 0}}},
		{name: "half", degrees: 180, expected: Matrix{{-1, 0}, {0, -1}}},
		{name: "full", degrees: 360, expected: MatrixIdentity},
		{name: "negative quarter", degrees: -90, expected: Matrix{{0, 1}, {-1, 0}}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			m := RotationMatrix(tc.degrees)
			for r := 0; r < 2; r++ {
				for c := 0; c < 2; c++ {
					assert.InDelta(t, tc.expected[r][c], m[r][c], tolerance, "m[%d][%d]", r, c)
				}
			}
		})
	}
}

func TestRotateQuarterTurn(t *testing.T) {
	res := ApplyMatrix([]util.IntPoint{{1, 0}}, RotationMatrix(90), origin)
	testcommon.AssertPointsInDelta(t, []util.FloatPoint{{X: 0, Y: 1}}, res)
}

func TestRotateIdentityAngles(t *testing.T) {
	points := samplePoints()
	expected := util.ToFloats(points)
	center := util.FloatPoint{X: 480, Y: 480}

	for _, degrees := range []float64{0, 360, -360, 720} {
		res := Apply(NewRotation(degrees, center), points)
		testcommon.AssertPointsInDelta(t, expected, res)
	}
}

func TestRotateCenterIsFixed(t *testing.T) {
	centers := []util.FloatPoint{{X: 480, Y: 480}, {X: 0, Y: 0}, {X: -3.5, Y: 12.25}}
	for _, center := range centers {
		for _, degrees := range []float64{0, 10, 45, 90, 100, 180, 271.5, -33} {
			res := RotationMatrix(degrees).Transform(center, center)
			assert.InDelta(t, center.X, res.X, tolerance)
			assert.InDelta(t, center.Y, res.Y, tolerance)
		}
	}
}

func TestRotatePreservesDistance(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	points := make([]util.IntPoint, 50)
	for i := range points {
		points[i] = util.IntPoint{X: rng.Intn(2000) - 1000, Y: rng.Intn(2000) - 1000}
	}

	for _, degrees := range []float64{13, 90, 100, 233.3} {
		res := Apply(NewRotation(degrees, util.FloatPoint{X: 480, Y: 480}), points)
		require.Len(t, res, len(points))
		for i := range points {
			for j := i + 1; j < len(points); j++ {
				before := util.Distance(points[i], points[j])
				after := util.Distance(res[i], res[j])
				assert.InDelta(t, before, after, 1e-6, "points %d and %d at %v degrees", i, j, degrees)
			}
		}
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	points := samplePoints()
	orig := append([]util.IntPoint(nil), points...)

	_ = Apply(NewRotation(100, util.FloatPoint{X: 480, Y: 480}), points)
	assert.Equal(t, orig, points)
}

func TestApplyEmpty(t *testing.T) {
	res := Apply(NewRotation(100, origin), []util.IntPoint{})
	assert.NotNil(t, res)
	assert.Empty(t, res)

	res = ApplyMatrix[int](nil, MatrixIdentity, origin)
	assert.NotNil(t, res)
	assert.Empty(t, res)
}

func TestApplyKeepsOrder(t *testing.T) {
	points := []util.IntPoint{{1, 0}, {0, 1}, {-1, 0}}
	res := ApplyMatrix(points, RotationMatrix(90), origin)
	testcommon.AssertPointsInDelta(t, []util.FloatPoint{{X: 0, Y: 1}, {X: -1, Y: 0}, {X: 0, Y: -1}}, res)
}
