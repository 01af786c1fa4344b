package coordplot

import (
	"github.com/kpfaulkner/coordplot/coordio"
	"github.com/kpfaulkner/coordplot/options"
	"github.com/kpfaulkner/coordplot/render"
	"github.com/kpfaulkner/coordplot/transform"
	"github.com/kpfaulkner/coordplot/util"
)

// ReadPoints reads an "x y" per line coordinate file, skipping bad lines.
func ReadPoints(path string) ([]util.IntPoint, error) {
	res, err := coordio.ReadCoordinatesFile(path)
	if err != nil {
		return nil, err
	}
	return res.Points, nil
}

// Rotate rotates points by angleDegrees about center.
func Rotate(points []util.IntPoint, angleDegrees float64, center util.FloatPoint) []util.FloatPoint {
	return transform.Apply(transform.NewRotation(angleDegrees, center), points)
}

// Plot renders points to path. nil opts uses the default styling.
func Plot(points []util.FloatPoint, path string, opts *options.PlotOptions) error {
	r, err := render.NewRenderer(opts)
	if err != nil {
		return err
	}
	return r.Render(points, path)
}
