package render

import (
	"fmt"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers"

	"github.com/kpfaulkner/coordplot/options"
	"github.com/kpfaulkner/coordplot/util"
)

const mmPerInch = 25.4

// CanvasRenderer draws the same gonum/plot scatter onto a tdewolff/canvas
// and lets its renderers pick the encoder from the file extension.
type CanvasRenderer struct {
	opts *options.PlotOptions
}

func (r *CanvasRenderer) Render(points []util.FloatPoint, path string) error {
	if _, err := checkRenderable(points, path); err != nil {
		return err
	}

	p, err := newScatterPlot(points, r.opts)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRenderFailure, err)
	}

	c := canvas.New(canvasMillimetres(r.opts))
	dc := renderers.NewGonumPlot(c)
	fitEqualAspect(p, dc, points)
	p.Draw(dc)

	if err := renderers.Write(path, c, canvas.DPI(r.opts.DPI)); err != nil {
		return fmt.Errorf("%w: %v", ErrRenderFailure, err)
	}
	return nil
}

func canvasMillimetres(opts *options.PlotOptions) (float64, float64) {
	w := pixelsToInches(opts.CanvasWidth, opts.DPI) * mmPerInch
	h := pixelsToInches(opts.CanvasHeight, opts.DPI) * mmPerInch
	return w, h
}
