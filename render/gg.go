package render

import (
	"fmt"
	"os"

	"github.com/gogpu/gg"
	"gonum.org/v1/plot"

	"github.com/kpfaulkner/coordplot/format"
	"github.com/kpfaulkner/coordplot/options"
	"github.com/kpfaulkner/coordplot/util"
)

const (
	jpegQuality   = 90
	ggMargin      = 40
	pointsPerInch = 72
)

// GGRenderer is a raster only backend drawing straight onto a gg software
// context. It has no text, so title and labels are not drawn.
type GGRenderer struct {
	opts *options.PlotOptions
}

func (r *GGRenderer) Render(points []util.FloatPoint, path string) (err error) {
	f, err := checkRenderable(points, path)
	if err != nil {
		return err
	}
	if !f.IsRaster() {
		return fmt.Errorf("%w: gg backend cannot write %s", ErrUnsupportedFormat, f)
	}

	dc := gg.NewContext(r.opts.CanvasWidth, r.opts.CanvasHeight)
	defer func() {
		if cerr := dc.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %v", ErrRenderFailure, cerr)
		}
	}()

	if err := r.draw(dc, points); err != nil {
		return fmt.Errorf("%w: %v", ErrRenderFailure, err)
	}

	return writeFile(path, func(out *os.File) error {
		if f == format.PNG {
			return dc.EncodePNG(out)
		}
		return dc.EncodeJPEG(out, jpegQuality)
	})
}

func (r *GGRenderer) draw(dc *gg.Context, points []util.FloatPoint) error {
	b, err := util.BoundsOf(points)
	if err != nil {
		return err
	}

	w := float64(r.opts.CanvasWidth - 2*ggMargin)
	h := float64(r.opts.CanvasHeight - 2*ggMargin)
	if w <= 0 || h <= 0 {
		return fmt.Errorf("canvas %dx%d too small", r.opts.CanvasWidth, r.opts.CanvasHeight)
	}
	view := util.EqualAspect(b, w, h)
	scale := w / view.Width()
	toPixel := func(p util.FloatPoint) (float64, float64) {
		return ggMargin + (p.X-view.Min.X)*scale, ggMargin + (view.Max.Y-p.Y)*scale
	}

	dc.ClearWithColor(gg.White)

	// grid on the major ticks gonum would label
	dc.SetRGB(0.85, 0.85, 0.85)
	dc.SetLineWidth(1)
	for _, t := range (plot.DefaultTicks{}).Ticks(view.Min.X, view.Max.X) {
		if t.IsMinor() {
			continue
		}
		x, _ := toPixel(util.FloatPoint{X: t.Value})
		dc.DrawLine(x, ggMargin, x, ggMargin+h)
	}
	for _, t := range (plot.DefaultTicks{}).Ticks(view.Min.Y, view.Max.Y) {
		if t.IsMinor() {
			continue
		}
		_, y := toPixel(util.FloatPoint{Y: t.Value})
		dc.DrawLine(ggMargin, y, ggMargin+w, y)
	}
	if err := dc.Stroke(); err != nil {
		return err
	}

	// glyph radius is in points, the context is in pixels
	radius := r.opts.GlyphRadius * r.opts.DPI / pointsPerInch
	dc.SetRGB(0, 0, 1)
	for _, p := range points {
		x, y := toPixel(p)
		dc.DrawCircle(x, y, radius)
	}
	return dc.Fill()
}
