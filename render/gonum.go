package render

import (
	"fmt"
	"image/color"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/kpfaulkner/coordplot/format"
	"github.com/kpfaulkner/coordplot/options"
	"github.com/kpfaulkner/coordplot/util"
)

var pointColour = color.RGBA{B: 255, A: 255}

// GonumRenderer renders with gonum/plot. Raster output is drawn at the
// configured DPI so the image is exactly CanvasWidth x CanvasHeight pixels.
type GonumRenderer struct {
	opts *options.PlotOptions
}

func (r *GonumRenderer) Render(points []util.FloatPoint, path string) error {
	f, err := checkRenderable(points, path)
	if err != nil {
		return err
	}

	p, err := newScatterPlot(points, r.opts)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRenderFailure, err)
	}

	w, h := canvasLength(r.opts)
	var c vg.CanvasWriterTo
	if f.IsRaster() {
		img := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(int(r.opts.DPI)))
		if f == format.PNG {
			c = vgimg.PngCanvas{Canvas: img}
		} else {
			c = vgimg.JpegCanvas{Canvas: img}
		}
	} else {
		c, err = draw.NewFormattedCanvas(w, h, f.String())
		if err != nil {
			return fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
		}
	}

	dc := draw.New(c)
	fitEqualAspect(p, dc, points)
	p.Draw(dc)

	return writeFile(path, func(out *os.File) error {
		_, err := c.WriteTo(out)
		return err
	})
}

func canvasLength(opts *options.PlotOptions) (vg.Length, vg.Length) {
	w := vg.Length(pixelsToInches(opts.CanvasWidth, opts.DPI)) * vg.Inch
	h := vg.Length(pixelsToInches(opts.CanvasHeight, opts.DPI)) * vg.Inch
	return w, h
}

// newScatterPlot builds the styled plot: title, axis labels, grid and one
// scatter series.
func newScatterPlot(points []util.FloatPoint, opts *options.PlotOptions) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = opts.XLabel
	p.Y.Label.Text = opts.YLabel
	p.Add(plotter.NewGrid())

	xys := make(plotter.XYs, len(points))
	for i, pt := range points {
		xys[i].X = pt.X
		xys[i].Y = pt.Y
	}
	s, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, err
	}
	s.GlyphStyle.Color = pointColour
	s.GlyphStyle.Radius = vg.Length(opts.GlyphRadius)
	s.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(s)
	return p, nil
}

// fitEqualAspect sets the axis ranges so one data unit spans the same length
// on both axes of the plot's data area. The data area depends on the tick
// labels which depend on the ranges, so the fit is done twice.
func fitEqualAspect(p *plot.Plot, dc draw.Canvas, points []util.FloatPoint) {
	b, err := util.BoundsOf(points)
	if err != nil {
		return
	}

	size := dc.Rectangle.Size()
	for i := 0; i < 2; i++ {
		fitted := util.EqualAspect(b, float64(size.X), float64(size.Y))
		p.X.Min, p.X.Max = fitted.Min.X, fitted.Max.X
		p.Y.Min, p.Y.Max = fitted.Min.Y, fitted.Max.Y

		size = p.DataCanvas(dc).Rectangle.Size()
		if size.X <= 0 || size.Y <= 0 {
			return
		}
	}
}
