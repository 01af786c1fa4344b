package options

import (
	"math"

	"github.com/kpfaulkner/coordplot/util"
)

const (
	BackendGonum  = "gonum"
	BackendCanvas = "canvas"
	BackendGG     = "gg"

	DefaultDPI        = 100
	DefaultOutputBase = "result"

	// DefaultMarkerSize is a marker size in points squared: the square of
	// the marker diameter.
	DefaultMarkerSize = 5

	// AngleParameter is the fixed n used for angle = 10 * (n + 1).
	AngleParameter = 9
)

// DefaultGlyphRadius is the dot radius in points for DefaultMarkerSize.
var DefaultGlyphRadius = math.Sqrt(DefaultMarkerSize) / 2

// DefaultCenter is the fixed rotation center.
var DefaultCenter = util.FloatPoint{X: 480, Y: 480}

type PlotOptions struct {
	Debug bool

	// rotation. Rotate false means points are plotted as read.
	Rotate       bool
	Center       util.FloatPoint
	AngleDegrees float64

	// canvas size in pixels, DPI used to convert to physical units for
	// the vector backends.
	CanvasWidth  int
	CanvasHeight int
	DPI          float64

	Title  string
	XLabel string
	YLabel string

	// GlyphRadius is in points.
	GlyphRadius float64

	Backend string
}

// NewPlotOptions copies the supplied options, filling any zero valued field
// with its default. nil gives the plain (unrotated) defaults.
func NewPlotOptions(options *PlotOptions) *PlotOptions {

	opt := PlainDefaults()
	if options == nil {
		return opt
	}

	opt.Debug = options.Debug
	opt.Rotate = options.Rotate
	opt.Center = options.Center
	opt.AngleDegrees = options.AngleDegrees
	if options.CanvasWidth > 0 {
		opt.CanvasWidth = options.CanvasWidth
	}
	if options.CanvasHeight > 0 {
		opt.CanvasHeight = options.CanvasHeight
	}
	if options.DPI > 0 {
		opt.DPI = options.DPI
	}
	if options.Title != "" {
		opt.Title = options.Title
	}
	if options.XLabel != "" {
		opt.XLabel = options.XLabel
	}
	if options.YLabel != "" {
		opt.YLabel = options.YLabel
	}
	if options.GlyphRadius > 0 {
		opt.GlyphRadius = options.GlyphRadius
	}
	if options.Backend != "" {
		opt.Backend = options.Backend
	}
	return opt
}

// PlainDefaults are the settings for plotting points as read.
func PlainDefaults() *PlotOptions {
	return &PlotOptions{
		CanvasWidth:  960,
		CanvasHeight: 540,
		DPI:          DefaultDPI,
		Title:        "Visualization of Points",
		XLabel:       "X-axis",
		YLabel:       "Y-axis",
		GlyphRadius:  DefaultGlyphRadius,
		Backend:      BackendGonum,
	}
}

// RotatedDefaults are the settings for the rotating pipeline: a square
// canvas, rotation about DefaultCenter by AngleFromParameter(AngleParameter).
func RotatedDefaults() *PlotOptions {
	opt := PlainDefaults()
	opt.Rotate = true
	opt.Center = DefaultCenter
	opt.AngleDegrees = AngleFromParameter(AngleParameter)
	opt.CanvasHeight = 960
	opt.Title = "Visualization of Rotated Points"
	return opt
}

// AngleFromParameter derives the rotation angle in degrees from n.
func AngleFromParameter(n int) float64 {
	return float64(10 * (n + 1))
}
