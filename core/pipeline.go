package core

import (
	"errors"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/kpfaulkner/coordplot/coordio"
	"github.com/kpfaulkner/coordplot/format"
	"github.com/kpfaulkner/coordplot/options"
	"github.com/kpfaulkner/coordplot/render"
	"github.com/kpfaulkner/coordplot/transform"
	"github.com/kpfaulkner/coordplot/util"
)

var ErrNoInput = errors.New("no input file specified")

// PathSelector chooses the output path for a base name.
type PathSelector interface {
	Select(base string) (string, error)
}

// Pipeline runs Reader -> (Transformer) -> Selector -> Renderer once.
type Pipeline struct {
	inputFilename string
	outputBase    string

	opts     *options.PlotOptions
	rotation *transform.Rotation
	selector PathSelector
	renderer render.Renderer
}

type PipelineOption func(*Pipeline)

func WithInputFilename(filename string) PipelineOption {
	return func(p *Pipeline) {
		p.inputFilename = filename
	}
}

func WithOutputBase(base string) PipelineOption {
	return func(p *Pipeline) {
		p.outputBase = base
	}
}

func WithPlotOptions(opts *options.PlotOptions) PipelineOption {
	return func(p *Pipeline) {
		p.opts = options.NewPlotOptions(opts)
	}
}

// WithRotation turns on rotation about center. It overrides any rotation in
// the plot options whatever the option order.
func WithRotation(angleDegrees float64, center util.FloatPoint) PipelineOption {
	return func(p *Pipeline) {
		rot := transform.NewRotation(angleDegrees, center)
		p.rotation = &rot
	}
}

func WithSelector(s PathSelector) PipelineOption {
	return func(p *Pipeline) {
		p.selector = s
	}
}

func WithRenderer(r render.Renderer) PipelineOption {
	return func(p *Pipeline) {
		p.renderer = r
	}
}

// Result describes a completed run.
type Result struct {
	Read       *coordio.ReadResult
	Plotted    []util.FloatPoint
	OutputPath string

	// RenderErr is set when the image could not be written. It does not fail
	// the run.
	RenderErr error
}

func (r *Result) Rendered() bool {
	return r.RenderErr == nil
}

// NewPipeline builds a pipeline. Without WithSelector the format is asked
// for on stdin/stdout, without WithRenderer the backend named in the plot
// options is used.
func NewPipeline(opts ...PipelineOption) *Pipeline {
	p := &Pipeline{
		outputBase: options.DefaultOutputBase,
		opts:       options.NewPlotOptions(nil),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.rotation != nil {
		p.opts.Rotate = true
		p.opts.AngleDegrees = p.rotation.AngleDegrees
		p.opts.Center = p.rotation.Center
	}
	if p.selector == nil {
		p.selector = format.NewSelector(os.Stdin, os.Stdout)
	}
	return p
}

// Run executes every stage. Reading, selection and renderer setup errors are
// returned. A failure writing the image is logged and reported in Result.
func (p *Pipeline) Run() (*Result, error) {
	if p.inputFilename == "" {
		return nil, ErrNoInput
	}

	renderer := p.renderer
	if renderer == nil {
		var err error
		if renderer, err = render.NewRenderer(p.opts); err != nil {
			return nil, err
		}
	}

	log.Infof("Reading coordinates...")
	read, err := coordio.ReadCoordinatesFile(p.inputFilename)
	if err != nil {
		return nil, err
	}
	res := &Result{Read: read}

	if p.opts.Rotate {
		rot := transform.NewRotation(p.opts.AngleDegrees, p.opts.Center)
		log.Infof("Rotation angle: %v degrees", rot.AngleDegrees)
		res.Plotted = transform.Apply(rot, read.Points)
	} else {
		res.Plotted = util.ToFloats(read.Points)
	}

	// checked before prompting so the user is not asked for a format that
	// will never be written
	if len(res.Plotted) == 0 {
		return res, fmt.Errorf("%s: %w", p.inputFilename, render.ErrEmptyPointSet)
	}

	if res.OutputPath, err = p.selector.Select(p.outputBase); err != nil {
		return res, err
	}

	log.Infof("Generating the plot...")
	if err := renderer.Render(res.Plotted, res.OutputPath); err != nil {
		res.RenderErr = err
		log.Errorf("Error saving the plot: %v", err)
		return res, nil
	}
	log.Infof("Plot successfully saved to file: %s", res.OutputPath)
	return res, nil
}
