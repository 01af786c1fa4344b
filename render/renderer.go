package render

import (
	"errors"
	"fmt"
	"os"

	"github.com/kpfaulkner/coordplot/format"
	"github.com/kpfaulkner/coordplot/options"
	"github.com/kpfaulkner/coordplot/util"
)

var (
	ErrEmptyPointSet     = errors.New("no points to plot")
	ErrUnsupportedFormat = errors.New("output format not supported by renderer")
	ErrUnknownBackend    = errors.New("unknown render backend")
	ErrRenderFailure     = errors.New("render failure")
)

// Renderer draws a point set as a scatter plot and writes it to path, the
// image format being taken from the path extension.
type Renderer interface {
	Render(points []util.FloatPoint, path string) error
}

// NewRenderer returns the backend named by opts.Backend.
func NewRenderer(opts *options.PlotOptions) (Renderer, error) {
	opts = options.NewPlotOptions(opts)
	switch opts.Backend {
	case options.BackendGonum:
		return &GonumRenderer{opts: opts}, nil
	case options.BackendCanvas:
		return &CanvasRenderer{opts: opts}, nil
	case options.BackendGG:
		return &GGRenderer{opts: opts}, nil
	}
	return nil, fmt.Errorf("%q: %w", opts.Backend, ErrUnknownBackend)
}

// checkRenderable validates everything that can be checked before any
// drawing resource is acquired.
func checkRenderable(points []util.FloatPoint, path string) (format.Format, error) {
	if len(points) == 0 {
		return 0, ErrEmptyPointSet
	}
	f, err := format.FromExtension(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
	}
	return f, nil
}

// writeFile creates path, hands it to write and always closes it. A failed
// write leaves no partial file behind.
func writeFile(path string, write func(f *os.File) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRenderFailure, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %v", ErrRenderFailure, cerr)
		}
		if err != nil {
			os.Remove(path)
		}
	}()

	if err := write(f); err != nil {
		return fmt.Errorf("%w: %v", ErrRenderFailure, err)
	}
	return nil
}

// pixelsToInches converts a pixel count at dpi.
func pixelsToInches(px int, dpi float64) float64 {
	return float64(px) / dpi
}
