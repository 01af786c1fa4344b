package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"

	"github.com/kpfaulkner/coordplot/core"
	"github.com/kpfaulkner/coordplot/options"
)

func main() {
	infile := flag.String("i", "", "input coordinate file, one \"x y\" pair per line")
	outBase := flag.String("o", options.DefaultOutputBase, "output file name without extension")
	backend := flag.String("backend", options.BackendGonum, "render backend: gonum, canvas or gg")
	n := flag.Int("n", options.AngleParameter, "angle parameter, rotation is 10*(n+1) degrees")
	angle := flag.Float64("angle", math.NaN(), "rotation in degrees, overrides -n")
	debug := flag.Bool("debug", false, "debug logging")
	cpuProfile := flag.Bool("cpuprofile", false, "write a CPU profile to the current directory")
	flag.Parse()

	if *infile == "" {
		fmt.Printf("input file must be specified\n")
		os.Exit(1)
	}

	opts := options.RotatedDefaults()
	opts.Backend = *backend
	opts.Debug = *debug
	opts.AngleDegrees = options.AngleFromParameter(*n)
	if !math.IsNaN(*angle) {
		opts.AngleDegrees = *angle
	}

	if err := run(*infile, *outBase, opts, *cpuProfile); err != nil {
		os.Exit(report(os.Stdout, err))
	}
}

// report prints a fatal error as a single line and returns the exit status.
func report(w io.Writer, err error) int {
	if err == nil {
		return 0
	}
	fmt.Fprintf(w, "An error occurred: %v\n", err)
	return 1
}

func run(infile string, outBase string, opts *options.PlotOptions, cpuProfile bool) error {
	if cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}
	if opts.Debug {
		log.SetLevel(log.DebugLevel)
	}
	log.Debugf("rotating about %v", opts.Center)

	p := core.NewPipeline(
		core.WithInputFilename(infile),
		core.WithOutputBase(outBase),
		core.WithPlotOptions(opts),
	)
	_, err := p.Run()
	return err
}
