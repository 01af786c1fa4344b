package main

import (
	"flag"
	"fmt"
	"io"
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
	debug := flag.Bool("debug", false, "debug logging")
	cpuProfile := flag.Bool("cpuprofile", false, "write a CPU profile to the current directory")
	flag.Parse()

	if *infile == "" {
		fmt.Printf("input file must be specified\n")
		os.Exit(1)
	}

	if err := run(*infile, *outBase, *backend, *debug, *cpuProfile); err != nil {
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

func run(infile string, outBase string, backend string, debug bool, cpuProfile bool) error {
	if cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}
	if debug {
		log.SetLevel(log.DebugLevel)
	}

	opts := options.PlainDefaults()
	opts.Backend = backend
	opts.Debug = debug

	p := core.NewPipeline(
		core.WithInputFilename(infile),
		core.WithOutputBase(outBase),
		core.WithPlotOptions(opts),
	)
	_, err := p.Run()
	return err
}
