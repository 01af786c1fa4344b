package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"

	"github.com/kpfaulkner/coordplot/options"
	"github.com/kpfaulkner/coordplot/render"
	"github.com/kpfaulkner/coordplot/transform"
	"github.com/kpfaulkner/coordplot/util"
)

// Profiles rotating and rendering a large generated point set with each
// backend.
func main() {
	count := flag.Int("n", 100000, "number of points")
	outDir := flag.String("o", os.TempDir(), "output directory")
	flag.Parse()

	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."))
	defer p.Stop()

	rng := rand.New(rand.NewSource(1))
	points := make([]util.IntPoint, *count)
	for i := range points {
		points[i] = util.IntPoint{X: rng.Intn(960), Y: rng.Intn(960)}
	}

	opts := options.RotatedDefaults()
	start := time.Now()
	rotated := transform.Apply(transform.NewRotation(opts.AngleDegrees, opts.Center), points)
	fmt.Printf("rotating %d points took %d ms\n", len(points), time.Since(start).Milliseconds())

	for _, backend := range []string{options.BackendGonum, options.BackendCanvas, options.BackendGG} {
		opts.Backend = backend
		r, err := render.NewRenderer(opts)
		if err != nil {
			log.Errorf("Error creating renderer: %v", err)
			return
		}

		start := time.Now()
		out := filepath.Join(*outDir, "bench-"+backend+".png")
		if err := r.Render(rotated, out); err != nil {
			log.Errorf("Error rendering %s: %v", backend, err)
			continue
		}
		fmt.Printf("%s render took %d ms\n", backend, time.Since(start).Milliseconds())
	}
}
