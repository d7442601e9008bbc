package cmd

import (
	"errors"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sandpile-sim/sandpile-sim/pile"
	"github.com/sandpile-sim/sandpile-sim/pile/render"
)

var (
	// CLI flags for the toppling run
	seedPower int    // Seed the origin with 2^seedPower grains
	pattern   string // Toppling pattern name or raw pattern text
	outputDir string // Directory for cached JSON results
	force     bool   // Recompute even if a cached result exists
	doubles   int    // Number of double operations after the initial stabilization
	reseeds   int    // Number of reseed operations after the initial stabilization
	maxPasses int64  // Stabilization pass ceiling (0 = unlimited)
	maxCells  int    // Stored cell ceiling (0 = unlimited)

	// CLI flags for rendering the result
	pngPath  string  // Heatmap image output path (empty = skip)
	htmlPath string  // Heatmap HTML output path (empty = skip)
	figSize  float64 // Image edge length in inches
)

// runCmd computes (or loads from cache) one stabilized sandpile
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Topple a sandpile to its stable state",
	Run: func(cmd *cobra.Command, args []string) {
		path := pile.ResultPath(outputDir, pattern, seedPower)

		var result *pile.RenderedGrid
		if _, err := os.Stat(path); err == nil && !force && doubles == 0 && reseeds == 0 {
			cached, err := pile.LoadResult(path)
			if err != nil {
				logrus.Fatalf("Cached result unreadable: %v", err)
			}
			logrus.Infof("Using cached result %s (pass --force to recompute)", path)
			result = cached
		} else {
			result = computeResult(path)
		}

		if pngPath != "" {
			if err := render.HeatmapPNG(result, pngPath, figSize); err != nil {
				logrus.Fatalf("Heatmap render failed: %v", err)
			}
			logrus.Infof("Wrote %s", pngPath)
		}
		if htmlPath != "" {
			if err := render.HeatmapHTML(result, htmlPath, heatmapTitle(pattern, seedPower)); err != nil {
				logrus.Fatalf("Heatmap render failed: %v", err)
			}
			logrus.Infof("Wrote %s", htmlPath)
		}
	},
}

// computeResult runs the engine to convergence and caches the record.
func computeResult(path string) *pile.RenderedGrid {
	s, err := pile.NewWithLimits(seedPower, pattern, pile.Limits{MaxPasses: maxPasses, MaxCells: maxCells})
	if err != nil {
		logrus.Fatalf("Cannot start run: %v", err)
	}

	logrus.Infof("Starting sand: 2^%d, pattern %q, threshold %d", seedPower, pattern, s.Threshold())
	start := time.Now()

	if err := stabilizeSteps(s); err != nil {
		var exhausted *pile.ResourceExhaustedError
		if errors.As(err, &exhausted) {
			logrus.Fatalf("Run aborted: %v", exhausted)
		}
		logrus.Fatalf("Stabilization failed: %v", err)
	}

	result := s.Render()
	logrus.Infof("Toppling took %d passes and %d topples; final grid %dx%d (%s)",
		s.Passes(), s.Topples(), result.GridSize, result.GridSize, time.Since(start).Round(time.Millisecond))

	// The cache is keyed by power and pattern only, so a post-operation grid
	// must not land on the base run's key.
	if doubles > 0 || reseeds > 0 {
		logrus.Infof("Not caching: %d double and %d reseed operations applied", doubles, reseeds)
		return result
	}

	if err := result.Save(path); err != nil {
		logrus.Fatalf("Cannot cache result: %v", err)
	}
	logrus.Infof("Wrote %s", path)
	return result
}

// stabilizeSteps runs the initial stabilization followed by any requested
// double and reseed operations.
func stabilizeSteps(s *pile.Sandpile) error {
	if err := s.Stabilize(); err != nil {
		return err
	}
	for i := 0; i < doubles; i++ {
		if err := s.Double(); err != nil {
			return err
		}
	}
	for i := 0; i < reseeds; i++ {
		if err := s.Reseed(); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	runCmd.Flags().IntVar(&seedPower, "power", 8, "Seed the origin with 2^power grains")
	runCmd.Flags().StringVar(&pattern, "pattern", "+", "Toppling pattern (catalogue name or raw text, see `sandpile-sim patterns`)")
	runCmd.Flags().StringVar(&outputDir, "out", "json", "Directory for cached JSON results")
	runCmd.Flags().BoolVar(&force, "force", false, "Recompute even if a cached result exists")
	runCmd.Flags().IntVar(&doubles, "double", 0, "Apply the double operation N times after stabilizing")
	runCmd.Flags().IntVar(&reseeds, "reseed", 0, "Apply the reseed operation N times after stabilizing")
	runCmd.Flags().Int64Var(&maxPasses, "max-passes", 0, "Abort after this many stabilization passes (0 = unlimited)")
	runCmd.Flags().IntVar(&maxCells, "max-cells", 0, "Abort once the grid stores this many cells (0 = unlimited)")
	runCmd.Flags().StringVar(&pngPath, "png", "", "Also render the result to this image file")
	runCmd.Flags().StringVar(&htmlPath, "html", "", "Also render the result to this HTML file")
	runCmd.Flags().Float64Var(&figSize, "size", 8, "Rendered image edge length in inches")

	rootCmd.AddCommand(runCmd)
}
