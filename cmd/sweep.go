package cmd

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sandpile-sim/sandpile-sim/pile"
)

var (
	sweepSpecPath string // YAML sweep specification
	sweepForce    bool   // Recompute runs that already have cached results
)

// sweepCmd computes a batch of runs from a YAML spec. Sweeping one pattern
// across a range of powers produces the frame inputs for growth animations.
var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Compute a batch of sandpile runs from a YAML spec",
	Run: func(cmd *cobra.Command, args []string) {
		spec, err := pile.LoadSweepSpec(sweepSpecPath)
		if err != nil {
			logrus.Fatalf("Failed to load spec %s: %v", sweepSpecPath, err)
		}
		if err := spec.Validate(); err != nil {
			logrus.Fatalf("Invalid sweep spec: %v", err)
		}

		outDir := spec.OutputDir
		if outDir == "" {
			outDir = "json"
		}

		var computed, skipped int
		start := time.Now()
		for _, run := range spec.Runs {
			for _, power := range run.Powers {
				path := pile.ResultPath(outDir, run.Pattern, power)
				if _, err := os.Stat(path); err == nil && !sweepForce {
					logrus.Debugf("Skipping cached %s", path)
					skipped++
					continue
				}

				s, err := pile.New(power, run.Pattern)
				if err != nil {
					logrus.Fatalf("Run 2^%d %q: %v", power, run.Pattern, err)
				}
				if err := s.Stabilize(); err != nil {
					logrus.Fatalf("Run 2^%d %q: %v", power, run.Pattern, err)
				}
				if err := s.Render().Save(path); err != nil {
					logrus.Fatalf("Run 2^%d %q: %v", power, run.Pattern, err)
				}
				logrus.Infof("Wrote %s (%d passes)", path, s.Passes())
				computed++
			}
		}
		logrus.Infof("Sweep complete: %d computed, %d cached, %s elapsed",
			computed, skipped, time.Since(start).Round(time.Millisecond))
	},
}

func init() {
	sweepCmd.Flags().StringVar(&sweepSpecPath, "spec", "", "Path to a YAML sweep specification")
	sweepCmd.Flags().BoolVar(&sweepForce, "force", false, "Recompute runs that already have cached results")
	_ = sweepCmd.MarkFlagRequired("spec")

	rootCmd.AddCommand(sweepCmd)
}
