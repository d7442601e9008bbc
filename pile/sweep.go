package pile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SweepSpec describes a batch of sandpile runs, loadable from a YAML file:
//
//	output_dir: json
//	runs:
//	  - pattern: "+"
//	    powers: [4, 5, 6]
//	  - pattern: ".1. 1.1 .1."
//	    powers: [10]
//
// A run entry computes one result file per power, which doubles as the frame
// sequence for growth animations.
type SweepSpec struct {
	OutputDir string     `yaml:"output_dir"`
	Runs      []SweepRun `yaml:"runs"`
}

// SweepRun is one pattern swept across a list of seed powers.
type SweepRun struct {
	Pattern string `yaml:"pattern"`
	Powers  []int  `yaml:"powers"`
}

// LoadSweepSpec reads and parses a YAML sweep specification.
func LoadSweepSpec(path string) (*SweepSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading sweep spec: %w", err)
	}
	var spec SweepSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parsing sweep spec: %w", err)
	}
	return &spec, nil
}

// Validate checks every run before any computation starts: patterns must
// parse and powers must be in seedable range.
func (s *SweepSpec) Validate() error {
	if len(s.Runs) == 0 {
		return fmt.Errorf("sweep spec has no runs")
	}
	for i, run := range s.Runs {
		if _, err := ParsePattern(LookupPattern(run.Pattern)); err != nil {
			return fmt.Errorf("run %d: %w", i, err)
		}
		if len(run.Powers) == 0 {
			return fmt.Errorf("run %d (%s): no powers listed", i, run.Pattern)
		}
		for _, p := range run.Powers {
			if p < 0 || p > 62 {
				return fmt.Errorf("run %d (%s): power %d out of range [0, 62]", i, run.Pattern, p)
			}
		}
	}
	return nil
}
