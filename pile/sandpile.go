// Implements the toppling engine: the worklist-driven stabilization loop and
// the state-mutating operations (double, reseed, pattern swap) built on it.

package pile

import (
	"fmt"
	"math"
	"time"

	"github.com/sirupsen/logrus"
)

// Limits bounds a stabilization run. Zero values mean unlimited. Exceeding a
// limit halts the loop with *ResourceExhaustedError; the grid keeps its
// current (unstable) contents for inspection.
type Limits struct {
	MaxPasses int64 // ceiling on passes per Stabilize call
	MaxCells  int   // ceiling on stored grid cells
}

// ResourceExhaustedError reports a stabilization run that hit a configured
// pass or cell ceiling before reaching a stable state.
type ResourceExhaustedError struct {
	Reason string
	Passes int64
	Cells  int
}

func (e *ResourceExhaustedError) Error() string {
	return fmt.Sprintf("stabilization exhausted %s after %d passes (%d cells stored)",
		e.Reason, e.Passes, e.Cells)
}

// Sandpile is a chip-firing state: the sparse grid plus the parsed toppling
// pattern and its threshold. It persists across doubling, reseeding and
// pattern replacement, and is owned by a single goroutine.
type Sandpile struct {
	grid      *Grid
	offsets   []Offset
	threshold int64
	pattern   string
	seedPower int
	seed      int64
	limits    Limits

	passes  int64 // cumulative passes across all stabilizations
	topples int64 // cumulative cell topples
}

// New seeds the origin with 2^seedPower units of sand and parses pattern,
// which may be a catalogue name or raw pattern text. The pile is returned
// unstabilized; call Stabilize to run it to a fixed point.
func New(seedPower int, pattern string) (*Sandpile, error) {
	return NewWithLimits(seedPower, pattern, Limits{})
}

// NewWithLimits is New with stabilization ceilings applied to every
// subsequent Stabilize, Double and Reseed call.
func NewWithLimits(seedPower int, pattern string, limits Limits) (*Sandpile, error) {
	if seedPower < 0 || seedPower > 62 {
		return nil, fmt.Errorf("seed power %d out of range [0, 62]", seedPower)
	}
	text := LookupPattern(pattern)
	offsets, err := ParsePattern(text)
	if err != nil {
		return nil, err
	}
	s := &Sandpile{
		grid:      NewGrid(),
		offsets:   offsets,
		threshold: int64(len(offsets)),
		pattern:   pattern,
		seedPower: seedPower,
		seed:      1 << seedPower,
		limits:    limits,
	}
	s.grid.Set(Cell{}, s.seed)
	return s, nil
}

// Stabilize topples the grid until every cell is below the threshold.
//
// Each pass is a synchronous wave: all overflow in the current state is
// computed into a delta map before any of it lands, so a chain reaction
// within one pass never double-counts a cell's own overflow and the result
// does not depend on map iteration order. The worklist holds exactly the
// cells at or above threshold; cells pushed over by a merge join the next
// pass, so stable regions are never rescanned.
//
// Total sand is conserved: a toppling cell loses quantum*threshold units and
// each of the threshold offset slots gains quantum.
func (s *Sandpile) Stabilize() error {
	worklist := make([]Cell, 0)
	s.grid.Each(func(c Cell, sand int64) {
		if sand >= s.threshold {
			worklist = append(worklist, c)
		}
	})

	start := time.Now()
	deltas := make(map[Cell]int64)
	var pass int64
	for len(worklist) > 0 {
		if s.limits.MaxPasses > 0 && pass >= s.limits.MaxPasses {
			return &ResourceExhaustedError{Reason: "pass budget", Passes: pass, Cells: s.grid.Len()}
		}

		for _, c := range worklist {
			sand := s.grid.Sand(c)
			quantum := sand / s.threshold
			s.grid.Set(c, sand%s.threshold)
			for _, off := range s.offsets {
				target := Cell{Row: c.Row + off.Row, Col: c.Col + off.Col}
				s.grid.Touch(target)
				deltas[target] += quantum
			}
			s.topples++
		}

		worklist = worklist[:0]
		for target, amount := range deltas {
			if s.grid.Add(target, amount) >= s.threshold {
				worklist = append(worklist, target)
			}
			delete(deltas, target)
		}

		pass++
		s.passes++
		if pass%10 == 0 {
			logrus.Debugf("pass %d: %d cells overflowing, %d stored", pass, len(worklist), s.grid.Len())
		}
		if pass%500 == 0 {
			logrus.Infof("stabilizing %q: %d passes, %d topples, %d cells, radius %d, %s elapsed",
				s.pattern, pass, s.topples, s.grid.Len(), s.grid.Radius(), time.Since(start).Round(time.Second))
		}
		if s.limits.MaxCells > 0 && s.grid.Len() > s.limits.MaxCells {
			return &ResourceExhaustedError{Reason: "cell budget", Passes: pass, Cells: s.grid.Len()}
		}
	}

	logrus.Debugf("stabilized %q after %d passes, grid %dx%d",
		s.pattern, pass, s.grid.Radius()*2+1, s.grid.Radius()*2+1)
	return nil
}

// Double multiplies every stored cell by 2 and restabilizes. Models
// renormalization-style growth of an existing stable pile. Doubling a cell
// already above math.MaxInt64/2 (possible only on a never-stabilized pile
// seeded at the power cap) is refused rather than overflowed.
func (s *Sandpile) Double() error {
	var max int64
	s.grid.Each(func(_ Cell, sand int64) {
		if sand > max {
			max = sand
		}
	})
	if max > math.MaxInt64/2 {
		return fmt.Errorf("doubling cell with %d sand would overflow", max)
	}
	s.grid.Scale(2)
	return s.Stabilize()
}

// Reseed drops the original 2^seedPower grains back on the origin and
// restabilizes. Models repeated grain drops at a fixed site.
func (s *Sandpile) Reseed() error {
	s.grid.Add(Cell{}, s.seed)
	return s.Stabilize()
}

// ReplacePattern swaps in a new toppling pattern (catalogue name or raw
// text) without touching the grid. The change takes effect on the next
// stabilizing operation.
func (s *Sandpile) ReplacePattern(pattern string) error {
	offsets, err := ParsePattern(LookupPattern(pattern))
	if err != nil {
		return err
	}
	s.offsets = offsets
	s.threshold = int64(len(offsets))
	s.pattern = pattern
	return nil
}

// Grid exposes the underlying sparse grid. Callers must not mutate it while
// a stabilization is in flight.
func (s *Sandpile) Grid() *Grid { return s.grid }

// Threshold returns the toppling threshold (the pattern's offset count).
func (s *Sandpile) Threshold() int64 { return s.threshold }

// Pattern returns the pattern name or text the pile was built with.
func (s *Sandpile) Pattern() string { return s.pattern }

// SeedPower returns the power P of the original 2^P seed.
func (s *Sandpile) SeedPower() int { return s.seedPower }

// Passes returns the cumulative stabilization pass count.
func (s *Sandpile) Passes() int64 { return s.passes }

// Topples returns the cumulative number of cell topples.
func (s *Sandpile) Topples() int64 { return s.topples }
