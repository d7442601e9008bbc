// Implements parsing of textual toppling patterns into neighbour cell offsets.
// A pattern is a square character grid; each digit marks a direction that
// receives sand when a cell topples, with the digit's value as multiplicity.

package pile

import (
	"fmt"
	"strings"
)

// Delimiter is the pattern character marking a cell with no offset.
const Delimiter = '.'

// Cell identifies a lattice point. Cells compare and hash by value, so they
// serve directly as sparse grid keys.
type Cell struct {
	Row int
	Col int
}

// Offset is a direction relative to a toppling cell. The same offset may
// appear several times in a parsed pattern; each occurrence is one slot of
// the redistributed sand.
type Offset struct {
	Row int
	Col int
}

// PatternError reports a pattern description that cannot produce a usable
// offset list. It is always detected at parse time, before any toppling.
type PatternError struct {
	Pattern string
	Reason  string
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %s", e.Pattern, e.Reason)
}

// ParsePattern converts a pattern description into an ordered offset list.
//
// The description is a whitespace-separated list of equal-length rows forming
// a square grid, e.g. the plus pattern:
//
//	.1.
//	1.1  -> [(-1,0) (1,0) (0,1) (0,-1)], threshold 4
//	.1.
//
// '.' cells contribute nothing; a digit d contributes its offset d times.
// The toppling threshold is the length of the returned list. Empty patterns,
// ragged or non-square layouts, characters outside '.' and '1'..'9', and
// patterns yielding no offsets at all are rejected with *PatternError.
func ParsePattern(pattern string) ([]Offset, error) {
	rows := strings.Fields(pattern)
	if len(rows) == 0 {
		return nil, &PatternError{Pattern: pattern, Reason: "empty pattern"}
	}
	width := len(rows[0])
	for i, row := range rows {
		if len(row) != width {
			return nil, &PatternError{
				Pattern: pattern,
				Reason:  fmt.Sprintf("row %d has length %d, want %d", i, len(row), width),
			}
		}
	}
	if width != len(rows) {
		return nil, &PatternError{
			Pattern: pattern,
			Reason:  fmt.Sprintf("layout is %dx%d, want square", len(rows), width),
		}
	}

	center := len(rows) / 2
	var offsets []Offset
	for rix, row := range rows {
		for cix, cell := range row {
			if cell == Delimiter {
				continue
			}
			if cell < '1' || cell > '9' {
				return nil, &PatternError{
					Pattern: pattern,
					Reason:  fmt.Sprintf("character %q at row %d col %d", cell, rix, cix),
				}
			}
			off := Offset{Row: center - cix, Col: center - rix}
			for n := 0; n < int(cell-'0'); n++ {
				offsets = append(offsets, off)
			}
		}
	}
	if len(offsets) == 0 {
		return nil, &PatternError{Pattern: pattern, Reason: "no toppling offsets (threshold would be 0)"}
	}
	return offsets, nil
}
