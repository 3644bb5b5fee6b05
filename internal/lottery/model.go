// Package lottery defines the domain model shared by the statistics
// builders, drawing strategies and the generation pipeline: draw tables,
// combinations, strategy identifiers and game constants.
package lottery

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Game constants for the supported lottery (5 main numbers, 2 stars).
const (
	// DrawSize is the number of main numbers per draw.
	DrawSize = 5

	// MaxNumber is the highest valid main number (range 1..MaxNumber).
	MaxNumber = 50

	// StarSize is the number of star numbers per draw.
	StarSize = 2

	// MaxStar is the highest valid star number (range 1..MaxStar).
	MaxStar = 12
)

// DrawTable is an ordered sequence of draws. Row 0 is the most recent draw;
// each row holds DrawSize main numbers in drawn order unless the table was
// produced by Sorted or Reduced.
type DrawTable [][]int

// StarTable is the parallel sequence of star numbers, StarSize per draw.
type StarTable [][]int

// Strategy identifies one of the interchangeable drawing algorithms.
type Strategy string

// The closed set of drawing strategies.
const (
	StrategySimpleList         Strategy = "simple-list"
	StrategyUserList           Strategy = "user-constrained-list"
	StrategyFullHistory        Strategy = "full-history-column"
	StrategyReducedHistory     Strategy = "reduced-history-column"
	StrategyPredecessorHistory Strategy = "predecessor-history-column"
	StrategySpread             Strategy = "spread-based-column"
	StrategyMappingTable       Strategy = "mapping-table-filtered"
	StrategyJokerWeighted      Strategy = "joker-weighted-history"
)

// Strategies lists every valid strategy identifier.
func Strategies() []Strategy {
	return []Strategy{
		StrategySimpleList,
		StrategyUserList,
		StrategyFullHistory,
		StrategyReducedHistory,
		StrategyPredecessorHistory,
		StrategySpread,
		StrategyMappingTable,
		StrategyJokerWeighted,
	}
}

// Valid reports whether s is a member of the closed strategy set.
func (s Strategy) Valid() bool {
	for _, known := range Strategies() {
		if s == known {
			return true
		}
	}
	return false
}

// Combination is an accepted set of drawn numbers. Main numbers and stars
// are kept sorted ascending; a combination is immutable once created.
type Combination struct {
	// Numbers holds DrawSize distinct main numbers, sorted ascending.
	Numbers []int

	// Stars holds 0..StarSize star numbers, sorted ascending.
	Stars []int

	// Strategy identifies the drawing algorithm that produced the combination.
	Strategy Strategy

	// OrderIndex establishes persisted ordering across save sessions.
	OrderIndex int64

	// CreatedAt records when the combination was accepted.
	CreatedAt time.Time
}

// NewCombination builds a combination from drawn numbers and stars,
// sorting both ascending.
func NewCombination(numbers, stars []int, strategy Strategy) Combination {
	n := append([]int(nil), numbers...)
	s := append([]int(nil), stars...)
	sort.Ints(n)
	sort.Ints(s)
	return Combination{
		Numbers:   n,
		Stars:     s,
		Strategy:  strategy,
		CreatedAt: time.Now().UTC(),
	}
}

// Equal reports whether two combinations hold the same main numbers.
// Stars and metadata are ignored: the session duplicate check is defined
// over main numbers only.
func (c Combination) Equal(other Combination) bool {
	if len(c.Numbers) != len(other.Numbers) {
		return false
	}
	for i := range c.Numbers {
		if c.Numbers[i] != other.Numbers[i] {
			return false
		}
	}
	return true
}

// String formats the combination for logs, e.g. "3 17 24 38 49 [2 9]".
func (c Combination) String() string {
	parts := make([]string, 0, len(c.Numbers))
	for _, n := range c.Numbers {
		parts = append(parts, fmt.Sprintf("%d", n))
	}
	if len(c.Stars) == 0 {
		return strings.Join(parts, " ")
	}
	stars := make([]string, 0, len(c.Stars))
	for _, s := range c.Stars {
		stars = append(stars, fmt.Sprintf("%d", s))
	}
	return fmt.Sprintf("%s [%s]", strings.Join(parts, " "), strings.Join(stars, " "))
}

// DrawRecord is one parsed historical draw as produced by the ingest layer.
type DrawRecord struct {
	Date    time.Time
	Numbers []int
	Stars   []int
}

// Validate checks a draw table against the game constraints. It returns
// ErrEmptyTable, ErrEmptyRow or ErrInvalidNumberRange on the first violation.
func (t DrawTable) Validate(maxValue int) error {
	if len(t) == 0 {
		return ErrEmptyTable
	}
	if len(t[0]) == 0 {
		return ErrEmptyRow
	}
	for r, row := range t {
		for c, v := range row {
			if v < 1 || v > maxValue {
				return fmt.Errorf("row %d column %d value %d: %w", r, c, v, ErrInvalidNumberRange)
			}
		}
	}
	return nil
}
