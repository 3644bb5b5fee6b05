package analysis

import (
	"sort"
	"strconv"
	"strings"
)

// GridPattern classifies how the 5 numbers of a draw distribute across the
// rows or columns of a grid overlay.
type GridPattern string

// The closed set of grid patterns for a 5-number draw.
const (
	Pattern5     GridPattern = "5"
	Pattern41    GridPattern = "4-1"
	Pattern32    GridPattern = "3-2"
	Pattern311   GridPattern = "3-1-1"
	Pattern221   GridPattern = "2-2-1"
	Pattern2111  GridPattern = "2-1-1-1"
	Pattern11111 GridPattern = "1-1-1-1-1"

	// PatternInvalid is returned for counts that sum to something other
	// than the draw size or match no known shape. It should not occur for
	// a real 5-number draw but is handled rather than treated as fatal.
	PatternInvalid GridPattern = "invalid"
)

// knownPatterns holds every valid pattern keyed by its canonical form.
var knownPatterns = map[string]GridPattern{
	"5":         Pattern5,
	"4-1":       Pattern41,
	"3-2":       Pattern32,
	"3-1-1":     Pattern311,
	"2-2-1":     Pattern221,
	"2-1-1-1":   Pattern2111,
	"1-1-1-1-1": Pattern11111,
}

// ClassifyGridPattern matches row or column occupancy counts against the
// fixed pattern list. Counts are reduced to their nonzero values sorted
// descending; any shape outside the known list classifies as invalid.
func ClassifyGridPattern(counts []int, drawSize int) GridPattern {
	nonzero := make([]int, 0, len(counts))
	sum := 0
	for _, c := range counts {
		if c < 0 {
			return PatternInvalid
		}
		sum += c
		if c > 0 {
			nonzero = append(nonzero, c)
		}
	}
	if sum != drawSize {
		return PatternInvalid
	}

	sort.Sort(sort.Reverse(sort.IntSlice(nonzero)))
	parts := make([]string, len(nonzero))
	for i, c := range nonzero {
		parts[i] = strconv.Itoa(c)
	}
	if p, ok := knownPatterns[strings.Join(parts, "-")]; ok {
		return p
	}
	return PatternInvalid
}

// GridCounts computes row and column occupancy counts for a set of numbers
// laid over a rows×cols grid. Number n occupies grid cell
// ((n-1)/cols, (n-1)%cols); numbers outside the grid are ignored.
func GridCounts(numbers []int, rows, cols int) (rowCounts, colCounts []int) {
	rowCounts = make([]int, rows)
	colCounts = make([]int, cols)
	for _, n := range numbers {
		if n < 1 || n > rows*cols {
			continue
		}
		rowCounts[(n-1)/cols]++
		colCounts[(n-1)%cols]++
	}
	return rowCounts, colCounts
}

// GridPatternDistribution classifies every draw of a table against a
// rows×cols grid overlay and returns how often each row pattern and each
// column pattern occurred.
func GridPatternDistribution(table [][]int, rows, cols, drawSize int) (rowDist, colDist map[GridPattern]int) {
	rowDist = make(map[GridPattern]int)
	colDist = make(map[GridPattern]int)
	for _, draw := range table {
		rc, cc := GridCounts(draw, rows, cols)
		rowDist[ClassifyGridPattern(rc, drawSize)]++
		colDist[ClassifyGridPattern(cc, drawSize)]++
	}
	return rowDist, colDist
}
