package filter

import (
	"github.com/ramonehamilton/lotto-companion/internal/analysis"
	"github.com/ramonehamilton/lotto-companion/internal/lottery"
)

// NotDuplicate reports whether the candidate's main numbers differ from
// every combination already accepted this session.
func NotDuplicate(candidate lottery.Combination, accepted []lottery.Combination) bool {
	for _, a := range accepted {
		if candidate.Equal(a) {
			return false
		}
	}
	return true
}

// OddEvenBalanced reports whether the count of even numbers is in [1,4],
// rejecting all-odd and all-even combinations.
func OddEvenBalanced(numbers []int) bool {
	evens := 0
	for _, n := range numbers {
		if n%2 == 0 {
			evens++
		}
	}
	return evens >= 1 && evens <= len(numbers)-1
}

// GridSpread reports whether the numbers' row and column patterns over a
// rows×cols overlay are both in the given allow-lists.
func GridSpread(numbers []int, rows, cols int, allowedRows, allowedCols []analysis.GridPattern) bool {
	rc, cc := analysis.GridCounts(numbers, rows, cols)
	return patternAllowed(analysis.ClassifyGridPattern(rc, len(numbers)), allowedRows) &&
		patternAllowed(analysis.ClassifyGridPattern(cc, len(numbers)), allowedCols)
}

func patternAllowed(p analysis.GridPattern, allowed []analysis.GridPattern) bool {
	for _, a := range allowed {
		if p == a {
			return true
		}
	}
	return false
}

// NoLongRuns reports whether the sorted numbers avoid any run of three
// consecutive integers. Two in a row is permitted.
func NoLongRuns(numbers []int) bool {
	for i := 0; i+2 < len(numbers); i++ {
		if numbers[i+1] == numbers[i]+1 && numbers[i+2] == numbers[i]+2 {
			return false
		}
	}
	return true
}

// MatchesHistoryProfile compares how often the candidate shares exactly N
// numbers with a historical draw against the expected reference profile
// scaled by the history size. The candidate fails as soon as any bucket's
// observed count exceeds its expected (floored) count.
func MatchesHistoryProfile(numbers []int, history lottery.DrawTable) bool {
	candidate := make(map[int]bool, len(numbers))
	for _, n := range numbers {
		candidate[n] = true
	}

	var observed [lottery.DrawSize + 1]int
	for _, row := range history {
		matches := 0
		for _, v := range row {
			if candidate[v] {
				matches++
			}
		}
		if matches > lottery.DrawSize {
			matches = lottery.DrawSize
		}
		observed[matches]++
	}

	for bucket, pct := range matchProfile {
		expected := int(pct * float64(len(history)))
		if observed[bucket] > expected {
			return false
		}
	}
	return true
}
