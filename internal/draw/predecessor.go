package draw

import (
	"fmt"
	"sort"

	"github.com/ramonehamilton/lotto-companion/internal/lottery"
)

// predecessorDraw is the predecessor-history column strategy. Column 0
// picks via the score-based selection against column 1 with no lower
// bound. Each later column builds its candidate list from the values that
// historically appeared immediately before that column's reference value,
// filters to values above the previous pick, and runs the same score-based
// selection against the following column (plain uniform pick for the last
// column, which has no lookahead).
func (s *Service) predecessorDraw(count int) ([]int, error) {
	if count > len(s.sorted[0]) {
		return nil, fmt.Errorf("draw count %d exceeds table width %d: %w", count, len(s.sorted[0]), lottery.ErrInvalidNumberRange)
	}

	result := make([]int, 0, count)
	prev := 0
	for col := 0; col < count; col++ {
		var candidates []int
		if col == 0 {
			candidates = s.sorted.Column(0)
		} else {
			candidates = greaterThan(precedingValues(s.sorted.Column(col)), prev)
		}
		if len(candidates) == 0 {
			return nil, fmt.Errorf("column %d has no predecessor candidates above %d: %w", col, prev, lottery.ErrInvalidNumberRange)
		}

		var next []int
		if col+1 < count {
			next = s.sorted.Column(col + 1)
		}
		picked, err := s.scoredPick(candidates, next)
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", col, err)
		}
		prev = picked
		result = append(result, picked)
	}
	return result, nil
}

// precedingValues scans a column as a sequence and records, for every
// occurrence of the column's first element, the value immediately
// preceding that occurrence.
func precedingValues(column []int) []int {
	if len(column) == 0 {
		return nil
	}
	ref := column[0]
	out := make([]int, 0)
	for i := 1; i < len(column); i++ {
		if column[i] == ref {
			out = append(out, column[i-1])
		}
	}
	return out
}

// scoredPick selects one candidate. With a lookahead column it scores each
// candidate by how many lookahead values exceed it, keeps only candidates
// below min(median(next), NextMaxShare*max(next)), retains the top
// TopShare fraction by score and samples uniformly from that subset.
// Without a lookahead (last column) it picks uniformly.
func (s *Service) scoredPick(candidates, next []int) (int, error) {
	if len(next) == 0 {
		return candidates[s.rng.Intn(len(candidates))], nil
	}

	ceiling := float64(maxOf(next)) * s.tuning.NextMaxShare
	if m := float64(median(next)); m < ceiling {
		ceiling = m
	}

	type scored struct {
		value, score int
	}
	pool := make([]scored, 0, len(candidates))
	for _, c := range candidates {
		if float64(c) >= ceiling {
			continue
		}
		score := 0
		for _, n := range next {
			if n > c {
				score++
			}
		}
		pool = append(pool, scored{value: c, score: score})
	}
	if len(pool) == 0 {
		return 0, fmt.Errorf("no candidates below lookahead cap %.1f: %w", ceiling, lottery.ErrInvalidNumberRange)
	}

	sort.Slice(pool, func(i, j int) bool { return pool[i].score > pool[j].score })
	keep := int(float64(len(pool)) * s.tuning.TopShare)
	if keep < 1 {
		keep = 1
	}
	return pool[s.rng.Intn(keep)].value, nil
}

// median returns the middle value of list (upper middle for even lengths).
func median(list []int) int {
	sorted := append([]int(nil), list...)
	sort.Ints(sorted)
	return sorted[len(sorted)/2]
}

func maxOf(list []int) int {
	max := list[0]
	for _, v := range list[1:] {
		if v > max {
			max = v
		}
	}
	return max
}
