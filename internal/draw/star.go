package draw

import (
	"sort"

	"github.com/ramonehamilton/lotto-companion/internal/analysis"
	"github.com/ramonehamilton/lotto-companion/internal/lottery"
)

// weightedAttempts bounds the cumulative-weight selection loop before the
// uniform fallback kicks in.
const weightedAttempts = 100

// DrawStars draws count distinct star numbers weighted by their historical
// frequency. With no star history loaded it falls back to a uniform draw
// over the fixed star range.
func (s *Service) DrawStars(count int) ([]int, error) {
	if count <= 0 {
		return []int{}, nil
	}

	var flat []int
	for _, row := range s.stars {
		flat = append(flat, row...)
	}
	dist := analysis.ValuesDistribution(flat, lottery.MaxStar)
	return s.weightedDraw(dist, count, lottery.MaxStar)
}

// weightedDraw picks count distinct values with probability proportional
// to their count in dist: a uniform draw in [0,totalWeight) is matched
// against the cumulative weights. If the weighted selection fails to
// produce enough distinct values within the attempt bound, or the
// distribution is empty, it falls back to a uniform draw over 1..fallbackMax.
func (s *Service) weightedDraw(dist analysis.Distribution, count, fallbackMax int) ([]int, error) {
	values := dist.SortedKeys()
	total := 0
	for _, v := range values {
		total += dist[v]
	}

	chosen := make(map[int]bool, count)
	if total > 0 {
		for attempt := 0; attempt < weightedAttempts && len(chosen) < count; attempt++ {
			target := s.rng.Intn(total)
			cumulative := 0
			for _, v := range values {
				cumulative += dist[v]
				if target < cumulative {
					chosen[v] = true
					break
				}
			}
		}
	}

	if len(chosen) < count {
		// Weighted selection stalled (or no history): top up uniformly.
		remaining := make([]int, 0, fallbackMax)
		for v := 1; v <= fallbackMax; v++ {
			if !chosen[v] {
				remaining = append(remaining, v)
			}
		}
		fill, err := DrawFromList(s.rng, remaining, count-len(chosen))
		if err != nil {
			return nil, err
		}
		for _, v := range fill {
			chosen[v] = true
		}
	}

	result := make([]int, 0, count)
	for v := range chosen {
		result = append(result, v)
	}
	sort.Ints(result)
	return result, nil
}
