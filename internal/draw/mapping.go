package draw

import (
	"fmt"

	"github.com/ramonehamilton/lotto-companion/internal/lottery"
)

// Distance and weight bands for the mapping-table strategy. A number
// qualifies when its most recent distance is in (5,100] and its most
// recent weight is in (1,4].
const (
	mappingDistanceMin = 5
	mappingDistanceMax = 100
	mappingWeightMin   = 1
	mappingWeightMax   = 4
)

// mappingDraw filters the full number range to numbers whose precomputed
// distance and weight fall in the target bands, then delegates to the
// uniform list draw over the survivors. The distance and weight of a
// number are read at its most recent occurrence in the history.
func (s *Service) mappingDraw(count int) ([]int, error) {
	distances := make(map[int]int, lottery.MaxNumber)
	weights := make(map[int]int, lottery.MaxNumber)
	for r, row := range s.table {
		for c, v := range row {
			if _, seen := distances[v]; seen {
				continue
			}
			distances[v] = s.distances[r][c]
			weights[v] = s.weights[r][c]
		}
	}

	candidates := make([]int, 0, lottery.MaxNumber)
	for v := 1; v <= lottery.MaxNumber; v++ {
		d, seen := distances[v]
		if !seen {
			continue
		}
		w := weights[v]
		if d > mappingDistanceMin && d <= mappingDistanceMax &&
			w > mappingWeightMin && w <= mappingWeightMax {
			candidates = append(candidates, v)
		}
	}

	if len(candidates) < count {
		return nil, fmt.Errorf("only %d numbers in mapping bands, need %d: %w",
			len(candidates), count, lottery.ErrInvalidNumberRange)
	}
	return DrawFromList(s.rng, candidates, count)
}
