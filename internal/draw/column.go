package draw

import (
	"fmt"

	"github.com/ramonehamilton/lotto-companion/internal/lottery"
)

// columnDraw picks one value per column of the given per-row-sorted table.
// Column 0 samples the whole column; each later column is filtered to
// values strictly greater than the previous pick before sampling. Values
// are sampled with multiplicity, so historically frequent values are
// proportionally more likely. Output is ascending by construction.
func (s *Service) columnDraw(table lottery.DrawTable, count int) ([]int, error) {
	if len(table) == 0 {
		return nil, lottery.ErrServiceNotReady
	}
	if count > len(table[0]) {
		return nil, fmt.Errorf("draw count %d exceeds table width %d: %w", count, len(table[0]), lottery.ErrInvalidNumberRange)
	}

	result := make([]int, 0, count)
	prev := 0
	for col := 0; col < count; col++ {
		candidates := table.Column(col)
		if col > 0 {
			candidates = greaterThan(candidates, prev)
		}
		if len(candidates) == 0 {
			return nil, fmt.Errorf("column %d has no values above %d: %w", col, prev, lottery.ErrInvalidNumberRange)
		}
		prev = candidates[s.rng.Intn(len(candidates))]
		result = append(result, prev)
	}
	return result, nil
}

// spreadDraw restricts each column's candidates to that column's coverage
// prefix (the shortest run of recent rows in which every distinct value of
// the column appears) before applying the ascending column draw.
func (s *Service) spreadDraw(count int) ([]int, error) {
	if count > len(s.sorted[0]) {
		return nil, fmt.Errorf("draw count %d exceeds table width %d: %w", count, len(s.sorted[0]), lottery.ErrInvalidNumberRange)
	}
	spreads := s.sorted.ColumnSpread()

	result := make([]int, 0, count)
	prev := 0
	for col := 0; col < count; col++ {
		candidates := s.sorted[:spreads[col]].Column(col)
		if col > 0 {
			candidates = greaterThan(candidates, prev)
		}
		if len(candidates) == 0 {
			return nil, fmt.Errorf("column %d spread has no values above %d: %w", col, prev, lottery.ErrInvalidNumberRange)
		}
		prev = candidates[s.rng.Intn(len(candidates))]
		result = append(result, prev)
	}
	return result, nil
}

// greaterThan filters list to values strictly greater than floor.
func greaterThan(list []int, floor int) []int {
	out := make([]int, 0, len(list))
	for _, v := range list {
		if v > floor {
			out = append(out, v)
		}
	}
	return out
}
