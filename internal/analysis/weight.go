package analysis

import (
	"github.com/ramonehamilton/lotto-companion/internal/lottery"
)

// ComputeWeights builds the weight table for a draw table: cell [r][c]
// counts how many times the number draws[r][c] reappears within the next
// distanceWindow linear slots after the end of row r.
//
// The table is treated as one long sequence of slots (row*width + col).
// For each row a frequency map of the window immediately following that
// row is built, and every number in the row reads its count from the map.
// The window is clamped to the remaining table length.
func ComputeWeights(table lottery.DrawTable, distanceWindow, maxValue int) (lottery.DrawTable, error) {
	if err := table.Validate(maxValue); err != nil {
		return nil, err
	}
	if distanceWindow <= 0 {
		return nil, lottery.ErrInvalidDistance
	}

	width := len(table[0])
	flat := make([]int, 0, len(table)*width)
	for _, row := range table {
		flat = append(flat, row...)
	}

	weights := make(lottery.DrawTable, len(table))
	for r, row := range table {
		weights[r] = make([]int, len(row))

		start := (r + 1) * width
		end := start + distanceWindow
		if start > len(flat) {
			start = len(flat)
		}
		if end > len(flat) {
			end = len(flat)
		}

		freq := make(map[int]int, end-start)
		for _, v := range flat[start:end] {
			freq[v]++
		}
		for c, v := range row {
			weights[r][c] = freq[v]
		}
	}

	return weights, nil
}
