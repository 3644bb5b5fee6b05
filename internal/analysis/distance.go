// Package analysis derives statistical tables from historical draw data:
// per-position distance and weight tables, value distributions and
// grid-pattern classifications. All functions are pure and operate on
// in-memory tables.
package analysis

import (
	"github.com/ramonehamilton/lotto-companion/internal/lottery"
)

// visit tracks the most recent scan position of a number value.
type visit struct {
	row, col  int
	lastIndex int
}

// ComputeDistances builds the distance table for a draw table: cell [r][c]
// holds the linear-slot gap between the occurrence of draws[r][c] and the
// nearest earlier-scanned occurrence of the same number.
//
// The scan runs in row-major order but right-to-left within each row, so
// with row 0 being the most recent draw the traversal moves from the
// present into the past. Each visited cell gets a strictly increasing
// linear index starting at 1. When a number is revisited, the gap is
// written at the previous visit's position. Cells whose number never
// recurs during the scan keep the zero default.
//
// The traversal order is a hard contract: it encodes "how many slots until
// this number is redrawn, scanning backward from present to past".
func ComputeDistances(table lottery.DrawTable, maxValue int) (lottery.DrawTable, error) {
	if err := table.Validate(maxValue); err != nil {
		return nil, err
	}

	distances := make(lottery.DrawTable, len(table))
	for i, row := range table {
		distances[i] = make([]int, len(row))
	}

	lastSeen := make(map[int]visit, maxValue)
	index := 0
	for r, row := range table {
		for c := len(row) - 1; c >= 0; c-- {
			index++
			v := row[c]
			if prev, ok := lastSeen[v]; ok {
				distances[prev.row][prev.col] = index - prev.lastIndex
			}
			lastSeen[v] = visit{row: r, col: c, lastIndex: index}
		}
	}

	return distances, nil
}
