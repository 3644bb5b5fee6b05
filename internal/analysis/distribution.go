package analysis

import (
	"sort"

	"github.com/ramonehamilton/lotto-companion/internal/lottery"
)

// Distribution maps an integer value (a distance, a count or a drawn
// number) to its occurrence count. Iteration order is undefined; use
// SortedKeys when order matters.
type Distribution map[int]int

// SortedKeys returns the distribution's keys in ascending order.
func (d Distribution) SortedKeys() []int {
	keys := make([]int, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// ValuesDistribution counts occurrences of each value in list. Values
// outside [0, maxValue] are ignored rather than rejected, so the helper
// stays usable on partially dirty input.
func ValuesDistribution(list []int, maxValue int) Distribution {
	dist := make(Distribution)
	for _, v := range list {
		if v < 0 || v > maxValue {
			continue
		}
		dist[v]++
	}
	return dist
}

// TableDistribution flattens a table into a single value→count mapping
// across all cells.
func TableDistribution(table lottery.DrawTable, maxValue int) Distribution {
	dist := make(Distribution)
	for _, row := range table {
		for _, v := range row {
			if v < 0 || v > maxValue {
				continue
			}
			dist[v]++
		}
	}
	return dist
}

// TableDistributionRows converts a table distribution to the two-row
// [values][counts] array form, values ascending.
func TableDistributionRows(table lottery.DrawTable, maxValue int) [][]int {
	dist := TableDistribution(table, maxValue)
	keys := dist.SortedKeys()
	counts := make([]int, len(keys))
	for i, k := range keys {
		counts[i] = dist[k]
	}
	return [][]int{keys, counts}
}

// ColumnDistributions builds one distribution per column:
// result[col][value] = count of rows where column col holds value.
func ColumnDistributions(table lottery.DrawTable, maxValue int) []Distribution {
	if len(table) == 0 {
		return nil
	}
	width := len(table[0])
	dists := make([]Distribution, width)
	for c := 0; c < width; c++ {
		dists[c] = ValuesDistribution(table.Column(c), maxValue)
	}
	return dists
}
