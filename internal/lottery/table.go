package lottery

import "sort"

// Sorted returns a copy of the table with each row sorted ascending.
// Draw order (row order) is unchanged.
func (t DrawTable) Sorted() DrawTable {
	out := make(DrawTable, len(t))
	for i, row := range t {
		sorted := append([]int(nil), row...)
		sort.Ints(sorted)
		out[i] = sorted
	}
	return out
}

// Reduced returns the shortest prefix of the table whose rows together
// cover every value in 1..maxValue, each row sorted ascending. The prefix
// is always cut from the original table, never rebuilt from mutated rows.
// If the full table never covers the range, the whole table is returned.
func (t DrawTable) Reduced(maxValue int) DrawTable {
	seen := make(map[int]bool, maxValue)
	cut := len(t)
	for i, row := range t {
		for _, v := range row {
			if v >= 1 && v <= maxValue {
				seen[v] = true
			}
		}
		if len(seen) == maxValue {
			cut = i + 1
			break
		}
	}
	return t[:cut].Sorted()
}

// Column returns the values of column c across all rows, in row order.
func (t DrawTable) Column(c int) []int {
	col := make([]int, 0, len(t))
	for _, row := range t {
		if c < len(row) {
			col = append(col, row[c])
		}
	}
	return col
}

// ColumnSpread returns, for each column, the minimum prefix length
// (scanning from the most recent row) required for every distinct value of
// that column to appear at least once.
func (t DrawTable) ColumnSpread() []int {
	if len(t) == 0 {
		return nil
	}
	width := len(t[0])
	spreads := make([]int, width)
	for c := 0; c < width; c++ {
		col := t.Column(c)
		distinct := make(map[int]bool, len(col))
		for _, v := range col {
			distinct[v] = true
		}
		seen := make(map[int]bool, len(distinct))
		for i, v := range col {
			seen[v] = true
			if len(seen) == len(distinct) {
				spreads[c] = i + 1
				break
			}
		}
	}
	return spreads
}

// MinMaxPerColumn returns a two-row table: row 0 holds the minimum of each
// column, row 1 the maximum. Returns nil for an empty table.
func (t DrawTable) MinMaxPerColumn() [][]int {
	if len(t) == 0 || len(t[0]) == 0 {
		return nil
	}
	width := len(t[0])
	mins := make([]int, width)
	maxes := make([]int, width)
	copy(mins, t[0])
	copy(maxes, t[0])
	for _, row := range t[1:] {
		for c := 0; c < width && c < len(row); c++ {
			if row[c] < mins[c] {
				mins[c] = row[c]
			}
			if row[c] > maxes[c] {
				maxes[c] = row[c]
			}
		}
	}
	return [][]int{mins, maxes}
}
