package analysis

import (
	"testing"
)

func TestClassifyGridPattern(t *testing.T) {
	tests := []struct {
		name   string
		counts []int
		want   GridPattern
	}{
		{"All in one row", []int{5, 0, 0}, Pattern5},
		{"Four and one", []int{4, 1, 0, 0}, Pattern41},
		{"Three two", []int{2, 3}, Pattern32},
		{"Three one one", []int{1, 3, 0, 1}, Pattern311},
		{"Two two one", []int{2, 1, 2}, Pattern221},
		{"Two two one permuted", []int{1, 2, 0, 2, 0}, Pattern221},
		{"Two one one one", []int{1, 2, 1, 1}, Pattern2111},
		{"Fully spread", []int{1, 1, 1, 1, 1}, Pattern11111},
		{"Sum too small", []int{2, 2}, PatternInvalid},
		{"Sum too large", []int{3, 3}, PatternInvalid},
		{"Negative count", []int{6, -1}, PatternInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyGridPattern(tt.counts, 5); got != tt.want {
				t.Errorf("ClassifyGridPattern(%v) = %q, want %q", tt.counts, got, tt.want)
			}
		})
	}
}

func TestGridCounts(t *testing.T) {
	// 10x5 overlay: 1 -> (0,0), 5 -> (0,4), 6 -> (1,0), 50 -> (9,4).
	rows, cols := GridCounts([]int{1, 5, 6, 50, 23}, 10, 5)

	if rows[0] != 2 || rows[1] != 1 || rows[9] != 1 {
		t.Errorf("unexpected row counts: %v", rows)
	}
	if cols[0] != 2 || cols[4] != 2 {
		t.Errorf("unexpected column counts: %v", cols)
	}

	sum := 0
	for _, c := range rows {
		sum += c
	}
	if sum != 5 {
		t.Errorf("row counts sum = %d, want 5", sum)
	}
}

func TestGridPatternDistribution(t *testing.T) {
	table := [][]int{
		{1, 2, 3, 4, 5},      // single 10x5 row -> "5"
		{1, 11, 21, 31, 41},  // five rows, one each -> "1-1-1-1-1"
	}
	rowDist, colDist := GridPatternDistribution(table, 10, 5, 5)

	if rowDist[Pattern5] != 1 {
		t.Errorf("row dist %v: want one %q", rowDist, Pattern5)
	}
	if rowDist[Pattern11111] != 1 {
		t.Errorf("row dist %v: want one %q", rowDist, Pattern11111)
	}
	// 1,2,3,4,5 spread over five columns; 1,11,21,31,41 all land in column 0.
	if colDist[Pattern11111] != 1 || colDist[Pattern5] != 1 {
		t.Errorf("unexpected column dist %v", colDist)
	}
}
