package filter

import (
	"testing"

	"github.com/ramonehamilton/lotto-companion/internal/lottery"
)

func TestOddEvenBalanced(t *testing.T) {
	tests := []struct {
		name    string
		numbers []int
		want    bool
	}{
		{"All even", []int{2, 4, 6, 8, 10}, false},
		{"All odd", []int{1, 3, 5, 7, 9}, false},
		{"Two even three odd", []int{1, 2, 3, 4, 5}, true},
		{"One even", []int{1, 3, 5, 7, 10}, true},
		{"Four even", []int{2, 4, 6, 8, 11}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OddEvenBalanced(tt.numbers); got != tt.want {
				t.Errorf("OddEvenBalanced(%v) = %v, want %v", tt.numbers, got, tt.want)
			}
		})
	}
}

func TestNoLongRuns(t *testing.T) {
	tests := []struct {
		name    string
		numbers []int
		want    bool
	}{
		{"Three consecutive", []int{1, 2, 3, 10, 20}, false},
		{"Two consecutive only", []int{1, 2, 4, 10, 20}, true},
		{"Run at the end", []int{5, 10, 30, 31, 32}, false},
		{"No runs", []int{3, 9, 17, 28, 44}, true},
		{"Two separate pairs", []int{1, 2, 10, 11, 30}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NoLongRuns(tt.numbers); got != tt.want {
				t.Errorf("NoLongRuns(%v) = %v, want %v", tt.numbers, got, tt.want)
			}
		})
	}
}

func TestNotDuplicate(t *testing.T) {
	accepted := []lottery.Combination{
		lottery.NewCombination([]int{1, 2, 3, 4, 5}, nil, lottery.StrategySimpleList),
	}

	dup := lottery.NewCombination([]int{5, 4, 3, 2, 1}, []int{7}, lottery.StrategyFullHistory)
	if NotDuplicate(dup, accepted) {
		t.Error("identical main numbers should be rejected regardless of stars/strategy")
	}

	fresh := lottery.NewCombination([]int{1, 2, 3, 4, 6}, nil, lottery.StrategySimpleList)
	if !NotDuplicate(fresh, accepted) {
		t.Error("distinct main numbers should pass")
	}
}

func TestGridSpread(t *testing.T) {
	// 1,11,21,31,41 on 10x5: rows 0,2,4,6,8 (1-1-1-1-1), all in column 0 ("5").
	// Column pattern "5" is not in the 10x5 allow-list.
	if GridSpread([]int{1, 11, 21, 31, 41}, 10, 5, allowedRows10x5, allowedCols10x5) {
		t.Error("single-column layout should fail the 10x5 spread")
	}

	// 2,14,21,33,45 on 10x5: rows 0,2,4,6,8 -> 1-1-1-1-1;
	// columns (n-1)%5: 1,3,0,2,4 -> 1-1-1-1-1, not allowed for columns.
	if GridSpread([]int{2, 14, 21, 33, 45}, 10, 5, allowedRows10x5, allowedCols10x5) {
		t.Error("fully spread columns are outside the 10x5 column allow-list")
	}

	// 1,6,22,33,45: rows 0,1,4,6,8 -> 1-1-1-1-1;
	// columns 0,0,1,2,4 -> 2-1-1-1 which is allowed.
	if !GridSpread([]int{1, 6, 22, 33, 45}, 10, 5, allowedRows10x5, allowedCols10x5) {
		t.Error("2-1-1-1 column layout should pass the 10x5 spread")
	}
}

func TestMatchesHistoryProfile(t *testing.T) {
	candidate := []int{1, 2, 3, 4, 5}

	// 58 zero-match, 37 one-match and 5 two-match draws stay within the
	// scaled reference profile for a 100-draw history.
	history := make(lottery.DrawTable, 0, 100)
	for i := 0; i < 58; i++ {
		history = append(history, []int{10, 20, 30, 40, 50})
	}
	for i := 0; i < 37; i++ {
		history = append(history, []int{1, 20, 30, 40, 50})
	}
	for i := 0; i < 5; i++ {
		history = append(history, []int{1, 2, 30, 40, 50})
	}

	if !MatchesHistoryProfile(candidate, history) {
		t.Error("profile within reference percentages should pass")
	}

	// One extra zero-match draw pushes bucket 0 over its expected count.
	skewed := make(lottery.DrawTable, 0, 100)
	for i := 0; i < 59; i++ {
		skewed = append(skewed, []int{10, 20, 30, 40, 50})
	}
	for i := 0; i < 41; i++ {
		skewed = append(skewed, []int{1, 20, 30, 40, 50})
	}
	if MatchesHistoryProfile(candidate, skewed) {
		t.Error("59 zero-match draws in 100 should exceed the expected 58")
	}

	// Any draw sharing four numbers breaks the zero-expectation buckets.
	anomalous := append(lottery.DrawTable{}, history...)
	anomalous[0] = []int{1, 2, 3, 4, 50}
	if MatchesHistoryProfile(candidate, anomalous) {
		t.Error("a four-number match should be rejected outright")
	}
}

func TestPipelineAccept(t *testing.T) {
	toggles := DefaultToggles()
	toggles.MatchProfile = false // no history in this test
	p := NewPipeline(toggles, nil)

	good := lottery.NewCombination([]int{1, 6, 22, 33, 45}, nil, lottery.StrategySimpleList)
	if !p.Accept(good, nil) {
		t.Errorf("combination %v should pass all filters", good.Numbers)
	}

	allEven := lottery.NewCombination([]int{2, 6, 22, 34, 46}, nil, lottery.StrategySimpleList)
	if p.Accept(allEven, nil) {
		t.Error("all-even combination should be rejected")
	}

	if p.Accept(good, []lottery.Combination{good}) {
		t.Error("session duplicate should be rejected")
	}
}

func TestPipelineTogglesOff(t *testing.T) {
	p := NewPipeline(Toggles{}, nil)

	// With every filter disabled even a pathological candidate passes.
	bad := lottery.NewCombination([]int{2, 4, 6, 8, 10}, nil, lottery.StrategySimpleList)
	if !p.Accept(bad, []lottery.Combination{bad}) {
		t.Error("disabled pipeline should accept anything")
	}
}
