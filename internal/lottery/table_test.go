package lottery

import (
	"errors"
	"reflect"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		table   DrawTable
		wantErr error
	}{
		{
			name:    "Empty table",
			table:   DrawTable{},
			wantErr: ErrEmptyTable,
		},
		{
			name:    "Empty first row",
			table:   DrawTable{{}},
			wantErr: ErrEmptyRow,
		},
		{
			name:    "Value too large",
			table:   DrawTable{{1, 2, 3, 4, 51}},
			wantErr: ErrInvalidNumberRange,
		},
		{
			name:    "Value too small",
			table:   DrawTable{{0, 2, 3, 4, 5}},
			wantErr: ErrInvalidNumberRange,
		},
		{
			name:    "Valid table",
			table:   DrawTable{{1, 2, 3, 4, 50}},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.table.Validate(MaxNumber)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSorted(t *testing.T) {
	table := DrawTable{{5, 1, 3}, {2, 9, 4}}
	got := table.Sorted()

	want := DrawTable{{1, 3, 5}, {2, 4, 9}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Sorted() = %v, want %v", got, want)
	}

	// Original rows must be untouched.
	if !reflect.DeepEqual(table[0], []int{5, 1, 3}) {
		t.Errorf("Sorted() mutated source table: %v", table[0])
	}
}

func TestReduced(t *testing.T) {
	// maxValue 4: coverage completes after the third row.
	table := DrawTable{{2, 1}, {2, 3}, {4, 1}, {3, 2}}
	got := table.Reduced(4)

	want := DrawTable{{1, 2}, {2, 3}, {1, 4}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Reduced() = %v, want %v", got, want)
	}
}

func TestReducedNeverCovered(t *testing.T) {
	table := DrawTable{{1, 2}, {2, 1}}
	got := table.Reduced(4)

	if len(got) != len(table) {
		t.Errorf("Reduced() length = %d, want full table length %d", len(got), len(table))
	}
}

func TestReducedPrefixProperty(t *testing.T) {
	table := DrawTable{{3, 1}, {2, 4}, {1, 1}}
	reduced := table.Reduced(4)

	// Smallest k whose union covers 1..4 is 2.
	if len(reduced) != 2 {
		t.Fatalf("Reduced() length = %d, want 2", len(reduced))
	}
}

func TestColumnSpread(t *testing.T) {
	// Column 0 distinct values {1,2,3}: all seen by row 3 (prefix 3).
	// Column 1 distinct values {7,8}: all seen by row 2 (prefix 2).
	table := DrawTable{{1, 7}, {2, 8}, {3, 7}, {1, 8}}
	got := table.ColumnSpread()

	want := []int{3, 2}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ColumnSpread() = %v, want %v", got, want)
	}
}

func TestMinMaxPerColumn(t *testing.T) {
	table := DrawTable{{5, 10}, {3, 40}, {7, 22}}
	got := table.MinMaxPerColumn()

	want := [][]int{{3, 10}, {7, 40}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MinMaxPerColumn() = %v, want %v", got, want)
	}
}

func TestCombinationEqual(t *testing.T) {
	a := NewCombination([]int{5, 1, 3, 2, 4}, []int{2, 1}, StrategySimpleList)
	b := NewCombination([]int{1, 2, 3, 4, 5}, nil, StrategyFullHistory)
	c := NewCombination([]int{1, 2, 3, 4, 6}, nil, StrategySimpleList)

	if !a.Equal(b) {
		t.Error("combinations with identical main numbers should be equal")
	}
	if a.Equal(c) {
		t.Error("combinations with different main numbers should not be equal")
	}
	if !reflect.DeepEqual(a.Numbers, []int{1, 2, 3, 4, 5}) {
		t.Errorf("NewCombination() did not sort numbers: %v", a.Numbers)
	}
	if !reflect.DeepEqual(a.Stars, []int{1, 2}) {
		t.Errorf("NewCombination() did not sort stars: %v", a.Stars)
	}
}

func TestStrategyValid(t *testing.T) {
	for _, s := range Strategies() {
		if !s.Valid() {
			t.Errorf("Strategy %q should be valid", s)
		}
	}
	if Strategy("made-up").Valid() {
		t.Error("unknown strategy should be invalid")
	}
}
