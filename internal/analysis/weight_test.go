package analysis

import (
	"errors"
	"reflect"
	"testing"

	"github.com/ramonehamilton/lotto-companion/internal/lottery"
)

func TestComputeWeights(t *testing.T) {
	// Flattened slots: [1 2 2 3 3 1]. Window 2 after row 0 covers slots
	// {2,3} (values 2,3): weight of 1 is 0, of 2 is 1. After row 1 the
	// window covers values {3,1}. After row 2 nothing remains.
	table := lottery.DrawTable{{1, 2}, {2, 3}, {3, 1}}

	got, err := ComputeWeights(table, 2, 10)
	if err != nil {
		t.Fatalf("ComputeWeights() error = %v", err)
	}

	want := lottery.DrawTable{{0, 1}, {0, 1}, {0, 0}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ComputeWeights() = %v, want %v", got, want)
	}
}

func TestComputeWeightsWindowClamped(t *testing.T) {
	// Window far beyond the table end must clamp, not panic.
	table := lottery.DrawTable{{1, 2}, {1, 2}}

	got, err := ComputeWeights(table, 100, 10)
	if err != nil {
		t.Fatalf("ComputeWeights() error = %v", err)
	}

	want := lottery.DrawTable{{1, 1}, {0, 0}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ComputeWeights() = %v, want %v", got, want)
	}
}

func TestComputeWeightsShape(t *testing.T) {
	table := lottery.DrawTable{
		{1, 12, 23, 34, 45},
		{2, 12, 24, 34, 46},
	}

	got, err := ComputeWeights(table, 3, lottery.MaxNumber)
	if err != nil {
		t.Fatalf("ComputeWeights() error = %v", err)
	}
	if len(got) != len(table) || len(got[0]) != len(table[0]) {
		t.Errorf("shape = %dx%d, want %dx%d", len(got), len(got[0]), len(table), len(table[0]))
	}
}

func TestComputeWeightsValidation(t *testing.T) {
	valid := lottery.DrawTable{{1, 2}}

	if _, err := ComputeWeights(valid, 0, 10); !errors.Is(err, lottery.ErrInvalidDistance) {
		t.Errorf("window 0: error = %v, want ErrInvalidDistance", err)
	}
	if _, err := ComputeWeights(valid, -3, 10); !errors.Is(err, lottery.ErrInvalidDistance) {
		t.Errorf("negative window: error = %v, want ErrInvalidDistance", err)
	}
	if _, err := ComputeWeights(lottery.DrawTable{}, 5, 10); !errors.Is(err, lottery.ErrEmptyTable) {
		t.Errorf("empty table: error = %v, want ErrEmptyTable", err)
	}
}
