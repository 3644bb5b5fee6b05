package generator

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/ramonehamilton/lotto-companion/internal/draw"
	"github.com/ramonehamilton/lotto-companion/internal/events"
	"github.com/ramonehamilton/lotto-companion/internal/filter"
	"github.com/ramonehamilton/lotto-companion/internal/lottery"
)

// acceptAll and rejectAll are synthetic pipelines for budget tests.
type acceptAll struct{}

func (acceptAll) Accept(lottery.Combination, []lottery.Combination) bool { return true }

type rejectAll struct{}

func (rejectAll) Accept(lottery.Combination, []lottery.Combination) bool { return false }

func testDrawer() *draw.Service {
	return draw.NewService(rand.New(rand.NewSource(42)), draw.DefaultTuning())
}

func TestGenerateSatisfiable(t *testing.T) {
	g := New(testDrawer(), acceptAll{}, WithPause(10, 0))

	result, err := g.Generate(context.Background(), 5, lottery.StrategySimpleList, nil)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(result.Combinations) != 5 {
		t.Fatalf("got %d combinations, want 5", len(result.Combinations))
	}
	if result.PartialSuccess {
		t.Error("full result flagged as partial")
	}
	if g.State() != StateCompleted {
		t.Errorf("state = %s, want %s", g.State(), StateCompleted)
	}

	for _, c := range result.Combinations {
		if len(c.Numbers) != lottery.DrawSize {
			t.Errorf("combination %v has %d numbers", c.Numbers, len(c.Numbers))
		}
		for i := 1; i < len(c.Numbers); i++ {
			if c.Numbers[i] <= c.Numbers[i-1] {
				t.Errorf("combination not strictly ascending: %v", c.Numbers)
			}
		}
		if c.Strategy != lottery.StrategySimpleList {
			t.Errorf("strategy tag = %s", c.Strategy)
		}
	}
}

func TestGenerateImpossibleFilter(t *testing.T) {
	g := New(testDrawer(), rejectAll{}, WithPause(10, 0))

	_, err := g.Generate(context.Background(), 1, lottery.StrategySimpleList, nil)
	if !errors.Is(err, lottery.ErrMaxAttemptsExceeded) {
		t.Fatalf("error = %v, want ErrMaxAttemptsExceeded", err)
	}
	if g.State() != StateFailed {
		t.Errorf("state = %s, want %s", g.State(), StateFailed)
	}
}

func TestGenerateBudgetIsExact(t *testing.T) {
	d := NewDispatcherRecorder()
	g := New(testDrawer(), rejectAll{}, WithPause(10, 0), WithDispatcher(d.Dispatcher))

	_, err := g.Generate(context.Background(), 1, lottery.StrategySimpleList, nil)
	if !errors.Is(err, lottery.ErrMaxAttemptsExceeded) {
		t.Fatalf("error = %v", err)
	}
	if d.Finished.Attempts != DefaultMaxAttempts {
		t.Errorf("attempts = %d, want exactly %d", d.Finished.Attempts, DefaultMaxAttempts)
	}
}

func TestGenerateDrawErrorsAreRetried(t *testing.T) {
	// The user-constrained strategy with a too-short list fails every
	// attempt; the loop must keep retrying until the budget runs out
	// instead of failing hard on the first attempt error.
	g := New(testDrawer(), acceptAll{}, WithMaxAttempts(20), WithPause(10, 0))

	_, err := g.Generate(context.Background(), 1, lottery.StrategyUserList, []int{1, 2})
	if !errors.Is(err, lottery.ErrMaxAttemptsExceeded) {
		t.Fatalf("error = %v, want ErrMaxAttemptsExceeded", err)
	}
}

func TestGenerateWithRealPipeline(t *testing.T) {
	toggles := filter.DefaultToggles()
	toggles.MatchProfile = false // no history loaded
	pipeline := filter.NewPipeline(toggles, nil)

	g := New(testDrawer(), pipeline, WithPause(10, 0))
	result, err := g.Generate(context.Background(), 3, lottery.StrategySimpleList, nil)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(result.Combinations) != 3 {
		t.Fatalf("got %d combinations, want 3", len(result.Combinations))
	}

	// Accepted combinations must be distinct from one another.
	for i := range result.Combinations {
		for j := i + 1; j < len(result.Combinations); j++ {
			if result.Combinations[i].Equal(result.Combinations[j]) {
				t.Errorf("duplicate accepted combinations: %v", result.Combinations[i].Numbers)
			}
		}
	}
}

func TestGenerateCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := New(testDrawer(), rejectAll{}, WithPause(10, 0))
	result, err := g.Generate(ctx, 5, lottery.StrategySimpleList, nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
	if result == nil || result.Attempts != 0 {
		t.Errorf("cancelled run should stop before any attempt, got %+v", result)
	}
}

func TestGenerateInvalidInput(t *testing.T) {
	g := New(testDrawer(), acceptAll{}, WithPause(10, 0))

	if _, err := g.Generate(context.Background(), 0, lottery.StrategySimpleList, nil); !errors.Is(err, lottery.ErrInvalidNumberRange) {
		t.Errorf("count 0: error = %v", err)
	}
	if _, err := g.Generate(context.Background(), 1, lottery.Strategy("nope"), nil); !errors.Is(err, lottery.ErrUnknownStrategy) {
		t.Errorf("bad strategy: error = %v", err)
	}
}

// DispatcherRecorder captures the finished event for budget assertions.
type DispatcherRecorder struct {
	Dispatcher *events.Dispatcher
	Finished   FinishedData
}

func NewDispatcherRecorder() *DispatcherRecorder {
	r := &DispatcherRecorder{Dispatcher: events.NewDispatcher()}
	r.Dispatcher.Register(&finishedObserver{recorder: r})
	return r
}

type finishedObserver struct {
	recorder *DispatcherRecorder
}

func (o *finishedObserver) OnEvent(event events.Event) error {
	if data, ok := event.Data.(FinishedData); ok {
		o.recorder.Finished = data
	}
	return nil
}

func (o *finishedObserver) Name() string { return "finished-recorder" }

func (o *finishedObserver) ShouldHandle(eventType string) bool {
	return eventType == events.TypeGenerationFinished
}
