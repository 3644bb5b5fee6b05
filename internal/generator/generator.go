// Package generator orchestrates combination generation: it repeatedly
// invokes a drawing strategy, gates each candidate through the filter
// pipeline and collects the requested number of valid combinations within
// a bounded retry budget.
package generator

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/ramonehamilton/lotto-companion/internal/events"
	"github.com/ramonehamilton/lotto-companion/internal/lottery"
)

// State describes the orchestrator's lifecycle.
type State string

// Orchestrator states.
const (
	StateIdle       State = "idle"
	StateGenerating State = "generating"
	StateCompleted  State = "completed"
	StateFailed     State = "failed"
)

// Default loop tuning.
const (
	// DefaultMaxAttempts is the retry budget per generation run.
	DefaultMaxAttempts = 1000

	// DefaultPauseEvery is how many consecutive failed attempts trigger a
	// cooperative pause.
	DefaultPauseEvery = 10

	// DefaultPauseFor is the length of the cooperative pause.
	DefaultPauseFor = 25 * time.Millisecond
)

// Drawer is the drawing-service contract the orchestrator depends on.
type Drawer interface {
	Draw(strategy lottery.Strategy, count int, preferred []int) ([]int, error)
	DrawStars(count int) ([]int, error)
}

// Acceptor is the filter-pipeline contract.
type Acceptor interface {
	Accept(candidate lottery.Combination, accepted []lottery.Combination) bool
}

// Result is the outcome of one generation run. PartialSuccess flags a run
// that hit the retry budget with fewer combinations than requested, which
// is a degraded success rather than an error.
type Result struct {
	Combinations   []lottery.Combination
	Attempts       int
	PartialSuccess bool
}

// StartedData is the payload of a generation:started event.
type StartedData struct {
	Count    int
	Strategy lottery.Strategy
}

// AcceptedData is the payload of a generation:accepted event.
type AcceptedData struct {
	Combination lottery.Combination
	Attempt     int
}

// FinishedData is the payload of a generation:finished event.
type FinishedData struct {
	State    State
	Accepted int
	Attempts int
}

// Generator runs the bounded-retry generation loop. Each Generate call
// owns its own accumulator and attempt counter; the Generator itself only
// tracks the latest lifecycle state.
type Generator struct {
	drawer     Drawer
	pipeline   Acceptor
	dispatcher *events.Dispatcher

	maxAttempts int
	pauseEvery  int
	pauseFor    time.Duration
	starCount   int

	state State
}

// Option configures a Generator.
type Option func(*Generator)

// WithMaxAttempts overrides the retry budget.
func WithMaxAttempts(n int) Option {
	return func(g *Generator) { g.maxAttempts = n }
}

// WithPause overrides the cooperative pause cadence and length.
func WithPause(every int, pause time.Duration) Option {
	return func(g *Generator) {
		g.pauseEvery = every
		g.pauseFor = pause
	}
}

// WithStarCount sets how many star numbers each combination carries (0..2).
func WithStarCount(n int) Option {
	return func(g *Generator) { g.starCount = n }
}

// WithDispatcher attaches an event dispatcher for progress notifications.
func WithDispatcher(d *events.Dispatcher) Option {
	return func(g *Generator) { g.dispatcher = d }
}

// New creates a Generator with the default budget (1000 attempts, pause
// every 10 consecutive failures).
func New(drawer Drawer, pipeline Acceptor, opts ...Option) *Generator {
	g := &Generator{
		drawer:      drawer,
		pipeline:    pipeline,
		maxAttempts: DefaultMaxAttempts,
		pauseEvery:  DefaultPauseEvery,
		pauseFor:    DefaultPauseFor,
		starCount:   lottery.StarSize,
		state:       StateIdle,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// State returns the lifecycle state of the most recent run.
func (g *Generator) State() State { return g.state }

// Generate produces count combinations with the given strategy. Drawing
// errors and filter rejections count as failed attempts and the loop
// continues; the run fails with ErrMaxAttemptsExceeded only when the
// budget is exhausted with nothing accepted. A budget exhausted after at
// least one acceptance returns the partial set with PartialSuccess set.
// The context cancels the loop cooperatively between attempts.
func (g *Generator) Generate(ctx context.Context, count int, strategy lottery.Strategy, preferred []int) (*Result, error) {
	if count <= 0 {
		return nil, fmt.Errorf("requested count %d: %w", count, lottery.ErrInvalidNumberRange)
	}
	if !strategy.Valid() {
		return nil, fmt.Errorf("%q: %w", strategy, lottery.ErrUnknownStrategy)
	}

	g.state = StateGenerating
	g.dispatch(events.Event{Type: events.TypeGenerationStarted, Data: StartedData{Count: count, Strategy: strategy}})

	accepted := make([]lottery.Combination, 0, count)
	attempts := 0
	consecutiveFailures := 0

	for attempts < g.maxAttempts && len(accepted) < count {
		if err := ctx.Err(); err != nil {
			g.state = StateFailed
			g.finish(accepted, attempts)
			return &Result{Combinations: accepted, Attempts: attempts, PartialSuccess: true}, err
		}

		attempts++

		candidate, err := g.attempt(strategy, preferred)
		if err != nil {
			log.Printf("[Generator] attempt %d failed: %v", attempts, err)
			consecutiveFailures++
			g.maybePause(ctx, consecutiveFailures)
			continue
		}

		if !g.pipeline.Accept(candidate, accepted) {
			consecutiveFailures++
			g.maybePause(ctx, consecutiveFailures)
			continue
		}

		consecutiveFailures = 0
		accepted = append(accepted, candidate)
		g.dispatch(events.Event{Type: events.TypeCombinationAccepted, Data: AcceptedData{Combination: candidate, Attempt: attempts}})
	}

	if len(accepted) == 0 {
		g.state = StateFailed
		g.finish(accepted, attempts)
		return nil, fmt.Errorf("after %d attempts: %w", attempts, lottery.ErrMaxAttemptsExceeded)
	}

	g.state = StateCompleted
	g.finish(accepted, attempts)
	return &Result{
		Combinations:   accepted,
		Attempts:       attempts,
		PartialSuccess: len(accepted) < count,
	}, nil
}

// attempt performs a single draw of main numbers plus stars.
func (g *Generator) attempt(strategy lottery.Strategy, preferred []int) (lottery.Combination, error) {
	numbers, err := g.drawer.Draw(strategy, lottery.DrawSize, preferred)
	if err != nil {
		return lottery.Combination{}, err
	}

	var stars []int
	if g.starCount > 0 {
		stars, err = g.drawer.DrawStars(g.starCount)
		if err != nil {
			return lottery.Combination{}, err
		}
	}
	return lottery.NewCombination(numbers, stars, strategy), nil
}

// maybePause sleeps briefly after every pauseEvery-th consecutive failure
// so a hopeless strategy/filter combination cannot spin tight.
func (g *Generator) maybePause(ctx context.Context, consecutiveFailures int) {
	if g.pauseFor <= 0 || g.pauseEvery <= 0 || consecutiveFailures%g.pauseEvery != 0 {
		return
	}
	select {
	case <-ctx.Done():
	case <-time.After(g.pauseFor):
	}
}

func (g *Generator) finish(accepted []lottery.Combination, attempts int) {
	g.dispatch(events.Event{Type: events.TypeGenerationFinished, Data: FinishedData{
		State:    g.state,
		Accepted: len(accepted),
		Attempts: attempts,
	}})
}

func (g *Generator) dispatch(event events.Event) {
	if g.dispatcher != nil {
		g.dispatcher.Dispatch(event)
	}
}
