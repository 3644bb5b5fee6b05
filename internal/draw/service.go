// Package draw implements the drawing strategies that produce candidate
// combinations from historical draw statistics. A Service owns the loaded
// history and its derived tables and dispatches over the closed strategy
// set.
package draw

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/ramonehamilton/lotto-companion/internal/analysis"
	"github.com/ramonehamilton/lotto-companion/internal/lottery"
)

// Tuning holds the empirical constants of the predecessor-history draw.
// Both shares were chosen by observation, not derivation; they are
// configurable rather than hard invariants.
type Tuning struct {
	// TopShare is the fraction of best-scored candidates kept before the
	// final uniform pick.
	TopShare float64

	// NextMaxShare caps candidates at this fraction of the next column's
	// maximum value.
	NextMaxShare float64
}

// DefaultTuning returns the observed defaults (70% / 80%).
func DefaultTuning() Tuning {
	return Tuning{TopShare: 0.7, NextMaxShare: 0.8}
}

// Service dispatches drawing strategies over loaded historical data.
// It is not safe for concurrent use; each caller should own its Service
// or serialize access.
type Service struct {
	table     lottery.DrawTable // raw history, row 0 most recent
	sorted    lottery.DrawTable // per-row sorted view
	reduced   lottery.DrawTable // coverage-truncated prefix, rows sorted
	stars     lottery.StarTable
	distances lottery.DrawTable
	weights   lottery.DrawTable

	window int
	rng    *rand.Rand
	tuning Tuning
}

// NewService creates a drawing service. A nil rng gets a time-seeded one;
// inject a fixed-seed rand.Rand for deterministic tests.
func NewService(rng *rand.Rand, tuning Tuning) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if tuning.TopShare <= 0 || tuning.TopShare > 1 {
		tuning.TopShare = DefaultTuning().TopShare
	}
	if tuning.NextMaxShare <= 0 || tuning.NextMaxShare > 1 {
		tuning.NextMaxShare = DefaultTuning().NextMaxShare
	}
	return &Service{rng: rng, tuning: tuning}
}

// SetHistory loads historical draw data and rebuilds every derived table
// (sorted and reduced views, distance and weight tables). It must be
// called again after any change to the source data.
func (s *Service) SetHistory(table lottery.DrawTable, stars lottery.StarTable, distanceWindow int) error {
	if err := table.Validate(lottery.MaxNumber); err != nil {
		return fmt.Errorf("load history: %w", err)
	}

	distances, err := analysis.ComputeDistances(table, lottery.MaxNumber)
	if err != nil {
		return fmt.Errorf("build distance table: %w", err)
	}
	weights, err := analysis.ComputeWeights(table, distanceWindow, lottery.MaxNumber)
	if err != nil {
		return fmt.Errorf("build weight table: %w", err)
	}

	s.table = table
	s.sorted = table.Sorted()
	s.reduced = table.Reduced(lottery.MaxNumber)
	s.stars = stars
	s.distances = distances
	s.weights = weights
	s.window = distanceWindow
	return nil
}

// RecomputeWeights rebuilds the weight table with a new lookahead window.
func (s *Service) RecomputeWeights(distanceWindow int) error {
	if !s.Ready() {
		return lottery.ErrServiceNotReady
	}
	weights, err := analysis.ComputeWeights(s.table, distanceWindow, lottery.MaxNumber)
	if err != nil {
		return err
	}
	s.weights = weights
	s.window = distanceWindow
	return nil
}

// Ready reports whether historical data has been loaded.
func (s *Service) Ready() bool {
	return len(s.table) > 0
}

// History returns the raw historical table.
func (s *Service) History() lottery.DrawTable { return s.table }

// Distances returns the distance table built from the loaded history.
func (s *Service) Distances() lottery.DrawTable { return s.distances }

// Weights returns the weight table built from the loaded history.
func (s *Service) Weights() lottery.DrawTable { return s.weights }

// Window returns the lookahead window the weight table was built with.
func (s *Service) Window() int { return s.window }

// Describe returns the human-readable description of a strategy.
func Describe(strategy lottery.Strategy) string {
	switch strategy {
	case lottery.StrategySimpleList:
		return "Uniform draw from the full number range"
	case lottery.StrategyUserList:
		return "Uniform draw from a user-supplied candidate list"
	case lottery.StrategyFullHistory:
		return "Position-wise draw weighted by the full sorted history"
	case lottery.StrategyReducedHistory:
		return "Position-wise draw weighted by the coverage-reduced history"
	case lottery.StrategyPredecessorHistory:
		return "Position-wise draw over historical predecessor values with score-based selection"
	case lottery.StrategySpread:
		return "Position-wise draw restricted to each column's coverage prefix"
	case lottery.StrategyMappingTable:
		return "Draw from numbers whose distance and weight fall in the target bands"
	case lottery.StrategyJokerWeighted:
		return "Weighted draw proportional to historical frequency"
	default:
		return "Unknown strategy"
	}
}

// Draw produces count distinct main numbers, sorted ascending, using the
// given strategy. The preferred list is only consulted by the
// user-constrained strategy. History-backed strategies fail with
// ErrServiceNotReady before any data is loaded.
func (s *Service) Draw(strategy lottery.Strategy, count int, preferred []int) ([]int, error) {
	if count <= 0 {
		return nil, fmt.Errorf("draw count %d: %w", count, lottery.ErrInvalidNumberRange)
	}

	switch strategy {
	case lottery.StrategySimpleList:
		return DrawFromList(s.rng, fullRange(lottery.MaxNumber), count)

	case lottery.StrategyUserList:
		return DrawFromList(s.rng, preferred, count)

	case lottery.StrategyFullHistory:
		if !s.Ready() {
			return nil, lottery.ErrServiceNotReady
		}
		return s.columnDraw(s.sorted, count)

	case lottery.StrategyReducedHistory:
		if !s.Ready() {
			return nil, lottery.ErrServiceNotReady
		}
		return s.columnDraw(s.reduced, count)

	case lottery.StrategyPredecessorHistory:
		if !s.Ready() {
			return nil, lottery.ErrServiceNotReady
		}
		return s.predecessorDraw(count)

	case lottery.StrategySpread:
		if !s.Ready() {
			return nil, lottery.ErrServiceNotReady
		}
		return s.spreadDraw(count)

	case lottery.StrategyMappingTable:
		if !s.Ready() {
			return nil, lottery.ErrServiceNotReady
		}
		return s.mappingDraw(count)

	case lottery.StrategyJokerWeighted:
		if !s.Ready() {
			return nil, lottery.ErrServiceNotReady
		}
		dist := analysis.TableDistribution(s.table, lottery.MaxNumber)
		return s.weightedDraw(dist, count, lottery.MaxNumber)

	default:
		return nil, fmt.Errorf("%q: %w", strategy, lottery.ErrUnknownStrategy)
	}
}

// fullRange returns the candidate list 1..max.
func fullRange(max int) []int {
	list := make([]int, max)
	for i := range list {
		list[i] = i + 1
	}
	return list
}
