// Package filter implements the validity checks a candidate combination
// must pass before being accepted. Each check is a pure predicate over the
// candidate, the combinations already accepted this session and the full
// historical draw table.
package filter

import (
	"github.com/ramonehamilton/lotto-companion/internal/analysis"
	"github.com/ramonehamilton/lotto-companion/internal/lottery"
)

// Toggles enables or disables individual filters. All default to enabled.
type Toggles struct {
	NoDuplicate  bool
	OddEven      bool
	Grid10x5     bool
	Grid5x10     bool
	NoLongRuns   bool
	MatchProfile bool
}

// DefaultToggles returns the default filter configuration (everything on).
func DefaultToggles() Toggles {
	return Toggles{
		NoDuplicate:  true,
		OddEven:      true,
		Grid10x5:     true,
		Grid5x10:     true,
		NoLongRuns:   true,
		MatchProfile: true,
	}
}

// matchProfile holds the reference share of historical draws expected to
// share exactly N numbers with a real draw, indexed by N.
var matchProfile = [lottery.DrawSize + 1]float64{0.58, 0.37, 0.08, 0.01, 0, 0}

// Allowed grid patterns per overlay orientation. The 5x10 lists mirror the
// 10x5 ones with rows and columns swapped.
var (
	allowedRows10x5 = []analysis.GridPattern{analysis.Pattern11111, analysis.Pattern2111}
	allowedCols10x5 = []analysis.GridPattern{analysis.Pattern2111, analysis.Pattern221, analysis.Pattern311}
	allowedRows5x10 = allowedCols10x5
	allowedCols5x10 = allowedRows10x5
)

// Pipeline runs the enabled filters against candidate combinations.
type Pipeline struct {
	toggles Toggles
	history lottery.DrawTable
}

// NewPipeline creates a filter pipeline over the given historical table.
// A nil or empty history disables the match-profile check.
func NewPipeline(toggles Toggles, history lottery.DrawTable) *Pipeline {
	return &Pipeline{toggles: toggles, history: history}
}

// Accept reports whether the candidate passes every enabled filter.
// The session duplicate check always runs first.
func (p *Pipeline) Accept(candidate lottery.Combination, accepted []lottery.Combination) bool {
	if p.toggles.NoDuplicate && !NotDuplicate(candidate, accepted) {
		return false
	}
	if p.toggles.OddEven && !OddEvenBalanced(candidate.Numbers) {
		return false
	}
	if p.toggles.Grid10x5 && !GridSpread(candidate.Numbers, 10, 5, allowedRows10x5, allowedCols10x5) {
		return false
	}
	if p.toggles.Grid5x10 && !GridSpread(candidate.Numbers, 5, 10, allowedRows5x10, allowedCols5x10) {
		return false
	}
	if p.toggles.NoLongRuns && !NoLongRuns(candidate.Numbers) {
		return false
	}
	if p.toggles.MatchProfile && len(p.history) > 0 && !MatchesHistoryProfile(candidate.Numbers, p.history) {
		return false
	}
	return true
}
