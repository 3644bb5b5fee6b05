package lottery

import "errors"

// Sentinel errors returned by table builders, drawing strategies and the
// generation orchestrator. Callers distinguish cases with errors.Is.
var (
	// ErrEmptyTable indicates a statistics builder was given a table with no rows.
	ErrEmptyTable = errors.New("draw table is empty")

	// ErrEmptyRow indicates a table whose first row has no entries.
	ErrEmptyRow = errors.New("draw table row is empty")

	// ErrInvalidNumberRange indicates a number outside the valid game range,
	// or a column draw whose filtered candidate set came up empty.
	ErrInvalidNumberRange = errors.New("number outside valid range")

	// ErrInvalidDistance indicates a non-positive lookahead window.
	ErrInvalidDistance = errors.New("distance window must be positive")

	// ErrInsufficientCandidates indicates a list draw was asked for more
	// distinct values than the candidate list holds.
	ErrInsufficientCandidates = errors.New("not enough candidates to draw from")

	// ErrMaxAttemptsExceeded indicates the generation loop exhausted its
	// retry budget without producing a single valid combination.
	ErrMaxAttemptsExceeded = errors.New("maximum generation attempts exceeded")

	// ErrServiceNotReady indicates a history-backed strategy was invoked
	// before any historical draw data was loaded.
	ErrServiceNotReady = errors.New("drawing service not ready: no historical data loaded")

	// ErrUnknownStrategy indicates a strategy identifier outside the closed set.
	ErrUnknownStrategy = errors.New("unknown drawing strategy")
)
