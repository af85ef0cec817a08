package engine

import "errors"

// Error taxonomy. Boundary and no-result conditions are expected control flow
// and are returned as (value, ok) pairs, never as errors. Only genuinely
// invalid states surface as errors for the dispatch layer to report.
var (
	// ErrInvalidRange is returned when a computed destination or range is
	// self-contradictory, such as moving lines into themselves. The command
	// aborts before any mutation.
	ErrInvalidRange = errors.New("invalid range")

	// ErrMissingSelection is returned when a stored selection or shape is
	// absent while completing a visual command. For multi-caret commands the
	// affected caret is skipped instead.
	ErrMissingSelection = errors.New("missing selection")
)
