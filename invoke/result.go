package invoke

import "time"

// Invocation represents the outcome of a single tool invocation.
type Invocation struct {
	// ToolID is the identifier of the invoked tool.
	ToolID string

	// Text is the result rendered for the calling agent.
	Text string

	// Value optionally carries a structured form of the result.
	Value any

	// Duration is how long the invocation took end to end.
	Duration time.Duration

	// Error is non-nil if the invocation failed. No partial result is
	// reported alongside an error.
	Error error
}

// OK returns true if the invocation has no error.
func (i Invocation) OK() bool {
	return i.Error == nil
}
