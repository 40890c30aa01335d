package invoke

import (
	"errors"
	"fmt"
)

// Sentinel errors for error classification.
var (
	// ErrInvalidArguments indicates the caller-supplied query did not match
	// the tool's declared input schema. The tool never ran.
	ErrInvalidArguments = errors.New("invalid arguments")

	// ErrNotConfirmed indicates the invocation requested confirmation and
	// the user declined, or no way to ask was configured. The tool never ran.
	ErrNotConfirmed = errors.New("invocation not confirmed")
)

// Phase identifies where in the invocation lifecycle a failure occurred.
type Phase string

// Lifecycle phases in order.
const (
	PhaseResolve  Phase = "resolve"
	PhaseValidate Phase = "validate"
	PhasePrepare  Phase = "prepare"
	PhaseConfirm  Phase = "confirm"
	PhaseExecute  Phase = "execute"
)

// InvocationError reports a failed invocation, including the tool and the
// lifecycle phase that failed.
type InvocationError struct {
	// ToolID is the identifier the caller invoked.
	ToolID string

	// Phase is the lifecycle phase that failed.
	Phase Phase

	// Err is the underlying error.
	Err error
}

// Error returns a message suitable for relaying to the calling agent.
func (e *InvocationError) Error() string {
	return fmt.Sprintf("invoke %s: %s failed: %v", e.ToolID, e.Phase, e.Err)
}

// Unwrap returns the underlying error for use with errors.Is and errors.As.
func (e *InvocationError) Unwrap() error {
	return e.Err
}
