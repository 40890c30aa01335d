package invoke

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestInvocationError_Error(t *testing.T) {
	err := &InvocationError{
		ToolID: "get_current_time",
		Phase:  PhaseExecute,
		Err:    fmt.Errorf("formatting fault"),
	}

	msg := err.Error()
	for _, want := range []string{"get_current_time", "execute", "formatting fault"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Error() = %q, missing %q", msg, want)
		}
	}
}

func TestInvocationError_Unwrap(t *testing.T) {
	tests := []struct {
		name   string
		inner  error
		target error
	}{
		{name: "sentinel", inner: ErrInvalidArguments, target: ErrInvalidArguments},
		{name: "wrapped sentinel", inner: fmt.Errorf("%w: field format", ErrNotConfirmed), target: ErrNotConfirmed},
		{name: "cancellation", inner: context.Canceled, target: context.Canceled},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := &InvocationError{ToolID: "t", Phase: PhaseValidate, Err: tc.inner}
			if !errors.Is(err, tc.target) {
				t.Errorf("errors.Is(%v, %v) = false", err, tc.target)
			}
		})
	}
}
