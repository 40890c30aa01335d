package tool

import (
	"context"
	"fmt"
)

// PrepareFunc is the function signature for the descriptive phase.
type PrepareFunc func(ctx context.Context, q Query) (Preparation, error)

// ExecuteFunc is the function signature for the execution phase.
type ExecuteFunc func(ctx context.Context, q Query) (Result, error)

// Func builds a Tool from plain functions. ExecuteFn is required; when
// PrepareFn is nil, Prepare reports "Running <display name>" with no
// confirmation request.
type Func struct {
	Desc      Descriptor
	PrepareFn PrepareFunc
	ExecuteFn ExecuteFunc
}

// Descriptor returns the tool's registration metadata.
func (f Func) Descriptor() Descriptor {
	return f.Desc
}

// Prepare describes the pending invocation.
func (f Func) Prepare(ctx context.Context, q Query) (Preparation, error) {
	if err := ctx.Err(); err != nil {
		return Preparation{}, err
	}
	if f.PrepareFn != nil {
		return f.PrepareFn(ctx, q)
	}
	return Preparation{Message: fmt.Sprintf("Running %s", DisplayName(f.Desc))}, nil
}

// Execute performs the invocation.
func (f Func) Execute(ctx context.Context, q Query) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if f.ExecuteFn == nil {
		return Result{}, fmt.Errorf("%w: %s", ErrNoExecutor, f.Desc.Name)
	}
	return f.ExecuteFn(ctx, q)
}
