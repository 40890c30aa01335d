package invoke

import (
	"context"
	"fmt"
	"time"

	"github.com/jonwraymond/tooldiscovery/index"
	"github.com/jonwraymond/tooldiscovery/tooldoc"
	"github.com/jonwraymond/toolfoundation/model"

	"github.com/ming86/lmtools/clock"
	"github.com/ming86/lmtools/notify"
	"github.com/ming86/lmtools/tool"
)

// Host is the facade the agent runtime talks to. It resolves, validates,
// prepares, confirms, and executes tool invocations.
type Host struct {
	tools     *tool.Registry
	index     index.Index
	docs      tooldoc.Store
	namespace string
	validate  bool
	confirm   ConfirmFunc
	notifier  notify.Notifier
	logger    Logger
	clock     clock.Clock
}

// New creates a Host with the given options.
func New(opts Options) (*Host, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	opts.applyDefaults()

	return &Host{
		tools:     opts.Tools,
		index:     opts.Index,
		docs:      opts.Docs,
		namespace: opts.Namespace,
		validate:  !opts.SkipValidation,
		confirm:   opts.Confirm,
		notifier:  opts.Notifier,
		logger:    opts.Logger,
		clock:     opts.Clock,
	}, nil
}

// Register adds a tool to the host. When a discovery index is configured,
// the tool's descriptor is mirrored into it under the host's namespace.
func (h *Host) Register(t tool.Tool) error {
	if err := h.tools.Register(t); err != nil {
		return err
	}
	if h.index != nil {
		d := t.Descriptor()
		if err := h.index.RegisterTool(d.Model(h.namespace), model.NewLocalBackend(d.Name)); err != nil {
			h.tools.Unregister(d.Name)
			return fmt.Errorf("register %s in index: %w", d.Name, err)
		}
	}
	return nil
}

// docRegistrar is the write side of a doc store. tooldoc.Store itself is
// read-only; the in-memory store implements registration on the concrete
// type.
type docRegistrar interface {
	RegisterDoc(toolID string, doc tooldoc.DocEntry) error
}

// RegisterDoc attaches documentation to a registered tool. The tool ID is
// namespace-qualified, e.g. "tools:get_current_time". The configured doc
// store must support registration.
func (h *Host) RegisterDoc(toolID string, doc tooldoc.DocEntry) error {
	if h.docs == nil {
		return fmt.Errorf("no doc store configured")
	}
	reg, ok := h.docs.(docRegistrar)
	if !ok {
		return fmt.Errorf("doc store %T does not support registration", h.docs)
	}
	return reg.RegisterDoc(toolID, doc)
}

// Invoke runs the full lifecycle for one tool invocation: resolve the tool,
// validate args against its declared schema, run Prepare and surface its
// message, collect confirmation if requested, then Execute.
//
// A cancelled context yields no result and an error satisfying
// errors.Is(err, ctx.Err()). Failed invocations report the error both in
// the returned Invocation and as the second return value.
func (h *Host) Invoke(ctx context.Context, toolID string, args tool.Query) (Invocation, error) {
	start := h.clock.Now()
	name := h.localName(toolID)

	t, ok := h.tools.Get(name)
	if !ok {
		return h.fail(start, toolID, PhaseResolve, fmt.Errorf("%w: %s", tool.ErrToolNotFound, name))
	}
	desc := t.Descriptor()

	if h.validate {
		if err := validateArgs(desc.InputSchema, args); err != nil {
			return h.fail(start, toolID, PhaseValidate, fmt.Errorf("%w: %v", ErrInvalidArguments, err))
		}
	}

	prep, err := t.Prepare(ctx, args)
	if err != nil {
		return h.fail(start, toolID, PhasePrepare, err)
	}
	if prep.Message != "" {
		h.notifier.Info(prep.Message)
		h.logger.Logf("invoke %s: %s", name, prep.Message)
	}

	if prep.Confirmation != nil {
		if h.confirm == nil {
			return h.fail(start, toolID, PhaseConfirm, ErrNotConfirmed)
		}
		ok, err := h.confirm(ctx, *prep.Confirmation)
		if err != nil {
			return h.fail(start, toolID, PhaseConfirm, err)
		}
		if !ok {
			return h.fail(start, toolID, PhaseConfirm, ErrNotConfirmed)
		}
	}

	// Cancellation raised before execution abandons the call; a stale
	// result is never returned.
	if err := ctx.Err(); err != nil {
		return h.fail(start, toolID, PhaseExecute, err)
	}

	res, err := t.Execute(ctx, args)
	if err != nil {
		return h.fail(start, toolID, PhaseExecute, err)
	}

	duration := h.clock.Now().Sub(start)
	h.logger.Logf("invoke %s: done in %v", name, duration)
	return Invocation{
		ToolID:   name,
		Text:     res.Text,
		Value:    res.Value,
		Duration: duration,
	}, nil
}

// Search finds registered tools matching a query. Requires a discovery
// index.
func (h *Host) Search(ctx context.Context, query string, limit int) ([]index.Summary, error) {
	_ = ctx // reserved for future context-aware search
	if h.index == nil {
		return nil, fmt.Errorf("no discovery index configured")
	}
	return h.index.Search(query, limit)
}

// Doc retrieves tool documentation at the specified detail level. Requires
// a doc store.
func (h *Host) Doc(ctx context.Context, toolID string, level tooldoc.DetailLevel) (tooldoc.ToolDoc, error) {
	_ = ctx // reserved for future context-aware doc retrieval
	if h.docs == nil {
		return tooldoc.ToolDoc{}, fmt.Errorf("no doc store configured")
	}
	return h.docs.DescribeTool(toolID, level)
}

// Tools returns the underlying registry. This allows advanced usage
// patterns like direct registration without discovery mirroring.
func (h *Host) Tools() *tool.Registry {
	return h.tools
}

// localName strips the host's namespace from a qualified tool ID, so both
// "get_current_time" and "tools:get_current_time" resolve to the same tool.
func (h *Host) localName(toolID string) string {
	ns, name, err := model.ParseToolID(toolID)
	if err != nil || name == "" {
		return toolID
	}
	if ns == "" || ns == h.namespace {
		return name
	}
	return toolID
}

func (h *Host) fail(start time.Time, toolID string, phase Phase, err error) (Invocation, error) {
	ierr := &InvocationError{ToolID: toolID, Phase: phase, Err: err}
	h.logger.Logf("invoke %s: %s failed: %v", toolID, phase, err)
	return Invocation{
		ToolID:   toolID,
		Duration: h.clock.Now().Sub(start),
		Error:    ierr,
	}, ierr
}
