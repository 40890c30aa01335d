package invoke

import (
	"context"
	"errors"

	"github.com/jonwraymond/tooldiscovery/index"
	"github.com/jonwraymond/tooldiscovery/tooldoc"

	"github.com/ming86/lmtools/clock"
	"github.com/ming86/lmtools/notify"
	"github.com/ming86/lmtools/tool"
)

// DefaultNamespace is used for discovery registration when Options.Namespace
// is unset.
const DefaultNamespace = "tools"

// ErrToolsRequired is returned by New when no registry is provided.
var ErrToolsRequired = errors.New("invoke: Tools registry is required")

// ConfirmFunc asks the user to approve an invocation. Returning false
// declines it.
type ConfirmFunc func(ctx context.Context, c tool.Confirmation) (bool, error)

// Options configures a Host.
type Options struct {
	// Tools is the registry invocations resolve against.
	// Required.
	Tools *tool.Registry

	// Index mirrors registered tools for discovery and search.
	// Optional; if nil, Search is unavailable.
	Index index.Index

	// Docs stores tool documentation.
	// Optional; if nil, Doc is unavailable.
	Docs tooldoc.Store

	// Namespace qualifies tool IDs in the discovery index.
	// Default: "tools".
	Namespace string

	// SkipValidation disables schema validation of caller arguments.
	// Default: false (arguments are validated).
	SkipValidation bool

	// Confirm is called when a preparation requests confirmation.
	// Optional; if nil, invocations that request confirmation fail with
	// ErrNotConfirmed.
	Confirm ConfirmFunc

	// Notifier displays preparation messages.
	// Default: notify.Discard.
	Notifier notify.Notifier

	// Logger receives lifecycle events.
	// Optional; if nil, logging is disabled.
	Logger Logger

	// Clock measures invocation duration.
	// Default: the system clock.
	Clock clock.Clock
}

// validate checks that required fields are set.
func (o *Options) validate() error {
	if o.Tools == nil {
		return ErrToolsRequired
	}
	return nil
}

// applyDefaults sets default values for unset optional fields.
func (o *Options) applyDefaults() {
	if o.Namespace == "" {
		o.Namespace = DefaultNamespace
	}
	if o.Notifier == nil {
		o.Notifier = notify.Discard
	}
	if o.Logger == nil {
		o.Logger = nopLogger{}
	}
	if o.Clock == nil {
		o.Clock = clock.System()
	}
}
