package tool

import (
	"context"
	"errors"

	"github.com/jonwraymond/toolfoundation/model"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Common errors for tool operations.
var (
	ErrToolNotFound = errors.New("tool not found")
	ErrToolExists   = errors.New("tool already registered")
	ErrNoExecutor   = errors.New("tool has no executor")
)

// Query is the argument bag for a single invocation. The host validates it
// against the tool's declared input schema before the tool ever sees it;
// tools only perform type matching on the fields they consume.
type Query map[string]any

// Confirmation asks the user to approve an invocation before it runs.
type Confirmation struct {
	// Title is a short heading for the confirmation prompt.
	Title string

	// Message explains what the invocation will do.
	Message string
}

// Preparation is the outcome of the descriptive phase of an invocation.
type Preparation struct {
	// Message is a short status line describing what is about to happen,
	// e.g. "Getting the current time". May be empty.
	Message string

	// Confirmation, when non-nil, requests interactive approval before
	// execution proceeds.
	Confirmation *Confirmation
}

// Result is the outcome of executing a tool. Results are created fresh on
// every call and never cached.
type Result struct {
	// Text is the result rendered for the calling agent.
	Text string

	// Value optionally carries a structured form of the result.
	Value any
}

// Descriptor declares a tool for registration and discovery.
type Descriptor struct {
	// Name uniquely identifies the tool within a registry.
	Name string

	// Title is an optional human-readable display name.
	Title string

	// Description tells the agent runtime what the tool does.
	Description string

	// InputSchema declares the accepted query shape as JSON Schema.
	// Nil or empty means any query is accepted.
	InputSchema map[string]any

	// Annotations carries optional MCP tool hints.
	Annotations *mcp.ToolAnnotations

	// Tags aid discovery and search.
	Tags []string
}

// Tool is a named, host-invocable operation.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use; invocations
//   share no mutable state.
// - Context: Prepare and Execute must honor cancellation. A cancelled call
//   returns no result and the context's error, never a partial result.
// - Errors: Prepare succeeds apart from cancellation; Execute returns a
//   descriptive error on unrecoverable failure.
type Tool interface {
	// Descriptor returns the tool's registration metadata.
	Descriptor() Descriptor

	// Prepare describes the pending invocation. It must not perform the
	// tool's work.
	Prepare(ctx context.Context, q Query) (Preparation, error)

	// Execute performs the invocation and returns its result.
	Execute(ctx context.Context, q Query) (Result, error)
}

// Model converts the descriptor to the foundation tool shape used by the
// discovery index.
func (d Descriptor) Model(namespace string) model.Tool {
	return model.Tool{
		Tool: mcp.Tool{
			Name:        d.Name,
			Title:       d.Title,
			Description: d.Description,
			InputSchema: d.InputSchema,
			Annotations: d.Annotations,
		},
		Namespace: namespace,
		Tags:      model.NormalizeTags(d.Tags),
	}
}
