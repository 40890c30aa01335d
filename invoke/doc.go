// Package invoke implements the host side of tool invocation: it owns the
// tool registry, validates caller-supplied arguments against each tool's
// declared input schema, runs the prepare/confirm/execute lifecycle, and
// wraps the outcome for the agent runtime.
//
// When a discovery index and doc store are configured, registered tools are
// mirrored into them so agents can search for tools and fetch their
// documentation through the same facade.
package invoke
