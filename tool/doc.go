// Package tool defines the contract for host-invocable agent tools and the
// registry that keys them by name.
//
// A Tool exposes a two-phase contract:
//   - Prepare: describe what is about to happen, optionally requesting
//     user confirmation. Purely descriptive; performs none of the work.
//   - Execute: perform the work and return a textual result.
//
// Includes:
//   - Tool: the prepare/execute contract plus a Descriptor for discovery.
//   - Func: adapter building a Tool from plain functions.
//   - Registry: concurrency-safe map from tool name to Tool.
package tool
