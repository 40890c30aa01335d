// Package notify carries one-line messages from tools and commands to the
// user-facing notification area of the host.
//
// Includes:
//   - Notifier: the display surface; Log and Discard implementations.
//   - Commands: a registry of named commands that produce a message to show,
//     the companion surface to tool invocation.
package notify
