// Package clock provides the current-time tool and the clock abstraction it
// reads from.
//
// Includes:
//   - Clock: a wall-clock source; System for real time, Fixed for tests.
//   - TimeTool: renders "now" as a long-form timestamp (weekday, full date,
//     hour:minute:second) in a 12- or 24-hour convention, with an optional
//     timezone abbreviation.
//
// Reading the clock is intentionally non-idempotent: the same query yields a
// different result on every call.
package clock
