package clock

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ming86/lmtools/tool"
)

// Name is the identifier TimeTool registers under.
const Name = "get_current_time"

// Hour conventions accepted in a query's "format" field.
const (
	Format12Hour = "12-hour"
	Format24Hour = "24-hour"
)

// Layouts for the long-form rendering. The 12-hour convention is the
// default.
const (
	layout12     = "Monday, January 2, 2006, 03:04:05 PM"
	layout24     = "Monday, January 2, 2006, 15:04:05"
	layout12Zone = "Monday, January 2, 2006, 03:04:05 PM MST"
	layout24Zone = "Monday, January 2, 2006, 15:04:05 MST"
)

// TimeQuery is the decoded query shape for TimeTool. Both fields are
// optional; an unrecognized format falls back to the 12-hour default.
type TimeQuery struct {
	// Format selects the hour convention: Format12Hour or Format24Hour.
	Format string

	// IncludeTimezone appends the timezone abbreviation when true.
	IncludeTimezone bool
}

// ParseQuery decodes a TimeQuery from a raw query map. Fields of the wrong
// type are ignored; the host's schema validation rejects them before a
// well-configured invocation reaches this point.
func ParseQuery(q tool.Query) TimeQuery {
	var tq TimeQuery
	if v, ok := q["format"].(string); ok {
		tq.Format = v
	}
	if v, ok := q["includeTimezone"].(bool); ok {
		tq.IncludeTimezone = v
	}
	return tq
}

// Render formats now according to the query.
func Render(t TimeQuery, now time.Time) string {
	switch {
	case t.Format == Format24Hour && t.IncludeTimezone:
		return now.Format(layout24Zone)
	case t.Format == Format24Hour:
		return now.Format(layout24)
	case t.IncludeTimezone:
		return now.Format(layout12Zone)
	default:
		return now.Format(layout12)
	}
}

// TimeTool reports the current date and time. Each invocation is a single
// stateless clock read; no state persists across calls.
type TimeTool struct {
	clock Clock
}

// New creates a TimeTool backed by the system clock.
func New() *TimeTool {
	return NewWithClock(System())
}

// NewWithClock creates a TimeTool reading from the given clock.
func NewWithClock(c Clock) *TimeTool {
	if c == nil {
		c = System()
	}
	return &TimeTool{clock: c}
}

// Descriptor returns the tool's registration metadata.
func (t *TimeTool) Descriptor() tool.Descriptor {
	return tool.Descriptor{
		Name:        Name,
		Description: "Get the current date and time as a human-readable string.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"format": map[string]any{
					"type":        "string",
					"enum":        []any{Format12Hour, Format24Hour},
					"description": "Hour convention for the rendered time. Defaults to 12-hour.",
				},
				"includeTimezone": map[string]any{
					"type":        "boolean",
					"description": "Include the timezone abbreviation in the result.",
				},
			},
		},
		Annotations: &mcp.ToolAnnotations{
			Title:        "Get Current Time",
			ReadOnlyHint: true,
		},
		Tags: []string{"time", "clock", "date"},
	}
}

// Prepare describes the pending invocation. It performs no clock read.
func (t *TimeTool) Prepare(ctx context.Context, _ tool.Query) (tool.Preparation, error) {
	if err := ctx.Err(); err != nil {
		return tool.Preparation{}, err
	}
	return tool.Preparation{Message: "Getting the current time"}, nil
}

// Execute reads the clock once and renders it per the query.
func (t *TimeTool) Execute(ctx context.Context, q tool.Query) (tool.Result, error) {
	if err := ctx.Err(); err != nil {
		return tool.Result{}, err
	}
	now := t.clock.Now()
	text := Render(ParseQuery(q), now)
	return tool.Result{Text: text, Value: now}, nil
}
