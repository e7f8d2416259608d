// Package tool implements the DingTalk directory tools exposed over the
// invocation protocol: token acquisition, department listing, department
// user listing, and name-based user search.
package tool

import (
	"context"
	"encoding/json"
)

// Tool defines the interface every directory tool implements. Tools are
// independent units dispatched by name; each wraps one query against the
// DingTalk API and renders its result as text.
type Tool interface {
	// Name returns the unique identifier for this tool.
	Name() string

	// Description returns a human-readable description of what the tool does.
	// This helps the caller decide when to use the tool.
	Description() string

	// InputSchema returns the JSON Schema defining the expected input parameters.
	InputSchema() json.RawMessage

	// Execute runs the tool with the given input and returns the result text.
	// The input is JSON that conforms to InputSchema.
	// Upstream and configuration failures are reported inside the result
	// text, never as a returned error; the only error out of Execute is
	// context cancellation.
	Execute(ctx context.Context, input json.RawMessage) (string, error)
}
