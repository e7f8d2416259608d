// Package registry implements the static tool table and name-based
// dispatch behind the invocation protocol.
package registry

import (
	"context"
	"encoding/json"

	"github.com/user/dingtalk-mcp/pkg/tool"
)

// Descriptor describes one registered tool to protocol clients.
type Descriptor struct {
	Name        string
	Description string
	InputSchema json.RawMessage
}

// Registry holds the fixed tool set. It is immutable after New and safe
// for concurrent use.
type Registry struct {
	order  []tool.Tool
	byName map[string]tool.Tool
}

// New creates a Registry from the given tools. Listing order follows
// registration order.
func New(tools ...tool.Tool) *Registry {
	byName := make(map[string]tool.Tool, len(tools))
	for _, t := range tools {
		byName[t.Name()] = t
	}
	return &Registry{order: tools, byName: byName}
}

// ListTools returns the descriptors of every registered tool, in
// registration order. The result is deterministic across calls.
func (r *Registry) ListTools() []Descriptor {
	descriptors := make([]Descriptor, len(r.order))
	for i, t := range r.order {
		descriptors[i] = Descriptor{
			Name:        t.Name(),
			Description: t.Description(),
			InputSchema: t.InputSchema(),
		}
	}
	return descriptors
}

// CallTool dispatches to the tool with the given name. Every outcome is
// reported as text: an unrecognized name yields "Unknown tool: <name>"
// and tool-level failures arrive pre-rendered by the tool itself. The
// returned error is non-nil only for context cancellation.
func (r *Registry) CallTool(ctx context.Context, name string, arguments map[string]any) (string, error) {
	t, ok := r.byName[name]
	if !ok {
		return "Unknown tool: " + name, nil
	}

	input, err := json.Marshal(arguments)
	if err != nil {
		return "Invalid arguments: " + err.Error(), nil
	}
	return t.Execute(ctx, input)
}
