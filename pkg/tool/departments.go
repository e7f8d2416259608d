package tool

import (
	"context"
	"encoding/json"

	"github.com/user/dingtalk-mcp/pkg/dingtalk"
)

// DepartmentListTool lists the organization's departments.
type DepartmentListTool struct {
	client *dingtalk.Client
}

// departmentListInput defines the expected input parameters.
type departmentListInput struct {
	FetchChild *bool `json:"fetch_child"`
}

// NewDepartmentListTool creates a new DepartmentListTool.
func NewDepartmentListTool(client *dingtalk.Client) *DepartmentListTool {
	return &DepartmentListTool{client: client}
}

// Name returns the tool identifier.
func (t *DepartmentListTool) Name() string {
	return "get_department_list"
}

// Description returns a human-readable description of the tool.
func (t *DepartmentListTool) Description() string {
	return `Retrieves a list of all departments in the organization.
Use this tool when you need to:
- Get an overview of the organization structure
- Find department IDs for other API calls
- Check the hierarchy of departments
- Verify if a specific department exists
The response includes department IDs, names, and parent department IDs.
Set fetch_child=false if you only need top-level departments.`
}

// InputSchema returns the JSON Schema for the tool's input parameters.
func (t *DepartmentListTool) InputSchema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"fetch_child": {
				"type": "boolean",
				"description": "Whether to include child departments in the response. Default is true.",
				"default": true
			}
		},
		"required": []
	}`)
}

// Execute lists departments and renders them as record blocks.
func (t *DepartmentListTool) Execute(ctx context.Context, input json.RawMessage) (string, error) {
	var params departmentListInput
	if len(input) > 0 {
		if err := json.Unmarshal(input, &params); err != nil {
			return invalidArguments(err.Error()), nil
		}
	}
	fetchChild := true
	if params.FetchChild != nil {
		fetchChild = *params.FetchChild
	}

	departments, err := t.client.ListDepartments(ctx, fetchChild)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return failureText("get department list", err), nil
	}
	return RenderDepartments(departments), nil
}
