package tool

import (
	"context"
	"encoding/json"

	"github.com/user/dingtalk-mcp/pkg/dingtalk"
)

// DepartmentUsersTool lists the members of one department.
type DepartmentUsersTool struct {
	client *dingtalk.Client
}

// departmentUsersInput defines the expected input parameters.
type departmentUsersInput struct {
	DepartmentID *int64 `json:"department_id"`
}

// NewDepartmentUsersTool creates a new DepartmentUsersTool.
func NewDepartmentUsersTool(client *dingtalk.Client) *DepartmentUsersTool {
	return &DepartmentUsersTool{client: client}
}

// Name returns the tool identifier.
func (t *DepartmentUsersTool) Name() string {
	return "get_department_users"
}

// Description returns a human-readable description of the tool.
func (t *DepartmentUsersTool) Description() string {
	return `Retrieves a list of users in a specific department.
Use this tool when you need to:
- Get all members of a particular department
- Check if a user belongs to a department
- Find user IDs within a department
- List available users for task assignment
Requires a valid department ID (can be obtained from get_department_list).
Returns basic user information including user ID and name.`
}

// InputSchema returns the JSON Schema for the tool's input parameters.
func (t *DepartmentUsersTool) InputSchema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"department_id": {
				"type": "integer",
				"description": "The ID of the department to query. Must be a valid department ID from get_department_list."
			}
		},
		"required": ["department_id"]
	}`)
}

// Execute lists one department's users and renders them as record blocks.
func (t *DepartmentUsersTool) Execute(ctx context.Context, input json.RawMessage) (string, error) {
	var params departmentUsersInput
	if len(input) > 0 {
		if err := json.Unmarshal(input, &params); err != nil {
			return invalidArguments(err.Error()), nil
		}
	}
	if params.DepartmentID == nil {
		return invalidArguments("department_id is required"), nil
	}

	users, err := t.client.ListDepartmentUsers(ctx, *params.DepartmentID)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return failureText("get department users", err), nil
	}
	return RenderUserSummaries(users), nil
}
