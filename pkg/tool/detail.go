package tool

import (
	"context"
	"encoding/json"

	"github.com/user/dingtalk-mcp/pkg/dingtalk"
)

// UserDetailTool fetches one user's full record and returns the raw
// fields as JSON rather than a rendered record block.
type UserDetailTool struct {
	client *dingtalk.Client
}

// userDetailInput defines the expected input parameters.
type userDetailInput struct {
	UserID *string `json:"userid"`
}

// NewUserDetailTool creates a new UserDetailTool.
func NewUserDetailTool(client *dingtalk.Client) *UserDetailTool {
	return &UserDetailTool{client: client}
}

// Name returns the tool identifier.
func (t *UserDetailTool) Name() string {
	return "get_user_detail"
}

// Description returns a human-readable description of the tool.
func (t *UserDetailTool) Description() string {
	return `Retrieves the full record of a single user by their user ID.
Use this tool when you already know the user ID (for example from
get_department_users) and need contact information or position details.
Returns the raw user fields as JSON: userid, name, mobile, email, position.
Absent optional fields are omitted.`
}

// InputSchema returns the JSON Schema for the tool's input parameters.
func (t *UserDetailTool) InputSchema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"userid": {
				"type": "string",
				"description": "The ID of the user to fetch. Must be a valid user ID from get_department_users."
			}
		},
		"required": ["userid"]
	}`)
}

// Execute fetches the user record and returns it as JSON.
func (t *UserDetailTool) Execute(ctx context.Context, input json.RawMessage) (string, error) {
	var params userDetailInput
	if len(input) > 0 {
		if err := json.Unmarshal(input, &params); err != nil {
			return invalidArguments(err.Error()), nil
		}
	}
	if params.UserID == nil || *params.UserID == "" {
		return invalidArguments("userid is required"), nil
	}

	detail, err := t.client.GetUserDetail(ctx, *params.UserID)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return failureText("get user detail", err), nil
	}

	data, err := json.Marshal(detail)
	if err != nil {
		return "Error: " + err.Error(), nil
	}
	return string(data), nil
}
