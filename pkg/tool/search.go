package tool

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/user/dingtalk-mcp/pkg/dingtalk"
)

// SearchUserTool searches the whole directory for a user by exact name.
type SearchUserTool struct {
	client *dingtalk.Client
}

// searchUserInput defines the expected input parameters.
type searchUserInput struct {
	Name *string `json:"name"`
}

// NewSearchUserTool creates a new SearchUserTool.
func NewSearchUserTool(client *dingtalk.Client) *SearchUserTool {
	return &SearchUserTool{client: client}
}

// Name returns the tool identifier.
func (t *SearchUserTool) Name() string {
	return "search_user_by_name"
}

// Description returns a human-readable description of the tool.
func (t *SearchUserTool) Description() string {
	return `Searches for a user across all departments by their name.
Use this tool when you need to:
- Find detailed information about a specific user
- Verify if a user exists in the organization
- Get contact information for a user
- Check which department a user belongs to
This tool will search through all departments to find the user.
Returns comprehensive user details including:
- User ID and name
- Contact information (mobile and email)
- Position and department
Note: This operation may take longer as it searches through all departments.`
}

// InputSchema returns the JSON Schema for the tool's input parameters.
func (t *SearchUserTool) InputSchema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"name": {
				"type": "string",
				"description": "The exact name of the user to search for. Must match the user's name in DingTalk exactly."
			}
		},
		"required": ["name"]
	}`)
}

// Execute scans the directory and renders the first exact match, or the
// not-found sentinel when no department contains the name.
func (t *SearchUserTool) Execute(ctx context.Context, input json.RawMessage) (string, error) {
	var params searchUserInput
	if len(input) > 0 {
		if err := json.Unmarshal(input, &params); err != nil {
			return invalidArguments(err.Error()), nil
		}
	}
	if params.Name == nil || *params.Name == "" {
		return invalidArguments("name is required"), nil
	}

	match, err := t.client.SearchUserByName(ctx, *params.Name)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		if errors.Is(err, dingtalk.ErrUserNotFound) {
			return "No user found with name: " + *params.Name, nil
		}
		return failureText("get department list", err), nil
	}
	return RenderUserMatch(match), nil
}
