package tool

import (
	"context"
	"encoding/json"

	"github.com/user/dingtalk-mcp/pkg/dingtalk"
)

// AccessTokenTool exposes raw token acquisition, mostly for testing and
// debugging; the other tools manage tokens themselves.
type AccessTokenTool struct {
	client *dingtalk.Client
}

// NewAccessTokenTool creates a new AccessTokenTool.
func NewAccessTokenTool(client *dingtalk.Client) *AccessTokenTool {
	return &AccessTokenTool{client: client}
}

// Name returns the tool identifier.
func (t *AccessTokenTool) Name() string {
	return "get_access_token"
}

// Description returns a human-readable description of the tool.
func (t *AccessTokenTool) Description() string {
	return `Retrieves an access token from the DingTalk API for authentication purposes.
Use this tool when you need to manually obtain an access token for testing or debugging.
Note: Most other tools automatically handle token management, so you rarely need to call this directly.
Returns: A valid access token string if successful, or an error message if failed.`
}

// InputSchema returns the JSON Schema for the tool's input parameters.
func (t *AccessTokenTool) InputSchema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {},
		"required": []
	}`)
}

// Execute fetches a fresh access token and returns it verbatim.
func (t *AccessTokenTool) Execute(ctx context.Context, input json.RawMessage) (string, error) {
	token, err := t.client.GetAccessToken(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "Error: " + err.Error(), nil
	}
	return token, nil
}
