package dingtalk

import (
	"context"
	"encoding/json"
	"strconv"
)

// Department is one entry from the department listing.
type Department struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	ParentID *int64 `json:"parentid,omitempty"`
}

// UserSummary is one entry from the per-department user listing.
type UserSummary struct {
	UserID string `json:"userid"`
	Name   string `json:"name"`
}

// UserDetail is the full record returned by the user detail endpoint.
// Mobile, Email, and Position may be empty; the rendering layer
// substitutes "N/A" for absent values.
type UserDetail struct {
	UserID   string `json:"userid"`
	Name     string `json:"name"`
	Mobile   string `json:"mobile,omitempty"`
	Email    string `json:"email,omitempty"`
	Position string `json:"position,omitempty"`
}

// ListDepartments fetches every department via GET /v1/department/list.
// fetchChild controls whether child departments are included.
func (c *Client) ListDepartments(ctx context.Context, fetchChild bool) ([]Department, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, &TokenError{Err: err}
	}

	doc, err := c.request(ctx, "/v1/department/list", map[string]string{
		"access_token": token,
		"fetch_child":  strconv.FormatBool(fetchChild),
	})
	if err != nil {
		return nil, err
	}

	var departments []Department
	if raw := doc.Get("department"); raw.Exists() {
		if err := json.Unmarshal([]byte(raw.Raw), &departments); err != nil {
			return nil, &UpstreamError{Code: -1, Message: "malformed department list: " + err.Error()}
		}
	}
	return departments, nil
}

// ListDepartmentUsers fetches the members of one department via
// GET /v1/user/simplelist.
func (c *Client) ListDepartmentUsers(ctx context.Context, departmentID int64) ([]UserSummary, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, &TokenError{Err: err}
	}

	doc, err := c.request(ctx, "/v1/user/simplelist", map[string]string{
		"access_token":  token,
		"department_id": strconv.FormatInt(departmentID, 10),
	})
	if err != nil {
		return nil, err
	}

	var users []UserSummary
	if raw := doc.Get("userlist"); raw.Exists() {
		if err := json.Unmarshal([]byte(raw.Raw), &users); err != nil {
			return nil, &UpstreamError{Code: -1, Message: "malformed user list: " + err.Error()}
		}
	}
	return users, nil
}

// GetUserDetail fetches one user's full record via GET /v1/user/get.
func (c *Client) GetUserDetail(ctx context.Context, userID string) (*UserDetail, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, &TokenError{Err: err}
	}

	doc, err := c.request(ctx, "/v1/user/get", map[string]string{
		"access_token": token,
		"userid":       userID,
	})
	if err != nil {
		return nil, err
	}

	var detail UserDetail
	if err := json.Unmarshal([]byte(doc.Raw), &detail); err != nil {
		return nil, &UpstreamError{Code: -1, Message: "malformed user detail: " + err.Error()}
	}
	return &detail, nil
}
