package registry

import (
	"context"
	"encoding/json"
	"io"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/user/dingtalk-mcp/pkg/dingtalk"
	"github.com/user/dingtalk-mcp/pkg/testutil"
	"github.com/user/dingtalk-mcp/pkg/tool"
)

func newTestRegistry(m *testutil.MockDingTalk) *Registry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	client := dingtalk.NewClient(dingtalk.Options{
		BaseURL:     m.URL(),
		Credentials: dingtalk.StaticCredentials{AppKey: "key", AppSecret: "secret"},
		Logger:      logger,
	})
	return New(
		tool.NewAccessTokenTool(client),
		tool.NewDepartmentListTool(client),
		tool.NewDepartmentUsersTool(client),
		tool.NewUserDetailTool(client),
		tool.NewSearchUserTool(client),
	)
}

func TestListTools(t *testing.T) {
	m := testutil.NewMockDingTalk()
	defer m.Close()

	reg := newTestRegistry(m)
	descriptors := reg.ListTools()

	want := []string{
		"get_access_token",
		"get_department_list",
		"get_department_users",
		"get_user_detail",
		"search_user_by_name",
	}
	if len(descriptors) != len(want) {
		t.Fatalf("expected %d tools, got %d", len(want), len(descriptors))
	}
	for i, name := range want {
		if descriptors[i].Name != name {
			t.Errorf("tool %d: expected %q, got %q", i, name, descriptors[i].Name)
		}
		if descriptors[i].Description == "" {
			t.Errorf("tool %q: empty description", name)
		}
		var schema map[string]any
		if err := json.Unmarshal(descriptors[i].InputSchema, &schema); err != nil {
			t.Errorf("tool %q: schema is not valid JSON: %v", name, err)
		}
	}
}

func TestListTools_Deterministic(t *testing.T) {
	m := testutil.NewMockDingTalk()
	defer m.Close()

	reg := newTestRegistry(m)
	first := reg.ListTools()
	second := reg.ListTools()
	for i := range first {
		if first[i].Name != second[i].Name {
			t.Fatalf("listing order changed between calls: %v vs %v", first, second)
		}
	}
}

func TestCallTool_Dispatch(t *testing.T) {
	m := testutil.NewMockDingTalk()
	defer m.Close()
	m.SetUsers(1, dingtalk.UserSummary{UserID: "u1", Name: "Alice"})

	reg := newTestRegistry(m)
	result, err := reg.CallTool(context.Background(), "get_department_users", map[string]any{
		"department_id": 1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != "User ID: u1\nName: Alice\n---" {
		t.Errorf("unexpected result: %q", result)
	}
}

func TestCallTool_UnknownName(t *testing.T) {
	m := testutil.NewMockDingTalk()
	defer m.Close()

	reg := newTestRegistry(m)
	result, err := reg.CallTool(context.Background(), "delete_everything", nil)
	if err != nil {
		t.Fatalf("unknown tools must not error: %v", err)
	}
	if result != "Unknown tool: delete_everything" {
		t.Errorf("unexpected result: %q", result)
	}
}

func TestCallTool_FailureStaysTextual(t *testing.T) {
	m := testutil.NewMockDingTalk()
	defer m.Close()
	m.FailDepartments(60020, "access denied")

	reg := newTestRegistry(m)
	result, err := reg.CallTool(context.Background(), "get_department_list", nil)
	if err != nil {
		t.Fatalf("upstream failures must not escape the dispatcher: %v", err)
	}
	if result != "Failed to get department list: access denied" {
		t.Errorf("unexpected result: %q", result)
	}
}
