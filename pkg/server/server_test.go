package server

import (
	"context"
	"encoding/json"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"

	"github.com/user/dingtalk-mcp/pkg/dingtalk"
	"github.com/user/dingtalk-mcp/pkg/registry"
	"github.com/user/dingtalk-mcp/pkg/testutil"
	"github.com/user/dingtalk-mcp/pkg/tool"
)

func newTestServer(m *testutil.MockDingTalk) *registry.Registry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	client := dingtalk.NewClient(dingtalk.Options{
		BaseURL:     m.URL(),
		Credentials: dingtalk.StaticCredentials{AppKey: "key", AppSecret: "secret"},
		Logger:      logger,
	})
	return registry.New(
		tool.NewAccessTokenTool(client),
		tool.NewDepartmentListTool(client),
		tool.NewDepartmentUsersTool(client),
		tool.NewUserDetailTool(client),
		tool.NewSearchUserTool(client),
	)
}

// handleMessage runs one JSON-RPC message through the server and returns
// the marshalled response for assertion.
func handleMessage(t *testing.T, reg *registry.Registry, message string) gjson.Result {
	t.Helper()
	s := New(reg, "0.0.1-test")
	response := s.HandleMessage(context.Background(), json.RawMessage(message))
	data, err := json.Marshal(response)
	if err != nil {
		t.Fatalf("failed to marshal response: %v", err)
	}
	return gjson.ParseBytes(data)
}

func TestListToolsOverProtocol(t *testing.T) {
	m := testutil.NewMockDingTalk()
	defer m.Close()

	response := handleMessage(t, newTestServer(m),
		`{"jsonrpc":"2.0","id":1,"method":"tools/list"}`)

	tools := response.Get("result.tools")
	if tools.Get("#").Int() != 5 {
		t.Fatalf("expected 5 tools, got %s", tools.Raw)
	}

	want := map[string]bool{
		"get_access_token":     true,
		"get_department_list":  true,
		"get_department_users": true,
		"get_user_detail":      true,
		"search_user_by_name":  true,
	}
	for _, entry := range tools.Array() {
		name := entry.Get("name").String()
		if !want[name] {
			t.Errorf("unexpected tool %q", name)
		}
		if entry.Get("inputSchema.type").String() != "object" {
			t.Errorf("tool %q: missing object input schema", name)
		}
	}
}

func TestCallToolOverProtocol(t *testing.T) {
	m := testutil.NewMockDingTalk()
	defer m.Close()
	m.SetUsers(1, dingtalk.UserSummary{UserID: "u1", Name: "Alice"})

	response := handleMessage(t, newTestServer(m),
		`{"jsonrpc":"2.0","id":2,"method":"tools/call","params":{"name":"get_department_users","arguments":{"department_id":1}}}`)

	text := response.Get("result.content.0.text").String()
	if text != "User ID: u1\nName: Alice\n---" {
		t.Errorf("unexpected text payload: %q", text)
	}
	if response.Get("result.isError").Bool() {
		t.Error("well-formed calls must not be protocol errors")
	}
}

func TestCallToolOverProtocol_UpstreamFailureIsText(t *testing.T) {
	m := testutil.NewMockDingTalk()
	defer m.Close()
	m.FailDepartments(60020, "access denied")

	response := handleMessage(t, newTestServer(m),
		`{"jsonrpc":"2.0","id":3,"method":"tools/call","params":{"name":"get_department_list","arguments":{}}}`)

	if response.Get("error").Exists() {
		t.Fatalf("upstream failure must not become a JSON-RPC error: %s", response.Raw)
	}
	text := response.Get("result.content.0.text").String()
	if text != "Failed to get department list: access denied" {
		t.Errorf("unexpected text payload: %q", text)
	}
}
