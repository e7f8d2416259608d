// Package testutil provides a fake DingTalk API server for tests.
package testutil

import (
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/tidwall/sjson"

	"github.com/user/dingtalk-mcp/pkg/dingtalk"
)

// apiError is a scripted errcode/errmsg failure for one endpoint.
type apiError struct {
	code int64
	msg  string
}

// MockDingTalk is an httptest-backed fake of the four directory
// endpoints. Fixtures are set per endpoint; every mutator is safe to
// call between requests. The fake validates the access_token query
// parameter against the token it issued, so token plumbing is exercised
// end to end.
type MockDingTalk struct {
	srv *httptest.Server

	mu          sync.Mutex
	accessToken string
	tokenErr    *apiError

	departments    []dingtalk.Department
	departmentsErr *apiError

	usersByDept map[int64][]dingtalk.UserSummary
	userErrs    map[int64]*apiError

	details    map[string]dingtalk.UserDetail
	detailErrs map[string]*apiError

	garbage map[string]bool

	tokenRequests int
	lastAppKey    string
	lastAppSecret string
}

// NewMockDingTalk starts the fake server with a default access token.
// Callers must Close it.
func NewMockDingTalk() *MockDingTalk {
	m := &MockDingTalk{
		accessToken: "mock-token",
		usersByDept: make(map[int64][]dingtalk.UserSummary),
		userErrs:    make(map[int64]*apiError),
		details:     make(map[string]dingtalk.UserDetail),
		detailErrs:  make(map[string]*apiError),
		garbage:     make(map[string]bool),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/gettoken", m.handleToken)
	mux.HandleFunc("/v1/department/list", m.handleDepartments)
	mux.HandleFunc("/v1/user/simplelist", m.handleUsers)
	mux.HandleFunc("/v1/user/get", m.handleDetail)

	m.srv = httptest.NewServer(mux)
	return m
}

// URL returns the fake server's base URL.
func (m *MockDingTalk) URL() string {
	return m.srv.URL
}

// Close shuts down the fake server.
func (m *MockDingTalk) Close() {
	m.srv.Close()
}

// SetAccessToken changes the token the fake issues and expects.
func (m *MockDingTalk) SetAccessToken(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accessToken = token
}

// FailToken scripts an errcode failure for /gettoken.
func (m *MockDingTalk) FailToken(code int64, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokenErr = &apiError{code, msg}
}

// SetDepartments installs the department listing fixture.
func (m *MockDingTalk) SetDepartments(departments ...dingtalk.Department) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.departments = departments
}

// FailDepartments scripts an errcode failure for /v1/department/list.
func (m *MockDingTalk) FailDepartments(code int64, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.departmentsErr = &apiError{code, msg}
}

// SetUsers installs the user listing fixture for one department.
func (m *MockDingTalk) SetUsers(departmentID int64, users ...dingtalk.UserSummary) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.usersByDept[departmentID] = users
}

// FailUsers scripts an errcode failure for one department's user listing.
func (m *MockDingTalk) FailUsers(departmentID int64, code int64, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.userErrs[departmentID] = &apiError{code, msg}
}

// SetDetail installs the detail fixture for one user.
func (m *MockDingTalk) SetDetail(detail dingtalk.UserDetail) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.details[detail.UserID] = detail
}

// FailDetail scripts an errcode failure for one user's detail fetch.
func (m *MockDingTalk) FailDetail(userID string, code int64, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.detailErrs[userID] = &apiError{code, msg}
}

// BreakEndpoint makes the given path respond with a non-JSON body.
func (m *MockDingTalk) BreakEndpoint(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.garbage[path] = true
}

// TokenRequests reports how many times /gettoken was hit.
func (m *MockDingTalk) TokenRequests() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tokenRequests
}

// LastCredentials reports the appkey/appsecret pair from the most recent
// token request.
func (m *MockDingTalk) LastCredentials() (string, string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastAppKey, m.lastAppSecret
}

func envelope() []byte {
	return []byte(`{"errcode":0,"errmsg":"ok"}`)
}

func writeErrcode(w http.ResponseWriter, e *apiError) {
	body, _ := sjson.SetBytes(envelope(), "errcode", e.code)
	body, _ = sjson.SetBytes(body, "errmsg", e.msg)
	writeJSON(w, body)
}

func writeJSON(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.Write(body)
}

// checkGarbage writes a non-JSON body when the path is broken.
func (m *MockDingTalk) checkGarbage(w http.ResponseWriter, path string) bool {
	if !m.garbage[path] {
		return false
	}
	w.Write([]byte("<html>gateway error</html>"))
	return true
}

// checkAuth rejects requests whose access_token does not match the
// issued token, mimicking upstream errcode 40014.
func (m *MockDingTalk) checkAuth(w http.ResponseWriter, r *http.Request) bool {
	if r.URL.Query().Get("access_token") != m.accessToken {
		writeErrcode(w, &apiError{40014, "invalid access token"})
		return false
	}
	return true
}

func (m *MockDingTalk) handleToken(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.tokenRequests++
	m.lastAppKey = r.URL.Query().Get("appkey")
	m.lastAppSecret = r.URL.Query().Get("appsecret")

	if m.checkGarbage(w, "/gettoken") {
		return
	}
	if m.tokenErr != nil {
		writeErrcode(w, m.tokenErr)
		return
	}

	body, _ := sjson.SetBytes(envelope(), "access_token", m.accessToken)
	body, _ = sjson.SetBytes(body, "expires_in", 7200)
	writeJSON(w, body)
}

func (m *MockDingTalk) handleDepartments(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.checkGarbage(w, "/v1/department/list") {
		return
	}
	if !m.checkAuth(w, r) {
		return
	}
	if m.departmentsErr != nil {
		writeErrcode(w, m.departmentsErr)
		return
	}

	body, _ := sjson.SetBytes(envelope(), "department", m.departments)
	writeJSON(w, body)
}

func (m *MockDingTalk) handleUsers(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.checkGarbage(w, "/v1/user/simplelist") {
		return
	}
	if !m.checkAuth(w, r) {
		return
	}

	deptID := parseInt(r.URL.Query().Get("department_id"))
	if e := m.userErrs[deptID]; e != nil {
		writeErrcode(w, e)
		return
	}

	users := m.usersByDept[deptID]
	if users == nil {
		users = []dingtalk.UserSummary{}
	}
	body, _ := sjson.SetBytes(envelope(), "userlist", users)
	writeJSON(w, body)
}

func (m *MockDingTalk) handleDetail(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.checkGarbage(w, "/v1/user/get") {
		return
	}
	if !m.checkAuth(w, r) {
		return
	}

	userID := r.URL.Query().Get("userid")
	if e := m.detailErrs[userID]; e != nil {
		writeErrcode(w, e)
		return
	}

	detail, ok := m.details[userID]
	if !ok {
		writeErrcode(w, &apiError{60121, "user not found"})
		return
	}

	body, _ := sjson.SetBytes(envelope(), "userid", detail.UserID)
	body, _ = sjson.SetBytes(body, "name", detail.Name)
	if detail.Mobile != "" {
		body, _ = sjson.SetBytes(body, "mobile", detail.Mobile)
	}
	if detail.Email != "" {
		body, _ = sjson.SetBytes(body, "email", detail.Email)
	}
	if detail.Position != "" {
		body, _ = sjson.SetBytes(body, "position", detail.Position)
	}
	writeJSON(w, body)
}

func parseInt(s string) int64 {
	var n int64
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0
		}
		n = n*10 + int64(c-'0')
	}
	return n
}
