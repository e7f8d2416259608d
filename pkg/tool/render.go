package tool

import (
	"errors"
	"strconv"
	"strings"

	"github.com/user/dingtalk-mcp/pkg/dingtalk"
)

// Sentinel texts for empty result sets.
const (
	NoDepartmentsFound = "No departments found"
	NoUsersFound       = "No users found in this department"
)

const (
	recordSeparator = "---"
	notAvailable    = "N/A"
)

// RenderDepartments renders departments as record blocks:
//
//	Department ID: <id>
//	Name: <name>
//	Parent ID: <parentid or N/A>
//	---
//
// joined by newlines. An empty slice renders as NoDepartmentsFound.
func RenderDepartments(departments []dingtalk.Department) string {
	if len(departments) == 0 {
		return NoDepartmentsFound
	}

	blocks := make([]string, 0, len(departments))
	for _, dept := range departments {
		parent := notAvailable
		if dept.ParentID != nil {
			parent = strconv.FormatInt(*dept.ParentID, 10)
		}
		blocks = append(blocks,
			"Department ID: "+strconv.FormatInt(dept.ID, 10)+"\n"+
				"Name: "+dept.Name+"\n"+
				"Parent ID: "+parent+"\n"+
				recordSeparator)
	}
	return strings.Join(blocks, "\n")
}

// ParseDepartments reverses RenderDepartments. Parsing the rendered text
// yields the same records, except that a parent rendered as N/A comes
// back as absent.
func ParseDepartments(text string) []dingtalk.Department {
	if text == NoDepartmentsFound {
		return nil
	}

	var departments []dingtalk.Department
	var current dingtalk.Department
	for _, line := range strings.Split(text, "\n") {
		switch {
		case strings.HasPrefix(line, "Department ID: "):
			current = dingtalk.Department{}
			current.ID, _ = strconv.ParseInt(strings.TrimPrefix(line, "Department ID: "), 10, 64)
		case strings.HasPrefix(line, "Name: "):
			current.Name = strings.TrimPrefix(line, "Name: ")
		case strings.HasPrefix(line, "Parent ID: "):
			if v := strings.TrimPrefix(line, "Parent ID: "); v != notAvailable {
				if id, err := strconv.ParseInt(v, 10, 64); err == nil {
					current.ParentID = &id
				}
			}
		case line == recordSeparator:
			departments = append(departments, current)
		}
	}
	return departments
}

// RenderUserSummaries renders a department's users as record blocks:
//
//	User ID: <userid>
//	Name: <name>
//	---
//
// joined by newlines. An empty slice renders as NoUsersFound.
func RenderUserSummaries(users []dingtalk.UserSummary) string {
	if len(users) == 0 {
		return NoUsersFound
	}

	blocks := make([]string, 0, len(users))
	for _, user := range users {
		blocks = append(blocks,
			"User ID: "+user.UserID+"\n"+
				"Name: "+user.Name+"\n"+
				recordSeparator)
	}
	return strings.Join(blocks, "\n")
}

// ParseUserSummaries reverses RenderUserSummaries.
func ParseUserSummaries(text string) []dingtalk.UserSummary {
	if text == NoUsersFound {
		return nil
	}

	var users []dingtalk.UserSummary
	var current dingtalk.UserSummary
	for _, line := range strings.Split(text, "\n") {
		switch {
		case strings.HasPrefix(line, "User ID: "):
			current = dingtalk.UserSummary{UserID: strings.TrimPrefix(line, "User ID: ")}
		case strings.HasPrefix(line, "Name: "):
			current.Name = strings.TrimPrefix(line, "Name: ")
		case line == recordSeparator:
			users = append(users, current)
		}
	}
	return users
}

// RenderUserMatch renders the result of a successful directory search.
// Absent contact fields render as N/A.
func RenderUserMatch(match *dingtalk.UserMatch) string {
	return "Found user:\n" +
		"User ID: " + match.Detail.UserID + "\n" +
		"Name: " + match.Detail.Name + "\n" +
		"Mobile: " + orNA(match.Detail.Mobile) + "\n" +
		"Email: " + orNA(match.Detail.Email) + "\n" +
		"Position: " + orNA(match.Detail.Position) + "\n" +
		"Department: " + match.DepartmentName
}

func orNA(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}

// failureText converts a client error into the textual failure contract:
// an errcode failure of the operation's own endpoint reads
// "Failed to <operation>: <errmsg>", everything else reads
// "Error: <message>".
func failureText(operation string, err error) string {
	var tokenErr *dingtalk.TokenError
	if errors.As(err, &tokenErr) {
		return "Error: " + err.Error()
	}
	var upErr *dingtalk.UpstreamError
	if errors.As(err, &upErr) && upErr.Code != -1 {
		return "Failed to " + operation + ": " + upErr.Message
	}
	return "Error: " + err.Error()
}

// invalidArguments reports a schema violation in the tool input.
func invalidArguments(msg string) string {
	return "Invalid arguments: " + msg
}
