package dingtalk

import (
	"errors"
	"fmt"
)

// UpstreamError represents a failure reported by or while talking to the
// DingTalk API. Code is the upstream errcode when the API answered with a
// non-zero code, or -1 for transport failures and malformed responses.
type UpstreamError struct {
	Code    int64
	Message string
}

// Error implements the error interface.
func (e *UpstreamError) Error() string {
	return fmt.Sprintf("dingtalk: errcode %d: %s", e.Code, e.Message)
}

// ConfigurationError indicates missing or unusable credentials. It is
// raised at first token request, never at process start.
type ConfigurationError struct {
	Message string
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	return e.Message
}

// TokenError wraps a failure to acquire the access token a directory
// operation needs. It lets callers distinguish token acquisition
// failures from failures of the operation's own endpoint.
type TokenError struct {
	Err error
}

// Error implements the error interface.
func (e *TokenError) Error() string {
	return "failed to get access token: " + e.Err.Error()
}

// Unwrap exposes the underlying cause for errors.Is/As.
func (e *TokenError) Unwrap() error {
	return e.Err
}

// ErrUserNotFound is returned by SearchUserByName when no department
// contains a user with an exact name match.
var ErrUserNotFound = errors.New("user not found")
