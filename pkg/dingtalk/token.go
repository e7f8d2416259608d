package dingtalk

import (
	"context"
	"os"
	"sync"
	"time"
)

// Environment variables holding the API credentials.
const (
	EnvAppKey    = "DINGDING_APP_KEY"
	EnvAppSecret = "DINGDING_APP_SECRET"
)

// CredentialSource supplies the appkey/appsecret pair for token requests.
type CredentialSource interface {
	// Credentials returns the pair, or a *ConfigurationError when either
	// value is unavailable.
	Credentials() (appKey, appSecret string, err error)
}

// EnvCredentials reads the credential pair from the process environment
// on every call. Absence is reported at first use, not at startup.
type EnvCredentials struct{}

// Credentials implements CredentialSource.
func (EnvCredentials) Credentials() (string, string, error) {
	appKey := os.Getenv(EnvAppKey)
	appSecret := os.Getenv(EnvAppSecret)
	if appKey == "" || appSecret == "" {
		return "", "", &ConfigurationError{
			Message: "missing DingTalk API credentials in environment variables",
		}
	}
	return appKey, appSecret, nil
}

// StaticCredentials holds a fixed credential pair. Useful for tests.
type StaticCredentials struct {
	AppKey    string
	AppSecret string
}

// Credentials implements CredentialSource.
func (s StaticCredentials) Credentials() (string, string, error) {
	if s.AppKey == "" || s.AppSecret == "" {
		return "", "", &ConfigurationError{Message: "missing DingTalk API credentials"}
	}
	return s.AppKey, s.AppSecret, nil
}

// GetAccessToken exchanges the configured credentials for a short-lived
// access token via GET /gettoken.
func (c *Client) GetAccessToken(ctx context.Context) (string, error) {
	appKey, appSecret, err := c.creds.Credentials()
	if err != nil {
		return "", err
	}

	doc, err := c.request(ctx, "/gettoken", map[string]string{
		"appkey":    appKey,
		"appsecret": appSecret,
	})
	if err != nil {
		return "", err
	}
	return doc.Get("access_token").String(), nil
}

// TokenSource yields an access token for one directory operation.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// freshTokenSource fetches a new token on every call, matching the
// upstream behavior of one token round trip per operation.
type freshTokenSource struct {
	client *Client
}

func (s freshTokenSource) Token(ctx context.Context) (string, error) {
	return s.client.GetAccessToken(ctx)
}

// CachedTokenSource reuses a token for a fixed TTL before refreshing.
// Opt-in: the default client behavior is a fresh token per operation.
type CachedTokenSource struct {
	client *Client
	ttl    time.Duration

	mu      sync.Mutex
	token   string
	expires time.Time
}

// NewCachedTokenSource creates a TTL-bounded token cache backed by the
// given client's GetAccessToken.
func NewCachedTokenSource(c *Client, ttl time.Duration) *CachedTokenSource {
	return &CachedTokenSource{client: c, ttl: ttl}
}

// Token implements TokenSource.
func (s *CachedTokenSource) Token(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token != "" && time.Now().Before(s.expires) {
		return s.token, nil
	}

	token, err := s.client.GetAccessToken(ctx)
	if err != nil {
		return "", err
	}
	s.token = token
	s.expires = time.Now().Add(s.ttl)
	return token, nil
}
