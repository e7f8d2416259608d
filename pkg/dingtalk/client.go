// Package dingtalk implements a client for the DingTalk enterprise
// directory REST API. It covers token acquisition, department and user
// listing, user detail lookup, and a whole-directory search by name.
//
// All API responses share the errcode/errmsg envelope; any non-zero
// errcode, transport failure, or malformed body surfaces as an
// *UpstreamError. There are no retries: a single failed attempt is
// reported to the caller immediately.
package dingtalk

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

// DefaultBaseURL is the production DingTalk Open API endpoint.
const DefaultBaseURL = "https://oapi.dingtalk.com"

// DefaultTimeout bounds every outbound request so a stalled upstream
// surfaces as an UpstreamError instead of a hang.
const DefaultTimeout = 10 * time.Second

// Options configures a Client. The zero value is usable: it targets the
// production endpoint with the default timeout, reads credentials from
// the environment, and fetches a fresh token for every operation.
type Options struct {
	// BaseURL overrides the API endpoint. Default: DefaultBaseURL.
	BaseURL string

	// Timeout bounds each HTTP request. Default: DefaultTimeout.
	Timeout time.Duration

	// Credentials supplies the appkey/appsecret pair. Default: EnvCredentials.
	Credentials CredentialSource

	// TokenTTL, when positive, caches access tokens for that duration.
	// Zero preserves the upstream-faithful behavior of one token request
	// per operation.
	TokenTTL time.Duration

	// Logger receives skip/warn diagnostics. Default: logrus standard logger.
	Logger *logrus.Logger
}

// Client talks to the DingTalk directory API.
type Client struct {
	http   *resty.Client
	creds  CredentialSource
	tokens TokenSource
	logger *logrus.Logger
}

// NewClient creates a Client with the given options.
func NewClient(opts Options) *Client {
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	creds := opts.Credentials
	if creds == nil {
		creds = EnvCredentials{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	c := &Client{
		http:   resty.New().SetBaseURL(baseURL).SetTimeout(timeout),
		creds:  creds,
		logger: logger,
	}

	if opts.TokenTTL > 0 {
		c.tokens = NewCachedTokenSource(c, opts.TokenTTL)
	} else {
		c.tokens = freshTokenSource{c}
	}
	return c
}

// request issues one GET and applies the shared envelope check. It never
// returns a result and an error together.
func (c *Client) request(ctx context.Context, path string, params map[string]string) (gjson.Result, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get(path)
	if err != nil {
		return gjson.Result{}, &UpstreamError{Code: -1, Message: err.Error()}
	}

	body := resp.Body()
	if !gjson.ValidBytes(body) {
		return gjson.Result{}, &UpstreamError{Code: -1, Message: "invalid JSON in response body"}
	}

	doc := gjson.ParseBytes(body)
	if code := doc.Get("errcode"); code.Exists() && code.Int() != 0 {
		return gjson.Result{}, &UpstreamError{Code: code.Int(), Message: doc.Get("errmsg").String()}
	}
	return doc, nil
}
