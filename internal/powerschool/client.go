package powerschool

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"psmcp/pkg/logging"
)

// Client is the authenticated gateway to the PowerSchool REST API. It issues
// read-only HTTP GET requests with the current bearer token attached and
// normalizes every outcome into a Result envelope.
//
// Call never returns a Go error; callers only ever see envelopes.
type Client struct {
	baseURL    string
	tokens     *TokenManager
	httpClient *http.Client
	timeout    time.Duration
	base       http.RoundTripper
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPTimeout bounds every outbound request, token requests included.
func WithHTTPTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithTransport sets the base transport for data requests.
func WithTransport(rt http.RoundTripper) ClientOption {
	return func(c *Client) {
		c.base = rt
	}
}

// WithTokenManager sets a custom token manager. When unset, NewClient builds
// one from the credentials.
func WithTokenManager(m *TokenManager) ClientOption {
	return func(c *Client) {
		c.tokens = m
	}
}

// NewClient validates the credentials and creates a gateway for them.
// Missing required credentials yield a *ConfigError before any network call.
func NewClient(creds Credentials, opts ...ClientOption) (*Client, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}

	c := &Client{
		baseURL: strings.TrimSuffix(creds.BaseURL, "/"),
		timeout: DefaultHTTPTimeout,
		base:    http.DefaultTransport,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.tokens == nil {
		c.tokens = NewTokenManager(creds,
			WithManagerHTTPClient(&http.Client{Timeout: c.timeout, Transport: c.base}))
	}

	// The oauth2 transport asks the token manager for a valid token on every
	// request and attaches it as the Authorization header.
	c.httpClient = &http.Client{
		Timeout: c.timeout,
		Transport: &oauth2.Transport{
			Source: c.tokens,
			Base:   c.base,
		},
	}

	return c, nil
}

// TokenManager returns the manager owning this client's token state.
func (c *Client) TokenManager() *TokenManager {
	return c.tokens
}

// Call performs an authenticated GET against base URL + path and returns the
// outcome as a Result envelope. Failure modes map as follows:
//
//   - token endpoint failure: authentication failure envelope
//   - HTTP 401/403: authorization failure envelope (no in-call retry and no
//     forced token refresh; a later call re-authenticates only if the cached
//     token actually expired)
//   - other non-2xx: upstream error envelope with the status
//   - timeout or network failure: connection error envelope
//   - malformed response body: parse error envelope
func (c *Client) Call(ctx context.Context, path string, query url.Values) Result {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return Fail("invalid request for %s: %v", path, err)
	}
	req.Header.Set("Accept", "application/json")

	id := uuid.NewString()
	logging.Debug("Gateway", "request %s: GET %s", id, target)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		var authErr *AuthError
		if errors.As(err, &authErr) {
			logging.Debug("Gateway", "request %s: authentication failed", id)
			return Fail("failed to authenticate with PowerSchool: %v", authErr)
		}
		if isTimeout(err) {
			logging.Debug("Gateway", "request %s: timed out", id)
			return Fail("connection error: request to %s timed out after %s", path, c.timeout)
		}
		logging.Debug("Gateway", "request %s: connection failed", id)
		return Fail("connection error: failed to reach PowerSchool: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Fail("connection error: failed to read response from %s: %v", path, err)
	}

	logging.Debug("Gateway", "request %s: status %d (%d bytes)", id, resp.StatusCode, len(body))

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return Fail("not authorized for %s: PowerSchool returned status %d", path, resp.StatusCode)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return Fail("PowerSchool request to %s failed with status %d", path, resp.StatusCode)
	}

	var data any
	if err := json.Unmarshal(body, &data); err != nil {
		return Fail("parse error: invalid JSON response from %s: %v", path, err)
	}

	return Succeed(data)
}

// isTimeout reports whether err represents a timeout rather than some other
// network failure.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
