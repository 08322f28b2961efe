package powerschool

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/sync/singleflight"

	"psmcp/pkg/logging"
)

const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// tokenEndpointPath is the PowerSchool OAuth token endpoint.
	tokenEndpointPath = "/oauth/access_token"
)

// TokenManager owns the OAuth2 authentication state for one PowerSchool
// deployment. It produces a currently-valid bearer token on demand,
// transparently refreshing when expired. It is safe for concurrent use;
// concurrent refreshes are collapsed into a single token request.
//
// TokenManager implements oauth2.TokenSource.
type TokenManager struct {
	creds      Credentials
	httpClient *http.Client
	margin     time.Duration
	now        func() time.Time

	// mu guards current. The token is replaced, never mutated.
	mu      sync.Mutex
	current *Token

	// group deduplicates concurrent authentication requests.
	group singleflight.Group
}

// ManagerOption configures a TokenManager.
type ManagerOption func(*TokenManager)

// WithManagerHTTPClient sets a custom HTTP client for token requests.
func WithManagerHTTPClient(httpClient *http.Client) ManagerOption {
	return func(m *TokenManager) {
		m.httpClient = httpClient
	}
}

// WithExpiryMargin sets the safety margin subtracted from token lifetimes.
func WithExpiryMargin(margin time.Duration) ManagerOption {
	return func(m *TokenManager) {
		m.margin = margin
	}
}

// WithClock sets the time source. Used by tests to control expiry.
func WithClock(now func() time.Time) ManagerOption {
	return func(m *TokenManager) {
		m.now = now
	}
}

// NewTokenManager creates a TokenManager for the given credentials.
func NewTokenManager(creds Credentials, opts ...ManagerOption) *TokenManager {
	m := &TokenManager{
		creds:      creds,
		httpClient: &http.Client{Timeout: DefaultHTTPTimeout},
		margin:     DefaultExpiryMargin,
		now:        time.Now,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// GetValidToken returns a token guaranteed to be unexpired at the moment of
// return, authenticating first if no token is cached or the cached token has
// expired. Callers that arrive while a refresh is in flight wait for it and
// reuse its result.
func (m *TokenManager) GetValidToken(ctx context.Context) (*Token, error) {
	if tok := m.cached(); tok != nil {
		return tok, nil
	}

	result, err, _ := m.group.Do("token", func() (interface{}, error) {
		// Re-check after acquiring the singleflight slot; a racing caller
		// may have already refreshed.
		if tok := m.cached(); tok != nil {
			return tok, nil
		}
		return m.Authenticate(ctx)
	})
	if err != nil {
		return nil, err
	}

	return result.(*Token), nil
}

// cached returns the current token if one exists and is unexpired.
func (m *TokenManager) cached() *Token {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current != nil && !m.current.ExpiredAt(m.now()) {
		return m.current
	}
	return nil
}

// Authenticate performs exactly one OAuth2 token request using the grant
// type selected by the configured credentials: the password grant when
// username and password are present, client credentials otherwise.
//
// On success the new token replaces the cached one. On failure the
// previously cached token, if any, is left untouched.
func (m *TokenManager) Authenticate(ctx context.Context) (*Token, error) {
	grant := m.creds.Grant()

	data := url.Values{
		"grant_type":    {string(grant)},
		"client_id":     {m.creds.ClientID},
		"client_secret": {m.creds.ClientSecret},
	}
	if grant == GrantPassword {
		data.Set("username", m.creds.Username)
		data.Set("password", m.creds.Password)
	}

	tokenURL := strings.TrimSuffix(m.creds.BaseURL, "/") + tokenEndpointPath
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tokenURL, strings.NewReader(data.Encode()))
	if err != nil {
		return nil, &AuthError{Err: fmt.Errorf("failed to create token request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return nil, &AuthError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &AuthError{Err: fmt.Errorf("failed to read token response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logging.Debug("TokenManager", "token request rejected: status %d, body %s", resp.StatusCode, string(body))
		return nil, &AuthError{StatusCode: resp.StatusCode}
	}

	var token Token
	if err := json.Unmarshal(body, &token); err != nil {
		return nil, &AuthError{Err: fmt.Errorf("failed to parse token response: %w", err)}
	}
	token.Grant = grant
	token.SetExpiresAt(m.now(), m.margin)

	m.mu.Lock()
	m.current = &token
	m.mu.Unlock()

	logging.Debug("TokenManager", "obtained %s token, expires at %s", grant, token.ExpiresAt.Format(time.RFC3339))

	return &token, nil
}

// Token implements oauth2.TokenSource, allowing the manager to back an
// oauth2.Transport that attaches the bearer token to outgoing requests.
func (m *TokenManager) Token() (*oauth2.Token, error) {
	tok, err := m.GetValidToken(context.Background())
	if err != nil {
		return nil, err
	}
	return tok.ToOAuth2Token(), nil
}

var _ oauth2.TokenSource = (*TokenManager)(nil)
