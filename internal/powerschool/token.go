package powerschool

import (
	"time"

	"golang.org/x/oauth2"
)

// DefaultExpiryMargin is subtracted from the upstream token lifetime when
// computing the absolute expiry, so a token is never presented in the final
// seconds before the server invalidates it.
const DefaultExpiryMargin = 60 * time.Second

// GrantType identifies the OAuth2 mechanism used to obtain a token.
type GrantType string

const (
	// GrantClientCredentials authenticates with the server identity only.
	GrantClientCredentials GrantType = "client_credentials"

	// GrantPassword authenticates with end-user credentials.
	GrantPassword GrantType = "password"
)

// Token represents a PowerSchool OAuth access token with associated metadata.
// Tokens are replaced, never mutated, when they expire.
type Token struct {
	// AccessToken is the bearer token used for authorization.
	AccessToken string `json:"access_token"`

	// TokenType is typically "Bearer".
	TokenType string `json:"token_type,omitempty"`

	// ExpiresIn is the token lifetime in seconds (from the token response).
	ExpiresIn int `json:"expires_in,omitempty"`

	// ExpiresAt is the calculated absolute expiry, margin already applied.
	ExpiresAt time.Time `json:"-"`

	// Grant is the grant type used to obtain this token.
	Grant GrantType `json:"-"`
}

// SetExpiresAt calculates ExpiresAt from ExpiresIn relative to now, applying
// the safety margin. A zero or missing lifetime yields an already-expired
// token, forcing a refresh on every use instead of failing.
func (t *Token) SetExpiresAt(now time.Time, margin time.Duration) {
	lifetime := time.Duration(t.ExpiresIn)*time.Second - margin
	if lifetime < 0 {
		lifetime = 0
	}
	t.ExpiresAt = now.Add(lifetime)
}

// ExpiredAt reports whether the token is expired at the given instant.
// A token whose expiry is at or before now is expired.
func (t *Token) ExpiredAt(now time.Time) bool {
	return !t.ExpiresAt.After(now)
}

// ToOAuth2Token converts the Token to an oauth2.Token for use with
// golang.org/x/oauth2 transports.
func (t *Token) ToOAuth2Token() *oauth2.Token {
	return &oauth2.Token{
		AccessToken: t.AccessToken,
		TokenType:   t.TokenType,
		Expiry:      t.ExpiresAt,
	}
}
