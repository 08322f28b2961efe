package powerschool

import (
	"testing"
	"time"
)

func TestTokenExpiry(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	t.Run("margin is applied", func(t *testing.T) {
		tok := &Token{AccessToken: "abc", ExpiresIn: 3600}
		tok.SetExpiresAt(now, DefaultExpiryMargin)

		want := now.Add(3540 * time.Second)
		if !tok.ExpiresAt.Equal(want) {
			t.Errorf("expected expiry %v, got %v", want, tok.ExpiresAt)
		}
		if tok.ExpiredAt(now) {
			t.Error("token should be valid immediately after issue")
		}
		if !tok.ExpiredAt(want) {
			t.Error("token should be expired at its expiry instant")
		}
		if !tok.ExpiredAt(want.Add(time.Second)) {
			t.Error("token should be expired past its expiry instant")
		}
	})

	t.Run("zero lifetime is immediately expired", func(t *testing.T) {
		tok := &Token{AccessToken: "abc"}
		tok.SetExpiresAt(now, DefaultExpiryMargin)
		if !tok.ExpiredAt(now) {
			t.Error("token without a lifetime must be treated as expired")
		}
	})

	t.Run("lifetime shorter than margin is immediately expired", func(t *testing.T) {
		tok := &Token{AccessToken: "abc", ExpiresIn: 30}
		tok.SetExpiresAt(now, DefaultExpiryMargin)
		if !tok.ExpiredAt(now) {
			t.Error("token with lifetime below the margin must be treated as expired")
		}
	})
}

func TestTokenToOAuth2Token(t *testing.T) {
	expiry := time.Date(2026, 8, 31, 13, 0, 0, 0, time.UTC)
	tok := &Token{AccessToken: "abc", TokenType: "Bearer", ExpiresAt: expiry}

	o2 := tok.ToOAuth2Token()
	if o2.AccessToken != "abc" {
		t.Errorf("expected access token abc, got %q", o2.AccessToken)
	}
	if o2.TokenType != "Bearer" {
		t.Errorf("expected token type Bearer, got %q", o2.TokenType)
	}
	if !o2.Expiry.Equal(expiry) {
		t.Errorf("expected expiry %v, got %v", expiry, o2.Expiry)
	}
}
