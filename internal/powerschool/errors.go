package powerschool

import (
	"fmt"
	"strings"
)

// ConfigError indicates required credentials are missing. It is detected
// before any network call is made.
type ConfigError struct {
	// Missing lists the credential fields that are absent.
	Missing []string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("PowerSchool configuration incomplete: missing %s", strings.Join(e.Missing, ", "))
}

// AuthError indicates the token endpoint rejected the configured credentials
// or was unreachable.
type AuthError struct {
	// StatusCode is the HTTP status returned by the token endpoint,
	// or 0 for network-level failures.
	StatusCode int

	// Err is the underlying cause, if any.
	Err error
}

func (e *AuthError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("token request failed with status %d", e.StatusCode)
	}
	return fmt.Sprintf("token request failed: %v", e.Err)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}
