package powerschool

import "strings"

// Credentials holds the immutable configuration needed to authenticate
// against a PowerSchool deployment.
type Credentials struct {
	// BaseURL is the PowerSchool server base URL, without a trailing slash.
	BaseURL string

	// ClientID and ClientSecret identify this client to the OAuth server.
	ClientID     string
	ClientSecret string

	// Username and Password select the password grant when both are set.
	// They must be set together or not at all.
	Username string
	Password string
}

// Validate checks that all required fields are present. BaseURL, ClientID
// and ClientSecret are always required; Username and Password are an
// optional pair. A *ConfigError naming the missing fields is returned when
// the credentials are unusable.
func (c Credentials) Validate() error {
	var missing []string
	if strings.TrimSpace(c.BaseURL) == "" {
		missing = append(missing, "POWERSCHOOL_URL")
	}
	if c.ClientID == "" {
		missing = append(missing, "POWERSCHOOL_CLIENT_ID")
	}
	if c.ClientSecret == "" {
		missing = append(missing, "POWERSCHOOL_CLIENT_SECRET")
	}
	// A lone username or password cannot select a grant type.
	if c.Username != "" && c.Password == "" {
		missing = append(missing, "POWERSCHOOL_PASSWORD")
	}
	if c.Password != "" && c.Username == "" {
		missing = append(missing, "POWERSCHOOL_USERNAME")
	}
	if len(missing) > 0 {
		return &ConfigError{Missing: missing}
	}
	return nil
}

// Grant returns the OAuth2 grant type these credentials select:
// the password grant when username and password are both configured,
// client credentials otherwise.
func (c Credentials) Grant() GrantType {
	if c.Username != "" && c.Password != "" {
		return GrantPassword
	}
	return GrantClientCredentials
}
