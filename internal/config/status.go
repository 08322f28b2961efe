package config

// Status reports which PowerSchool settings are present. It is computed
// from configuration alone; building or inspecting it never makes a
// network call.
type Status struct {
	URLSet          bool `json:"powerschool_url_set"`
	ClientIDSet     bool `json:"client_id_set"`
	ClientSecretSet bool `json:"client_secret_set"`
	UsernameSet     bool `json:"username_set"`
	PasswordSet     bool `json:"password_set"`
}

// Status returns the presence report for this configuration.
func (c Config) Status() Status {
	return Status{
		URLSet:          c.PowerSchool.URL != "",
		ClientIDSet:     c.PowerSchool.ClientID != "",
		ClientSecretSet: c.PowerSchool.ClientSecret != "",
		UsernameSet:     c.PowerSchool.Username != "",
		PasswordSet:     c.PowerSchool.Password != "",
	}
}

// Configured reports whether the required settings (URL, client ID, client
// secret) are all present. Username and password are optional.
func (s Status) Configured() bool {
	return s.URLSet && s.ClientIDSet && s.ClientSecretSet
}
