// Package config provides configuration management for psmcp.
//
// Configuration comes from two layers: an optional YAML config file and
// environment variables, with the environment taking precedence. The five
// PowerSchool settings (POWERSCHOOL_URL, POWERSCHOOL_CLIENT_ID,
// POWERSCHOOL_CLIENT_SECRET, POWERSCHOOL_USERNAME, POWERSCHOOL_PASSWORD)
// follow the original deployment convention; PORT selects the listen port
// for the HTTP transports.
//
// A config file looks like:
//
//	powerschool:
//	  url: https://district.powerschool.com
//	  clientId: my-client
//	  clientSecret: my-secret
//	server:
//	  transport: streamable-http
//	  host: localhost
//	  port: 8000
//
// Status reports which settings are present without making any network
// call, backing both the check command and the get_server_info tool.
package config
