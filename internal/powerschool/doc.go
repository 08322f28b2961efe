// Package powerschool implements the PowerSchool API client: OAuth2 token
// lifecycle management and an authenticated read-only gateway.
//
// # Architecture
//
// Two collaborating pieces:
//
//   - TokenManager owns OAuth2 authentication state. It obtains, caches and
//     refreshes a bearer token using either the client-credentials or the
//     password grant, depending on which credentials are configured. The
//     cached token is guarded by a mutex and refreshes are deduplicated with
//     singleflight so that concurrent callers share one token request.
//
//   - Client (the gateway) issues authenticated HTTP GET requests against
//     the PowerSchool REST endpoints and normalizes every outcome, success
//     or failure, into a uniform Result envelope. Call never returns a Go
//     error: timeouts, authentication failures, upstream errors and
//     malformed bodies all become failure envelopes. Tool handlers built on
//     top of this package therefore need no error handling of their own.
//
// # Token lifecycle
//
// A token's absolute expiry is computed from the upstream expires_in value
// minus a safety margin (DefaultExpiryMargin) so a token is never used in
// the final seconds of its life. A token response without a lifetime is
// treated as immediately expired, which forces a refresh on every call
// rather than failing. A failed refresh never discards previously cached
// state; the next call simply tries again.
//
// # Usage
//
//	creds := powerschool.Credentials{
//	    BaseURL:      "https://district.powerschool.com",
//	    ClientID:     "id",
//	    ClientSecret: "secret",
//	}
//	client, err := powerschool.NewClient(creds)
//	if err != nil {
//	    // missing required credentials
//	}
//	res := client.Grades(ctx)
//	if !res.Success {
//	    // res.Error holds a human-readable message
//	}
package powerschool
