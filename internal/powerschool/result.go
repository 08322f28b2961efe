package powerschool

import "fmt"

// Result is the uniform success/failure envelope returned by every
// data-fetching operation. Exactly one of Data or Error is meaningful,
// selected by Success.
type Result struct {
	Success bool `json:"success"`

	// Data is the parsed upstream response body. Endpoint shapes are
	// controlled by the external PowerSchool deployment and are not
	// guaranteed stable, so the payload is kept generic.
	Data any `json:"data,omitempty"`

	// Error is a human-readable failure message.
	Error string `json:"error,omitempty"`
}

// Succeed wraps a data payload in a success envelope.
func Succeed(data any) Result {
	return Result{Success: true, Data: data}
}

// Fail wraps a failure message in a failure envelope.
func Fail(format string, args ...any) Result {
	if len(args) == 0 {
		return Result{Success: false, Error: format}
	}
	return Result{Success: false, Error: fmt.Sprintf(format, args...)}
}
