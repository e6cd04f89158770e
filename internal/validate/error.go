// Package validate checks untyped request payloads against per-resource
// field rules. Validators are pure: they take the decoded JSON body and
// return either a normalized input or the first violation found, evaluated
// in a fixed order so error precedence is deterministic.
package validate

// Error is a single field violation with a stable machine-readable code.
// No two distinct violations within one resource's validator share a code.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"error"`
}

func (e *Error) Error() string {
	return e.Message
}

func fail(code, message string) *Error {
	return &Error{Code: code, Message: message}
}
