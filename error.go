package smarty

import (
	"errors"
	"fmt"
)

// Error codes. Codes classify failures so callers can render actionable
// messages without parsing error strings.
const (
	EINVALID     = "invalid"      // malformed source descriptor or unsafe name
	ENOTFOUND    = "not_found"    // page/module does not exist
	ENETWORK     = "network"      // host unreachable, DNS failure, connection reset
	ETIMEOUT     = "timeout"      // bounded fetch deadline exceeded
	EHTTPSTATUS  = "http_status"  // non-2xx response
	ETOOLMISSING = "tool_missing" // required external binary not installed
	ETOOLFAILED  = "tool_failed"  // external tool exited non-zero
	EIO          = "io_error"     // filesystem failure in the topic store
	EINTERNAL    = "internal"     // invariant violation, not a user error
)

// Error represents an application error with a machine-readable code.
type Error struct {
	// Code classifies the error for programmatic handling.
	Code string

	// Message is a human-readable description.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("smarty error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode returns the code of the error, if available.
// Wrapped errors are unwrapped, so stage-annotated errors keep their code.
// Returns EINTERNAL for non-application errors and "" for nil.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage returns the message of the error, if available.
// Returns a generic message for non-application errors and "" for nil.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
