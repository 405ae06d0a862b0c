package resumeparse

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	EEMPTYDOC     = "empty_document"    // document yielded no extractable text
	EEXTRACTION   = "extraction_failed" // a field extractor failed inside the coordinator
	EEXTRACTSTAGE = "extract_stage"     // pipeline extract stage failed
	EINTERNAL     = "internal"
	EINVALID      = "invalid"
	ENOCREDENTIAL = "no_credential" // remote model credential missing
	ENOTFOUND     = "not_found"
	EPARSE        = "parse_failure" // underlying format decode error
	EREADSTAGE    = "read_stage"    // pipeline read stage failed
	EUNSUPPORTED  = "unsupported_format"
)

// Error represents an application error. Errors carry a machine-readable
// code so callers can branch on the failure kind, and a human-readable
// message for logs and end users.
type Error struct {
	// Code is one of the application error code constants above.
	Code string

	// Message is a human-readable description of the error.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("resumeparse error: code=%s message=%s", e.Code, e.Message)
}

// Errorf constructs an Error with the given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode returns the code of the error, if it is an application error.
// Returns EINTERNAL for non-application errors and an empty string for nil.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	}
	if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage returns the message of the error, if it is an application
// error. Returns the raw error string for non-application errors and an
// empty string for nil.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	}
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
