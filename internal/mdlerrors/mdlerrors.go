package mdlerrors

import (
	"errors"
	"fmt"
)

var (
	// Payload errors
	MalformedPayloadError = errors.New("malformed payload")
	MissingFieldError     = errors.New("required field missing")

	// Catalog and fixture errors
	UnknownFunctionError   = errors.New("unknown web service function")
	FixtureNotFoundError   = errors.New("fixture not found")
	UnsupportedFormatError = errors.New("unsupported payload format")

	// Server-reported errors
	InvalidTokenError = errors.New("invalid token")
)

// Exception is the error payload the web service sends instead of a result. The server answers
// with HTTP 200, so it can only be told apart by its shape.
type Exception struct {
	Exception string `json:"exception" mapstructure:"exception"`
	ErrorCode string `json:"errorcode" mapstructure:"errorcode"`
	Message   string `json:"message" mapstructure:"message"`
	DebugInfo string `json:"debuginfo,omitempty" mapstructure:"debuginfo"`
}

func (e *Exception) Error() string {
	if e.Exception == "" {
		return fmt.Sprintf("%s: %s", e.ErrorCode, e.Message)
	}
	return fmt.Sprintf("%s (%s): %s", e.Exception, e.ErrorCode, e.Message)
}

// Is lets errors.Is match an invalidtoken exception against InvalidTokenError.
func (e *Exception) Is(target error) bool {
	return target == InvalidTokenError && e.ErrorCode == "invalidtoken"
}

// NewException builds a moodle_exception with the given code and message.
func NewException(code, message string) *Exception {
	return &Exception{
		Exception: "moodle_exception",
		ErrorCode: code,
		Message:   message,
	}
}
