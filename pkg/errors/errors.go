package errors

import "fmt"

// Error codes
const (
	CodeServerError     = "SERVER_ERROR"
	CodeInvalidArgument = "INVALID_ARGUMENT"
)

type ServerError struct {
	Message string
	Code    string
	Context map[string]any
	Cause   error
}

func (e *ServerError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ServerError) Unwrap() error {
	return e.Cause
}

func NewServerError(message, code string, context map[string]any) *ServerError {
	return &ServerError{
		Message: message,
		Code:    code,
		Context: context,
	}
}

func (e *ServerError) WithCause(cause error) *ServerError {
	e.Cause = cause
	return e
}

// InvalidArgumentError reports a request argument that failed validation.
type InvalidArgumentError struct {
	*ServerError
	Field string
}

func NewInvalidArgumentError(message, field string) *InvalidArgumentError {
	return &InvalidArgumentError{
		ServerError: &ServerError{
			Message: message,
			Code:    CodeInvalidArgument,
			Context: map[string]any{
				"field": field,
			},
		},
		Field: field,
	}
}
