package errors

import "fmt"

// Error codes
const (
	CodeNotFound = "NOT_FOUND"
	CodeServer   = "SERVER_ERROR"
)

// APIError is the error shape surfaced at the HTTP boundary. Message is the
// user-visible detail string; StatusCode is the HTTP status the handler maps
// it to.
type APIError struct {
	Message    string
	Code       string
	StatusCode int
	Cause      error
}

func (e *APIError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Cause
}

func NewNotFoundError(message string) *APIError {
	return &APIError{
		Message:    message,
		Code:       CodeNotFound,
		StatusCode: 404,
	}
}

func NewServerError(message string, cause error) *APIError {
	return &APIError{
		Message:    message,
		Code:       CodeServer,
		StatusCode: 500,
		Cause:      cause,
	}
}
