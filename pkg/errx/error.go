package errx

import "fmt"

// Error is a coded error carrying the HTTP status it should surface as
// plus free-form diagnostic details. Details are for logs and debug
// responses; Message is safe to show to callers.
type Error struct {
	// Code is the registry-qualified error code, e.g. "BOOKING_MISSING_FIELDS".
	Code string `json:"code"`

	// Message is the human-readable error message.
	Message string `json:"message"`

	// Type categorizes the error.
	Type Type `json:"type"`

	// HTTPStatus is the status code the HTTP layer should respond with.
	HTTPStatus int `json:"http_status"`

	// Details holds additional context about this occurrence.
	Details map[string]any `json:"details,omitempty"`

	// Err is the underlying cause, if any.
	Err error `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// WithDetail attaches a detail and returns the error for chaining.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}
