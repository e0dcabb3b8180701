package errx

import "fmt"

// Code is an error definition registered by a module.
type Code struct {
	Code       string
	Type       Type
	HTTPStatus int
	Message    string
}

// Registry names the error codes of one module under a shared prefix.
// Registries are assembled at init time and read-only afterwards.
type Registry struct {
	prefix string
}

// NewRegistry creates an error registry with a module prefix.
func NewRegistry(prefix string) *Registry {
	return &Registry{prefix: prefix}
}

// Register defines a new error code under the registry prefix.
func (r *Registry) Register(code string, errType Type, httpStatus int, message string) *Code {
	return &Code{
		Code:       fmt.Sprintf("%s_%s", r.prefix, code),
		Type:       errType,
		HTTPStatus: httpStatus,
		Message:    message,
	}
}

// New creates an error from a registered code.
func (r *Registry) New(code *Code) *Error {
	return &Error{
		Code:       code.Code,
		Message:    code.Message,
		Type:       code.Type,
		HTTPStatus: code.HTTPStatus,
	}
}

// NewWithMessage creates an error from a registered code with a custom message.
func (r *Registry) NewWithMessage(code *Code, message string) *Error {
	e := r.New(code)
	e.Message = message
	return e
}

// NewWithCause creates an error from a registered code wrapping an underlying cause.
func (r *Registry) NewWithCause(code *Code, cause error) *Error {
	e := r.New(code)
	e.Err = cause
	return e
}
