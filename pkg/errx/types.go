package errx

// Type categorizes an error and decides the HTTP status it maps to.
type Type string

const (
	// TypeValidation marks client input errors.
	TypeValidation Type = "VALIDATION"

	// TypeNotFound marks requests for resources that do not exist.
	TypeNotFound Type = "NOT_FOUND"

	// TypeExternal marks failures reported by an upstream service.
	TypeExternal Type = "EXTERNAL"

	// TypeInternal marks everything the server cannot blame on the caller.
	TypeInternal Type = "INTERNAL"
)

// String returns the string representation of the error type.
func (t Type) String() string {
	return string(t)
}
