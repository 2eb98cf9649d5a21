package query

import "errors"

// ErrForbidden is returned by the scope resolver when the principal's role
// does not permit the requested scope. It is raised before any storage access.
var ErrForbidden = errors.New("requested scope is not permitted for this role")

// ValidationError describes a malformed or inconsistent request parameter.
// It is raised by the filter builder before any storage access.
type ValidationError struct {
	Message string
	Details map[string]string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a validation error for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Message: message,
		Details: map[string]string{field: message},
	}
}
