package domain

import "errors"

// Domain errors
var (
	ErrInvalidObjectType = errors.New("invalid object type")
	ErrMissingParameter  = errors.New("missing required parameter")
	ErrConfigNotFound    = errors.New("config file not found")
	ErrInvalidConfig     = errors.New("invalid configuration")
)

// Error codes for API responses
const (
	ErrCodeInvalidObjectType = "INVALID_OBJECT_TYPE"
	ErrCodeMissingParameter  = "MISSING_PARAMETER"

	// ErrCodeIcingaError is only produced by the API layer when the
	// upstream Icinga API rejects a query.
	ErrCodeIcingaError = "ICINGA_ERROR"
)

// ErrorCode returns the API error code for a domain error
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrInvalidObjectType):
		return ErrCodeInvalidObjectType
	case errors.Is(err, ErrMissingParameter):
		return ErrCodeMissingParameter
	default:
		return "INTERNAL_ERROR"
	}
}
