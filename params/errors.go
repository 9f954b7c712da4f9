package params

import "errors"

var (
	// ErrMissingParameter indicates a dynamic parameter with no bound
	// default received no override in the Packed bundle at call time.
	ErrMissingParameter = errors.New("params: required dynamic parameter has no default and no packed override")
	// ErrDuplicateParameter indicates a parameter name registered twice.
	ErrDuplicateParameter = errors.New("params: parameter already registered")
	// ErrUnknownParameter indicates a named override for a parameter the
	// model never registered.
	ErrUnknownParameter = errors.New("params: named override does not match any registered parameter")
	// ErrTooManyValues indicates more positional overrides than the model
	// has registered parameters.
	ErrTooManyValues = errors.New("params: positional overrides exceed registered parameter count")
)
