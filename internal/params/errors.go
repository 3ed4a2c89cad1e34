package params

import "errors"

// Lookup and parse errors.
var (
	// ErrMissing indicates a required parameter is absent from the file.
	ErrMissing = errors.New("params: missing required parameter")

	// ErrType indicates a parameter exists but holds a value of the wrong type.
	ErrType = errors.New("params: parameter has wrong type")

	// ErrMalformed indicates the file is not a two-level section/value mapping.
	ErrMalformed = errors.New("params: malformed parameter file")
)
