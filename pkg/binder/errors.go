package binder

import "errors"

// Common binding errors
var (
	// ErrBinderNotApplicable means the request body is not in the binder's
	// format. Callers chaining several binders skip to the next one.
	ErrBinderNotApplicable  = errors.New("binder not applicable")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrMissingContentType   = errors.New("missing content type")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON request body")
	ErrFailedToParseForm    = errors.New("failed to parse form data")
)
