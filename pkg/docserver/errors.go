package docserver

import "errors"

var (
	// ErrInvalidParam is returned for malformed query parameters.
	ErrInvalidParam = errors.New("docserver: invalid query parameter")

	// ErrNilRegistry is returned by New without a registry.
	ErrNilRegistry = errors.New("docserver: registry is nil")
)
