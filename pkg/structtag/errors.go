package structtag

import "errors"

var (
	// ErrNotStruct is returned when the described type is not a struct.
	ErrNotStruct = errors.New("structtag: type is not a struct")

	// ErrInvalidValue is returned when a value cannot be validated.
	ErrInvalidValue = errors.New("structtag: invalid value")
)
