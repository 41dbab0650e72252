package validoc

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNilValidator is returned before any output when no validator is given.
	ErrNilValidator = errors.New("validoc: validator is nil")

	// ErrNilDescriptor is returned before any output when the validator has no descriptor.
	ErrNilDescriptor = errors.New("validoc: validator descriptor is nil")

	// ErrCyclicDelegation marks a delegation back to a validated type already being documented.
	ErrCyclicDelegation = errors.New("validoc: cyclic validator delegation")

	// ErrUnresolvedChild marks a delegation whose child validator cannot be built.
	ErrUnresolvedChild = errors.New("validoc: child validator cannot be resolved")

	// ErrMaxDepthExceeded marks a delegation nested deeper than the configured limit.
	ErrMaxDepthExceeded = errors.New("validoc: maximum delegation depth exceeded")

	// ErrValidatorNotFound is returned by Registry lookups for unknown names.
	ErrValidatorNotFound = errors.New("validoc: validator not found")

	// ErrDuplicateValidator is returned when a name is registered twice.
	ErrDuplicateValidator = errors.New("validoc: validator already registered")
)

// DelegationError reports a delegation that was documented without its
// child. The entry itself is still part of the output.
type DelegationError struct {
	// Chain lists the validator names from the root to the failing child.
	Chain []string
	// Path is the member path of the delegation entry.
	Path string
	Err  error
}

func (e *DelegationError) Error() string {
	return fmt.Sprintf("%v at %s (%s)", e.Err, e.Path, strings.Join(e.Chain, " -> "))
}

func (e *DelegationError) Unwrap() error {
	return e.Err
}
