package validoc

import (
	"fmt"
	"slices"
	"sync"

	"github.com/dmitrymomot/validoc/pkg/validator"
)

// Registry indexes validators by name for the CLI and HTTP surfaces.
// It is safe for concurrent use.
type Registry struct {
	mu         sync.RWMutex
	validators map[string]validator.Describer
}

// NewRegistry creates a registry holding vs. It fails on nil or duplicate
// validators.
func NewRegistry(vs ...validator.Describer) (*Registry, error) {
	r := &Registry{validators: make(map[string]validator.Describer, len(vs))}
	for _, v := range vs {
		if err := r.Register(v); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds v under v.Name().
func (r *Registry) Register(v validator.Describer) error {
	if isNil(v) {
		return ErrNilValidator
	}
	name := v.Name()

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.validators[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateValidator, name)
	}
	r.validators[name] = v
	return nil
}

// MustRegister works like Register but panics on failure.
func (r *Registry) MustRegister(vs ...validator.Describer) {
	for _, v := range vs {
		if err := r.Register(v); err != nil {
			panic(err)
		}
	}
}

// Get returns the validator registered under name.
func (r *Registry) Get(name string) (validator.Describer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.validators[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrValidatorNotFound, name)
	}
	return v, nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.validators))
	for name := range r.validators {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.validators)
}
