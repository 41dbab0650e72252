package validator

import (
	"context"
	"maps"
	"reflect"
)

// Constraint is one atomic check attached to a member.
type Constraint interface {
	// Kind names the check, e.g. "NotEmpty" or "MaximumLength".
	Kind() string
	// Severity is the level a failure is reported with; zero when undeclared.
	Severity() Severity
	// MessageKey selects the catalog template for the configured variant.
	// Empty for constraints without a static message.
	MessageKey() string
	// Params are the configured arguments (bounds, comparison values).
	Params() map[string]any
	// CustomMessage returns the message set with WithMessage, if any.
	CustomMessage() (string, bool)
}

// Delegation is a constraint that runs another validator against the member
// value instead of checking it directly.
type Delegation interface {
	Constraint
	// ValidatorName is the name of the delegated-to validator. It is known
	// without resolving the child.
	ValidatorName() string
	// Resolve returns the child validator, or nil when it cannot be built.
	Resolve() ChildValidator
}

// Describer exposes the static rule definition of a validator.
type Describer interface {
	Name() string
	// Type is the validated type. Nil when unknown; such validators are told
	// apart by name.
	Type() reflect.Type
	Descriptor() *Descriptor
}

// ChildValidator is a validator that can be delegated to.
type ChildValidator interface {
	Describer
	// ValidateValue checks value, which may be the validated type or a
	// pointer to it. It returns ValidationErrors for failed constraints.
	ValidateValue(ctx context.Context, value any) error
}

// checker is implemented by constraints the package can execute.
// It reports success and the runtime placeholder values of a failure.
type checker interface {
	check(value any) (bool, map[string]any)
}

// ConstraintOption configures a constraint built with NewConstraint.
type ConstraintOption func(*constraint)

// WithConstraintSeverity overrides the default SeverityError.
func WithConstraintSeverity(s Severity) ConstraintOption {
	return func(c *constraint) { c.severity = s }
}

// WithConstraintMessage sets a message template that replaces the catalog one.
func WithConstraintMessage(msg string) ConstraintOption {
	return func(c *constraint) {
		c.message = msg
		c.hasMessage = true
	}
}

// WithCheck makes the constraint executable. fn reports whether value passes.
func WithCheck(fn func(value any) bool) ConstraintOption {
	return func(c *constraint) {
		if fn == nil {
			return
		}
		c.fn = func(v any) (bool, map[string]any) { return fn(v), nil }
	}
}

// NewConstraint builds a constraint for descriptor sources other than the
// RuleBuilder, such as struct tags. Without WithCheck it is describe-only.
func NewConstraint(kind, messageKey string, params map[string]any, opts ...ConstraintOption) Constraint {
	c := &constraint{
		kind:     kind,
		key:      messageKey,
		params:   maps.Clone(params),
		severity: SeverityError,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type constraint struct {
	kind       string
	key        string
	params     map[string]any
	severity   Severity
	message    string
	hasMessage bool
	fn         func(value any) (bool, map[string]any)
}

func (c *constraint) Kind() string { return c.kind }
func (c *constraint) Severity() Severity { return c.severity }
func (c *constraint) MessageKey() string { return c.key }
func (c *constraint) Params() map[string]any { return maps.Clone(c.params) }

func (c *constraint) CustomMessage() (string, bool) {
	return c.message, c.hasMessage
}

func (c *constraint) check(value any) (bool, map[string]any) {
	if c.fn == nil {
		return true, nil
	}
	return c.fn(value)
}

// NewDelegation builds a delegation to the validator named name. resolve is
// called lazily and may return nil.
func NewDelegation(name string, resolve func() ChildValidator, opts ...ConstraintOption) Delegation {
	d := &delegation{
		constraint: constraint{kind: name, severity: SeverityError},
		resolve:    resolve,
	}
	for _, opt := range opts {
		opt(&d.constraint)
	}
	return d
}

type delegation struct {
	constraint
	resolve func() ChildValidator
}

func (d *delegation) ValidatorName() string { return d.kind }

func (d *delegation) Resolve() ChildValidator {
	if d.resolve == nil {
		return nil
	}
	return d.resolve()
}

// Delegations run through the parent rule, never as a plain check.
func (d *delegation) check(any) (bool, map[string]any) { return true, nil }
