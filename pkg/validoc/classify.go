package validoc

import "github.com/dmitrymomot/validoc/pkg/validator"

// Classification is the normalized description of one constraint.
type Classification struct {
	Kind     string
	Severity validator.Severity
	Cascade  validator.CascadeMode
	// Child is the delegated-to validator name, empty for atomic constraints.
	Child string
}

// Classify describes constraint c of rule. Delegations are named after their
// child validator. The cascade mode is the rule override when declared,
// global otherwise. Severity is passed through unchanged, so an undeclared
// severity stays zero.
func Classify(rule *validator.PropertyRule, c validator.Constraint, global validator.CascadeMode) Classification {
	cl := Classification{
		Kind:     c.Kind(),
		Severity: c.Severity(),
		Cascade:  global,
	}
	if mode, ok := rule.CascadeOverride(); ok {
		cl.Cascade = mode
	}
	if d, ok := c.(validator.Delegation); ok {
		cl.Kind = d.ValidatorName()
		cl.Child = d.ValidatorName()
	}
	return cl
}
