// Package validator is a declarative, introspectable rule framework.
//
// Rules are declared once per type with RuleFor and a chain of constraint
// methods. The same declaration serves two consumers: Validate executes it
// against values, and Descriptor exposes it as data (members, constraints,
// severities, cascade modes and message keys) so it can be documented without
// any value at hand.
//
//	v := validator.New[Customer]("CustomerValidator")
//	validator.RuleFor(v, "FirstName", func(c Customer) *string { return c.FirstName }).NotNull()
//	validator.RuleFor(v, "LastName", func(c Customer) string { return c.LastName }).
//		NotEmpty().
//		MaximumLength(20)
//	validator.RuleFor(v, "Address", func(c Customer) *Address { return c.Address }).
//		SetValidator(addressValidator)
//
//	err := v.Validate(customer)
//	for _, e := range validator.ExtractValidationErrors(err) {
//		fmt.Println(e.Field, e.Message)
//	}
//
// # Cascade
//
// A validator runs every constraint of a rule by default (Continue). With
// StopOnFirstFailure, set validator-wide through WithCascade or per rule
// through Cascade, the first failure ends the rule.
//
// # Messages
//
// Every constraint carries a message key into the embedded catalog
// (DefaultMessages). Templates use {Name} placeholders: {PropertyName} is the
// display name of the member; constraint parameters such as {MaxLength} or
// {ComparisonValue} and runtime values such as {TotalLength} fill the rest.
// Length constraints select their template from the configured bounds, see
// LengthMessageKey.
//
// # Delegation
//
// SetValidator and SetValidatorFunc run a complete child validator against a
// member. Pointers, values and slices of the child type are accepted; nil
// members are skipped. Failures are reported with dotted field paths such as
// "Address.Line1" or "Orders[2].Amount".
//
// Other descriptor sources build the same model with NewDescriptor,
// NewPropertyRule, NewConstraint and NewDelegation.
package validator
