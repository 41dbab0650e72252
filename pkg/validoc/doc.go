// Package validoc documents validation rules without validating anything.
//
// Given a validator (anything implementing validator.Describer) it walks the
// declared members in descriptor order and, per member, the constraints in
// declaration order, producing one RuleDescription per constraint: the member
// display name, the constraint kind, its severity, the effective cascade mode
// and the failure message template.
//
//	rules, err := validoc.GetRules(customerValidator, false) // flat, no messages
//	doc, err := validoc.NewBuilder(validoc.WithLanguage("de")).
//		Document(customerValidator, true) // grouped, nested, German messages
//
// # Messages
//
// Messages come from a MessageResolver. The default CatalogResolver fills in
// {PropertyName} with the member display name and leaves every other
// placeholder in place, so "'Last Name' must be less than {MaxLength}
// characters. You entered {TotalLength} characters." documents the rule
// without inventing values. The catalog variant follows the constraint
// configuration (between, minimum, maximum or exact length).
//
// # Delegation
//
// A constraint that runs a child validator is documented as one entry named
// after the child validator, with a nil message. When nested documentation is
// requested the child's own stream follows that entry immediately, depth
// first, with paths prefixed by the delegating member ("Address.Line1").
//
// A delegation is left unexpanded when the child cannot be resolved, when it
// leads back to a validator already on the current path, or when nesting
// exceeds the maximum depth. The entry stays in the output, siblings are
// still documented, and the causes are returned joined as *DelegationError
// values wrapping ErrUnresolvedChild, ErrCyclicDelegation or
// ErrMaxDepthExceeded. A nil validator or descriptor fails immediately with
// ErrNilValidator or ErrNilDescriptor.
//
// Output is deterministic: documenting the same validator twice yields equal
// results. Builders and the package functions are safe for concurrent use.
package validoc
