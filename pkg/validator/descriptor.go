package validator

import (
	"slices"
	"strings"
	"unicode"
)

// PropertyRule is one rule chain on a member: its ordered constraints plus an
// optional cascade override.
type PropertyRule struct {
	member      string
	displayName string
	cascade     CascadeMode
	hasCascade  bool
	constraints []Constraint

	// value extracts the member value from the validated object; nil for
	// describe-only rules.
	value func(obj any) any
}

// NewPropertyRule builds a describe-only rule. An empty displayName is derived
// from member.
func NewPropertyRule(member, displayName string, constraints ...Constraint) *PropertyRule {
	if displayName == "" {
		displayName = SplitPascalCase(member)
	}
	return &PropertyRule{
		member:      member,
		displayName: displayName,
		constraints: slices.Clone(constraints),
	}
}

// WithCascade returns a copy of the rule with a member-level cascade override.
func (r *PropertyRule) WithCascade(mode CascadeMode) *PropertyRule {
	cp := *r
	cp.constraints = slices.Clone(r.constraints)
	cp.cascade = mode
	cp.hasCascade = true
	return &cp
}

// WithValue returns a copy of the rule that reads the member value with fn
// when executed.
func (r *PropertyRule) WithValue(fn func(obj any) any) *PropertyRule {
	cp := *r
	cp.constraints = slices.Clone(r.constraints)
	cp.value = fn
	return &cp
}

func (r *PropertyRule) Member() string      { return r.member }
func (r *PropertyRule) DisplayName() string { return r.displayName }

// CascadeOverride returns the member-level cascade mode, if one is declared.
func (r *PropertyRule) CascadeOverride() (CascadeMode, bool) {
	return r.cascade, r.hasCascade
}

// Constraints returns the constraints in declaration order.
func (r *PropertyRule) Constraints() []Constraint {
	return slices.Clone(r.constraints)
}

// Descriptor is the static rule definition of a validator.
type Descriptor struct {
	cascade CascadeMode
	rules   []*PropertyRule
}

// NewDescriptor builds a descriptor from rules in declaration order.
func NewDescriptor(cascade CascadeMode, rules ...*PropertyRule) *Descriptor {
	return &Descriptor{cascade: cascade, rules: slices.Clone(rules)}
}

// Cascade is the validator-wide cascade mode.
func (d *Descriptor) Cascade() CascadeMode {
	return d.cascade
}

// Members lists the constrained members in order of their first rule.
func (d *Descriptor) Members() []string {
	seen := make(map[string]bool, len(d.rules))
	members := make([]string, 0, len(d.rules))
	for _, r := range d.rules {
		if len(r.constraints) == 0 || seen[r.member] {
			continue
		}
		seen[r.member] = true
		members = append(members, r.member)
	}
	return members
}

// RulesFor returns the rules declared on member in declaration order.
func (d *Descriptor) RulesFor(member string) []*PropertyRule {
	var out []*PropertyRule
	for _, r := range d.rules {
		if r.member == member && len(r.constraints) > 0 {
			out = append(out, r)
		}
	}
	return out
}

// Rules returns every rule in declaration order.
func (d *Descriptor) Rules() []*PropertyRule {
	return slices.Clone(d.rules)
}

// SplitPascalCase turns a member name into words: "FirstName" becomes
// "First Name", "HTTPAddress" becomes "HTTP Address".
func SplitPascalCase(name string) string {
	runes := []rune(name)
	var b strings.Builder
	b.Grow(len(name) + 4)
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				b.WriteRune(' ')
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}
