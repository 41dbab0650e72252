package validator

import (
	"reflect"
	"regexp"
	"slices"
)

// RuleBuilder declares the constraints of one rule chain. Each method appends
// a constraint and returns the builder.
type RuleBuilder[T, P any] struct {
	rule *PropertyRule
	last *constraint
}

// RuleFor starts a rule chain on member, read from T with getter. Several
// chains may target the same member.
func RuleFor[T, P any](v *Validator[T], member string, getter func(T) P) *RuleBuilder[T, P] {
	rule := &PropertyRule{
		member:      member,
		displayName: SplitPascalCase(member),
		value: func(obj any) any {
			t, _ := obj.(T)
			return getter(t)
		},
	}
	v.rules = append(v.rules, rule)
	return &RuleBuilder[T, P]{rule: rule}
}

func (b *RuleBuilder[T, P]) add(c *constraint) *RuleBuilder[T, P] {
	if c.severity == 0 {
		c.severity = SeverityError
	}
	b.rule.constraints = append(b.rule.constraints, c)
	b.last = c
	return b
}

func (b *RuleBuilder[T, P]) simple(kind, key string, params map[string]any, pass func(v any) bool) *RuleBuilder[T, P] {
	return b.add(&constraint{
		kind:   kind,
		key:    key,
		params: params,
		fn:     func(v any) (bool, map[string]any) { return pass(v), nil },
	})
}

// WithName overrides the display name derived from the member name.
func (b *RuleBuilder[T, P]) WithName(name string) *RuleBuilder[T, P] {
	b.rule.displayName = name
	return b
}

// Cascade overrides the validator-wide cascade mode for this rule.
func (b *RuleBuilder[T, P]) Cascade(mode CascadeMode) *RuleBuilder[T, P] {
	b.rule.cascade = mode
	b.rule.hasCascade = true
	return b
}

// WithSeverity sets the severity of the last constraint.
func (b *RuleBuilder[T, P]) WithSeverity(s Severity) *RuleBuilder[T, P] {
	if b.last != nil {
		b.last.severity = s
	}
	return b
}

// WithMessage replaces the catalog message of the last constraint. The
// template may use the same placeholders as the catalog entry.
func (b *RuleBuilder[T, P]) WithMessage(msg string) *RuleBuilder[T, P] {
	if b.last != nil {
		b.last.message = msg
		b.last.hasMessage = true
	}
	return b
}

// NotNull fails for nil pointers, maps, slices and interfaces.
func (b *RuleBuilder[T, P]) NotNull() *RuleBuilder[T, P] {
	return b.simple("NotNull", "validation.not_null", nil, func(v any) bool { return !isNil(v) })
}

// NotEmpty fails for nil, zero values, blank strings and empty collections.
func (b *RuleBuilder[T, P]) NotEmpty() *RuleBuilder[T, P] {
	return b.simple("NotEmpty", "validation.not_empty", nil, func(v any) bool { return !isEmpty(v) })
}

// Length requires a length within [min, max]. A negative max means no upper
// bound.
func (b *RuleBuilder[T, P]) Length(min, max int) *RuleBuilder[T, P] {
	return b.length("Length", max0(min), max)
}

func (b *RuleBuilder[T, P]) MinimumLength(min int) *RuleBuilder[T, P] {
	return b.length("MinimumLength", max0(min), -1)
}

func (b *RuleBuilder[T, P]) MaximumLength(max int) *RuleBuilder[T, P] {
	return b.length("MaximumLength", -1, max0(max))
}

func (b *RuleBuilder[T, P]) ExactLength(n int) *RuleBuilder[T, P] {
	return b.length("ExactLength", max0(n), max0(n))
}

func max0(n int) int { return max(n, 0) }

// length picks the message variant from the bounds that are set. A negative
// bound is not set.
func (b *RuleBuilder[T, P]) length(kind string, min, max int) *RuleBuilder[T, P] {
	params := make(map[string]any, 2)
	if min >= 0 {
		params["MinLength"] = min
	}
	if max >= 0 {
		params["MaxLength"] = max
	}
	return b.add(&constraint{
		kind:   kind,
		key:    LengthMessageKey(min, max),
		params: params,
		fn: func(v any) (bool, map[string]any) {
			n, ok := lengthOf(v)
			if !ok {
				return true, nil
			}
			pass := n >= min && (max < 0 || n <= max)
			return pass, map[string]any{"TotalLength": n}
		},
	})
}

// LengthMessageKey returns the catalog key for a length constraint. A
// negative bound is not configured, so MaximumLength(0) is (-1, 0) and keeps
// the maximum variant while ExactLength(0) is (0, 0).
func LengthMessageKey(min, max int) string {
	switch {
	case min < 0:
		return "validation.length.max"
	case max < 0:
		return "validation.length.min"
	case min == max:
		return "validation.length.exact"
	default:
		return "validation.length.between"
	}
}

func (b *RuleBuilder[T, P]) Equal(value P) *RuleBuilder[T, P] {
	return b.simple("Equal", "validation.equal", map[string]any{"ComparisonValue": value},
		func(v any) bool { return reflect.DeepEqual(v, any(value)) })
}

func (b *RuleBuilder[T, P]) NotEqual(value P) *RuleBuilder[T, P] {
	return b.simple("NotEqual", "validation.not_equal", map[string]any{"ComparisonValue": value},
		func(v any) bool { return !reflect.DeepEqual(v, any(value)) })
}

func (b *RuleBuilder[T, P]) GreaterThan(value P) *RuleBuilder[T, P] {
	return b.comparison("GreaterThan", "validation.greater_than", value, func(c int) bool { return c > 0 })
}

func (b *RuleBuilder[T, P]) GreaterThanOrEqual(value P) *RuleBuilder[T, P] {
	return b.comparison("GreaterThanOrEqual", "validation.greater_than_or_equal", value, func(c int) bool { return c >= 0 })
}

func (b *RuleBuilder[T, P]) LessThan(value P) *RuleBuilder[T, P] {
	return b.comparison("LessThan", "validation.less_than", value, func(c int) bool { return c < 0 })
}

func (b *RuleBuilder[T, P]) LessThanOrEqual(value P) *RuleBuilder[T, P] {
	return b.comparison("LessThanOrEqual", "validation.less_than_or_equal", value, func(c int) bool { return c <= 0 })
}

// comparison passes nil values and values that cannot be ordered against
// the comparison value.
func (b *RuleBuilder[T, P]) comparison(kind, key string, value P, accept func(int) bool) *RuleBuilder[T, P] {
	return b.simple(kind, key, map[string]any{"ComparisonValue": value}, func(v any) bool {
		if isNil(v) {
			return true
		}
		c, ok := compareValues(v, any(value))
		return !ok || accept(c)
	})
}

// InclusiveBetween requires from <= value <= to.
func (b *RuleBuilder[T, P]) InclusiveBetween(from, to P) *RuleBuilder[T, P] {
	return b.between("InclusiveBetween", "validation.inclusive_between", from, to, true)
}

// ExclusiveBetween requires from < value < to.
func (b *RuleBuilder[T, P]) ExclusiveBetween(from, to P) *RuleBuilder[T, P] {
	return b.between("ExclusiveBetween", "validation.exclusive_between", from, to, false)
}

func (b *RuleBuilder[T, P]) between(kind, key string, from, to P, inclusive bool) *RuleBuilder[T, P] {
	params := map[string]any{"From": from, "To": to}
	return b.simple(kind, key, params, func(v any) bool {
		if isNil(v) {
			return true
		}
		lo, ok1 := compareValues(v, any(from))
		hi, ok2 := compareValues(v, any(to))
		if !ok1 || !ok2 {
			return true
		}
		if inclusive {
			return lo >= 0 && hi <= 0
		}
		return lo > 0 && hi < 0
	})
}

// InList requires the value to equal one of values.
func (b *RuleBuilder[T, P]) InList(values ...P) *RuleBuilder[T, P] {
	allowed := slices.Clone(values)
	return b.simple("InList", "validation.in_list", map[string]any{"Values": allowed}, func(v any) bool {
		return containsValue(allowed, v)
	})
}

func (b *RuleBuilder[T, P]) NotInList(values ...P) *RuleBuilder[T, P] {
	forbidden := slices.Clone(values)
	return b.simple("NotInList", "validation.not_in_list", map[string]any{"Values": forbidden}, func(v any) bool {
		return !containsValue(forbidden, v)
	})
}

func containsValue[P any](values []P, v any) bool {
	for _, candidate := range values {
		if reflect.DeepEqual(any(candidate), v) {
			return true
		}
	}
	return false
}

// IsEnumName requires the string form of the value to be one of names.
// Empty values pass.
func (b *RuleBuilder[T, P]) IsEnumName(names ...string) *RuleBuilder[T, P] {
	allowed := slices.Clone(names)
	return b.simple("IsEnumName", "validation.enum", map[string]any{"Values": allowed}, func(v any) bool {
		s, ok := stringOf(v)
		if !ok || s == "" {
			return true
		}
		return slices.Contains(allowed, s)
	})
}

// Email requires a valid email address. Empty values pass.
func (b *RuleBuilder[T, P]) Email() *RuleBuilder[T, P] {
	return b.format("Email", "validation.email", nil, validEmail)
}

// URL requires an absolute URL. Empty values pass.
func (b *RuleBuilder[T, P]) URL() *RuleBuilder[T, P] {
	return b.format("URL", "validation.url", nil, validURL)
}

// UUID requires a canonical UUID string. Empty values pass.
func (b *RuleBuilder[T, P]) UUID() *RuleBuilder[T, P] {
	return b.format("UUID", "validation.uuid", nil, validUUID)
}

// Matches requires the value to match pattern. It panics when pattern does
// not compile, like regexp.MustCompile.
func (b *RuleBuilder[T, P]) Matches(pattern string) *RuleBuilder[T, P] {
	re := regexp.MustCompile(pattern)
	return b.format("Matches", "validation.matches", map[string]any{"RegularExpression": pattern}, re.MatchString)
}

func (b *RuleBuilder[T, P]) format(kind, key string, params map[string]any, valid func(string) bool) *RuleBuilder[T, P] {
	return b.simple(kind, key, params, func(v any) bool {
		s, ok := stringOf(v)
		if !ok || s == "" {
			return true
		}
		return valid(s)
	})
}

// Must adds a custom predicate reported as kind.
func (b *RuleBuilder[T, P]) Must(kind string, pred func(P) bool) *RuleBuilder[T, P] {
	if kind == "" {
		kind = "Predicate"
	}
	return b.simple(kind, "validation.predicate", nil, func(v any) bool {
		p, _ := v.(P)
		return pred(p)
	})
}

// SetValidator delegates the member value to child.
func (b *RuleBuilder[T, P]) SetValidator(child ChildValidator) *RuleBuilder[T, P] {
	if child == nil {
		return b
	}
	return b.SetValidatorFunc(child.Name(), func() ChildValidator { return child })
}

// SetValidatorFunc delegates to the validator returned by factory. The
// factory runs lazily, so validators may refer to each other. A nil result
// marks the child as unresolvable.
func (b *RuleBuilder[T, P]) SetValidatorFunc(name string, factory func() ChildValidator) *RuleBuilder[T, P] {
	d := &delegation{
		constraint: constraint{kind: name, severity: SeverityError},
		resolve:    factory,
	}
	b.rule.constraints = append(b.rule.constraints, d)
	b.last = &d.constraint
	return b
}
