package structtag

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/dmitrymomot/validoc/pkg/validator"
)

const (
	tagOmitEmpty = "omitempty"
	tagDive      = "dive"
	tagSkip      = "-"
)

// rule is one parsed tag entry such as "max=20".
type rule struct {
	tag   string
	param string
}

// parseTag splits a validate tag into its rules. Alternatives joined with
// "|" stay one rule.
func parseTag(raw string) []rule {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	rules := make([]rule, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		tag, param, _ := strings.Cut(p, "=")
		rules = append(rules, rule{tag: tag, param: param})
	}
	return rules
}

// describe maps one tag to a constraint. typ is the type the tag applies to.
func describe(r rule, typ reflect.Type) validator.Constraint {
	kind, key, params := classify(r, typ)
	return validator.NewConstraint(kind, key, params)
}

// classify returns the constraint kind, message key and parameters of a tag.
func classify(r rule, typ reflect.Type) (string, string, map[string]any) {
	lengthy := hasLength(typ)

	switch r.tag {
	case "required":
		return "NotEmpty", "validation.not_empty", nil
	case "email":
		return "Email", "validation.email", nil
	case "url", "http_url":
		return "URL", "validation.url", nil
	case "uuid", "uuid4", "uuid_rfc4122", "uuid4_rfc4122":
		return "UUID", "validation.uuid", nil
	case "oneof":
		return "InList", "validation.in_list", map[string]any{"Values": strings.Fields(r.param)}
	case "eq":
		return "Equal", "validation.equal", map[string]any{"ComparisonValue": r.param}
	case "ne":
		return "NotEqual", "validation.not_equal", map[string]any{"ComparisonValue": r.param}
	case "gt":
		return "GreaterThan", "validation.greater_than", map[string]any{"ComparisonValue": r.param}
	case "lt":
		return "LessThan", "validation.less_than", map[string]any{"ComparisonValue": r.param}
	case "gte":
		return "GreaterThanOrEqual", "validation.greater_than_or_equal", map[string]any{"ComparisonValue": r.param}
	case "lte":
		return "LessThanOrEqual", "validation.less_than_or_equal", map[string]any{"ComparisonValue": r.param}
	case "min", "max", "len":
		n, err := strconv.Atoi(r.param)
		if lengthy && err == nil {
			return lengthRule(r.tag, n)
		}
		switch r.tag {
		case "min":
			return "GreaterThanOrEqual", "validation.greater_than_or_equal", map[string]any{"ComparisonValue": r.param}
		case "max":
			return "LessThanOrEqual", "validation.less_than_or_equal", map[string]any{"ComparisonValue": r.param}
		default:
			return "Equal", "validation.equal", map[string]any{"ComparisonValue": r.param}
		}
	}

	params := map[string]any{"Tag": r.tag}
	if r.param != "" {
		params["Param"] = r.param
	}
	return r.tag, "validation.tag", params
}

func lengthRule(tag string, n int) (string, string, map[string]any) {
	switch tag {
	case "min":
		return "MinimumLength", validator.LengthMessageKey(n, -1), map[string]any{"MinLength": n}
	case "max":
		return "MaximumLength", validator.LengthMessageKey(-1, n), map[string]any{"MaxLength": n}
	default:
		return "ExactLength", validator.LengthMessageKey(n, n), map[string]any{"MinLength": n, "MaxLength": n}
	}
}

func hasLength(typ reflect.Type) bool {
	if typ == nil {
		return false
	}
	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	switch typ.Kind() {
	case reflect.String, reflect.Slice, reflect.Map, reflect.Array:
		return true
	}
	return false
}
