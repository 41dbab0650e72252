package validator

import (
	"context"
	"fmt"
	"reflect"
	"strconv"

	"github.com/dmitrymomot/validoc/pkg/i18n"
)

// Validator holds the rules declared for values of type T.
// Rules are declared once, before the validator is shared; afterwards all
// methods are safe for concurrent use.
type Validator[T any] struct {
	name     string
	cascade  CascadeMode
	messages *i18n.Translator
	rules    []*PropertyRule
}

// Option configures a Validator.
type Option func(*options)

type options struct {
	cascade  CascadeMode
	messages *i18n.Translator
}

// WithCascade sets the validator-wide cascade mode. Default is Continue.
func WithCascade(mode CascadeMode) Option {
	return func(o *options) { o.cascade = mode }
}

// WithMessages replaces the embedded catalog used to format failures.
func WithMessages(t *i18n.Translator) Option {
	return func(o *options) {
		if t != nil {
			o.messages = t
		}
	}
}

// New creates a validator for T named name, e.g. "CustomerValidator".
func New[T any](name string, opts ...Option) *Validator[T] {
	o := &options{cascade: Continue}
	for _, opt := range opts {
		opt(o)
	}
	return &Validator[T]{name: name, cascade: o.cascade, messages: o.messages}
}

func (v *Validator[T]) Name() string { return v.name }

func (v *Validator[T]) Type() reflect.Type { return reflect.TypeFor[T]() }

// Descriptor returns the declared rules. The result does not change when
// rules are added later.
func (v *Validator[T]) Descriptor() *Descriptor {
	return NewDescriptor(v.cascade, v.rules...)
}

// Validate checks value in the default language.
func (v *Validator[T]) Validate(value T) error {
	return v.ValidateContext(context.Background(), value)
}

// ValidateContext checks value, formatting messages in the language stored
// in ctx by i18n.SetLocale. It returns ValidationErrors or nil.
func (v *Validator[T]) ValidateContext(ctx context.Context, value T) error {
	errs := execute(ctx, v.Descriptor(), value, "", v.catalog())
	if errs.IsEmpty() {
		return nil
	}
	return errs
}

// ValidateValue implements ChildValidator. It accepts T and *T; a nil *T
// passes.
func (v *Validator[T]) ValidateValue(ctx context.Context, value any) error {
	switch val := value.(type) {
	case T:
		return v.ValidateContext(ctx, val)
	case *T:
		if val == nil {
			return nil
		}
		return v.ValidateContext(ctx, *val)
	default:
		return fmt.Errorf("%w: %s got %T", ErrTypeMismatch, v.name, value)
	}
}

func (v *Validator[T]) catalog() *i18n.Translator {
	if v.messages != nil {
		return v.messages
	}
	return DefaultMessages()
}

// execute runs the rules of d against obj. Field names are prefixed with
// prefix for nested validation.
func execute(ctx context.Context, d *Descriptor, obj any, prefix string, catalog *i18n.Translator) ValidationErrors {
	var errs ValidationErrors
	lang := i18n.GetLocale(ctx)

	for _, rule := range d.rules {
		if rule.value == nil {
			continue
		}
		val := rule.value(obj)
		mode := d.cascade
		if m, ok := rule.CascadeOverride(); ok {
			mode = m
		}
		field := prefix + rule.member

		for _, c := range rule.constraints {
			var failed ValidationErrors
			if del, ok := c.(Delegation); ok {
				failed = validateChild(ctx, del, val, field)
			} else if ck, ok := c.(checker); ok {
				if pass, runtime := ck.check(val); !pass {
					failed = ValidationErrors{newFailure(lang, catalog, rule, c, field, val, runtime)}
				}
			}
			if len(failed) == 0 {
				continue
			}
			errs = append(errs, failed...)
			if mode == StopOnFirstFailure {
				break
			}
		}
	}
	return errs
}

// validateChild runs a delegation against val. Slices and arrays are
// validated element by element.
func validateChild(ctx context.Context, del Delegation, val any, field string) ValidationErrors {
	child := del.Resolve()
	if child == nil || isNil(val) {
		return nil
	}

	err := child.ValidateValue(ctx, val)
	if err == nil {
		return nil
	}
	if verrs := ExtractValidationErrors(err); verrs != nil {
		return prefixed(verrs, field+".")
	}

	rv := reflect.ValueOf(val)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return ValidationErrors{{Field: field, Message: err.Error(), Severity: del.Severity()}}
	}

	var errs ValidationErrors
	for i := range rv.Len() {
		elem := rv.Index(i).Interface()
		if isNil(elem) {
			continue
		}
		elemField := field + "[" + strconv.Itoa(i) + "]"
		if err := child.ValidateValue(ctx, elem); err != nil {
			if verrs := ExtractValidationErrors(err); verrs != nil {
				errs = append(errs, prefixed(verrs, elemField+".")...)
				continue
			}
			errs = append(errs, ValidationError{Field: elemField, Message: err.Error(), Severity: del.Severity()})
		}
	}
	return errs
}

func prefixed(errs ValidationErrors, prefix string) ValidationErrors {
	out := make(ValidationErrors, len(errs))
	for i, e := range errs {
		e.Field = prefix + e.Field
		out[i] = e
	}
	return out
}

func newFailure(lang string, catalog *i18n.Translator, rule *PropertyRule, c Constraint, field string, val any, runtime map[string]any) ValidationError {
	values := make(map[string]any, len(runtime)+4)
	for k, p := range c.Params() {
		values[k] = p
	}
	for k, r := range runtime {
		values[k] = r
	}
	values["PropertyName"] = rule.displayName
	if _, ok := values["PropertyValue"]; !ok {
		values["PropertyValue"] = val
	}

	tmpl, ok := c.CustomMessage()
	if !ok {
		tmpl, ok = catalog.Template(lang, c.MessageKey())
	}
	if !ok {
		tmpl = catalog.Td(lang, "validation.default", "'{PropertyName}' is not valid.")
	}

	params := make(map[string]string, len(values))
	for k, p := range values {
		params[k] = FormatParam(p)
	}

	return ValidationError{
		Field:             field,
		Message:           i18n.Format(tmpl, params),
		Severity:          c.Severity(),
		TranslationKey:    c.MessageKey(),
		TranslationValues: values,
	}
}
