package structtag

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	playground "github.com/go-playground/validator/v10"

	"github.com/dmitrymomot/validoc/pkg/i18n"
	"github.com/dmitrymomot/validoc/pkg/validator"
)

// DefaultTagName is the struct tag read by default.
const DefaultTagName = "validate"

// Validator describes and validates one struct type by its tags.
type Validator struct {
	typ      reflect.Type
	name     string
	tagName  string
	messages *i18n.Translator

	once sync.Once
	desc *validator.Descriptor
}

// Option configures a Validator.
type Option func(*Validator)

// WithName overrides the validator name, "<Type>Validator" by default.
func WithName(name string) Option {
	return func(v *Validator) {
		if name != "" {
			v.name = name
		}
	}
}

// WithTagName reads rules from another struct tag, e.g. "binding".
func WithTagName(tag string) Option {
	return func(v *Validator) {
		if tag != "" {
			v.tagName = tag
		}
	}
}

// WithMessages replaces the catalog used to format failures.
func WithMessages(t *i18n.Translator) Option {
	return func(v *Validator) {
		if t != nil {
			v.messages = t
		}
	}
}

// For returns a validator for the struct type T. It panics if T is not a
// struct or pointer to struct.
func For[T any](opts ...Option) *Validator {
	v, err := ForType(reflect.TypeOf((*T)(nil)).Elem(), opts...)
	if err != nil {
		panic(err)
	}
	return v
}

// ForType returns a validator for typ, a struct or pointer to struct.
func ForType(typ reflect.Type, opts ...Option) (*Validator, error) {
	st := structType(typ)
	if st == nil {
		return nil, fmt.Errorf("%w: %v", ErrNotStruct, typ)
	}
	v := &Validator{typ: st, name: defaultName(st), tagName: DefaultTagName}
	for _, opt := range opts {
		opt(v)
	}
	return v, nil
}

func (v *Validator) Name() string { return v.name }

// Type returns the struct type the tags are read from.
func (v *Validator) Type() reflect.Type { return v.typ }

// Descriptor returns the rules read from the struct tags. It is built on
// first use and shared afterwards.
func (v *Validator) Descriptor() *validator.Descriptor {
	v.once.Do(func() {
		v.desc = v.build()
	})
	return v.desc
}

func (v *Validator) build() *validator.Descriptor {
	var rules []*validator.PropertyRule
	for i := range v.typ.NumField() {
		f := v.typ.Field(i)
		if !f.IsExported() || f.Anonymous {
			continue
		}
		raw := f.Tag.Get(v.tagName)
		if raw == tagSkip {
			continue
		}
		constraints := v.fieldConstraints(f.Type, parseTag(raw))
		if len(constraints) == 0 {
			continue
		}
		rules = append(rules, validator.NewPropertyRule(f.Name, f.Tag.Get("label"), constraints...))
	}
	return validator.NewDescriptor(validator.StopOnFirstFailure, rules...)
}

// fieldConstraints describes the tags of one field. Tags after "dive" apply
// to the elements.
func (v *Validator) fieldConstraints(typ reflect.Type, rules []rule) []validator.Constraint {
	var out []validator.Constraint
	current := typ
	dived := false

	for _, r := range rules {
		switch r.tag {
		case tagOmitEmpty, "omitnil", "omitzero":
			continue
		case tagDive:
			elem := elemType(current)
			if elem == nil {
				continue
			}
			current, dived = elem, true
			if st := structType(current); st != nil {
				out = append(out, v.delegation(st))
			}
			continue
		}
		out = append(out, describe(r, current))
	}

	if !dived {
		if st := structType(typ); st != nil {
			out = append(out, v.delegation(st))
		}
	}
	return out
}

func (v *Validator) delegation(st reflect.Type) validator.Delegation {
	name := defaultName(st)
	if st == v.typ {
		name = v.name
	}
	return validator.NewDelegation(name, func() validator.ChildValidator {
		return v.child(st)
	})
}

// child returns the validator for a nested struct type. Children share the
// tag name and catalog of their parent.
func (v *Validator) child(st reflect.Type) validator.ChildValidator {
	if st == v.typ {
		return v
	}
	c := &Validator{typ: st, name: defaultName(st), tagName: v.tagName, messages: v.messages}
	return c
}

// ValidateValue implements validator.ChildValidator. value may be the struct
// or a pointer to it; nil pointers pass.
func (v *Validator) ValidateValue(ctx context.Context, value any) error {
	rv := reflect.ValueOf(value)
	if !rv.IsValid() {
		return nil
	}
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Type() != v.typ {
		return fmt.Errorf("%w: %s got %T", validator.ErrTypeMismatch, v.name, value)
	}

	err := engine(v.tagName).StructCtx(ctx, value)
	if err == nil {
		return nil
	}

	var fieldErrs playground.ValidationErrors
	if errors.As(err, &fieldErrs) {
		return v.translate(ctx, fieldErrs)
	}
	return errors.Join(ErrInvalidValue, err)
}

func (v *Validator) translate(ctx context.Context, fieldErrs playground.ValidationErrors) validator.ValidationErrors {
	lang := i18n.GetLocale(ctx)
	catalog := v.messages
	if catalog == nil {
		catalog = validator.DefaultMessages()
	}

	out := make(validator.ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		_, key, params := classify(rule{tag: fe.Tag(), param: fe.Param()}, fe.Type())

		values := make(map[string]any, len(params)+3)
		for k, p := range params {
			values[k] = p
		}
		values["PropertyName"] = displayName(fe.Field())
		values["PropertyValue"] = fe.Value()
		if n, ok := length(fe.Value()); ok {
			values["TotalLength"] = n
		}

		tmpl, ok := catalog.Template(lang, key)
		if !ok {
			tmpl = catalog.Td(lang, "validation.default", "'{PropertyName}' is not valid.")
		}
		formatted := make(map[string]string, len(values))
		for k, p := range values {
			formatted[k] = validator.FormatParam(p)
		}

		out = append(out, validator.ValidationError{
			Field:             trimNamespace(fe.StructNamespace()),
			Message:           i18n.Format(tmpl, formatted),
			Severity:          validator.SeverityError,
			TranslationKey:    key,
			TranslationValues: values,
		})
	}
	return out
}

var engines sync.Map

// engine returns the shared go-playground instance for a tag name.
func engine(tag string) *playground.Validate {
	if e, ok := engines.Load(tag); ok {
		return e.(*playground.Validate)
	}
	e := playground.New(playground.WithRequiredStructEnabled())
	e.SetTagName(tag)
	e.RegisterTagNameFunc(func(f reflect.StructField) string {
		if label := f.Tag.Get("label"); label != "" {
			return label
		}
		return f.Name
	})
	actual, _ := engines.LoadOrStore(tag, e)
	return actual.(*playground.Validate)
}

// trimNamespace drops the root type name: "Signup.Profile.Name" becomes
// "Profile.Name".
func trimNamespace(ns string) string {
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

// displayName splits a field name or label, ignoring a dive index:
// "LineItems[2]" becomes "Line Items".
func displayName(field string) string {
	if i := strings.IndexByte(field, '['); i >= 0 {
		field = field[:i]
	}
	return validator.SplitPascalCase(field)
}

func length(value any) (int, bool) {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.String:
		return len([]rune(rv.String())), true
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len(), true
	}
	return 0, false
}

func defaultName(st reflect.Type) string {
	if st.Name() == "" {
		return "AnonymousValidator"
	}
	return st.Name() + "Validator"
}

var timeType = reflect.TypeOf(time.Time{})

// structType returns the struct type behind typ, or nil. time.Time counts
// as a scalar.
func structType(typ reflect.Type) reflect.Type {
	if typ == nil {
		return nil
	}
	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct || typ == timeType {
		return nil
	}
	return typ
}

func elemType(typ reflect.Type) reflect.Type {
	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	switch typ.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return typ.Elem()
	}
	return nil
}
