package validoc

import (
	"errors"
	"log/slog"
	"reflect"
	"slices"

	"github.com/dmitrymomot/validoc/pkg/logger"
	"github.com/dmitrymomot/validoc/pkg/validator"
)

// DefaultMaxDepth bounds delegation nesting.
const DefaultMaxDepth = 32

// walker produces the pre-order rule stream of a validator.
type walker struct {
	resolver MessageResolver
	maxDepth int
	logger   *slog.Logger
}

// run documents v. Precondition failures return no rules; delegation
// failures are joined into the error returned next to the complete result.
func (w *walker) run(v validator.Describer, nested bool) ([]RuleDescription, error) {
	if isNil(v) {
		return nil, ErrNilValidator
	}
	d := v.Descriptor()
	if d == nil {
		return nil, ErrNilDescriptor
	}

	var errs []error
	root := frame{chain: []string{v.Name()}, seen: []identity{identify(v)}}
	out := w.walk(d, nested, root, &errs)

	w.logger.Debug("documented validator",
		logger.Validator(v.Name()),
		logger.RuleCount(len(out)),
		slog.Bool("nested", nested),
	)
	return out, errors.Join(errs...)
}

// frame is the position of a walk inside the delegation tree. chain holds
// display names for errors; seen holds the identities on the path from the root.
type frame struct {
	chain  []string
	seen   []identity
	prefix string
	depth  int
}

func (f frame) child(id identity, name, path string) frame {
	return frame{
		chain:  append(slices.Clone(f.chain), name),
		seen:   append(slices.Clone(f.seen), id),
		prefix: path + ".",
		depth:  f.depth + 1,
	}
}

// identity distinguishes validators on a delegation path. Validators of the
// same type share an identity; untyped ones fall back to their name.
type identity struct {
	typ  reflect.Type
	name string
}

func identify(d validator.Describer) identity {
	t := d.Type()
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t != nil {
		return identity{typ: t}
	}
	return identity{name: d.Name()}
}

// walk emits members in descriptor order and, per member, constraints in
// declaration order. A delegation emits its own entry first, followed by the
// child stream when nested is set.
func (w *walker) walk(d *validator.Descriptor, nested bool, f frame, errs *[]error) []RuleDescription {
	var out []RuleDescription
	global := d.Cascade()

	for _, member := range d.Members() {
		path := f.prefix + member
		for _, rule := range d.RulesFor(member) {
			for _, c := range rule.Constraints() {
				cl := Classify(rule, c, global)
				entry := RuleDescription{
					MemberName:      rule.DisplayName(),
					Path:            path,
					ValidatorName:   cl.Kind,
					FailureSeverity: cl.Severity,
					OnFailure:       cl.Cascade,
					Depth:           f.depth,
				}

				del, isDelegation := c.(validator.Delegation)
				if isDelegation {
					entry.Delegation = true
				} else if w.resolver != nil {
					entry.ValidationMessage = w.resolver.Resolve(rule, c)
				}
				out = append(out, entry)

				if isDelegation && nested {
					out = append(out, w.descend(del, nested, f, path, errs)...)
				}
			}
		}
	}
	return out
}

// descend documents the child of del. Failures are recorded and leave the
// stream unchanged.
func (w *walker) descend(del validator.Delegation, nested bool, f frame, path string, errs *[]error) []RuleDescription {
	name := del.ValidatorName()
	fail := func(err error, chain []string) []RuleDescription {
		derr := &DelegationError{Chain: chain, Path: path, Err: err}
		w.logger.Warn("delegation not expanded",
			logger.Validator(name),
			logger.Member(path),
			logger.Depth(f.depth+1),
			logger.Error(err),
		)
		*errs = append(*errs, derr)
		return nil
	}

	if f.depth+1 > w.maxDepth {
		return fail(ErrMaxDepthExceeded, append(slices.Clone(f.chain), name))
	}

	child := del.Resolve()
	if isNil(child) {
		return fail(ErrUnresolvedChild, append(slices.Clone(f.chain), name))
	}
	if child.Name() != "" {
		name = child.Name()
	}
	id := identify(child)
	if slices.Contains(f.seen, id) {
		return fail(ErrCyclicDelegation, append(slices.Clone(f.chain), name))
	}

	d := child.Descriptor()
	if d == nil {
		return fail(errors.Join(ErrUnresolvedChild, ErrNilDescriptor), append(slices.Clone(f.chain), name))
	}
	return w.walk(d, nested, f.child(id, name, path), errs)
}

// isNil reports nil interfaces and interfaces holding nil pointers.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func:
		return rv.IsNil()
	}
	return false
}
