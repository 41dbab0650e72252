package validoc

import (
	"log/slog"
	"sync"

	"github.com/dmitrymomot/validoc/pkg/i18n"
	"github.com/dmitrymomot/validoc/pkg/logger"
	"github.com/dmitrymomot/validoc/pkg/validator"
)

// Builder documents validators with a configured message resolver.
// It holds no per-call state and is safe for concurrent use.
type Builder struct {
	resolver MessageResolver
	maxDepth int
	logger   *slog.Logger
}

// Option configures a Builder.
type Option func(*builderOptions)

type builderOptions struct {
	resolver MessageResolver
	catalog  *i18n.Translator
	lang     string
	maxDepth int
	logger   *slog.Logger
}

// WithMessageResolver replaces the catalog resolver.
func WithMessageResolver(r MessageResolver) Option {
	return func(o *builderOptions) {
		if r != nil {
			o.resolver = r
		}
	}
}

// WithCatalog resolves messages from t instead of validator.DefaultMessages.
func WithCatalog(t *i18n.Translator) Option {
	return func(o *builderOptions) {
		if t != nil {
			o.catalog = t
		}
	}
}

// WithLanguage selects the message language of the catalog resolver.
func WithLanguage(lang string) Option {
	return func(o *builderOptions) { o.lang = lang }
}

// WithMaxDepth bounds delegation nesting. Values below 1 are ignored.
func WithMaxDepth(depth int) Option {
	return func(o *builderOptions) {
		if depth > 0 {
			o.maxDepth = depth
		}
	}
}

// WithLogger sets the logger for skipped delegations. Default discards.
func WithLogger(l *slog.Logger) Option {
	return func(o *builderOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// NewBuilder creates a Builder. Without WithMessageResolver messages come
// from the catalog in the selected language.
func NewBuilder(opts ...Option) *Builder {
	o := &builderOptions{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(o)
	}
	if o.resolver == nil {
		o.resolver = NewCatalogResolver(o.catalog, o.lang)
	}
	if o.logger == nil {
		o.logger = logger.Discard()
	}
	return &Builder{
		resolver: o.resolver,
		maxDepth: o.maxDepth,
		logger:   o.logger.With(logger.Component("validoc")),
	}
}

// Rules returns the flat pre-order rule stream of v with messages.
//
// ErrNilValidator and ErrNilDescriptor are returned without rules. Any other
// error describes delegations that could not be expanded; the returned rules
// are complete apart from those children.
func (b *Builder) Rules(v validator.Describer, nested bool) ([]RuleDescription, error) {
	w := &walker{resolver: b.resolver, maxDepth: b.maxDepth, logger: b.logger}
	return w.run(v, nested)
}

// Document returns the rules of v grouped by member. Errors follow Rules.
func (b *Builder) Document(v validator.Describer, nested bool) ([]RuleDescriptor, error) {
	rules, err := b.Rules(v, nested)
	if rules == nil && err != nil {
		return nil, err
	}
	return Group(rules), err
}

// GetRules returns the flat pre-order rule stream of v without messages.
// Errors follow Builder.Rules.
func GetRules(v validator.Describer, nested bool) ([]RuleDescription, error) {
	w := &walker{maxDepth: DefaultMaxDepth, logger: logger.Discard()}
	return w.run(v, nested)
}

// Document returns the rules of v grouped by member, with messages from the
// default catalog in its default language.
func Document(v validator.Describer, nested bool) ([]RuleDescriptor, error) {
	return defaultBuilder().Document(v, nested)
}

var defaultBuilder = sync.OnceValue(func() *Builder { return NewBuilder() })
