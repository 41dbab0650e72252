package i18n

import (
	"log/slog"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/validoc/pkg/logger"
)

// Option configures a Translator.
type Option func(*Translator)

// WithDefaultLanguage sets the language consulted when the requested one has
// no template. The tag is canonicalized ("DE" becomes "de"); empty or
// malformed tags are ignored.
func WithDefaultLanguage(lang string) Option {
	return func(t *Translator) {
		if tag, err := language.Parse(lang); err == nil {
			t.defaultLang = tag.String()
		}
	}
}

// WithFallbackToKey controls what T returns for unknown keys: the key itself
// (the default) or an empty string.
func WithFallbackToKey(fallback bool) Option {
	return func(t *Translator) {
		t.fallbackToKey = fallback
	}
}

// WithLogger sets the catalog logger, tagged with component=i18n. Nil keeps
// the discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(t *Translator) {
		if l != nil {
			t.logger = l.With(logger.Component("i18n"))
		}
	}
}

// WithMissingKeyLogging logs lookups without a template at level. Misses are
// not logged by default.
func WithMissingKeyLogging(level slog.Level) Option {
	return func(t *Translator) {
		t.missing = level
	}
}

// WithNoLogging drops every catalog log record, missing keys included.
func WithNoLogging() Option {
	return func(t *Translator) {
		t.logger = logger.Discard()
		t.missing = nil
	}
}
