package logger

import (
	"context"
	"log/slog"
	"slices"
)

// ContextExtractor pulls one attribute out of a context. It reports false
// when the context does not carry the value.
type ContextExtractor func(ctx context.Context) (slog.Attr, bool)

// StringExtractor records the string returned by get under key. Missing and
// empty values add nothing.
//
//	logger.StringExtractor("lang", i18n.LocaleFromContext)
func StringExtractor(key string, get func(context.Context) (string, bool)) ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		s, ok := get(ctx)
		if !ok || s == "" {
			return slog.Attr{}, false
		}
		return slog.String(key, s), true
	}
}

// contextHandler appends the attributes of its extractors to every record
// handled with a non-nil context.
type contextHandler struct {
	slog.Handler
	extractors []ContextExtractor
}

// withContext wraps next when at least one non-nil extractor is given.
func withContext(next slog.Handler, extractors []ContextExtractor) slog.Handler {
	extractors = slices.DeleteFunc(slices.Clone(extractors), func(ex ContextExtractor) bool {
		return ex == nil
	})
	if len(extractors) == 0 {
		return next
	}
	return &contextHandler{Handler: next, extractors: extractors}
}

func (h *contextHandler) Handle(ctx context.Context, rec slog.Record) error {
	if ctx != nil {
		for _, extract := range h.extractors {
			if attr, ok := extract(ctx); ok {
				rec.AddAttrs(attr)
			}
		}
	}
	return h.Handler.Handle(ctx, rec)
}

func (h *contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &contextHandler{Handler: h.Handler.WithAttrs(attrs), extractors: h.extractors}
}

func (h *contextHandler) WithGroup(name string) slog.Handler {
	return &contextHandler{Handler: h.Handler.WithGroup(name), extractors: h.extractors}
}
