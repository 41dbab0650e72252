package i18n

import "net/http"

// LangExtractor returns the language requested by r, or "" if none.
type LangExtractor func(r *http.Request) string

// Middleware stores the language chosen by extr in the request context.
// A nil extractor uses DefaultLangExtractor; an empty result falls back to
// DefaultLanguage.
func Middleware(extr LangExtractor) func(http.Handler) http.Handler {
	if extr == nil {
		extr = DefaultLangExtractor()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := extr(r)
			if lang == "" {
				lang = DefaultLanguage
			}
			next.ServeHTTP(w, r.WithContext(SetLocale(r.Context(), lang)))
		})
	}
}
