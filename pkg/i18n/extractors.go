package i18n

import (
	"net/http"
	"strings"
)

// ExtractorConfig holds configuration for the language extractor
type ExtractorConfig struct {
	CookieName     string
	QueryParamName string
	SupportedLangs []string
}

// ExtractorOption configures the language extractor
type ExtractorOption func(*ExtractorConfig)

// WithCookieName sets the cookie name to check for language preference
func WithCookieName(name string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if name != "" {
			c.CookieName = name
		}
	}
}

// WithQueryParamName sets the query parameter name to check for language
func WithQueryParamName(name string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if name != "" {
			c.QueryParamName = name
		}
	}
}

// WithSupportedLanguages restricts extracted languages to langs.
func WithSupportedLanguages(langs ...string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if len(langs) > 0 {
			c.SupportedLangs = langs
		}
	}
}

// DefaultLangExtractor checks, in order: query parameter, cookie (both named
// "lang" by default) and the Accept-Language header. With SupportedLangs set,
// every candidate is matched against them and unsupported ones are skipped.
func DefaultLangExtractor(opts ...ExtractorOption) LangExtractor {
	cfg := &ExtractorConfig{
		CookieName:     "lang",
		QueryParamName: "lang",
	}
	for _, opt := range opts {
		opt(cfg)
	}

	accept := func(lang string) string {
		lang = strings.TrimSpace(lang)
		if lang == "" {
			return ""
		}
		if len(cfg.SupportedLangs) == 0 {
			return strings.ToLower(lang)
		}
		return Match(lang, cfg.SupportedLangs, "")
	}

	return func(r *http.Request) string {
		if cfg.QueryParamName != "" {
			if lang := accept(r.URL.Query().Get(cfg.QueryParamName)); lang != "" {
				return lang
			}
		}

		if cfg.CookieName != "" {
			if cookie, err := r.Cookie(cfg.CookieName); err == nil {
				if lang := accept(cookie.Value); lang != "" {
					return lang
				}
			}
		}

		header := r.Header.Get("Accept-Language")
		if header == "" {
			return ""
		}
		if len(cfg.SupportedLangs) > 0 {
			return ParseAcceptLanguage(header, cfg.SupportedLangs, "")
		}
		first, _, _ := strings.Cut(header, ",")
		first, _, _ = strings.Cut(first, ";")
		return strings.ToLower(strings.TrimSpace(first))
	}
}
